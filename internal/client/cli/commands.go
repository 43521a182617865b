package cli

func (a *App) commands() []command {
	return []command{
		{name: "register", usage: "register", summary: "create an account", action: "register", anonOnly: true, run: a.register},
		{name: "login", usage: "login", summary: "log in", action: "log in", anonOnly: true, run: a.login},
		{name: "logout", usage: "logout", summary: "log out", action: "log out", run: a.logout},
		{name: "whoami", usage: "whoami", summary: "show the logged-in user", action: "show user", protected: true, run: a.whoami},
		{name: "health", usage: "health", summary: "check the backend", action: "check backend health", run: a.health},

		{name: "groups", usage: "groups", summary: "list your study spheres", action: "load groups", protected: true, run: a.groups},
		{name: "newgroup", usage: "newgroup", summary: "create a study sphere", action: "create group", protected: true, run: a.newGroup},
		{name: "joingroup", usage: "joingroup [code]", summary: "join a sphere by its code", action: "join group", protected: true, run: a.joinGroup},
		{name: "group", usage: "group <groupId>", summary: "show a sphere", action: "load group", protected: true, run: a.group},

		{name: "decks", usage: "decks [groupId]", summary: "list decks of a sphere, or of all yours", action: "load decks", protected: true, run: a.decks},
		{name: "newdeck", usage: "newdeck <groupId>", summary: "create a deck", action: "create deck", protected: true, run: a.newDeck},
		{name: "editdeck", usage: "editdeck <deckId>", summary: "edit one of your decks", action: "update deck", protected: true, run: a.editDeck},
		{name: "deldeck", usage: "deldeck <deckId>", summary: "delete one of your decks", action: "delete deck", protected: true, run: a.deleteDeck},

		{name: "cards", usage: "cards <deckId>", summary: "list flashcards", action: "load flashcards", protected: true, run: a.cards},
		{name: "newcard", usage: "newcard <deckId>", summary: "add a flashcard", action: "create flashcard", protected: true, run: a.newCard},
		{name: "editcard", usage: "editcard <cardId>", summary: "edit a flashcard", action: "update flashcard", protected: true, run: a.editCard},
		{name: "delcard", usage: "delcard <cardId>", summary: "delete a flashcard", action: "delete flashcard", protected: true, run: a.deleteCard},

		{name: "notes", usage: "notes [groupId]", summary: "list notes of a sphere, or of all yours", action: "load notes", protected: true, run: a.notes},
		{name: "newnote", usage: "newnote <groupId>", summary: "write a note", action: "create note", protected: true, run: a.newNote},
		{name: "editnote", usage: "editnote <noteId>", summary: "edit one of your notes", action: "update note", protected: true, run: a.editNote},
		{name: "delnote", usage: "delnote <noteId>", summary: "delete one of your notes", action: "delete note", protected: true, run: a.deleteNote},

		{name: "messages", usage: "messages <groupId>", summary: "show recent chat", action: "load messages", protected: true, run: a.messages},
		{name: "send", usage: "send <groupId> [text]", summary: "post to the group chat", action: "send message", protected: true, run: a.send},

		{name: "events", usage: "events <groupId>", summary: "list calendar events", action: "load events", protected: true, run: a.events},
		{name: "newevent", usage: "newevent <groupId>", summary: "schedule an event", action: "create event", protected: true, run: a.newEvent},
		{name: "editevent", usage: "editevent <eventId>", summary: "edit an event", action: "update event", protected: true, run: a.editEvent},
		{name: "delevent", usage: "delevent <eventId>", summary: "delete an event", action: "delete event", protected: true, run: a.deleteEvent},
	}
}
