package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/peersphere/peersphere/internal/client/forms"
	"github.com/peersphere/peersphere/internal/client/models"
	"github.com/peersphere/peersphere/internal/client/session"
	"github.com/peersphere/peersphere/internal/client/views"
)

func (a *App) notes(ctx context.Context, sess *session.Session, args []string) error {
	var (
		notes []models.Note
		opts  views.CardOptions
		err   error
	)
	if len(args) == 0 {
		opts.ShowGroup = true
		notes, err = a.study.AllNotes(ctx)
	} else {
		var groupID int64
		if groupID, err = idArg(args, 0); err != nil {
			return err
		}
		notes, err = a.study.Notes(ctx, groupID)
	}
	if err != nil {
		return err
	}

	cards := make([]views.Card, 0, len(notes))
	for _, n := range notes {
		cards = append(cards, views.NoteCard(n, sess.UserID, opts))
	}
	return a.view.Cards(cards, "No Notes Yet", "Share the first note with newnote.")
}

func (a *App) newNote(ctx context.Context, _ *session.Session, args []string) error {
	groupID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}

	n, err := a.study.CreateNote(ctx, groupID, forms.Note{Title: title, Content: content})
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Note #%d created.", n.NoteID))
	return nil
}

func (a *App) editNote(ctx context.Context, sess *session.Session, args []string) error {
	noteID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	n, err := a.study.Note(ctx, noteID)
	if err != nil {
		return err
	}
	if n.Owner() != sess.UserID {
		return errNotOwner
	}

	title, err := getOptionalText(a.reader, "Title", n.Title, a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Content (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = n.Content
	}

	if err := a.study.UpdateNote(ctx, noteID, forms.Note{Title: title, Content: content}); err != nil {
		return err
	}
	a.println("Note updated.")
	return nil
}

func (a *App) deleteNote(ctx context.Context, sess *session.Session, args []string) error {
	noteID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	n, err := a.study.Note(ctx, noteID)
	if err != nil {
		return err
	}
	if n.Owner() != sess.UserID {
		return errNotOwner
	}

	ok, err := a.confirm(fmt.Sprintf("Delete note %q?", n.Title))
	if err != nil || !ok {
		return err
	}
	if err := a.study.DeleteNote(ctx, noteID); err != nil {
		return err
	}
	a.println("Note deleted.")
	return nil
}

func (a *App) messages(ctx context.Context, _ *session.Session, args []string) error {
	groupID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	msgs, err := a.study.Messages(ctx, groupID)
	if err != nil {
		return err
	}
	return a.view.Messages(msgs)
}

func (a *App) send(ctx context.Context, _ *session.Session, args []string) error {
	groupID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")
	if text == "" {
		if text, err = getSimpleText(a.reader, "Message", a.out); err != nil {
			return err
		}
	}

	if _, err := a.study.SendMessage(ctx, groupID, forms.Message{Content: text}); err != nil {
		return err
	}
	a.println("Sent.")
	return nil
}
