package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/peersphere/peersphere/internal/client/forms"
	"github.com/peersphere/peersphere/internal/client/models"
	"github.com/peersphere/peersphere/internal/client/session"
	"github.com/peersphere/peersphere/internal/client/views"
)

var errNotOwner = errors.New("only the creator can change this")

func (a *App) decks(ctx context.Context, sess *session.Session, args []string) error {
	var (
		decks []models.Deck
		opts  views.CardOptions
		err   error
	)
	if len(args) == 0 {
		opts.ShowGroup = true
		decks, err = a.study.AllDecks(ctx)
	} else {
		var groupID int64
		if groupID, err = idArg(args, 0); err != nil {
			return err
		}
		decks, err = a.study.Decks(ctx, groupID)
	}
	if err != nil {
		return err
	}

	cards := make([]views.Card, 0, len(decks))
	for _, d := range decks {
		cards = append(cards, views.DeckCard(d, sess.UserID, opts))
	}
	return a.view.Cards(cards, "No Flashcard Decks Yet", "Create the first deck with newdeck.")
}

func (a *App) newDeck(ctx context.Context, _ *session.Session, args []string) error {
	groupID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Deck name", a.out)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	d, err := a.study.CreateDeck(ctx, groupID, forms.Deck{Title: title, Description: desc})
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Deck #%d created.", d.DeckID))
	return nil
}

func (a *App) editDeck(ctx context.Context, sess *session.Session, args []string) error {
	deckID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	d, err := a.study.Deck(ctx, deckID)
	if err != nil {
		return err
	}
	if d.Owner() != sess.UserID {
		return errNotOwner
	}

	title, err := getOptionalText(a.reader, "Deck name", d.DisplayTitle(), a.out)
	if err != nil {
		return err
	}
	desc, err := getOptionalText(a.reader, "Description", d.Description, a.out)
	if err != nil {
		return err
	}

	if err := a.study.UpdateDeck(ctx, deckID, forms.Deck{Title: title, Description: desc}); err != nil {
		return err
	}
	a.println("Deck updated.")
	return nil
}

func (a *App) deleteDeck(ctx context.Context, sess *session.Session, args []string) error {
	deckID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	d, err := a.study.Deck(ctx, deckID)
	if err != nil {
		return err
	}
	if d.Owner() != sess.UserID {
		return errNotOwner
	}

	ok, err := a.confirm(fmt.Sprintf("Delete deck %q and all its flashcards?", d.DisplayTitle()))
	if err != nil || !ok {
		return err
	}
	if err := a.study.DeleteDeck(ctx, deckID); err != nil {
		return err
	}
	a.println("Deck deleted.")
	return nil
}

func (a *App) cards(ctx context.Context, _ *session.Session, args []string) error {
	deckID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	cards, err := a.study.Flashcards(ctx, deckID)
	if err != nil {
		return err
	}
	return a.view.Flashcards(cards)
}

func (a *App) newCard(ctx context.Context, _ *session.Session, args []string) error {
	deckID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	q, err := getSimpleText(a.reader, "Question", a.out)
	if err != nil {
		return err
	}
	ans, err := getSimpleText(a.reader, "Answer", a.out)
	if err != nil {
		return err
	}

	c, err := a.study.CreateFlashcard(ctx, deckID, forms.Flashcard{Question: q, Answer: ans})
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Flashcard #%d added.", c.CardID))
	return nil
}

func (a *App) editCard(ctx context.Context, _ *session.Session, args []string) error {
	cardID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	c, err := a.study.Flashcard(ctx, cardID)
	if err != nil {
		return err
	}

	q, err := getOptionalText(a.reader, "Question", c.Question, a.out)
	if err != nil {
		return err
	}
	ans, err := getOptionalText(a.reader, "Answer", c.Answer, a.out)
	if err != nil {
		return err
	}

	if err := a.study.UpdateFlashcard(ctx, cardID, forms.Flashcard{Question: q, Answer: ans}); err != nil {
		return err
	}
	a.println("Flashcard updated.")
	return nil
}

func (a *App) deleteCard(ctx context.Context, _ *session.Session, args []string) error {
	cardID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	ok, err := a.confirm(fmt.Sprintf("Delete flashcard #%d?", cardID))
	if err != nil || !ok {
		return err
	}
	if err := a.study.DeleteFlashcard(ctx, cardID); err != nil {
		return err
	}
	a.println("Flashcard deleted.")
	return nil
}
