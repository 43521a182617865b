package cli

import (
	"context"
	"fmt"

	"github.com/peersphere/peersphere/internal/client/forms"
	"github.com/peersphere/peersphere/internal/client/session"
)

const timeHint = " (YYYY-MM-DDTHH:MM)"

func (a *App) events(ctx context.Context, _ *session.Session, args []string) error {
	groupID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	events, err := a.study.Events(ctx, groupID)
	if err != nil {
		return err
	}
	return a.view.Events(events)
}

// readEvent prompts for every event field, offering cur as defaults.
func (a *App) readEvent(cur forms.Event) (forms.Event, error) {
	var (
		f   forms.Event
		err error
	)
	if f.Title, err = getOptionalText(a.reader, "Title", cur.Title, a.out); err != nil {
		return f, err
	}
	if f.Description, err = getOptionalText(a.reader, "Description (optional)", cur.Description, a.out); err != nil {
		return f, err
	}
	if f.StartTime, err = getOptionalText(a.reader, "Starts"+timeHint, cur.StartTime, a.out); err != nil {
		return f, err
	}
	if f.EndTime, err = getOptionalText(a.reader, "Ends"+timeHint, cur.EndTime, a.out); err != nil {
		return f, err
	}
	return f, nil
}

func (a *App) newEvent(ctx context.Context, _ *session.Session, args []string) error {
	groupID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	f, err := a.readEvent(forms.Event{})
	if err != nil {
		return err
	}

	e, err := a.study.CreateEvent(ctx, groupID, f)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Event #%d scheduled.", e.EventID))
	return nil
}

func (a *App) editEvent(ctx context.Context, _ *session.Session, args []string) error {
	eventID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	e, err := a.study.Event(ctx, eventID)
	if err != nil {
		return err
	}

	f, err := a.readEvent(forms.Event{Title: e.Title, Description: e.Description, StartTime: e.StartTime, EndTime: e.EndTime})
	if err != nil {
		return err
	}
	if err := a.study.UpdateEvent(ctx, eventID, f); err != nil {
		return err
	}
	a.println("Event updated.")
	return nil
}

func (a *App) deleteEvent(ctx context.Context, _ *session.Session, args []string) error {
	eventID, err := idArg(args, 0)
	if err != nil {
		return err
	}
	ok, err := a.confirm(fmt.Sprintf("Delete event #%d?", eventID))
	if err != nil || !ok {
		return err
	}
	if err := a.study.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	a.println("Event deleted.")
	return nil
}
