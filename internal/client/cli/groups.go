package cli

import (
	"context"
	"fmt"

	"github.com/peersphere/peersphere/internal/client/forms"
	"github.com/peersphere/peersphere/internal/client/models"
	"github.com/peersphere/peersphere/internal/client/session"
)

func (a *App) groups(ctx context.Context, _ *session.Session, _ []string) error {
	groups, err := a.study.MyGroups(ctx)
	if err != nil {
		return err
	}
	return a.view.Groups(groups)
}

func (a *App) newGroup(ctx context.Context, _ *session.Session, _ []string) error {
	name, err := getSimpleText(a.reader, "Group name", a.out)
	if err != nil {
		return err
	}
	course, err := getSimpleText(a.reader, "Course code", a.out)
	if err != nil {
		return err
	}

	g, err := a.study.CreateGroup(ctx, forms.Group{Name: name, CourseCode: course})
	if err != nil {
		return err
	}

	a.println(fmt.Sprintf("Created sphere #%d %s. Share code %s to invite others.", g.GroupID, g.Name, g.GroupCode))
	return nil
}

func (a *App) joinGroup(ctx context.Context, _ *session.Session, args []string) error {
	var code string
	if len(args) > 0 {
		code = args[0]
	} else {
		var err error
		if code, err = getSimpleText(a.reader, "Group code", a.out); err != nil {
			return err
		}
	}

	if err := a.study.JoinGroup(ctx, forms.JoinGroup{GroupCode: code}); err != nil {
		return err
	}
	a.println("Joined sphere " + code)
	return nil
}

func (a *App) group(ctx context.Context, _ *session.Session, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	g, err := a.study.Group(ctx, id)
	if err != nil {
		return err
	}
	return a.view.Groups([]models.Group{*g})
}
