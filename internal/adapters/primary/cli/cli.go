// Package cli drives the use cases from the command line:
//
//	post <user> <message>
//	edit <message-id> <message>
//	follow <user> <user-to-follow>
//	view <user>
//	wall <user>
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/gookit/color"

	"github.com/MaximeSarrato/crafty/internal/adapters/primary/presenter"
	"github.com/MaximeSarrato/crafty/internal/core/ports"
	"github.com/MaximeSarrato/crafty/internal/core/result"
)

const (
	ExitOK    = 0
	ExitError = 1
)

var errUsage = errors.New("usage")

type Deps struct {
	Poster   ports.MessagePoster
	Editor   ports.MessageEditor
	Follower ports.UserFollower
	Timeline ports.TimelineViewer
	Wall     ports.WallViewer
	Clock    ports.DateProvider

	NewID func() string
}

type app struct {
	deps   Deps
	stdout io.Writer
	stderr io.Writer
}

// Run executes one command and returns the process exit code.
func Run(ctx context.Context, args []string, deps Deps, stdout, stderr io.Writer) int {
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	a := &app{deps: deps, stdout: stdout, stderr: stderr}

	fs := flag.NewFlagSet("crafty", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { a.usage() }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitError
	}

	rest := fs.Args()
	if len(rest) == 0 {
		a.usage()
		return ExitError
	}

	var err error
	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "post":
		err = a.post(ctx, cmdArgs)
	case "edit":
		err = a.edit(ctx, cmdArgs)
	case "follow":
		err = a.follow(ctx, cmdArgs)
	case "view":
		err = a.view(ctx, cmdArgs)
	case "wall":
		err = a.wall(ctx, cmdArgs)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		a.usage()
		return ExitError
	}

	if err != nil {
		if errors.Is(err, errUsage) {
			a.usage()
		}
		a.fail(err)
		return ExitError
	}
	return ExitOK
}

func (a *app) post(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: post <user> <message>", errUsage)
	}
	id := a.deps.NewID()
	res, err := a.deps.Poster.Handle(ctx, ports.PostMessageCommand{
		ID:     id,
		Author: args[0],
		Text:   strings.Join(args[1:], " "),
	})
	if err := outcome(res, err); err != nil {
		return err
	}
	a.succeed(fmt.Sprintf("Message posted (id: %s)", id))
	return nil
}

func (a *app) edit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: edit <message-id> <message>", errUsage)
	}
	res, err := a.deps.Editor.Handle(ctx, ports.EditMessageCommand{
		MessageID: args[0],
		Text:      strings.Join(args[1:], " "),
	})
	if err := outcome(res, err); err != nil {
		return err
	}
	a.succeed("Message edited")
	return nil
}

func (a *app) follow(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: follow <user> <user-to-follow>", errUsage)
	}
	if err := a.deps.Follower.Handle(ctx, ports.FollowUserCommand{User: args[0], UserToFollow: args[1]}); err != nil {
		return err
	}
	a.succeed(fmt.Sprintf("%s now follows %s", args[0], args[1]))
	return nil
}

func (a *app) view(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: view <user>", errUsage)
	}
	p := newTablePresenter(presenter.NewTimelineFormatter(a.deps.Clock), a.stdout)
	return a.deps.Timeline.Handle(ctx, ports.ViewTimelineQuery{User: args[0]}, p)
}

func (a *app) wall(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: wall <user>", errUsage)
	}
	p := newTablePresenter(presenter.NewTimelineFormatter(a.deps.Clock), a.stdout)
	return a.deps.Wall.Handle(ctx, ports.ViewWallQuery{User: args[0]}, p)
}

// outcome folds a validation failure and a fault into one error.
func outcome(res result.Result[result.Void], err error) error {
	if err != nil {
		return err
	}
	return res.Err()
}

func (a *app) succeed(msg string) {
	fmt.Fprintln(a.stdout, color.Green.Sprint("✅ "+msg))
}

func (a *app) fail(err error) {
	fmt.Fprintln(a.stderr, color.Red.Sprint("❌ "+err.Error()))
}

func (a *app) usage() {
	fmt.Fprint(a.stderr, `Usage: crafty <command> [arguments]

Commands:
  post <user> <message>            post a message
  edit <message-id> <message>      edit a message
  follow <user> <user-to-follow>   follow a user
  view <user>                      show the user's timeline
  wall <user>                      show the user's wall
`)
}
