package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/gamebook/internal/ctxlog"
	"github.com/specialistvlad/gamebook/internal/editor"
	"github.com/specialistvlad/gamebook/internal/engine"
	"github.com/specialistvlad/gamebook/internal/storage"
	"github.com/specialistvlad/gamebook/internal/validator"
)

// shell serves the main menu. End of input is a normal way to leave it.
func (a *App) shell(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	for {
		a.menu()
		line, err := a.console.ReadLine(ctx)
		if err != nil {
			return endOfInput(err)
		}

		choice := strings.TrimSpace(line)
		logger.Debug("Menu option selected.", "option", choice)
		switch choice {
		case "1":
			err = a.openPrompt(ctx)
		case "2":
			err = a.run(ctx)
		case "3":
			err = a.edit(ctx)
		case "4":
			a.check(ctx)
		case "5":
			err = a.save(ctx)
		case "6":
			return nil
		default:
			a.console.Warn(fmt.Sprintf("Please enter 1, 2, 3, 4, 5, or 6.  You entered %s", line))
			a.console.Say("")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (a *App) menu() {
	a.console.Say("")
	a.console.Title("Welcome to Choose-Your-Own-Adventure!")
	a.console.Say("Please select from the following options!")
	a.console.Say("1. Open an adventure file")
	a.console.Say("2. Run the current adventure")
	a.console.Say("3. Edit the current adventure")
	a.console.Say("4. Accuracy check the current adventure")
	a.console.Say("5. Save the current adventure")
	a.console.Say("6. Exit the program")
}

// endOfInput maps exhausted input to a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// isInputFailure reports whether err means the operator can no longer be
// asked anything.
func isInputFailure(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (a *App) openPrompt(ctx context.Context) error {
	files, err := a.store.Discover(a.config.AdventureDir)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Could not list adventure files.", "dir", a.config.AdventureDir, "error", err)
	}
	if len(files) > 0 {
		a.console.Muted(fmt.Sprintf("Adventure files in %s:", a.config.AdventureDir))
		for _, f := range files {
			a.console.Muted("  " + f)
		}
	}

	path, err := a.console.Ask(ctx, "Please enter the name of an existing adventure file.")
	if err != nil {
		return err
	}
	a.open(ctx, strings.TrimSpace(path))
	return nil
}

// open replaces the current graph with the adventure at path. On failure
// the current graph is kept.
func (a *App) open(ctx context.Context, path string) bool {
	g, err := a.store.Load(ctx, path)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Adventure not loaded.", "path", path, "error", err)
		a.reportLoadError(err)
		return false
	}
	a.graph = g
	a.console.Success(fmt.Sprintf("Loaded %d nodes from %s", g.Len(), path))
	return true
}

func (a *App) reportLoadError(err error) {
	cause := err
	var storeErr *storage.Error
	if errors.As(err, &storeErr) && storeErr.Err != nil {
		cause = storeErr.Err
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		a.console.Error("I cannot find your adventure file.")
	case errors.Is(err, storage.ErrSchema):
		a.console.Error(fmt.Sprintf("bad adventure file loaded: %v", cause))
	default:
		a.console.Error("I could not read the file and turn it into a dictionary.")
		a.console.Say("I got the error:", cause)
	}
}

func (a *App) run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	entry := a.config.EntryID
	if a.graph.Len() == 0 {
		a.console.Error("no adventure loaded to run")
		return nil
	}
	if !a.graph.Has(entry) {
		a.console.Error(fmt.Sprintf("adventure missing requested node %s", entry))
		return nil
	}

	res, err := engine.New(a.graph, a.console, engine.Options{}).Run(ctx, entry)
	var nodeErr *engine.NodeError
	if errors.As(err, &nodeErr) {
		logger.Warn("Run aborted.", "node", nodeErr.ID, "error", err)
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("Run finished.", "state", res.State, "node", res.Node, "steps", res.Steps)
	return nil
}

func (a *App) edit(ctx context.Context) error {
	ed := editor.New(a.graph, a.console, editor.Options{
		MaxBranches: a.config.MaxBranches,
		Entry:       a.config.EntryID,
	})
	g, err := ed.Session(ctx)
	a.graph = g
	return err
}

func (a *App) check(ctx context.Context) {
	if a.graph.Len() == 0 {
		a.console.Error("No tree to check!")
		return
	}
	problems := validator.Check(ctx, a.graph, a.config.EntryID)
	if validator.Clean(problems) {
		a.console.Success("No missing nodes found")
		return
	}
	for _, p := range problems {
		a.console.Warn(p.String())
	}
}

func (a *App) save(ctx context.Context) error {
	name, err := a.console.Ask(ctx, "Please enter a filename to save the tree as:")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		a.console.Error("No filename entered, aborting save.")
		return nil
	}
	if !a.graph.Has(a.config.EntryID) {
		a.console.Warn(fmt.Sprintf("The adventure has no %s node; it cannot be opened again until one is added.", a.config.EntryID))
	}

	confirm := func(ctx context.Context, _ string) (bool, error) {
		return a.console.Confirm(ctx, "WARNING: FILE EXISTS. OVERWRITE?")
	}
	err = a.store.Save(ctx, a.graph, name, confirm)
	switch {
	case err == nil:
		a.console.Success("File Saved, returning to Main Menu")
	case errors.Is(err, storage.ErrDeclined):
		a.console.Say("Not overwriting, aborting save.")
	case isInputFailure(err):
		return err
	default:
		a.console.Error(fmt.Sprintf("FILE SAVE ERROR: %v", err))
	}
	return nil
}
