// Package editor implements the interactive node editor: a session that
// creates or replaces nodes one at a time until the operator quits.
//
// Choice targets are accepted as free text and are not checked against the
// graph. A session may leave dangling references behind on purpose; they are
// reported later by the validator.
package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/gamebook/internal/console"
	"github.com/specialistvlad/gamebook/internal/ctxlog"
	"github.com/specialistvlad/gamebook/internal/graph"
	"github.com/specialistvlad/gamebook/internal/node"
	"github.com/specialistvlad/gamebook/internal/nodeid"
)

const (
	// DefaultMaxBranches is the largest number of choices a node may get.
	DefaultMaxBranches = 9
	// DefaultQuitToken ends a session when entered instead of an identifier.
	DefaultQuitToken = "quit!"
	// DefaultEndMarker terminates the multi-line prompt input.
	DefaultEndMarker = "//"
	// listWidth is the number of characters after which the identifier
	// listing wraps to a new line.
	listWidth = 70
)

// Options tunes an Editor. Zero values select the defaults.
type Options struct {
	MaxBranches int
	QuitToken   string // matched case-insensitively
	EndMarker   string
	Entry       nodeid.ID
}

// Editor mutates one graph through an interactive session.
type Editor struct {
	graph   graph.Graph
	console *console.Console
	opts    Options
}

// New creates an Editor for g.
func New(g graph.Graph, con *console.Console, opts Options) *Editor {
	if opts.MaxBranches <= 0 {
		opts.MaxBranches = DefaultMaxBranches
	}
	if opts.QuitToken == "" {
		opts.QuitToken = DefaultQuitToken
	}
	if opts.EndMarker == "" {
		opts.EndMarker = DefaultEndMarker
	}
	if opts.Entry.IsZero() {
		opts.Entry = nodeid.Entry
	}
	return &Editor{graph: g, console: con, opts: opts}
}

// Session runs the edit loop until the quit token is entered and returns
// the graph, mutated in place. If input fails midway, every node completed
// before the failure is kept, the node being entered is discarded and the
// error is returned alongside the graph.
func (e *Editor) Session(ctx context.Context) (graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Editor session started.", "nodes", e.graph.Len())

	edited := 0
	for {
		e.listIDs()
		e.console.Sayf("Please name or create a node to edit, starting with '%s' (or type %s to return to the main menu)", e.opts.Entry, e.opts.QuitToken)

		id, quit, err := e.pickID(ctx)
		if err != nil {
			return e.graph, fmt.Errorf("choosing node to edit: %w", err)
		}
		if quit {
			logger.Debug("Editor session finished.", "edited", edited, "nodes", e.graph.Len())
			return e.graph, nil
		}

		n, err := e.collect(ctx, id)
		if err != nil {
			logger.Warn("Node entry abandoned.", "node", id, "error", err)
			return e.graph, fmt.Errorf("editing node %q: %w", id, err)
		}

		replaced := e.graph.Has(id)
		e.graph.Put(id, n)
		edited++
		logger.Info("Node stored.", "node", id, "replaced", replaced, "choices", len(n.Choices))
		e.console.Success(fmt.Sprintf("Thank you for entering node %s", id))
	}
}

// listIDs prints the existing identifiers comma-separated, wrapping long lines.
func (e *Editor) listIDs() {
	e.console.Say("These nodes are already part of the tree:")
	var sb strings.Builder
	lineLen := 0
	for _, id := range e.graph.IDs() {
		sb.WriteString(id.String())
		sb.WriteString(", ")
		lineLen += len(id)
		if lineLen > listWidth {
			e.console.Muted(sb.String())
			sb.Reset()
			lineLen = 0
		}
	}
	// Styles pad multi-line text to a common width, so each line is
	// rendered on its own.
	e.console.Muted(sb.String())
}

// pickID reads identifiers until one is usable. Declining to replace an
// existing node returns to the identifier prompt without touching the graph.
func (e *Editor) pickID(ctx context.Context) (nodeid.ID, bool, error) {
	for {
		line, err := e.console.ReadLine(ctx)
		if err != nil {
			return "", false, err
		}
		if strings.EqualFold(strings.TrimSpace(line), e.opts.QuitToken) {
			return "", true, nil
		}

		id, err := nodeid.Parse(line)
		if err != nil {
			e.console.Sayf("Please enter a node name, or %s to return to the main menu.", e.opts.QuitToken)
			continue
		}
		if !e.graph.Has(id) {
			return id, false, nil
		}

		ok, err := e.console.Confirm(ctx, "You will be replacing an existing node.  Is that ok? (Type Y -Enter for yes)")
		if err != nil {
			return "", false, err
		}
		if ok {
			return id, false, nil
		}
		ctxlog.FromContext(ctx).Debug("Replacement declined.", "node", id)
		e.console.Sayf("Node %s was left unchanged. Name another node, or type %s to return to the main menu.", id, e.opts.QuitToken)
	}
}

// collect gathers the prompt and choices for id into a new node. Nothing is
// written to the graph here.
func (e *Editor) collect(ctx context.Context, id nodeid.ID) (*node.Node, error) {
	e.console.Sayf("Please enter the prompt text for this node.  You may use several lines.  When you are done, enter '%s'-Enter", e.opts.EndMarker)
	if existing, ok := e.graph.Get(id); ok && existing != nil {
		e.console.Say("The current prompt is:", existing.Prompt)
	}

	prompt, err := e.readPrompt(ctx)
	if err != nil {
		return nil, err
	}

	e.console.Sayf("Thank you for the prompt.  How many branches would you like?  Please enter a number from 0 (making this an end node) to %d.", e.opts.MaxBranches)
	count, err := e.readBranchCount(ctx)
	if err != nil {
		return nil, err
	}

	n := &node.Node{Prompt: prompt}
	for i := 0; i < count; i++ {
		e.console.Sayf("Enter the message for choice #%d", i+1)
		msg, err := e.console.ReadLine(ctx)
		if err != nil {
			return nil, err
		}
		e.console.Sayf("Enter the target node name for choice #%d", i+1)
		target, err := e.console.ReadLine(ctx)
		if err != nil {
			return nil, err
		}
		n.Choices = append(n.Choices, node.Choice{Message: msg, Target: nodeid.ID(target)})
	}
	return n, nil
}

// readPrompt reads lines until the end marker and joins them with newlines.
func (e *Editor) readPrompt(ctx context.Context) (string, error) {
	var lines []string
	for {
		line, err := e.console.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if line == e.opts.EndMarker {
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
}

// readBranchCount re-prompts until a number in [0, MaxBranches] is entered.
func (e *Editor) readBranchCount(ctx context.Context) (int, error) {
	for {
		line, err := e.console.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		count, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && count >= 0 && count <= e.opts.MaxBranches {
			return count, nil
		}
		e.console.Sayf("Please enter a number from 0 to %d.", e.opts.MaxBranches)
	}
}
