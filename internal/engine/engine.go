package engine

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

// DefaultReturnToken is the input that leaves a run and goes back to the menu.
const DefaultReturnToken = "R"

// State is the terminal state a run finished in.
type State int

const (
	// Ended means a terminal node was reached.
	Ended State = iota + 1
	// Aborted means the operator returned to the menu or the run failed.
	Aborted
)

func (s State) String() string {
	switch s {
	case Ended:
		return "Ended"
	case Aborted:
		return "Aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result describes how a run finished.
type Result struct {
	State State
	// Node is the last node the run was at.
	Node nodeid.ID
	// Steps is the number of nodes displayed, revisits included.
	Steps int
}

// Options tunes a Runner.
type Options struct {
	// ReturnToken is matched case-insensitively after trimming. Defaults to
	// DefaultReturnToken.
	ReturnToken string
}

// Runner executes runs over one graph. The graph is only read.
type Runner struct {
	graph   graph.Reader
	console *console.Console
	opts    Options
}

// New creates a Runner.
func New(g graph.Reader, con *console.Console, opts Options) *Runner {
	if opts.ReturnToken == "" {
		opts.ReturnToken = DefaultReturnToken
	}
	return &Runner{graph: g, console: con, opts: opts}
}

// selection is the outcome of reading one line of input at a node.
type selection struct {
	back   bool
	choice int // 1-based, valid only when back is false
}

// parseSelection interprets one input line for a node with n choices.
func parseSelection(input string, n int, returnToken string) (selection, bool) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, returnToken) {
		return selection{back: true}, true
	}
	v, err := strconv.Atoi(input)
	if err != nil || v < 1 || v > n {
		return selection{}, false
	}
	return selection{choice: v}, true
}

// Run walks the graph starting at from. A graceful return to the menu
// yields an Aborted result with a nil error. A structural problem yields an
// Aborted result and a *NodeError. Input failures (end of input, cancelled
// context) yield an Aborted result and that error.
func (r *Runner) Run(ctx context.Context, from nodeid.ID) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Run started.", "from", from)

	res := Result{Node: from}
	current := from
	var previous nodeid.ID
	for {
		res.Node = current
		n, ok := r.graph.Get(current)
		if !ok {
			res.State = Aborted
			r.console.Error(fmt.Sprintf("Bad node!  Missing node in the adventure %s", current))
			logger.Warn("Run aborted on missing node.", "node", current, "from", previous)
			return res, &NodeError{Kind: ErrMissingTargetNode, ID: current, From: previous}
		}
		if err := n.Validate(); err != nil {
			res.State = Aborted
			r.console.Error(fmt.Sprintf("Corrupted node %s: it should have a prompt and matching messages and nodes.", current))
			logger.Warn("Run aborted on corrupt node.", "node", current, "error", err)
			return res, &NodeError{Kind: ErrCorruptNode, ID: current, Err: err}
		}

		res.Steps++
		logger.Debug("Entered node.", "node", current, "choices", len(n.Choices), "step", res.Steps)
		r.display(n)
		if n.IsTerminal() {
			r.console.Say("THE END")
			res.State = Ended
			logger.Info("Run ended.", "node", current, "steps", res.Steps)
			return res, nil
		}

		sel, err := r.choose(ctx, n)
		if err != nil {
			res.State = Aborted
			logger.Debug("Run interrupted while waiting for input.", "node", current, "error", err)
			return res, fmt.Errorf("reading selection at node %q: %w", current, err)
		}
		if sel.back {
			r.console.Say("Bye, thanks for playing!")
			res.State = Aborted
			logger.Info("Run left by operator.", "node", current, "steps", res.Steps)
			return res, nil
		}

		previous, current = current, n.Choices[sel.choice-1].Target
		logger.Debug("Choice selected.", "from", previous, "choice", sel.choice, "to", current)
		if !r.graph.Has(current) {
			res.State = Aborted
			r.console.Error(fmt.Sprintf("Bad node!  Missing node in the adventure %s", current))
			logger.Warn("Run aborted on missing target node.", "from", previous, "target", current)
			return res, &NodeError{Kind: ErrMissingTargetNode, ID: current, From: previous}
		}
	}
}

// display prints the prompt and the numbered choices of a node.
func (r *Runner) display(n *node.Node) {
	r.console.Say(n.Prompt)
	if n.IsTerminal() {
		return
	}
	for i, c := range n.Choices {
		r.console.Sayf("%d. %s", i+1, c.Message)
	}
	r.console.Sayf("%s. Return to the Main Menu", r.opts.ReturnToken)
}

// choose reads lines until one is a valid selection for n.
func (r *Runner) choose(ctx context.Context, n *node.Node) (selection, error) {
	for {
		line, err := r.console.ReadLine(ctx)
		if err != nil {
			return selection{}, err
		}
		if sel, ok := parseSelection(line, len(n.Choices), r.opts.ReturnToken); ok {
			return sel, nil
		}
		ctxlog.FromContext(ctx).Debug("Rejected selection.", "input", line)
		r.console.Sayf("Please select from one of the numbered selections or enter '%s' to return to the main menu.", r.opts.ReturnToken)
	}
}
