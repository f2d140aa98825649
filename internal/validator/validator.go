// Package validator checks the referential integrity of an adventure graph:
// the entry node must exist and every choice must lead to an existing node.
//
// Reachability is not checked. A node no path leads to is not a problem.
package validator

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gamebook/internal/ctxlog"
	"github.com/specialistvlad/gamebook/internal/graph"
	"github.com/specialistvlad/gamebook/internal/nodeid"
)

// Kind distinguishes the problems the validator reports.
type Kind int

const (
	// MissingEntry means the graph has no node under the entry identifier.
	MissingEntry Kind = iota
	// DanglingTarget means a choice names a node that is not in the graph.
	DanglingTarget
)

func (k Kind) String() string {
	switch k {
	case MissingEntry:
		return "MissingEntry"
	case DanglingTarget:
		return "DanglingTarget"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Problem is a single integrity violation. For MissingEntry, Target holds the
// entry identifier and From is empty. For DanglingTarget, From is the node
// holding the choice, Choice its 1-based position and Target the missing node.
type Problem struct {
	Kind   Kind
	From   nodeid.ID
	Choice int
	Target nodeid.ID
}

// Error makes a Problem usable as an error, e.g. for errors.Join in logs.
func (p Problem) Error() string {
	return p.String()
}

// String renders the problem as operator-facing text.
func (p Problem) String() string {
	switch p.Kind {
	case MissingEntry:
		return fmt.Sprintf("No %s node!", p.Target)
	case DanglingTarget:
		return fmt.Sprintf("Missing Target Node: %s (from %s, choice %d)", p.Target, p.From, p.Choice)
	default:
		return p.Kind.String()
	}
}

// Check visits every node and every choice once and returns all problems
// found. A MissingEntry problem, if any, comes first; dangling targets follow
// in identifier order and, within a node, in choice order. The graph is
// never modified.
func Check(ctx context.Context, g graph.Reader, entry nodeid.ID) []Problem {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validator started.", "nodes", g.Len(), "entry", entry)

	var problems []Problem
	if !g.Has(entry) {
		problems = append(problems, Problem{Kind: MissingEntry, Target: entry})
	}

	edges := 0
	for _, id := range g.IDs() {
		n, _ := g.Get(id)
		if n == nil {
			continue
		}
		for i, c := range n.Choices {
			edges++
			if !g.Has(c.Target) {
				problems = append(problems, Problem{Kind: DanglingTarget, From: id, Choice: i + 1, Target: c.Target})
			}
		}
	}

	logger.Debug("Validator finished.", "edges", edges, "problems", len(problems))
	return problems
}

// Clean reports whether a problem list describes a clean graph.
func Clean(problems []Problem) bool {
	return len(problems) == 0
}
