package validator

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/gamebook/internal/graph"
	"github.com/specialistvlad/gamebook/internal/node"
	"github.com/specialistvlad/gamebook/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureNode struct {
	prompt   string
	messages []string
	targets  []nodeid.ID
}

func buildGraph(t *testing.T, nodes map[nodeid.ID]fixtureNode) *graph.Store {
	t.Helper()
	g := graph.New()
	for id, fn := range nodes {
		n, err := node.New(fn.prompt, fn.messages, fn.targets)
		require.NoError(t, err)
		g.Put(id, n)
	}
	return g
}

func TestCheck_CleanGraph(t *testing.T) {
	g := buildGraph(t, map[nodeid.ID]fixtureNode{
		"start": {"Go left or right?", []string{"left", "right"}, []nodeid.ID{"left", "right"}},
		"left":  {prompt: "You fell in a pit."},
		"right": {prompt: "You win!"},
	})

	problems := Check(context.Background(), g, nodeid.Entry)
	assert.Empty(t, problems)
	assert.True(t, Clean(problems))
}

func TestCheck_MissingEntry(t *testing.T) {
	testCases := []struct {
		name  string
		nodes map[nodeid.ID]fixtureNode
	}{
		{name: "empty graph"},
		{
			name: "other nodes present",
			nodes: map[nodeid.ID]fixtureNode{
				"Start": {prompt: "wrong case"},
			},
		},
		{
			name: "dangling targets present too",
			nodes: map[nodeid.ID]fixtureNode{
				"a": {"p", []string{"m"}, []nodeid.ID{"missing"}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, tc.nodes)
			problems := Check(context.Background(), g, nodeid.Entry)
			require.NotEmpty(t, problems)
			assert.Equal(t, Problem{Kind: MissingEntry, Target: nodeid.Entry}, problems[0])
			assert.False(t, Clean(problems))
		})
	}
}

func TestCheck_EntryPresentNeverReportsMissingEntry(t *testing.T) {
	g := buildGraph(t, map[nodeid.ID]fixtureNode{
		"start": {"p", []string{"a", "b"}, []nodeid.ID{"x", "y"}},
	})

	for _, p := range Check(context.Background(), g, nodeid.Entry) {
		assert.NotEqual(t, MissingEntry, p.Kind)
	}
}

func TestCheck_CustomEntry(t *testing.T) {
	g := buildGraph(t, map[nodeid.ID]fixtureNode{
		"intro": {prompt: "hello"},
	})

	assert.Empty(t, Check(context.Background(), g, "intro"))
	assert.Equal(t, []Problem{{Kind: MissingEntry, Target: nodeid.Entry}}, Check(context.Background(), g, nodeid.Entry))
}

func TestCheck_DanglingTargetScenario(t *testing.T) {
	g := buildGraph(t, map[nodeid.ID]fixtureNode{
		"start": {"p", []string{"m"}, []nodeid.ID{"missing"}},
	})

	problems := Check(context.Background(), g, nodeid.Entry)
	want := []Problem{{Kind: DanglingTarget, From: "start", Choice: 1, Target: "missing"}}
	if diff := cmp.Diff(want, problems); diff != "" {
		t.Errorf("Check() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Missing Target Node: missing (from start, choice 1)", problems[0].String())
}

func TestCheck_ReportsEveryDanglingChoiceInOrder(t *testing.T) {
	g := buildGraph(t, map[nodeid.ID]fixtureNode{
		"start": {"p", []string{"a", "b", "c"}, []nodeid.ID{"gone", "mid", "gone"}},
		"mid":   {"q", []string{"back", "away"}, []nodeid.ID{"start", "void"}},
	})

	want := []Problem{
		{Kind: DanglingTarget, From: "mid", Choice: 2, Target: "void"},
		{Kind: DanglingTarget, From: "start", Choice: 1, Target: "gone"},
		{Kind: DanglingTarget, From: "start", Choice: 3, Target: "gone"},
	}
	if diff := cmp.Diff(want, Check(context.Background(), g, nodeid.Entry)); diff != "" {
		t.Errorf("Check() mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck_NoDanglingMeansAllTargetsExist(t *testing.T) {
	g := buildGraph(t, map[nodeid.ID]fixtureNode{
		"start": {"p", []string{"a", "b"}, []nodeid.ID{"ok", "bad"}},
		"ok":    {"q", []string{"loop"}, []nodeid.ID{"start"}},
	})
	problems := Check(context.Background(), g, nodeid.Entry)

	flagged := make(map[nodeid.ID]bool)
	for _, p := range problems {
		if p.Kind == DanglingTarget {
			flagged[p.From] = true
		}
	}
	for _, id := range g.IDs() {
		if flagged[id] {
			continue
		}
		n, _ := g.Get(id)
		for _, c := range n.Choices {
			assert.True(t, g.Has(c.Target), "node %s target %s", id, c.Target)
		}
	}
	assert.True(t, flagged["start"])
}

func TestCheck_DoesNotMutate(t *testing.T) {
	g := buildGraph(t, map[nodeid.ID]fixtureNode{
		"start": {"p", []string{"m"}, []nodeid.ID{"missing"}},
	})
	before := buildGraph(t, map[nodeid.ID]fixtureNode{
		"start": {"p", []string{"m"}, []nodeid.ID{"missing"}},
	})

	Check(context.Background(), g, nodeid.Entry)
	assert.True(t, graph.Equal(before, g))
}

func TestCheck_SkipsNilNodes(t *testing.T) {
	g := graph.New()
	g.Put("start", nil)

	assert.Empty(t, Check(context.Background(), g, nodeid.Entry))
}

func TestProblem_String(t *testing.T) {
	assert.Equal(t, "No start node!", Problem{Kind: MissingEntry, Target: "start"}.String())
	assert.Equal(t, "No start node!", Problem{Kind: MissingEntry, Target: "start"}.Error())
	assert.Equal(t, "Kind(7)", Problem{Kind: Kind(7)}.String())
}
