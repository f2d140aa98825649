package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/gamebook/internal/graph"
	"github.com/specialistvlad/gamebook/internal/node"
	"github.com/specialistvlad/gamebook/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leftRight = `{
  "start": {"prompt": "Go left or right?", "messages": ["left", "right"], "nodes": ["left", "right"]},
  "left": {"prompt": "You fell in a pit.", "messages": [], "nodes": []},
  "right": {"prompt": "You win!", "messages": [], "nodes": []}
}`

func writeAdventure(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_ExitOption(t *testing.T) {
	a, out, _ := SetupAppTest(t, Config{}, "6", "1")

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 1, strings.Count(out.String(), "Welcome to Choose-Your-Own-Adventure!"))
	assert.Contains(t, out.String(), "6. Exit the program")
}

func TestRun_EndOfInputExits(t *testing.T) {
	a, out, _ := SetupAppTest(t, Config{})

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Please select from the following options!")
}

func TestRun_InvalidMenuSelection(t *testing.T) {
	a, out, _ := SetupAppTest(t, Config{}, "7", "six", "6")

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Please enter 1, 2, 3, 4, 5, or 6.  You entered 7")
	assert.Contains(t, out.String(), "You entered six")
	assert.Equal(t, 3, strings.Count(out.String(), "Welcome to Choose-Your-Own-Adventure!"))
}

func TestRun_OpenAndPlay(t *testing.T) {
	dir := t.TempDir()
	path := writeAdventure(t, dir, "lr.json", leftRight)

	a, out, _ := SetupAppTest(t, Config{AdventureDir: dir}, "1", path, "2", "2", "6")

	require.NoError(t, a.Run(context.Background()))
	text := out.String()
	assert.Contains(t, text, "Adventure files in "+dir)
	assert.Contains(t, text, "Loaded 3 nodes from "+path)
	assert.Contains(t, text, "Go left or right?\n1. left\n2. right\nR. Return to the Main Menu\n")
	assert.Contains(t, text, "You win!\nTHE END\n")
}

func TestRun_PlayInvalidThenReturn(t *testing.T) {
	path := writeAdventure(t, t.TempDir(), "lr.json", leftRight)

	a, out, _ := SetupAppTest(t, Config{AdventurePath: path}, "2", "5", "r", "6")

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Please select from one of the numbered selections or enter 'R' to return to the main menu.")
	assert.Contains(t, out.String(), "Bye, thanks for playing!")
	assert.NotContains(t, out.String(), "THE END")
}

func TestRun_OpenFailuresKeepCurrentGraph(t *testing.T) {
	dir := t.TempDir()
	good := writeAdventure(t, dir, "lr.json", leftRight)
	garbage := writeAdventure(t, dir, "bad.json", "not json at all")
	noStart := writeAdventure(t, dir, "nostart.json", `{"a": {"prompt": "p", "messages": [], "nodes": []}}`)
	missing := filepath.Join(dir, "missing.json")

	a, out, _ := SetupAppTest(t, Config{AdventurePath: good, AdventureDir: dir},
		"1", missing,
		"1", garbage,
		"1", noStart,
		"6",
	)

	require.NoError(t, a.Run(context.Background()))
	text := out.String()
	assert.Contains(t, text, "I cannot find your adventure file.")
	assert.Contains(t, text, "I could not read the file and turn it into a dictionary.")
	assert.Contains(t, text, "I got the error:")
	assert.Contains(t, text, "bad adventure file loaded: no start node")
	assert.Equal(t, 3, a.Graph().Len())
	assert.True(t, a.Graph().Has("start"))
}

func TestRun_RunWithoutAdventure(t *testing.T) {
	a, out, _ := SetupAppTest(t, Config{}, "2", "4", "6")

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "no adventure loaded to run")
	assert.Contains(t, out.String(), "No tree to check!")
}

func TestRun_RunAbortsOnMissingTarget(t *testing.T) {
	path := writeAdventure(t, t.TempDir(), "dangling.json",
		`{"start": {"prompt": "Where?", "messages": ["nowhere"], "nodes": ["void"]}}`)

	a, out, logs := SetupAppTest(t, Config{AdventurePath: path}, "2", "1", "4", "6")

	require.NoError(t, a.Run(context.Background()))
	text := out.String()
	assert.Contains(t, text, "Bad node!  Missing node in the adventure void")
	assert.Contains(t, text, "Missing Target Node: void (from start, choice 1)")
	assert.Contains(t, logs.String(), "Run aborted.")
}

func TestRun_CycleIsPlayable(t *testing.T) {
	path := writeAdventure(t, t.TempDir(), "loop.json",
		`{"start": {"prompt": "Again?", "messages": ["again", "stop"], "nodes": ["start", "end"]}, "end": {"prompt": "Done.", "messages": [], "nodes": []}}`)

	a, out, _ := SetupAppTest(t, Config{AdventurePath: path}, "2", "1", "1", "1", "2", "6")

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 4, strings.Count(out.String(), "Again?"))
	assert.Contains(t, out.String(), "Done.\nTHE END")
}

func TestRun_EditCheckSaveAndReopen(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "new.yaml")

	a, out, _ := SetupAppTest(t, Config{AdventureDir: dir},
		"3",
		"start", "You stand at a fork.", "Pick a path.", "//", "2",
		"go left", "left",
		"go right", "right",
		"quit!",
		"4",
		"3",
		"left", "A dead end.", "//", "0",
		"right", "Treasure!", "//", "0",
		"quit!",
		"4",
		"5", target,
		"1", target,
		"6",
	)

	require.NoError(t, a.Run(context.Background()))
	text := out.String()
	assert.Contains(t, text, "Thank you for entering node start")
	assert.Contains(t, text, "Missing Target Node: left (from start, choice 1)")
	assert.Contains(t, text, "Missing Target Node: right (from start, choice 2)")
	assert.Contains(t, text, "No missing nodes found")
	assert.Contains(t, text, "File Saved, returning to Main Menu")
	assert.Contains(t, text, "Loaded 3 nodes from "+target)

	want := graph.New()
	start, err := node.New("You stand at a fork.\nPick a path.", []string{"go left", "go right"}, []nodeid.ID{"left", "right"})
	require.NoError(t, err)
	want.Put("start", start)
	want.Put("left", &node.Node{Prompt: "A dead end."})
	want.Put("right", &node.Node{Prompt: "Treasure!"})
	assert.True(t, graph.Equal(want, a.Graph()))
}

func TestRun_SaveOverwriteConfirmation(t *testing.T) {
	dir := t.TempDir()
	path := writeAdventure(t, dir, "lr.json", leftRight)
	existing := writeAdventure(t, dir, "keep.json", "precious")

	a, out, _ := SetupAppTest(t, Config{AdventurePath: path},
		"5", existing, "no",
		"5", existing, "",
		"5", existing, "Yes",
		"6",
	)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 3, strings.Count(out.String(), "WARNING: FILE EXISTS. OVERWRITE?"))
	assert.Equal(t, 2, strings.Count(out.String(), "Not overwriting, aborting save."))
	assert.Equal(t, 1, strings.Count(out.String(), "File Saved, returning to Main Menu"))

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.NotEqual(t, "precious", string(data))
	assert.Contains(t, string(data), `"Go left or right?"`)
}

func TestRun_SaveFailureReported(t *testing.T) {
	path := writeAdventure(t, t.TempDir(), "lr.json", leftRight)
	bad := filepath.Join(t.TempDir(), "no", "such", "dir.json")

	a, out, _ := SetupAppTest(t, Config{AdventurePath: path}, "5", bad, "5", "  ", "6")

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "FILE SAVE ERROR:")
	assert.Contains(t, out.String(), "No filename entered, aborting save.")
	assert.NotContains(t, out.String(), "File Saved")
}

func TestRun_SaveWarnsWithoutEntry(t *testing.T) {
	target := filepath.Join(t.TempDir(), "draft.hcl")

	a, out, _ := SetupAppTest(t, Config{},
		"3", "middle", "Somewhere.", "//", "0", "quit!",
		"5", target,
		"6",
	)

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "The adventure has no start node")
	assert.Contains(t, out.String(), "File Saved, returning to Main Menu")
	assert.FileExists(t, target)
}

func TestRun_CustomEntry(t *testing.T) {
	path := writeAdventure(t, t.TempDir(), "intro.json",
		`{"intro": {"prompt": "Hello there.", "messages": [], "nodes": []}}`)

	a, out, _ := SetupAppTest(t, Config{AdventurePath: path, EntryID: "intro"}, "2", "6")

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Hello there.\nTHE END")
}

func TestRun_EndOfInputInsideEditorKeepsCompletedNodes(t *testing.T) {
	a, _, _ := SetupAppTest(t, Config{},
		"3", "start", "Begin.", "//", "0",
		"half", "unfinished prompt",
	)

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, a.Graph().Has("start"))
	assert.False(t, a.Graph().Has("half"))
}
