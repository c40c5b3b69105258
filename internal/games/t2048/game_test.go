package t2048

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestDeterministicReset(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(12345))

	g2 := New()
	g2.Reset(testConfig(12345))

	if g1.Session().Board() != g2.Session().Board() {
		t.Errorf("same seed should produce same board:\n%v\nvs\n%v",
			g1.Session().Board(), g2.Session().Board())
	}

	// A second Reset with the same seed replays the same board.
	first := g1.Session().Board()
	g1.Step(press(core.ActionLeft))
	g1.Reset(testConfig(12345))
	if g1.Session().Board() != first {
		t.Error("reseeded Reset should reproduce the initial board")
	}
}

func TestStepMoves(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	g.session.board = BoardFromRows([BoardSize][BoardSize]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(press(core.ActionRight))
	if !res.Moved {
		t.Fatal("right should move the board")
	}
	if res.State.Score != 4 || res.State.HighScore != 4 {
		t.Errorf("state = %+v, want score and best 4", res.State)
	}
	if len(g.lastSpawn) != 1 {
		t.Errorf("lastSpawn = %v, want one cell", g.lastSpawn)
	}

	if g.Step(core.NewInputFrame()).Moved {
		t.Error("empty frame should not move")
	}
}

func TestStepAppliesQueuedMoves(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	g.session.board = BoardFromRows([BoardSize][BoardSize]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	// Two presses landing in the same tick are both applied.
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionLeft)
	res := g.Step(in)
	if !res.Moved {
		t.Fatal("queued moves should move the board")
	}
	if got := g.Session().Moves(); got != 2 {
		t.Errorf("Moves() = %d, want 2", got)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	board := g.Session().Board()

	if !g.Step(press(core.ActionPause)).State.Paused {
		t.Fatal("pause should pause")
	}
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		g.Step(press(a))
	}
	if g.Session().Board() != board {
		t.Error("moves while paused changed the board")
	}

	if g.Step(press(core.ActionPause)).State.Paused {
		t.Error("second pause should resume")
	}
}

func TestRestartReportsRun(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	if res := g.Step(press(core.ActionRestart)); res.RunEnded {
		t.Error("restart with no points should not report a run")
	}

	g.session.board = BoardFromRows([BoardSize][BoardSize]int{
		{8, 8, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Step(press(core.ActionLeft))

	res := g.Step(press(core.ActionRestart))
	if !res.RunEnded || res.FinalScore != 16 {
		t.Errorf("restart = %+v, want run ended with 16", res)
	}
	if res.State.Score != 0 || res.State.HighScore != 16 {
		t.Errorf("after restart state = %+v", res.State)
	}
}

func TestWinEndsRunOnce(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	g.session.board = BoardFromRows([BoardSize][BoardSize]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(press(core.ActionLeft))
	if !res.RunEnded || !res.State.GameOver || res.FinalScore != 2048 {
		t.Fatalf("winning move = %+v", res)
	}
	if snap := g.Snapshot(); snap.State != StateWon || !snap.Won {
		t.Errorf("snapshot = %+v, want won", snap)
	}

	if res := g.Step(press(core.ActionRight)); res.RunEnded || res.Moved {
		t.Errorf("move after win = %+v", res)
	}
	if res := g.Step(press(core.ActionRestart)); res.RunEnded {
		t.Error("restart after a recorded win should not report the run again")
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	board := g.Session().Board()

	g.Resize(10, 5)
	if !g.State().Paused || g.Snapshot().State != StatePausedSmall {
		t.Error("tiny window should pause the game")
	}
	if g.Step(press(core.ActionLeft)).Moved {
		t.Error("moves should be ignored while the window is too small")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("large window should resume")
	}
	if g.Session().Board() != board {
		t.Error("Resize changed the board")
	}
}

func TestClassicVariant(t *testing.T) {
	store := newMemStore()

	g := NewClassic()
	g.UseStore(store, nil)
	g.Reset(testConfig(7))

	if g.Session().Rules().MergeRule != MergeOncePerTile {
		t.Errorf("classic merge rule = %s", g.Session().Rules().MergeRule)
	}

	g.session.board = BoardFromRows([BoardSize][BoardSize]int{
		{2, 2, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	res := g.Step(press(core.ActionRight))
	if res.State.Score != 8 {
		t.Errorf("classic score = %d, want 8", res.State.Score)
	}

	if store.values[BestScoreKey(IDClassic)] != "8" {
		t.Errorf("store = %v, want namespaced best score", store.values)
	}
	if _, ok := store.values[HighScoreKey]; ok {
		t.Error("classic variant wrote the standard best score")
	}
}

func TestStandardUsesBareHighScoreKey(t *testing.T) {
	store := newMemStore()
	store.values[HighScoreKey] = "500"

	g := New()
	g.UseStore(store, nil)
	g.Reset(testConfig(7))

	if g.State().HighScore != 500 {
		t.Errorf("HighScore = %d, want 500", g.State().HighScore)
	}
}

func TestBestScoreKey(t *testing.T) {
	if got := BestScoreKey(IDStandard); got != HighScoreKey {
		t.Errorf("BestScoreKey(standard) = %q", got)
	}
	if got := BestScoreKey(IDClassic); got != "2048_classic:highscore" {
		t.Errorf("BestScoreKey(classic) = %q", got)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	g.session.board = BoardFromRows([BoardSize][BoardSize]int{
		{2048, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "Score: 0", "Best:", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	need := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
	tests := []struct {
		name string
		w, h int
		want []string
	}{
		{"narrow", 10, 5, []string{"Too small", need}},
		{"short", 20, 5, []string{"Window too small", need}},
		{"one row", 20, 1, []string{"Window too small"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Resize(tt.w, tt.h)
			small := core.NewScreen(tt.w, tt.h)
			g.Render(small)
			for _, want := range tt.want {
				if !strings.Contains(small.String(), want) {
					t.Errorf("render missing %q:\n%s", want, small.String())
				}
			}
		})
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(2) == TileColor(2048) {
		t.Error("small and winning tiles should differ in color")
	}
	if TileColor(1<<16) != core.ColorBrightRed {
		t.Error("huge tiles should be bright red")
	}
	if TileColor(0) != core.ColorDefault {
		t.Error("empty cell should use the default color")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDStandard, IDClassic} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if _, ok := g.(registry.Persistent); !ok {
			t.Errorf("%s should accept a store", id)
		}
	}
}
