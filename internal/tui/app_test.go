package tui

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcobzarenco/zentui/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	logger := discardLogger()
	repo := model.Repo{ID: 1, FullName: "octocat/spoon-knife"}
	fetcher := NewFetcher(nil, nil, repo, 7, 4, logger)
	return New(Config{
		Fetcher: fetcher,
		Repo:    repo,
		Theme:   NewTheme(Icy),
		Logger:  logger,
	})
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestBoardLoadedTriggersFanOut(t *testing.T) {
	m := newTestModel(t)
	if m.pending != 1 {
		t.Fatalf("pending = %d before board load, want 1", m.pending)
	}

	board := testBoard(3, 0, 2)
	m, cmd := apply(t, m, boardLoadedMsg{board: board})

	// One dispatch per issue in the fan-out, paired with one pending
	// count each; the board fetch itself has completed.
	if m.pending != 5 {
		t.Fatalf("pending = %d, want 5", m.pending)
	}
	if cmd == nil {
		t.Fatal("expected fetch commands for the fan-out")
	}
	if m.issues.Len() != 5 {
		t.Fatalf("store tracks %d issues, want 5", m.issues.Len())
	}
	for _, ref := range fanOutRefs(board, 7) {
		if m.issues.Get(ref.Number).State() != model.StatePending {
			t.Fatalf("issue %v not marked pending", ref.Number)
		}
	}
	if len(m.board.Pipelines) != 3 {
		t.Fatalf("board view has %d pipelines, want 3", len(m.board.Pipelines))
	}
}

func TestFanOutCapsAtFirstSevenPerPipeline(t *testing.T) {
	board := testBoard(9, 3)
	refs := fanOutRefs(board, 7)
	if len(refs) != 10 {
		t.Fatalf("fan-out has %d refs, want 7+3", len(refs))
	}
	// The cap takes the first issues in pipeline order.
	if refs[0].Number != 1 || refs[6].Number != 7 || refs[7].Number != 101 {
		t.Fatalf("unexpected fan-out order: %v", refs)
	}
}

func TestBoardLoadFailureDegradesToBanner(t *testing.T) {
	m := newTestModel(t)
	m, cmd := apply(t, m, boardLoadedMsg{err: errors.New("status 500")})

	if m.pending != 0 {
		t.Fatalf("pending = %d, want 0", m.pending)
	}
	if cmd != nil {
		t.Fatal("no fetches should be dispatched on board failure")
	}
	if m.boardErr == "" {
		t.Fatal("board error banner not set")
	}
	if len(m.board.Pipelines) != 0 {
		t.Fatal("board should stay empty after a failed load")
	}
}

func TestIssueLoadedStoresResultAndDecrements(t *testing.T) {
	m := newTestModel(t)
	m, _ = apply(t, m, boardLoadedMsg{board: testBoard(1)})

	m, _ = apply(t, m, issueLoadedMsg{number: 1, issue: model.Issue{Number: 1, Title: "hello"}})
	if m.pending != 0 {
		t.Fatalf("pending = %d, want 0", m.pending)
	}
	issue, ok := m.issues.Get(1).Value()
	if !ok || issue.Title != "hello" {
		t.Fatalf("stored issue = %+v, %v", issue, ok)
	}
}

func TestIssueLoadedErrorIsRecoveredLocally(t *testing.T) {
	m := newTestModel(t)
	m, _ = apply(t, m, boardLoadedMsg{board: testBoard(1)})

	m, _ = apply(t, m, issueLoadedMsg{number: 1, err: errors.New("decode failure")})
	value := m.issues.Get(1)
	if value.State() != model.StateError || value.ErrMessage() != "decode failure" {
		t.Fatalf("stored value = %v %q", value.State(), value.ErrMessage())
	}
	if m.boardErr != "" {
		t.Fatal("per-issue failures must not surface as board errors")
	}
}

func TestIssueEditedLeavesCounterUntouched(t *testing.T) {
	m := newTestModel(t)
	m, _ = apply(t, m, boardLoadedMsg{board: testBoard(1)})
	before := m.pending

	m, _ = apply(t, m, issueEditedMsg{number: 1, issue: model.Issue{Number: 1, Title: "edited"}})
	if m.pending != before {
		t.Fatalf("pending changed from %d to %d on edit", before, m.pending)
	}
	issue, _ := m.issues.Get(1).Value()
	if issue.Title != "edited" {
		t.Fatalf("edit result not stored: %+v", issue)
	}
}

func TestPendingCounterNeverNegative(t *testing.T) {
	m := newTestModel(t)
	m, _ = apply(t, m, boardLoadedMsg{board: testBoard(1)})
	for i := 0; i < 5; i++ {
		m, _ = apply(t, m, issueLoadedMsg{number: 1, issue: model.Issue{Number: 1}})
	}
	if m.pending < 0 {
		t.Fatalf("pending = %d, went negative", m.pending)
	}
}

func TestNavigationKeysDriveSelection(t *testing.T) {
	m := newTestModel(t)
	m, _ = apply(t, m, boardLoadedMsg{board: testBoard(2, 2, 2)})

	m, _ = apply(t, m, keyMsg("l"))
	if m.board.SelectedPipeline != 1 {
		t.Fatalf("SelectedPipeline = %d after l, want 1", m.board.SelectedPipeline)
	}
	m, _ = apply(t, m, keyMsg("h"))
	if m.board.SelectedPipeline != 0 {
		t.Fatalf("SelectedPipeline = %d after h, want 0", m.board.SelectedPipeline)
	}

	m, _ = apply(t, m, keyMsg("j"))
	if m.board.Selected().SelectedIssue != 1 {
		t.Fatalf("SelectedIssue = %d after j, want 1", m.board.Selected().SelectedIssue)
	}
	m, _ = apply(t, m, keyMsg("j")) // clamps at the bottom
	if m.board.Selected().SelectedIssue != 1 {
		t.Fatalf("SelectedIssue = %d, want clamp at 1", m.board.Selected().SelectedIssue)
	}
	m, _ = apply(t, m, keyMsg("k"))
	if m.board.Selected().SelectedIssue != 0 {
		t.Fatalf("SelectedIssue = %d after k, want 0", m.board.Selected().SelectedIssue)
	}
}

func TestHideChordRoundTrip(t *testing.T) {
	m := newTestModel(t)
	m, _ = apply(t, m, boardLoadedMsg{board: testBoard(1, 1)})

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlH})
	if !m.board.Pipelines[0].Hidden {
		t.Fatal("ctrl+h did not hide the selected pipeline")
	}
	if m.board.SelectedPipeline != 1 {
		t.Fatalf("SelectedPipeline = %d, want 1", m.board.SelectedPipeline)
	}

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if !m.chord.Pending() {
		t.Fatal("leader key did not enter the prefix state")
	}
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlH})
	if m.board.Pipelines[0].Hidden {
		t.Fatal("ctrl+x ctrl+h did not reveal hidden pipelines")
	}
}

func TestQuitChord(t *testing.T) {
	m := newTestModel(t)
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	_, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+x ctrl+c should quit")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("cmd produced %#v, want tea.QuitMsg", msg)
	}
}
