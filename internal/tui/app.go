package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcobzarenco/zentui/internal/editor"
	"github.com/mcobzarenco/zentui/internal/model"
)

// — messages ————————————————————————————————————————————————————————————————

// boardLoadedMsg delivers the one-per-session board fetch result.
type boardLoadedMsg struct {
	board model.Board
	err   error
}

// issueLoadedMsg delivers one issue fetch completion from the fan-out.
type issueLoadedMsg struct {
	number model.IssueNumber
	issue  model.Issue
	err    error
}

// issueEditedMsg delivers the outcome of an external edit. Edits are
// out of band of the fetch fan-out: they never touch the pending
// counter.
type issueEditedMsg struct {
	number model.IssueNumber
	issue  model.Issue
	err    error
}

type nextPipelineMsg struct{}
type previousPipelineMsg struct{}
type nextIssueMsg struct{}
type previousIssueMsg struct{}
type selectIssueMsg struct{ index int }
type hidePipelineMsg struct{ index int }
type hideSelectedPipelineMsg struct{}
type showAllPipelinesMsg struct{}
type editSelectedIssueMsg struct{}
type quitMsg struct{}

// — spinner —————————————————————————————————————————————————————————————————

// progressFrames is the sliding-block pattern shown while fetches are
// pending.
var progressFrames = []string{
	"▉", "▊", "▋", "▌", "▍", "▎", "▏", "▎", "▍", "▌", "▋", "▊", "▉",
}

// — model ———————————————————————————————————————————————————————————————————

// Config carries everything the dashboard needs at construction.
type Config struct {
	Fetcher        *Fetcher
	Repo           model.Repo
	Theme          Theme
	EditorOverride string
	Logger         *slog.Logger
}

// Model is the reactive core: it owns the board view state, the issue
// store and the pending-task counter, and is the only place any of
// them are mutated. All external events (keys, fetch completions, edit
// results) arrive as messages through Update, one at a time.
type Model struct {
	fetcher *Fetcher
	repo    model.Repo
	theme   Theme
	logger  *slog.Logger

	board    BoardView
	issues   *IssueStore
	pending  int
	boardErr string

	chord   ChordMatcher
	spinner spinner.Model

	editorOverride string

	width  int
	height int
}

// New builds the dashboard model. The board fetch is dispatched from
// Init, so the pending counter starts at one.
func New(config Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Spinner{Frames: progressFrames, FPS: time.Second / 10}
	s.Style = config.Theme.Status.Indicator

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return Model{
		fetcher:        config.Fetcher,
		repo:           config.Repo,
		theme:          config.Theme,
		logger:         logger,
		issues:         NewIssueStore(),
		pending:        1,
		spinner:        s,
		editorOverride: config.EditorOverride,
	}
}

// — tea.Model ———————————————————————————————————————————————————————————————

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetcher.FetchBoard(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case boardLoadedMsg:
		return m.applyBoardLoaded(msg)

	case issueLoadedMsg:
		m.decrementPending()
		m.issues.Put(msg.number, remoteValue(msg.issue, msg.err))
		return m, nil

	case issueEditedMsg:
		if msg.err != nil {
			m.logger.Error("issue edit failed", "number", msg.number, "err", msg.err)
		}
		m.issues.Put(msg.number, remoteValue(msg.issue, msg.err))
		return m, nil

	case nextPipelineMsg:
		m.board.SelectNextPipeline()
		return m, nil

	case previousPipelineMsg:
		m.board.SelectPreviousPipeline()
		return m, nil

	case selectIssueMsg:
		if pipeline := m.board.Selected(); pipeline != nil {
			pipeline.SelectIssue(msg.index)
		}
		return m, nil

	case hidePipelineMsg:
		m.board.HidePipeline(msg.index)
		return m, nil

	case showAllPipelinesMsg:
		m.board.ShowAllPipelines()
		return m, nil
	}
	return m, nil
}

// handleKey runs the chord matcher and resolves selection-relative
// commands against the current state, the way the original bindings
// close over the selected pipeline.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	match := m.chord.Feed(key.String())
	switch match.Msg.(type) {
	case nil:
		return m, nil
	case quitMsg:
		return m, tea.Quit
	case nextIssueMsg:
		if pipeline := m.board.Selected(); pipeline != nil {
			return m.Update(selectIssueMsg{index: pipeline.SelectedIssue + 1})
		}
		return m, nil
	case previousIssueMsg:
		if pipeline := m.board.Selected(); pipeline != nil && pipeline.SelectedIssue > 0 {
			return m.Update(selectIssueMsg{index: pipeline.SelectedIssue - 1})
		}
		return m, nil
	case hideSelectedPipelineMsg:
		return m.Update(hidePipelineMsg{index: m.board.SelectedPipeline})
	case editSelectedIssueMsg:
		return m.startEdit()
	default:
		return m.Update(match.Msg)
	}
}

// — reducer helpers —————————————————————————————————————————————————————————

// applyBoardLoaded installs the new board view and triggers the
// bounded fetch fan-out: the first issues of every pipeline, one
// command and one pending count per dispatched fetch.
func (m Model) applyBoardLoaded(msg boardLoadedMsg) (tea.Model, tea.Cmd) {
	m.decrementPending()
	if msg.err != nil {
		m.logger.Error("board fetch failed", "repo", m.repo.FullName, "err", msg.err)
		m.boardErr = msg.err.Error()
		return m, nil
	}
	m.boardErr = ""
	m.board = NewBoardView(msg.board)

	refs := m.fetcher.FanOutRefs(msg.board)
	cmds := make([]tea.Cmd, 0, len(refs))
	for _, ref := range refs {
		m.issues.MarkPending(ref.Number)
		m.pending++
		cmds = append(cmds, m.fetcher.FetchIssue(ref.Number))
	}
	return m, tea.Batch(cmds...)
}

// startEdit blocks the reducer on the external editor: bubbletea hands
// the terminal to the sub-process and no other message is applied
// until it exits. Only a Ready issue can be edited.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	pipeline := m.board.Selected()
	if pipeline == nil {
		return m, nil
	}
	ref, ok := pipeline.SelectedRef()
	if !ok {
		return m, nil
	}
	issue, ready := m.issues.Get(ref.Number).Value()
	if !ready {
		return m, nil
	}

	session, err := editor.NewSession(issue.Title, issue.Body)
	if err != nil {
		m.logger.Error("could not start editor", "number", ref.Number, "err", err)
		return m, nil
	}
	return m, tea.ExecProcess(session.Cmd(m.editorOverride), func(execErr error) tea.Msg {
		defer session.Close()
		if execErr != nil {
			return issueEditedMsg{number: issue.Number, err: execErr}
		}
		title, body, err := session.Result()
		if err != nil {
			return issueEditedMsg{number: issue.Number, err: err}
		}
		edited := issue
		edited.Title = title
		edited.Body = body
		return issueEditedMsg{number: issue.Number, issue: edited}
	})
}

func (m *Model) decrementPending() {
	if m.pending > 0 {
		m.pending--
	}
}

// remoteValue converts a fetch completion into a store entry. The full
// error detail has already been logged; the store keeps only the
// display string.
func remoteValue(issue model.Issue, err error) model.RemoteValue[model.Issue] {
	if err != nil {
		return model.Errored[model.Issue](err.Error())
	}
	return model.Ready(issue)
}
