package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/semaphore"

	"github.com/mcobzarenco/zentui/internal/github"
	"github.com/mcobzarenco/zentui/internal/model"
	"github.com/mcobzarenco/zentui/internal/zenhub"
)

// Fetcher dispatches the dashboard's network fetches as bubbletea
// commands. Each command runs in its own goroutine and delivers exactly
// one completion message; a weighted semaphore bounds how many issue
// fetches hit the API at once. There are no retries, no cancellation
// and no timeouts: a hung fetch only degrades the liveness indicator.
type Fetcher struct {
	github      *github.Client
	zenhub      *zenhub.Client
	repo        model.Repo
	perPipeline int
	sem         *semaphore.Weighted
	logger      *slog.Logger
}

// NewFetcher wires the orchestrator to its API clients. perPipeline is
// the eager fan-out cap per pipeline; maxConcurrent bounds in-flight
// issue fetches.
func NewFetcher(githubClient *github.Client, zenhubClient *zenhub.Client, repo model.Repo,
	perPipeline, maxConcurrent int, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		github:      githubClient,
		zenhub:      zenhubClient,
		repo:        repo,
		perPipeline: perPipeline,
		sem:         semaphore.NewWeighted(int64(maxConcurrent)),
		logger:      logger,
	}
}

// FetchBoard loads the repository's oldest board.
func (f *Fetcher) FetchBoard() tea.Cmd {
	return func() tea.Msg {
		board, err := f.zenhub.GetOldestBoard(context.Background(), f.repo.ID)
		return boardLoadedMsg{board: board, err: err}
	}
}

// FetchIssue loads one issue's full detail.
func (f *Fetcher) FetchIssue(number model.IssueNumber) tea.Cmd {
	return func() tea.Msg {
		if err := f.sem.Acquire(context.Background(), 1); err != nil {
			return issueLoadedMsg{number: number, err: err}
		}
		defer f.sem.Release(1)
		issue, err := f.github.GetIssue(context.Background(), f.repo.FullName, number)
		if err != nil {
			f.logger.Error("issue fetch failed", "number", number, "err", err)
		}
		return issueLoadedMsg{number: number, issue: issue, err: err}
	}
}

// FanOutRefs selects the issues fetched eagerly after a board load:
// the first perPipeline issues of every pipeline, in board order.
func (f *Fetcher) FanOutRefs(board model.Board) []model.IssueRef {
	return fanOutRefs(board, f.perPipeline)
}

func fanOutRefs(board model.Board, limit int) []model.IssueRef {
	var refs []model.IssueRef
	for _, pipeline := range board.Pipelines {
		issues := pipeline.Issues
		if len(issues) > limit {
			issues = issues[:limit]
		}
		refs = append(refs, issues...)
	}
	return refs
}
