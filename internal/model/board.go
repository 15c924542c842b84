package model

// RepoID is the numeric repository identifier shared by both services.
type RepoID int64

// Repo is the repository the dashboard was opened on.
type Repo struct {
	ID       RepoID `json:"id"`
	FullName string `json:"full_name"` // "owner/name"
}

// Board is the source of truth for the pipeline hierarchy. It is
// fetched once per session and never mutated afterwards; all selection
// and visibility state lives in derived views.
type Board struct {
	Pipelines []Pipeline `json:"pipelines"`
}

// Pipeline is one ordered column of issue references on the board.
type Pipeline struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Issues []IssueRef `json:"issues"`
}

// IssueRef points at an issue by number. Full issue bodies are never
// embedded here; they live in the issue store, keyed by number.
type IssueRef struct {
	Number IssueNumber `json:"issue_number"`
	IsEpic bool        `json:"is_epic"`
}
