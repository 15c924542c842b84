package tui

import "github.com/mcobzarenco/zentui/internal/model"

// IssueStore maps issue numbers to their load state. Entries are
// created Pending when a fetch is dispatched and overwritten whole on
// every completion — last write wins. The store only grows; nothing is
// evicted within a session.
type IssueStore struct {
	issues map[model.IssueNumber]model.RemoteValue[model.Issue]
}

// NewIssueStore returns an empty store.
func NewIssueStore() *IssueStore {
	return &IssueStore{issues: make(map[model.IssueNumber]model.RemoteValue[model.Issue])}
}

// MarkPending records that a fetch for the issue is in flight.
func (s *IssueStore) MarkPending(number model.IssueNumber) {
	s.issues[number] = model.Pending[model.Issue]()
}

// Put stores a completed fetch result, replacing any prior entry.
func (s *IssueStore) Put(number model.IssueNumber, value model.RemoteValue[model.Issue]) {
	s.issues[number] = value
}

// Get returns the load state for an issue. Issues the orchestrator has
// not dispatched yet (beyond the fan-out cap) read as Pending.
func (s *IssueStore) Get(number model.IssueNumber) model.RemoteValue[model.Issue] {
	if value, ok := s.issues[number]; ok {
		return value
	}
	return model.Pending[model.Issue]()
}

// Len returns the number of tracked issues.
func (s *IssueStore) Len() int { return len(s.issues) }
