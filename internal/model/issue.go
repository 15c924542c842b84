package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// IssueNumber identifies an issue within its repository.
type IssueNumber int

func (n IssueNumber) String() string { return "#" + strconv.Itoa(int(n)) }

// IssueState is the lifecycle state reported by the issue service.
type IssueState string

const (
	IssueOpen   IssueState = "open"
	IssueClosed IssueState = "closed"
)

// Issue holds the full detail fetched for a single issue.
type Issue struct {
	Number IssueNumber `json:"number"`
	Title  string      `json:"title"`
	Body   string      `json:"body"`
	State  IssueState  `json:"state"`
	Labels []Label     `json:"labels"`
	// PullRequest is non-nil when the issue is backed by a pull request.
	PullRequest *PullRequestRef `json:"pull_request"`
}

// IsPullRequest reports whether the issue carries a pull-request marker.
func (i Issue) IsPullRequest() bool { return i.PullRequest != nil }

// PullRequestRef marks an issue as a pull request. The API returns link
// fields here; only the marker's presence matters to the dashboard.
type PullRequestRef struct {
	URL string `json:"url"`
}

// Label is a named, coloured tag attached to an issue.
type Label struct {
	Name   string `json:"name"`
	Colour Colour `json:"color"`
}

// Colour is a 24-bit RGB colour.
type Colour struct {
	R, G, B uint8
}

// Hex returns the colour in "#rrggbb" form, suitable for lipgloss.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// UnmarshalJSON parses the bare hex form used by the issue API,
// e.g. "f29513" (no leading '#').
func (c *Colour) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err != nil {
		return err
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("colour %q: %w", hex, err)
	}
	c.R = uint8(v >> 16 & 0xff)
	c.G = uint8(v >> 8 & 0xff)
	c.B = uint8(v & 0xff)
	return nil
}
