package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Session is one round trip through the user's interactive editor. The
// issue's title and body are written to a temp file as
// "{title}\n\n{body}"; after the editor exits, Result splits the edited
// text back along the same convention.
type Session struct {
	path string
}

// NewSession writes the editable text to a temp markdown file.
func NewSession(title, body string) (*Session, error) {
	file, err := os.CreateTemp("", "zentui-*.md")
	if err != nil {
		return nil, fmt.Errorf("editor: create temp file: %w", err)
	}
	if _, err := file.WriteString(title + "\n\n" + body); err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, fmt.Errorf("editor: write temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return nil, fmt.Errorf("editor: close temp file: %w", err)
	}
	return &Session{path: file.Name()}, nil
}

// Cmd returns the editor invocation for the session's file. The editor
// is resolved from the override, then $VISUAL, then $EDITOR, falling
// back to vi. It must run attached to the terminal.
func (s *Session) Cmd(override string) *exec.Cmd {
	return exec.Command(resolveEditor(override), s.path)
}

// Result reads the edited text back and splits it into title and body.
func (s *Session) Result() (title, body string, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", "", fmt.Errorf("editor: read edited file: %w", err)
	}
	title, body = Split(string(data))
	return title, body, nil
}

// Close removes the temp file.
func (s *Session) Close() {
	os.Remove(s.path)
}

// Split divides edited text into title and body: the first line is the
// title, the remainder after one separating blank line is the body.
func Split(text string) (title, body string) {
	text = strings.TrimSuffix(text, "\n")
	title, body, found := strings.Cut(text, "\n")
	title = strings.TrimSpace(title)
	if !found {
		return title, ""
	}
	return title, strings.TrimPrefix(body, "\n")
}

func resolveEditor(override string) string {
	if override != "" {
		return override
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}
