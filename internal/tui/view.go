package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcobzarenco/zentui/internal/model"
)

const cardHeight = 10 // border included

// — top-level layout ————————————————————————————————————————————————————————

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	bodyHeight := m.height - 1
	body := m.renderBoard(bodyHeight)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m Model) renderBoard(height int) string {
	var visible []int
	for i, pipeline := range m.board.Pipelines {
		if !pipeline.Hidden {
			visible = append(visible, i)
		}
	}
	if len(visible) == 0 {
		message := "No visible pipelines — ctrl+x ctrl+h reveals hidden ones."
		if len(m.board.Pipelines) == 0 {
			message = "Loading board…"
			if m.boardErr != "" {
				message = "Could not load board."
			}
		}
		return lipgloss.NewStyle().
			Width(m.width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(message)
	}

	columnWidth := (m.width - (len(visible) - 1)) / len(visible)
	if columnWidth < 8 {
		columnWidth = 8
	}

	divider := m.theme.Divider.Render(strings.TrimSuffix(
		strings.Repeat("│\n", height), "\n"))

	parts := make([]string, 0, 2*len(visible)-1)
	for n, index := range visible {
		if n > 0 {
			parts = append(parts, divider)
		}
		parts = append(parts, m.renderPipeline(index, columnWidth, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// — pipeline column —————————————————————————————————————————————————————————

func (m Model) renderPipeline(index, width, height int) string {
	pipeline := &m.board.Pipelines[index]
	focused := index == m.board.SelectedPipeline
	theme := m.theme.PipelineUnfocused
	if focused {
		theme = m.theme.PipelineFocused
	}

	subtitle := "(empty)"
	if n := len(pipeline.Pipeline.Issues); n == 1 {
		subtitle = "(1 issue)"
	} else if n > 1 {
		subtitle = fmt.Sprintf("(%d issues)", n)
	}

	lines := []string{
		theme.Title.Width(width).Render(pipeline.Pipeline.Name),
		theme.Subtitle.Width(width).Render(subtitle),
	}

	// Keep the selected card in the window.
	cardsHeight := height - 2
	maxCards := cardsHeight / cardHeight
	if maxCards < 1 {
		maxCards = 1
	}
	first := 0
	if pipeline.SelectedIssue >= maxCards {
		first = pipeline.SelectedIssue - maxCards + 1
	}
	for i := first; i < len(pipeline.Pipeline.Issues) && i < first+maxCards; i++ {
		ref := pipeline.Pipeline.Issues[i]
		card := m.renderCard(ref, width, theme.Card, focused && i == pipeline.SelectedIssue)
		lines = append(lines, card)
	}

	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// — issue card ——————————————————————————————————————————————————————————————

func (m Model) renderCard(ref model.IssueRef, width int, theme CardTheme, focused bool) string {
	borderStyle := theme.Border
	if focused {
		borderStyle = theme.Text
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderStyle.GetForeground()).
		Width(width - 2).
		Height(cardHeight - 2)
	innerWidth := width - 2
	innerHeight := cardHeight - 2

	value := m.issues.Get(ref.Number)
	heading := cardHeading(ref, value)

	var content string
	switch value.State() {
	case model.StatePending:
		content = theme.Number.Render("Loading issue...")
	case model.StateError:
		content = theme.Number.Width(innerWidth).Render(value.ErrMessage())
	case model.StateReady:
		issue, _ := value.Value()
		content = m.renderIssueContent(issue, innerWidth, innerHeight-1, theme, focused)
	}

	card := lipgloss.JoinVertical(lipgloss.Left,
		theme.Text.Bold(true).Render(heading),
		content,
	)
	return box.Render(card)
}

// cardHeading marks pull requests with a branch glyph and epics with a
// diamond, matching the board's issue refs.
func cardHeading(ref model.IssueRef, value model.RemoteValue[model.Issue]) string {
	heading := " " + ref.Number.String() + " "
	if issue, ok := value.Value(); ok && issue.IsPullRequest() {
		heading += "⎇  "
	}
	if ref.IsEpic {
		heading += "◆ "
	}
	return heading
}

func (m Model) renderIssueContent(issue model.Issue, width, height int, theme CardTheme, focused bool) string {
	title := theme.Number.Width(width).Render(issue.Title)
	lines := strings.Split(title, "\n")

	chips, flowHeight := FlowLabels(width, issue.Labels)
	lines = append(lines, renderChipRows(chips, flowHeight)...)

	// The focused card spends its remaining rows on a body preview.
	if focused && issue.Body != "" {
		remaining := height - len(lines)
		if remaining > 0 {
			for _, line := range strings.Split(m.renderMarkdown(issue.Body, width), "\n") {
				if remaining == 0 {
					break
				}
				lines = append(lines, line)
				remaining--
			}
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// renderChipRows turns chip placements into one rendered line per
// row. Placement X positions already account for inter-chip spaces.
func renderChipRows(chips []ChipPlacement, height int) []string {
	rows := make([]string, height)
	cursor := make([]int, height)
	for _, chip := range chips {
		row := chip.Y
		if gap := chip.X - cursor[row]; gap > 0 {
			rows[row] += strings.Repeat(" ", gap)
		}
		foreground := lipgloss.Color("#ffffff")
		if IsLightColour(chip.Colour) {
			foreground = lipgloss.Color("#000000")
		}
		rows[row] += lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color(chip.Colour.Hex())).
			Foreground(foreground).
			Render(chip.Text)
		cursor[row] = chip.X + chip.Width
	}
	return rows
}

func (m Model) renderMarkdown(body string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return body
	}
	out, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return strings.Trim(out, "\n")
}

// — status bar ——————————————————————————————————————————————————————————————

func (m Model) renderStatusBar() string {
	indicator := m.theme.Status.Indicator.Render("✓")
	if m.pending > 0 {
		indicator = m.spinner.View()
	}

	text := " " + m.repo.FullName
	if m.chord.Pending() {
		text += "  ctrl+x -"
	}
	if m.boardErr != "" {
		text += "  " + m.theme.Status.Error.Render(m.boardErr)
	}

	bar := indicator + m.theme.Status.Text.Render(text)
	return lipgloss.NewStyle().Width(m.width).MaxHeight(1).Render(bar)
}
