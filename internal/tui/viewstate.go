package tui

import "github.com/mcobzarenco/zentui/internal/model"

// PipelineView wraps one board pipeline with its visibility flag and
// per-pipeline issue selection. SelectedIssue always satisfies
// SelectedIssue < len(Issues) when the pipeline is non-empty, else 0.
type PipelineView struct {
	Pipeline      model.Pipeline
	Hidden        bool
	SelectedIssue int
}

// SelectIssue clamps the requested index to the issue count.
func (p *PipelineView) SelectIssue(index int) {
	max := len(p.Pipeline.Issues) - 1
	if max < 0 {
		max = 0
	}
	if index > max {
		index = max
	}
	if index < 0 {
		index = 0
	}
	p.SelectedIssue = index
}

// SelectedRef returns the issue reference under the cursor.
func (p *PipelineView) SelectedRef() (model.IssueRef, bool) {
	if p.SelectedIssue >= len(p.Pipeline.Issues) {
		return model.IssueRef{}, false
	}
	return p.Pipeline.Issues[p.SelectedIssue], true
}

// BoardView holds the selection and visibility state over all
// pipelines. Whenever any pipeline is visible, SelectedPipeline indexes
// a visible one; when every pipeline is hidden it falls back to 0.
type BoardView struct {
	Pipelines        []PipelineView
	SelectedPipeline int
}

// NewBoardView derives the initial view from a freshly loaded board.
func NewBoardView(board model.Board) BoardView {
	views := make([]PipelineView, len(board.Pipelines))
	for i, pipeline := range board.Pipelines {
		views[i] = PipelineView{Pipeline: pipeline}
	}
	return BoardView{Pipelines: views}
}

// SelectNextPipeline moves the selection right to the nearest visible
// pipeline, clamping at the end. No wraparound.
func (b *BoardView) SelectNextPipeline() {
	if len(b.Pipelines) == 0 {
		return
	}
	index := b.SelectedPipeline
	max := len(b.Pipelines) - 1
	for {
		if index < max {
			index++
		}
		if !b.Pipelines[index].Hidden {
			b.SelectedPipeline = index
			break
		}
		if index == max {
			break
		}
	}
}

// SelectPreviousPipeline moves the selection left to the nearest
// visible pipeline, clamping at 0.
func (b *BoardView) SelectPreviousPipeline() {
	if len(b.Pipelines) == 0 {
		return
	}
	index := b.SelectedPipeline
	for {
		if index > 0 {
			index--
		}
		if !b.Pipelines[index].Hidden {
			b.SelectedPipeline = index
			break
		}
		if index == 0 {
			break
		}
	}
}

// HidePipeline hides the pipeline at index. If the selected pipeline
// becomes hidden, the nearest visible one is re-selected by scanning
// backward then forward; when everything is hidden the selection falls
// back to index 0.
func (b *BoardView) HidePipeline(index int) {
	if index < 0 || index >= len(b.Pipelines) {
		return
	}
	b.Pipelines[index].Hidden = true
	if b.Pipelines[b.SelectedPipeline].Hidden {
		b.SelectPreviousPipeline()
	}
	if b.Pipelines[b.SelectedPipeline].Hidden {
		b.SelectNextPipeline()
	}
	if b.Pipelines[b.SelectedPipeline].Hidden {
		b.SelectedPipeline = 0
	}
}

// ShowAllPipelines clears every hidden flag.
func (b *BoardView) ShowAllPipelines() {
	for i := range b.Pipelines {
		b.Pipelines[i].Hidden = false
	}
}

// Selected returns the selected pipeline view, or nil on an empty
// board. Note the result may be hidden when every pipeline is hidden.
func (b *BoardView) Selected() *PipelineView {
	if b.SelectedPipeline >= len(b.Pipelines) {
		return nil
	}
	return &b.Pipelines[b.SelectedPipeline]
}
