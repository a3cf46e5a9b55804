package widgets

import (
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/widget"
)

// ProgressBarStyle is the style of a ProgressBar.
type ProgressBarStyle struct {
	BorderRadius           float64         `yaml:"border_radius"`
	BorderWidth            float64         `yaml:"border_width"`
	BorderColor            rendering.Color `yaml:"border_color"`
	BackgroundColor        rendering.Color `yaml:"background_color"`
	ProgressColor          rendering.Color `yaml:"progress_color"`
	ProjectedProgressColor rendering.Color `yaml:"projected_progress_color"`
}

// ProgressBar shows a progress fraction and, optionally, a projected
// progress ahead of it. Children are painted on top of the bar.
type ProgressBar struct {
	widget.Base[ProgressBarStyle]

	width, height *float64
	progress      float64
	projected     *float64
}

// NewProgressBar returns an empty ProgressBar. Nil dimensions take the
// available space.
func NewProgressBar(width, height *float64) *ProgressBar {
	return &ProgressBar{width: width, height: height}
}

// ProgressBarFromSpec builds a ProgressBar from its spec.
func ProgressBarFromSpec(s *spec.ProgressBarSpec) *ProgressBar {
	return NewProgressBar(s.Width, s.Height)
}

// SetProgress sets the progress, clamped to [0, 1].
func (p *ProgressBar) SetProgress(progress float64) *ProgressBar {
	p.progress = clamp01(progress)
	return p
}

// SetProjectedProgress sets the projected progress, clamped to [0, 1].
func (p *ProgressBar) SetProjectedProgress(projected float64) *ProgressBar {
	v := clamp01(projected)
	p.projected = &v
	return p
}

// Progress returns the current progress.
func (p *ProgressBar) Progress() float64 { return p.progress }

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// BaseClass returns "progress_bar".
func (p *ProgressBar) BaseClass() string { return "progress_bar" }

// Layout uses the fixed width and height, or the available size.
func (p *ProgressBar) Layout(_ *ProgressBarStyle, data *widget.Data, cx *widget.Context, available rendering.Size) {
	size := rendering.Size{
		Width:  orDefault(p.width, available.Width),
		Height: orDefault(p.height, available.Height),
	}
	data.SetSize(size)
	for _, child := range data.Children() {
		child.Layout(cx, available)
	}
}

// Paint draws the track, the progress, any projected progress past it and the border.
func (p *ProgressBar) Paint(s *ProgressBarStyle, data *widget.Data, cx *widget.Context) {
	size := data.Size()
	radius := rendering.CircularRadius(s.BorderRadius)
	rrect := func(left, width float64) rendering.RRect {
		return rendering.RRectFromRectAndRadius(rendering.RectFromLTWH(left, 0, width, size.Height), radius)
	}

	cx.Canvas.DrawRRect(rrect(0, size.Width), rendering.FillPaint(s.BackgroundColor))
	progressWidth := size.Width * p.progress
	cx.Canvas.DrawRRect(rrect(0, progressWidth), rendering.FillPaint(s.ProgressColor))
	if p.projected != nil && *p.projected > p.progress {
		cx.Canvas.DrawRRect(rrect(progressWidth, size.Width*(*p.projected-p.progress)),
			rendering.FillPaint(s.ProjectedProgressColor))
	}
	if s.BorderWidth > 0 {
		cx.Canvas.DrawRRect(rrect(0, size.Width), rendering.StrokePaint(s.BorderColor, s.BorderWidth))
	}

	data.PaintChildren(cx)
}
