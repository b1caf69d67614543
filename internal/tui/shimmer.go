package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ShimmerConfig holds configuration for the shimmer on the selected card title
type ShimmerConfig struct {
	Enabled      bool
	ReduceMotion bool    // static highlight instead of a moving one
	SpeedMs      int     // tick interval
	WidthRatio   float64 // highlight width as a share of the text
	CycleTicks   int     // ticks for one sweep across the text
	PauseTicks   int     // ticks to hold between sweeps
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:    true,
		SpeedMs:    100,
		WidthRatio: 0.25,
		CycleTicks: 18,
		PauseTicks: 5,
	}
}

// ShimmerState is a sweep of light across a title. It advances one step per
// tick, so it is driven by the tea.Tick loop rather than the wall clock.
type ShimmerState struct {
	Config ShimmerConfig
	tick   int
}

// NewShimmerState creates a new shimmer state
func NewShimmerState(config ShimmerConfig) *ShimmerState {
	return &ShimmerState{Config: config}
}

// Active reports whether the shimmer moves
func (s *ShimmerState) Active() bool {
	return s.Config.Enabled && !s.Config.ReduceMotion
}

// Advance moves the sweep one tick forward
func (s *ShimmerState) Advance() {
	if !s.Active() {
		return
	}
	s.tick = (s.tick + 1) % (s.Config.CycleTicks + s.Config.PauseTicks)
}

// Reset restarts the sweep, call it when the selection changes
func (s *ShimmerState) Reset() {
	s.tick = 0
}

// center is the position of the highlight for a text of n glyphs. During the
// pause it rests past the end of the text.
func (s *ShimmerState) center(n int) float64 {
	margin := float64(n) * s.Config.WidthRatio
	if s.tick >= s.Config.CycleTicks {
		return float64(n) + margin
	}
	progress := float64(s.tick) / float64(s.Config.CycleTicks)
	return -margin + progress*(float64(n)+2*margin)
}

// weights returns how strongly each glyph is lit, between 0 and 1
func (s *ShimmerState) weights(n int) []float64 {
	sigma := math.Max(1, s.Config.WidthRatio*float64(n)/2)
	c := s.center(n)
	w := make([]float64, n)
	for i := range w {
		dx := float64(i) - c
		w[i] = math.Min(1, math.Max(0, math.Exp(-(dx*dx)/(2*sigma*sigma))))
	}
	return w
}

// Render draws text, cut to maxWidth glyphs, with the highlight at its current
// position. lipgloss degrades the colours on terminals without truecolor.
func (s *ShimmerState) Render(text string, maxWidth int) string {
	runes := []rune(truncate(text, maxWidth))
	if len(runes) == 0 {
		return ""
	}
	if !s.Active() {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true).Render(string(runes))
	}

	// Base #B1B8C7 blending into #EAE6FF
	base := [3]float64{177, 184, 199}
	light := [3]float64{234, 230, 255}

	var b strings.Builder
	for i, w := range s.weights(len(runes)) {
		hex := fmt.Sprintf("#%02X%02X%02X",
			int(base[0]*(1-w)+light[0]*w),
			int(base[1]*(1-w)+light[1]*w),
			int(base[2]*(1-w)+light[2]*w))
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true).Render(string(runes[i])))
	}
	return b.String()
}

// Interval returns the interval for tea.Tick commands
func (s *ShimmerState) Interval() time.Duration {
	return time.Duration(s.Config.SpeedMs) * time.Millisecond
}

// truncate cuts s to max glyphs, ending in an ellipsis when shortened
func truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 {
		return ""
	}
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
