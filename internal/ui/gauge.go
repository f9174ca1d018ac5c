package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/harmonica"
)

// gauge is a progress bar whose displayed fraction trails its target on a
// discrete spring, so parameter changes glide instead of jumping.
type gauge struct {
	bar    progress.Model
	spring harmonica.Spring
	value  float64
	vel    float64
	target float64
}

func newGauge() gauge {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	return gauge{
		bar:    bar,
		spring: harmonica.NewSpring(harmonica.FPS(30), 8.0, 0.9),
	}
}

// snap sets the gauge immediately, bypassing the spring.
func (g *gauge) snap(v float64) {
	g.value = v
	g.target = v
	g.vel = 0
}

func (g *gauge) step() {
	g.value, g.vel = g.spring.Update(g.value, g.vel, g.target)
}

func (g gauge) view(width int) string {
	g.bar.Width = width
	v := g.value
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return g.bar.ViewAs(v)
}
