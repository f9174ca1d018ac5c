package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/fling/internal/motion"
	"github.com/olivier-w/fling/internal/plot"
	"github.com/olivier-w/fling/internal/util"
)

const (
	impulse = 0.8 // velocity added per keypress, field units/s

	minDampingRatio = 0.05
	maxDampingRatio = 2.0
	minResponse     = 0.1
	maxResponse     = 2.0
	paramStep       = 0.05

	settleThreshold = 0.001
	minSettle       = 0.3
	maxSettle       = 10.0

	traceSamples = 120
)

// Model is the Bubbletea model for the fling demo. The card lives on the
// unit square; the four corners are the anchors a fling can land on.
type Model struct {
	spring       motion.Spring
	dampingRatio float64
	response     float64

	pos motion.Vector // card position in normalized field coordinates
	vel motion.Vector // queued fling velocity, field units/s

	anchors  []motion.Vector
	selected int // anchor of the last fling, -1 before the first

	flinging   bool
	animStart  motion.Vector
	animTarget motion.Vector
	curve      motion.VectorTimingCurve
	elapsed    float64
	duration   float64

	trace []float64 // normalized progress of the last fling, for the plot

	adjust        AdjustMode
	dampingGauge  gauge
	responseGauge gauge

	width    int
	height   int
	quitting bool
}

// New creates the demo model with a critically damped spring and the card
// parked in the middle of the field.
func New() Model {
	m := Model{
		dampingRatio: 1,
		response:     0.5,
		pos:          motion.Vector{X: 0.5, Y: 0.5},
		anchors: []motion.Vector{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
		},
		selected:      -1,
		dampingGauge:  newGauge(),
		responseGauge: newGauge(),
	}
	m.rebuildSpring()
	m.dampingGauge.snap(m.dampingRatio / maxDampingRatio)
	m.responseGauge.snap(m.response / maxResponse)
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg), nil

	case tickMsg:
		m.step(tickInterval.Seconds())
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "left", "h":
		m.addImpulse(-impulse, 0)
	case "right", "l":
		m.addImpulse(impulse, 0)
	case "up", "k":
		m.addImpulse(0, -impulse)
	case "down", "j":
		m.addImpulse(0, impulse)
	case " ":
		m.release()
	case "tab":
		m.adjust = m.adjust.Next()
	case "+", "=":
		m.adjustParam(paramStep)
	case "-", "_":
		m.adjustParam(-paramStep)
	case "r":
		if !m.flinging {
			m.pos = motion.Vector{X: 0.5, Y: 0.5}
			m.vel = motion.Vector{}
			m.selected = -1
		}
	}
	return m
}

func (m *Model) addImpulse(x, y float64) {
	if m.flinging {
		return
	}
	m.vel = m.vel.Add(motion.Vector{X: x, Y: y})
}

func (m *Model) adjustParam(delta float64) {
	switch m.adjust {
	case AdjustResponse:
		m.response = clamp(m.response+delta, minResponse, maxResponse)
	default:
		m.dampingRatio = clamp(m.dampingRatio+delta, minDampingRatio, maxDampingRatio)
	}
	m.rebuildSpring()
}

func (m *Model) rebuildSpring() {
	s, err := motion.DesignSpring(m.dampingRatio, m.response)
	if err != nil {
		return // parameters are clamped before we get here
	}
	m.spring = s
	m.dampingGauge.target = m.dampingRatio / maxDampingRatio
	m.responseGauge.target = m.response / maxResponse
}

// release hands the queued fling to the engine: suppress-and-project picks
// the destination anchor, the spring turns the absolute velocity into a
// timing curve, and the card then animates by evaluating the closed form.
func (m *Model) release() {
	if m.flinging {
		return
	}
	idx, err := motion.NearestAnchor(m.anchors, m.pos, m.vel, motion.DefaultDecelerationRate)
	if err != nil {
		return
	}
	target := m.anchors[idx]

	curve, start, err := m.spring.VectorTimingFunctionAtScale(m.vel, m.pos, target, m.pixelScale())
	if err != nil {
		return
	}

	m.selected = idx
	m.curve = curve
	m.animStart = start
	m.animTarget = target
	m.pos = start // the nudged start is the real animation origin
	m.elapsed = 0
	m.duration = m.settleDuration()
	m.flinging = true
	m.vel = motion.Vector{}

	rel := curve.InitialVelocity.X
	if math.Abs(target.Y-start.Y) > math.Abs(target.X-start.X) {
		rel = curve.InitialVelocity.Y
	}
	m.trace = sampleProgress(m.spring, rel, m.duration)
}

func (m *Model) step(dt float64) {
	m.dampingGauge.step()
	m.responseGauge.step()
	if !m.flinging {
		return
	}
	m.elapsed += dt
	if m.elapsed >= m.duration {
		m.pos = m.animTarget
		m.flinging = false
		return
	}
	m.pos = motion.Vector{
		X: animatedValue(m.spring, m.elapsed, m.animStart.X, m.animTarget.X, m.curve.InitialVelocity.X),
		Y: animatedValue(m.spring, m.elapsed, m.animStart.Y, m.animTarget.Y, m.curve.InitialVelocity.Y),
	}
}

// animatedValue drives one axis of the animation: the displacement starts at
// -1 (the whole distance away from the target) and decays toward 0.
func animatedValue(sp motion.Spring, t, start, target, rel float64) float64 {
	if start == target {
		return target
	}
	return start + (target-start)*(1+sp.Position(t, -1, rel))
}

// settleDuration estimates when the displacement envelope drops below the
// visibility threshold, bounded so an undamped spring still terminates.
func (m Model) settleDuration() float64 {
	lambda := m.spring.DampingCoefficient() / (2 * m.spring.Mass())
	if lambda <= 0 {
		return maxSettle
	}
	amp := 1 + m.curve.InitialVelocity.Length()/math.Max(m.spring.UndampedNaturalFrequency(), 1)
	return clamp(math.Log(amp/settleThreshold)/lambda, minSettle, maxSettle)
}

// sampleProgress samples the normalized progress 1 + s(t) of a unit spring
// animation whose displacement starts at -1 with relative velocity rel.
func sampleProgress(sp motion.Spring, rel, duration float64) []float64 {
	out := make([]float64, traceSamples)
	for i := range out {
		t := float64(i) / float64(traceSamples-1) * duration
		out[i] = 1 + sp.Position(t, -1, rel)
	}
	return out
}

// fieldSize returns the interior cell dimensions of the fling pane.
func (m Model) fieldSize() (w, h int) {
	w = m.width - 4
	if w < 20 {
		w = 20
	}
	if w > 72 {
		w = 72
	}
	h = m.height - 14
	if h < 8 {
		h = 8
	}
	if h > 20 {
		h = 20
	}
	return w, h
}

// pixelScale is the cell density of the field: positions are normalized to
// the unit square, so one cell is 1/scale units. That cell size is the
// epsilon the timing function works with.
func (m Model) pixelScale() float64 {
	w, h := m.fieldSize()
	if w > h {
		return float64(w)
	}
	return float64(h)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render("fling")
	parts := []string{
		header,
		m.viewField(),
		m.viewHUD(),
		m.viewParams(),
	}
	if curve := m.viewCurve(); curve != "" {
		parts = append(parts, curve)
	}
	parts = append(parts, helpStyle.Render(helpText(m.flinging)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewField() string {
	w, h := m.fieldSize()
	rows := make([][]rune, h)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(" ", w))
	}

	cell := func(p motion.Vector) (int, int) {
		x := int(math.Round(p.X * float64(w-1)))
		y := int(math.Round(p.Y * float64(h-1)))
		return clampInt(x, 0, w-1), clampInt(y, 0, h-1)
	}

	for i, a := range m.anchors {
		x, y := cell(a)
		if i == m.selected {
			rows[y][x] = '◎'
		} else {
			rows[y][x] = '+'
		}
	}

	cx, cy := cell(m.pos)
	var b strings.Builder
	for r := range rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		if r == cy {
			b.WriteString(string(rows[r][:cx]))
			b.WriteString(cardStyle.Render("◉"))
			b.WriteString(string(rows[r][cx+1:]))
		} else {
			b.WriteString(string(rows[r]))
		}
	}
	return fieldStyle.Render(b.String())
}

func (m Model) viewHUD() string {
	state := "aiming"
	if m.flinging {
		state = "flinging"
	}
	parts := []string{
		statusStyle.Render(state),
		hudStyle.Render("vel " + util.FormatVector(m.vel.X, m.vel.Y)),
	}
	if m.selected >= 0 {
		parts = append(parts, hudStyle.Render(fmt.Sprintf("anchor %d", m.selected)))
		parts = append(parts, hudStyle.Render("settle "+util.FormatSeconds(m.duration)))
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewParams() string {
	dampingMark, responseMark := " ", " "
	if m.adjust == AdjustDamping {
		dampingMark = ">"
	} else {
		responseMark = ">"
	}
	damping := fmt.Sprintf("%s %-9s %s %s",
		dampingMark, "damping", m.dampingGauge.view(24), util.FormatRatio(m.dampingRatio))
	response := fmt.Sprintf("%s %-9s %s %s",
		responseMark, "response", m.responseGauge.view(24), util.FormatSeconds(m.response))
	return damping + "\n" + response
}

func (m Model) viewCurve() string {
	if len(m.trace) == 0 {
		return ""
	}
	w, _ := m.fieldSize()
	lo, hi := plot.Range(m.trace, 0, 1)
	return curveStyle.Render(plot.Curve(m.trace, w, 5, lo, hi))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
