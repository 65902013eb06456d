package emulator

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/tokenui/internal/component"
	"github.com/muurk/tokenui/internal/display"
	"github.com/muurk/tokenui/internal/geometry"
	"github.com/muurk/tokenui/internal/host"
	"github.com/muurk/tokenui/internal/layout"
	"github.com/muurk/tokenui/internal/logging"
	"github.com/muurk/tokenui/internal/theme"
)

// Options configures a Model.
type Options struct {
	// Scale is the number of terminal columns per canvas cell.
	Scale int
	// FadeStep is the pause between backlight fade steps.
	FadeStep time.Duration
}

// Messages
type timerMsg struct{ token component.TimerToken }

type doMsg struct {
	fn   func(*host.Session)
	done chan struct{}
}

type timerQueue struct {
	reqs []component.TimerRequest
}

func (q *timerQueue) push(req component.TimerRequest) {
	q.reqs = append(q.reqs, req)
}

func (q *timerQueue) drain() []component.TimerRequest {
	reqs := q.reqs
	q.reqs = nil
	return reqs
}

// outcome publishes the terminal result to goroutines outside the program.
type outcome struct {
	once sync.Once
	done chan struct{}
	res  layout.Result
}

func newOutcome() *outcome {
	return &outcome{done: make(chan struct{})}
}

func (o *outcome) set(res layout.Result) {
	o.once.Do(func() {
		o.res = res
		close(o.done)
	})
}

// Model is the Bubble Tea model of the emulated display.
type Model struct {
	session *host.Session
	canvas  *display.Canvas
	scale   int
	timers  *timerQueue
	outcome *outcome

	keys      keyMap
	help      help.Model
	showTrace bool

	// Touch state
	touching bool
	last     geometry.Point

	width int
}

// New paints l onto a fresh canvas.
func New(l *layout.Layout, opts Options) Model {
	cell := theme.CellSize()
	canvas := display.NewCanvas(theme.ScreenWidth, theme.ScreenHeight, cell.X, cell.Y)
	canvas.FadeStep = opts.FadeStep

	q := &timerQueue{}
	s := host.NewSession(l, canvas)
	s.SetScheduler(q.push)

	return Model{
		session: s,
		canvas:  canvas,
		scale:   max(opts.Scale, 1),
		timers:  q,
		outcome: newOutcome(),
		keys:    newKeyMap(),
		help:    help.New(),
	}
}

// ProgramOptions returns the tea.Program options the model relies on.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// Result returns the terminal result once the layout has finished.
func (m Model) Result() (layout.Result, bool) {
	return m.session.Result()
}

func (m Model) Init() tea.Cmd {
	return m.scheduleTimers()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Trace):
			m.showTrace = !m.showTrace
			return m, nil
		case key.Matches(msg, m.keys.Redraw):
			m.session.Redraw()
			return m, nil
		}
		if dir, ok := m.keys.swipeFor(msg); ok {
			logging.Debug("Synthesized swipe", zap.Stringer("direction", dir))
			return m.dispatch(func(s *host.Session) { s.Swipe(dir) })
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case timerMsg:
		return m.dispatch(func(s *host.Session) { s.Timer(msg.token) })

	case doMsg:
		defer close(msg.done)
		msg.fn(m.session)
		return m.settle()
	}
	return m, nil
}

// dispatch runs fn unless the layout already finished.
func (m Model) dispatch(fn func(*host.Session)) (tea.Model, tea.Cmd) {
	if m.session.Done() {
		return m, nil
	}
	fn(m.session)
	return m.settle()
}

// settle schedules new timers and quits once a result is available.
func (m Model) settle() (tea.Model, tea.Cmd) {
	cmd := m.scheduleTimers()
	if res, ok := m.session.Result(); ok {
		m.outcome.set(res)
		return m, tea.Sequence(cmd, tea.Quit)
	}
	return m, cmd
}

func (m Model) scheduleTimers() tea.Cmd {
	reqs := m.timers.drain()
	if len(reqs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, req := range reqs {
		token := req.Token
		cmds = append(cmds, tea.Tick(req.Duration, func(time.Time) tea.Msg {
			return timerMsg{token: token}
		}))
	}
	return tea.Batch(cmds...)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, onScreen := m.pixelAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onScreen {
			return m, nil
		}
		m.touching, m.last = true, p
		return m.dispatch(func(s *host.Session) { s.Touch(component.KindTouchStart, p) })

	case tea.MouseActionMotion:
		if !m.touching || !onScreen {
			return m, nil
		}
		m.last = p
		return m.dispatch(func(s *host.Session) { s.Touch(component.KindTouchMove, p) })

	case tea.MouseActionRelease:
		if !m.touching {
			return m, nil
		}
		if !onScreen {
			p = m.last
		}
		m.touching = false
		return m.dispatch(func(s *host.Session) { s.Touch(component.KindTouchEnd, p) })
	}
	return m, nil
}

// pixelAt maps a terminal cell to the pixel at the center of the canvas cell
// drawn there.
func (m Model) pixelAt(x, y int) (geometry.Point, bool) {
	if x < 0 || y < 0 {
		return geometry.Point{}, false
	}
	col, row := x/m.scale, y
	if col >= m.canvas.Cols() || row >= m.canvas.Rows() {
		return geometry.Point{}, false
	}
	return m.canvas.CellCenter(col, row), true
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	traceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.canvas.RenderScaled(m.scale))
	b.WriteString("\n")

	l := m.session.Layout()
	title := l.Name()
	if l.Title() != "" {
		title += " - " + l.Title()
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if m.showTrace {
		width := m.canvas.Cols() * m.scale
		b.WriteString(traceStyle.Width(max(width, m.width)).Render(m.session.Trace()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
