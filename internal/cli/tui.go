package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tkurosawa/quotecard/pkg/observability"
	"github.com/tkurosawa/quotecard/pkg/pipeline"
)

// genState enumerates the phases of one card generation as shown to the
// user. Transitions only move forward; out-of-order stage events are
// ignored.
type genState int

const (
	stateValidating genState = iota
	stateLayingOut
	stateRendering
	stateWriting
	stateSucceeded
	stateFailed
)

// label returns the user-facing text for a state.
func (s genState) label() string {
	switch s {
	case stateValidating:
		return "Validating input..."
	case stateLayingOut:
		return "Planning layout..."
	case stateRendering:
		return "Rendering card..."
	case stateWriting:
		return "Writing output..."
	case stateSucceeded:
		return "Card generated"
	case stateFailed:
		return "Generation failed"
	}
	return ""
}

// terminal reports whether no further transitions are possible.
func (s genState) terminal() bool {
	return s == stateSucceeded || s == stateFailed
}

// Messages driving the model.
type (
	stageMsg struct{ state genState }
	doneMsg  struct{ result *pipeline.Result }
	failMsg  struct{ err error }
	tickMsg  time.Time
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// GenerateModel is the bubbletea model showing generation progress.
type GenerateModel struct {
	State  genState
	Result *pipeline.Result
	Err    error

	output string
	frame  int
}

// NewGenerateModel creates the progress model for a run writing to output.
func NewGenerateModel(output string) GenerateModel {
	return GenerateModel{State: stateValidating, output: output}
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m GenerateModel) Init() tea.Cmd {
	return tick()
}

func (m GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.State = stateFailed
			m.Err = context.Canceled
			return m, tea.Quit
		}
	case stageMsg:
		// Forward-only: a late event from an earlier stage never regresses
		// the display.
		if !m.State.terminal() && msg.state > m.State {
			m.State = msg.state
		}
	case doneMsg:
		m.State = stateSucceeded
		m.Result = msg.result
		m.output = msg.result.Output
		return m, tea.Quit
	case failMsg:
		m.State = stateFailed
		m.Err = msg.err
		return m, tea.Quit
	case tickMsg:
		if m.State.terminal() {
			return m, nil
		}
		m.frame++
		return m, tick()
	}
	return m, nil
}

func (m GenerateModel) View() string {
	switch m.State {
	case stateSucceeded:
		return styleIconSuccess.Render(iconSuccess) + " " + m.State.label() + "\n" +
			"  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(m.output) + "\n"
	case stateFailed:
		return styleIconError.Render(iconError) + " " + m.State.label() + "\n"
	default:
		frame := spinnerFrames[m.frame%len(spinnerFrames)]
		return styleIconSpinner.Render(frame) + " " + StyleDim.Render(m.State.label()) + "\n"
	}
}

// teaHooks forwards pipeline stage events to the running TUI program.
type teaHooks struct {
	observability.NoopPipelineHooks
	program *tea.Program
}

func (h *teaHooks) OnValidateStart(context.Context) {
	h.program.Send(stageMsg{state: stateValidating})
}

func (h *teaHooks) OnLayoutStart(_ context.Context, _ int) {
	h.program.Send(stageMsg{state: stateLayingOut})
}

func (h *teaHooks) OnRenderStart(_ context.Context, _ string) {
	h.program.Send(stageMsg{state: stateRendering})
}

func (h *teaHooks) OnRenderComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	if err == nil {
		h.program.Send(stageMsg{state: stateWriting})
	}
}
