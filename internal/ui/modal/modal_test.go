package modal

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/azmodal/internal/types"
	"github.com/riordanpawley/azmodal/internal/ui/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instantTick fires timer commands immediately so tests control when a
// delayed transition completes by choosing when to deliver its message.
func instantTick(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return fn(time.Time{})
	}
}

const testPage = "Modal demo\n\nSome page text"

func newTestProvider(t *testing.T, content Content) (*Provider, *events.Document) {
	t.Helper()

	doc := events.NewDocument()
	doc.Resize(80, 24)

	p, err := NewProvider(doc, "Open Modal", content)
	require.NoError(t, err)
	p.state.tick = instantTick
	p.PlaceTrigger(0, 3)

	return p, doc
}

// open clicks the trigger and renders once so the nodes have geometry.
func open(t *testing.T, p *Provider, doc *events.Document) tea.Msg {
	t.Helper()

	b := p.Trigger().Bounds
	cmd := doc.Click(b.X, b.Y)
	require.NotNil(t, cmd, "trigger click should schedule the settle timer")
	p.Render(testPage)
	return cmd()
}

// finish delivers a timer message produced by a transition command.
func finish(t *testing.T, p *Provider, cmd tea.Cmd) tea.Msg {
	t.Helper()

	require.NotNil(t, cmd)
	_, next := p.Update(cmd())
	if next == nil {
		return nil
	}
	return next()
}

func TestNewProviderValidation(t *testing.T) {
	doc := events.NewDocument()

	_, err := NewProvider(nil, "Open", Text("x"))
	assert.ErrorIs(t, err, ErrNoDocument)

	_, err = NewProvider(doc, "Open", nil)
	assert.ErrorIs(t, err, ErrNoContent)

	_, err = NewProvider(doc, "   ", Text("x"))
	assert.ErrorIs(t, err, ErrEmptyLabel)

	p, err := NewProvider(doc, "Open", Text("x"))
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestInitialStateRendersOnlyTrigger(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))

	assert.Equal(t, types.PhaseClosed, p.Phase())
	assert.False(t, p.IsModalOpen())
	assert.False(t, p.IsExiting())
	assert.Contains(t, p.View(), "Open Modal")

	assert.Equal(t, testPage, p.Render(testPage), "closed modal leaves the page untouched")
	assert.Equal(t, "", p.Window().View())
	assert.False(t, p.Window().Mounted())
	assert.Nil(t, p.Window().Frame())
	assert.Equal(t, 0, doc.ListenerCount())
	require.Len(t, doc.Body().Children(), 1)
	assert.Same(t, p.Trigger(), doc.Body().Children()[0])
}

func TestTriggerOpensModal(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))

	open(t, p, doc)

	assert.Equal(t, types.PhaseOpen, p.Phase())
	assert.True(t, p.Window().Mounted())
	assert.Equal(t, 2, doc.ListenerCount())

	view := p.Render(testPage)
	assert.Contains(t, view, "Hello there")
	assert.Contains(t, view, closeLabel)
	assert.False(t, p.Window().frameStyle().GetFaint(), "open frame has no fade-out style")

	overlay := p.Window().Overlay()
	require.NotNil(t, overlay)
	assert.False(t, overlay.Hidden)
	assert.Equal(t, events.Rect{W: 80, H: 24}, overlay.Bounds)
}

func TestOpenSettleClearsExiting(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	settle := open(t, p, doc)

	// Reopen while closing keeps the modal mounted; the settle timer then
	// clears the fade.
	p.state.Close(types.DismissProgrammatic)
	reopen := p.OpenModal()
	require.NotNil(t, reopen)
	assert.True(t, p.IsExiting())

	handled, _ := p.state.Update(settle)
	assert.True(t, handled)
	assert.True(t, p.IsExiting(), "settle from the first open is stale")

	_, cmd := p.Update(reopen())
	assert.Nil(t, cmd)
	assert.Equal(t, types.PhaseOpen, p.Phase())
}

func TestOutsideClickDismisses(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	open(t, p, doc)

	cmd := doc.Click(0, 0)

	assert.Equal(t, types.PhaseClosing, p.Phase(), "fade starts immediately")
	assert.True(t, p.Window().frameStyle().GetFaint())
	assert.True(t, p.Window().Mounted(), "still mounted during the fade")

	msg := finish(t, p, cmd)
	assert.Equal(t, types.PhaseClosed, p.Phase())
	assert.False(t, p.Window().Mounted())
	assert.Equal(t, ClosedMsg{ID: p.State().ID(), Reason: types.DismissOutsideClick}, msg)
}

func TestClickOnTriggerWhileOpenIsOutside(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	open(t, p, doc)

	b := p.Trigger().Bounds
	cmd := doc.Click(b.X, b.Y)

	assert.Equal(t, types.PhaseClosing, p.Phase(), "overlay covers the trigger")
	assert.Equal(t, ClosedMsg{ID: p.State().ID(), Reason: types.DismissOutsideClick}, finish(t, p, cmd))
}

func TestInsideClickDoesNotDismiss(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	open(t, p, doc)

	frame := p.Window().Frame()
	require.NotNil(t, frame)

	// Border and padding belong to the frame but not to the close button
	// or the content.
	cmd := doc.Click(frame.Bounds.X+1, frame.Bounds.Y+1)

	assert.Nil(t, cmd)
	assert.Equal(t, types.PhaseOpen, p.Phase())
}

func TestEscapeDismisses(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	open(t, p, doc)

	assert.Nil(t, doc.KeyDown("q"), "other keys are ignored")
	assert.Equal(t, types.PhaseOpen, p.Phase())

	cmd := doc.Handle(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, types.PhaseClosing, p.Phase())

	msg := finish(t, p, cmd)
	assert.Equal(t, types.PhaseClosed, p.Phase())
	assert.Equal(t, types.DismissEscape, msg.(ClosedMsg).Reason)
}

func TestEscapeWhileClosedDoesNothing(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))

	assert.Nil(t, doc.KeyDown("esc"))
	assert.Equal(t, types.PhaseClosed, p.Phase())
}

func TestCloseButtonDismisses(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	open(t, p, doc)

	b := p.Window().CloseButton().Bounds
	cmd := doc.Click(b.X, b.Y)

	assert.Equal(t, types.PhaseClosing, p.Phase())
	assert.Equal(t, types.DismissCloseButton, finish(t, p, cmd).(ClosedMsg).Reason)
}

func TestContentClickDismisses(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	open(t, p, doc)

	b := p.Window().ContentNode().Bounds
	require.Positive(t, b.W)
	cmd := doc.Click(b.X+b.W-1, b.Y)

	assert.Equal(t, types.PhaseClosing, p.Phase())
	assert.Equal(t, types.DismissContentClick, finish(t, p, cmd).(ClosedMsg).Reason)
}

type keepOpenContent struct {
	clicks int
}

func (c *keepOpenContent) View() string {
	return "Read me\n[ keep ]"
}

func (c *keepOpenContent) Regions() []Region {
	return []Region{{
		ID:     "keep",
		Bounds: events.Rect{X: 0, Y: 1, W: 8, H: 1},
		OnClick: func(ev *events.Event) tea.Cmd {
			c.clicks++
			ev.StopPropagation()
			return nil
		},
	}}
}

func TestContentRegionCanStopDismissal(t *testing.T) {
	content := &keepOpenContent{}
	p, doc := newTestProvider(t, content)
	open(t, p, doc)

	b := p.Window().ContentNode().Bounds
	require.Len(t, p.Window().ContentNode().Children(), 1)

	cmd := doc.Click(b.X+2, b.Y+1)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, content.clicks)
	assert.Equal(t, types.PhaseOpen, p.Phase())

	// The first line has no region, so it reaches the content handler.
	cmd = doc.Click(b.X, b.Y)
	assert.Equal(t, types.PhaseClosing, p.Phase())
	assert.Equal(t, types.DismissContentClick, finish(t, p, cmd).(ClosedMsg).Reason)
}

func TestRenderKeepsRegionsSingle(t *testing.T) {
	p, doc := newTestProvider(t, &keepOpenContent{})
	open(t, p, doc)

	for range 3 {
		p.Render(testPage)
	}
	assert.Len(t, p.Window().ContentNode().Children(), 1)
}

func TestIdempotentReopen(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	first := open(t, p, doc)
	gen := p.state.gen

	second := p.OpenModal()
	require.NotNil(t, second)

	assert.True(t, p.IsModalOpen())
	assert.False(t, p.IsExiting())
	assert.Equal(t, gen+1, p.state.gen, "only the settle timer is re-armed")
	assert.Equal(t, 2, doc.ListenerCount(), "reopen does not mount twice")

	handled, _ := p.state.Update(first)
	assert.True(t, handled)
	handled, _ = p.state.Update(second())
	assert.True(t, handled)
	assert.Equal(t, types.PhaseOpen, p.Phase())
}

func TestDoubleCloseKeepsFirstReason(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	open(t, p, doc)

	cmd := doc.KeyDown("esc")
	require.NotNil(t, cmd)
	assert.Nil(t, doc.Click(0, 0), "already closing")

	assert.Equal(t, types.DismissEscape, finish(t, p, cmd).(ClosedMsg).Reason)
}

func TestStaleCloseTimerIsIgnored(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	open(t, p, doc)

	closeCmd := p.CloseModal()
	require.NotNil(t, closeCmd)
	p.OpenModal()

	_, cmd := p.Update(closeCmd())
	assert.Nil(t, cmd)
	assert.True(t, p.IsModalOpen(), "close timer was superseded by reopen")
	assert.True(t, p.Window().Mounted())
}

func TestCloseWhileClosedIsNoop(t *testing.T) {
	p, _ := newTestProvider(t, Text("Hello there"))

	assert.Nil(t, p.CloseModal())
	assert.Equal(t, types.PhaseClosed, p.Phase())
}

func TestListenersDoNotAccumulate(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))

	for i := range 5 {
		open(t, p, doc)
		assert.Equal(t, 2, doc.ListenerCount(), "cycle %d open", i)

		finish(t, p, doc.KeyDown("esc"))
		assert.Equal(t, 0, doc.ListenerCount(), "cycle %d closed", i)
		assert.Len(t, doc.Body().Children(), 1, "cycle %d: only the trigger remains", i)
	}
}

func TestTimersUseFadeDuration(t *testing.T) {
	p, _ := newTestProvider(t, Text("Hello there"))

	var durations []time.Duration
	p.state.tick = func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		durations = append(durations, d)
		return instantTick(d, fn)
	}

	p.OpenModal()
	p.CloseModal()

	assert.Equal(t, []time.Duration{FadeDuration, FadeDuration}, durations)
	assert.Equal(t, 300*time.Millisecond, FadeDuration)
}

func TestStateIgnoresOtherModals(t *testing.T) {
	a := NewState(nil)
	b := NewState(nil)
	a.tick = instantTick
	b.tick = instantTick

	a.Open()
	closeA := a.Close(types.DismissEscape)
	b.Open()

	handled, cmd := b.Update(closeA())
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.True(t, b.IsOpen())

	handled, _ = b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, handled)
}

func TestStateSubscribe(t *testing.T) {
	s := NewState(nil)
	s.tick = instantTick

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	s.Open()
	assert.Equal(t, 1, calls)
	s.Open()
	assert.Equal(t, 1, calls, "reopen does not change the flags")

	unsubscribe()
	s.Close(types.DismissProgrammatic)
	assert.Equal(t, 1, calls)
}

func TestExitingImpliesOpen(t *testing.T) {
	s := NewState(nil)
	s.tick = instantTick

	check := func() {
		if s.IsExiting() {
			assert.True(t, s.IsOpen())
		}
	}

	check()
	settle := s.Open()
	check()
	closing := s.Close(types.DismissOutsideClick)
	check()
	s.Update(settle())
	check()
	s.Update(closing())
	check()
	assert.False(t, s.IsOpen())
	assert.False(t, s.IsExiting())
}

func TestProviderKeyboardOpen(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, p.IsModalOpen())
	assert.Equal(t, 2, doc.ListenerCount())

	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "open binding is ignored while open")
}

func TestRenderComposesFrameOverPage(t *testing.T) {
	p, doc := newTestProvider(t, Text("Hello there"))
	open(t, p, doc)

	view := p.Render(testPage)
	lines := strings.Split(view, "\n")

	assert.Len(t, lines, 24, "page is padded to the screen height")
	assert.Contains(t, view, "Modal demo", "page stays visible under the overlay")

	frame := p.Window().Frame().Bounds
	content := p.Window().ContentNode().Bounds
	assert.Contains(t, lines[content.Y], "Hello there")
	assert.Contains(t, lines[frame.Y], "╭")
}
