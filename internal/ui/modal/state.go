package modal

import (
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/azmodal/internal/types"
)

// FadeDuration is how long the fade-out runs before the modal unmounts.
// Keep it in sync with any visual transition drawn by the host.
const FadeDuration = 300 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// settledMsg finishes an open transition.
type settledMsg struct {
	id  int
	gen int
}

// finalizeMsg finishes a close transition and unmounts the modal.
type finalizeMsg struct {
	id     int
	gen    int
	reason types.DismissReason
}

// ClosedMsg is emitted once a modal has fully closed and unmounted.
type ClosedMsg struct {
	ID     int
	Reason types.DismissReason
}

type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// State is the shared open/closing handle for one modal. The provider and
// its window hold the same *State; nothing else can change it.
//
// Only the most recently scheduled timer is honoured. Each Open or Close
// bumps a generation counter and timer messages from older generations are
// dropped, so rapid toggling never lets a stale timer undo a newer call.
type State struct {
	id      int
	open    bool
	exiting bool
	gen     int
	reason  types.DismissReason

	observers map[int]func()
	nextObs   int

	tick   tickFunc
	logger *slog.Logger
}

// NewState creates a closed state. A nil logger discards output.
func NewState(logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &State{
		id:        nextID(),
		observers: make(map[int]func()),
		tick:      tea.Tick,
		logger:    logger,
	}
}

// ID identifies this state in timer and ClosedMsg messages.
func (s *State) ID() int {
	return s.id
}

// IsOpen reports whether the modal is mounted.
func (s *State) IsOpen() bool {
	return s.open
}

// IsExiting reports whether the fade-out is running.
func (s *State) IsExiting() bool {
	return s.exiting
}

// Phase derives the visible lifecycle stage from the two flags.
func (s *State) Phase() types.Phase {
	switch {
	case !s.open:
		return types.PhaseClosed
	case s.exiting:
		return types.PhaseClosing
	default:
		return types.PhaseOpen
	}
}

// Open mounts the modal immediately and schedules the exiting flag to be
// cleared after FadeDuration. Calling it while open only re-arms that timer.
func (s *State) Open() tea.Cmd {
	wasOpen := s.open
	s.open = true
	s.gen++
	gen := s.gen

	s.logger.Debug("modal open", "id", s.id, "reopen", wasOpen)
	if !wasOpen {
		s.notify()
	}

	id := s.id
	return s.tick(FadeDuration, func(time.Time) tea.Msg {
		return settledMsg{id: id, gen: gen}
	})
}

// Close starts the fade-out immediately and schedules the unmount after
// FadeDuration. It does nothing when the modal is closed or already closing;
// the first dismissal wins.
func (s *State) Close(reason types.DismissReason) tea.Cmd {
	if !s.open || s.exiting {
		return nil
	}
	s.exiting = true
	s.reason = reason
	s.gen++
	gen := s.gen

	s.logger.Debug("modal closing", "id", s.id, "reason", reason.String())
	s.notify()

	id := s.id
	return s.tick(FadeDuration, func(time.Time) tea.Msg {
		return finalizeMsg{id: id, gen: gen, reason: reason}
	})
}

// Update applies timer messages addressed to this state. It reports whether
// msg belonged to this state; the returned command emits ClosedMsg when a
// close completes.
func (s *State) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case settledMsg:
		if msg.id != s.id {
			return false, nil
		}
		if msg.gen != s.gen {
			s.logger.Debug("dropping stale modal timer", "id", s.id, "gen", msg.gen, "current", s.gen)
			return true, nil
		}
		if s.exiting {
			s.exiting = false
			s.notify()
		}
		return true, nil

	case finalizeMsg:
		if msg.id != s.id {
			return false, nil
		}
		if msg.gen != s.gen {
			s.logger.Debug("dropping stale modal timer", "id", s.id, "gen", msg.gen, "current", s.gen)
			return true, nil
		}
		s.open = false
		s.exiting = false
		s.logger.Debug("modal closed", "id", s.id, "reason", msg.reason.String())
		s.notify()

		closed := ClosedMsg{ID: s.id, Reason: msg.reason}
		return true, func() tea.Msg { return closed }
	}
	return false, nil
}

// Subscribe registers fn to run after every flag change.
func (s *State) Subscribe(fn func()) (unsubscribe func()) {
	s.nextObs++
	key := s.nextObs
	s.observers[key] = fn
	return func() {
		delete(s.observers, key)
	}
}

func (s *State) notify() {
	for _, fn := range s.observers {
		fn()
	}
}
