package engine

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// State is the session lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Options configures a new session.
type Options struct {
	Config config.TetrisConfig // zero value means the built-in defaults
	Seed   int64
	Logger *log.Logger // nil discards engine events
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Session is the single owner of board and score state. Every intent and
// every clock callback runs as one atomic transition under mu; observers
// are notified after the lock is released, once per committed transition.
type Session struct {
	mu sync.Mutex

	cfg    config.TetrisConfig
	timing *config.Timing
	log    *log.Logger
	seed   int64
	rng    *rand.Rand
	clock  *Clock
	lines  *LineClear
	drop   *Timer

	id           string
	state        State
	board        Board
	piece        *Piece
	score        int
	rows         int
	level        int
	interval     time.Duration // zero while the drop clock is stopped
	softDropping bool
	lastCleared  int

	subs    []subscriber
	nextSub int
	pending []Snapshot
}

// NewSession creates an idle session. It fails only on an invalid config.
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == (config.TetrisConfig{}) {
		cfg = config.DefaultTetrisConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clock := NewClock()
	return &Session{
		cfg:    cfg,
		timing: config.NewTiming(cfg),
		log:    logger,
		seed:   opts.Seed,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		clock:  clock,
		lines:  NewLineClear(clock, cfg.Timing.ClearDelay()),
		state:  StateIdle,
		board:  NewBoard(),
	}, nil
}

// Start begins a fresh game from any state: empty board, zero score, rows
// and level, a new piece and the initial drop interval.
func (s *Session) Start() {
	s.transition(func() bool {
		s.drop.Stop()
		s.lines.Cancel()

		s.id = s.newID()
		s.state = StateRunning
		s.board = NewBoard()
		s.score, s.rows, s.level = 0, 0, 0
		s.lastCleared = 0
		s.softDropping = false
		s.piece = SpawnPiece(s.rng)
		s.armDrop(s.timing.InitialDrop())

		s.log.Info("session started", "session", s.id, "seed", s.seed, "piece", s.piece.Shape(), "interval", s.interval)
		return true
	})
}

// TogglePause switches between running and paused. It does nothing before
// the first start or after game over.
func (s *Session) TogglePause() {
	s.transition(func() bool {
		switch s.state {
		case StateRunning:
			s.state = StatePaused
			s.stopDrop()
			s.log.Debug("paused", "session", s.id)
		case StatePaused:
			s.state = StateRunning
			s.softDropping = false
			s.armDrop(s.timing.DropInterval(s.level))
			s.log.Debug("resumed", "session", s.id, "interval", s.interval)
		default:
			return false
		}
		return true
	})
}

// MoveLeft shifts the falling piece one column left if the cells are free.
func (s *Session) MoveLeft() {
	s.shift(-1)
}

// MoveRight shifts the falling piece one column right if the cells are free.
func (s *Session) MoveRight() {
	s.shift(1)
}

func (s *Session) shift(dx int) {
	s.transition(func() bool {
		if !s.playable() {
			return false
		}
		return s.piece.Move(&s.board, dx, 0)
	})
}

// Rotate turns the falling piece clockwise, kicking it sideways if needed.
func (s *Session) Rotate() {
	s.rotate(Clockwise)
}

// RotateCounterClockwise turns the falling piece counter-clockwise.
func (s *Session) RotateCounterClockwise() {
	s.rotate(CounterClockwise)
}

func (s *Session) rotate(dir Direction) {
	s.transition(func() bool {
		if !s.playable() {
			return false
		}
		return s.piece.Rotate(&s.board, dir)
	})
}

// SoftDrop stops the drop clock and immediately performs one drop step.
// The clock stays stopped until ReleaseSoftDrop.
func (s *Session) SoftDrop() {
	s.transition(func() bool {
		if !s.playable() {
			return false
		}
		s.softDropping = true
		s.stopDrop()
		s.step()
		return true
	})
}

// ReleaseSoftDrop restarts the drop clock at the level's interval after a
// soft drop.
func (s *Session) ReleaseSoftDrop() {
	s.transition(func() bool {
		if !s.softDropping {
			return false
		}
		s.softDropping = false
		if s.state == StateRunning {
			s.armDrop(s.timing.DropInterval(s.level))
		}
		return true
	})
}

// Advance moves session time forward by d, firing drop ticks and pending
// collapses in order. Each fired callback is its own transition.
func (s *Session) Advance(d time.Duration) {
	s.mu.Lock()
	s.clock.Advance(d)
	notes := s.takePending()
	s.mu.Unlock()

	s.deliver(notes)
}

// State returns the lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a read-only copy of the observable session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn to receive a snapshot after every committed
// transition. Callbacks run outside the session lock and may call back
// into the session. The returned func removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for idx, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:idx], s.subs[idx+1:]...)
				return
			}
		}
	}
}

// transition runs fn under the lock and notifies observers if it reports
// a committed change.
func (s *Session) transition(fn func() bool) {
	s.mu.Lock()
	if fn() {
		s.commit()
	}
	notes := s.takePending()
	s.mu.Unlock()

	s.deliver(notes)
}

// commit queues a notification. Callers hold mu.
func (s *Session) commit() {
	if len(s.subs) == 0 {
		return
	}
	s.pending = append(s.pending, s.snapshot())
}

func (s *Session) takePending() []Snapshot {
	notes := s.pending
	s.pending = nil
	return notes
}

func (s *Session) deliver(notes []Snapshot) {
	if len(notes) == 0 {
		return
	}

	s.mu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, snap := range notes {
		for _, sub := range subs {
			sub.fn(snap)
		}
	}
}

func (s *Session) playable() bool {
	return s.state == StateRunning && s.piece != nil
}

// armDrop replaces the drop clock with one of the given period.
func (s *Session) armDrop(interval time.Duration) {
	s.drop.Stop()
	s.interval = interval
	s.drop = s.clock.Every(interval, s.onDrop)
}

func (s *Session) stopDrop() {
	s.drop.Stop()
	s.drop = nil
	s.interval = 0
}

// onDrop is the drop clock callback.
func (s *Session) onDrop() {
	if !s.playable() {
		return
	}
	s.step()
	s.commit()
}

// step is one drop: the level check, then a one-row fall that locks the
// piece when blocked.
func (s *Session) step() {
	s.checkLevel()

	if s.piece.Move(&s.board, 0, 1) {
		return
	}
	if s.piece.Y < 1 {
		s.gameOver()
	}
	s.lock()
}

// checkLevel advances at most one level per call.
func (s *Session) checkLevel() {
	if s.rows < s.timing.LevelThreshold(s.level) {
		return
	}
	s.level++
	interval := s.timing.DropInterval(s.level)
	if s.softDropping {
		s.interval = 0
	} else {
		s.armDrop(interval)
	}
	s.log.Info("level up", "session", s.id, "level", s.level, "rows", s.rows, "interval", interval)
}

// lock settles the piece, marks full rows and spawns the next piece unless
// the game just ended.
func (s *Session) lock() {
	p := s.piece
	s.board = s.board.Stamp(p, true)

	var marked []int
	s.board, marked = MarkFullRows(s.board)
	s.lastCleared = len(marked)

	s.log.Debug("piece locked", "session", s.id, "piece", p.Shape(), "x", p.X, "y", p.Y, "rotation", p.Rotation)

	if len(marked) > 0 {
		points := s.timing.RowPoints(len(marked), s.level)
		s.score += points
		s.rows += len(marked)
		s.lines.Schedule(s.onCollapse)
		s.log.Debug("rows marked", "session", s.id, "rows", marked, "points", points, "score", s.score)
	}

	if s.state == StateGameOver {
		s.piece = nil
		return
	}
	s.piece = SpawnPiece(s.rng)
}

// onCollapse is the line-clear callback.
func (s *Session) onCollapse() {
	var removed []int
	s.board, removed = CollapseClearing(s.board)
	if len(removed) == 0 {
		return
	}
	s.log.Debug("rows collapsed", "session", s.id, "rows", removed)
	s.commit()
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.softDropping = false
	s.stopDrop()
	s.log.Info("game over", "session", s.id, "score", s.score, "rows", s.rows, "level", s.level)
}

// newID derives the session id from the session rng so that seeded runs
// are reproducible.
func (s *Session) newID() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
