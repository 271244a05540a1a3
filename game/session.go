package game

import (
	"time"

	"github.com/plus3/blockfall/schedule"
)

// State is the session's position in its lifecycle.
type State int

const (
	// StateReady is a session that has not been started.
	StateReady State = iota
	StatePlaying
	// StateGameOver is terminal until the next Start.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// EndReason records why a session reached StateGameOver.
type EndReason int

const (
	EndNone EndReason = iota
	// EndTopOut means a freshly promoted piece collided at its spawn position.
	EndTopOut
	// EndTimeUp means the countdown reached zero.
	EndTimeUp
)

func (r EndReason) String() string {
	switch r {
	case EndTopOut:
		return "top out"
	case EndTimeUp:
		return "time up"
	}
	return "none"
}

// Scheduler drives the session's gravity and countdown tasks.
// *schedule.Scheduler satisfies it.
type Scheduler interface {
	Now() time.Time
	Every(name string, period time.Duration, task schedule.Task) schedule.TaskId
	Cancel(id schedule.TaskId) bool
}

// Session is one game: the board, the falling and next pieces, score, level
// and countdown. All methods must be called from the scheduler's loop
// goroutine.
type Session struct {
	cfg     Config
	sched   Scheduler
	spawner *Spawner

	board   *Board
	current Piece
	next    Piece

	score        int
	level        int
	remaining    int
	state        State
	reason       EndReason
	dropInterval time.Duration
	lastDrop     time.Time

	gravityTask   schedule.TaskId
	countdownTask schedule.TaskId

	stats     *Stats
	listeners []Listener
}

// NewSession validates cfg and returns a session in StateReady. A nil spawner
// gets a randomly seeded one.
func NewSession(cfg Config, sched Scheduler, spawner *Spawner) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if spawner == nil {
		spawner = NewSpawner(cfg.Cols, nil)
	}

	return &Session{
		cfg:          cfg,
		sched:        sched,
		spawner:      spawner,
		board:        NewBoard(cfg.Rows, cfg.Cols),
		level:        1,
		remaining:    cfg.GameTime,
		dropInterval: cfg.BaseDropInterval,
		stats:        newStats(),
	}, nil
}

// Subscribe adds a listener for session events.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(ev Event) {
	ev.Score = s.score
	ev.Level = s.level
	for _, l := range s.listeners {
		l(ev)
	}
}

// Start resets the session to a fresh game and (re)starts the gravity and
// countdown tasks. Tasks from a previous game are cancelled first.
func (s *Session) Start() {
	s.stopDrivers()

	s.board = NewBoard(s.cfg.Rows, s.cfg.Cols)
	s.score = 0
	s.level = 1
	s.remaining = s.cfg.GameTime
	s.dropInterval = s.cfg.BaseDropInterval
	s.current = s.spawner.Spawn()
	s.next = s.spawner.Spawn()
	s.state = StatePlaying
	s.reason = EndNone
	s.stats = newStats()
	s.lastDrop = s.sched.Now()

	s.gravityTask = s.sched.Every("gravity", s.cfg.TickPeriod, schedule.TaskFunc(func(frame *schedule.Frame) {
		s.Tick(frame.Now)
	}))
	s.countdownTask = s.sched.Every("countdown", s.cfg.TimerPeriod, schedule.TaskFunc(func(*schedule.Frame) {
		s.DecrementTimer()
	}))

	s.emit(Event{Kind: EventStart})
}

func (s *Session) stopDrivers() {
	s.sched.Cancel(s.gravityTask)
	s.sched.Cancel(s.countdownTask)
	s.gravityTask = 0
	s.countdownTask = 0
}

// Tick applies gravity: once more than the drop interval has passed since the
// last drop, the piece moves down one row.
func (s *Session) Tick(now time.Time) {
	if s.state != StatePlaying {
		return
	}
	if now.Sub(s.lastDrop) > s.dropInterval {
		s.MovePiece(0, 1)
		s.lastDrop = now
	}
}

// DecrementTimer removes one second from the countdown. Reaching zero ends
// the game whatever the board looks like.
func (s *Session) DecrementTimer() {
	if s.state != StatePlaying {
		return
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.end(EndTimeUp)
	}
}

// MovePiece moves the current piece by (dx, dy) if the target is free. A
// blocked downward move locks the piece, clears rows, scores, and promotes
// the next piece; if that piece is blocked at spawn the game ends. It reports
// whether the move was committed.
func (s *Session) MovePiece(dx, dy int) bool {
	if s.state != StatePlaying {
		return false
	}

	candidate := s.current.Translated(dx, dy)
	if !Collides(s.board, candidate) {
		s.current = candidate
		return true
	}

	if dy > 0 {
		s.settle()
	}
	return false
}

// RotatePiece turns the current piece clockwise if the result is free. There
// are no wall kicks: a rotation blocked by a wall or a cell simply fails.
func (s *Session) RotatePiece() bool {
	if s.state != StatePlaying {
		return false
	}

	candidate := s.current.Rotated()
	if Collides(s.board, candidate) {
		return false
	}
	s.current = candidate
	return true
}

// DropPiece moves the current piece down until it locks and returns the
// number of rows it fell.
func (s *Session) DropPiece() int {
	if s.state != StatePlaying {
		return 0
	}

	rows := 0
	for s.MovePiece(0, 1) {
		rows++
	}
	return rows
}

func (s *Session) settle() {
	dropped := s.board.Lock(s.current)
	lines := s.board.ClearCompletedRows()
	s.stats.record(lines, dropped)
	s.emit(Event{Kind: EventLock, Lines: lines})

	if lines > 0 {
		s.award(lines)
	}

	s.current = s.next
	s.next = s.spawner.Spawn()

	if Collides(s.board, s.current) {
		s.end(EndTopOut)
	}
}

func (s *Session) award(lines int) {
	s.score += Points(lines)
	s.emit(Event{Kind: EventLineClear, Lines: lines})

	if level := LevelFor(s.score); level > s.level {
		s.level = level
		s.dropInterval = DropIntervalFor(s.cfg.BaseDropInterval, level)
		s.emit(Event{Kind: EventLevelUp})
	}
}

func (s *Session) end(reason EndReason) {
	s.state = StateGameOver
	s.reason = reason
	s.stopDrivers()
	s.emit(Event{Kind: EventGameOver, Reason: reason})
}

func (s *Session) Config() Config              { return s.cfg }
func (s *Session) Board() *Board               { return s.board }
func (s *Session) Current() Piece              { return s.current }
func (s *Session) Next() Piece                 { return s.next }
func (s *Session) Score() int                  { return s.score }
func (s *Session) Level() int                  { return s.level }
func (s *Session) Remaining() int              { return s.remaining }
func (s *Session) State() State                { return s.state }
func (s *Session) IsOver() bool                { return s.state == StateGameOver }
func (s *Session) EndReason() EndReason        { return s.reason }
func (s *Session) DropInterval() time.Duration { return s.dropInterval }
func (s *Session) Stats() *Stats               { return s.stats }
