package tetris

import (
	"math/rand/v2"

	"github.com/kamstrup/intmap"
)

// GameOverRow is the lowest row whose occupation by a locked cell ends the
// game. It is the first visible row, so any lock reaching the top of the
// visible area or the buffer above it is terminal.
const GameOverRow = VisibleTop

// DefaultLevel is the level a session starts at unless WithLevel is given.
const DefaultLevel = 1

type options struct {
	board *Board
	first Kind
	rng   *rand.Rand
	level int
}

// Option configures a Session at construction.
type Option func(*options)

// WithBoard starts the session from a copy of board.
func WithBoard(board Board) Option {
	return func(o *options) {
		o.board = &board
	}
}

// WithFirstPiece makes kind the first active piece instead of drawing one
// from the bag.
func WithFirstPiece(kind Kind) Option {
	return func(o *options) {
		o.first = kind
	}
}

// WithRand sets the random source used for bag shuffles.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed seeds a PCG source for bag shuffles, making the piece sequence
// reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLevel sets the starting level, clamped to 0..MaxLevel.
func WithLevel(level int) Option {
	return func(o *options) {
		o.level = level
	}
}

// Session is one game: the board, the active piece, the piece supply, the
// hold slot and the score keeping. It is not safe for concurrent use.
type Session struct {
	board  Board
	active Piece
	bag    *Bag
	queue  Queue

	held    Kind
	canHold bool

	score     int
	level     int
	lines     int
	lastClear int
	locked    int

	lockFrames int
	gravity    float64
	frames     uint64
	over       bool

	dealt *intmap.Map[Kind, int]
}

// NewSession creates a session. With no options the board is empty, the
// first piece and queue come from a randomly seeded bag and the level is
// DefaultLevel.
func NewSession(opts ...Option) *Session {
	o := options{level: DefaultLevel}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		bag:     NewBag(o.rng),
		level:   clampLevel(o.level),
		canHold: true,
		dealt:   intmap.New[Kind, int](len(Kinds)),
	}
	if o.board != nil {
		s.board = *o.board
	}

	first := o.first
	if !first.Valid() {
		first = s.bag.Next()
	}
	s.queue = newQueue(s.bag)
	s.activate(first)
	s.countDealt(first)
	return s
}

func (s *Session) activate(kind Kind) {
	s.active = NewPiece(kind)
	s.lockFrames = 0
}

func (s *Session) countDealt(kind Kind) {
	n, _ := s.dealt.Get(kind)
	s.dealt.Put(kind, n+1)
}

// deal activates the front of the queue and backfills it from the bag.
func (s *Session) deal() {
	kind := s.queue.next(s.bag)
	s.activate(kind)
	s.countDealt(kind)
}

// Shift moves the active piece one column. It reports whether the piece
// moved.
func (s *Session) Shift(dir Direction) bool {
	if s.over {
		return false
	}
	moved := s.active.Shift(dir, &s.board)
	s.settle()
	return moved
}

// Rotate turns the active piece using the SRS wall kicks. It reports
// whether the piece rotated.
func (s *Session) Rotate(clockwise bool) bool {
	if s.over {
		return false
	}
	rotated := s.active.Rotate(clockwise, &s.board)
	s.settle()
	return rotated
}

// settle runs the lock-delay check when the active piece rests on
// something.
func (s *Session) settle() {
	if s.active.Grounded(&s.board) {
		s.tryLock()
	}
}

// SoftDrop moves the active piece down one row, scoring one point whether
// or not it moves. A piece that cannot move down locks immediately.
func (s *Session) SoftDrop() bool {
	if s.over {
		return false
	}
	s.score++
	if s.active.SoftDrop(&s.board) {
		s.lockFrames = 0
		return true
	}
	s.lock()
	return false
}

// HardDrop drops the active piece as far as it goes, scoring two points per
// row, and locks it. It returns the number of rows descended.
func (s *Session) HardDrop() int {
	if s.over {
		return 0
	}
	rows := 0
	for s.active.SoftDrop(&s.board) {
		rows++
		s.score += 2
	}
	s.lock()
	return rows
}

// Hold sets the active piece aside. With an empty hold slot the next queued
// piece becomes active; otherwise the held piece is swapped in, at most
// once per locked piece. It reports whether anything changed.
func (s *Session) Hold() bool {
	if s.over {
		return false
	}
	switch {
	case s.held == None:
		s.held = s.active.Kind
		s.canHold = false
		s.deal()
	case s.canHold:
		prev := s.held
		s.held = s.active.Kind
		s.canHold = false
		s.activate(prev)
	default:
		return false
	}
	return true
}

// FrameAdvance runs one tick of gravity. Each whole row of accumulated
// gravity attempts one drop; a drop that fails goes through the lock-delay
// check instead of locking outright.
func (s *Session) FrameAdvance() {
	if s.over {
		return
	}
	s.frames++
	s.gravity += GravityPerFrame(s.level)
	for s.gravity >= 1 && !s.over {
		s.gravity--
		if s.active.SoftDrop(&s.board) {
			s.lockFrames = 0
			continue
		}
		s.tryLock()
	}
}

// tryLock counts grounded frames up to LockDelayFrames, then locks the
// piece if no basic move is available to it.
func (s *Session) tryLock() bool {
	if s.lockFrames < LockDelayFrames {
		s.lockFrames++
		return false
	}
	if s.mobile() {
		return false
	}
	s.lock()
	return true
}

// mobile tries every basic move on scratch copies of the active piece.
func (s *Session) mobile() bool {
	moves := [...]func(p *Piece) bool{
		func(p *Piece) bool { return p.Shift(ShiftLeft, &s.board) },
		func(p *Piece) bool { return p.Shift(ShiftRight, &s.board) },
		func(p *Piece) bool { return p.Rotate(true, &s.board) },
		func(p *Piece) bool { return p.Rotate(false, &s.board) },
	}
	for _, move := range moves {
		scratch := s.active
		if move(&scratch) {
			return true
		}
	}
	return false
}

// lock writes the active piece into the board, clears completed rows and
// deals the next piece.
func (s *Session) lock() {
	for _, sq := range s.active.Squares() {
		s.board.Set(sq, s.active.Kind)
		if sq.Row <= GameOverRow {
			s.over = true
		}
	}
	s.locked++
	s.canHold = true

	cleared := s.clearLines()
	s.lastClear = cleared
	if cleared > 0 {
		s.lines += cleared
		s.score += LineClearAward(cleared, s.level)
	}
	s.deal()
}

// clearLines removes every solid row, bottom to top, and returns how many
// were removed. A row index is re-checked after each removal because the
// row above has moved into it.
func (s *Session) clearLines() int {
	n := 0
	for row := Rows - 1; row >= 0; row-- {
		for s.board.RowSolid(row) {
			s.board.ClearRow(row)
			n++
		}
	}
	return n
}

// SetLevel changes the level, clamped to 0..MaxLevel.
func (s *Session) SetLevel(level int) {
	s.level = clampLevel(level)
}

// Board returns a copy of the board.
func (s *Session) Board() Board { return s.board }

// Active returns a copy of the active piece.
func (s *Session) Active() Piece { return s.active }

// ActiveSquares returns the cells occupied by the active piece.
func (s *Session) ActiveSquares() [4]Position { return s.active.Squares() }

// GhostSquares returns the cells the active piece would occupy after a
// hard drop.
func (s *Session) GhostSquares() [4]Position {
	ghost := s.active
	for ghost.SoftDrop(&s.board) {
	}
	return ghost.Squares()
}

// Held returns the held kind, None when the slot is empty.
func (s *Session) Held() Kind { return s.held }

// CanHold reports whether Hold would currently change anything.
func (s *Session) CanHold() bool { return !s.over && (s.held == None || s.canHold) }

// Queue returns the upcoming kinds, next first.
func (s *Session) Queue() [QueueLen]Kind { return s.queue.Peek() }

func (s *Session) Score() int { return s.score }

func (s *Session) Level() int { return s.level }

// Lines returns the total number of rows cleared.
func (s *Session) Lines() int { return s.lines }

// LastClear returns the rows removed by the most recent lock.
func (s *Session) LastClear() int { return s.lastClear }

// Locked returns the number of pieces locked so far.
func (s *Session) Locked() int { return s.locked }

// Frames returns the number of frames advanced.
func (s *Session) Frames() uint64 { return s.frames }

// LockCounter returns the current lock-delay frame count.
func (s *Session) LockCounter() int { return s.lockFrames }

func (s *Session) GameOver() bool { return s.over }

// Dealt returns how many pieces of kind have been dealt from the queue,
// including the first piece.
func (s *Session) Dealt(kind Kind) int {
	n, _ := s.dealt.Get(kind)
	return n
}
