package brainfuck

import "fmt"

// TapeHalf is the number of cells on each side of the origin. The tape
// spans offsets [-TapeHalf, TapeHalf-1], giving 2*TapeHalf addressable
// cells total, held as two arrays joined at the origin so the head can
// move left of its starting offset without wrapping.
const TapeHalf = 20000

// Tape is a bidirectionally-extensible byte tape. It is a value type
// bundling two fixed-size halves plus a head offset; every program gets
// its own Tape rather than sharing package-level state.
type Tape struct {
	right [TapeHalf]byte // cells at offsets 0..TapeHalf-1
	left  [TapeHalf]byte // cells at offsets -1..-TapeHalf, left[0] is offset -1
	head  int
}

// NewTape returns a Tape with the head at offset 0 and every cell zeroed.
func NewTape() *Tape {
	return &Tape{}
}

func (t *Tape) cell(offset int) *byte {
	if offset >= 0 {
		return &t.right[offset]
	}
	return &t.left[-offset-1]
}

// MoveRight advances the head by n (n >= 1). It returns ErrTapeOverflow if
// the new offset would exceed TapeHalf-1.
func (t *Tape) MoveRight(n int) error {
	next := t.head + n
	if next > TapeHalf-1 {
		return fmt.Errorf("%w: head %d + %d exceeds %d", ErrTapeOverflow, t.head, n, TapeHalf-1)
	}
	t.head = next
	return nil
}

// MoveLeft retreats the head by n (n >= 1). It returns ErrTapeUnderflow if
// the new offset would fall below -TapeHalf.
func (t *Tape) MoveLeft(n int) error {
	next := t.head - n
	if next < -TapeHalf {
		return fmt.Errorf("%w: head %d - %d is below %d", ErrTapeUnderflow, t.head, n, -TapeHalf)
	}
	t.head = next
	return nil
}

// Add adds delta to the current cell, wrapping modulo 256.
func (t *Tape) Add(delta int32) {
	c := t.cell(t.head)
	*c = byte(int32(*c) + delta)
}

// AddAt adds delta to the cell at head+offset, wrapping modulo 256. It is
// used by AddToNext and MultiplyMove, which touch a neighboring cell
// without moving the head there. The target offset is bounds-checked the
// same way MoveRight/MoveLeft check a real head move, since the patterns
// these ops fold only hold if the unfolded loop would not have run off
// the tape on its way to that cell.
func (t *Tape) AddAt(offset int, delta int32) error {
	target := t.head + offset
	if target > TapeHalf-1 {
		return fmt.Errorf("%w: offset %d exceeds %d", ErrTapeOverflow, target, TapeHalf-1)
	}
	if target < -TapeHalf {
		return fmt.Errorf("%w: offset %d is below %d", ErrTapeUnderflow, target, -TapeHalf)
	}
	c := t.cell(target)
	*c = byte(int32(*c) + delta)
	return nil
}

// Set overwrites the current cell with v.
func (t *Tape) Set(v byte) {
	*t.cell(t.head) = v
}

// Get returns the value of the current cell.
func (t *Tape) Get() byte {
	return *t.cell(t.head)
}

// Head returns the current head offset, mainly for tests.
func (t *Tape) Head() int {
	return t.head
}
