package brainfuck

import "errors"

// ErrTapeOverflow is returned when the head would move past the right edge
// of the tape.
var ErrTapeOverflow = errors.New("brainfuck: tape overflow")

// ErrTapeUnderflow is returned when the head would move past the left edge
// of the tape.
var ErrTapeUnderflow = errors.New("brainfuck: tape underflow")
