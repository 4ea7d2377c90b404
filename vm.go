package brainfuck

import (
	"bufio"
	"errors"
	"io"
)

// opHandler executes one instruction and returns the program counter to
// resume at. This is the Go rendering of threaded dispatch: each opcode
// has its own entry in a dense table indexed by Op, and Run dispatches
// every instruction through that table instead of a switch. All dispatch
// happens at the one indirect call in Run.
type opHandler func(it *Interpreter, instr Instruction, pc int) (int, error)

var handlers [12]opHandler

func init() {
	handlers[Output] = opOutput
	handlers[Input] = opInput
	handlers[JumpForward] = opJumpForward
	handlers[JumpBackward] = opJumpBackward
	handlers[SetZero] = opSetZero
	handlers[AddVal] = opAddVal
	handlers[MovePos] = opMovePos
	handlers[AddToNext] = opAddToNext
	handlers[MultiplyMove] = opMultiplyMove
	handlers[SetVal] = opSetVal
	handlers[ScanRight] = opScanRight
	handlers[ScanLeft] = opScanLeft
}

// Interpreter executes one instruction sequence against one tape. It
// holds its own input/output buffers and owns its Tape exclusively; the
// instruction sequence is read-only and may be shared.
type Interpreter struct {
	seq []Instruction
	out *bufio.Writer
	in  *bufio.Reader

	Tape *Tape
}

// New returns an Interpreter ready to execute seq, reading Input bytes
// from in and writing Output bytes to out.
func New(seq []Instruction, in io.Reader, out io.Writer) *Interpreter {
	return &Interpreter{
		seq:  seq,
		out:  bufio.NewWriter(out),
		in:   bufio.NewReader(in),
		Tape: NewTape(),
	}
}

// Run executes the instruction sequence to completion, starting at
// program counter 0. It returns the first tape fault encountered, if
// any; output already written before a fault is flushed before Run
// returns.
func (it *Interpreter) Run() error {
	defer it.out.Flush()

	pc := 0
	n := len(it.seq)
	for pc < n {
		instr := it.seq[pc]
		h := handlers[instr.Op]
		if h == nil {
			return errors.New("brainfuck: unknown opcode in instruction sequence")
		}
		next, err := h(it, instr, pc)
		if err != nil {
			return err
		}
		pc = next
	}
	return nil
}

func opOutput(it *Interpreter, _ Instruction, pc int) (int, error) {
	if err := it.out.WriteByte(it.Tape.Get()); err != nil {
		return 0, err
	}
	if err := it.out.Flush(); err != nil {
		return 0, err
	}
	return pc + 1, nil
}

// opInput leaves the current cell unchanged at end-of-stream, one of a
// few conventions real implementations use for exhausted input.
func opInput(it *Interpreter, _ Instruction, pc int) (int, error) {
	b, err := it.in.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return pc + 1, nil
		}
		return 0, err
	}
	it.Tape.Set(b)
	return pc + 1, nil
}

func opJumpForward(it *Interpreter, instr Instruction, pc int) (int, error) {
	if it.Tape.Get() == 0 {
		return instr.Target + 1, nil
	}
	return pc + 1, nil
}

func opJumpBackward(it *Interpreter, instr Instruction, pc int) (int, error) {
	if it.Tape.Get() != 0 {
		return instr.Target + 1, nil
	}
	return pc + 1, nil
}

func opSetZero(it *Interpreter, _ Instruction, pc int) (int, error) {
	it.Tape.Set(0)
	return pc + 1, nil
}

func opAddVal(it *Interpreter, instr Instruction, pc int) (int, error) {
	it.Tape.Add(instr.Operand)
	return pc + 1, nil
}

func opMovePos(it *Interpreter, instr Instruction, pc int) (int, error) {
	delta := instr.Operand
	var err error
	if delta >= 0 {
		err = it.Tape.MoveRight(int(delta))
	} else {
		err = it.Tape.MoveLeft(int(-delta))
	}
	if err != nil {
		return 0, err
	}
	return pc + 1, nil
}

// opAddToNext only touches the neighbor cell when the current cell is
// nonzero, matching the naive `[->+<]` loop, which never enters its body
// (and so never touches the neighbor) when the current cell is already 0.
func opAddToNext(it *Interpreter, _ Instruction, pc int) (int, error) {
	v := it.Tape.Get()
	if v != 0 {
		if err := it.Tape.AddAt(1, int32(v)); err != nil {
			return 0, err
		}
	}
	it.Tape.Set(0)
	return pc + 1, nil
}

// opMultiplyMove only touches the neighbor cell when the current cell is
// nonzero, for the same reason as opAddToNext: the unfolded loop body
// never runs, and so never bounds-checks the neighbor, when curr == 0.
func opMultiplyMove(it *Interpreter, instr Instruction, pc int) (int, error) {
	v := it.Tape.Get()
	if v != 0 {
		if err := it.Tape.AddAt(1, int32(v)*instr.Operand); err != nil {
			return 0, err
		}
	}
	it.Tape.Set(0)
	return pc + 1, nil
}

func opSetVal(it *Interpreter, instr Instruction, pc int) (int, error) {
	it.Tape.Set(byte(instr.Operand))
	return pc + 1, nil
}

func opScanRight(it *Interpreter, _ Instruction, pc int) (int, error) {
	for it.Tape.Get() != 0 {
		if err := it.Tape.MoveRight(1); err != nil {
			return 0, err
		}
	}
	return pc + 1, nil
}

func opScanLeft(it *Interpreter, _ Instruction, pc int) (int, error) {
	for it.Tape.Get() != 0 {
		if err := it.Tape.MoveLeft(1); err != nil {
			return 0, err
		}
	}
	return pc + 1, nil
}
