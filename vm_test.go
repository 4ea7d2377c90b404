package brainfuck

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, src string, stdin string) string {
	t.Helper()
	seq := Compile([]byte(src))
	var out bytes.Buffer
	it := New(seq, strings.NewReader(stdin), &out)
	require.NoError(t, it.Run())
	return out.String()
}

func TestHelloWorld(t *testing.T) {
	const src = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."
	require.Equal(t, "Hello World!\n", runSource(t, src, ""))
}

func TestEchoUntilZero(t *testing.T) {
	got := runSource(t, ",[.,]", "abc\x00xyz")
	require.Equal(t, "abc", got)
}

func TestCellWrap(t *testing.T) {
	got := runSource(t, "-.", "")
	require.Equal(t, []byte{0xFF}, []byte(got))
}

func TestScanLeavesHeadOnFirstZeroCell(t *testing.T) {
	// Cells 0, 1, 2, and 4 (relative to the start) are marked nonzero;
	// cell 3 is left untouched, so the right-scan must stop there.
	seq := Compile([]byte("+>+>+>>+<<<<[>]"))
	it := New(seq, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, it.Run())
	require.Equal(t, 3, it.Tape.Head())
}

func TestMultiplyMoveRecognitionAndResult(t *testing.T) {
	seq := Compile([]byte("++++[->+++<]>."))

	found := false
	for _, instr := range seq {
		if instr.Op == MultiplyMove && instr.Operand == 3 {
			found = true
		}
	}
	require.True(t, found, "expected a MultiplyMove(3) instruction, got %+v", seq)

	var out bytes.Buffer
	it := New(seq, strings.NewReader(""), &out)
	require.NoError(t, it.Run())
	require.Equal(t, []byte{0x0C}, out.Bytes())
}

func TestInputAtEndOfStreamLeavesCellUnchanged(t *testing.T) {
	seq := Compile([]byte("+++,."))
	var out bytes.Buffer
	it := New(seq, strings.NewReader(""), &out)
	require.NoError(t, it.Run())
	require.Equal(t, []byte{3}, out.Bytes())
}

func TestTapeOverflowPropagatesFromInterpreter(t *testing.T) {
	seq := Compile([]byte(">"))
	it := New(seq, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, it.Tape.MoveRight(TapeHalf - 1))

	err := it.Run()
	require.Error(t, err)
}

func TestAddToNextAtRightEdgeWithZeroCellDoesNotOverflow(t *testing.T) {
	// At the rightmost cell with curr == 0, the naive `[->+<]` loop never
	// enters its body, so it never touches (or bounds-checks) the
	// out-of-range neighbor. The folded AddToNext must agree.
	seq := Compile([]byte("[->+<]"))
	it := New(seq, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, it.Tape.MoveRight(TapeHalf-1))

	require.NoError(t, it.Run())
	require.Equal(t, byte(0), it.Tape.Get())
}

func TestMultiplyMoveAtRightEdgeWithZeroCellDoesNotOverflow(t *testing.T) {
	seq := Compile([]byte("[->+++<]"))
	it := New(seq, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, it.Tape.MoveRight(TapeHalf-1))

	require.NoError(t, it.Run())
	require.Equal(t, byte(0), it.Tape.Get())
}

func TestAddToNextMatchesMultiplyMoveByOne(t *testing.T) {
	addToNext := Compile([]byte("++++++[->+<]"))
	var out1 bytes.Buffer
	it1 := New(addToNext, strings.NewReader(""), &out1)
	require.NoError(t, it1.Run())

	multiplyByOne := Compile([]byte("++++++[->+<]"))
	// Replace the compiled AddToNext with a hand-built MultiplyMove(1):
	// both must leave identical tape state.
	multiplyByOne[1] = Instruction{Op: MultiplyMove, Operand: 1}
	var out2 bytes.Buffer
	it2 := New(multiplyByOne, strings.NewReader(""), &out2)
	require.NoError(t, it2.Run())

	require.Equal(t, it1.Tape.Get(), it2.Tape.Get())
	require.Equal(t, 0, it1.Tape.Head())
	require.Equal(t, 0, it2.Tape.Head())

	require.NoError(t, it1.Tape.MoveRight(1))
	require.NoError(t, it2.Tape.MoveRight(1))
	require.Equal(t, byte(6), it1.Tape.Get())
	require.Equal(t, it1.Tape.Get(), it2.Tape.Get())
}
