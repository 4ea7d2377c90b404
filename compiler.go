package brainfuck

import "github.com/TalkTakesTime/stack"

// Compile translates a raw Brainfuck source buffer into an instruction
// sequence. Bytes other than `> < + - . , [ ]` are silently skipped, per
// Brainfuck's comment convention. Compilation is deterministic: equal
// input buffers always produce equal instruction sequences.
func Compile(src []byte) []Instruction {
	var out []Instruction
	var loopStack stack.Stack

	n := len(src)
	for i := 0; i < n; {
		switch src[i] {
		case '>':
			k := runLength(src, i, '>')
			out = append(out, Instruction{Op: MovePos, Operand: int32(k)})
			i += k
		case '<':
			k := runLength(src, i, '<')
			out = append(out, Instruction{Op: MovePos, Operand: -int32(k)})
			i += k
		case '+':
			k := runLength(src, i, '+')
			out = append(out, Instruction{Op: AddVal, Operand: int32(k)})
			i += k
		case '-':
			k := runLength(src, i, '-')
			out = append(out, Instruction{Op: AddVal, Operand: -int32(k)})
			i += k
		case '.':
			out = append(out, Instruction{Op: Output})
			i++
		case ',':
			out = append(out, Instruction{Op: Input})
			i++
		case '[':
			if instr, span, ok := matchLoopPattern(src, i); ok {
				out = append(out, instr)
				i += span
				continue
			}
			out = append(out, Instruction{Op: JumpForward})
			loopStack.Push(len(out) - 1)
			i++
		case ']':
			if loopStack.Length() == 0 {
				// Unbalanced closer: a deliberate no-op.
				i++
				continue
			}
			raw, err := loopStack.Pop()
			if err != nil {
				// loopStack.Length() was checked above, so Pop cannot
				// fail; this is unreachable in practice.
				i++
				continue
			}
			openIdx := raw.(int)
			out[openIdx].Target = len(out)
			out = append(out, Instruction{Op: JumpBackward, Target: openIdx})
			i++
		default:
			// comment byte, ignored
			i++
		}
	}

	// Unmatched `[` is resolved as "jump past end of program": its
	// placeholder target still reads 0, which would branch into the
	// middle of the program. Rewrite every open JumpForward left on the
	// stack to point one past the final instruction.
	for loopStack.Length() > 0 {
		raw, err := loopStack.Pop()
		if err != nil {
			break
		}
		out[raw.(int)].Target = len(out)
	}

	return out
}

// runLength returns the length of the maximal run of b starting at src[i].
func runLength(src []byte, i int, b byte) int {
	n := len(src)
	k := 0
	for i+k < n && src[i+k] == b {
		k++
	}
	return k
}

// signedRun consumes a maximal run of '+'/'-' starting at src[i] and
// returns its signed sum and length.
func signedRun(src []byte, i int) (sum int32, length int) {
	n := len(src)
	j := i
	for j < n && (src[j] == '+' || src[j] == '-') {
		if src[j] == '+' {
			sum++
		} else {
			sum--
		}
		j++
	}
	return sum, j - i
}

// matchLoopPattern tries each loop-body superinstruction pattern in turn,
// in the order set-value, set-zero, scan, add-to-next, multiply-move. It
// reports the recognized instruction, the number of source bytes the
// match consumes (the full span, starting at the `[`), and whether any
// pattern matched at all. src[i] is assumed to be '['.
func matchLoopPattern(src []byte, i int) (Instruction, int, bool) {
	n := len(src)

	if instr, span, ok := matchSetValueOrZero(src, i); ok {
		return instr, span, ok
	}
	if i+3 <= n && src[i+1] == '+' && src[i+2] == ']' {
		return Instruction{Op: SetZero}, 3, true
	}
	if i+3 <= n && src[i+1] == '>' && src[i+2] == ']' {
		return Instruction{Op: ScanRight}, 3, true
	}
	if i+3 <= n && src[i+1] == '<' && src[i+2] == ']' {
		return Instruction{Op: ScanLeft}, 3, true
	}
	if i+6 <= n && src[i+1] == '-' && src[i+2] == '>' && src[i+3] == '+' &&
		src[i+4] == '<' && src[i+5] == ']' {
		return Instruction{Op: AddToNext}, 6, true
	}
	if instr, span, ok := matchMultiplyMove(src, i); ok {
		return instr, span, ok
	}

	return Instruction{}, 0, false
}

// matchSetValueOrZero recognizes `[-]` optionally followed by a run of
// `+`/`-`. A nonempty run with nonzero sum v becomes SetVal(v); a bare
// `[-]` becomes SetZero. A nonempty run with zero sum is not a match --
// it falls through to generic loop compilation.
func matchSetValueOrZero(src []byte, i int) (Instruction, int, bool) {
	n := len(src)
	if i+3 > n || src[i+1] != '-' || src[i+2] != ']' {
		return Instruction{}, 0, false
	}
	sum, runLen := signedRun(src, i+3)
	if runLen == 0 {
		return Instruction{Op: SetZero}, 3, true
	}
	if sum != 0 {
		return Instruction{Op: SetVal, Operand: sum}, 3 + runLen, true
	}
	return Instruction{}, 0, false
}

// matchMultiplyMove recognizes `[->` followed by a nonempty run of
// `+`/`-` with signed sum k, followed by `<]`.
func matchMultiplyMove(src []byte, i int) (Instruction, int, bool) {
	n := len(src)
	if i+3 > n || src[i+1] != '-' || src[i+2] != '>' {
		return Instruction{}, 0, false
	}
	sum, runLen := signedRun(src, i+3)
	if runLen == 0 {
		return Instruction{}, 0, false
	}
	j := i + 3 + runLen
	if j+2 > n || src[j] != '<' || src[j+1] != ']' {
		return Instruction{}, 0, false
	}
	return Instruction{Op: MultiplyMove, Operand: sum}, (j + 2) - i, true
}
