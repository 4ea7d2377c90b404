// Command interpreter compiles and runs a Brainfuck source file, or, with
// -c, compiles it and dumps the raw opcode byte stream instead of
// executing it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DonnyDevV/Brainfuck"
	"github.com/mitchellh/colorstring"
)

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	fs := flag.NewFlagSet(argv[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard) // we print our own usage banner
	dump := fs.Bool("c", false, "emit the compiled instruction stream instead of running it")

	if err := fs.Parse(argv[1:]); err != nil {
		printUsage(argv[0])
		return 1
	}

	var src []byte
	var err error
	switch fs.NArg() {
	case 0:
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			printError(fmt.Sprintf("Unable to read program from standard input: %s", err))
			return 1
		}
	case 1:
		path := fs.Arg(0)
		src, err = os.ReadFile(path)
		if err != nil {
			printError(fmt.Sprintf("Unable to open file %s", path))
			return 1
		}
	default:
		printUsage(argv[0])
		return 1
	}

	seq := brainfuck.Compile(src)

	if *dump {
		w := bufio.NewWriter(os.Stdout)
		if err := dumpSequence(seq, w); err != nil {
			printError(err.Error())
			return 1
		}
		if err := w.Flush(); err != nil {
			printError(err.Error())
			return 1
		}
		return 0
	}

	interp := brainfuck.New(seq, os.Stdin, os.Stdout)
	if err := interp.Run(); err != nil {
		printError(err.Error())
		return 1
	}

	return 0
}

// dumpSequence writes one byte per instruction -- its opcode's numeric
// tag -- in sequence order. Operands are never serialized; this is a
// debug-only format, not a stable execution format.
func dumpSequence(seq []brainfuck.Instruction, w io.Writer) error {
	buf := make([]byte, len(seq))
	for i, instr := range seq {
		buf[i] = byte(instr.Op)
	}
	_, err := w.Write(buf)
	return err
}

func printUsage(argv0 string) {
	fmt.Fprintf(os.Stderr, "Usage: %s [-c] program_file\n", filepath.Base(argv0))
}

// plainColorize strips color tags instead of emitting escape codes, so
// printError's diagnostics (including the spec-mandated file-open error)
// reach stderr as literal text rather than wrapped in ANSI escapes.
var plainColorize = &colorstring.Colorize{Colors: colorstring.DefaultColors, Disable: true}

func printError(msg string) {
	fmt.Fprintln(os.Stderr, plainColorize.Color("[red]Error:[reset] "+msg))
}
