/*
Package brainfuck compiles and executes Brainfuck source programs.

Brainfuck is an esoteric language with the following instructions:
  >  Move the pointer to the right
  <  Move the pointer to the left
  +  Increment the memory cell under the pointer
  -  Decrement the memory cell under the pointer
  .  Output the character signified by the cell at the pointer
  ,  Input a character and store it in the cell at the pointer
  [  Jump past the matching ] if the cell under the pointer is 0
  ]  Jump back to the matching [ if the cell under the pointer is nonzero

Compile translates source bytes into a compact instruction sequence,
folding runs of identical characters and recognizing common loop idioms
(clear, scan, multiply-move) into single superinstructions. New and
Interpreter.Run then execute that sequence against a Tape.

For more information on Brainfuck, see http://esolangs.org/wiki/Brainfuck
*/
package brainfuck
