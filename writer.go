package typewriter

import (
	"fmt"
	"io"
	"os"
	"time"
)

// flushDiagnostic is the fixed message printed to the output stream when
// flushing fails mid-print. Printing stops at that point.
const flushDiagnostic = "Failed to flush stdout"

// Swapped out in tests to observe pauses without waiting them out.
var sleep = time.Sleep

// stdout is the destination of Print and friends. os.Stdout is unbuffered,
// so every write reaches the terminal immediately; tests substitute a
// buffer or a failing flusher here.
var stdout io.Writer = os.Stdout

type flusher interface {
	Flush() error
}

// Print types text to standard output one character at a time. Characters
// are Unicode code points, never bytes, so multi-byte text stays intact.
// After each character is written and flushed, the calling goroutine
// blocks for that character's duration in cd; zero durations skip the
// sleep entirely.
//
// Print never returns an error: if a write or flush fails it prints
// "Failed to flush stdout" to the stream and gives up on the rest of the
// text. The effect is cosmetic, so that is all the handling it gets; use
// Fprint when the caller needs to know.
//
// Output is not locked. Concurrent Print calls interleave arbitrarily and
// are the caller's problem to serialize.
func Print(cd *CharDurations, text string) {
	if err := typeRunes(stdout, cd, text); err != nil {
		fmt.Fprintln(stdout, flushDiagnostic)
	}
}

// Printf formats like fmt.Sprintf and types the result. No trailing
// newline is added.
func Printf(cd *CharDurations, format string, a ...any) {
	Print(cd, fmt.Sprintf(format, a...))
}

// Printfln formats like fmt.Sprintf, appends a newline and types the
// result. The newline is a character like any other: if cd has a specific
// duration for '\n' it applies, otherwise the default does.
func Printfln(cd *CharDurations, format string, a ...any) {
	Print(cd, fmt.Sprintf(format, a...)+"\n")
}

// Fprint types text to w with the same pacing as Print, but surfaces the
// first write or flush error instead of swallowing it. If w implements
// Flush() error it is flushed after every character.
func Fprint(w io.Writer, cd *CharDurations, text string) error {
	return typeRunes(w, cd, text)
}

func typeRunes(w io.Writer, cd *CharDurations, text string) error {
	for _, r := range text {
		if _, err := io.WriteString(w, string(r)); err != nil {
			return fmt.Errorf("write %q: %w", r, err)
		}
		if f, ok := w.(flusher); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("flush: %w", err)
			}
		}
		if d := cd.Duration(r); d > 0 {
			sleep(d)
		}
	}
	return nil
}
