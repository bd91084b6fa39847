// Package typewriter prints text to the terminal one character at a time,
// pausing after each character for a configurable duration. Per-character
// overrides allow e.g. longer pauses after spaces or sentence punctuation.
//
// Typing "hello" with 10 milliseconds per character:
//
//	cd := typewriter.MustBuild(typewriter.Default(10, typewriter.Millis))
//	typewriter.Print(cd, "hello")
//
// Typing word by word, each word instant and each space taking 250ms:
//
//	cd := typewriter.MustBuild(typewriter.Char(' ', 250, typewriter.Millis))
//	typewriter.Printfln(cd, "hello %s world", name)
//
// The same table can come from a spec string ("default 90.ms, '.'->1.s",
// see Parse) or from a JSON file (see LoadConfig).
package typewriter

import (
	"maps"
	"time"
)

// CharDurations maps characters to the pause taken after each one is
// printed, with a fallback default for characters not in the map. The zero
// value is a table with no pauses at all.
//
// A CharDurations is immutable once constructed; Clone and Equal are
// value-based.
type CharDurations struct {
	def      time.Duration
	specific map[rune]time.Duration
}

// New builds a table from a default duration and per-character overrides.
// The map is copied, so the caller may keep mutating its own copy. No
// validation is performed; zero durations are fine.
func New(def time.Duration, specific map[rune]time.Duration) *CharDurations {
	return &CharDurations{def: def, specific: maps.Clone(specific)}
}

// Duration returns the pause for r: the specific entry if present, the
// default otherwise. It never fails; a nil table pauses for nothing.
func (c *CharDurations) Duration(r rune) time.Duration {
	if c == nil {
		return 0
	}
	if d, ok := c.specific[r]; ok {
		return d
	}
	return c.def
}

// Default returns the fallback duration.
func (c *CharDurations) Default() time.Duration {
	if c == nil {
		return 0
	}
	return c.def
}

// Specific returns a copy of the per-character overrides.
func (c *CharDurations) Specific() map[rune]time.Duration {
	if c == nil {
		return nil
	}
	return maps.Clone(c.specific)
}

// Equal reports whether two tables have the same default and the same
// overrides.
func (c *CharDurations) Equal(o *CharDurations) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.def == o.def && maps.Equal(c.specific, o.specific)
}

// Clone returns a deep copy.
func (c *CharDurations) Clone() *CharDurations {
	if c == nil {
		return nil
	}
	return New(c.def, c.specific)
}
