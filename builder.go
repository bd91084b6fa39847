package typewriter

import (
	"fmt"
	"time"
)

// Unit tags a duration literal supplied to the declarative builder, the
// spec-string parser or a JSON config. Exactly two tags are recognized;
// anything else is rejected before a table is produced.
type Unit string

const (
	Millis  Unit = "ms"
	Seconds Unit = "s"
)

func (u Unit) duration(n int64) (time.Duration, error) {
	switch u {
	case Millis:
		return time.Duration(n) * time.Millisecond, nil
	case Seconds:
		return time.Duration(n) * time.Second, nil
	default:
		return 0, fmt.Errorf("unknown duration unit %q (want %q or %q)", string(u), Millis, Seconds)
	}
}

// Option configures one entry of a table constructed with Build.
type Option func(*builder) error

type builder struct {
	def      time.Duration
	specific map[rune]time.Duration
}

// Default sets the fallback duration of the table being built.
func Default(n int64, u Unit) Option {
	return func(b *builder) error {
		d, err := u.duration(n)
		if err != nil {
			return fmt.Errorf("default: %w", err)
		}
		b.def = d
		return nil
	}
}

// Char adds a per-character override. Repeating the same character keeps
// the last value given.
func Char(r rune, n int64, u Unit) Option {
	return func(b *builder) error {
		d, err := u.duration(n)
		if err != nil {
			return fmt.Errorf("char %q: %w", r, err)
		}
		b.specific[r] = d
		return nil
	}
}

// Build constructs a CharDurations from declarative options. Without a
// Default option the fallback duration is zero, so only overridden
// characters pause.
func Build(opts ...Option) (*CharDurations, error) {
	b := &builder{specific: map[rune]time.Duration{}}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return New(b.def, b.specific), nil
}

// MustBuild is Build panicking on error, for package-level tables built
// from literals.
func MustBuild(opts ...Option) *CharDurations {
	cd, err := Build(opts...)
	if err != nil {
		panic(err)
	}
	return cd
}
