// Package ansi recognizes ANSI escape sequences in text that is about to
// be typed out. Emitting a sequence one rune at a time with pauses in
// between leaves the terminal showing half-written garbage, so sequences
// are either stripped or kept whole.
package ansi

import "regexp"

// CSI sequences, OSC sequences (BEL or ST terminated) and bare two-byte
// escapes, in that order so "[" and "]" bind to the longer forms first.
var reEscape = regexp.MustCompile("\x1b(?:\\[[0-9;?]*[ -/]*[@-~]|\\][^\x07\x1b]*(?:\x07|\x1b\\\\)|[@-Z\\\\-_])")

// Strip removes all escape sequences from s.
func Strip(s string) string {
	return reEscape.ReplaceAllString(s, "")
}

// Segments splits s into single-rune segments and atomic escape-sequence
// segments, in order. Concatenating the result gives back s.
func Segments(s string) []string {
	out := make([]string, 0, len(s))
	for len(s) > 0 {
		loc := reEscape.FindStringIndex(s)
		if loc == nil {
			for _, r := range s {
				out = append(out, string(r))
			}
			break
		}
		for _, r := range s[:loc[0]] {
			out = append(out, string(r))
		}
		out = append(out, s[loc[0]:loc[1]])
		s = s[loc[1]:]
	}
	return out
}

// IsEscape reports whether seg is one of the escape-sequence segments
// produced by Segments rather than a printable rune.
func IsEscape(seg string) bool {
	return len(seg) > 0 && seg[0] == '\x1b'
}
