package typewriter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse builds a table from its textual form, a comma-separated list of
// clauses:
//
//	default 90.ms, ' '->250.ms, '.'->1.s
//
// Each clause is either "default N.unit" or "'c'->N.unit", where unit is
// "ms" or "s" and c is a single character (escapes \' \\ \n \t allowed).
// Without a default clause the fallback duration is zero. Empty clauses
// are ignored; repeating a character keeps the last value given.
func Parse(s string) (*CharDurations, error) {
	clauses, err := splitClauses(s)
	if err != nil {
		return nil, err
	}
	if len(clauses) == 0 {
		return nil, errors.New("empty duration spec")
	}
	opts := make([]Option, 0, len(clauses))
	for _, clause := range clauses {
		opt, perr := parseClause(clause)
		if perr != nil {
			return nil, fmt.Errorf("clause %q: %w", clause, perr)
		}
		opts = append(opts, opt)
	}
	return Build(opts...)
}

// splitClauses splits on commas outside single quotes, so ','->100.ms
// stays one clause.
func splitClauses(s string) ([]string, error) {
	var out []string
	var sb strings.Builder
	inQuote := false
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case inQuote && r == '\\':
			escaped = true
		case r == '\'':
			inQuote = !inQuote
		case r == ',' && !inQuote:
			if c := strings.TrimSpace(sb.String()); c != "" {
				out = append(out, c)
			}
			sb.Reset()
			continue
		}
		sb.WriteRune(r)
	}
	if inQuote {
		return nil, errors.New("unterminated character literal")
	}
	if c := strings.TrimSpace(sb.String()); c != "" {
		out = append(out, c)
	}
	return out, nil
}

func parseClause(clause string) (Option, error) {
	if rest, ok := strings.CutPrefix(clause, "default"); ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return nil, errors.New("missing duration literal")
		}
		n, u, err := parseDurationLiteral(rest)
		if err != nil {
			return nil, err
		}
		return Default(n, u), nil
	}
	r, rest, err := parseCharLiteral(clause)
	if err != nil {
		return nil, err
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(rest), "->")
	if !ok {
		return nil, errors.New(`missing "->"`)
	}
	n, u, err := parseDurationLiteral(strings.TrimSpace(rest))
	if err != nil {
		return nil, err
	}
	return Char(r, n, u), nil
}

func parseCharLiteral(s string) (rune, string, error) {
	if s == "" || s[0] != '\'' {
		return 0, "", errors.New("character literal must be single-quoted")
	}
	body := s[1:]
	if body == "" {
		return 0, "", errors.New("unterminated character literal")
	}
	var r rune
	if body[0] == '\\' {
		if len(body) < 2 {
			return 0, "", errors.New("unterminated escape")
		}
		switch body[1] {
		case 'n':
			r = '\n'
		case 't':
			r = '\t'
		case '\\':
			r = '\\'
		case '\'':
			r = '\''
		default:
			return 0, "", fmt.Errorf("unknown escape \\%s", string(body[1]))
		}
		body = body[2:]
	} else {
		rr, size := utf8.DecodeRuneInString(body)
		if rr == utf8.RuneError && size <= 1 {
			return 0, "", errors.New("invalid character literal")
		}
		r = rr
		body = body[size:]
	}
	if body == "" || body[0] != '\'' {
		return 0, "", errors.New("character literal must hold exactly one character")
	}
	return r, body[1:], nil
}

// parseDurationLiteral parses the N.unit form, e.g. "250.ms" or "1.s".
// Unit tags are validated later, when the option runs.
func parseDurationLiteral(s string) (int64, Unit, error) {
	value, unit, ok := strings.Cut(s, ".")
	if !ok {
		return 0, "", fmt.Errorf("duration literal %q: want N.ms or N.s", s)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("duration literal %q: %w", s, err)
	}
	if n < 0 {
		return 0, "", fmt.Errorf("duration literal %q: negative", s)
	}
	return n, Unit(strings.TrimSpace(unit)), nil
}
