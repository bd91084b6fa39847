package typewriter

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"
)

// Config is the JSON shape of a duration table:
//
//	{
//	  "default": {"value": 20, "unit": "ms"},
//	  "chars": [
//	    {"char": " ", "value": 150, "unit": "ms"},
//	    {"char": ".", "value": 1, "unit": "s"}
//	  ]
//	}
//
// Both sections are optional; a missing default means zero. Unit tags are
// validated when the table is built, and a later entry for the same
// character wins.
type Config struct {
	Default *ConfigDuration `json:"default,omitempty"`
	Chars   []ConfigChar    `json:"chars,omitempty"`
}

type ConfigDuration struct {
	Value int64 `json:"value"`
	Unit  Unit  `json:"unit"`
}

type ConfigChar struct {
	Char  string `json:"char"`
	Value int64  `json:"value"`
	Unit  Unit   `json:"unit"`
}

// Table builds the CharDurations the config describes.
func (c Config) Table() (*CharDurations, error) {
	opts := make([]Option, 0, len(c.Chars)+1)
	if c.Default != nil {
		opts = append(opts, Default(c.Default.Value, c.Default.Unit))
	}
	for _, ce := range c.Chars {
		if !utf8.ValidString(ce.Char) || utf8.RuneCountInString(ce.Char) != 1 {
			return nil, fmt.Errorf("char %q: want exactly one character", ce.Char)
		}
		r, _ := utf8.DecodeRuneInString(ce.Char)
		opts = append(opts, Char(r, ce.Value, ce.Unit))
	}
	return Build(opts...)
}

// LoadConfig reads a JSON duration table from path.
func LoadConfig(path string) (*CharDurations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var conf Config
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cd, err := conf.Table()
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cd, nil
}
