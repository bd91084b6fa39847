package typewriter

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pacing.json")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"default": {"value": 20, "unit": "ms"},
		"chars": [
			{"char": " ", "value": 150, "unit": "ms"},
			{"char": ".", "value": 1, "unit": "s"}
		]
	}`)

	cd, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := MustBuild(Default(20, Millis), Char(' ', 150, Millis), Char('.', 1, Seconds))
	if !cd.Equal(want) {
		t.Fatalf("loaded default %v specific %v; want default %v specific %v",
			cd.Default(), cd.Specific(), want.Default(), want.Specific())
	}
}

func TestLoadConfig_OverridesOnly(t *testing.T) {
	path := writeConfig(t, `{"chars": [{"char": " ", "value": 250, "unit": "ms"}]}`)
	cd, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cd.Default() != 0 {
		t.Fatalf("Default() = %v; want zero without a default section", cd.Default())
	}
}

func TestLoadConfig_DuplicateCharLastWins(t *testing.T) {
	path := writeConfig(t, `{"chars": [
		{"char": " ", "value": 100, "unit": "ms"},
		{"char": " ", "value": 2, "unit": "s"}
	]}`)
	cd, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cd.Equal(MustBuild(Char(' ', 2, Seconds))) {
		t.Fatalf("Duration(' ') = %v; want last entry's 2s", cd.Duration(' '))
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad unit", `{"default": {"value": 5, "unit": "min"}}`},
		{"bad char unit", `{"chars": [{"char": "x", "value": 5, "unit": "sec"}]}`},
		{"multi-rune char", `{"chars": [{"char": "ab", "value": 5, "unit": "ms"}]}`},
		{"empty char", `{"chars": [{"char": "", "value": 5, "unit": "ms"}]}`},
		{"not json", `default 5.ms`},
	}
	for _, tt := range tests {
		path := writeConfig(t, tt.data)
		if cd, err := LoadConfig(path); err == nil {
			t.Fatalf("%s: LoadConfig = %+v; want error", tt.name, cd)
		}
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("LoadConfig on missing file returned nil error")
	}
}
