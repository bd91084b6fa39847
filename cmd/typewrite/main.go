// Command typewrite types text to the terminal with a typewriter effect.
//
//	typewrite "hello world"
//	typewrite -s "default 20.ms, ' '->150.ms" "hello world"
//	fortune | typewrite -c pacing.json --preview
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"

	typewriter "github.com/luismascotto/print-typewriter"
	"github.com/luismascotto/print-typewriter/internal/ansi"
)

// Built-in pacing: quick letters, a breath after punctuation.
var defaultTable = typewriter.MustBuild(
	typewriter.Default(20, typewriter.Millis),
	typewriter.Char(' ', 60, typewriter.Millis),
	typewriter.Char(',', 180, typewriter.Millis),
	typewriter.Char('.', 350, typewriter.Millis),
	typewriter.Char('\n', 350, typewriter.Millis),
)

func main() {
	var args struct {
		Text      []string `arg:"positional" help:"text to type; reads stdin when absent"`
		Spec      string   `arg:"-s,--spec" help:"duration spec, e.g. \"default 20.ms, ' '->150.ms\""`
		Config    string   `arg:"-c,--config" help:"JSON duration table file"`
		StripANSI bool     `arg:"--strip-ansi" help:"drop ANSI escape sequences before typing"`
		Preview   bool     `arg:"-p,--preview" help:"review the duration table before typing"`
	}
	arg.MustParse(&args)

	cd, source, err := resolveTable(args.Spec, args.Config)
	if err != nil {
		exitWithErr(err)
	}

	text := strings.Join(args.Text, " ")
	if len(args.Text) == 0 {
		data, rerr := io.ReadAll(os.Stdin)
		if rerr != nil {
			exitWithErr(fmt.Errorf("read stdin: %w", rerr))
		}
		text = string(data)
	}
	if args.StripANSI {
		text = ansi.Strip(text)
	}

	if args.Preview {
		model, merr := newPreviewModel(previewContent(cd, source, text))
		if merr != nil {
			exitWithErr(fmt.Errorf("new model: %w", merr))
		}
		ret, rerr := tea.NewProgram(model, tea.WithMouseAllMotion()).Run()
		if rerr != nil {
			exitWithErr(fmt.Errorf("run tea program: %w", rerr))
		}
		final, ok := ret.(previewModel)
		if !ok {
			exitWithErr(errors.New("unexpected model type from preview"))
		}
		if !final.proceed {
			return
		}
	}

	typeOut(cd, text)
}

func resolveTable(spec, config string) (*typewriter.CharDurations, string, error) {
	switch {
	case spec != "" && config != "":
		return nil, "", errors.New("use either --spec or --config, not both")
	case spec != "":
		cd, err := typewriter.Parse(spec)
		if err != nil {
			return nil, "", fmt.Errorf("parse spec: %w", err)
		}
		return cd, "--spec", nil
	case config != "":
		cd, err := typewriter.LoadConfig(config)
		if err != nil {
			return nil, "", err
		}
		return cd, config, nil
	default:
		return defaultTable, "built-in", nil
	}
}

// typeOut keeps escape sequences atomic so the terminal never sees a
// half-written sequence between pauses.
func typeOut(cd *typewriter.CharDurations, text string) {
	if !strings.Contains(text, "\x1b") {
		typewriter.Print(cd, text)
		return
	}
	for _, seg := range ansi.Segments(text) {
		if ansi.IsEscape(seg) {
			fmt.Print(seg)
			continue
		}
		typewriter.Print(cd, seg)
	}
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
