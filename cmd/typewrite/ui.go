package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	typewriter "github.com/luismascotto/print-typewriter"
)

var helpView = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)

type previewModel struct {
	viewport viewport.Model
	proceed  bool
	quit     bool
}

func newPreviewModel(content string) (previewModel, error) {

	const width = 100

	vp := viewport.New(width, 32)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		PaddingRight(2)

	// Account for the viewport frame and the gutter glamour puts on the
	// left when picking the render width.
	const glamourGutter = 2
	glamourRenderWidth := width - vp.Style.GetHorizontalFrameSize() - glamourGutter

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(glamourRenderWidth),
	)
	if err != nil {
		return previewModel{}, err
	}

	str, err := renderer.Render(content)
	if err != nil {
		return previewModel{}, err
	}

	vp.SetContent(str)

	return previewModel{viewport: vp}, nil
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "t", "enter":
			m.proceed = true
			return m, tea.Quit
		default:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	return m.viewport.View() + helpView.Render("\n  ↑/↓: Scroll • t/enter: Type it • q/esc: Quit\n")
}

// previewContent renders the effective table and the text about to be
// typed as markdown for the viewport.
func previewContent(cd *typewriter.CharDurations, source, text string) string {
	sb := strings.Builder{}
	sb.WriteString("\n\n# typewrite\n\n## Durations (" + source + ")\n\n")
	sb.WriteString("| Char | Pause |\n| --- | --- |\n")
	sb.WriteString(fmt.Sprintf("| default | %s |\n", cd.Default()))

	specific := cd.Specific()
	chars := make([]rune, 0, len(specific))
	for r := range specific {
		chars = append(chars, r)
	}
	slices.Sort(chars)
	for _, r := range chars {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", strconv.QuoteRune(r), specific[r]))
	}

	sb.WriteString("\n## Text\n\n")
	sb.WriteString(fmt.Sprintf("%d characters, about %s at this pacing.\n\n",
		utf8.RuneCountInString(text), estimate(cd, text).Round(100*time.Millisecond)))
	sb.WriteString("```\n" + truncateRunes(text, 400) + "\n```\n")
	return sb.String()
}

// estimate sums the per-character pauses; write time itself is noise.
func estimate(cd *typewriter.CharDurations, text string) time.Duration {
	var total time.Duration
	for _, r := range text {
		total += cd.Duration(r)
	}
	return total
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i] + "…"
		}
		count++
	}
	return s
}
