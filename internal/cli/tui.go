package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/sciplot/pkg/errors"
	"github.com/matzehuels/sciplot/pkg/sizes"
	"github.com/matzehuels/sciplot/pkg/styles"
)

// formatChoice is one selectable style/size combination.
type formatChoice struct {
	Style string
	Size  string
	Font  float64 // base font size in points
	Title float64 // title size in points
	Line  float64 // line width in points
}

// Spec returns the combination as a "style,size" format spec.
func (f formatChoice) Spec() string {
	return f.Style + "," + f.Size
}

// formatChoices builds the selectable combinations from the registries.
func formatChoices() []formatChoice {
	var choices []formatChoice
	for _, sizeName := range sizes.Names() {
		prof, err := sizes.Lookup(sizeName)
		if err != nil {
			continue
		}
		for _, styleName := range styles.Names() {
			s, err := styles.Lookup(styleName)
			if err != nil {
				continue
			}
			cfg, err := s.Config(prof)
			if err != nil {
				continue
			}
			choices = append(choices, formatChoice{
				Style: styleName,
				Size:  sizeName,
				Font:  cfg.FontSize,
				Title: cfg.TitleSize,
				Line:  cfg.LineWidth,
			})
		}
	}
	return choices
}

// formatPickerModel is the bubbletea model for interactive format selection.
type formatPickerModel struct {
	Choices []formatChoice
	Cursor  int
	Choice  string // selected "style,size", empty if aborted
}

func newFormatPickerModel(choices []formatChoice) formatPickerModel {
	return formatPickerModel{Choices: choices}
}

func (m formatPickerModel) Init() tea.Cmd {
	return nil
}

func (m formatPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Choices)-1 {
				m.Cursor++
			}
		case "enter":
			m.Choice = m.Choices[m.Cursor].Spec()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m formatPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Format"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, choice := range m.Choices {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			choice.Style,
			choice.Size,
			fmt.Sprintf("%g pt", choice.Font),
			fmt.Sprintf("%g pt", choice.Title),
			fmt.Sprintf("%g pt", choice.Line),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Style", "Size", "Font", "Title", "Line").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if row == m.Cursor {
				return StyleTitle
			}
			return StyleValue
		})

	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}

// pickFormat runs the interactive format picker and returns the chosen
// "style,size" spec, or an empty string if the user aborted.
func pickFormat() (string, error) {
	choices := formatChoices()
	if len(choices) == 0 {
		return "", errors.New(errors.ErrCodeInternal, "no style/size combinations registered")
	}

	final, err := tea.NewProgram(newFormatPickerModel(choices)).Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "format picker")
	}

	m, ok := final.(formatPickerModel)
	if !ok {
		return "", errors.New(errors.ErrCodeInternal, "unexpected picker model %T", final)
	}
	return m.Choice, nil
}
