package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/identicon/pkg/identicon"
)

// newPreviewCmd creates the preview command, an interactive terminal
// rendering of the identicon grid that re-derives as the input is edited.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [input]",
		Short: "Preview an identicon in the terminal",
		Long: `Preview renders the 5x5 identicon grid as colored blocks in the
terminal. Typing edits the input and the preview updates live.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			model := newPreviewModel(input)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}

// =============================================================================
// PreviewModel - Interactive identicon preview
// =============================================================================

// PreviewModel is the bubbletea model for the live identicon preview.
type PreviewModel struct {
	Input string
	Image identicon.Image
	Err   error
}

// newPreviewModel creates a preview model with the identicon already derived.
func newPreviewModel(input string) PreviewModel {
	m := PreviewModel{Input: input}
	m.derive()
	return m
}

func (m *PreviewModel) derive() {
	m.Image, m.Err = identicon.Derive(m.Input)
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "backspace":
			if len(m.Input) > 0 {
				_, size := utf8.DecodeLastRuneInString(m.Input)
				m.Input = m.Input[:len(m.Input)-size]
				m.derive()
			}
		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				m.Input += string(msg.Runes)
				m.derive()
			}
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Identicon Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("type to edit  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  input: %s▌\n", m.Input))

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render("  " + m.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	hex := fmt.Sprintf("#%02x%02x%02x", m.Image.Color.R, m.Image.Color.G, m.Image.Color.B)
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))

	// Index the surviving cells so blank cells render as background.
	filled := make(map[int]bool, len(m.Image.PixelMap))
	for _, c := range m.Image.Grid {
		filled[c.Index] = true
	}

	b.WriteString(fmt.Sprintf("  color: %s\n\n", colorSwatch(m.Image.Color.R, m.Image.Color.G, m.Image.Color.B)))

	for row := 0; row < identicon.GridSize; row++ {
		b.WriteString("  ")
		for col := 0; col < identicon.GridSize; col++ {
			if filled[row*identicon.GridSize+col] {
				b.WriteString(fill.Render("██"))
			} else {
				b.WriteString(StyleDim.Render("··"))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d of %d squares filled",
		len(m.Image.PixelMap), identicon.GridSize*identicon.GridSize)))
	b.WriteString("\n")

	return b.String()
}
