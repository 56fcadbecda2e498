package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"v8bitfield/internal/bitfield"
	"v8bitfield/internal/catalog"
	"v8bitfield/internal/v8bitfield/styles"
)

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [flags] [VALUE]",
		Short: "Interactively decode words",
		Long: `Open an interactive view that decodes the value as you type it. Tab switches
between layouts and ctrl+d toggles the layout description.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("layout")
			l, err := catalog.Lookup(version)
			if err != nil {
				return usageErrorf("%v", err)
			}

			m := newExploreModel(catalog.Layouts(), l.Version)
			if len(args) == 1 {
				m.input = args[0]
				m.updateContent()
			}

			program := tea.NewProgram(
				m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := program.Run(); err != nil {
				slog.Error("TUI run error", "error", err)
				return fmt.Errorf("TUI error: %v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringP("layout", "l", "", "Initial layout version (v0.10, v0.12; default v0.12)")
	return cmd
}

type exploreModel struct {
	viewport viewport.Model
	theme    styles.Theme
	layouts  []bitfield.Layout
	current  int
	input    string
	describe bool
	width    int
	height   int
}

func newExploreModel(layouts []bitfield.Layout, version string) *exploreModel {
	vp := viewport.New()
	vp.SetWidth(80)
	vp.SetHeight(22)

	m := &exploreModel{
		viewport: vp,
		theme:    styles.DefaultTheme(),
		layouts:  layouts,
		width:    80,
		height:   24,
	}
	for i, l := range layouts {
		if l.Version == version {
			m.current = i
		}
	}
	m.updateContent()
	return m
}

func (m *exploreModel) layout() bitfield.Layout {
	return m.layouts[m.current]
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(msg.Height - 2)
		return m, nil

	case tea.KeyMsg:
		quit, handled := m.handleKey(msg.String())
		if quit {
			return m, tea.Quit
		}
		if handled {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey applies one key press. Keys it does not handle scroll the
// viewport.
func (m *exploreModel) handleKey(key string) (quit, handled bool) {
	switch key {
	case "ctrl+c", "esc":
		return true, true
	case "tab":
		m.current = (m.current + 1) % len(m.layouts)
	case "shift+tab":
		m.current = (m.current + len(m.layouts) - 1) % len(m.layouts)
	case "ctrl+d":
		m.describe = !m.describe
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case "ctrl+u":
		m.input = ""
	default:
		if len(key) != 1 || !isValueChar(key[0]) {
			return false, false
		}
		m.input += key
	}
	m.updateContent()
	return false, true
}

func isValueChar(c byte) bool {
	return digitVal(c) < 16 || c == 'x' || c == 'X' || c == '+' || c == '-'
}

func (m *exploreModel) updateContent() {
	m.viewport.SetContent(m.content())
}

func (m *exploreModel) content() string {
	var b strings.Builder
	if m.describe {
		b.WriteString(m.theme.RenderDescription(m.layout()))
		b.WriteByte('\n')
	}

	if m.input == "" {
		b.WriteString(m.theme.Muted.Render("Type a value to decode it (0x prefix for hex, leading 0 for octal)."))
		return b.String()
	}

	value, err := ParseValue(m.input)
	if err != nil {
		b.WriteString(m.theme.Unknown.Render(fmt.Sprintf("non-numeric value: \"%s\"", m.input)))
		return b.String()
	}
	b.WriteString(m.theme.RenderDecode(bitfield.DecodeWord(m.layout(), value)))
	return b.String()
}

func (m *exploreModel) View() string {
	prompt := lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Render(fmt.Sprintf(" %s %s > ", m.layout().Name, m.layout().Version))

	menu := " Tab: layout • Ctrl+D: describe • Ctrl+U: clear • Esc: quit "
	menuStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1).
		Width(m.width)

	return prompt + m.input + "\n" + m.viewport.View() + "\n" + menuStyle.Render(menu)
}
