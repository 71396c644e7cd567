// Package tui holds the interactive terminal UI for browsing mapped
// branches.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ptt.dev/ptt/internal/engine"
)

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

var defaultBrowseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "show commits"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("q/esc", "quit"),
	),
}

type browseStyles struct {
	title    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	branch   lipgloss.Style
	dim      lipgloss.Style
}

func newBrowseStyles() browseStyles {
	return browseStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		branch:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// browseModel is the bubbletea model for browsing mapped branches
type browseModel struct {
	branches []*engine.MappedBranch
	shortID  func(string) string
	cursor   int
	expanded map[int]bool
	styles   browseStyles
	keys     browseKeyMap
	help     help.Model
}

// newBrowseModel creates a new browse TUI model
func newBrowseModel(branches []*engine.MappedBranch, shortID func(string) string) browseModel {
	return browseModel{
		branches: branches,
		shortID:  shortID,
		expanded: make(map[int]bool),
		styles:   newBrowseStyles(),
		keys:     defaultBrowseKeys,
		help:     help.New(),
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.branches)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			m.expanded[m.cursor] = !m.expanded[m.cursor]
		}
	}

	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Mapped Branches"))
	b.WriteString("\n")

	for i, branch := range m.branches {
		cursor := "  "
		style := m.styles.branch
		if i == m.cursor {
			cursor = m.styles.cursor.Render("▸ ")
			style = m.styles.selected
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor,
			style.Render(branch.Name),
			m.styles.dim.Render(m.shortID(branch.Head.Hash))))

		if m.expanded[i] {
			for _, commit := range branch.Commits {
				b.WriteString(fmt.Sprintf("    %s %s\n",
					m.styles.dim.Render(m.shortID(commit.Hash)),
					commit.Subject()))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// RunBrowseTUI runs the branch browser until the user quits.
func RunBrowseTUI(branches []*engine.MappedBranch, shortID func(string) string) error {
	if len(branches) == 0 {
		return fmt.Errorf("no mapped branches to browse")
	}

	m := newBrowseModel(branches, shortID)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))

	_, err := p.Run()
	return err
}
