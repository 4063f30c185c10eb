package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/avelinek/dayflow/internal/cli/formatter"
	"github.com/avelinek/dayflow/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// reviewKeys binds the suggestion-review actions.
type reviewKeys struct {
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Reject key.Binding
	Quit   key.Binding
}

func newReviewKeys() reviewKeys {
	return reviewKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Accept: key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("enter/a", "accept")),
		Reject: key.NewBinding(key.WithKeys("r", "x"), key.WithHelp("r/x", "reject")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// reviewModel walks the ranked suggestion list, accepting or rejecting
// entries through the gateway.
type reviewModel struct {
	app         *App
	suggestions []domain.Suggestion
	cursor      int
	keys        reviewKeys
	status      string
}

func newReviewModel(app *App) *reviewModel {
	return &reviewModel{
		app:         app,
		suggestions: app.Gateway.PendingSuggestions(),
		keys:        newReviewKeys(),
	}
}

// runReviewTUI runs the interactive review loop over pending suggestions.
func runReviewTUI(app *App) error {
	_, err := tea.NewProgram(newReviewModel(app)).Run()
	return err
}

func (m *reviewModel) Init() tea.Cmd { return nil }

func (m *reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Accept):
		if s := m.current(); s != nil {
			if _, err := m.app.Gateway.AcceptSuggestion(s.ID, time.Now()); err != nil {
				m.status = err.Error()
			} else {
				m.status = "accepted " + s.Title
				m.reload()
			}
		}

	case key.Matches(keyMsg, m.keys.Reject):
		if s := m.current(); s != nil {
			if err := m.app.Gateway.RejectSuggestion(s.ID, nil, time.Now()); err != nil {
				m.status = err.Error()
			} else {
				m.status = "rejected " + s.Title
				m.reload()
			}
		}
	}

	if len(m.suggestions) == 0 {
		return m, tea.Quit
	}
	return m, nil
}

func (m *reviewModel) current() *domain.Suggestion {
	if m.cursor < 0 || m.cursor >= len(m.suggestions) {
		return nil
	}
	return &m.suggestions[m.cursor]
}

func (m *reviewModel) reload() {
	m.suggestions = m.app.Gateway.PendingSuggestions()
	if m.cursor >= len(m.suggestions) {
		m.cursor = len(m.suggestions) - 1
	}
}

func (m *reviewModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Review suggestions") + "\n")

	if len(m.suggestions) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing left to review.") + "\n")
		return b.String()
	}

	for i, s := range m.suggestions {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			cursor,
			formatter.Bold(s.Title),
			formatter.StyleGreen.Render(formatter.Minutes(s.Duration)),
			formatter.Dim(fmt.Sprintf("%.2f pts", s.Weight)),
		))
		if i == m.cursor && s.Reason != "" {
			b.WriteString("    " + formatter.Dim(s.Reason) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n  " + formatter.Dim(m.status) + "\n")
	}
	b.WriteString("\n  " + formatter.Dim("enter/a accept · r/x reject · q quit") + "\n")
	return b.String()
}
