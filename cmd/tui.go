package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/suderio/eskalero/internal/command"
	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/parser"
	"github.com/suderio/eskalero/internal/score"
	"github.com/suderio/eskalero/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	sheetBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))
)

const welcome = "Welcome to Eskalero!\nType 'help' for commands, 'exit' to quit."

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type tableModel struct {
	app         *session.Session
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions list.Model
	history     []string
	historyIdx  int
	logContent  string
	width       int
	height      int
	showList    bool
}

func newTableModel(app *session.Session, seated []engine.Event) tableModel {
	ti := textinput.New()
	ti.Placeholder = "Enter command (e.g., combo row: P main: A pair: K)..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	content := welcome
	for _, evt := range seated {
		content += "\n" + evt.Message()
	}
	vp := viewport.New(0, 0)
	vp.SetContent(content)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 50, 7)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false)
	sugList.SetShowHelp(false)

	return tableModel{
		app:         app,
		textInput:   ti,
		viewport:    vp,
		suggestions: sugList,
		history:     []string{},
		historyIdx:  -1,
		logContent:  content,
	}
}

func (m *tableModel) Init() tea.Cmd {
	return textinput.Blink
}

// argumentChoices maps a clause keyword to the values it accepts.
func (m *tableModel) argumentChoices(clause string) []string {
	switch clause {
	case "by":
		var names []string
		for _, p := range m.app.Game().Players() {
			if strings.ContainsAny(p.Name, " \t") {
				names = append(names, fmt.Sprintf("%q", p.Name))
			} else {
				names = append(names, p.Name)
			}
		}
		return names
	case "row":
		rows := make([]string, len(score.Categories))
		for i, c := range score.Categories {
			rows[i] = string(c)
		}
		return rows
	case "main", "pair":
		faces := make([]string, len(score.AllFaces))
		for i, f := range score.AllFaces {
			faces[i] = f.Label()
		}
		return faces
	case "mode":
		return []string{string(engine.Classic), string(engine.Triple)}
	case "col":
		var cols []string
		for c := 1; c <= m.app.Game().Mode().Columns(); c++ {
			cols = append(cols, fmt.Sprint(c))
		}
		return cols
	}
	return nil
}

// suggestionsFor completes the command keyword, or the value of the clause
// being typed ("by: ", "row: ", ...).
func (m *tableModel) suggestionsFor(val string) []string {
	if val == "" {
		return nil
	}

	var out []string
	if !strings.Contains(val, " ") {
		for _, k := range append(append([]string{}, parser.Keywords...), "exit", "quit") {
			if strings.HasPrefix(k, strings.ToLower(val)) && len(val) < len(k) {
				out = append(out, k+" ")
			}
		}
		return out
	}

	idx := strings.LastIndex(val, ": ")
	if idx < 0 {
		return nil
	}
	head := val[:idx]
	prefix := val[idx+2:]
	if strings.Contains(prefix, " ") {
		return nil
	}
	clause := strings.ToLower(head[strings.LastIndex(head, " ")+1:])
	base := val[:len(val)-len(prefix)]
	for _, choice := range m.argumentChoices(clause) {
		if strings.HasPrefix(strings.ToLower(choice), strings.ToLower(prefix)) && len(prefix) < len(choice) {
			out = append(out, base+choice+" ")
		}
	}
	return out
}

func (m *tableModel) updateSuggestions() {
	var items []list.Item
	for _, s := range m.suggestionsFor(m.textInput.Value()) {
		items = append(items, suggestion(s))
	}

	m.suggestions.SetItems(items)
	m.showList = len(items) > 0
	if m.showList {
		h := len(items)
		if h > 10 {
			h = 10
		}
		if h < 4 {
			h = 4
		}
		m.suggestions.SetHeight(h)
		m.suggestions.ResetSelected()
	}
}

func (m *tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
				m.updateSuggestions()
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.updateSuggestions()
			}

		case tea.KeyTab:
			if m.showList {
				if i, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(i))
					m.textInput.SetCursor(len(string(i)))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val == "exit" || val == "quit" {
				return m, tea.Quit
			}

			if val != "" {
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")
				m.updateSuggestions()

				m.logContent += fmt.Sprintf("\n\n> %s\n", val)
				events, err := m.app.Execute(val)
				if err != nil {
					m.logContent += fmt.Sprintf("Error: %v", err)
				}
				for _, evt := range events {
					if evt.Type() == engine.EventNotice && (evt.Message() == "" || strings.HasPrefix(strings.ToLower(val), "sheet")) {
						// the sheet is always on screen
						continue
					}
					m.logContent += evt.Message() + "\n"
				}

				m.viewport.SetContent(m.logContent)
				m.viewport.GotoBottom()
			}
		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	sheetH := lipgloss.Height(m.renderSheet())
	listAreaHeight := 0
	if m.showList {
		listAreaHeight = m.suggestions.Height() + 2
	}
	infoH := lipgloss.Height(infoStyle.Render("Dummy"))

	overhead := titleH + sheetH + 1 + listAreaHeight + infoH + 6
	m.viewport.Height = m.height - overhead
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

func (m *tableModel) renderSheet() string {
	game := m.app.Game()
	if game.Phase() == engine.NotStarted {
		return sheetBoxStyle.Width(m.width - 4).Render("No game in progress.\nstart with: <name> and: <name> [mode: classic|triple]")
	}

	status := ""
	if game.IsComplete() {
		w, _ := game.Winner()
		status = turnStyle.Render(fmt.Sprintf("%s wins with %d points!", w.Name, w.Total))
	} else {
		id := game.CurrentPlayerID()
		for _, p := range game.Players() {
			if p.ID == id {
				status = turnStyle.Render(fmt.Sprintf("%s's turn", p.Name))
			}
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, command.FormatSheet(game.Snapshot()), status)
	return sheetBoxStyle.Width(m.width - 4).Render(body)
}

func (m *tableModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf(" Eskalero | %s ", m.app.Game().Mode()))
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	inputArea := m.textInput.View()
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", inputArea, autocompleteStyle.Render(m.suggestions.View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.renderSheet(),
		logBox,
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)
}

// RunTUI runs the full-screen table until the user quits.
func RunTUI(app *session.Session, seated []engine.Event) error {
	m := newTableModel(app, seated)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
