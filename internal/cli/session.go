package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/raphaelgruber/daytrip-go/internal/trip"
)

// Theme holds the color scheme for the interactive session.
type Theme struct {
	Title   lipgloss.Color
	Prompt  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Hint    lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Title:   lipgloss.Color("#5FAFD7"), // light blue
	Prompt:  lipgloss.Color("#FFFFFF"),
	Success: lipgloss.Color("#00D787"), // green
	Error:   lipgloss.Color("#FF005F"), // red
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) promptStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Prompt)
}

func (t Theme) successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// tripInput collects the answers from the question flow.
type tripInput struct {
	UserID        string
	City          string
	Date          string
	StartTime     string
	EndTime       string
	Interests     []string
	Budget        int
	StartLocation string
}

// question is one step of the sequential flow.
type question struct {
	prompt      string
	placeholder string
	defaultVal  string
	validate    func(string) error
	apply       func(*tripInput, string)
}

func sessionQuestions() []question {
	today := time.Now().Format("2006-01-02")

	return []question{
		{
			prompt:   "Please enter your User ID to proceed.",
			validate: required("user ID"),
			apply:    func(in *tripInput, v string) { in.UserID = v },
		},
		{
			prompt:   "Which city do you want to visit?",
			validate: required("city"),
			apply:    func(in *tripInput, v string) { in.City = v },
		},
		{
			prompt:      "What day are you planning for?",
			placeholder: today,
			defaultVal:  today,
			validate:    validDate,
			apply:       func(in *tripInput, v string) { in.Date = v },
		},
		{
			prompt:      "What time do you want to start your day?",
			placeholder: "09:00 AM",
			defaultVal:  "09:00 AM",
			validate:    validClock,
			apply:       func(in *tripInput, v string) { in.StartTime = v },
		},
		{
			prompt:      "What time do you want to end your day?",
			placeholder: "07:00 PM",
			defaultVal:  "07:00 PM",
			validate:    validClock,
			apply:       func(in *tripInput, v string) { in.EndTime = v },
		},
		{
			prompt:      "What are your interests? (comma separated)",
			placeholder: "Historical Sites, Beaches, Shopping, Food Experiences, Nature, Art Galleries",
			apply:       func(in *tripInput, v string) { in.Interests = splitInterests(v) },
		},
		{
			prompt:      "What's your budget for the day (in Euros)?",
			placeholder: "100",
			defaultVal:  "100",
			validate:    validBudget,
			apply: func(in *tripInput, v string) {
				in.Budget, _ = strconv.Atoi(v)
			},
		},
		{
			prompt:   "Where would you like to start your day? (e.g., hotel name)",
			validate: required("starting location"),
			apply:    func(in *tripInput, v string) { in.StartLocation = v },
		},
	}
}

func required(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validDate(v string) error {
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return fmt.Errorf("enter a date as YYYY-MM-DD")
	}
	return nil
}

func validClock(v string) error {
	if _, err := trip.ParseClock(v); err != nil {
		return fmt.Errorf("enter a time like 09:00 AM")
	}
	return nil
}

func validBudget(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative whole number")
	}
	return nil
}

// splitInterests turns a comma-separated answer into trimmed, non-empty labels.
func splitInterests(v string) []string {
	var interests []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			interests = append(interests, part)
		}
	}
	return interests
}

// sessionModel is the bubbletea model for the question flow.
type sessionModel struct {
	questions []question
	index     int
	input     textinput.Model
	answers   tripInput
	errMsg    string
	theme     Theme
	done      bool
	aborted   bool
}

func newSessionModel() sessionModel {
	questions := sessionQuestions()

	ti := textinput.New()
	ti.Placeholder = questions[0].placeholder
	ti.Focus()

	return sessionModel{
		questions: questions,
		input:     ti,
		theme:     defaultTheme,
	}
}

// Init returns the initial command.
func (m sessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns the updated model.
func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			q := m.questions[m.index]
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				value = q.defaultVal
			}

			if q.validate != nil {
				if err := q.validate(value); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}

			q.apply(&m.answers, value)
			m.errMsg = ""
			m.index++

			if m.index >= len(m.questions) {
				m.done = true
				return m, tea.Quit
			}

			m.input.SetValue("")
			m.input.Placeholder = m.questions[m.index].placeholder
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the current question.
func (m sessionModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

func (m sessionModel) renderContent() string {
	if m.done || m.aborted {
		return ""
	}

	title := m.theme.titleStyle().Render("Welcome to One-Day Trip Planner!")
	prompt := m.theme.promptStyle().Render(m.questions[m.index].prompt)
	progress := m.theme.hintStyle().Render(fmt.Sprintf("(%d/%d)", m.index+1, len(m.questions)))

	out := fmt.Sprintf("%s\n\n%s %s\n%s\n", title, prompt, progress, m.input.View())
	if m.errMsg != "" {
		out += m.theme.errorStyle().Render(m.errMsg) + "\n"
	}
	out += m.theme.hintStyle().Render("Press Enter to continue, Esc to quit")
	return out
}

// runSession drives the question flow and returns the collected answers.
func runSession() (tripInput, error) {
	p := tea.NewProgram(newSessionModel())
	final, err := p.Run()
	if err != nil {
		return tripInput{}, fmt.Errorf("interactive session: %w", err)
	}

	m, ok := final.(sessionModel)
	if !ok || !m.done {
		return tripInput{}, fmt.Errorf("session cancelled")
	}
	return m.answers, nil
}
