package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:5000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepEnteringFirstName step = iota
	stepEnteringLastName
	stepEnteringEmail
	stepEnteringPassword
	stepSubmitting
	stepComplete
)

type model struct {
	step      step
	serverURL string

	firstName string
	lastName  string
	email     string
	password  string
	input     string

	err     error
	message string
}

type registerResultMsg struct {
	err error
}

type registerRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

func initialModel(serverURL string) model {
	return model{
		step:      stepEnteringFirstName,
		serverURL: serverURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.advance()

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil

		case tea.KeySpace:
			if m.step <= stepEnteringPassword {
				m.input += " "
			}
			return m, nil

		case tea.KeyRunes:
			if m.step <= stepEnteringPassword {
				m.input += string(msg.Runes)
			}
			return m, nil
		}

	case registerResultMsg:
		m.step = stepComplete
		m.err = msg.err
		if msg.err == nil {
			m.message = fmt.Sprintf("Account created for %s. You can now use Basic Auth with %s.", m.firstName, m.email)
		}
		return m, nil
	}

	return m, nil
}

func (m model) advance() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input)
	m.input = ""

	switch m.step {
	case stepEnteringFirstName:
		if value == "" {
			return m, nil
		}
		m.firstName = value
		m.step = stepEnteringLastName

	case stepEnteringLastName:
		if value == "" {
			return m, nil
		}
		m.lastName = value
		m.step = stepEnteringEmail

	case stepEnteringEmail:
		if value == "" {
			return m, nil
		}
		m.email = value
		m.step = stepEnteringPassword

	case stepEnteringPassword:
		if len(value) < 6 || len(value) > 18 {
			return m, nil
		}
		m.password = value
		m.step = stepSubmitting
		return m, registerUser(m.serverURL, registerRequest{
			FirstName:    m.firstName,
			LastName:     m.lastName,
			EmailAddress: m.email,
			Password:     m.password,
		})

	case stepComplete:
		return m, tea.Quit
	}

	return m, nil
}

func registerUser(serverURL string, req registerRequest) tea.Cmd {
	return func() tea.Msg {
		body, err := json.Marshal(req)
		if err != nil {
			return registerResultMsg{err: err}
		}

		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Post(serverURL+"/api/v1/users", "application/json", bytes.NewReader(body))
		if err != nil {
			return registerResultMsg{err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			return registerResultMsg{}
		}

		payload, _ := io.ReadAll(resp.Body)
		return registerResultMsg{err: fmt.Errorf("server responded %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))}
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Course Catalog Setup"))
	b.WriteString("\n")

	switch m.step {
	case stepEnteringFirstName:
		b.WriteString(promptStyle.Render("First name: "))
		b.WriteString(inputStyle.Render(m.input))

	case stepEnteringLastName:
		b.WriteString(promptStyle.Render("Last name: "))
		b.WriteString(inputStyle.Render(m.input))

	case stepEnteringEmail:
		b.WriteString(promptStyle.Render("Email address: "))
		b.WriteString(inputStyle.Render(m.input))

	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password (6-18 characters): "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.input))))

	case stepSubmitting:
		b.WriteString("Creating account on " + m.serverURL + "...")

	case stepComplete:
		if m.err != nil {
			b.WriteString(errorStyle.Render("Registration failed: " + m.err.Error()))
		} else {
			b.WriteString(successStyle.Render(m.message))
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Press enter to exit."))
	}

	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("esc to quit"))
	b.WriteString("\n")
	return b.String()
}

func main() {
	serverURL := defaultServerURL
	if len(os.Args) > 1 {
		serverURL = strings.TrimRight(os.Args[1], "/")
	}

	p := tea.NewProgram(initialModel(serverURL))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
