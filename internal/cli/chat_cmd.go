package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/saintgo7/web-abada-pamout/internal/assist"
	"github.com/saintgo7/web-abada-pamout/internal/cli/formatter"
	"github.com/saintgo7/web-abada-pamout/internal/genai"
	"github.com/saintgo7/web-abada-pamout/internal/i18n"
)

func newChatCmd(app *App) *cobra.Command {
	var tool string

	cmd := &cobra.Command{
		Use:   "chat [PROMPT]",
		Short: "Talk to the PamOut assistant",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Chat == nil {
				fmt.Println(i18n.T(app.Lang, "chat.keyMissing"))
				return nil
			}

			if len(args) > 0 {
				prompt := strings.Join(args, " ")
				return runChatOnce(app, prompt, tool)
			}

			if !IsInteractive() {
				return fmt.Errorf("no prompt given and stdin is not a terminal")
			}

			model := newChatModel(app, tool)
			_, err := tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "", "Tool persona (writer|analyst|coder)")

	return cmd
}

func runChatOnce(app *App, prompt, tool string) error {
	stop := formatter.StartSpinner(i18n.T(app.Lang, "chat.thinking"))
	reply, err := app.Chat.Send(context.Background(), assist.ChatRequest{
		Prompt: prompt,
		Lang:   string(app.Lang),
		Tool:   tool,
	})
	stop()
	if err != nil {
		return chatErr(app, err)
	}

	fmt.Println(reply.Text)
	return nil
}

func chatErr(app *App, err error) error {
	switch {
	case errors.Is(err, genai.ErrMissingAPIKey):
		fmt.Println(i18n.T(app.Lang, "chat.keyMissing"))
		return nil
	case errors.Is(err, genai.ErrInvalidAPIKey):
		fmt.Println(i18n.T(app.Lang, "chat.keyError"))
		return nil
	}
	return err
}

// ── interactive chat ─────────────────────────────────────────────────────────

type chatReplyMsg struct {
	text string
	err  error
}

// chatModel is the interactive multi-turn chat loop. Each prompt is
// sent as an independent request; the assistant keeps no server-side
// conversation state.
type chatModel struct {
	app     *App
	tool    string
	input   textinput.Model
	lines   []string
	waiting bool
}

func newChatModel(app *App, tool string) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 2000

	return &chatModel{
		app:   app,
		tool:  tool,
		input: ti,
		lines: []string{formatter.Dim("PamOut assistant. Esc to quit.")},
	}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			prompt := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if prompt == "" {
				return m, nil
			}
			if prompt == "/quit" || prompt == "/exit" {
				return m, tea.Quit
			}
			m.lines = append(m.lines, formatter.Dim("You: ")+prompt)
			m.waiting = true
			return m, m.send(prompt)
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case chatReplyMsg:
		m.waiting = false
		if msg.err != nil {
			m.lines = append(m.lines, formatter.StyleRed.Render(msg.err.Error()))
		} else {
			m.lines = append(m.lines, msg.text)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) send(prompt string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.app.Chat.Send(context.Background(), assist.ChatRequest{
			Prompt: prompt,
			Lang:   string(m.app.Lang),
			Tool:   m.tool,
		})
		if err != nil {
			switch {
			case errors.Is(err, genai.ErrMissingAPIKey):
				return chatReplyMsg{text: i18n.T(m.app.Lang, "chat.keyMissing")}
			case errors.Is(err, genai.ErrInvalidAPIKey):
				return chatReplyMsg{text: i18n.T(m.app.Lang, "chat.keyError")}
			}
			return chatReplyMsg{err: err}
		}
		return chatReplyMsg{text: reply.Text}
	}
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(formatter.Dim(i18n.T(m.app.Lang, "chat.thinking")))
		b.WriteString("\n")
	}

	prompt := formatter.StylePurple.Render("pamout") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}
