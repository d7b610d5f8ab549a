package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/clktmr/gba/drivers/gbplayer"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Emulate the accessory and show the link in a terminal UI",
	Long: `Emulate the Game Boy Player on the bridge and show the link state, the
current rumble command and a log of changes. Press 'q' to quit.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

type logEntry struct {
	timestamp time.Time
	message   string
	isError   bool
}

// TUI model
type model struct {
	connInfo      string
	status        status
	since         time.Time // of the current rumble command
	log           []logEntry
	maxLogEntries int
	err           error
	width         int
	height        int
	quitting      bool
}

// Messages
type statusMsg status
type linkErrMsg struct{ err error }
type tickMsg time.Time

func initialModel(connInfo string) model {
	return model{
		connInfo:      connInfo,
		status:        status{rumble: gbplayer.Stop},
		since:         time.Now(),
		maxLogEntries: 100,
		width:         80,
		height:        24,
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) addLogEntry(message string, isError bool) {
	m.log = append(m.log, logEntry{time.Now(), message, isError})
	if len(m.log) > m.maxLogEntries {
		m.log = m.log[len(m.log)-m.maxLogEntries:]
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tickCmd()

	case statusMsg:
		s := status(msg)
		switch {
		case s.synced && !m.status.synced:
			m.addLogEntry("Synchronized", false)
		case !s.synced && m.status.synced:
			m.addLogEntry("Lost synchronization", true)
		}
		if s.rumble != m.status.rumble {
			m.since = time.Now()
			if s.synced {
				m.addLogEntry(fmt.Sprintf("Rumble %v", s.rumble), false)
			}
		}
		m.status = s

	case linkErrMsg:
		m.err = msg.err
		m.addLogEntry(msg.err.Error(), true)
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("GBPLINK - GAME BOY PLAYER"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Press 'q' to quit", m.connInfo)))
	s.WriteString("\n\n")

	if m.status.synced {
		s.WriteString(valueStyle.Render("✓ Synchronized"))
	} else {
		s.WriteString(warningStyle.Render("⏳ Waiting for console..."))
	}
	s.WriteString("\n\n")

	rumble := valueStyle.Render(m.status.rumble.String())
	if m.status.rumble == gbplayer.Start {
		rumble = errorStyle.Render("▮▮▮ " + m.status.rumble.String())
	}
	var box strings.Builder
	fmt.Fprintf(&box, "%s %s   %s %s\n",
		labelStyle.Render("Rumble:"), rumble,
		labelStyle.Render("For:"), valueStyle.Render(time.Since(m.since).Truncate(time.Second).String()))
	fmt.Fprintf(&box, "%s %s",
		labelStyle.Render("Restarts:"), valueStyle.Render(fmt.Sprintf("%d", m.status.restarts)))
	s.WriteString(boxStyle.Render(box.String()))
	s.WriteString("\n\n")

	// as many log entries as fit below the header
	n := max(m.height-12, 1)
	entries := m.log[max(len(m.log)-n, 0):]
	for _, e := range entries {
		line := fmt.Sprintf("[%s] %s", e.timestamp.Format("15:04:05.000"), e.message)
		if e.isError {
			line = errorStyle.Render(line)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	if m.err != nil {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render("Link stopped: " + m.err.Error()))
		s.WriteString("\n")
	}

	return s.String()
}

func runMonitor(cmd *cobra.Command, args []string) error {
	bridge, info, err := OpenBridge()
	if err != nil {
		return err
	}
	defer bridge.Close()

	var buzzer *Buzzer
	if sound {
		buzzer, err = NewBuzzer()
		if err != nil {
			return err
		}
		defer buzzer.Close()
	}

	p := tea.NewProgram(initialModel(info), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		err := play(ctx, bridge, interval, func(s status) {
			if buzzer != nil {
				buzzer.Set(s.rumble == gbplayer.Start)
			}
			p.Send(statusMsg(s))
		})
		if err != nil {
			p.Send(linkErrMsg{err})
		}
	}()

	_, err = p.Run()
	return err
}
