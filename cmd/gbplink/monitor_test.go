package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clktmr/gba/drivers/gbplayer"
)

func update(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestModel(t *testing.T) {
	tests := map[string]struct {
		msgs []tea.Msg
		log  []string
		view []string
	}{
		"waiting": {
			msgs: nil,
			view: []string{"Waiting for console", "Stop"},
		},
		"synced": {
			msgs: []tea.Msg{statusMsg{synced: true, rumble: gbplayer.Stop}},
			log:  []string{"Synchronized"},
			view: []string{"Synchronized", "Restarts: 0"},
		},
		"rumble": {
			msgs: []tea.Msg{
				statusMsg{synced: true, rumble: gbplayer.Stop},
				statusMsg{synced: true, rumble: gbplayer.Start},
			},
			log:  []string{"Synchronized", "Rumble Start"},
			view: []string{"Start"},
		},
		"lost": {
			msgs: []tea.Msg{
				statusMsg{synced: true, rumble: gbplayer.Start},
				statusMsg{synced: false, rumble: gbplayer.Stop, restarts: 1},
			},
			log:  []string{"Synchronized", "Rumble Start", "Lost synchronization"},
			view: []string{"Waiting for console", "Restarts: 1"},
		},
		"error": {
			msgs: []tea.Msg{linkErrMsg{errors.New("cable unplugged")}},
			log:  []string{"cable unplugged"},
			view: []string{"Link stopped: cable unplugged"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := update(initialModel("Serial: test"), tc.msgs...)

			var log []string
			for _, e := range m.log {
				log = append(log, e.message)
			}
			if strings.Join(log, "\n") != strings.Join(tc.log, "\n") {
				t.Errorf("log %q, want %q", log, tc.log)
			}

			view := m.View()
			for _, s := range append(tc.view, "Serial: test") {
				if !strings.Contains(view, s) {
					t.Errorf("view doesn't contain %q:\n%s", s, view)
				}
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m := initialModel("")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(model).quitting || cmd == nil {
		t.Error("q doesn't quit")
	}
}

func TestModelLogLimit(t *testing.T) {
	m := initialModel("")
	for i := range 150 {
		m = update(m, linkErrMsg{errors.New(strings.Repeat("x", i))})
	}
	if len(m.log) != m.maxLogEntries {
		t.Errorf("%d log entries", len(m.log))
	}
}
