package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxLogEntries = 200

type logEntry struct {
	text    string
	reorder bool
	move    bool
}

// eventLog keeps the most recent drag events for the side pane.
// Consecutive moves collapse into one line.
type eventLog struct {
	entries []logEntry
}

func (l *eventLog) add(text string) {
	l.push(logEntry{text: text})
}

func (l *eventLog) addMove(text string) {
	if n := len(l.entries); n > 0 && l.entries[n-1].move {
		l.entries[n-1].text = text
		return
	}
	l.push(logEntry{text: text, move: true})
}

func (l *eventLog) addReorder(text string) {
	l.push(logEntry{text: text, reorder: true})
}

func (l *eventLog) push(e logEntry) {
	l.entries = append(l.entries, e)
	if over := len(l.entries) - maxLogEntries; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
}

func (l *eventLog) lines() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.text
	}
	return out
}

// view renders the newest entries that fit into height rows.
func (l *eventLog) view(width, height int) string {
	header := paneHeader.Width(width).Render("Events")
	rows := max(height-lipgloss.Height(header), 0)

	entries := l.entries
	if len(entries) > rows {
		entries = entries[len(entries)-rows:]
	}
	out := make([]string, 0, len(entries)+1)
	out = append(out, header)
	for _, e := range entries {
		style := logLineStyle
		if e.reorder {
			style = logReorderStyle
		}
		out = append(out, style.MaxWidth(width).Render(e.text))
	}
	return strings.Join(out, "\n")
}
