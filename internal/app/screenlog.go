package app

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	screenLogLines = 1000
	tabWidth       = 4
)

// screenLog is an io.Writer that shows the most recent lines written to it
// on a tcell screen, newest at the bottom.
type screenLog struct {
	mu     sync.Mutex
	screen tcell.Screen
	title  string
	lines  []string
	style  tcell.Style
}

func newScreenLog(screen tcell.Screen, title string) *screenLog {
	return &screenLog{
		screen: screen,
		title:  title,
		style:  tcell.StyleDefault,
	}
}

// Write appends p, split on newlines, and redraws.
func (l *screenLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	text := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(text, "\n") {
		l.lines = append(l.lines, strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth)))
	}
	if over := len(l.lines) - screenLogLines; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}

	l.draw()
	return len(p), nil
}

// Redraw repaints the screen, for example after a resize.
func (l *screenLog) Redraw() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draw()
}

func (l *screenLog) draw() {
	width, height := l.screen.Size()
	l.screen.Clear()
	if height == 0 {
		return
	}

	drawText(l.screen, 0, 0, width, l.title, l.style.Reverse(true))

	rows := height - 1
	start := 0
	if len(l.lines) > rows {
		start = len(l.lines) - rows
	}
	for i, line := range l.lines[start:] {
		drawText(l.screen, 0, i+1, width, line, l.style)
	}
	l.screen.Show()
}

// drawText writes s at row y, clipped to width columns, honoring wide runes.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
}
