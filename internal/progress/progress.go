// Package progress renders a completed-versus-total indicator for the read stage.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Reporter receives progress notifications. Implementations must be safe
// for concurrent Increment calls.
type Reporter interface {
	Start(total int)
	Increment()
	Finish()
}

const (
	defaultTerminalWidth = 80
	minimumBarWidth      = 10
	filledCell           = "█"
	emptyCell            = " "
	lineFormat           = "\r%s: %3d%%|%s| %d/%d [%s]"
)

// Discard ignores every notification.
var Discard Reporter = discardReporter{}

type discardReporter struct{}

func (discardReporter) Start(int)  {}
func (discardReporter) Increment() {}
func (discardReporter) Finish()    {}

// BarReporter draws a single-line bar, redrawn in place with carriage returns.
type BarReporter struct {
	mutex     sync.Mutex
	output    io.Writer
	label     string
	unit      string
	width     int
	total     int
	completed int
}

// NewBarReporter draws to output using a bar sized for width columns.
func NewBarReporter(output io.Writer, label string, unit string, width int) *BarReporter {
	if width <= 0 {
		width = defaultTerminalWidth
	}
	return &BarReporter{output: output, label: label, unit: unit, width: width}
}

// NewTerminalReporter returns a BarReporter when file is a terminal and
// Discard otherwise, so redirected output is not littered with redraws.
func NewTerminalReporter(file *os.File, label string, unit string) Reporter {
	if file == nil || !term.IsTerminal(int(file.Fd())) {
		return Discard
	}
	width, _, sizeErr := term.GetSize(int(file.Fd()))
	if sizeErr != nil {
		width = defaultTerminalWidth
	}
	return NewBarReporter(file, label, unit, width)
}

// Start resets the counters and draws the empty bar.
func (reporter *BarReporter) Start(total int) {
	reporter.mutex.Lock()
	defer reporter.mutex.Unlock()
	reporter.total = total
	reporter.completed = 0
	reporter.draw()
}

// Increment records one completed item.
func (reporter *BarReporter) Increment() {
	reporter.mutex.Lock()
	defer reporter.mutex.Unlock()
	if reporter.completed < reporter.total {
		reporter.completed++
	}
	reporter.draw()
}

// Finish terminates the bar line.
func (reporter *BarReporter) Finish() {
	reporter.mutex.Lock()
	defer reporter.mutex.Unlock()
	fmt.Fprintln(reporter.output)
}

func (reporter *BarReporter) draw() {
	percent := 100
	if reporter.total > 0 {
		percent = reporter.completed * 100 / reporter.total
	}
	counts := fmt.Sprintf("%d/%d", reporter.completed, reporter.total)
	barWidth := reporter.width - len(reporter.label) - len(counts) - len(reporter.unit) - 14
	if barWidth < minimumBarWidth {
		barWidth = minimumBarWidth
	}
	filled := barWidth * percent / 100
	bar := strings.Repeat(filledCell, filled) + strings.Repeat(emptyCell, barWidth-filled)
	fmt.Fprintf(reporter.output, lineFormat, reporter.label, percent, bar, reporter.completed, reporter.total, reporter.unit)
}
