// Package progress reports how far a long running bucket operation has got.
// Operations take a Reporter so output can be sent to a terminal, a log or
// nowhere at all.
package progress

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	zlogger "github.com/gjutils/gjutil/logger"
)

// Progress is a snapshot of an operation. Total is zero when the number of
// items is not known up front, as with bucket listings.
type Progress struct {
	Done    int
	Total   int
	Percent int
	Elapsed time.Duration
}

func (p Progress) String() string {
	if p.Total == 0 {
		return fmt.Sprintf("%d objects listed in %.2f mins", p.Done, p.Elapsed.Minutes())
	}
	return fmt.Sprintf("Transfer is %d%% complete, running for %.2f mins", p.Percent, p.Elapsed.Minutes())
}

type Reporter interface {
	Report(p Progress)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(p Progress)

func (f ReporterFunc) Report(p Progress) { f(p) }

type discard struct{}

func (discard) Report(Progress) {}

// Discard drops every report.
var Discard Reporter = discard{}

// Step returns how many items make up roughly one percent of total. It is
// never below one.
func Step(total int) int {
	step := int(math.RoundToEven(float64(total) / 100))
	if step < 1 {
		return 1
	}
	return step
}

// Percent of total covered by done, 0 when total is unknown.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return done * 100 / total
}

// ConsoleReporter rewrites a single terminal line on every report and ends
// it once the operation is complete.
type ConsoleReporter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (c *ConsoleReporter) Report(p Progress) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.w, "\r\033[K%s", p)
	if p.Total > 0 && p.Done >= p.Total {
		fmt.Fprintln(c.w)
	}
}

// LogReporter writes each report to the application log.
type LogReporter struct{}

func (LogReporter) Report(p Progress) {
	zlogger.Logger.Info(p.String())
}

// Multi fans a report out to several reporters.
func Multi(reporters ...Reporter) Reporter {
	return ReporterFunc(func(p Progress) {
		for _, r := range reporters {
			r.Report(p)
		}
	})
}
