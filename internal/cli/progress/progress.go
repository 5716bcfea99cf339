package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Status represents the state of a step
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusWarning
	StatusFailed
)

// Step is a single unit of work shown by the tracker
type Step struct {
	Name     string
	Detail   string // shown dimmed after the name, e.g. a pid or log path
	Status   Status
	Duration time.Duration
	Err      error
}

// Tracker renders a fixed list of sequential steps. On a terminal the running
// step gets an in-place spinner line; otherwise every transition is printed
// as a timestamped line so logs stay readable.
type Tracker struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	out         io.Writer
	steps       []Step
	current     int
	startTime   time.Time
	interactive bool
	useColor    bool
	caps        terminalCapabilities
	stopChan    chan struct{}
	stopOnce    sync.Once
	frame       int
}

var spinnerFrames = []string{"|", "/", "-", "\\"}

// NewTracker creates a tracker writing to stdout.
func NewTracker(names ...string) *Tracker {
	_, noColor := os.LookupEnv("NO_COLOR")
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	caps := detectCapabilities(os.Stdout)
	return newTracker(os.Stdout, interactive, !noColor && interactive && caps.supportsANSI, caps, names...)
}

// NewPlainTracker creates a tracker that prints one uncoloured line per
// transition to out.
func NewPlainTracker(out io.Writer, names ...string) *Tracker {
	return newTracker(out, false, false, terminalCapabilities{terminalWidth: 80}, names...)
}

func newTracker(out io.Writer, interactive, useColor bool, caps terminalCapabilities, names ...string) *Tracker {
	steps := make([]Step, len(names))
	for i, name := range names {
		steps[i] = Step{Name: name}
	}
	return &Tracker{
		out:         out,
		steps:       steps,
		current:     -1,
		interactive: interactive,
		useColor:    useColor,
		caps:        caps,
		stopChan:    make(chan struct{}),
	}
}

// Start begins the spinner animation when attached to a terminal
func (t *Tracker) Start() {
	if t.interactive {
		t.wg.Add(1)
		go t.animate()
	}
}

// Begin marks step index as running
func (t *Tracker) Begin(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = index
	t.steps[index].Status = StatusRunning
	t.startTime = time.Now()

	if !t.interactive {
		fmt.Fprintf(t.out, "[%s] %s %s...\n", time.Now().Format("15:04:05"), t.counter(index), t.steps[index].Name)
	}
}

// Complete marks step index as succeeded, or failed when err is non-nil
func (t *Tracker) Complete(index int, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailed
	}
	t.finish(index, status, "", err)
}

// CompleteWithDetail marks step index as succeeded and records detail
func (t *Tracker) CompleteWithDetail(index int, detail string) {
	t.finish(index, StatusSuccess, detail, nil)
}

// Warn marks step index as finished with a problem that did not stop the run
func (t *Tracker) Warn(index int, err error) {
	t.finish(index, StatusWarning, "", err)
}

func (t *Tracker) finish(index int, status Status, detail string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	step := &t.steps[index]
	step.Status = status
	step.Err = err
	if detail != "" {
		step.Detail = detail
	}
	if !t.startTime.IsZero() {
		step.Duration = time.Since(t.startTime)
	}
	if t.current == index {
		t.current = -1
	}

	if t.interactive {
		fmt.Fprint(t.out, clearLine(t.caps))
	}
	fmt.Fprintln(t.out, t.completedLine(index))
}

// Stop ends the spinner and clears its line
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	t.wg.Wait()

	if t.interactive {
		t.mu.Lock()
		fmt.Fprint(t.out, clearLine(t.caps))
		t.mu.Unlock()
	}
}

// Steps returns a copy of the tracked steps
func (t *Tracker) Steps() []Step {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Step(nil), t.steps...)
}

// Summary returns a one-line tally of finished steps
func (t *Tracker) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total time.Duration
	counts := map[Status]int{}
	for _, step := range t.steps {
		total += step.Duration
		counts[step.Status]++
	}

	var parts []string
	if n := counts[StatusSuccess]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d succeeded", n))
	}
	if n := counts[StatusWarning]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d with warnings", n))
	}
	if n := counts[StatusFailed]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing done")
	}
	return fmt.Sprintf("%s in %s", strings.Join(parts, ", "), FormatDuration(total))
}

func (t *Tracker) animate() {
	defer t.wg.Done()
	ticker := time.NewTicker(150 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.current >= 0 {
				t.frame++
				fmt.Fprint(t.out, clearLine(t.caps)+truncateToWidth(t.runningLine(), t.caps.terminalWidth))
			}
			t.mu.Unlock()
		}
	}
}

func (t *Tracker) runningLine() string {
	step := t.steps[t.current]
	spinner := spinnerFrames[t.frame%len(spinnerFrames)]
	elapsed := FormatDuration(time.Since(t.startTime))
	if t.useColor {
		return fmt.Sprintf("  \033[1m%s %s  %s\033[0m  \033[2m%s\033[0m", spinner, t.counter(t.current), step.Name, elapsed)
	}
	return fmt.Sprintf("  %s %s  %s  %s", spinner, t.counter(t.current), step.Name, elapsed)
}

func (t *Tracker) completedLine(index int) string {
	step := t.steps[index]

	var sym, color, suffix string
	switch step.Status {
	case StatusSuccess:
		sym, color = "+", "\033[32m"
	case StatusWarning:
		sym, color = "!", "\033[33m"
		suffix = "WARNING"
	default:
		sym, color = "x", "\033[31m"
		suffix = "FAILED"
	}
	if step.Err != nil {
		suffix = strings.TrimSpace(suffix + ": " + step.Err.Error())
	}

	name := step.Name
	if step.Detail != "" {
		name = fmt.Sprintf("%s (%s)", name, step.Detail)
	}
	timing := fmt.Sprintf("(%s)", FormatDuration(step.Duration))
	counter := t.counter(index)

	if t.useColor {
		sym = color + sym + "\033[0m"
		counter = "\033[2m" + counter + "\033[0m"
		timing = "\033[2m" + timing + "\033[0m"
		if suffix != "" {
			suffix = color + suffix + "\033[0m"
		}
	}

	line := fmt.Sprintf("  %s %s  %s  %s", sym, counter, name, timing)
	if suffix != "" {
		line += "  " + suffix
	}
	return line
}

func (t *Tracker) counter(index int) string {
	return fmt.Sprintf("[%d/%d]", index+1, len(t.steps))
}

// FormatDuration renders d at a precision suited to short desktop steps.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		d = d.Round(time.Second)
		return fmt.Sprintf("%dm %02ds", d/time.Minute, (d%time.Minute)/time.Second)
	}
}
