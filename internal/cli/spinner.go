package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner redraws a single status line with the elapsed time until stopped
// or until its context ends. It only draws on a terminal.
type spinner struct {
	w      io.Writer
	label  string
	ctx    context.Context
	draw   bool
	quit   chan struct{}
	exited chan struct{}
	stop   sync.Once
	width  int
}

func newSpinner(ctx context.Context, w io.Writer, label string) *spinner {
	return &spinner{
		w:      w,
		label:  label,
		ctx:    ctx,
		draw:   isTerminal(w),
		quit:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start launches the redraw loop.
func (s *spinner) Start() {
	if !s.draw {
		close(s.exited)
		return
	}
	go s.loop(time.Now())
}

func (s *spinner) loop(start time.Time) {
	defer close(s.exited)
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	for n := 0; ; n++ {
		select {
		case <-s.quit:
			return
		case <-s.ctx.Done():
			return
		case <-tick.C:
		}
		line := fmt.Sprintf("%s %s %s",
			styleIconSpinner.Render(spinnerFrames[n%len(spinnerFrames)]),
			StyleDim.Render(s.label),
			StyleDim.Render(time.Since(start).Truncate(100*time.Millisecond).String()))
		if len(line) > s.width {
			s.width = len(line)
		}
		fmt.Fprint(s.w, "\r"+line)
	}
}

// Stop ends the loop and erases the status line. Extra calls do nothing.
func (s *spinner) Stop() {
	s.stop.Do(func() {
		close(s.quit)
		<-s.exited
		if s.width > 0 {
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		}
	})
}
