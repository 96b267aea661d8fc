package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a progress indicator on stderr while a render runs.
// It stops on Stop or when its context is cancelled, whichever comes first.
type spinner struct {
	message  string
	out      io.Writer
	ctx      context.Context
	stop     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
}

func newSpinnerWithContext(ctx context.Context, message string) *spinner {
	return &spinner{
		message:  message,
		out:      os.Stderr,
		ctx:      ctx,
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start launches the animation goroutine.
func (s *spinner) Start() {
	go s.run()
}

func (s *spinner) run() {
	defer close(s.finished)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			s.erase()
			return
		case <-s.stop:
			return
		case <-ticker.C:
			glyph := styleIconSpinner.Render(spinnerFrames[frame%len(spinnerFrames)])
			fmt.Fprintf(s.out, "\r%s %s", glyph, StyleDim.Render(s.message))
		}
	}
}

// Stop halts the animation and clears the spinner line. Safe to call more
// than once.
func (s *spinner) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.finished
	s.erase()
}

// StopWithSuccess stops the spinner and prints a success line in its place.
func (s *spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line in its place.
func (s *spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's context ended before Stop.
func (s *spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

func (s *spinner) erase() {
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
