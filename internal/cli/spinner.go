package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/matzehuels/gridwords/pkg/observability"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a status line while a solve runs. When it is installed as
// the solve hooks it also counts searched start cells, e.g.
// "⠹ Searching 4x4 grid... 9/16 cells".
type Spinner struct {
	observability.NoopSolveHooks

	message string
	w       io.Writer
	ctx     context.Context
	cancel  context.CancelFunc

	total atomic.Int64 // start cells of the running solve; 0 = unknown
	done  atomic.Int64 // start cells searched so far

	mu       sync.Mutex
	started  bool
	stopOnce sync.Once
	quit     chan struct{}
	stopped  chan struct{}
}

// newSpinner creates a spinner writing to stderr that stops when ctx is done.
func newSpinner(ctx context.Context, message string) *Spinner {
	return newSpinnerTo(ctx, os.Stderr, message)
}

func newSpinnerTo(ctx context.Context, w io.Writer, message string) *Spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		w:       w,
		ctx:     sctx,
		cancel:  cancel,
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// OnSolveStart resets the cell counter to the grid size.
func (s *Spinner) OnSolveStart(_ context.Context, cells, _ int) {
	s.done.Store(0)
	s.total.Store(int64(cells))
}

// OnSearchComplete counts one searched start cell.
func (s *Spinner) OnSearchComplete(context.Context, int, int, time.Duration, error) {
	s.done.Add(1)
}

// Line returns the text shown next to the animation frame.
func (s *Spinner) Line() string {
	total := s.total.Load()
	if total == 0 {
		return s.message
	}
	return fmt.Sprintf("%s %d/%d cells", s.message, min(s.done.Load(), total), total)
}

// Start begins the animation. It is a no-op on a started spinner.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.quit:
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				s.mu.Lock()
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.Line()))
				s.mu.Unlock()
			}
		}
	}()
}

// Stop ends the animation and clears the line. It may be called more than
// once and on a spinner that was never started.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		close(s.quit)
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.stopped
		}
		s.clearLine()
	})
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.Line())+4))
}

// Cancelled reports whether the spinner's context is done.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

// track installs s as the solve hooks until the returned func is called.
func (s *Spinner) track() (untrack func()) {
	observability.SetSolveHooks(s)
	return func() { observability.SetSolveHooks(observability.NoopSolveHooks{}) }
}
