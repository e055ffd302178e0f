// Package render draws driver frames as ASCII text.
package render

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/katalvlaran/gridpath/internal/driver"
)

// ASCII writes a stats header and the grid glyphs for every n-th frame and
// for the frame that finishes the search.
type ASCII struct {
	mu    sync.Mutex
	w     io.Writer
	every uint64
	err   error
}

// NewASCII returns a renderer writing to w. every < 1 renders only the
// final frame.
func NewASCII(w io.Writer, every int) *ASCII {
	r := &ASCII{w: w}
	if every > 0 {
		r.every = uint64(every)
	}
	return r
}

// Sink is the driver.Sink for r.
func (r *ASCII) Sink(f driver.Frame) {
	if !f.State.Done() && (r.every == 0 || f.Tick%r.every != 0) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return
	}
	r.err = Frame(r.w, f)
}

// Err returns the first write error, after which r stops writing.
func (r *ASCII) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Frame writes one frame: "tick N  state  TPS n" then the grid rows.
func Frame(w io.Writer, f driver.Frame) error {
	_, err := fmt.Fprintf(w, "tick %d  %s  TPS %d\n%s\n\n", f.Tick, f.State, int64(math.Round(f.TPS)), f.Grid)
	return err
}
