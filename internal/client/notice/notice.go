// Package notice carries short user-facing messages (toasts, in a browser)
// from services to whatever surface displays them.
package notice

import (
	"fmt"
	"io"
	"sync"
)

type Variant int

const (
	Default Variant = iota
	// Destructive marks a notice for a failed or blocked operation.
	Destructive
)

type Notice struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier displays notices. Implementations must be safe for concurrent
// use; async persistence reports through the same notifier as the REPL.
type Notifier interface {
	Notify(n Notice)
}

// WriterNotifier prints notices as single lines to w.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (p *WriterNotifier) Notify(n Notice) {
	p.mu.Lock()
	defer p.mu.Unlock()

	mark := "*"
	if n.Variant == Destructive {
		mark = "!"
	}
	if n.Description == "" {
		fmt.Fprintf(p.w, "[%s] %s\n", mark, n.Title)
		return
	}
	fmt.Fprintf(p.w, "[%s] %s: %s\n", mark, n.Title, n.Description)
}

// Recorder keeps every notice in memory. It is used by tests and by callers
// that want to inspect what would have been shown.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of what was recorded so far.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}
