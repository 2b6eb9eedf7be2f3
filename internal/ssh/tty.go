// Package ssh adapts a gliderlabs SSH session into a terminal tcell can
// drive, so every connected client gets a private game on its own screen.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty over an SSH session channel. Reads come from
// the client's keyboard, writes go to its terminal, and window-change
// requests feed tcell's resize handling.
type Tty struct {
	session gossh.Session
	resizes <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	onSize func()
}

// NewTty wraps an SSH session as a tcell Tty. pty carries the initial
// window size; resizes delivers subsequent window-change requests.
func NewTty(session gossh.Session, pty gossh.Pty, resizes <-chan gossh.Window) *Tty {
	return &Tty{
		session: session,
		resizes: resizes,
		window:  pty.Window,
	}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH session channel.
func (t *Tty) Close() error { return t.session.Close() }

// Start, Stop, and Drain are no-ops. The SSH channel is already open and
// flushes writes immediately; its lifetime belongs to the server handler.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the client terminal's current dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers tcell's resize callback and starts draining the
// window-change channel for the lifetime of the session.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()
	go t.watchResizes()
}

func (t *Tty) watchResizes() {
	for win := range t.resizes {
		t.mu.Lock()
		t.window = win
		cb := t.onSize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
