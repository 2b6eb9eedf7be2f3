// emoji-chase-server starts an SSH server that gives every connecting
// client its own private game. Build:
//
//	go build -o emoji-chase-server ./cmd/server
//
// Usage:
//
//	./emoji-chase-server [--port 2222] [--key server_host_key] [--level 1]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"emoji-chase/internal/game"
	internalssh "emoji-chase/internal/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	level := flag.Int("level", 1, "Starting level for every session")
	flag.Parse()

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, *level)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — appropriate for a private home server.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("emoji-chase SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// allowedTerms whitelists the TERM values a client may set. Anything else
// falls back to xterm-256color rather than reaching os.Setenv.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"tmux":                  true,
	"tmux-256color":         true,
	"screen":                true,
	"screen-256color":       true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// sessionTerm extracts the client's TERM from the session environment.
func sessionTerm(s gossh.Session) string {
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			if term := env[5:]; allowedTerms[term] {
				return term
			}
		}
	}
	return "xterm-256color"
}

// termMu serializes os.Setenv("TERM") around screen creation. TERM is
// process-global while sessions are not.
var termMu sync.Mutex

// handleSession runs one client's game. It blocks for the duration of the
// connection so the SSH session stays open.
func handleSession(s gossh.Session, level int) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty reads it.
	tty := internalssh.NewTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", sessionTerm(s))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()
	screen.EnableMouse()

	if err := game.Run(screen, game.Config{Level: level}); err != nil {
		log.Printf("session %v: %v", s.RemoteAddr(), err)
	}
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "emoji-chase server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
