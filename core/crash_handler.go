package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores the terminal; tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

// Escape sequences used when no terminal is registered
const (
	csiCursorShow    = "\x1b[?25h"
	csiAltScreenExit = "\x1b[?1049l"
	csiSGR0          = "\x1b[0m"
)

var (
	crashMu       sync.Mutex
	crashTerminal Finisher

	// Swapped in tests
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// RegisterTerminal sets the terminal restored on crash; nil clears it
func RegisterTerminal(f Finisher) {
	crashMu.Lock()
	crashTerminal = f
	crashMu.Unlock()
}

// EmergencyReset writes the minimal sequences to leave the alternate screen with a visible cursor
func EmergencyReset(w io.Writer) {
	io.WriteString(w, csiCursorShow+csiAltScreenExit+csiSGR0)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	if term != nil {
		term.Fini()
	} else {
		EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Recover is deferred at the top of main and of every goroutine touching the terminal
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}
