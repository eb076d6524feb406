package core

import (
	"fmt"
	"io"
	"runtime/debug"
)

// CrashReporter restores the terminal and prints a panic with its stack
// Restore is injected so this package stays independent of the terminal backend
type CrashReporter struct {
	Restore func()
	Out     io.Writer
}

// Report writes the panic value and stack trace after restoring the terminal
// Uses \r\n so output stays aligned if the terminal is still in raw mode
func (c CrashReporter) Report(r any) {
	if c.Restore != nil {
		c.Restore()
	}
	fmt.Fprintf(c.Out, "\r\n\x1b[31mFLANKER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(c.Out, "Stack Trace:\r\n%s\r\n", debug.Stack())
}
