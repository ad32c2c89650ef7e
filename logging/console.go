package logging

import (
	"io"
	"os"
	"sync"

	"github.com/laas/hpp-util/indent"
)

// ConsoleOutput writes messages to the console (standard error).
type ConsoleOutput struct {
	mu sync.Mutex
	w  *indent.Writer
}

// NewConsoleOutput returns a console output writing to w, or to os.Stderr
// when w is nil.
func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	if w == nil {
		w = os.Stderr
	}
	return &ConsoleOutput{w: indent.NewWriter(w)}
}

// Write implements Output.
func (c *ConsoleOutput) Write(ch *Channel, loc Location, message string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return writeMessage(c.w, ch, loc, message)
}

// Close implements Output. The console is never closed.
func (c *ConsoleOutput) Close() error {
	return nil
}
