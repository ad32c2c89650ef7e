package logging

import (
	stderrs "errors"
	"fmt"
)

// Channel receives debugging information and forwards it to its
// subscribers. The label and the subscriber list are fixed at construction.
type Channel struct {
	label   string
	outputs []Output
}

// NewChannel returns a channel forwarding to outputs. Nil outputs are kept
// but skipped when writing.
func NewChannel(label string, outputs ...Output) *Channel {
	subscribers := make([]Output, len(outputs))
	copy(subscribers, outputs)
	return &Channel{label: label, outputs: subscribers}
}

// Label returns the channel's label.
func (c *Channel) Label() string {
	if c == nil {
		return emptyString
	}
	return c.label
}

// Outputs returns a copy of the subscriber list.
func (c *Channel) Outputs() []Output {
	if c == nil {
		return nil
	}
	res := make([]Output, len(c.outputs))
	copy(res, c.outputs)
	return res
}

// Write forwards message to every subscribed output. All outputs are
// written even if some fail; the failures are joined.
func (c *Channel) Write(loc Location, message string) error {
	if c == nil {
		return nil
	}
	var errs []error
	for _, o := range c.outputs {
		if o == nil {
			continue
		}
		if err := o.Write(c, loc, message); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrs.Join(errs...)
}

// Printf formats a message and writes it from the caller's location.
func (c *Channel) Printf(format string, args ...any) error {
	return c.Write(Caller(1), fmt.Sprintf(format, args...))
}

// Print writes the operands formatted as by fmt.Sprint from the caller's
// location.
func (c *Channel) Print(args ...any) error {
	return c.Write(Caller(1), fmt.Sprint(args...))
}
