package logging

import (
	"strconv"
	"strings"

	"github.com/laas/hpp-util/indent"
)

// writePrefix renders "<LABEL>:<file>:<line>: ".
func writePrefix(w *indent.Writer, ch *Channel, loc Location) error {
	return w.Print(ch.Label(), ":", loc.File, ":", strconv.Itoa(loc.Line), ": ")
}

// writeMessage renders the prefix and the message body, indenting the
// continuation lines of the body one level deeper.
func writeMessage(w *indent.Writer, ch *Channel, loc Location, message string) (err error) {
	defer restore(w, w.Level(), &err)
	if err := writePrefix(w, ch, loc); err != nil {
		return err
	}
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	return w.Print(indent.Inc, message, indent.Dec)
}

// writeMarker renders a context switch line such as "entering foo".
func writeMarker(w *indent.Writer, ch *Channel, loc Location, verb, context string) (err error) {
	defer restore(w, w.Level(), &err)
	if err := writePrefix(w, ch, loc); err != nil {
		return err
	}
	return w.Print(verb, " ", context, indent.Endl)
}

// restore puts w back at level after a write. A failed write may leave a
// line half written; it is terminated so the next message starts cleanly.
func restore(w *indent.Writer, level int, err *error) {
	w.SetLevel(level)
	if *err != nil {
		_ = w.Terminate()
	}
}
