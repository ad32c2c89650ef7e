package logging

import (
	"fmt"
	"io"
	"os"
)

// exit terminates the process. Replaced in tests.
var exit = os.Exit

// Debug runs f only when the package is built with the hppdebug tag. It is
// meant for checks and bookkeeping that exist only in debug builds.
func Debug(f func()) {
	if DebugEnabled {
		f()
	}
}

// Dout writes a formatted message to ch from the caller's location when the
// package is built with the hppdebug tag. Without it, Dout does nothing and
// its arguments are not formatted.
func (s *Service) Dout(ch *Channel, format string, args ...any) {
	if !DebugEnabled {
		return
	}
	s.emit(ch, Caller(1), fmt.Sprintf(format, args...))
}

// DoutFatal writes a formatted message and terminates the process with
// status 1. With the hppdebug tag the message goes to ch; otherwise it is
// printed on the console.
func (s *Service) DoutFatal(ch *Channel, format string, args ...any) {
	s.doutFatal(DebugEnabled, ch, Caller(1), fmt.Sprintf(format, args...))
}

func (s *Service) doutFatal(debug bool, ch *Channel, loc Location, message string) {
	if debug {
		s.emit(ch, loc, message)
	} else {
		_, _ = fmt.Fprintln(s.consoleWriter(), message)
	}
	if s != nil {
		_ = s.Close()
	}
	exit(1)
}

func (s *Service) consoleWriter() io.Writer {
	if s == nil || s.Config == nil {
		return os.Stderr
	}
	return s.Config.console()
}
