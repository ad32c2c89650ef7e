// Package indent keeps per-stream indentation state.
//
// A Writer wraps an io.Writer and prefixes every non-empty line with the
// current indentation. Manipulators change the level while printing:
//
//	w := indent.NewWriter(os.Stderr)
//	_ = w.Print("header: ", indent.Inc, "line 1\nline 2\n", indent.Dec)
package indent

import (
	"bytes"
	"fmt"
	"io"
)

// Width is the number of spaces per indentation level.
const Width = 2

var spaces = bytes.Repeat([]byte{' '}, 64)

// Writer tracks the indentation level of one output stream.
// It is not safe for concurrent use; callers serialize access.
type Writer struct {
	w           io.Writer
	level       int
	atLineStart bool
}

// NewWriter returns a Writer at level zero positioned at the start of a line.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, atLineStart: true}
}

// Level returns the current indentation level.
func (w *Writer) Level() int {
	return w.level
}

// Inc increments the indentation.
func (w *Writer) Inc() *Writer {
	w.level++
	return w
}

// Dec decrements the indentation, stopping at zero.
func (w *Writer) Dec() *Writer {
	if w.level > 0 {
		w.level--
	}
	return w
}

// Reset sets the indentation back to zero.
func (w *Writer) Reset() *Writer {
	w.level = 0
	return w
}

// SetLevel sets the indentation level; negative values are treated as zero.
func (w *Writer) SetLevel(level int) *Writer {
	w.level = max(level, 0)
	return w
}

// AtLineStart reports whether the next byte written starts a new line.
func (w *Writer) AtLineStart() bool {
	return w.atLineStart
}

// Terminate ends a partially written line. The Writer is left at the start
// of a line even when the end of line cannot be written.
func (w *Writer) Terminate() error {
	if w.atLineStart {
		return nil
	}
	w.atLineStart = true
	_, err := w.w.Write([]byte{'\n'})
	return err
}

// Endl prints an end of line; the next line starts at the current indentation.
func (w *Writer) Endl() error {
	_, err := w.Write([]byte{'\n'})
	return err
}

// IncEndl increments the indentation, then prints an end of line.
func (w *Writer) IncEndl() error {
	return w.Inc().Endl()
}

// DecEndl decrements the indentation, then prints an end of line.
func (w *Writer) DecEndl() error {
	return w.Dec().Endl()
}

// Write implements io.Writer. The returned count covers p only, not the
// inserted indentation.
func (w *Writer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		if w.atLineStart {
			if p[0] != '\n' {
				if err := w.writeIndent(); err != nil {
					return written, err
				}
			}
			w.atLineStart = false
		}

		chunk := p
		endsLine := false
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			chunk = p[:i+1]
			endsLine = true
		}
		n, err := w.w.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		w.atLineStart = endsLine
		p = p[len(chunk):]
	}
	return written, nil
}

// WriteString is a convenience wrapper around Write.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (w *Writer) writeIndent() error {
	n := w.level * Width
	for n > 0 {
		chunk := n
		if chunk > len(spaces) {
			chunk = len(spaces)
		}
		if _, err := w.w.Write(spaces[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// Manipulator changes the state of a Writer in the middle of a Print call.
type Manipulator func(w *Writer) error

var (
	// Inc increments the indentation.
	Inc Manipulator = func(w *Writer) error { w.Inc(); return nil }
	// Dec decrements the indentation.
	Dec Manipulator = func(w *Writer) error { w.Dec(); return nil }
	// Reset resets the indentation.
	Reset Manipulator = func(w *Writer) error { w.Reset(); return nil }
	// Endl prints an end of line at the current indentation.
	Endl Manipulator = (*Writer).Endl
	// IncEndl increments the indentation and prints an end of line.
	IncEndl Manipulator = (*Writer).IncEndl
	// DecEndl decrements the indentation and prints an end of line.
	DecEndl Manipulator = (*Writer).DecEndl
)

// Print writes each argument in order. Manipulators are applied, strings and
// byte slices are written as is, anything else is formatted with fmt.
func (w *Writer) Print(args ...any) error {
	for _, a := range args {
		var err error
		switch v := a.(type) {
		case Manipulator:
			err = v(w)
		case string:
			_, err = w.WriteString(v)
		case []byte:
			_, err = w.Write(v)
		default:
			_, err = fmt.Fprint(w, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
