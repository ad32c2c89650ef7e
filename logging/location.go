package logging

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Location identifies where a message was emitted.
type Location struct {
	File string
	Line int
	// Context names the calling function. The journal uses it to mark
	// context switches.
	Context string
}

// Caller returns the location of the function skip frames above Caller's
// caller. Caller(0) is the location of the line calling Caller.
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???"}
	}
	loc := Location{File: filepath.Base(file), Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Context = shortFuncName(fn.Name())
	}
	return loc
}

// shortFuncName drops the import path: "github.com/a/b.(*T).M" -> "b.(*T).M".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}
