package logging

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/laas/hpp-util/indent"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// Maximum number of slice or array elements rendered
const maxDumpElements = 10

// Dump writes the contents of v to the channel as one multi-line message,
// one field, element or map entry per line, nested values indented.
// For structs, only exported fields are rendered.
func (c *Channel) Dump(v any) error {
	return c.Write(Caller(1), DumpString(v))
}

// DumpString renders v the way Dump writes it.
func DumpString(v any) string {
	var buf bytes.Buffer
	w := indent.NewWriter(&buf)
	visited := make(map[uintptr]bool)
	dumpValue(w, v, "", visited, 0)
	return buf.String()
}

func dumpLine(w *indent.Writer, prefix string, format string, args ...any) {
	if prefix != "" {
		_ = w.Print(prefix, ": ")
	}
	_ = w.Print(fmt.Sprintf(format, args...), indent.Endl)
}

// dumpValue is a recursive helper function for DumpString
func dumpValue(w *indent.Writer, v any, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		dumpLine(w, prefix, "<max depth reached>")
		return
	}

	if v == nil {
		dumpLine(w, prefix, "<nil>")
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers. visited holds the pointers on the
	// current path only, so shared values are rendered each time they appear.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				dumpLine(w, prefix, "<nil>")
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				dumpLine(w, prefix, "<nil>")
				return
			}
			ptr := val.Pointer()
			if visited[ptr] {
				dumpLine(w, prefix, "<circular reference>")
				return
			}
			visited[ptr] = true
			defer delete(visited, ptr)
			val = val.Elem()
			continue
		default:
		}
		break
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		dumpLine(w, prefix, "%s {", typ.String())
		w.Inc()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)
			// Skip unexported fields
			if !fieldVal.CanInterface() {
				continue
			}
			dumpValue(w, fieldVal.Interface(), field.Name, visited, depth+1)
		}
		w.Dec()
		dumpLine(w, "", "}")

	case reflect.Map:
		dumpLine(w, prefix, "%s (len: %d) {", typ.String(), val.Len())
		w.Inc()
		iter := val.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("[%v]", iter.Key().Interface())
			dumpValue(w, iter.Value().Interface(), key, visited, depth+1)
		}
		w.Dec()
		dumpLine(w, "", "}")

	case reflect.Slice, reflect.Array:
		dumpLine(w, prefix, "%s (len: %d) {", typ.String(), val.Len())
		w.Inc()
		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			elem := val.Index(i)
			if elem.CanInterface() {
				dumpValue(w, elem.Interface(), fmt.Sprintf("[%d]", i), visited, depth+1)
			}
		}
		if val.Len() > maxDumpElements {
			dumpLine(w, "", "... (%d more elements)", val.Len()-maxDumpElements)
		}
		w.Dec()
		dumpLine(w, "", "}")

	default:
		if val.IsValid() && val.CanInterface() {
			dumpLine(w, prefix, "%v", val.Interface())
		} else {
			dumpLine(w, prefix, "%v", v)
		}
	}
}
