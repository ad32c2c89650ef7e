//go:build hppdebug

package logging

// DebugEnabled reports whether the Dout helpers are compiled in.
const DebugEnabled = true
