//go:build hppdebug || hppassert

package assertion

// Enabled reports whether contract checks are compiled in.
const Enabled = true
