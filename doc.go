// Package util is the root of hpp-util, the diagnostic utilities shared by
// the hpp packages. It records the compiled library version and checks it
// against the version a consumer was built for.
//
// The utilities themselves live in sub-packages:
//   - logging: debugging channels, console and journal outputs
//   - assertion: preconditions, postconditions and assertions
//   - exception: the error type carrying a source location
//   - timer: timers and benchmark reporting
//   - indent: per-stream indentation state
package util
