// Package logging provides the debugging channels shared by the hpp packages.
//
// Messages are written to a Channel, a named category, which fans them out
// to the Outputs that subscribed to it. Every output renders one line per
// message:
//
//	<LABEL>:<file>:<line>: <message>
//
// Continuation lines of a multi-line message are indented one level deeper.
//
// Key features
//   - Console output on standard error
//   - Journal outputs: one rotating file per process, named
//     <prefix>/hpp/<stem>.<pid>.log, which also records "entering <ctx>" and
//     "exiting <ctx>" markers whenever the calling function changes
//   - A Service owning the default outputs and channels, explicitly
//     initialized and closed
//   - Dout helpers compiled in only with the hppdebug build tag
//
// Default channels
//
//	ERROR, WARNING, NOTICE -> journal, console
//	INFO                   -> journal
//	BENCHMARK              -> benchmark journal
//
// Typical usage
//
//	svc, err := logging.NewService(logging.DefaultConfig())
//	if err != nil { panic(err) }
//	defer svc.Close()
//
//	svc.Warningf("collision checking took %v", d)
//	svc.Dout(svc.Info, "configuration: %v", q)
//
// The logging prefix is $HPP_LOGGINGDIR when set, otherwise
// DefaultLoggingDir followed by the package name.
package logging
