package timer

import (
	"github.com/laas/hpp-util/logging"
)

// Benchmark times a named section of code and reports it on a channel,
// usually the logging service's Benchmark channel.
//
//	b, err := timer.StartBenchmark(svc.Benchmark, "collision")
//	...
//	err = b.Stop()
//	err = b.Display()
//
// Errors are those of the channel's outputs. Without the hppbenchmark build
// tag StartBenchmark returns nil and every method of a nil *Benchmark does
// nothing.
type Benchmark struct {
	id    string
	ch    *logging.Channel
	timer *Timer
}

// StartBenchmark writes "<id>: start" to ch and starts a timer. The
// Benchmark is returned even when the write fails.
func StartBenchmark(ch *logging.Channel, id string) (*Benchmark, error) {
	if !BenchmarkEnabled {
		return nil, nil
	}
	return startBenchmark(ch, id, logging.Caller(1))
}

func startBenchmark(ch *logging.Channel, id string, loc logging.Location) (*Benchmark, error) {
	err := ch.Write(loc, id+": start")
	return &Benchmark{id: id, ch: ch, timer: New(true)}, err
}

// Stop stops the timer and writes "<id>: stop".
func (b *Benchmark) Stop() error {
	if b == nil {
		return nil
	}
	b.timer.Stop()
	return b.ch.Write(logging.Caller(1), b.id+": stop")
}

// Display writes "<id>: <elapsed>".
func (b *Benchmark) Display() error {
	if b == nil {
		return nil
	}
	msg := b.id + ": "
	if d, err := b.timer.Duration(); err != nil {
		msg += err.Error()
	} else {
		msg += d.String()
	}
	return b.ch.Write(logging.Caller(1), msg)
}

// Timer returns the underlying timer, nil for a nil Benchmark.
func (b *Benchmark) Timer() *Timer {
	if b == nil {
		return nil
	}
	return b.timer
}
