// Package instance defines those parts of the emulation that might change
// from instance to instance of the console being emulated, without being
// the console itself. This lets more than one CPU/WideNES pair run in the
// same process (e.g. in tests, or a future multi-ROM comparison tool)
// without sharing global state.
package instance

import "github.com/tilebound/nescore/internal/random"

// Label indicates the context an instance is running in.
type Label string

// Recognised instance labels.
const (
	Main  Label = ""
	Test  Label = "test"
	Batch Label = "batch"
)

// Instance bundles the per-run state that the cpu package reads but does
// not itself own.
type Instance struct {
	Label  Label
	Random *random.Random
}

// New creates an Instance. label and rnd may be the zero value / nil; every
// consumer of an *Instance must tolerate a nil *Instance entirely, since
// package-level tests frequently construct a CPU without one.
func New(label Label, rnd *random.Random) *Instance {
	return &Instance{Label: label, Random: rnd}
}
