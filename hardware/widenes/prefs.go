package widenes

import "github.com/tilebound/nescore/prefs"

// Preferences holds the engine's user-facing runtime knobs.
type Preferences struct {
	// FirstSeen selects the tile sampling policy: true means a block that
	// has already been committed once (done) is never resampled; false
	// (the default, per §4.E.3 step 11) always resamples.
	FirstSeen *prefs.Bool
}

// NewPreferences returns Preferences set to their documented defaults.
func NewPreferences() *Preferences {
	return &Preferences{
		FirstSeen: prefs.NewBool(false),
	}
}
