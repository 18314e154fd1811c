package element

import (
	"sync"
	"sync/atomic"

	"github.com/emberplay/emberplay/internal/domain"
)

// Cue is one timed-text payload. It is active while the playback position
// is inside [StartTime, EndTime).
type Cue struct {
	StartTime float64
	EndTime   float64
	Payload   string

	// active is atomic so hosts can read it without racing the sampler.
	active atomic.Bool
}

// Active reports whether the cue was active at the last sample.
func (c *Cue) Active() bool {
	return c.active.Load()
}

// TextTrack is an ordered set of cues belonging to a media element. Cue
// activation state is mutated only by the element's sampling worker; hosts
// add cues and read back activation state.
type TextTrack struct {
	Kind     domain.TextTrackKind
	Label    string
	Language string

	mu   sync.Mutex
	cues []*Cue

	// onCueChange is invoked after a sampling pass that activated or
	// deactivated at least one cue. Called without holding mu.
	onCueChange func()
}

func newTextTrack(kind domain.TextTrackKind, label, language string, onCueChange func()) *TextTrack {
	return &TextTrack{
		Kind:        kind,
		Label:       label,
		Language:    language,
		onCueChange: onCueChange,
	}
}

// AddCue appends a cue to the track.
func (t *TextTrack) AddCue(cue *Cue) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cues = append(t.cues, cue)
}

// RemoveCue removes the first cue equal to the given one, if present.
func (t *TextTrack) RemoveCue(cue *Cue) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, c := range t.cues {
		if c == cue {
			t.cues = append(t.cues[:i], t.cues[i+1:]...)
			return
		}
	}
}

// Cues returns the track's cues in insertion order.
func (t *TextTrack) Cues() []*Cue {
	t.mu.Lock()
	defer t.mu.Unlock()
	cues := make([]*Cue, len(t.cues))
	copy(cues, t.cues)
	return cues
}

// ActiveCues returns the cues active as of the last sample.
func (t *TextTrack) ActiveCues() []*Cue {
	t.mu.Lock()
	defer t.mu.Unlock()
	var active []*Cue
	for _, c := range t.cues {
		if c.active.Load() {
			active = append(active, c)
		}
	}
	return active
}

// checkForCueChange reconciles cue activation with the playback position
// moving from oldTime to newTime. Each cue toggles at most once per pass,
// and a pass that toggles anything surfaces exactly one track notification.
func (t *TextTrack) checkForCueChange(newTime, oldTime float64) {
	t.mu.Lock()
	changed := false
	for _, cue := range t.cues {
		shouldBeActive := cue.StartTime <= newTime && newTime < cue.EndTime
		if cue.active.Load() != shouldBeActive {
			cue.active.Store(shouldBeActive)
			changed = true
		}
	}
	notify := t.onCueChange
	t.mu.Unlock()

	if changed && notify != nil {
		notify()
	}
}
