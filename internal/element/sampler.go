package element

import (
	"time"

	"github.com/emberplay/emberplay/internal/domain"
)

// samplerLoop is the element's background worker. Each period it reads the
// playback position and, while the pipeline is playing, evaluates every
// text track against the interval since the previous sample. It runs for
// the lifetime of the element; Close stops it by closing e.stop, which the
// select observes without waiting out the remaining quantum.
func (e *MediaElement) samplerLoop() {
	defer close(e.done)

	ticker := time.NewTicker(e.sampleInterval)
	defer ticker.Stop()

	lastTime := e.CurrentTime()
	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
			now := e.CurrentTime()
			if e.PipelineState() == domain.PipelinePlaying {
				e.checkForCueChange(now, lastTime)
				lastTime = now
			}
		}
	}
}

// checkForCueChange evaluates every text track over (oldTime, newTime].
func (e *MediaElement) checkForCueChange(newTime, oldTime float64) {
	e.mu.Lock()
	tracks := make([]*TextTrack, len(e.tracks))
	copy(tracks, e.tracks)
	e.mu.Unlock()

	for _, track := range tracks {
		track.checkForCueChange(newTime, oldTime)
	}
}
