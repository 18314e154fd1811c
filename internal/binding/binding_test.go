package binding

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/emberplay/emberplay/internal/domain"
	"github.com/emberplay/emberplay/internal/element"
)

type nullSink struct{}

func (nullSink) Post(domain.Event) {}

type nullResolver struct {
	types map[string]bool
}

func (nullResolver) Resolve(string) (domain.PipelineController, error) {
	return nil, domain.ErrSourceNotFound
}

func (r nullResolver) IsTypeSupported(mimeType string) bool {
	return r.types[mimeType]
}

func newAdapter(t *testing.T) *Adapter {
	t.Helper()
	el := element.New(
		zap.NewNop(),
		nullResolver{types: map[string]bool{"video/mp4": true}},
		nullSink{},
		element.Options{SampleInterval: time.Hour},
	)
	t.Cleanup(func() { _ = el.Close() })
	return New(zap.NewNop(), el)
}

func TestPropertyRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"autoplay", true},
		{"loop", true},
		{"muted", true},
		{"volume", 0.5},
		{"currentTime", 0.0}, // detached: setter is a no-op, getter returns 0
		{"playbackRate", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAdapter(t)

			if err := a.Set(tt.name, tt.value); err != nil {
				t.Fatalf("Set(%s) failed: %v", tt.name, err)
			}
			got, err := a.Get(tt.name)
			if err != nil {
				t.Fatalf("Get(%s) failed: %v", tt.name, err)
			}
			if got != tt.value {
				t.Errorf("Get(%s) = %v, want %v", tt.name, got, tt.value)
			}
		})
	}
}

func TestReadOnlyProperties(t *testing.T) {
	a := newAdapter(t)

	for _, name := range []string{"duration", "readyState", "paused", "seeking", "ended", "error", "currentSrc"} {
		if _, err := a.Get(name); err != nil {
			t.Errorf("Get(%s) failed: %v", name, err)
		}
		if err := a.Set(name, 1.0); !errors.Is(err, ErrReadOnly) {
			t.Errorf("Set(%s) error = %v, want ErrReadOnly", name, err)
		}
	}
}

func TestUnknownNames(t *testing.T) {
	a := newAdapter(t)

	if _, err := a.Get("crossOrigin"); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("Get error = %v, want ErrUnknownProperty", err)
	}
	if err := a.Set("crossOrigin", "anonymous"); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("Set error = %v, want ErrUnknownProperty", err)
	}
	if _, err := a.Call("fastSeek", 1.0); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("Call error = %v, want ErrUnknownMethod", err)
	}
}

func TestBadArguments(t *testing.T) {
	a := newAdapter(t)

	tests := []struct {
		name string
		run  func() error
	}{
		{"bool property with string", func() error { return a.Set("muted", "yes") }},
		{"number property with bool", func() error { return a.Set("volume", true) }},
		{"src with number", func() error { return a.Set("src", 42) }},
		{"canPlayType without args", func() error { _, err := a.Call("canPlayType"); return err }},
		{"canPlayType with number", func() error { _, err := a.Call("canPlayType", 7); return err }},
		{"addTextTrack without args", func() error { _, err := a.Call("addTextTrack"); return err }},
		{"addTextTrack with bad label", func() error { _, err := a.Call("addTextTrack", "subtitles", 1); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, ErrBadArgument) {
				t.Errorf("error = %v, want ErrBadArgument", err)
			}
		})
	}
}

func TestMethodCalls(t *testing.T) {
	a := newAdapter(t)

	for _, name := range []string{"load", "play", "pause"} {
		if _, err := a.Call(name); err != nil {
			t.Errorf("Call(%s) failed: %v", name, err)
		}
	}

	result, err := a.Call("canPlayType", "video/mp4")
	if err != nil {
		t.Fatalf("canPlayType failed: %v", err)
	}
	if result != "maybe" {
		t.Errorf("canPlayType = %v, want maybe", result)
	}

	track, err := a.Call("addTextTrack", "subtitles", "English", "en")
	if err != nil {
		t.Fatalf("addTextTrack failed: %v", err)
	}
	if _, ok := track.(*element.TextTrack); !ok {
		t.Errorf("addTextTrack returned %T, want *element.TextTrack", track)
	}

	quality, err := a.Call("getVideoPlaybackQuality")
	if err != nil {
		t.Fatalf("getVideoPlaybackQuality failed: %v", err)
	}
	if quality != (domain.PlaybackQuality{}) {
		t.Errorf("quality = %+v, want zero value when detached", quality)
	}
}

func TestSetMediaKeysThroughAdapter(t *testing.T) {
	a := newAdapter(t)

	// Clearing keys while detached settles immediately.
	if _, err := a.Call("setMediaKeys", nil); err != nil {
		t.Fatalf("setMediaKeys(nil) failed: %v", err)
	}

	// Anything that is not a MediaKeys handle is rejected.
	if _, err := a.Call("setMediaKeys", "keys"); !errors.Is(err, ErrBadArgument) {
		t.Errorf("error = %v, want ErrBadArgument", err)
	}
}
