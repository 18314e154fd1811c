// Package binding exposes a media element's command surface as a fixed
// table of named properties and methods, so script-engine glue can drive
// playback with string-keyed get/set/call requests instead of compiled-in
// method calls. The adapter only translates; it holds no playback state.
package binding

import (
	"errors"
	"fmt"

	"github.com/emberplay/emberplay/internal/domain"
	"github.com/emberplay/emberplay/internal/element"
	"go.uber.org/zap"
)

var (
	// ErrUnknownProperty means no property is bound under the given name.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrUnknownMethod means no method is bound under the given name.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrReadOnly means the property has no setter.
	ErrReadOnly = errors.New("property is read-only")
	// ErrBadArgument means an argument had the wrong type or was missing.
	ErrBadArgument = errors.New("bad argument")
)

type property struct {
	get func() any
	set func(value any) error
}

type method func(args []any) (any, error)

// Adapter is the reflection surface over one media element. The name table
// is built once at construction.
type Adapter struct {
	logger     *zap.Logger
	el         *element.MediaElement
	properties map[string]property
	methods    map[string]method
}

// New builds the adapter's property and method tables for the element.
func New(logger *zap.Logger, el *element.MediaElement) *Adapter {
	a := &Adapter{logger: logger, el: el}

	a.properties = map[string]property{
		"autoplay": {
			get: func() any { return el.Autoplay() },
			set: func(v any) error { return setBool(v, el.SetAutoplay) },
		},
		"loop": {
			get: func() any { return el.Loop() },
			set: func(v any) error { return setBool(v, el.SetLoop) },
		},
		"muted": {
			get: func() any { return el.Muted() },
			set: func(v any) error { return setBool(v, el.SetMuted) },
		},
		"volume": {
			get: func() any { return el.Volume() },
			set: func(v any) error { return setFloat(v, el.SetVolume) },
		},
		"src": {
			get: func() any { return el.Source() },
			set: func(v any) error {
				s, ok := v.(string)
				if !ok {
					return fmt.Errorf("src expects a string: %w", ErrBadArgument)
				}
				return el.SetSource(s)
			},
		},
		"currentSrc": {get: func() any { return el.Source() }},
		"currentTime": {
			get: func() any { return el.CurrentTime() },
			set: func(v any) error { return setFloat(v, el.SetCurrentTime) },
		},
		"playbackRate": {
			get: func() any { return el.PlaybackRate() },
			set: func(v any) error { return setFloat(v, el.SetPlaybackRate) },
		},
		"duration":   {get: func() any { return el.Duration() }},
		"readyState": {get: func() any { return int(el.ReadyState()) }},
		"paused":     {get: func() any { return el.Paused() }},
		"seeking":    {get: func() any { return el.Seeking() }},
		"ended":      {get: func() any { return el.Ended() }},
		"buffered":   {get: func() any { return el.Buffered() }},
		"seekable":   {get: func() any { return el.Seekable() }},
		"error": {get: func() any {
			if err := el.Err(); err != nil {
				return err
			}
			return nil
		}},
	}

	a.methods = map[string]method{
		"load": func([]any) (any, error) {
			el.Load()
			return nil, nil
		},
		"play": func([]any) (any, error) {
			el.Play()
			return nil, nil
		},
		"pause": func([]any) (any, error) {
			el.Pause()
			return nil, nil
		},
		"canPlayType": func(args []any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("canPlayType expects one argument: %w", ErrBadArgument)
			}
			mime, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("canPlayType expects a string: %w", ErrBadArgument)
			}
			return string(el.CanPlay(mime)), nil
		},
		"addTextTrack": func(args []any) (any, error) {
			kind, label, language, err := textTrackArgs(args)
			if err != nil {
				return nil, err
			}
			return el.AddTextTrack(kind, label, language), nil
		},
		"setMediaKeys": func(args []any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("setMediaKeys expects one argument: %w", ErrBadArgument)
			}
			if args[0] == nil {
				return nil, el.SetMediaKeys(nil)
			}
			keys, ok := args[0].(domain.MediaKeys)
			if !ok {
				return nil, fmt.Errorf("setMediaKeys expects MediaKeys: %w", ErrBadArgument)
			}
			return nil, el.SetMediaKeys(keys)
		},
		"getVideoPlaybackQuality": func([]any) (any, error) {
			return el.PlaybackQuality(), nil
		},
	}

	return a
}

// Get reads a named property.
func (a *Adapter) Get(name string) (any, error) {
	prop, ok := a.properties[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownProperty)
	}
	return prop.get(), nil
}

// Set writes a named property.
func (a *Adapter) Set(name string, value any) error {
	prop, ok := a.properties[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownProperty)
	}
	if prop.set == nil {
		return fmt.Errorf("%q: %w", name, ErrReadOnly)
	}
	return prop.set(value)
}

// Call invokes a named method.
func (a *Adapter) Call(name string, args ...any) (any, error) {
	m, ok := a.methods[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
	}
	return m(args)
}

func setBool(v any, apply func(bool)) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T: %w", v, ErrBadArgument)
	}
	apply(b)
	return nil
}

func setFloat(v any, apply func(float64)) error {
	switch n := v.(type) {
	case float64:
		apply(n)
	case int:
		apply(float64(n))
	default:
		return fmt.Errorf("expected number, got %T: %w", v, ErrBadArgument)
	}
	return nil
}

func textTrackArgs(args []any) (domain.TextTrackKind, string, string, error) {
	if len(args) < 1 || len(args) > 3 {
		return "", "", "", fmt.Errorf("addTextTrack expects 1-3 arguments: %w", ErrBadArgument)
	}
	kind, ok := args[0].(string)
	if !ok {
		return "", "", "", fmt.Errorf("addTextTrack kind expects a string: %w", ErrBadArgument)
	}
	var label, language string
	if len(args) > 1 {
		if label, ok = args[1].(string); !ok {
			return "", "", "", fmt.Errorf("addTextTrack label expects a string: %w", ErrBadArgument)
		}
	}
	if len(args) > 2 {
		if language, ok = args[2].(string); !ok {
			return "", "", "", fmt.Errorf("addTextTrack language expects a string: %w", ErrBadArgument)
		}
	}
	return domain.TextTrackKind(kind), label, language, nil
}
