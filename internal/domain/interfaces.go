package domain

// Cdm is an opaque handle to a DRM implementation passed through to the
// pipeline. The element never inspects it.
type Cdm interface{}

// MediaKeys is a host-provided key-session handle. The element forwards its
// CDM to the attached pipeline controller and keeps the handle for queries.
type MediaKeys interface {
	// Cdm returns the DRM implementation handle to hand to the pipeline.
	Cdm() Cdm
}

// PipelineObserver receives asynchronous status notifications from an
// attached pipeline controller. Implemented by the media element.
//
// The element assumes these callbacks are serialized with host commands on
// one logical thread of control; a controller that dispatches from its own
// goroutines must serialize them itself before calling in.
type PipelineObserver interface {
	// OnReadyStateChanged reports a change in available decodable data.
	OnReadyStateChanged(state ReadyState)

	// OnPipelineStateChanged reports a transport phase change.
	OnPipelineStateChanged(state PipelineState)

	// OnMediaError reports an asynchronous pipeline failure.
	OnMediaError(kind SourceKind, status StatusCode)
}

// PipelineController is the command/query surface of the component owning
// demux, decode, render and DRM for one attached source. Its lifetime is
// scoped to a single attach: the element creates one per SetSource and
// closes it on the next Load.
//
//go:generate mockgen -destination=mocks/pipeline_controller_mock.go -package=mocks github.com/emberplay/emberplay/internal/domain PipelineController
type PipelineController interface {
	// Bind registers the observer that receives status notifications.
	Bind(observer PipelineObserver)

	// Unbind stops all notification delivery. Must be called before Close
	// so no callback arrives for a detached source.
	Unbind()

	// Play requests the pipeline to start or resume playback.
	Play()

	// Pause requests the pipeline to pause playback.
	Pause()

	// SetCurrentTime seeks to the given media time in seconds.
	SetCurrentTime(t float64)

	// CurrentTime returns the current playback position in seconds.
	CurrentTime() float64

	// Duration returns the media duration in seconds, or NaN if unknown.
	Duration() float64

	// SetPlaybackRate changes the playback speed multiplier.
	SetPlaybackRate(rate float64)

	// PlaybackRate returns the current playback speed multiplier.
	PlaybackRate() float64

	// SetVolume sets the effective output volume in [0, 1].
	SetVolume(volume float64)

	// BufferedRanges returns the buffered intervals for the given stream.
	BufferedRanges(kind SourceKind) []BufferedRange

	// SetCdm hands the DRM implementation to the pipeline. A nil handle
	// clears any previously set CDM.
	SetCdm(cdm Cdm)

	// PlaybackQuality returns decode statistics for the attached source.
	PlaybackQuality() PlaybackQuality

	// Close tears down the pipeline. The element calls Unbind first.
	Close() error
}

// SourceResolver maps source identifiers to pipeline controllers and
// answers MIME type support queries.
//
//go:generate mockgen -destination=mocks/source_resolver_mock.go -package=mocks github.com/emberplay/emberplay/internal/domain SourceResolver
type SourceResolver interface {
	// Resolve returns a fresh pipeline controller for the identifier, or
	// ErrSourceNotFound if nothing is registered under it.
	Resolve(identifier string) (PipelineController, error)

	// IsTypeSupported reports whether the given MIME type is playable.
	IsTypeSupported(mimeType string) bool
}

// EventSink is the host's ordered asynchronous event delivery queue.
// Delivery order must equal post order.
//
//go:generate mockgen -destination=mocks/event_sink_mock.go -package=mocks github.com/emberplay/emberplay/internal/domain EventSink
type EventSink interface {
	// Post enqueues a named event for asynchronous delivery to the host.
	Post(event Event)
}
