// Package element implements the media element playback state machine: the
// dual ReadyState/PipelineState model, the ordered event stream derived from
// its transitions, the command surface hosts drive playback with, and the
// background sampling worker that keeps timed-text cues in sync with the
// playback position.
package element

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/emberplay/emberplay/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultSampleInterval = 250 * time.Millisecond

// Options tune a media element at construction time.
type Options struct {
	// SampleInterval is the cue sampling quantum. Defaults to 250ms.
	SampleInterval time.Duration
	// Volume is the initial volume in [0, 1]. Defaults to 1.
	Volume float64
	// Autoplay makes SetSource start playback as soon as a source attaches.
	Autoplay bool
}

// MediaElement is the aggregate root of the playback runtime. It arbitrates
// host commands against the attached pipeline controller, translates
// pipeline notifications into the ordered event stream hosts expect, and
// owns the text tracks evaluated by the sampling worker.
//
// Host commands and pipeline notifications must be serialized onto one
// logical thread of control by the caller; the element's lock protects its
// state against the sampling worker, not against concurrent commands.
type MediaElement struct {
	logger   *zap.Logger
	resolver domain.SourceResolver
	sink     domain.EventSink

	mu            sync.Mutex
	readyState    domain.ReadyState
	pipelineState domain.PipelineState
	controller    domain.PipelineController
	sourceID      string
	attachGen     uint64 // bumped on attach and detach; stale callbacks are dropped
	autoplay      bool
	loop          bool
	muted         bool
	volume        float64
	willPlay      bool // play() issued before a source was attached
	lastError     *domain.MediaError
	mediaKeys     domain.MediaKeys
	tracks        []*TextTrack

	sampleInterval time.Duration
	stopOnce       sync.Once
	stop           chan struct{}
	done           chan struct{}
}

// New creates a media element and starts its sampling worker. The caller
// must Close the element to stop the worker and release the attached
// pipeline, if any.
func New(logger *zap.Logger, resolver domain.SourceResolver, sink domain.EventSink, opts Options) *MediaElement {
	interval := opts.SampleInterval
	if interval <= 0 {
		interval = defaultSampleInterval
	}
	volume := opts.Volume
	if volume <= 0 || volume > 1 {
		volume = 1
	}

	e := &MediaElement{
		logger:         logger,
		resolver:       resolver,
		sink:           sink,
		readyState:     domain.ReadyStateNoData,
		pipelineState:  domain.PipelineInitializing,
		autoplay:       opts.Autoplay,
		volume:         volume,
		sampleInterval: interval,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	go e.samplerLoop()

	logger.Debug("Media element created",
		zap.Duration("sampleInterval", interval),
		zap.Bool("autoplay", opts.Autoplay))
	return e
}

// Close stops the sampling worker and tears down any attached pipeline.
// No events are posted for the teardown; the element is gone from the
// host's point of view before Close returns.
func (e *MediaElement) Close() error {
	e.stopOnce.Do(func() { close(e.stop) })
	<-e.done

	e.mu.Lock()
	ctrl := e.controller
	e.controller = nil
	e.sourceID = ""
	e.attachGen++
	e.mu.Unlock()

	if ctrl == nil {
		return nil
	}
	ctrl.Unbind()
	if err := ctrl.Close(); err != nil {
		return fmt.Errorf("failed to close pipeline controller: %w", err)
	}
	return nil
}

// Load detaches any attached pipeline controller and resets the element to
// its detached state: ReadyState NoData, PipelineState Initializing, error
// cleared. Idempotent when no controller is attached.
func (e *MediaElement) Load() {
	e.mu.Lock()
	e.lastError = nil
	ctrl := e.controller
	if ctrl == nil {
		e.mu.Unlock()
		return
	}

	// Quiesce first: any callback still in flight from the old controller
	// carries a stale generation and is dropped.
	e.attachGen++
	e.controller = nil
	e.sourceID = ""
	e.mediaKeys = nil
	e.willPlay = false

	events := e.readinessEventsLocked(domain.ReadyStateNoData)
	events = append(events, e.pipelineEventsLocked(domain.PipelineInitializing)...)
	e.mu.Unlock()

	ctrl.Unbind()
	if err := ctrl.Close(); err != nil {
		e.logger.Warn("Pipeline controller teardown failed", zap.Error(err))
	}

	e.postAll(events)
}

// SetSource resolves the identifier and attaches the resulting pipeline
// controller, detaching any previous one first. An empty identifier only
// performs the detach. Returns ErrNotSupported (wrapped) when the resolver
// does not recognize the identifier.
func (e *MediaElement) SetSource(identifier string) error {
	// Unload any previously attached source.
	e.Load()

	if identifier == "" {
		return nil
	}

	ctrl, err := e.resolver.Resolve(identifier)
	if err != nil {
		e.logger.Warn("Source resolution failed",
			zap.String("source", identifier),
			zap.Error(err))
		return fmt.Errorf("cannot play %q: %w", identifier, domain.ErrNotSupported)
	}

	session := uuid.NewString()

	e.mu.Lock()
	e.controller = ctrl
	e.sourceID = identifier
	e.attachGen++
	gen := e.attachGen
	volume := e.effectiveVolumeLocked()
	play := e.autoplay || e.willPlay
	e.mu.Unlock()

	ctrl.Bind(&boundObserver{element: e, gen: gen})
	ctrl.SetVolume(volume)
	if play {
		ctrl.Play()
	}

	e.logger.Info("Source attached",
		zap.String("source", identifier),
		zap.String("session", session),
		zap.Bool("playOnAttach", play))
	return nil
}

// Source returns the identifier of the attached source, or "" if detached.
func (e *MediaElement) Source() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sourceID
}

// CanPlay reports whether the given MIME type may be playable. Pure query;
// no state changes.
func (e *MediaElement) CanPlay(mimeType string) domain.CanPlayResult {
	if !e.resolver.IsTypeSupported(mimeType) {
		return domain.CanPlayNo
	}
	return domain.CanPlayMaybe
}

// Play forwards to the attached controller, or latches a play intent that
// is honored when a source attaches later.
func (e *MediaElement) Play() {
	e.mu.Lock()
	ctrl := e.controller
	if ctrl == nil {
		e.willPlay = true
	}
	e.mu.Unlock()

	if ctrl != nil {
		ctrl.Play()
	}
}

// Pause forwards to the attached controller, or clears a latched play
// intent.
func (e *MediaElement) Pause() {
	e.mu.Lock()
	ctrl := e.controller
	if ctrl == nil {
		e.willPlay = false
	}
	e.mu.Unlock()

	if ctrl != nil {
		ctrl.Pause()
	}
}

// SetCurrentTime seeks to the given media time. No-op when detached.
func (e *MediaElement) SetCurrentTime(t float64) {
	if ctrl := e.attached(); ctrl != nil {
		ctrl.SetCurrentTime(t)
	}
}

// CurrentTime returns the playback position, or 0 when detached.
func (e *MediaElement) CurrentTime() float64 {
	if ctrl := e.attached(); ctrl != nil {
		return ctrl.CurrentTime()
	}
	return 0
}

// Duration returns the media duration, or 0 when detached.
func (e *MediaElement) Duration() float64 {
	if ctrl := e.attached(); ctrl != nil {
		return ctrl.Duration()
	}
	return 0
}

// SetPlaybackRate changes the playback speed. No-op when detached.
func (e *MediaElement) SetPlaybackRate(rate float64) {
	if ctrl := e.attached(); ctrl != nil {
		ctrl.SetPlaybackRate(rate)
	}
}

// PlaybackRate returns the playback speed, or 1 when detached.
func (e *MediaElement) PlaybackRate() float64 {
	if ctrl := e.attached(); ctrl != nil {
		return ctrl.PlaybackRate()
	}
	return 1
}

// SetVolume updates the cached volume and, when attached, the controller's
// effective volume. Values outside [0, 1] are clamped. The cached value
// survives detach so it takes effect on the next attach.
func (e *MediaElement) SetVolume(volume float64) {
	clamped := math.Min(math.Max(volume, 0), 1)
	if clamped != volume {
		e.logger.Warn("Volume out of range, clamping", zap.Float64("volume", volume))
	}

	e.mu.Lock()
	e.volume = clamped
	ctrl := e.controller
	effective := e.effectiveVolumeLocked()
	e.mu.Unlock()

	if ctrl != nil {
		ctrl.SetVolume(effective)
	}
}

// Volume returns the cached volume, independent of the muted flag.
func (e *MediaElement) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// SetMuted updates the muted flag and, when attached, the controller's
// effective volume.
func (e *MediaElement) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	ctrl := e.controller
	effective := e.effectiveVolumeLocked()
	e.mu.Unlock()

	if ctrl != nil {
		ctrl.SetVolume(effective)
	}
}

// Muted returns the muted flag.
func (e *MediaElement) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Autoplay returns the autoplay flag.
func (e *MediaElement) Autoplay() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.autoplay
}

// SetAutoplay sets the autoplay flag, consulted on the next attach.
func (e *MediaElement) SetAutoplay(autoplay bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.autoplay = autoplay
}

// Loop returns the loop flag.
func (e *MediaElement) Loop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loop
}

// SetLoop sets the loop flag. Looping itself is the pipeline's concern; the
// element only carries the flag.
func (e *MediaElement) SetLoop(loop bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loop = loop
}

// SetMediaKeys forwards the DRM implementation handle to the attached
// controller. Clearing keys while detached succeeds immediately; setting
// keys while detached fails with ErrInvalidState.
func (e *MediaElement) SetMediaKeys(keys domain.MediaKeys) error {
	e.mu.Lock()
	ctrl := e.controller
	if keys == nil && ctrl == nil {
		e.mediaKeys = nil
		e.mu.Unlock()
		return nil
	}
	if ctrl == nil {
		e.mu.Unlock()
		return fmt.Errorf("cannot set media keys until after setting source: %w", domain.ErrInvalidState)
	}
	e.mediaKeys = keys
	e.mu.Unlock()

	var cdm domain.Cdm
	if keys != nil {
		cdm = keys.Cdm()
	}
	ctrl.SetCdm(cdm)
	return nil
}

// MediaKeys returns the key-session handle set by the host, if any.
func (e *MediaElement) MediaKeys() domain.MediaKeys {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mediaKeys
}

// AddTextTrack appends a new timed-text track and returns it.
func (e *MediaElement) AddTextTrack(kind domain.TextTrackKind, label, language string) *TextTrack {
	track := newTextTrack(kind, label, language, func() {
		e.sink.Post(domain.EventCueChange)
	})

	e.mu.Lock()
	e.tracks = append(e.tracks, track)
	e.mu.Unlock()

	e.logger.Debug("Text track added",
		zap.String("kind", string(kind)),
		zap.String("label", label),
		zap.String("language", language))
	return track
}

// TextTracks returns the element's text tracks in creation order.
func (e *MediaElement) TextTracks() []*TextTrack {
	e.mu.Lock()
	defer e.mu.Unlock()
	tracks := make([]*TextTrack, len(e.tracks))
	copy(tracks, e.tracks)
	return tracks
}

// ReadyState returns the current content-readiness state.
func (e *MediaElement) ReadyState() domain.ReadyState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readyState
}

// PipelineState returns the current transport state.
func (e *MediaElement) PipelineState() domain.PipelineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pipelineState
}

// Err returns the persisted media error for this load cycle, or nil.
func (e *MediaElement) Err() *domain.MediaError {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastError
}

// Paused reports whether playback is paused. True when detached.
func (e *MediaElement) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.controller == nil {
		return true
	}
	return e.pipelineState == domain.PipelinePaused ||
		e.pipelineState == domain.PipelineSeekingToPause ||
		e.pipelineState == domain.PipelineEnded
}

// Seeking reports whether a seek is in progress. False when detached.
func (e *MediaElement) Seeking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pipelineState == domain.PipelineSeekingToPlay ||
		e.pipelineState == domain.PipelineSeekingToPause
}

// Ended reports whether playback reached the end. False when detached.
func (e *MediaElement) Ended() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.controller != nil && e.pipelineState == domain.PipelineEnded
}

// Buffered returns the buffered time ranges, empty when detached.
func (e *MediaElement) Buffered() []domain.BufferedRange {
	if ctrl := e.attached(); ctrl != nil {
		return ctrl.BufferedRanges(domain.SourceUnknown)
	}
	return nil
}

// Seekable returns the seekable time ranges: [0, duration] while the
// duration is known, empty otherwise.
func (e *MediaElement) Seekable() []domain.BufferedRange {
	ctrl := e.attached()
	if ctrl == nil {
		return nil
	}
	duration := ctrl.Duration()
	if math.IsNaN(duration) {
		return nil
	}
	return []domain.BufferedRange{{Start: 0, End: duration}}
}

// PlaybackQuality returns decode statistics, zero-valued when detached.
func (e *MediaElement) PlaybackQuality() domain.PlaybackQuality {
	if ctrl := e.attached(); ctrl != nil {
		return ctrl.PlaybackQuality()
	}
	return domain.PlaybackQuality{}
}

// attached returns the attached controller, or nil.
func (e *MediaElement) attached() domain.PipelineController {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.controller
}

// effectiveVolumeLocked is the volume forwarded downstream: 0 while muted,
// the cached volume otherwise. Caller holds e.mu.
func (e *MediaElement) effectiveVolumeLocked() float64 {
	if e.muted {
		return 0
	}
	return e.volume
}

// postAll posts events in order. Never called while holding e.mu: a
// synchronous sink binding may call back into the element.
func (e *MediaElement) postAll(events []domain.Event) {
	for _, event := range events {
		e.sink.Post(event)
	}
}
