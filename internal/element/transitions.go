package element

import (
	"github.com/emberplay/emberplay/internal/domain"
	"go.uber.org/zap"
)

// boundObserver forwards pipeline notifications for one attach generation.
// Load bumps the element's generation before tearing a controller down, so
// a callback that was already in flight when the source detached is dropped
// instead of mutating state that now belongs to a different source.
type boundObserver struct {
	element *MediaElement
	gen     uint64
}

// OnReadyStateChanged implements domain.PipelineObserver.
func (o *boundObserver) OnReadyStateChanged(state domain.ReadyState) {
	e := o.element

	e.mu.Lock()
	if o.gen != e.attachGen {
		e.mu.Unlock()
		e.logger.Debug("Dropping readiness callback from detached source",
			zap.String("state", state.String()))
		return
	}
	events := e.readinessEventsLocked(state)
	e.mu.Unlock()

	e.postAll(events)
}

// OnPipelineStateChanged implements domain.PipelineObserver.
func (o *boundObserver) OnPipelineStateChanged(state domain.PipelineState) {
	e := o.element

	e.mu.Lock()
	if o.gen != e.attachGen {
		e.mu.Unlock()
		e.logger.Debug("Dropping status callback from detached source",
			zap.String("state", state.String()))
		return
	}
	events := e.pipelineEventsLocked(state)
	e.mu.Unlock()

	e.postAll(events)
}

// OnMediaError implements domain.PipelineObserver.
func (o *boundObserver) OnMediaError(kind domain.SourceKind, status domain.StatusCode) {
	e := o.element

	e.mu.Lock()
	if o.gen != e.attachGen {
		e.mu.Unlock()
		return
	}
	e.recordErrorLocked(domain.MediaErrDecode, status.String())
	e.mu.Unlock()

	e.logger.Error("Pipeline reported media error",
		zap.String("stream", kind.String()),
		zap.String("status", status.String()))
	e.sink.Post(domain.EventError)
}

// readinessEventsLocked applies the readiness transition rule and returns
// the events to post, in order. Each threshold event fires when the
// transition crosses its threshold upward; Waiting fires on a regression
// out of FutureData unless the element is fully detaching (NoData). The
// unconditional ReadyStateChange is always last. Caller holds e.mu.
func (e *MediaElement) readinessEventsLocked(next domain.ReadyState) []domain.Event {
	attached := e.controller != nil
	if attached == (next == domain.ReadyStateNoData) {
		e.logger.DPanic("Readiness state inconsistent with attachment",
			zap.String("state", next.String()),
			zap.Bool("attached", attached))
	}

	prev := e.readyState
	if prev == next {
		return nil
	}

	var events []domain.Event
	if prev < domain.ReadyStateMetadata && next >= domain.ReadyStateMetadata {
		events = append(events, domain.EventLoadedMetadata)
	}
	if prev < domain.ReadyStateCurrentData && next >= domain.ReadyStateCurrentData {
		events = append(events, domain.EventLoadedData)
	}
	if prev < domain.ReadyStateEnoughData && next >= domain.ReadyStateEnoughData {
		events = append(events, domain.EventCanPlay)
	}
	if prev >= domain.ReadyStateFutureData && next < domain.ReadyStateFutureData &&
		next != domain.ReadyStateNoData {
		events = append(events, domain.EventWaiting)
	}
	events = append(events, domain.EventReadyStateChange)

	e.readyState = next
	return events
}

// pipelineEventsLocked applies the pipeline-status transition rule and
// returns the events to post, in order. Events describe the transition from
// the previous state, so the stored state is overwritten only after they
// are decided. Caller holds e.mu.
func (e *MediaElement) pipelineEventsLocked(next domain.PipelineState) []domain.Event {
	prev := e.pipelineState
	if next == prev {
		// A repeated seeking status still signals a position change.
		if next == domain.PipelineSeekingToPlay || next == domain.PipelineSeekingToPause {
			return []domain.Event{domain.EventSeeking}
		}
		return nil
	}

	var events []domain.Event
	switch next {
	case domain.PipelineInitializing:
		events = append(events, domain.EventEmptied)

	case domain.PipelinePlaying:
		switch prev {
		case domain.PipelinePaused:
			events = append(events, domain.EventPlay)
		case domain.PipelineSeekingToPlay:
			events = append(events, domain.EventSeeked)
		case domain.PipelineStalled, domain.PipelineInitializing:
			// Resuming from a stall or finishing startup; no edge event.
		default:
			e.logger.DPanic("Impossible transition into Playing",
				zap.String("from", prev.String()))
		}
		events = append(events, domain.EventPlaying)

	case domain.PipelinePaused:
		switch prev {
		case domain.PipelinePlaying, domain.PipelineStalled:
			events = append(events, domain.EventPause)
		case domain.PipelineSeekingToPause:
			events = append(events, domain.EventSeeked)
		case domain.PipelineInitializing:
			// Initial pause after startup; no event.
		default:
			e.logger.DPanic("Impossible transition into Paused",
				zap.String("from", prev.String()))
		}

	case domain.PipelineStalled:
		// Buffering underruns are reported through readiness regressions.

	case domain.PipelineSeekingToPlay, domain.PipelineSeekingToPause:
		events = append(events, domain.EventSeeking)

	case domain.PipelineEnded:
		if prev == domain.PipelinePlaying {
			events = append(events, domain.EventPause)
		} else if prev == domain.PipelineSeekingToPlay || prev == domain.PipelineSeekingToPause {
			events = append(events, domain.EventSeeked)
		}
		events = append(events, domain.EventEnded)

	case domain.PipelineErrored:
		events = append(events, domain.EventError)
		e.recordErrorLocked(domain.MediaErrDecode, "unknown media error")
	}

	e.pipelineState = next
	return events
}

// recordErrorLocked persists a media error for this load cycle. The first
// error wins; later errors are kept out until the next Load clears it.
// Caller holds e.mu.
func (e *MediaElement) recordErrorLocked(code domain.MediaErrorCode, message string) {
	if e.lastError != nil {
		return
	}
	e.lastError = &domain.MediaError{Code: code, Message: message}
}
