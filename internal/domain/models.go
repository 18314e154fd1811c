package domain

// ReadyState indicates how much decodable data is available for the current
// source. Values are totally ordered, so threshold checks use plain
// comparisons (see the readiness transition rule in internal/element).
type ReadyState int

const (
	// ReadyStateNoData means no information about the source is available.
	// Held if and only if no pipeline controller is attached.
	ReadyStateNoData ReadyState = iota
	// ReadyStateMetadata means duration and stream layout are known.
	ReadyStateMetadata
	// ReadyStateCurrentData means data for the current position is decoded.
	ReadyStateCurrentData
	// ReadyStateFutureData means there is enough data to advance at least
	// one frame past the current position.
	ReadyStateFutureData
	// ReadyStateEnoughData means playback can likely proceed to the end
	// without stalling.
	ReadyStateEnoughData
)

// String returns the state name.
func (s ReadyState) String() string {
	switch s {
	case ReadyStateNoData:
		return "NoData"
	case ReadyStateMetadata:
		return "Metadata"
	case ReadyStateCurrentData:
		return "CurrentData"
	case ReadyStateFutureData:
		return "FutureData"
	case ReadyStateEnoughData:
		return "EnoughData"
	default:
		return "Unknown"
	}
}

// PipelineState is the transport phase of the attached decode pipeline.
// It is not ordered; transitions are governed by an explicit table.
type PipelineState int

const (
	// PipelineInitializing means the pipeline is starting up.
	PipelineInitializing PipelineState = iota
	// PipelinePlaying means the pipeline is playing media.
	PipelinePlaying
	// PipelinePaused means playback is paused by user action.
	PipelinePaused
	// PipelineStalled means the pipeline is buffering while waiting for new
	// content. Only happens while playing; a paused pipeline stays Paused
	// even when it runs out of content.
	PipelineStalled
	// PipelineSeekingToPlay means a seek is in progress and playback will
	// resume once it completes.
	PipelineSeekingToPlay
	// PipelineSeekingToPause is like PipelineSeekingToPlay but the pipeline
	// remains paused afterwards.
	PipelineSeekingToPause
	// PipelineEnded means playback reached the end of the media.
	PipelineEnded
	// PipelineErrored means a fatal error stopped the pipeline.
	PipelineErrored
)

// String returns the state name.
func (s PipelineState) String() string {
	switch s {
	case PipelineInitializing:
		return "Initializing"
	case PipelinePlaying:
		return "Playing"
	case PipelinePaused:
		return "Paused"
	case PipelineStalled:
		return "Stalled"
	case PipelineSeekingToPlay:
		return "SeekingToPlay"
	case PipelineSeekingToPause:
		return "SeekingToPause"
	case PipelineEnded:
		return "Ended"
	case PipelineErrored:
		return "Errored"
	default:
		return "Unknown"
	}
}

// Event is a named playback event posted to the host's dispatch sink.
// Values are the canonical lowercase names used by media elements.
type Event string

const (
	EventLoadedMetadata   Event = "loadedmetadata"
	EventLoadedData       Event = "loadeddata"
	EventCanPlay          Event = "canplay"
	EventWaiting          Event = "waiting"
	EventReadyStateChange Event = "readystatechange"
	EventEmptied          Event = "emptied"
	EventPlay             Event = "play"
	EventPlaying          Event = "playing"
	EventPause            Event = "pause"
	EventSeeking          Event = "seeking"
	EventSeeked           Event = "seeked"
	EventEnded            Event = "ended"
	EventError            Event = "error"
	EventCueChange        Event = "cuechange"
)

// SourceKind identifies which elementary stream a pipeline notification
// refers to.
type SourceKind int

const (
	SourceUnknown SourceKind = iota
	SourceAudio
	SourceVideo
)

// String returns the kind name.
func (k SourceKind) String() string {
	switch k {
	case SourceAudio:
		return "audio"
	case SourceVideo:
		return "video"
	default:
		return "unknown"
	}
}

// CanPlayResult is the answer to a MIME type support query.
type CanPlayResult string

const (
	// CanPlayNo means the type is definitely not supported.
	CanPlayNo CanPlayResult = ""
	// CanPlayMaybe means the type may be playable.
	CanPlayMaybe CanPlayResult = "maybe"
	// CanPlayProbably means the type is almost certainly playable.
	CanPlayProbably CanPlayResult = "probably"
)

// BufferedRange is an interval of buffered media time, in seconds.
type BufferedRange struct {
	Start float64
	End   float64
}

// PlaybackQuality reports decode statistics for the attached pipeline.
type PlaybackQuality struct {
	// CreationTime is the media time the counters were captured at.
	CreationTime float64
	// TotalVideoFrames is the number of frames delivered to the renderer.
	TotalVideoFrames uint64
	// DroppedVideoFrames is the number of frames dropped before display.
	DroppedVideoFrames uint64
	// CorruptedVideoFrames is the number of frames that failed to decode.
	CorruptedVideoFrames uint64
}

// TextTrackKind classifies a timed-text track.
type TextTrackKind string

const (
	TextTrackSubtitles    TextTrackKind = "subtitles"
	TextTrackCaptions     TextTrackKind = "captions"
	TextTrackDescriptions TextTrackKind = "descriptions"
	TextTrackChapters     TextTrackKind = "chapters"
	TextTrackMetadata     TextTrackKind = "metadata"
)
