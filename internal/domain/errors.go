package domain

import "errors"

// Sentinel errors returned by command-surface operations. Callers should
// match them with errors.Is since they may be wrapped with context.
var (
	// ErrInvalidState means the operation is not allowed in the element's
	// current state (e.g. setting media keys before a source is attached).
	ErrInvalidState = errors.New("invalid state")
	// ErrNotSupported means the requested source or type cannot be played.
	ErrNotSupported = errors.New("not supported")
	// ErrSourceNotFound means the resolver has no controller registered for
	// the given identifier.
	ErrSourceNotFound = errors.New("source not found")
	// ErrEngineExists means a second engine instance was requested while
	// one is still alive.
	ErrEngineExists = errors.New("engine already exists")
	// ErrUnknownTag means the element constructor registry has no entry for
	// the requested tag name.
	ErrUnknownTag = errors.New("unknown element tag")
)

// MediaErrorCode classifies a persisted media error, mirroring the media
// element error codes hosts already know.
type MediaErrorCode int

const (
	// MediaErrAborted means the load was aborted by the host.
	MediaErrAborted MediaErrorCode = iota + 1
	// MediaErrNetwork means a network failure interrupted the load.
	MediaErrNetwork
	// MediaErrDecode means the pipeline failed while decoding.
	MediaErrDecode
	// MediaErrSrcNotSupported means the source format is not playable.
	MediaErrSrcNotSupported
)

// String returns the code name.
func (c MediaErrorCode) String() string {
	switch c {
	case MediaErrAborted:
		return "MEDIA_ERR_ABORTED"
	case MediaErrNetwork:
		return "MEDIA_ERR_NETWORK"
	case MediaErrDecode:
		return "MEDIA_ERR_DECODE"
	case MediaErrSrcNotSupported:
		return "MEDIA_ERR_SRC_NOT_SUPPORTED"
	default:
		return "MEDIA_ERR_UNKNOWN"
	}
}

// MediaError is the error value persisted on a media element. At most one
// is recorded per load cycle; the first error wins and is cleared only by
// the next Load.
type MediaError struct {
	Code    MediaErrorCode
	Message string
}

// Error implements the error interface.
func (e *MediaError) Error() string {
	return e.Code.String() + ": " + e.Message
}

// StatusCode is a pipeline-layer status reported with asynchronous error
// notifications. The element only converts these to MediaError values; it
// never acts on individual codes.
type StatusCode int

const (
	// StatusSuccess means the operation succeeded.
	StatusSuccess StatusCode = iota
	// StatusDetached means the media stack was detached and destroyed.
	StatusDetached
	// StatusEndOfStream means the demuxer hit the end of its input. This is
	// expected during shutdown and an internal error otherwise.
	StatusEndOfStream
	// StatusQuotaExceeded means there is no source of the requested type.
	StatusQuotaExceeded
	// StatusOutOfMemory means a required allocation failed.
	StatusOutOfMemory
	// StatusNotSupported means the action is not supported, such as an
	// unknown MIME type.
	StatusNotSupported
	// StatusNotAllowed means the action is not allowed, such as adding a
	// second video source.
	StatusNotAllowed
	// StatusUnknown means an unclassified error occurred.
	StatusUnknown
	// StatusCannotOpenDemuxer means the demuxer could not be opened,
	// usually because of invalid input or a missing init segment.
	StatusCannotOpenDemuxer
	// StatusNoStreamsFound means the input had no elementary streams.
	StatusNoStreamsFound
	// StatusMultiplexedContentFound means the input contained multiplexed
	// content, which is not supported.
	StatusMultiplexedContentFound
	// StatusInvalidContainerData means the container data was malformed.
	StatusInvalidContainerData
	// StatusDecoderMismatch means the content codec did not match the codec
	// the decoder was initialized with.
	StatusDecoderMismatch
	// StatusDecoderFailedInit means the decoder could not be initialized.
	StatusDecoderFailedInit
	// StatusInvalidCodecData means the codec data was malformed.
	StatusInvalidCodecData
	// StatusKeyNotFound means the decryption key for a frame is missing.
	// Not fatal; decoding resumes once the CDM receives the key.
	StatusKeyNotFound
)

// String returns a human-readable message for the status, used to build the
// MediaError recorded when the pipeline reports a failure.
func (s StatusCode) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusDetached:
		return "media stack has been detached"
	case StatusEndOfStream:
		return "unexpected end of stream"
	case StatusQuotaExceeded:
		return "no source of the given type exists"
	case StatusOutOfMemory:
		return "unable to allocate required memory"
	case StatusNotSupported:
		return "the requested action is not supported"
	case StatusNotAllowed:
		return "the requested action is not allowed"
	case StatusCannotOpenDemuxer:
		return "unable to open the demuxer"
	case StatusNoStreamsFound:
		return "no elementary streams found in input"
	case StatusMultiplexedContentFound:
		return "multiplexed content is not supported"
	case StatusInvalidContainerData:
		return "invalid container data"
	case StatusDecoderMismatch:
		return "content codec does not match decoder"
	case StatusDecoderFailedInit:
		return "unable to initialize the decoder"
	case StatusInvalidCodecData:
		return "invalid codec data"
	case StatusKeyNotFound:
		return "decryption key not found"
	default:
		return "unknown media error"
	}
}
