// Package resolver implements the source resolver consumed by media
// elements: a registry mapping source identifiers to pipeline controller
// factories, plus the MIME type support table behind canPlayType queries.
package resolver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/emberplay/emberplay/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// handleScheme prefixes generated source identifiers, mirroring the
// object-URL handles hosts get from a media-source factory.
const handleScheme = "emberplay://"

// ControllerFactory builds a fresh pipeline controller for one attach. A
// new controller is created per SetSource; controllers are never reused
// across attaches.
type ControllerFactory func() domain.PipelineController

// Registry is a thread-safe SourceResolver. Hosts register controller
// factories and supported MIME types; media elements resolve identifiers
// against it at attach time.
type Registry struct {
	logger *zap.Logger

	mu        sync.RWMutex
	factories map[string]ControllerFactory
	types     map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		logger:    logger,
		factories: make(map[string]ControllerFactory),
		types:     make(map[string]struct{}),
	}
}

// Register adds a controller factory under a freshly generated identifier
// and returns the identifier, to be handed to MediaElement.SetSource.
func (r *Registry) Register(factory ControllerFactory) string {
	identifier := handleScheme + uuid.NewString()
	r.RegisterName(identifier, factory)
	return identifier
}

// RegisterName adds a controller factory under a caller-chosen identifier,
// replacing any previous registration.
func (r *Registry) RegisterName(identifier string, factory ControllerFactory) {
	r.mu.Lock()
	r.factories[identifier] = factory
	r.mu.Unlock()

	r.logger.Debug("Source registered", zap.String("source", identifier))
}

// Unregister removes the factory for the identifier, if present. Sources
// already attached to an element are unaffected; only future resolution
// stops working.
func (r *Registry) Unregister(identifier string) {
	r.mu.Lock()
	delete(r.factories, identifier)
	r.mu.Unlock()
}

// Resolve implements domain.SourceResolver.
func (r *Registry) Resolve(identifier string) (domain.PipelineController, error) {
	r.mu.RLock()
	factory, ok := r.factories[identifier]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no source registered for %q: %w", identifier, domain.ErrSourceNotFound)
	}
	return factory(), nil
}

// RegisterType marks a MIME content type as supported. Codec parameters
// are ignored; support is declared per container type.
func (r *Registry) RegisterType(mimeType string) {
	r.mu.Lock()
	r.types[canonicalType(mimeType)] = struct{}{}
	r.mu.Unlock()
}

// IsTypeSupported implements domain.SourceResolver.
func (r *Registry) IsTypeSupported(mimeType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[canonicalType(mimeType)]
	return ok
}

// canonicalType lowercases a MIME type and strips parameters such as
// codecs, so `video/mp4; codecs="avc1.42E01E"` matches `video/mp4`.
func canonicalType(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
