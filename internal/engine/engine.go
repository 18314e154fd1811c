// Package engine owns the process-scoped playback runtime: an explicit
// create/destroy lifecycle guarded so at most one instance is alive, and a
// document handle whose element factory is a registry of constructors keyed
// by tag name. Hosts embed the engine and reach everything else through it.
package engine

import (
	"fmt"
	"sync"

	"github.com/emberplay/emberplay/internal/config"
	"github.com/emberplay/emberplay/internal/domain"
	"github.com/emberplay/emberplay/internal/element"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	liveMu sync.Mutex
	live   *Engine
)

// Element is a node created through the document's constructor registry.
type Element interface {
	Close() error
}

// Engine is one embedded playback runtime instance.
type Engine struct {
	logger   *zap.Logger
	cfg      *config.Config
	resolver domain.SourceResolver
	sink     domain.EventSink
	doc      *Document

	mu     sync.Mutex
	closed bool
}

// New creates the engine and its document. At most one engine may be alive
// per process; a second New fails with ErrEngineExists until the first is
// closed.
func New(logger *zap.Logger, cfg *config.Config, resolver domain.SourceResolver, sink domain.EventSink) (*Engine, error) {
	liveMu.Lock()
	defer liveMu.Unlock()

	if live != nil {
		return nil, domain.ErrEngineExists
	}

	e := &Engine{
		logger:   logger,
		cfg:      cfg,
		resolver: resolver,
		sink:     sink,
	}
	e.doc = newDocument(e)
	live = e

	logger.Info("Playback engine created")
	return e, nil
}

// Document returns the engine's document handle.
func (e *Engine) Document() *Document {
	return e.doc
}

// Close tears down every element created through the document and releases
// the process-wide instance slot. Safe to call once.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	err := e.doc.closeElements()

	liveMu.Lock()
	if live == e {
		live = nil
	}
	liveMu.Unlock()

	e.logger.Info("Playback engine closed")
	return err
}

// constructor builds one element subtype. The registry replaces subtype
// dispatch in element creation: the tag decides the constructor once, at
// document construction time.
type constructor func(d *Document) Element

// Document is the tree root elements are created under. Only the factory
// surface of a document is modeled; generic node and attribute machinery
// belongs to the host's tree layer.
type Document struct {
	engine       *Engine
	constructors map[string]constructor

	mu       sync.Mutex
	elements []Element
}

func newDocument(e *Engine) *Document {
	d := &Document{engine: e}
	media := func(d *Document) Element {
		return element.New(
			e.logger,
			e.resolver,
			e.sink,
			element.Options{
				SampleInterval: e.cfg.SampleInterval,
				Volume:         e.cfg.DefaultVolume,
				Autoplay:       e.cfg.Autoplay,
			},
		)
	}
	d.constructors = map[string]constructor{
		"video": media,
		"audio": media,
	}
	return d
}

// CreateElement builds the element registered for the tag name. The result
// is owned by the document and closed with the engine; hosts that release
// an element early may Close it themselves.
func (d *Document) CreateElement(tag string) (Element, error) {
	ctor, ok := d.constructors[tag]
	if !ok {
		return nil, fmt.Errorf("cannot create element %q: %w", tag, domain.ErrUnknownTag)
	}

	el := ctor(d)

	d.mu.Lock()
	d.elements = append(d.elements, el)
	d.mu.Unlock()

	d.engine.logger.Debug("Element created", zap.String("tag", tag))
	return el, nil
}

// closeElements stops every element, aggregating teardown failures.
func (d *Document) closeElements() error {
	d.mu.Lock()
	elements := d.elements
	d.elements = nil
	d.mu.Unlock()

	var err error
	for _, el := range elements {
		err = multierr.Append(err, el.Close())
	}
	return err
}
