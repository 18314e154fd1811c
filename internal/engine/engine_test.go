package engine

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/emberplay/emberplay/internal/config"
	"github.com/emberplay/emberplay/internal/domain"
	"github.com/emberplay/emberplay/internal/element"
)

type nullSink struct{}

func (nullSink) Post(domain.Event) {}

type nullResolver struct{}

func (nullResolver) Resolve(string) (domain.PipelineController, error) {
	return nil, domain.ErrSourceNotFound
}

func (nullResolver) IsTypeSupported(string) bool { return false }

func testConfig() *config.Config {
	return &config.Config{
		SampleInterval: time.Hour,
		DefaultVolume:  1,
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(zap.NewNop(), testConfig(), nullResolver{}, nullSink{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestSingleInstanceGuard(t *testing.T) {
	e := newTestEngine(t)

	if _, err := New(zap.NewNop(), testConfig(), nullResolver{}, nullSink{}); !errors.Is(err, domain.ErrEngineExists) {
		t.Fatalf("second New error = %v, want ErrEngineExists", err)
	}

	// Closing the live engine frees the slot.
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	second, err := New(zap.NewNop(), testConfig(), nullResolver{}, nullSink{})
	if err != nil {
		t.Fatalf("New after Close failed: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestCreateElement(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		tag     string
		wantErr error
	}{
		{tag: "video"},
		{tag: "audio"},
		{tag: "canvas", wantErr: domain.ErrUnknownTag},
		{tag: "", wantErr: domain.ErrUnknownTag},
	}

	for _, tt := range tests {
		t.Run("tag "+tt.tag, func(t *testing.T) {
			el, err := e.Document().CreateElement(tt.tag)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateElement(%q) error = %v, want %v", tt.tag, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateElement(%q) failed: %v", tt.tag, err)
			}
			if _, ok := el.(*element.MediaElement); !ok {
				t.Errorf("CreateElement(%q) = %T, want *element.MediaElement", tt.tag, el)
			}
		})
	}
}

func TestCloseStopsElements(t *testing.T) {
	e, err := New(zap.NewNop(), testConfig(), nullResolver{}, nullSink{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	el, err := e.Document().CreateElement("video")
	if err != nil {
		t.Fatalf("CreateElement failed: %v", err)
	}

	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// The element's worker is stopped; a second Close on it is a no-op.
	if err := el.Close(); err != nil {
		t.Errorf("element Close after engine Close failed: %v", err)
	}
}

func TestEngineCloseIsIdempotent(t *testing.T) {
	e, err := New(zap.NewNop(), testConfig(), nullResolver{}, nullSink{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := e.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}
