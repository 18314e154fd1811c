package resolver

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/emberplay/emberplay/internal/domain"
	"github.com/emberplay/emberplay/internal/domain/mocks"
)

func TestRegisterAndResolve(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	controller := mocks.NewMockPipelineController(mockCtrl)
	r := NewRegistry(zap.NewNop())

	identifier := r.Register(func() domain.PipelineController { return controller })

	if !strings.HasPrefix(identifier, handleScheme) {
		t.Errorf("identifier %q does not carry the handle scheme", identifier)
	}

	got, err := r.Resolve(identifier)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != domain.PipelineController(controller) {
		t.Error("Resolve returned a different controller")
	}
}

func TestRegisterGeneratesUniqueIdentifiers(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	factory := func() domain.PipelineController { return nil }

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := r.Register(factory)
		if seen[id] {
			t.Fatalf("duplicate identifier %q", id)
		}
		seen[id] = true
	}
}

func TestResolveUnknownSource(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	_, err := r.Resolve("emberplay://nope")
	if !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("Resolve error = %v, want ErrSourceNotFound", err)
	}
}

func TestUnregister(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	identifier := r.Register(func() domain.PipelineController { return nil })

	r.Unregister(identifier)

	if _, err := r.Resolve(identifier); !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("Resolve after Unregister = %v, want ErrSourceNotFound", err)
	}
}

func TestResolveBuildsFreshController(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	calls := 0
	identifier := r.Register(func() domain.PipelineController {
		calls++
		return nil
	})

	// One controller per attach.
	if _, err := r.Resolve(identifier); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, err := r.Resolve(identifier); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("factory calls = %d, want 2", calls)
	}
}

func TestIsTypeSupported(t *testing.T) {
	tests := []struct {
		name       string
		registered []string
		query      string
		want       bool
	}{
		{
			name:       "Exact match",
			registered: []string{"video/mp4"},
			query:      "video/mp4",
			want:       true,
		},
		{
			name:       "Case insensitive",
			registered: []string{"video/mp4"},
			query:      "Video/MP4",
			want:       true,
		},
		{
			name:       "Codec parameters ignored",
			registered: []string{"video/mp4"},
			query:      `video/mp4; codecs="avc1.42E01E, mp4a.40.2"`,
			want:       true,
		},
		{
			name:       "Surrounding whitespace ignored",
			registered: []string{"video/webm"},
			query:      "  video/webm ",
			want:       true,
		},
		{
			name:       "Unregistered type",
			registered: []string{"video/mp4"},
			query:      "application/x-mpegURL",
			want:       false,
		},
		{
			name:  "Empty registry",
			query: "video/mp4",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(zap.NewNop())
			for _, mime := range tt.registered {
				r.RegisterType(mime)
			}

			if got := r.IsTypeSupported(tt.query); got != tt.want {
				t.Errorf("IsTypeSupported(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
