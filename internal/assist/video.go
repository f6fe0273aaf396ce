package assist

import (
	"context"
	"errors"

	"github.com/saintgo7/web-abada-pamout/internal/genai"
)

// ErrGenerationInFlight indicates a video generation is already running
// for this session. Generations are serialized, not queued.
var ErrGenerationInFlight = errors.New("video generation already in progress")

// VideoService runs long-running video generations, one at a time.
type VideoService struct {
	client genai.Client

	busy chan struct{}
}

// NewVideoService wires a VideoService to a generative client.
func NewVideoService(client genai.Client) *VideoService {
	return &VideoService{
		client: client,
		busy:   make(chan struct{}, 1),
	}
}

// InFlight reports whether a generation is currently running.
func (s *VideoService) InFlight() bool {
	select {
	case s.busy <- struct{}{}:
		<-s.busy
		return false
	default:
		return true
	}
}

// Generate produces a video for the request, blocking until the
// upstream operation completes or ctx is canceled. A second call while
// one is running fails fast with ErrGenerationInFlight.
func (s *VideoService) Generate(ctx context.Context, req genai.VideoRequest) (*genai.VideoResponse, error) {
	if s.client == nil {
		return nil, genai.ErrMissingAPIKey
	}

	select {
	case s.busy <- struct{}{}:
	default:
		return nil, ErrGenerationInFlight
	}
	defer func() { <-s.busy }()

	return s.client.GenerateVideo(ctx, req)
}
