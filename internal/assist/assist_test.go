package assist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saintgo7/web-abada-pamout/internal/genai"
)

// fakeClient scripts the generative backend for service tests.
type fakeClient struct {
	mu sync.Mutex

	textResp *genai.TextResponse
	textErr  error
	lastText genai.TextRequest

	videoResp  *genai.VideoResponse
	videoErr   error
	videoDelay time.Duration
	videoCalls int
}

func (f *fakeClient) GenerateText(ctx context.Context, req genai.TextRequest) (*genai.TextResponse, error) {
	f.mu.Lock()
	f.lastText = req
	f.mu.Unlock()
	if f.textErr != nil {
		return nil, f.textErr
	}
	return f.textResp, nil
}

func (f *fakeClient) GenerateVideo(ctx context.Context, req genai.VideoRequest) (*genai.VideoResponse, error) {
	f.mu.Lock()
	f.videoCalls++
	f.mu.Unlock()
	if f.videoDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.videoDelay):
		}
	}
	if f.videoErr != nil {
		return nil, f.videoErr
	}
	return f.videoResp, nil
}

func TestChatSend_UsesDefaultPersona(t *testing.T) {
	fake := &fakeClient{textResp: &genai.TextResponse{Text: "hello"}}
	svc := NewChatService(fake)

	reply, err := svc.Send(context.Background(), ChatRequest{Prompt: "hi", Lang: "en"})
	require.NoError(t, err)

	assert.Equal(t, "hello", reply.Text)
	assert.False(t, reply.Fallback)
	assert.Contains(t, fake.lastText.SystemInstruction, "proprietary AI engine of ABADA Inc.")
	assert.Equal(t, "hi", fake.lastText.Prompt)
}

func TestChatSend_ToolContextShapesInstruction(t *testing.T) {
	fake := &fakeClient{textResp: &genai.TextResponse{Text: "ok"}}
	svc := NewChatService(fake)

	_, err := svc.Send(context.Background(), ChatRequest{Prompt: "hi", Lang: "ko", Tool: "ppms"})
	require.NoError(t, err)

	assert.Contains(t, fake.lastText.SystemInstruction, `"ppms" tool on PamOut.com`)
	assert.Contains(t, fake.lastText.SystemInstruction, "Preferred language: ko")
	assert.Contains(t, fake.lastText.SystemInstruction, "Do not use emojis")
}

func TestChatSend_UpstreamFailureBecomesFallback(t *testing.T) {
	fake := &fakeClient{textErr: errors.New("boom")}
	svc := NewChatService(fake)

	reply, err := svc.Send(context.Background(), ChatRequest{Prompt: "hi", Lang: "ko"})
	require.NoError(t, err)

	assert.True(t, reply.Fallback)
	assert.Equal(t, "요청 처리 중 오류가 발생했습니다.", reply.Text)

	reply, err = svc.Send(context.Background(), ChatRequest{Prompt: "hi", Lang: "en"})
	require.NoError(t, err)
	assert.Equal(t, "I encountered an error processing your request.", reply.Text)
}

func TestChatSend_KeyErrorsSurface(t *testing.T) {
	svc := NewChatService(nil)
	_, err := svc.Send(context.Background(), ChatRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, genai.ErrMissingAPIKey)

	svc = NewChatService(&fakeClient{textErr: genai.ErrInvalidAPIKey})
	_, err = svc.Send(context.Background(), ChatRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, genai.ErrInvalidAPIKey)
}

func TestChatSend_UnknownLangFallsBackToEnglish(t *testing.T) {
	fake := &fakeClient{textErr: errors.New("boom")}
	svc := NewChatService(fake)

	reply, err := svc.Send(context.Background(), ChatRequest{Prompt: "hi", Lang: "fr"})
	require.NoError(t, err)
	assert.Equal(t, "I encountered an error processing your request.", reply.Text)
}

func TestChatSend_EmptyModelOutput(t *testing.T) {
	fake := &fakeClient{textResp: &genai.TextResponse{Text: ""}}
	svc := NewChatService(fake)

	reply, err := svc.Send(context.Background(), ChatRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "No response received from AI.", reply.Text)
}

func TestVideoGenerate_Passthrough(t *testing.T) {
	fake := &fakeClient{videoResp: &genai.VideoResponse{Data: []byte("v"), MIMEType: "video/mp4"}}
	svc := NewVideoService(fake)

	resp, err := svc.Generate(context.Background(), genai.VideoRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), resp.Data)
	assert.False(t, svc.InFlight())
}

func TestVideoGenerate_SecondCallFailsFast(t *testing.T) {
	fake := &fakeClient{
		videoResp:  &genai.VideoResponse{Data: []byte("v")},
		videoDelay: 100 * time.Millisecond,
	}
	svc := NewVideoService(fake)

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := svc.Generate(context.Background(), genai.VideoRequest{Prompt: "long"})
		done <- err
	}()

	<-started
	// Give the first call time to take the slot.
	require.Eventually(t, svc.InFlight, time.Second, 5*time.Millisecond)

	_, err := svc.Generate(context.Background(), genai.VideoRequest{Prompt: "second"})
	assert.ErrorIs(t, err, ErrGenerationInFlight)

	require.NoError(t, <-done)
	assert.False(t, svc.InFlight())
	assert.Equal(t, 1, fake.videoCalls)
}

func TestVideoGenerate_CancelReleasesSlot(t *testing.T) {
	fake := &fakeClient{
		videoResp:  &genai.VideoResponse{Data: []byte("v")},
		videoDelay: time.Minute,
	}
	svc := NewVideoService(fake)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.Generate(ctx, genai.VideoRequest{Prompt: "x"})
		done <- err
	}()

	require.Eventually(t, svc.InFlight, time.Second, 5*time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.False(t, svc.InFlight())
}

func TestVideoGenerate_NoClient(t *testing.T) {
	svc := NewVideoService(nil)
	_, err := svc.Generate(context.Background(), genai.VideoRequest{Prompt: "x"})
	assert.ErrorIs(t, err, genai.ErrMissingAPIKey)
}
