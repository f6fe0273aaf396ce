package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 2000
	cfg.PollInterval = 5 * time.Millisecond
	return cfg
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	_, err := NewClient(cfg, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateText_Success(t *testing.T) {
	var gotBody generateContentRequest
	var gotPath string
	var gotKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "Here is your "},
					{"text": "portfolio summary."},
				}}},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	resp, err := client.GenerateText(context.Background(), TextRequest{
		Prompt:            "summarize the portfolio",
		SystemInstruction: "You are PamOut, the ABADA assistant.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Here is your portfolio summary.", resp.Text)
	assert.Equal(t, "gemini-3-pro-preview", resp.Model)
	assert.Contains(t, gotPath, "models/gemini-3-pro-preview:generateContent")
	assert.Equal(t, "test-key", gotKey)

	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "summarize the portfolio", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.SystemInstruction)
	assert.Equal(t, "You are PamOut, the ABADA assistant.", gotBody.SystemInstruction.Parts[0].Text)
	assert.InDelta(t, 0.7, gotBody.GenerationConfig.Temperature, 0.001)
	assert.InDelta(t, 0.95, gotBody.GenerationConfig.TopP, 0.001)
	assert.Equal(t, 40, gotBody.GenerationConfig.TopK)
}

func TestGenerateText_NoSystemInstructionOmitted(t *testing.T) {
	var gotBody generateContentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "ok"}}}},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), TextRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Nil(t, gotBody.SystemInstruction)
}

func TestGenerateText_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), TextRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestGenerateText_UpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), TextRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGenerateText_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.TimeoutMs = 20

	client, err := NewClient(cfg, nil)
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), TextRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGenerateText_ObserverRecordsOutcome(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "ok"}}}},
			},
		})
	}))
	defer server.Close()

	var sb strings.Builder
	client, err := NewClient(testConfig(server.URL), NewLogObserver(&sb))
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), TextRequest{Prompt: "hi"})
	require.NoError(t, err)

	line := sb.String()
	assert.Contains(t, line, "genai_call kind=text")
	assert.Contains(t, line, "model=gemini-3-pro-preview")
	assert.Contains(t, line, "status=ok")
}

func TestGenerateVideo_PollsUntilDone(t *testing.T) {
	var polls atomic.Int32

	mux := http.NewServeMux()
	var serverURL string

	mux.HandleFunc("POST /models/veo-3.1-fast-generate-preview:predictLongRunning", func(w http.ResponseWriter, r *http.Request) {
		var body predictLongRunningRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Instances, 1)
		assert.Equal(t, "a rocket launch", body.Instances[0].Prompt)
		assert.Equal(t, "16:9", body.Parameters.AspectRatio)
		assert.Equal(t, "720p", body.Parameters.Resolution)
		assert.Equal(t, 1, body.Parameters.SampleCount)

		json.NewEncoder(w).Encode(map[string]any{"name": "operations/abc123", "done": false})
	})
	mux.HandleFunc("GET /operations/abc123", func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) < 3 {
			json.NewEncoder(w).Encode(map[string]any{"name": "operations/abc123", "done": false})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"name": "operations/abc123",
			"done": true,
			"response": map[string]any{
				"generatedVideos": []map[string]any{
					{"video": map[string]any{"uri": serverURL + "/files/video-1", "mimeType": "video/mp4"}},
				},
			},
		})
	})
	mux.HandleFunc("GET /files/video-1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "fake-video-bytes")
	})

	server := httptest.NewServer(mux)
	defer server.Close()
	serverURL = server.URL

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	resp, err := client.GenerateVideo(context.Background(), VideoRequest{Prompt: "a rocket launch"})
	require.NoError(t, err)

	assert.Equal(t, []byte("fake-video-bytes"), resp.Data)
	assert.Equal(t, "video/mp4", resp.MIMEType)
	assert.Equal(t, int32(3), polls.Load())
}

func TestGenerateVideo_SendsReferenceImage(t *testing.T) {
	var gotBody predictLongRunningRequest

	mux := http.NewServeMux()
	var serverURL string
	mux.HandleFunc("POST /models/veo-3.1-fast-generate-preview:predictLongRunning", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"name": "operations/img",
			"done": true,
			"response": map[string]any{
				"generatedVideos": []map[string]any{
					{"video": map[string]any{"uri": serverURL + "/files/v"}},
				},
			},
		})
	})
	mux.HandleFunc("GET /files/v", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "v")
	})

	server := httptest.NewServer(mux)
	defer server.Close()
	serverURL = server.URL

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	resp, err := client.GenerateVideo(context.Background(), VideoRequest{
		Prompt:        "animate this",
		ImageBytes:    []byte{0x89, 0x50, 0x4e, 0x47},
		ImageMIMEType: "image/png",
		AspectRatio:   "9:16",
	})
	require.NoError(t, err)
	assert.Equal(t, "video/mp4", resp.MIMEType)

	require.NotNil(t, gotBody.Instances[0].Image)
	assert.Equal(t, "iVBORw==", gotBody.Instances[0].Image.BytesBase64Encoded)
	assert.Equal(t, "image/png", gotBody.Instances[0].Image.MIMEType)
	assert.Equal(t, "9:16", gotBody.Parameters.AspectRatio)
}

func TestGenerateVideo_RejectsUnknownAspectRatio(t *testing.T) {
	client, err := NewClient(testConfig("http://unused"), nil)
	require.NoError(t, err)

	_, err = client.GenerateVideo(context.Background(), VideoRequest{
		Prompt:      "x",
		AspectRatio: "4:3",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aspect ratio")
}

func TestGenerateVideo_CancelBetweenPolls(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /models/veo-3.1-fast-generate-preview:predictLongRunning", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"name": "operations/slow", "done": false})
	})
	mux.HandleFunc("GET /operations/slow", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"name": "operations/slow", "done": false})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.PollInterval = 50 * time.Millisecond
	cfg.TimeoutMs = 60000

	client, err := NewClient(cfg, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = client.GenerateVideo(ctx, VideoRequest{Prompt: "never finishes"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateVideo_MissingEntityMeansBadKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Requested entity was not found."}}`, http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	_, err = client.GenerateVideo(context.Background(), VideoRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestGenerateVideo_OperationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"name":  "operations/bad",
			"done":  true,
			"error": map[string]any{"message": "safety block"},
		})
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	_, err = client.GenerateVideo(context.Background(), VideoRequest{Prompt: "x"})
	require.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "safety block")
}
