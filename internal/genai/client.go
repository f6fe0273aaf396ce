package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TextRequest holds the parameters for a text generation call.
type TextRequest struct {
	Prompt            string
	SystemInstruction string
}

// TextResponse holds the result of a text generation call.
type TextResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// VideoRequest holds the parameters for a video generation call. An
// optional reference image is passed as raw bytes plus MIME type.
type VideoRequest struct {
	Prompt        string
	ImageBytes    []byte
	ImageMIMEType string
	AspectRatio   string // "16:9" or "9:16"
}

// VideoResponse holds the finished video asset.
type VideoResponse struct {
	Data      []byte
	MIMEType  string
	Model     string
	LatencyMs int64
}

// Client provides access to the generative backend for text and video.
type Client interface {
	// GenerateText sends a prompt and returns the model's reply in a
	// single round trip.
	GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error)

	// GenerateVideo starts a long-running generation, polls until the
	// operation completes, then downloads the produced asset.
	GenerateVideo(ctx context.Context, req VideoRequest) (*VideoResponse, error)
}

// geminiClient implements Client against the Gemini HTTP API.
type geminiClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured endpoint. It returns
// ErrMissingAPIKey when no key is set so callers can degrade gracefully
// instead of failing on first use.
func NewClient(cfg Config, observer Observer) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}, nil
}

// generateContent request/response bodies, trimmed to the fields used.

type contentPart struct {
	Text string `json:"text,omitempty"`
}

type content struct {
	Parts []contentPart `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

type generateContentRequest struct {
	Contents          []content        `json:"contents"`
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := generateContentRequest{
		Contents: []content{{Parts: []contentPart{{Text: req.Prompt}}}},
		GenerationConfig: generationConfig{
			Temperature: c.cfg.Temperature,
			TopP:        c.cfg.TopP,
			TopK:        c.cfg.TopK,
		},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &content{Parts: []contentPart{{Text: req.SystemInstruction}}}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.Endpoint, c.cfg.TextModel)

	var resp generateContentResponse
	if err := c.postJSON(ctx, url, body, &resp); err != nil {
		return nil, c.failText(start, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, c.failText(start, ErrEmptyResult)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Kind:      CallText,
		Model:     c.cfg.TextModel,
		LatencyMs: latency,
		Success:   true,
	})
	return &TextResponse{
		Text:      sb.String(),
		Model:     c.cfg.TextModel,
		LatencyMs: latency,
	}, nil
}

func (c *geminiClient) failText(start time.Time, err error) error {
	err = c.mapError(err)
	c.observer.OnCallComplete(CallEvent{
		Kind:      CallText,
		Model:     c.cfg.TextModel,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return err
}

// predictLongRunning request/response bodies for video generation.

type videoInstance struct {
	Prompt string      `json:"prompt"`
	Image  *videoImage `json:"image,omitempty"`
}

type videoImage struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MIMEType           string `json:"mimeType"`
}

type videoParameters struct {
	AspectRatio string `json:"aspectRatio"`
	Resolution  string `json:"resolution"`
	SampleCount int    `json:"sampleCount"`
}

type predictLongRunningRequest struct {
	Instances  []videoInstance `json:"instances"`
	Parameters videoParameters `json:"parameters"`
}

type operationState struct {
	Name  string `json:"name"`
	Done  bool   `json:"done"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Response struct {
		GeneratedVideos []struct {
			Video struct {
				URI      string `json:"uri"`
				MIMEType string `json:"mimeType"`
			} `json:"video"`
		} `json:"generatedVideos"`
	} `json:"response"`
}

func (c *geminiClient) GenerateVideo(ctx context.Context, req VideoRequest) (*VideoResponse, error) {
	start := time.Now()

	aspect := req.AspectRatio
	if aspect == "" {
		aspect = "16:9"
	}
	if aspect != "16:9" && aspect != "9:16" {
		return nil, c.failVideo(start, fmt.Errorf("unsupported aspect ratio %q", req.AspectRatio))
	}

	instance := videoInstance{Prompt: req.Prompt}
	if len(req.ImageBytes) > 0 {
		instance.Image = &videoImage{
			BytesBase64Encoded: base64.StdEncoding.EncodeToString(req.ImageBytes),
			MIMEType:           req.ImageMIMEType,
		}
	}

	body := predictLongRunningRequest{
		Instances: []videoInstance{instance},
		Parameters: videoParameters{
			AspectRatio: aspect,
			Resolution:  c.cfg.Resolution,
			SampleCount: 1,
		},
	}

	url := fmt.Sprintf("%s/models/%s:predictLongRunning", c.cfg.Endpoint, c.cfg.VideoModel)

	var op operationState
	if err := c.postJSON(ctx, url, body, &op); err != nil {
		return nil, c.failVideo(start, err)
	}

	op, err := c.awaitOperation(ctx, op)
	if err != nil {
		return nil, c.failVideo(start, err)
	}

	if len(op.Response.GeneratedVideos) == 0 || op.Response.GeneratedVideos[0].Video.URI == "" {
		return nil, c.failVideo(start, ErrEmptyResult)
	}

	asset := op.Response.GeneratedVideos[0].Video
	data, err := c.download(ctx, asset.URI)
	if err != nil {
		return nil, c.failVideo(start, err)
	}

	mime := asset.MIMEType
	if mime == "" {
		mime = "video/mp4"
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Kind:      CallVideo,
		Model:     c.cfg.VideoModel,
		LatencyMs: latency,
		Success:   true,
	})
	return &VideoResponse{
		Data:      data,
		MIMEType:  mime,
		Model:     c.cfg.VideoModel,
		LatencyMs: latency,
	}, nil
}

// awaitOperation polls the operation resource until it reports done.
// Cancellation is honored between polls so a long generation can be
// abandoned cleanly.
func (c *geminiClient) awaitOperation(ctx context.Context, op operationState) (operationState, error) {
	for !op.Done {
		select {
		case <-ctx.Done():
			return op, ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}

		url := fmt.Sprintf("%s/%s", c.cfg.Endpoint, op.Name)
		var next operationState
		if err := c.getJSON(ctx, url, &next); err != nil {
			return op, err
		}
		if next.Name == "" {
			next.Name = op.Name
		}
		op = next
	}

	if op.Error != nil {
		return op, fmt.Errorf("%w: %s", ErrUpstream, op.Error.Message)
	}
	return op, nil
}

func (c *geminiClient) failVideo(start time.Time, err error) error {
	err = c.mapError(err)
	c.observer.OnCallComplete(CallEvent{
		Kind:      CallVideo,
		Model:     c.cfg.VideoModel,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *geminiClient) postJSON(ctx context.Context, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	return c.do(httpReq, out)
}

func (c *geminiClient) getJSON(ctx context.Context, url string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	return c.do(httpReq, out)
}

func (c *geminiClient) do(req *http.Request, out any) error {
	httpResp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *geminiClient) download(ctx context.Context, uri string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		return nil, fmt.Errorf("provider returned status %d: %s", httpResp.StatusCode, string(body))
	}

	return io.ReadAll(httpResp.Body)
}

// mapError normalizes raw transport failures to the package sentinels.
// A missing-entity reply on the video endpoints means the key itself is
// not accepted for that capability.
func (c *geminiClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case strings.Contains(err.Error(), "Requested entity was not found"):
		return ErrInvalidAPIKey
	case strings.Contains(err.Error(), "context deadline exceeded"):
		return ErrTimeout
	}
	return err
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidAPIKey):
		return "invalid_key"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrEmptyResult):
		return "empty"
	default:
		return "upstream"
	}
}
