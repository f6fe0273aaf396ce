// Package assist layers the PamOut assistant behavior on top of the raw
// generative client: persona instructions, language handling, and the
// single-flight policy for video generation.
package assist

import (
	"context"
	"errors"
	"fmt"

	"github.com/saintgo7/web-abada-pamout/internal/genai"
)

// defaultPersona is the system instruction used when no tool context is
// active.
const defaultPersona = "You are PamOut, the proprietary AI engine of ABADA Inc., " +
	"a premier software outsourcing specialist company. Your role is to assist " +
	"clients and developers in architecting, estimating, and building high-quality " +
	"software solutions. Provide technical, precise, and professional insights " +
	"tailored to software development outsourcing."

// fallbackReplies is shown in place of an answer when the upstream call
// fails for any reason other than a missing key.
var fallbackReplies = map[string]string{
	"en": "I encountered an error processing your request.",
	"ko": "요청 처리 중 오류가 발생했습니다.",
}

// ChatRequest is one user turn addressed to the assistant.
type ChatRequest struct {
	Prompt string
	Lang   string // "en" or "ko"
	Tool   string // optional tool context, e.g. "ppms"
}

// ChatReply is the assistant's answer. Fallback is true when the text is
// a canned apology rather than a model response.
type ChatReply struct {
	Text     string
	Fallback bool
}

// ChatService answers user prompts through the generative text model.
type ChatService struct {
	client genai.Client
}

// NewChatService wires a ChatService to a generative client.
func NewChatService(client genai.Client) *ChatService {
	return &ChatService{client: client}
}

// Send runs one round trip with the assistant. A missing or rejected
// API key is returned as an error so the caller can prompt for
// configuration; any other upstream failure is absorbed into a
// language-appropriate fallback reply.
func (s *ChatService) Send(ctx context.Context, req ChatRequest) (ChatReply, error) {
	if s.client == nil {
		return ChatReply{}, genai.ErrMissingAPIKey
	}

	lang := req.Lang
	if lang != "ko" {
		lang = "en"
	}

	instruction := defaultPersona
	if req.Tool != "" {
		instruction = fmt.Sprintf(
			"You are PamOut by ABADA Inc. Acting as the %q tool on PamOut.com. "+
				"Preferred language: %s. Provide professional, highly detailed, and "+
				"accurate responses. Respond in the requested language (%s). Do not use emojis.",
			req.Tool, lang, lang)
	}

	resp, err := s.client.GenerateText(ctx, genai.TextRequest{
		Prompt:            req.Prompt,
		SystemInstruction: instruction,
	})
	if err != nil {
		if errors.Is(err, genai.ErrMissingAPIKey) || errors.Is(err, genai.ErrInvalidAPIKey) {
			return ChatReply{}, err
		}
		return ChatReply{Text: fallbackReplies[lang], Fallback: true}, nil
	}

	if resp.Text == "" {
		return ChatReply{Text: "No response received from AI."}, nil
	}
	return ChatReply{Text: resp.Text}, nil
}
