// Package agent holds the chat-completion client used by the alternate
// diagnosis path: one fixed system instruction plus the user's symptom text,
// reply relayed verbatim.
package agent

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// diagnosisSystemPrompt steers the model toward specialty and facility
// suggestions for the Dakahlia governorate.
const diagnosisSystemPrompt = "أنت مساعد طبي ذكي مخصص لمحافظة الدقهلية. بناءً على الأعراض، اقترح التخصص الطبي المناسب وأقرب وحدة صحية عامة داخل المحافظة."

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4"

// DiagnosisClient is the single call the diagnose boundary needs.
type DiagnosisClient interface {
	Diagnose(ctx context.Context, symptoms string) (string, error)
}

type client struct {
	api   *openai.Client
	model string
}

// NewOpenAIClient constructs a chat-completion backed diagnosis client.
func NewOpenAIClient(apiKey, model string) DiagnosisClient {
	if model == "" {
		model = DefaultModel
	}
	return &client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// Diagnose sends the symptom text as the single user turn and returns the
// completion text verbatim. There is no retry policy: any failure belongs to
// the caller's generic error path.
func (c *client) Diagnose(ctx context.Context, symptoms string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: diagnosisSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: symptoms},
		},
		Temperature: 0.5,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
