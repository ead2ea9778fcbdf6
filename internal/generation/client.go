// Package generation talks to the text-generation service. A call either
// yields a complete GeneratedMessage or fails; it never retries and never
// returns partial content.
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/prompt"
)

type Client struct {
	LLM llms.Model
	now func() time.Time
}

func NewClient(llm llms.Model) *Client {
	return &Client{LLM: llm, now: time.Now}
}

// WithClock returns a copy of the client that stamps messages using now.
func (c *Client) WithClock(now func() time.Time) *Client {
	return &Client{LLM: c.LLM, now: now}
}

type emailPayload struct {
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

// Generate sends req to the model and validates the structured reply.
func (c *Client) Generate(ctx context.Context, req prompt.GenerationRequest) (entity.GeneratedMessage, error) {
	msgs := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, req.System),
		llms.TextParts(schema.ChatMessageTypeHuman, req.User),
	}
	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.StructuredOutput {
		opts = append(opts, llms.WithJSONMode())
	}

	resp, err := c.LLM.GenerateContent(ctx, msgs, opts...)
	if err != nil {
		return entity.GeneratedMessage{}, &Error{Kind: KindTransportError, MessageKind: req.Kind, Err: err}
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return entity.GeneratedMessage{}, &Error{Kind: KindEmptyResponse, MessageKind: req.Kind}
	}

	subject, body, err := parseEmail(resp.Choices[0].Content)
	if err != nil {
		return entity.GeneratedMessage{}, &Error{Kind: KindMalformedResponse, MessageKind: req.Kind, Err: err}
	}

	now := c.now()
	msg := entity.GeneratedMessage{
		Type:        req.Kind,
		Subject:     subject,
		Body:        body,
		GeneratedAt: now,
	}
	if req.Kind.IsFollowUp() {
		days := req.SendAfterDays
		sendDate := now.AddDate(0, 0, days)
		msg.SendAfterDays = &days
		msg.SuggestedSendDate = &sendDate
	}
	return msg, nil
}

// parseEmail accepts exactly one JSON object holding exactly the subject and
// body string fields, both non-blank.
func parseEmail(content string) (string, string, error) {
	if !strings.HasPrefix(strings.TrimSpace(content), "{") {
		return "", "", errors.New("response is not a JSON object")
	}

	dec := json.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()

	var p emailPayload
	if err := dec.Decode(&p); err != nil {
		return "", "", fmt.Errorf("decode email object: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return "", "", errors.New("unexpected data after email object")
	}
	if p.Subject == nil || strings.TrimSpace(*p.Subject) == "" {
		return "", "", errors.New(`missing "subject"`)
	}
	if p.Body == nil || strings.TrimSpace(*p.Body) == "" {
		return "", "", errors.New(`missing "body"`)
	}
	return *p.Subject, *p.Body, nil
}
