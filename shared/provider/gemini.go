package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

var (
	ErrEmptyCompletion = errors.New("generative model returned an empty completion")
	ErrUnknownRole     = errors.New("unknown conversation role")
)

// Role is the speaker of a conversation turn as the rest of the system names it.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// roleTable maps internal roles to the names Gemini expects. roleTableReverse
// is derived from it so both directions always agree.
var roleTable = map[Role]string{
	RoleUser:      string(genai.RoleUser),
	RoleAssistant: string(genai.RoleModel),
}

var roleTableReverse = func() map[string]Role {
	m := make(map[string]Role, len(roleTable))
	for internal, upstream := range roleTable {
		m[upstream] = internal
	}
	return m
}()

// UpstreamRole translates an internal role to Gemini's vocabulary.
func UpstreamRole(r Role) (string, error) {
	upstream, ok := roleTable[r]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, r)
	}
	return upstream, nil
}

// InternalRole translates a Gemini role back to the internal vocabulary.
func InternalRole(upstream string) (Role, error) {
	r, ok := roleTableReverse[upstream]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, upstream)
	}
	return r, nil
}

// Message is one prior turn of a conversation.
type Message struct {
	Role Role
	Text string
}

// GeminiProvider sends single-shot completions to the Gemini API.
type GeminiProvider struct {
	models *genai.Models
	model  string
}

// NewGeminiProvider creates a client bound to apiKey. timeout bounds every
// HTTP exchange with the API; zero means no client-side limit.
func NewGeminiProvider(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{
		models: client.Models,
		model:  model,
	}, nil
}

// Generate sends the system instruction, the prior turns and the new query and
// returns the completion text.
func (p *GeminiProvider) Generate(ctx context.Context, systemPrompt string, history []Message, query string) (string, error) {
	contents, err := BuildContents(history, query)
	if err != nil {
		return "", err
	}

	resp, err := p.models.GenerateContent(ctx, p.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: textContent("", systemPrompt),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}

// BuildContents converts the conversation into Gemini contents, ending with
// the new user query.
func BuildContents(history []Message, query string) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for i, m := range history {
		role, err := UpstreamRole(m.Role)
		if err != nil {
			return nil, fmt.Errorf("history[%d]: %w", i, err)
		}
		contents = append(contents, textContent(role, m.Text))
	}

	return append(contents, textContent(roleTable[RoleUser], query)), nil
}

func textContent(role, text string) *genai.Content {
	return &genai.Content{
		Role:  role,
		Parts: []*genai.Part{{Text: text}},
	}
}
