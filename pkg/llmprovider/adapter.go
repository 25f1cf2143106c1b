package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"personal-task-management/pkg/gemini"
	"personal-task-management/pkg/qwen"
)

const (
	providerGemini   = "gemini"
	providerQwen     = "qwen"
	providerDeepSeek = "deepseek"
	mimeJSON         = "application/json"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          toGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	if req.JSON {
		geminiReq.ResponseMIMEType = mimeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		if errors.Is(err, gemini.ErrRateLimited) {
			err = ErrProviderRateLimited
		}
		return nil, &ProviderError{Provider: providerGemini, Err: err}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return &Response{
		Content:      fromGeminiContent(resp.Content),
		ProviderName: providerGemini,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return providerGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func (a *GeminiAdapter) String() string {
	return fmt.Sprintf("%s/%s", a.Name(), a.Model())
}

func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func toGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toGeminiContent(&msgs[i])
	}
	return contents
}

func fromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider. It also serves
// DeepSeek, which speaks the same protocol; name tells them apart.
type QwenAdapter struct {
	client qwen.IQwen
	name   string
}

// NewQwenAdapter creates an adapter reporting itself as name.
func NewQwenAdapter(client qwen.IQwen, name string) *QwenAdapter {
	return &QwenAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &qwen.Request{
		SystemInstruction: toQwenContent(req.SystemInstruction),
		Messages:          toQwenContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONObject:        req.JSON,
	})
	if err != nil {
		if errors.Is(err, qwen.ErrRateLimited) {
			err = ErrProviderRateLimited
		}
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return &Response{
		Content:      fromQwenContent(resp.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

func (a *QwenAdapter) Name() string  { return a.name }
func (a *QwenAdapter) Model() string { return a.client.Model() }

func (a *QwenAdapter) String() string {
	return fmt.Sprintf("%s/%s", a.Name(), a.Model())
}

func toQwenContent(msg *Message) *qwen.Content {
	if msg == nil {
		return nil
	}
	parts := make([]qwen.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = qwen.Part{Text: p.Text}
	}
	return &qwen.Content{Role: msg.Role, Parts: parts}
}

func toQwenContents(msgs []Message) []qwen.Content {
	contents := make([]qwen.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toQwenContent(&msgs[i])
	}
	return contents
}

func fromQwenContent(content qwen.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}
