package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"focus-dashboard/pkg/deepseek"
	"focus-dashboard/pkg/gemini"
	"focus-dashboard/pkg/qwen"
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
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	if req.ResponseFormat != nil {
		geminiReq.ResponseMIMEType = req.ResponseFormat.MIMEType
		geminiReq.ResponseSchema = req.ResponseFormat.Schema
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		if errors.Is(err, gemini.ErrDecodeResponse) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return nil, err
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	if out.Text() == "" {
		return nil, ErrEmptyResponse
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Messages:    convertToDeepSeekMessages(req.SystemInstruction, req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	// OpenAI-compatible APIs only know "json_object"; the schema travels in the prompt.
	if req.ResponseFormat != nil && req.ResponseFormat.MIMEType == MIMETypeJSON {
		dsReq.ResponseFormat = &deepseek.ResponseFormat{Type: deepseek.ResponseFormatJSON}
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		if errors.Is(err, deepseek.ErrDecodeResponse) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: resp.Choices[0].Message.Content}},
		},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qReq := &qwen.Request{
		SystemInstruction: convertToQwenContent(req.SystemInstruction),
		Messages:          make([]qwen.Content, 0, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.ResponseFormat != nil && req.ResponseFormat.MIMEType == MIMETypeJSON,
	}
	for i := range req.Messages {
		qReq.Messages = append(qReq.Messages, *convertToQwenContent(&req.Messages[i]))
	}

	resp, err := a.client.GenerateContent(ctx, qReq)
	if err != nil {
		if errors.Is(err, qwen.ErrDecodeResponse) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: "assistant"},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}
	for _, p := range resp.Content.Parts {
		out.Content.Parts = append(out.Content.Parts, Part{Text: p.Text})
	}
	if out.Text() == "" {
		return nil, ErrEmptyResponse
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// Helper functions

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, 0, len(msgs))
	for i := range msgs {
		role := msgs[i].Role
		if role == "assistant" {
			role = "model"
		}
		c := convertToGeminiContent(&msgs[i])
		c.Role = role
		contents = append(contents, *c)
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: "assistant", Parts: parts}
}

func convertToDeepSeekMessages(system *Message, msgs []Message) []deepseek.Message {
	out := make([]deepseek.Message, 0, len(msgs)+1)
	if system != nil {
		out = append(out, deepseek.Message{Role: "system", Content: joinParts(system.Parts)})
	}
	for _, m := range msgs {
		out = append(out, deepseek.Message{Role: m.Role, Content: joinParts(m.Parts)})
	}
	return out
}

func convertToQwenContent(msg *Message) *qwen.Content {
	if msg == nil {
		return nil
	}
	parts := make([]qwen.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = qwen.Part{Text: p.Text}
	}
	return &qwen.Content{Role: msg.Role, Parts: parts}
}

func joinParts(parts []Part) string {
	r := Response{Content: Message{Parts: parts}}
	return r.Text()
}
