package llmprovider

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"multilanguage-agent/pkg/deepseek"
	"multilanguage-agent/pkg/gemini"
	"multilanguage-agent/pkg/openai"
	"multilanguage-agent/pkg/qwen"
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
		Messages:    make([]gemini.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{
			Role:  req.SystemInstruction.Role,
			Parts: []gemini.Part{{Text: req.SystemInstruction.Text()}},
		}
	}
	for _, msg := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, gemini.Content{
			Role:  msg.Role,
			Parts: []gemini.Part{{Text: msg.Text()}},
		})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	content := Message{Role: "assistant"}
	for _, p := range resp.Content.Parts {
		content.Parts = append(content.Parts, Part{Text: p.Text})
	}

	out := &Response{
		Content:      content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
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
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
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
	qwenReq := &qwen.Request{
		Messages:    make([]qwen.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		qwenReq.SystemInstruction = &qwen.Content{
			Role:  "system",
			Parts: []qwen.Part{{Text: req.SystemInstruction.Text()}},
		}
	}
	for _, msg := range req.Messages {
		qwenReq.Messages = append(qwenReq.Messages, qwen.Content{
			Role:  msg.Role,
			Parts: []qwen.Part{{Text: msg.Text()}},
		})
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	content := Message{Role: "assistant"}
	for _, p := range resp.Content.Parts {
		content.Parts = append(content.Parts, Part{Text: p.Text})
	}

	out := &Response{
		Content:      content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
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
		Model:       a.client.Model(),
		Messages:    make([]deepseek.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{
			Role:    "system",
			Content: req.SystemInstruction.Text(),
		})
	}
	for _, msg := range req.Messages {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{
			Role:    msg.Role,
			Content: msg.Text(),
		})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("deepseek: no choices in response")
	}

	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: resp.Choices[0].Message.Content}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	for _, c := range resp.Choices {
		out.Messages = append(out.Messages, Message{Role: c.Message.Role, Parts: []Part{{Text: c.Message.Content}}})
	}
	return out, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Messages:    make([]openai.Message, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		oaReq.System = req.SystemInstruction.Text()
	}
	for _, msg := range req.Messages {
		oaReq.Messages = append(oaReq.Messages, openai.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: resp.Content}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GenAIAdapter talks to Gemini through the official google.golang.org/genai SDK
type GenAIAdapter struct {
	client *genai.Client
	model  string
}

// NewGenAIAdapter creates a new GenAI adapter
func NewGenAIAdapter(client *genai.Client, model string) *GenAIAdapter {
	return &GenAIAdapter{client: client, model: model}
}

// GenerateContent implements Provider interface
func (a *GenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if msg.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text(), role))
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != nil {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction.Text(), genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("genai: %w", err)
	}

	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: resp.Text()}}},
		ProviderName: a.Name(),
		ModelName:    a.model,
		Usage:        &Usage{},
	}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GenAIAdapter) Name() string {
	return "genai"
}

// Model returns model name
func (a *GenAIAdapter) Model() string {
	return a.model
}
