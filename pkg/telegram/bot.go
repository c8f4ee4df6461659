package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"
)

// MaxMessageLength is Telegram's limit on a single text message, in UTF-8 characters.
const MaxMessageLength = 4096

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	if err := b.call(ctx, "setWebhook", map[string]string{"url": webhookURL}); err != nil {
		return fmt.Errorf("telegram setWebhook: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat. Long texts are split.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	for _, chunk := range SplitMessage(text, MaxMessageLength) {
		payload := SendMessageRequest{ChatID: chatID, Text: chunk, ParseMode: parseMode}
		if err := b.call(ctx, "sendMessage", payload); err != nil {
			return fmt.Errorf("telegram sendMessage: %w", err)
		}
	}
	return nil
}

// SendChatAction shows a transient status such as "typing" in the chat.
func (b *Bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	if err := b.call(ctx, "sendChatAction", ChatActionRequest{ChatID: chatID, Action: action}); err != nil {
		return fmt.Errorf("telegram sendChatAction: %w", err)
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("api error %d: %s", resp.StatusCode, apiResp.Description)
	}
	return nil
}

// SplitMessage cuts text into chunks of at most limit runes, preferring newline boundaries.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
