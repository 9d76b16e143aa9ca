package generativeAI

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Message is one role-tagged entry in a chat-completion request. Content is
// either a plain string or a []ContentPart for multimodal requests.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one piece of a multimodal message.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageRef `json:"image_url,omitempty"`
}

// ImageRef points at a remotely hosted image.
type ImageRef struct {
	URL string `json:"url"`
}

// Completer is the wire contract this service requires from a
// chat-completion provider: role-tagged messages in, the first choice's
// text out, verbatim.
type Completer interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}

// ChatClient talks to an OpenAI-compatible chat-completions endpoint. The
// provider is not standardized here; any endpoint conforming to that shape
// works (Groq, OpenAI, ...).
type ChatClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Completer = (*ChatClient)(nil)

// NewChatClient creates a chat-completion client with an explicit request
// timeout. Repeated calls are not idempotent and responses are not cached.
func NewChatClient(baseURL, apiKey string, timeout time.Duration) *ChatClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChatClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Complete sends the messages to the configured model and returns the first
// choice's content.
func (c *ChatClient) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	reqBody := map[string]any{
		"model":    model,
		"messages": messages,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat completion api error: status=%d body=%s", resp.StatusCode, string(bodyBytes))
	}

	var completionResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&completionResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(completionResp.Choices) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	return completionResp.Choices[0].Message.Content, nil
}
