package types

import "fmt"

// ChatTurn is one exchange in a chat session's history.
type ChatTurn struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// ChatRequest carries the user's message. SessionID is optional; a new
// session is created when it is empty.
type ChatRequest struct {
	UserInput string `json:"user_input"`
	SessionID string `json:"session_id,omitempty"`
}

// Validate checks the chat input.
func (c ChatRequest) Validate() error {
	if c.UserInput == "" {
		return fmt.Errorf("%w: user input is required", ErrValidation)
	}
	return nil
}

// ChatMetadata records provenance of a generated reply.
type ChatMetadata struct {
	Source string `json:"source"`
	Model  string `json:"model"`
}

// ChatResponse is the reply payload, echoing the input and session ID so
// clients can continue the conversation.
type ChatResponse struct {
	UserInput   string       `json:"user_input"`
	BotResponse string       `json:"bot_response"`
	Metadata    ChatMetadata `json:"metadata"`
	SessionID   string       `json:"session_id"`
}
