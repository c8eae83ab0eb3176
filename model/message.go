package model

import "time"

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is one turn in the setup conversation. The sequence is
// append-only; rows are never mutated after creation.
type ChatMessage struct {
	ID        string      `json:"id"`
	SessionID string      `json:"session_id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Action    *AIAction   `json:"action,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
