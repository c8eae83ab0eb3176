package dao

import (
	"database/sql"
	"encoding/json"

	"storesetup-backend/model"
)

type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// CreateMessage appends one turn. The action rides along as a JSON
// metadata column; messages are never updated afterwards.
func (r *MessageRepository) CreateMessage(msg *model.ChatMessage) error {
	var actionJSON sql.NullString
	if msg.Action != nil && !msg.Action.IsNone() {
		encoded, err := json.Marshal(msg.Action)
		if err != nil {
			return err
		}
		actionJSON = sql.NullString{String: string(encoded), Valid: true}
	}
	query := `INSERT INTO messages (id, session_id, role, content, action, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, msg.ID, msg.SessionID, msg.Role, msg.Content, actionJSON, msg.CreatedAt)
	return err
}

// GetBySessionID returns the session's turns in insertion order. The
// id tie-breaker keeps rows sharing a created_at second in order, since
// ULIDs sort by creation time.
func (r *MessageRepository) GetBySessionID(sessionID string) ([]model.ChatMessage, error) {
	query := `SELECT id, session_id, role, content, action, created_at FROM messages WHERE session_id = ? ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []model.ChatMessage
	for rows.Next() {
		var msg model.ChatMessage
		var actionJSON sql.NullString
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &actionJSON, &msg.CreatedAt); err != nil {
			return nil, err
		}
		if actionJSON.Valid {
			var action model.AIAction
			if err := json.Unmarshal([]byte(actionJSON.String), &action); err == nil {
				msg.Action = &action
			}
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}
