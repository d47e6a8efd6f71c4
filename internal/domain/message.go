package domain

import "time"

type MessageType string

const (
	MessageTypeGeneral MessageType = "general"
	MessageTypeRequest MessageType = "request"
	MessageTypeSystem  MessageType = "system"
)

type Message struct {
	ID         int32       `json:"id"`
	FromUserID int32       `json:"from_user_id"`
	ToUserID   *int32      `json:"to_user_id,omitempty"` // nil means addressed to the admin team
	RequestID  *int32      `json:"request_id,omitempty"`
	Content    string      `json:"content"`
	IsRead     bool        `json:"is_read"`
	Type       MessageType `json:"message_type"`
	CreatedOn  time.Time   `json:"created_on"`
}
