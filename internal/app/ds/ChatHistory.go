package ds

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatHistory is one turn of a conversation. A session is the implicit group
// of rows sharing (user_id, session_id); it has no row of its own.
type ChatHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Role      string    `gorm:"type:varchar(10);not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	SessionID string    `gorm:"type:varchar(36);index;not null" json:"session_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// SessionSummary is the derived per-session row returned by the aggregated
// sessions query.
type SessionSummary struct {
	SessionID       string    `json:"session_id"`
	Title           string    `json:"title"`
	LastMessageTime time.Time `json:"last_message_time"`
	MessageCount    int       `json:"message_count"`
}

// DefaultSessionTitle is used when a session has no user-authored turn yet.
const DefaultSessionTitle = "New conversation"

// SessionTitle derives a session title from the first user message: the first
// 30 runes plus an ellipsis when longer, the default title when empty.
func SessionTitle(firstMessage string) string {
	if firstMessage == "" {
		return DefaultSessionTitle
	}
	runes := []rune(firstMessage)
	if len(runes) > 30 {
		return string(runes[:30]) + "..."
	}
	return firstMessage
}
