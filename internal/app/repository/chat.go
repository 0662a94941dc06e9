package repository

import (
	"time"

	"github.com/lucian886/healthManagement/internal/app/ds"
)

func (r *Repository) CreateChatTurn(turn *ds.ChatHistory) error {
	return r.db.Create(turn).Error
}

// ListSessionHistory returns every turn of one session oldest-first.
func (r *Repository) ListSessionHistory(userID uint, sessionID string) ([]ds.ChatHistory, error) {
	var list []ds.ChatHistory
	err := r.db.Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

// DeleteSession removes every turn matching (user, session) in one statement;
// a session id with no rows is a no-op.
func (r *Repository) DeleteSession(userID uint, sessionID string) error {
	return r.db.Where("user_id = ? AND session_id = ?", userID, sessionID).
		Delete(&ds.ChatHistory{}).Error
}

// ListSessionSummaries aggregates the user's sessions in a single GROUP BY
// query instead of one query per session.
func (r *Repository) ListSessionSummaries(userID uint) ([]ds.SessionSummary, error) {
	var raw []struct {
		SessionID       string    `gorm:"column:session_id"`
		FirstMessage    string    `gorm:"column:first_message"`
		LastMessageTime time.Time `gorm:"column:last_message_time"`
		MessageCount    int       `gorm:"column:message_count"`
	}
	err := r.db.Raw(`
		SELECT c.session_id,
		       (SELECT c2.content
		        FROM chat_histories c2
		        WHERE c2.user_id = c.user_id
		          AND c2.session_id = c.session_id
		          AND c2.role = 'user'
		        ORDER BY c2.created_at ASC, c2.id ASC
		        LIMIT 1) AS first_message,
		       MAX(c.created_at) AS last_message_time,
		       COUNT(*) AS message_count
		FROM chat_histories c
		WHERE c.user_id = ?
		GROUP BY c.user_id, c.session_id
		ORDER BY last_message_time DESC`, userID).Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]ds.SessionSummary, 0, len(raw))
	for _, row := range raw {
		summaries = append(summaries, ds.SessionSummary{
			SessionID:       row.SessionID,
			Title:           ds.SessionTitle(row.FirstMessage),
			LastMessageTime: row.LastMessageTime,
			MessageCount:    row.MessageCount,
		})
	}
	return summaries, nil
}
