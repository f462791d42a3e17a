package chat

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/vastu-shakti/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ChatRepository interface {
	Append(ctx context.Context, messages ...*model.ChatMessageEntity) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*model.ChatMessageEntity, error)
}

func NewChatRepository(conn *sqlx.DB) ChatRepository {
	return &SQL{conn: conn}
}

const (
	insertChatMessageQuery = `INSERT INTO chat_messages (session_id, message, is_bot, intent, confidence, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	listBySessionQuery     = `SELECT id, session_id, message, is_bot, intent, confidence, created_at
FROM chat_messages WHERE session_id = ? ORDER BY created_at ASC, id ASC LIMIT ?`
)

// Append stores a user/bot exchange atomically so a transcript never holds half a turn.
func (s *SQL) Append(ctx context.Context, messages ...*model.ChatMessageEntity) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, m := range messages {
		res, err := tx.ExecContext(ctx, insertChatMessageQuery, m.SessionID, m.Message, m.IsBot, m.Intent, m.Confidence, m.CreatedAt)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		m.ID = uint64(id)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *SQL) ListBySession(ctx context.Context, sessionID string, limit int) ([]*model.ChatMessageEntity, error) {
	items := make([]*model.ChatMessageEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listBySessionQuery, sessionID, limit); err != nil {
		return nil, err
	}
	return items, nil
}
