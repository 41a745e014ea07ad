package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
)

// CreateConversation inserts a new conversation row.
func (s *Store) CreateConversation(ctx context.Context, conv model.Conversation) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversaciones (id, titulo, creada_en, actualizada_en) VALUES (?, ?, ?, ?)`,
		conv.ID, conv.Title, conv.CreatedAt.Unix(), conv.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}
	return nil
}

// GetConversation fetches one conversation by id.
func (s *Store) GetConversation(ctx context.Context, id string) (model.Conversation, error) {
	var (
		conv    model.Conversation
		created int64
		updated int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, titulo, creada_en, actualizada_en FROM conversaciones WHERE id = ?`, id).
		Scan(&conv.ID, &conv.Title, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Conversation{}, store.ErrNotFound
	}
	if err != nil {
		return model.Conversation{}, fmt.Errorf("failed to get conversation: %w", err)
	}
	conv.CreatedAt = time.Unix(created, 0)
	conv.UpdatedAt = time.Unix(updated, 0)
	return conv, nil
}

// ListConversations returns conversations, most recently updated first.
func (s *Store) ListConversations(ctx context.Context) ([]model.Conversation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, titulo, creada_en, actualizada_en FROM conversaciones ORDER BY actualizada_en DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var convs []model.Conversation
	for rows.Next() {
		var (
			conv    model.Conversation
			created int64
			updated int64
		)
		if err := rows.Scan(&conv.ID, &conv.Title, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conv.CreatedAt = time.Unix(created, 0)
		conv.UpdatedAt = time.Unix(updated, 0)
		convs = append(convs, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversations: %w", err)
	}
	return convs, nil
}

// DeleteConversation removes the conversation; its messages cascade.
func (s *Store) DeleteConversation(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM conversaciones WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return requireRow(res)
}

// AppendMessage persists a chat message and bumps the conversation's
// updated timestamp.
func (s *Store) AppendMessage(ctx context.Context, msg model.Message) (int64, error) {
	now := msg.CreatedAt
	if now.IsZero() {
		now = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO mensajes (conversacion_id, rol, contenido, creado_en) VALUES (?, ?, ?, ?)`,
		msg.ConversationID, msg.Role, msg.Content, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to insert message: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE conversaciones SET actualizada_en = ? WHERE id = ?`,
		now.Unix(), msg.ConversationID); err != nil {
		return 0, fmt.Errorf("failed to touch conversation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read message id: %w", err)
	}
	return id, nil
}

// ListMessages returns a conversation's messages in insertion order.
func (s *Store) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, conversacion_id, rol, contenido, creado_en FROM mensajes
		 WHERE conversacion_id = ? ORDER BY id`,
		conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var (
			m       model.Message
			created int64
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &created); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.CreatedAt = time.Unix(created, 0)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return msgs, nil
}
