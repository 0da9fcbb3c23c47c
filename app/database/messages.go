package database

import (
	"database/sql"
	"fmt"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// GetMessagesForUser returns messages where the user is sender or recipient,
// newest first.
func GetMessagesForUser(db *sql.DB, userID string, limit, offset int) ([]*models.Message, error) {
	query := `
		SELECT m.id, m.plantel_id, m.sender_id, m.recipient_id, m.subject, m.body,
		       m.is_read, m.created_at,
		       s.first_name, s.last_name, r.first_name, r.last_name
		FROM messages m
		JOIN users s ON s.id = m.sender_id
		JOIN users r ON r.id = m.recipient_id
		WHERE m.sender_id = $1 OR m.recipient_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		m := &models.Message{}
		var plantelID sql.NullString
		var sender, recipient models.User
		err := rows.Scan(&m.ID, &plantelID, &m.SenderID, &m.RecipientID, &m.Subject, &m.Body,
			&m.IsRead, &m.CreatedAt,
			&sender.FirstName, &sender.LastName, &recipient.FirstName, &recipient.LastName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if plantelID.Valid {
			m.PlantelID = &plantelID.String
		}
		sender.ID = m.SenderID
		recipient.ID = m.RecipientID
		m.Sender = &sender
		m.Recipient = &recipient
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func CreateMessage(db *sql.DB, m *models.Message) error {
	query := `
		INSERT INTO messages (plantel_id, sender_id, recipient_id, subject, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at
	`
	return db.QueryRow(query, m.PlantelID, m.SenderID, m.RecipientID, m.Subject, m.Body).
		Scan(&m.ID, &m.IsRead, &m.CreatedAt)
}

// MarkMessageRead flags a message as read; only the recipient may do so.
func MarkMessageRead(db *sql.DB, messageID, recipientID string) error {
	result, err := db.Exec(
		`UPDATE messages SET is_read = true WHERE id = $1 AND recipient_id = $2`,
		messageID, recipientID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return &models.NotFoundError{Entity: "message", ID: messageID}
	}
	return nil
}

// CountUnreadMessages returns the user's unread message count.
func CountUnreadMessages(db *sql.DB, userID string) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND is_read = false`,
		userID,
	).Scan(&count)
	return count, err
}
