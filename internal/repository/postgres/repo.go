package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/messaging-service/internal/config"
	"github.com/s21platform/messaging-service/internal/model"
	"github.com/s21platform/messaging-service/internal/pkg/conversation"
)

type key string

const keyConn = key("conn")

type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the transaction bound to ctx when WithTx opened one, the plain
// connection otherwise.
func (r *Repository) Chk(ctx context.Context) querier {
	if tx, ok := ctx.Value(keyConn).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(keyConn).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = cb(context.WithValue(ctx, keyConn, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query := sq.Insert("messages").
		Columns("id", "sender_id", "recipient_id", "group_id", "conversation_key",
			"type", "content", "reply_to", "mentions", "created_at", "updated_at").
		Values(message.ID, message.SenderID, message.RecipientID, message.GroupID, message.ConversationKey,
			message.Type, message.Content, message.ReplyTo, message.Mentions, message.CreatedAt, message.UpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	if len(message.Attachments) == 0 {
		return nil
	}

	attQuery := sq.Insert("message_attachments").
		Columns("message_id", "position", "kind", "url", "filename", "size", "storage_key").
		PlaceholderFormat(sq.Dollar)

	for i, a := range message.Attachments {
		attQuery = attQuery.Values(message.ID, i, a.Kind, a.URL, a.Filename, a.Size, a.StorageKey)
	}

	sqlStr, args, err = attQuery.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to save attachments: %v", err)
	}

	return nil
}

func (r *Repository) GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	query, args, err := sq.Select(
		"id", "sender_id", "recipient_id", "group_id", "conversation_key",
		"type", "content", "original_content", "is_edited", "edited_at",
		"reply_to", "is_deleted", "deleted_at", "mentions", "created_at", "updated_at",
	).
		From("messages").
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: message %s", model.ErrNotFound, messageID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return &message, nil
}

// AddReaction inserts the (user, emoji) pair and reports whether it was
// actually added; a duplicate is a no-op reported as false so callers can
// implement toggle semantics with RemoveReaction.
func (r *Repository) AddReaction(ctx context.Context, messageID uuid.UUID, userID, emoji string) (bool, error) {
	if err := r.checkMessageAlive(ctx, messageID); err != nil {
		return false, err
	}

	query, args, err := sq.Insert("message_reactions").
		Columns("message_id", "user_id", "emoji").
		Values(messageID, userID, emoji).
		Suffix("ON CONFLICT (message_id, user_id, emoji) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to add reaction: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %v", err)
	}

	return affected > 0, nil
}

func (r *Repository) RemoveReaction(ctx context.Context, messageID uuid.UUID, userID, emoji string) error {
	if err := r.checkMessageAlive(ctx, messageID); err != nil {
		return err
	}

	query, args, err := sq.Delete("message_reactions").
		Where(sq.Eq{
			"message_id": messageID,
			"user_id":    userID,
			"emoji":      emoji,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove reaction: %v", err)
	}

	return nil
}

// MarkRead appends a read receipt unless the user already has one. Receipts
// only grow; there is no unread operation.
func (r *Repository) MarkRead(ctx context.Context, messageID uuid.UUID, userID string) (bool, error) {
	if err := r.checkMessageAlive(ctx, messageID); err != nil {
		return false, err
	}

	query, args, err := sq.Insert("message_reads").
		Columns("message_id", "user_id", "read_at").
		Values(messageID, userID, sq.Expr("now()")).
		Suffix("ON CONFLICT (message_id, user_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark message read: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %v", err)
	}

	return affected > 0, nil
}

// EditContent snapshots the original content on the first edit only and
// overwrites the text. Ownership and the edit window are caller policy.
func (r *Repository) EditContent(ctx context.Context, messageID uuid.UUID, newContent string) error {
	query, args, err := sq.Update("messages").
		Set("original_content", sq.Expr("COALESCE(original_content, content)")).
		Set("content", newContent).
		Set("is_edited", true).
		Set("edited_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":         messageID,
			"is_deleted": false,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to edit message: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %v", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: message %s", model.ErrNotFound, messageID)
	}

	return nil
}

// SoftDelete flags the message; replies referencing it are untouched and the
// row is retained. Repeated deletion is a no-op.
func (r *Repository) SoftDelete(ctx context.Context, messageID uuid.UUID) error {
	query, args, err := sq.Update("messages").
		Set("is_deleted", true).
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":         messageID,
			"is_deleted": false,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete message: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %v", err)
	}
	if affected == 0 {
		// already deleted is fine, missing is not
		var exists bool
		existsQuery, existsArgs, _ := sq.Select("COUNT(*) > 0").
			From("messages").
			Where(sq.Eq{"id": messageID}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err = r.Chk(ctx).GetContext(ctx, &exists, existsQuery, existsArgs...); err != nil {
			return fmt.Errorf("failed to check message existence: %v", err)
		}
		if !exists {
			return fmt.Errorf("%w: message %s", model.ErrNotFound, messageID)
		}
	}

	return nil
}

func (r *Repository) GetConversation(ctx context.Context, userA, userB string, page, pageSize int) (*model.MessageList, error) {
	return r.listMessages(ctx, sq.Eq{"m.conversation_key": conversation.Key(userA, userB)}, "", page, pageSize)
}

func (r *Repository) GetGroupMessages(ctx context.Context, groupID string, page, pageSize int) (*model.MessageList, error) {
	return r.listMessages(ctx, sq.Eq{"m.group_id": groupID}, "", page, pageSize)
}

func (r *Repository) SearchConversation(ctx context.Context, userA, userB, text string, page, pageSize int) (*model.MessageList, error) {
	return r.listMessages(ctx, sq.Eq{"m.conversation_key": conversation.Key(userA, userB)}, text, page, pageSize)
}

func (r *Repository) SearchGroup(ctx context.Context, groupID, text string, page, pageSize int) (*model.MessageList, error) {
	return r.listMessages(ctx, sq.Eq{"m.group_id": groupID}, text, page, pageSize)
}

func (r *Repository) listMessages(ctx context.Context, scope sq.Eq, text string, page, pageSize int) (*model.MessageList, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50 // дефолтный лимит
	}

	queryBuilder := sq.Select(
		"m.id", "m.sender_id", "m.recipient_id", "m.group_id", "m.conversation_key",
		"m.type", "m.content", "m.original_content", "m.is_edited", "m.edited_at",
		"m.reply_to", "m.is_deleted", "m.deleted_at", "m.mentions", "m.created_at", "m.updated_at",
		"COALESCE(u.nickname, '') AS sender_nickname",
		"COALESCE(u.avatar_url, '') AS sender_avatar",
		"reply.content AS reply_content",
		"reply.sender_id AS reply_sender_id",
	).
		From("messages m").
		LeftJoin("users u ON u.id = m.sender_id").
		LeftJoin("messages reply ON reply.id = m.reply_to AND reply.is_deleted = FALSE").
		Where(scope).
		Where(sq.Eq{"m.is_deleted": false}).
		OrderBy("m.created_at DESC").
		Offset(uint64(page-1) * uint64(pageSize)).
		Limit(uint64(pageSize))

	if text != "" {
		queryBuilder = queryBuilder.Where(sq.ILike{"m.content": "%" + text + "%"})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	if err = r.loadMessageDetails(ctx, messages); err != nil {
		return nil, err
	}

	return &messages, nil
}

// loadMessageDetails hydrates reactions, read receipts and attachments for
// one page of messages with three IN queries.
func (r *Repository) loadMessageDetails(ctx context.Context, messages model.MessageList) error {
	if len(messages) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(messages))
	index := make(map[uuid.UUID]*model.Message, len(messages))
	for i := range messages {
		ids[i] = messages[i].ID
		index[messages[i].ID] = &messages[i]
	}

	query, args, err := sq.Select("message_id", "user_id", "emoji").
		From("message_reactions").
		Where(sq.Eq{"message_id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	var reactions []model.Reaction
	if err = r.Chk(ctx).SelectContext(ctx, &reactions, query, args...); err != nil {
		return fmt.Errorf("failed to get reactions: %v", err)
	}
	for _, reaction := range reactions {
		if m := index[reaction.MessageID]; m != nil {
			m.Reactions = append(m.Reactions, reaction)
		}
	}

	query, args, err = sq.Select("message_id", "user_id", "read_at").
		From("message_reads").
		Where(sq.Eq{"message_id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	var receipts []model.ReadReceipt
	if err = r.Chk(ctx).SelectContext(ctx, &receipts, query, args...); err != nil {
		return fmt.Errorf("failed to get read receipts: %v", err)
	}
	for _, receipt := range receipts {
		if m := index[receipt.MessageID]; m != nil {
			m.ReadBy = append(m.ReadBy, receipt)
		}
	}

	query, args, err = sq.Select("message_id", "position", "kind", "url", "filename", "size", "storage_key").
		From("message_attachments").
		Where(sq.Eq{"message_id": ids}).
		OrderBy("message_id", "position").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	var attachments []model.Attachment
	if err = r.Chk(ctx).SelectContext(ctx, &attachments, query, args...); err != nil {
		return fmt.Errorf("failed to get attachments: %v", err)
	}
	for _, attachment := range attachments {
		if m := index[attachment.MessageID]; m != nil {
			m.Attachments = append(m.Attachments, attachment)
		}
	}

	return nil
}

func (r *Repository) GetUserConversationSummaries(ctx context.Context, userID string) (*model.ConversationSummaryList, error) {
	unreadSubquery := "(SELECT COUNT(*) FROM messages m2 " +
		"WHERE m2.conversation_key = m.conversation_key " +
		"AND m2.recipient_id = $1 AND m2.sender_id <> $1 " +
		"AND m2.is_deleted = FALSE " +
		"AND NOT EXISTS (SELECT 1 FROM message_reads mr WHERE mr.message_id = m2.id AND mr.user_id = $1)" +
		") AS unread_count"

	query := "SELECT DISTINCT ON (m.conversation_key) " +
		"m.conversation_key, " +
		"CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END AS peer_id, " +
		"COALESCE(u.nickname, '') AS peer_nickname, " +
		"COALESCE(u.avatar_url, '') AS peer_avatar, " +
		"m.id AS last_message_id, " +
		"m.content AS last_message_content, " +
		"m.type AS last_message_type, " +
		"m.sender_id AS last_sender_id, " +
		"m.created_at AS last_message_at, " +
		unreadSubquery + " " +
		"FROM messages m " +
		"LEFT JOIN users u ON u.id = CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END " +
		"WHERE (m.sender_id = $1 OR m.recipient_id = $1) " +
		"AND m.group_id IS NULL AND m.is_deleted = FALSE " +
		"ORDER BY m.conversation_key, m.created_at DESC"

	var summaries model.ConversationSummaryList
	err := r.Chk(ctx).SelectContext(ctx, &summaries, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation summaries: %v", err)
	}

	return &summaries, nil
}

// CountUnread totals non-deleted messages addressed to the user, directly or
// via the given groups, that the user has not read and did not send.
func (r *Repository) CountUnread(ctx context.Context, userID string, groupIDs []string) (int64, error) {
	scope := sq.Or{sq.Eq{"m.recipient_id": userID}}
	if len(groupIDs) > 0 {
		scope = append(scope, sq.Eq{"m.group_id": groupIDs})
	}

	query, args, err := sq.Select("COUNT(*)").
		From("messages m").
		Where(scope).
		Where(sq.NotEq{"m.sender_id": userID}).
		Where(sq.Eq{"m.is_deleted": false}).
		Where("NOT EXISTS (SELECT 1 FROM message_reads mr WHERE mr.message_id = m.id AND mr.user_id = ?)", userID).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %v", err)
	}

	return count, nil
}

func (r *Repository) AddNewUser(ctx context.Context, user *model.UserSnapshot) error {
	query, args, err := sq.Insert("users").
		Columns("id", "nickname", "avatar_url").
		Values(user.ID, user.Nickname, user.AvatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname, avatar_url = EXCLUDED.avatar_url").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateUserNickname(ctx context.Context, userID, newNickname string) error {
	query, args, err := sq.Update("users").
		Set("nickname", newNickname).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUserAvatar(ctx context.Context, userID, avatarLink string) error {
	query, args, err := sq.Update("users").
		Set("avatar_url", avatarLink).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

// checkMessageAlive guards the mutation primitives: NotFound for a missing
// message and for a soft-deleted one, which is immutable from the API surface.
func (r *Repository) checkMessageAlive(ctx context.Context, messageID uuid.UUID) error {
	query, args, err := sq.Select("is_deleted").
		From("messages").
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	var isDeleted bool
	err = r.Chk(ctx).GetContext(ctx, &isDeleted, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: message %s", model.ErrNotFound, messageID)
	}
	if err != nil {
		return fmt.Errorf("failed to check message: %v", err)
	}
	if isDeleted {
		return fmt.Errorf("%w: message %s is deleted", model.ErrNotFound, messageID)
	}

	return nil
}
