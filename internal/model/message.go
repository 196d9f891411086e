package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	TextMessageType   = "text"
	ImageMessageType  = "image"
	FileMessageType   = "file"
	SystemMessageType = "system"

	MaxContentLength = 2000

	EditWindow = 5 * time.Minute
)

const (
	ImageAttachmentKind    = "image"
	VideoAttachmentKind    = "video"
	DocumentAttachmentKind = "document"
	AudioAttachmentKind    = "audio"
)

type MessageList []Message

// Message is addressed either to a single recipient (direct message,
// ConversationKey is set) or to a group, never both.
type Message struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	SenderID        string         `db:"sender_id" json:"sender_id"`
	RecipientID     *string        `db:"recipient_id" json:"recipient_id,omitempty"`
	GroupID         *string        `db:"group_id" json:"group_id,omitempty"`
	ConversationKey *string        `db:"conversation_key" json:"conversation_key,omitempty"`
	Type            string         `db:"type" json:"type"`
	Content         string         `db:"content" json:"content"`
	OriginalContent *string        `db:"original_content" json:"original_content,omitempty"`
	IsEdited        bool           `db:"is_edited" json:"is_edited"`
	EditedAt        *time.Time     `db:"edited_at" json:"edited_at,omitempty"`
	ReplyTo         *uuid.UUID     `db:"reply_to" json:"reply_to,omitempty"`
	IsDeleted       bool           `db:"is_deleted" json:"is_deleted"`
	DeletedAt       *time.Time     `db:"deleted_at" json:"deleted_at,omitempty"`
	Mentions        pq.StringArray `db:"mentions" json:"mentions,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`

	// denormalized for display, filled by list queries
	SenderNickname string  `db:"sender_nickname" json:"sender_nickname,omitempty"`
	SenderAvatar   string  `db:"sender_avatar" json:"sender_avatar,omitempty"`
	ReplyContent   *string `db:"reply_content" json:"reply_content,omitempty"`
	ReplySenderID  *string `db:"reply_sender_id" json:"reply_sender_id,omitempty"`

	Reactions   []Reaction    `db:"-" json:"reactions,omitempty"`
	ReadBy      []ReadReceipt `db:"-" json:"read_by,omitempty"`
	Attachments []Attachment  `db:"-" json:"attachments,omitempty"`
}

// Editable reports whether the edit window is still open at the given moment.
// Ownership and window enforcement are caller policy, not a storage concern.
func (m *Message) Editable(now time.Time) bool {
	return now.Sub(m.CreatedAt) <= EditWindow
}

type Reaction struct {
	MessageID uuid.UUID `db:"message_id" json:"-"`
	UserID    string    `db:"user_id" json:"user_id"`
	Emoji     string    `db:"emoji" json:"emoji"`
}

type ReadReceipt struct {
	MessageID uuid.UUID `db:"message_id" json:"-"`
	UserID    string    `db:"user_id" json:"user_id"`
	ReadAt    time.Time `db:"read_at" json:"read_at"`
}

type Attachment struct {
	MessageID  uuid.UUID `db:"message_id" json:"-"`
	Position   int       `db:"position" json:"-"`
	Kind       string    `db:"kind" json:"kind"`
	URL        string    `db:"url" json:"url"`
	Filename   string    `db:"filename" json:"filename"`
	Size       int64     `db:"size" json:"size"`
	StorageKey string    `db:"storage_key" json:"storage_key,omitempty"`
}

type ConversationSummaryList []ConversationSummary

// ConversationSummary is one row of the conversation list screen: the most
// recent message of a direct thread plus the requester's unread counter.
type ConversationSummary struct {
	ConversationKey    string    `db:"conversation_key" json:"conversation_key"`
	PeerID             string    `db:"peer_id" json:"peer_id"`
	PeerNickname       string    `db:"peer_nickname" json:"peer_nickname"`
	PeerAvatar         string    `db:"peer_avatar" json:"peer_avatar"`
	LastMessageID      uuid.UUID `db:"last_message_id" json:"last_message_id"`
	LastMessageContent string    `db:"last_message_content" json:"last_message_content"`
	LastMessageType    string    `db:"last_message_type" json:"last_message_type"`
	LastSenderID       string    `db:"last_sender_id" json:"last_sender_id"`
	LastMessageAt      time.Time `db:"last_message_at" json:"last_message_at"`
	UnreadCount        int64     `db:"unread_count" json:"unread_count"`
}

func ValidMessageType(t string) bool {
	switch t {
	case TextMessageType, ImageMessageType, FileMessageType, SystemMessageType:
		return true
	}
	return false
}

func ValidAttachmentKind(k string) bool {
	switch k {
	case ImageAttachmentKind, VideoAttachmentKind, DocumentAttachmentKind, AudioAttachmentKind:
		return true
	}
	return false
}
