package rest

import (
	"github.com/google/uuid"

	"github.com/s21platform/messaging-service/internal/model"
)

type SendDirectMessageRequest struct {
	RecipientID string             `json:"recipient_id"`
	Content     string             `json:"content"`
	Type        string             `json:"type"`
	ReplyTo     *uuid.UUID         `json:"reply_to,omitempty"`
	Attachments []model.Attachment `json:"attachments,omitempty"`
}

type SendGroupMessageRequest struct {
	Content     string             `json:"content"`
	Type        string             `json:"type"`
	ReplyTo     *uuid.UUID         `json:"reply_to,omitempty"`
	Attachments []model.Attachment `json:"attachments,omitempty"`
}

type EditMessageRequest struct {
	Content string `json:"content"`
}

type ReactionRequest struct {
	Emoji string `json:"emoji"`
}

type ReactionResponse struct {
	MessageID uuid.UUID `json:"message_id"`
	Emoji     string    `json:"emoji"`
	Added     bool      `json:"added"`
}

type MarkReadResponse struct {
	MessageID uuid.UUID `json:"message_id"`
	Marked    bool      `json:"marked"`
}

type MessagesResponse struct {
	Messages model.MessageList `json:"messages"`
}

type ConversationsResponse struct {
	Conversations model.ConversationSummaryList `json:"conversations"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type Error struct {
	Error string `json:"error"`
}
