package gateway

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/s21platform/messaging-service/internal/model"
)

// Socket event vocabulary. Names are part of the client contract and must
// stay stable.
const (
	EventAuthenticate  = "authenticate"
	EventAuthenticated = "authenticated"
	EventAuthError     = "auth_error"

	EventJoinGroup   = "join_group"
	EventJoinedGroup = "joined_group"
	EventLeaveGroup  = "leave_group"
	EventLeftGroup   = "left_group"

	EventSendMessage      = "send_message"
	EventNewMessage       = "new_message"
	EventMessageSent      = "message_sent"
	EventSendGroupMessage = "send_group_message"
	EventNewGroupMessage  = "new_group_message"
	EventGroupMessageSent = "group_message_sent"

	EventTypingStart    = "typing_start"
	EventUserTyping     = "user_typing"
	EventTypingStop     = "typing_stop"
	EventUserStopTyping = "user_stop_typing"

	EventMarkAsRead  = "mark_as_read"
	EventMessageRead = "message_read"

	// emitted on the broadcast path by REST-originated mutations
	EventMessageEdited   = "message_edited"
	EventMessageDeleted  = "message_deleted"
	EventMessageReaction = "message_reaction"

	EventUpdateStatus     = "update_status"
	EventUserStatusUpdate = "user_status_update"
	EventUserOnline       = "user_online"
	EventUserOffline      = "user_offline"

	EventCallUser     = "call_user"
	EventIncomingCall = "incoming_call"
	EventAnswerCall   = "answer_call"
	EventCallAnswered = "call_answered"
	EventEndCall      = "end_call"
	EventCallEnded    = "call_ended"

	EventError = "error"
)

// Envelope is the wire frame: one event name plus an event-specific payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outEnvelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

type AuthenticatePayload struct {
	Token string `json:"token"`
}

type AuthenticatedPayload struct {
	User        *model.UserProfile `json:"user"`
	OnlineUsers []model.OnlineUser `json:"online_users"`
}

type GroupPayload struct {
	GroupID string `json:"group_id"`
}

type SendMessagePayload struct {
	RecipientID string             `json:"recipient_id"`
	Content     string             `json:"content"`
	Type        string             `json:"type"`
	ReplyTo     *uuid.UUID         `json:"reply_to,omitempty"`
	Attachments []model.Attachment `json:"attachments,omitempty"`
}

type SendGroupMessagePayload struct {
	GroupID     string             `json:"group_id"`
	Content     string             `json:"content"`
	Type        string             `json:"type"`
	ReplyTo     *uuid.UUID         `json:"reply_to,omitempty"`
	Attachments []model.Attachment `json:"attachments,omitempty"`
}

type TypingPayload struct {
	GroupID     string `json:"group_id,omitempty"`
	RecipientID string `json:"recipient_id,omitempty"`
}

type TypingNotification struct {
	UserID  string `json:"user_id"`
	GroupID string `json:"group_id,omitempty"`
}

// MarkAsReadPayload carries the message to mark. GroupID is advisory client
// state and is ignored; the receipt is routed by the stored message.
type MarkAsReadPayload struct {
	MessageID uuid.UUID `json:"message_id"`
	GroupID   string    `json:"group_id,omitempty"`
}

type MessageReadNotification struct {
	MessageID uuid.UUID `json:"message_id"`
	UserID    string    `json:"user_id"`
	GroupID   string    `json:"group_id,omitempty"`
}

// CallPayload carries opaque signaling blobs between two peers; the gateway
// relays Signal without interpreting it.
type CallPayload struct {
	TargetID string          `json:"target_id"`
	Signal   json.RawMessage `json:"signal,omitempty"`
}

type CallNotification struct {
	FromID string          `json:"from_id"`
	Signal json.RawMessage `json:"signal,omitempty"`
}

type StatusPayload struct {
	Status string `json:"status"`
}

type StatusNotification struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

type PresenceNotification struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname,omitempty"`
	LastSeen string `json:"last_seen,omitempty"`
}

type ErrorPayload struct {
	Event   string `json:"event,omitempty"`
	Message string `json:"message"`
}
