//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/messaging-service/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	AddReaction(ctx context.Context, messageID uuid.UUID, userID, emoji string) (bool, error)
	RemoveReaction(ctx context.Context, messageID uuid.UUID, userID, emoji string) error
	MarkRead(ctx context.Context, messageID uuid.UUID, userID string) (bool, error)
	EditContent(ctx context.Context, messageID uuid.UUID, newContent string) error
	SoftDelete(ctx context.Context, messageID uuid.UUID) error
	GetConversation(ctx context.Context, userA, userB string, page, pageSize int) (*model.MessageList, error)
	GetGroupMessages(ctx context.Context, groupID string, page, pageSize int) (*model.MessageList, error)
	SearchConversation(ctx context.Context, userA, userB, text string, page, pageSize int) (*model.MessageList, error)
	SearchGroup(ctx context.Context, groupID, text string, page, pageSize int) (*model.MessageList, error)
	GetUserConversationSummaries(ctx context.Context, userID string) (*model.ConversationSummaryList, error)
	CountUnread(ctx context.Context, userID string, groupIDs []string) (int64, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type UserClient interface {
	GetUser(ctx context.Context, userID string) (*model.UserProfile, error)
}

type GroupClient interface {
	IsMember(ctx context.Context, groupID, userID string) (bool, error)
	IsAdmin(ctx context.Context, groupID, userID string) (bool, error)
}

// Broadcaster is the gateway's room-broadcast path; REST mutations push
// their results through it so socket clients see them live.
type Broadcaster interface {
	PublishToUser(userID, event string, data interface{})
	PublishToGroup(groupID, event string, data interface{})
}

type Validator interface {
	ValidateDirectMessage(recipientID, content, messageType string) error
	ValidateGroupMessage(groupID, content, messageType string) error
	ValidateEdit(content string) error
	ValidateReaction(emoji string) error
	ValidateAttachments(attachments []model.Attachment) error
}
