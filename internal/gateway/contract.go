//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/messaging-service/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	MarkRead(ctx context.Context, messageID uuid.UUID, userID string) (bool, error)
	AddNewUser(ctx context.Context, user *model.UserSnapshot) error
}

type TokenVerifier interface {
	Verify(token string) (string, error)
}

type UserClient interface {
	GetUser(ctx context.Context, userID string) (*model.UserProfile, error)
	SetOnline(ctx context.Context, userID string, online bool) error
	SetLastSeen(ctx context.Context, userID string, lastSeen time.Time) error
	SetStatus(ctx context.Context, userID, status string) error
}

type GroupClient interface {
	IsMember(ctx context.Context, groupID, userID string) (bool, error)
}
