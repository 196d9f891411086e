package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messaging-service/internal/config"
)

// UpdateMessage is the user-service change feed payload. Nickname and avatar
// come through as pointers so an absent field is distinguishable from an
// explicit empty value.
type UpdateMessage struct {
	UserID    string  `json:"user_id"`
	Nickname  *string `json:"nickname,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type Handler struct {
	dbR DBRepo
}

func New(dbR DBRepo) *Handler {
	return &Handler{dbR: dbR}
}

// Handler consumes one user update and refreshes the local user snapshot used
// to denormalize sender info on messages.
func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handler")

	var msg UpdateMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user update: %v", err))
		return
	}

	if msg.UserID == "" {
		logger.Error("user update without user_id")
		return
	}

	if msg.Nickname != nil {
		if err := h.dbR.UpdateUserNickname(ctx, msg.UserID, *msg.Nickname); err != nil {
			logger.Error(fmt.Sprintf("failed to update nickname for %s: %v", msg.UserID, err))
		}
	}

	if msg.AvatarURL != nil {
		if err := h.dbR.UpdateUserAvatar(ctx, msg.UserID, *msg.AvatarURL); err != nil {
			logger.Error(fmt.Sprintf("failed to update avatar for %s: %v", msg.UserID, err))
		}
	}
}
