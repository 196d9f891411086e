package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messaging-service/internal/config"
	"github.com/s21platform/messaging-service/internal/gateway"
	"github.com/s21platform/messaging-service/internal/model"
	"github.com/s21platform/messaging-service/internal/pkg/conversation"
	"github.com/s21platform/messaging-service/internal/pkg/mentions"
	"github.com/s21platform/messaging-service/internal/pkg/tx"
)

type Handler struct {
	repository  DBRepo
	userClient  UserClient
	groupClient GroupClient
	broadcaster Broadcaster
	validator   Validator
	resolver    mentions.Resolver
}

// New builds the REST handler. resolver may be nil: mentions then persist as
// an empty set until a handle resolver is available.
func New(
	repo DBRepo,
	userClient UserClient,
	groupClient GroupClient,
	broadcaster Broadcaster,
	validator Validator,
	resolver mentions.Resolver,
) *Handler {
	return &Handler{
		repository:  repo,
		userClient:  userClient,
		groupClient: groupClient,
		broadcaster: broadcaster,
		validator:   validator,
		resolver:    resolver,
	}
}

// AttachRoutes mounts the messaging endpoints under /api/messages.
func (h *Handler) AttachRoutes(router chi.Router) {
	router.Route("/api/messages", func(r chi.Router) {
		r.Get("/conversations", h.GetConversations)
		r.Get("/conversations/{userId}", h.GetConversation)
		r.Post("/direct", h.SendDirectMessage)
		r.Get("/groups/{groupId}", h.GetGroupMessages)
		r.Post("/groups/{groupId}", h.SendGroupMessage)
		r.Put("/{messageId}", h.EditMessage)
		r.Delete("/{messageId}", h.DeleteMessage)
		r.Post("/{messageId}/reaction", h.ToggleReaction)
		r.Post("/{messageId}/read", h.MarkMessageRead)
		r.Get("/search/conversation/{userId}", h.SearchConversation)
		r.Get("/search/group/{groupId}", h.SearchGroup)
		r.Get("/unread/count", h.GetUnreadCount)
	})
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	summaries, err := h.repository.GetUserConversationSummaries(r.Context(), requesterID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation summaries: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, ConversationsResponse{Conversations: *summaries}, http.StatusOK)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversation")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	peerID := chi.URLParam(r, "userId")
	page, pageSize := pagination(r)

	messages, err := h.repository.GetConversation(r.Context(), requesterID, peerID, page, pageSize)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, MessagesResponse{Messages: *messages}, http.StatusOK)
}

func (h *Handler) SendDirectMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendDirectMessage")

	var req SendDirectMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender id")
		h.writeError(w, "failed to get sender id", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateDirectMessage(req.RecipientID, req.Content, req.Type); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeDomainError(w, err)
		return
	}
	if err := h.validator.ValidateAttachments(req.Attachments); err != nil {
		logger.Error(fmt.Sprintf("attachment validation failed: %v", err))
		h.writeDomainError(w, err)
		return
	}

	now := time.Now()
	convKey := conversation.Key(senderID, req.RecipientID)
	message := &model.Message{
		ID:              uuid.New(),
		SenderID:        senderID,
		RecipientID:     &req.RecipientID,
		ConversationKey: &convKey,
		Type:            req.Type,
		Content:         req.Content,
		ReplyTo:         req.ReplyTo,
		Mentions:        pq.StringArray(mentions.ResolveAll(req.Content, h.resolver)),
		Attachments:     req.Attachments,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.SaveMessage(ctx, message)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to save message: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.broadcaster.PublishToUser(req.RecipientID, gateway.EventNewMessage, message)
	h.broadcaster.PublishToUser(senderID, gateway.EventMessageSent, message)

	h.writeJSON(w, message, http.StatusOK)
}

func (h *Handler) GetGroupMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetGroupMessages")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	groupID := chi.URLParam(r, "groupId")
	if err := h.requireMembership(r.Context(), groupID, requesterID); err != nil {
		logger.Error(fmt.Sprintf("membership check failed: %v", err))
		h.writeDomainError(w, err)
		return
	}

	page, pageSize := pagination(r)
	messages, err := h.repository.GetGroupMessages(r.Context(), groupID, page, pageSize)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get group messages: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, MessagesResponse{Messages: *messages}, http.StatusOK)
}

func (h *Handler) SendGroupMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendGroupMessage")

	var req SendGroupMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender id")
		h.writeError(w, "failed to get sender id", http.StatusInternalServerError)
		return
	}

	groupID := chi.URLParam(r, "groupId")
	if err := h.validator.ValidateGroupMessage(groupID, req.Content, req.Type); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeDomainError(w, err)
		return
	}
	if err := h.validator.ValidateAttachments(req.Attachments); err != nil {
		logger.Error(fmt.Sprintf("attachment validation failed: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.requireMembership(r.Context(), groupID, senderID); err != nil {
		logger.Error(fmt.Sprintf("membership check failed: %v", err))
		h.writeDomainError(w, err)
		return
	}

	now := time.Now()
	message := &model.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		GroupID:     &groupID,
		Type:        req.Type,
		Content:     req.Content,
		ReplyTo:     req.ReplyTo,
		Mentions:    pq.StringArray(mentions.ResolveAll(req.Content, h.resolver)),
		Attachments: req.Attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.SaveMessage(ctx, message)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to save group message: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.broadcaster.PublishToGroup(groupID, gateway.EventNewGroupMessage, message)

	h.writeJSON(w, message, http.StatusOK)
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EditMessage")

	messageID, err := parseMessageID(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	var req EditMessageRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	if err = h.validator.ValidateEdit(req.Content); err != nil {
		logger.Error(fmt.Sprintf("edit validation failed: %v", err))
		h.writeDomainError(w, err)
		return
	}

	var updated *model.Message
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		message, err := h.repository.GetMessage(ctx, messageID)
		if err != nil {
			return err
		}
		if message.IsDeleted {
			return fmt.Errorf("%w: message %s", model.ErrNotFound, messageID)
		}

		// only the sender may edit, and only within the edit window
		if message.SenderID != requesterID {
			return fmt.Errorf("%w: only the sender can edit a message", model.ErrAccessDenied)
		}
		if !message.Editable(time.Now()) {
			return model.ErrEditWindowExpired
		}

		if err = h.repository.EditContent(ctx, messageID, req.Content); err != nil {
			return err
		}

		updated, err = h.repository.GetMessage(ctx, messageID)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to edit message: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.fanOutToParticipants(updated, gateway.EventMessageEdited, updated)

	h.writeJSON(w, updated, http.StatusOK)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	messageID, err := parseMessageID(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	var deleted *model.Message
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		message, err := h.repository.GetMessage(ctx, messageID)
		if err != nil {
			return err
		}

		if message.SenderID != requesterID {
			// group admins may remove messages of others
			if message.GroupID == nil {
				return fmt.Errorf("%w: only the sender can delete a message", model.ErrAccessDenied)
			}
			isAdmin, err := h.groupClient.IsAdmin(ctx, *message.GroupID, requesterID)
			if err != nil {
				return fmt.Errorf("failed to check group admin: %w", err)
			}
			if !isAdmin {
				return fmt.Errorf("%w: only the sender or a group admin can delete a message", model.ErrAccessDenied)
			}
		}

		deleted = message
		return h.repository.SoftDelete(ctx, messageID)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete message: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.fanOutToParticipants(deleted, gateway.EventMessageDeleted, map[string]interface{}{
		"message_id": messageID,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ToggleReaction(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ToggleReaction")

	messageID, err := parseMessageID(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	var req ReactionRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	if err = h.validator.ValidateReaction(req.Emoji); err != nil {
		logger.Error(fmt.Sprintf("reaction validation failed: %v", err))
		h.writeDomainError(w, err)
		return
	}

	var message *model.Message
	var added bool
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		message, err = h.repository.GetMessage(ctx, messageID)
		if err != nil {
			return err
		}

		// add reports false when the pair already exists; toggle by removing
		added, err = h.repository.AddReaction(ctx, messageID, requesterID, req.Emoji)
		if err != nil {
			return err
		}
		if !added {
			return h.repository.RemoveReaction(ctx, messageID, requesterID, req.Emoji)
		}
		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to toggle reaction: %v", err))
		h.writeDomainError(w, err)
		return
	}

	response := ReactionResponse{
		MessageID: messageID,
		Emoji:     req.Emoji,
		Added:     added,
	}

	h.fanOutToParticipants(message, gateway.EventMessageReaction, map[string]interface{}{
		"message_id": messageID,
		"user_id":    requesterID,
		"emoji":      req.Emoji,
		"added":      added,
	})

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkMessageRead")

	messageID, err := parseMessageID(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	var message *model.Message
	var marked bool
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		marked, err = h.repository.MarkRead(ctx, messageID, requesterID)
		if err != nil {
			return err
		}
		if !marked {
			return nil
		}
		message, err = h.repository.GetMessage(ctx, messageID)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to mark message read: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if marked {
		notification := map[string]interface{}{
			"message_id": messageID,
			"user_id":    requesterID,
		}
		if message.GroupID != nil {
			h.broadcaster.PublishToGroup(*message.GroupID, gateway.EventMessageRead, notification)
		} else {
			h.broadcaster.PublishToUser(message.SenderID, gateway.EventMessageRead, notification)
		}
	}

	h.writeJSON(w, MarkReadResponse{MessageID: messageID, Marked: marked}, http.StatusOK)
}

func (h *Handler) SearchConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SearchConversation")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	text := r.URL.Query().Get("q")
	if text == "" {
		h.writeError(w, "query parameter 'q' is required", http.StatusBadRequest)
		return
	}

	peerID := chi.URLParam(r, "userId")
	page, pageSize := pagination(r)

	messages, err := h.repository.SearchConversation(r.Context(), requesterID, peerID, text, page, pageSize)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to search conversation: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, MessagesResponse{Messages: *messages}, http.StatusOK)
}

func (h *Handler) SearchGroup(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SearchGroup")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	text := r.URL.Query().Get("q")
	if text == "" {
		h.writeError(w, "query parameter 'q' is required", http.StatusBadRequest)
		return
	}

	groupID := chi.URLParam(r, "groupId")
	if err := h.requireMembership(r.Context(), groupID, requesterID); err != nil {
		logger.Error(fmt.Sprintf("membership check failed: %v", err))
		h.writeDomainError(w, err)
		return
	}

	page, pageSize := pagination(r)
	messages, err := h.repository.SearchGroup(r.Context(), groupID, text, page, pageSize)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to search group: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, MessagesResponse{Messages: *messages}, http.StatusOK)
}

func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUnreadCount")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	profile, err := h.userClient.GetUser(r.Context(), requesterID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get user profile: %v", err))
		h.writeDomainError(w, err)
		return
	}

	count, err := h.repository.CountUnread(r.Context(), requesterID, profile.JoinedGroups)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count unread messages: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, UnreadCountResponse{Count: count}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) requireMembership(ctx context.Context, groupID, userID string) error {
	isMember, err := h.groupClient.IsMember(ctx, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return fmt.Errorf("%w: not a member of group %s", model.ErrAccessDenied, groupID)
	}
	return nil
}

// fanOutToParticipants pushes a mutation event to everyone who can see the
// message: the group room for group messages, both private rooms otherwise.
func (h *Handler) fanOutToParticipants(message *model.Message, event string, data interface{}) {
	if message == nil {
		return
	}

	if message.GroupID != nil {
		h.broadcaster.PublishToGroup(*message.GroupID, event, data)
		return
	}

	h.broadcaster.PublishToUser(message.SenderID, event, data)
	if message.RecipientID != nil && *message.RecipientID != message.SenderID {
		h.broadcaster.PublishToUser(*message.RecipientID, event, data)
	}
}

func pagination(r *http.Request) (int, int) {
	page := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}

	pageSize := 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 200 {
		pageSize = v
	}

	return page, pageSize
}

func parseMessageID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "messageId"))
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		h.writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrValidationFailed):
		h.writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrAccessDenied):
		h.writeError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, model.ErrEditWindowExpired):
		h.writeError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, model.ErrInvalidToken):
		h.writeError(w, err.Error(), http.StatusUnauthorized)
	default:
		// never leak internals on unexpected failures
		h.writeError(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}
