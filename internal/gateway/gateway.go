package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lib/pq"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messaging-service/internal/model"
	"github.com/s21platform/messaging-service/internal/pkg/conversation"
	"github.com/s21platform/messaging-service/internal/pkg/mentions"
	"github.com/s21platform/messaging-service/internal/pkg/validator"
)

// Gateway runs the socket side of the messaging service: the per-connection
// authentication state machine, room membership and the event protocol.
type Gateway struct {
	repository  DBRepo
	verifier    TokenVerifier
	userClient  UserClient
	groupClient GroupClient
	validator   *validator.Validator
	resolver    mentions.Resolver
	presence    *Presence
	rooms       *Rooms
	logger      logger_lib.LoggerInterface
	upgrader    websocket.Upgrader
}

// New builds the gateway. resolver may be nil: mentions then persist as an
// empty set until a handle resolver is available.
func New(
	repo DBRepo,
	verifier TokenVerifier,
	userClient UserClient,
	groupClient GroupClient,
	resolver mentions.Resolver,
	logger logger_lib.LoggerInterface,
) *Gateway {
	return &Gateway{
		repository:  repo,
		verifier:    verifier,
		userClient:  userClient,
		groupClient: groupClient,
		validator:   validator.New(),
		resolver:    resolver,
		presence:    NewPresence(),
		rooms:       NewRooms(),
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (g *Gateway) Presence() *Presence {
	return g.presence
}

// PublishToUser pushes an event into a user's private room. This is the path
// REST-originated mutations take so socket clients see them live.
func (g *Gateway) PublishToUser(userID, event string, data interface{}) {
	g.rooms.Publish(userRoom(userID), nil, event, data)
}

func (g *Gateway) PublishToGroup(groupID, event string, data interface{}) {
	g.rooms.Publish(groupRoom(groupID), nil, event, data)
}

// HandleWS upgrades the request and serves the connection until it drops.
func (g *Gateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
		return
	}

	s := newSession(conn)
	go s.writePump()
	g.readLoop(s)
}

func (g *Gateway) readLoop(s *session) {
	// teardown runs on every exit path, graceful close or not
	defer g.teardown(context.Background(), s)

	for {
		_, frame, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Warn(fmt.Sprintf("socket read error: %v", err))
			}
			return
		}

		g.dispatch(context.Background(), s, frame)
	}
}

// dispatch routes one inbound frame. Events of one connection are handled in
// receipt order; a handler failure becomes a scoped error event on this
// connection only and never tears it down.
func (g *Gateway) dispatch(ctx context.Context, s *session, frame []byte) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		s.push(EventError, ErrorPayload{Message: "malformed event frame"})
		return
	}

	var err error
	switch env.Event {
	case EventAuthenticate:
		err = g.handleAuthenticate(ctx, s, env.Data)
	case EventJoinGroup:
		err = g.handleJoinGroup(ctx, s, env.Data)
	case EventLeaveGroup:
		err = g.handleLeaveGroup(s, env.Data)
	case EventSendMessage:
		err = g.handleSendMessage(ctx, s, env.Data)
	case EventSendGroupMessage:
		err = g.handleSendGroupMessage(ctx, s, env.Data)
	case EventTypingStart:
		err = g.handleTyping(s, env.Data, EventUserTyping)
	case EventTypingStop:
		err = g.handleTyping(s, env.Data, EventUserStopTyping)
	case EventMarkAsRead:
		err = g.handleMarkAsRead(ctx, s, env.Data)
	case EventCallUser:
		err = g.handleCallRelay(s, env.Data, EventIncomingCall)
	case EventAnswerCall:
		err = g.handleCallRelay(s, env.Data, EventCallAnswered)
	case EventEndCall:
		err = g.handleCallRelay(s, env.Data, EventCallEnded)
	case EventUpdateStatus:
		err = g.handleUpdateStatus(ctx, s, env.Data)
	default:
		err = fmt.Errorf("unknown event '%s'", env.Event)
	}

	if err != nil {
		g.logger.Error(fmt.Sprintf("event %s failed: %v", env.Event, err))

		if env.Event == EventAuthenticate {
			s.push(EventAuthError, ErrorPayload{Event: env.Event, Message: err.Error()})
			return
		}
		s.push(EventError, ErrorPayload{Event: env.Event, Message: err.Error()})
	}
}

func (g *Gateway) handleAuthenticate(ctx context.Context, s *session, data json.RawMessage) error {
	var payload AuthenticatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	userID, err := g.verifier.Verify(payload.Token)
	if err != nil {
		return err
	}

	profile, err := g.userClient.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user profile: %w", err)
	}

	snapshot := model.UserSnapshot{
		ID:        profile.ID,
		Nickname:  profile.Nickname,
		AvatarURL: profile.AvatarURL,
	}
	if err = g.repository.AddNewUser(ctx, &snapshot); err != nil {
		return fmt.Errorf("failed to store user snapshot: %w", err)
	}

	s.userID = userID
	g.presence.Register(userID, s, snapshot)
	g.rooms.Join(userRoom(userID), s)

	// group rooms are joined from the membership known at auth time only;
	// later joins/leaves arrive as explicit events
	for _, groupID := range profile.JoinedGroups {
		g.rooms.Join(groupRoom(groupID), s)
	}

	if err = g.userClient.SetOnline(ctx, userID, true); err != nil {
		g.logger.Warn(fmt.Sprintf("failed to mark user %s online: %v", userID, err))
	}

	g.broadcastAll(s, EventUserOnline, PresenceNotification{
		UserID:   userID,
		Nickname: profile.Nickname,
	})

	s.push(EventAuthenticated, AuthenticatedPayload{
		User:        profile,
		OnlineUsers: g.presence.ListConnected(),
	})

	return nil
}

func (g *Gateway) handleJoinGroup(ctx context.Context, s *session, data json.RawMessage) error {
	if !s.authenticated() {
		return errNotAuthenticated()
	}

	var payload GroupPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	isMember, err := g.groupClient.IsMember(ctx, payload.GroupID, s.userID)
	if err != nil {
		return fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return fmt.Errorf("%w: not a member of group %s", model.ErrAccessDenied, payload.GroupID)
	}

	g.rooms.Join(groupRoom(payload.GroupID), s)
	s.push(EventJoinedGroup, payload)

	return nil
}

func (g *Gateway) handleLeaveGroup(s *session, data json.RawMessage) error {
	if !s.authenticated() {
		return errNotAuthenticated()
	}

	var payload GroupPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	// leaving is unconditional
	g.rooms.Leave(groupRoom(payload.GroupID), s)
	s.push(EventLeftGroup, payload)

	return nil
}

func (g *Gateway) handleSendMessage(ctx context.Context, s *session, data json.RawMessage) error {
	if !s.authenticated() {
		return errNotAuthenticated()
	}

	var payload SendMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	if err := g.validator.ValidateDirectMessage(payload.RecipientID, payload.Content, payload.Type); err != nil {
		return err
	}
	if err := g.validator.ValidateAttachments(payload.Attachments); err != nil {
		return err
	}

	now := time.Now()
	convKey := conversation.Key(s.userID, payload.RecipientID)
	message := &model.Message{
		ID:              uuid.New(),
		SenderID:        s.userID,
		RecipientID:     &payload.RecipientID,
		ConversationKey: &convKey,
		Type:            payload.Type,
		Content:         payload.Content,
		ReplyTo:         payload.ReplyTo,
		Mentions:        pq.StringArray(mentions.ResolveAll(payload.Content, g.resolver)),
		Attachments:     payload.Attachments,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := g.repository.SaveMessage(ctx, message); err != nil {
		return err
	}

	// no offline queue: absent recipients fetch the message from history
	g.rooms.Publish(userRoom(payload.RecipientID), s, EventNewMessage, message)
	s.push(EventMessageSent, message)

	return nil
}

func (g *Gateway) handleSendGroupMessage(ctx context.Context, s *session, data json.RawMessage) error {
	if !s.authenticated() {
		return errNotAuthenticated()
	}

	var payload SendGroupMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	if err := g.validator.ValidateGroupMessage(payload.GroupID, payload.Content, payload.Type); err != nil {
		return err
	}
	if err := g.validator.ValidateAttachments(payload.Attachments); err != nil {
		return err
	}

	isMember, err := g.groupClient.IsMember(ctx, payload.GroupID, s.userID)
	if err != nil {
		return fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return fmt.Errorf("%w: not a member of group %s", model.ErrAccessDenied, payload.GroupID)
	}

	now := time.Now()
	message := &model.Message{
		ID:          uuid.New(),
		SenderID:    s.userID,
		GroupID:     &payload.GroupID,
		Type:        payload.Type,
		Content:     payload.Content,
		ReplyTo:     payload.ReplyTo,
		Mentions:    pq.StringArray(mentions.ResolveAll(payload.Content, g.resolver)),
		Attachments: payload.Attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = g.repository.SaveMessage(ctx, message); err != nil {
		return err
	}

	g.rooms.Publish(groupRoom(payload.GroupID), s, EventNewGroupMessage, message)
	s.push(EventGroupMessageSent, message)

	return nil
}

func (g *Gateway) handleTyping(s *session, data json.RawMessage, outEvent string) error {
	if !s.authenticated() {
		return errNotAuthenticated()
	}

	var payload TypingPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	notification := TypingNotification{UserID: s.userID, GroupID: payload.GroupID}

	// pure signaling, nothing persisted
	switch {
	case payload.GroupID != "":
		g.rooms.Publish(groupRoom(payload.GroupID), s, outEvent, notification)
	case payload.RecipientID != "":
		g.rooms.Publish(userRoom(payload.RecipientID), s, outEvent, notification)
	default:
		return fmt.Errorf("%w: typing target is required", model.ErrValidationFailed)
	}

	return nil
}

func (g *Gateway) handleMarkAsRead(ctx context.Context, s *session, data json.RawMessage) error {
	if !s.authenticated() {
		return errNotAuthenticated()
	}

	var payload MarkAsReadPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	added, err := g.repository.MarkRead(ctx, payload.MessageID, s.userID)
	if err != nil {
		return err
	}
	if !added {
		// duplicate mark is an idempotent no-op, not an error
		return nil
	}

	// the routed room comes from the stored message, never from the payload:
	// a client must not be able to steer the receipt into a foreign room
	message, err := g.repository.GetMessage(ctx, payload.MessageID)
	if err != nil {
		return err
	}

	notification := MessageReadNotification{
		MessageID: payload.MessageID,
		UserID:    s.userID,
	}

	if message.GroupID != nil {
		notification.GroupID = *message.GroupID
		g.rooms.Publish(groupRoom(*message.GroupID), s, EventMessageRead, notification)
		return nil
	}

	g.rooms.Publish(userRoom(message.SenderID), s, EventMessageRead, notification)

	return nil
}

func (g *Gateway) handleCallRelay(s *session, data json.RawMessage, outEvent string) error {
	if !s.authenticated() {
		return errNotAuthenticated()
	}

	var payload CallPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}
	if payload.TargetID == "" {
		return fmt.Errorf("%w: call target is required", model.ErrValidationFailed)
	}

	// opaque passthrough, the signal blob is never interpreted here
	g.rooms.Publish(userRoom(payload.TargetID), s, outEvent, CallNotification{
		FromID: s.userID,
		Signal: payload.Signal,
	})

	return nil
}

func (g *Gateway) handleUpdateStatus(ctx context.Context, s *session, data json.RawMessage) error {
	if !s.authenticated() {
		return errNotAuthenticated()
	}

	var payload StatusPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	if err := g.userClient.SetStatus(ctx, s.userID, payload.Status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	g.broadcastAll(s, EventUserStatusUpdate, StatusNotification{
		UserID: s.userID,
		Status: payload.Status,
	})

	return nil
}

// teardown runs exactly once per connection, on every exit path. An
// in-flight operation of this session may still finish; its fan-out will
// simply skip the rooms this session has already left, and push itself
// tolerates a closed session for fan-outs holding a stale room snapshot.
func (g *Gateway) teardown(ctx context.Context, s *session) {
	defer s.close()

	if !s.authenticated() {
		return
	}

	current := g.presence.Unregister(s.userID, s)
	g.rooms.LeaveAll(s)

	if !current {
		// an overwritten connection: the user is still online elsewhere
		return
	}

	now := time.Now()
	if err := g.userClient.SetOnline(ctx, s.userID, false); err != nil {
		g.logger.Warn(fmt.Sprintf("failed to mark user %s offline: %v", s.userID, err))
	}
	if err := g.userClient.SetLastSeen(ctx, s.userID, now); err != nil {
		g.logger.Warn(fmt.Sprintf("failed to store last seen for %s: %v", s.userID, err))
	}

	g.broadcastAll(s, EventUserOffline, PresenceNotification{
		UserID:   s.userID,
		LastSeen: now.UTC().Format(time.RFC3339),
	})
}

func (g *Gateway) broadcastAll(except *session, event string, data interface{}) {
	for _, sess := range g.presence.sessions() {
		if sess != except {
			sess.push(event, data)
		}
	}
}

func errNotAuthenticated() error {
	return fmt.Errorf("%w: authentication required", model.ErrAccessDenied)
}
