package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hr-chatbot-backend/internal/chatbot"
	"hr-chatbot-backend/internal/feedback"
	"hr-chatbot-backend/internal/session"
	"hr-chatbot-backend/pkg/api"
)

type Answerer interface {
	Answer(ctx context.Context, question string, history []chatbot.Turn) (string, error)
}

// ChatService serves the chat loop: message handling, session lifecycle,
// ratings, and the status probe.
type ChatService struct {
	bot      Answerer
	sessions session.Store
	ratings  feedback.Publisher
	// modelOnline reports whether the model server is reachable, for the
	// status endpoint.
	modelOnline func(ctx context.Context) bool
}

func NewChatService(bot Answerer, sessions session.Store, ratings feedback.Publisher, modelOnline func(ctx context.Context) bool) *ChatService {
	if modelOnline == nil {
		modelOnline = func(context.Context) bool { return false }
	}
	return &ChatService{
		bot:         bot,
		sessions:    sessions,
		ratings:     ratings,
		modelOnline: modelOnline,
	}
}

func (s *ChatService) AddRoutes(r chi.Router) {
	r.Get("/", RestHandler(s.Root))
	r.Post("/chat", RestHandler(s.Chat))
	r.Post("/new-session", RestHandler(s.NewSession))
	r.Post("/rate", RestHandler(s.Rate))
	r.Get("/system/status", RestHandler(s.SystemStatus))
	r.Get("/sessions/{session_token}", RestHandler(s.GetSession))
	r.Delete("/sessions/{session_token}", RestHandler(s.DeleteSession))
}

func (s *ChatService) Root(r *http.Request) (any, error) {
	return api.ServiceInfo{Status: "online", Service: "HR Chatbot API"}, nil
}

func (s *ChatService) Chat(r *http.Request) (any, error) {
	req, err := ParseRequest[api.ChatRequest](r)
	if err != nil {
		return nil, err
	}
	if req.Message == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "message must not be empty")
	}

	token, isNew, err := s.resolveSession(req)
	if err != nil {
		return nil, err
	}

	history := make([]chatbot.Turn, len(req.ChatHistory))
	for i, turn := range req.ChatHistory {
		history[i] = chatbot.Turn{User: turn.User, Bot: turn.Bot}
	}

	answer := s.answer(r.Context(), req.Message, history)

	if err := s.sessions.AppendTurn(token, session.Turn{
		User:      req.Message,
		Bot:       answer,
		Timestamp: time.Now(),
	}); err != nil {
		slog.Warn("could not record chat turn", "session_token", token, "error", err)
	}

	return api.ChatResponse{
		Response:     answer,
		SessionToken: token.String(),
		IsNewSession: isNew,
	}, nil
}

// answer maps pipeline failures onto user-facing fallback messages. The chat
// endpoint always answers; only malformed requests get an error status.
func (s *ChatService) answer(ctx context.Context, message string, history []chatbot.Turn) string {
	answer, err := s.bot.Answer(ctx, message, history)
	switch {
	case err == nil:
		return answer
	case errors.Is(err, chatbot.ErrEmptyAnswer):
		return chatbot.RephraseFallback
	default:
		slog.Error("chat pipeline failed", "error", err)
		return chatbot.ErrorFallback
	}
}

// resolveSession returns the session to record this exchange under, creating
// one when the client asked for a new session, sent no token, or sent a
// token we no longer know.
func (s *ChatService) resolveSession(req api.ChatRequest) (uuid.UUID, bool, error) {
	if !req.IsNewSession && req.SessionToken != "" {
		token, err := uuid.Parse(req.SessionToken)
		if err == nil {
			if _, err := s.sessions.Get(token); err == nil {
				return token, false, nil
			}
		}
	}

	sess, err := s.sessions.Create()
	if err != nil {
		return uuid.Nil, false, CodedErrorf(http.StatusInternalServerError, "could not create session: %v", err)
	}
	return sess.Token, true, nil
}

func (s *ChatService) NewSession(r *http.Request) (any, error) {
	sess, err := s.sessions.Create()
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "could not create session: %v", err)
	}

	return api.SessionResponse{
		SessionToken: sess.Token.String(),
		Message:      "New session created successfully",
	}, nil
}

func (s *ChatService) Rate(r *http.Request) (any, error) {
	req, err := ParseRequest[api.RatingRequest](r)
	if err != nil {
		return nil, err
	}

	rating := feedback.Rating{
		Timestamp: time.Now(),
		Message:   req.Message,
		Response:  req.Response,
		Rating:    req.Rating,
		Feedback:  req.Feedback,
	}
	if err := s.ratings.PublishRating(r.Context(), rating); err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "could not submit rating: %v", err)
	}

	return api.RatingResponse{
		Status:  "success",
		Message: "Rating submitted successfully",
	}, nil
}

func (s *ChatService) SystemStatus(r *http.Request) (any, error) {
	return api.StatusResponse{
		Status:         "online",
		ActiveSessions: s.sessions.Count(),
		ModelOnline:    s.modelOnline(r.Context()),
		Timestamp:      time.Now(),
	}, nil
}

func (s *ChatService) GetSession(r *http.Request) (any, error) {
	token, err := URLParamUUID(r, "session_token")
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "session not found")
		}
		return nil, err
	}

	history := make([]api.SessionTurn, len(sess.Turns))
	for i, turn := range sess.Turns {
		history[i] = api.SessionTurn{User: turn.User, Bot: turn.Bot, Timestamp: turn.Timestamp}
	}

	return api.SessionInfo{
		SessionToken: sess.Token.String(),
		CreatedAt:    sess.CreatedAt,
		ChatHistory:  history,
	}, nil
}

func (s *ChatService) DeleteSession(r *http.Request) (any, error) {
	token, err := URLParamUUID(r, "session_token")
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Delete(token); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "session not found")
		}
		return nil, err
	}

	return api.MessageResponse{Status: "success", Message: "Session deleted"}, nil
}
