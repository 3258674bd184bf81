package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hr-chatbot-backend/internal/auth"
	"hr-chatbot-backend/pkg/api"
)

// AuthService handles registration, login, and token verification over the
// JSON-file user store.
type AuthService struct {
	users  *auth.FileStore
	issuer *auth.TokenIssuer
}

func NewAuthService(users *auth.FileStore, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

func (s *AuthService) AddRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", RestHandler(s.Register))
		r.Post("/login", RestHandler(s.Login))
		r.Post("/verify", RestHandler(s.Verify))

		r.Group(func(r chi.Router) {
			r.Use(s.Middleware)
			r.Get("/me", RestHandler(s.Me))
		})
	})
}

func (s *AuthService) Register(r *http.Request) (any, error) {
	req, err := ParseRequest[api.RegisterRequest](r)
	if err != nil {
		return nil, err
	}
	if req.Email == "" || req.Password == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "email and password are required")
	}

	user, err := s.users.Create(req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			return nil, CodedErrorf(http.StatusConflict, "user already exists")
		}
		return nil, err
	}

	return api.UserInfo{Email: user.Email, FullName: user.FullName, CreatedAt: user.CreatedAt}, nil
}

func (s *AuthService) Login(r *http.Request) (any, error) {
	req, err := ParseRequest[api.LoginRequest](r)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, CodedErrorf(http.StatusUnauthorized, "invalid email or password")
		}
		return nil, err
	}

	token, err := s.issuer.Generate(user.Email)
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "could not issue token: %v", err)
	}

	return api.LoginResponse{Token: token}, nil
}

func (s *AuthService) Verify(r *http.Request) (any, error) {
	req, err := ParseRequest[api.VerifyRequest](r)
	if err != nil {
		return nil, err
	}

	email, err := s.issuer.Validate(req.Token)
	if err != nil {
		return api.VerifyResponse{Valid: false}, nil
	}
	return api.VerifyResponse{Valid: true, Email: email}, nil
}

func (s *AuthService) Me(r *http.Request) (any, error) {
	email, ok := emailFromContext(r.Context())
	if !ok {
		return nil, CodedErrorf(http.StatusUnauthorized, "missing authentication")
	}

	user, err := s.users.Get(email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, CodedErrorf(http.StatusUnauthorized, "unknown user")
		}
		return nil, err
	}

	return api.UserInfo{Email: user.Email, FullName: user.FullName, CreatedAt: user.CreatedAt}, nil
}

type contextKey string

const emailContextKey contextKey = "auth-email"

func emailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok
}

// Middleware validates a bearer token and stores the authenticated email in
// the request context.
func (s *AuthService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		email, err := s.issuer.Validate(token)
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), emailContextKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
