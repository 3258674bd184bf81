package api

import "time"

type ChatTurn struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

type ChatRequest struct {
	Message      string     `json:"message"`
	ChatHistory  []ChatTurn `json:"chat_history"`
	SessionToken string     `json:"session_token,omitempty"`
	IsNewSession bool       `json:"is_new_session"`
}

type ChatResponse struct {
	Response     string `json:"response"`
	SessionToken string `json:"session_token,omitempty"`
	IsNewSession bool   `json:"is_new_session"`
}

type ServiceInfo struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SessionResponse struct {
	SessionToken string `json:"session_token"`
	Message      string `json:"message"`
}

type SessionTurn struct {
	User      string    `json:"user"`
	Bot       string    `json:"bot"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionInfo struct {
	SessionToken string        `json:"session_token"`
	CreatedAt    time.Time     `json:"created_at"`
	ChatHistory  []SessionTurn `json:"chat_history"`
}

type RatingRequest struct {
	Message  string `json:"message"`
	Response string `json:"response"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback,omitempty"`
}

type RatingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Status         string    `json:"status"`
	ActiveSessions int       `json:"active_sessions"`
	ModelOnline    bool      `json:"model_online"`
	Timestamp      time.Time `json:"timestamp"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type UserInfo struct {
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type VerifyRequest struct {
	Token string `json:"token"`
}

type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}

type EmployeeQuery struct {
	Name     string `schema:"name"`
	Email    string `schema:"email"`
	Position string `schema:"position"`
	Table    string `schema:"table"`
}

type EmployeeInfo struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	Table      string `json:"table,omitempty"`
	BloodGroup string `json:"blood_group,omitempty"`
	Team       string `json:"team,omitempty"`
}

type TeamResponse struct {
	Table   string         `json:"table"`
	Members []EmployeeInfo `json:"members"`
}

type CoordinatorResponse struct {
	Table       string `json:"table"`
	Coordinator string `json:"coordinator"`
	Email       string `json:"email,omitempty"`
}
