package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: auth}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.Validationf("invalid request body"))
		return
	}

	if err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role)); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, messageResponse{Message: "User registered successfully!"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.Validationf("invalid request body"))
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: "user not found"})
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "incorrect password"})
			return
		}
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{Message: "Login successful!", Token: token})
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.Validationf("invalid request body"))
		return
	}

	token, err := h.authService.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials or not an admin"})
			return
		}
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
