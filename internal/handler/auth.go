package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/raan-pos/api/internal/auth"
	"github.com/raan-pos/api/internal/enum"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("ERROR: failed to encode response: %v", err)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// AuthHandler exchanges the shop PIN for an admin token. The PIN is
// hashed once at startup so every comparison goes through bcrypt.
type AuthHandler struct {
	jwtSecret string
	pinHash   []byte
}

func NewAuthHandler(jwtSecret, adminPIN string) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{jwtSecret: jwtSecret, pinHash: hash}, nil
}

type loginRequest struct {
	PIN string `json:"pin"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PIN == "" {
		writeError(w, http.StatusBadRequest, "pin is required")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.pinHash, []byte(req.PIN)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid pin")
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, enum.RoleAdmin)
	if err != nil {
		log.Printf("ERROR: failed to generate token: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, Role: enum.RoleAdmin})
}
