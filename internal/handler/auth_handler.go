package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"hr-records/internal/model"
	"hr-records/internal/validate"
	"hr-records/pkg/apierror"
)

// AuthService is the slice of the auth service the handlers consume.
type AuthService interface {
	Signup(ctx context.Context, username string, email string, password string) (string, error)
	Login(ctx context.Context, email string, username string, password string) (string, error)
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload signupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
		return
	}

	values := validate.Values{
		"username": payload.Username,
		"email":    payload.Email,
		"password": payload.Password,
	}
	if errs := validate.Apply(values, validate.Signup()...); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	userID, err := h.service.Signup(r.Context(), payload.Username, payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.Response{
		Success: true,
		Message: "User created successfully.",
		UserID:  userID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
		return
	}

	values := validate.Values{
		"email":    payload.Email,
		"username": payload.Username,
		"password": payload.Password,
	}
	if errs := validate.Apply(values, validate.Login()...); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	token, err := h.service.Login(r.Context(), payload.Email, payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.Response{
		Success:  true,
		Message:  "Login successful.",
		JWTToken: token,
	})
}
