package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goaltime/goaltime/internal/ctxkeys"
	"github.com/goaltime/goaltime/internal/model"
	"github.com/goaltime/goaltime/internal/service"
	"github.com/goaltime/goaltime/internal/validation"
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	fields := validation.FieldErrors{}
	if err := validation.ValidateEmail(req.Email); err != nil {
		fields["email"] = err.Error()
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		fields["password"] = err.Error()
	}
	if !fields.Ok() {
		respondFieldErrors(w, fields)
		return
	}

	user, err := h.authService.Signup(req.Email, req.Password)
	if errors.Is(err, service.ErrEmailAlreadyExists) {
		respondFieldErrors(w, validation.FieldErrors{"email": "An account with this email already exists"})
		return
	}
	if err != nil {
		respondInternal(w, "signup failed", err)
		return
	}

	h.signIn(w, user)
	respondJSON(w, http.StatusCreated, user, "Account created successfully")
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Login(strings.TrimSpace(req.Email), req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		respondInternal(w, "login failed", err)
		return
	}

	h.signIn(w, user)
	respondJSON(w, http.StatusOK, user, "Logged in successfully")
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	respondJSON(w, http.StatusOK, nil, "Logged out")
}

// Me returns the authenticated user. The client calls this on load to
// decide between the auth screen and the dashboard.
func (h *authHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	respondJSON(w, http.StatusOK, user, "")
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *authHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := validation.ValidateEmail(req.Email); err != nil {
		respondFieldErrors(w, validation.FieldErrors{"email": err.Error()})
		return
	}

	// Always succeed so the response does not reveal whether the
	// address has an account.
	err := h.authService.ForgotPassword(req.Email)
	if err != nil && !errors.Is(err, service.ErrInvalidEmail) {
		respondInternal(w, "forgot password failed", err)
		return
	}

	respondJSON(w, http.StatusOK, nil, "If an account exists for that email, a reset link has been sent")
}

type resetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (h *authHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	fields := validation.FieldErrors{}
	if err := validation.ValidatePassword(req.Password); err != nil {
		fields["password"] = err.Error()
	}
	// Match is checked only once both fields pass validation.
	if fields.Ok() && req.Password != req.PasswordConfirm {
		fields["password_confirm"] = "Passwords do not match"
	}
	if !fields.Ok() {
		respondFieldErrors(w, fields)
		return
	}

	err := h.authService.ResetPassword(req.Token, req.Password)
	if errors.Is(err, service.ErrInvalidResetToken) {
		respondError(w, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}
	if err != nil {
		respondInternal(w, "reset password failed", err)
		return
	}

	respondJSON(w, http.StatusOK, nil, "Password updated. You can now log in.")
}

func (h *authHandler) signIn(w http.ResponseWriter, user *model.User) {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to sign jwt", "error", err, "user_id", user.ID)
		return
	}
	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))
}
