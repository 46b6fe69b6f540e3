package handlers

import (
	"errors"
	"net/http"

	"checklist_api/internal/models"
	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgUserRegistered     = "User terdaftar berhasil"
	msgUsernameTaken      = "Username sudah ada"
	msgInvalidCredentials = "Username atau password salah"
)

// Fields are untyped so that a non-string value is reported by the validator
// with its field message instead of a decoding error.
type registerInput struct {
	Username any `json:"username"`
	Password any `json:"password"`
	Email    any `json:"email"`
}

type loginInput struct {
	Username any `json:"username"`
	Password any `json:"password"`
}

// RegisterRequest documents the registration payload.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"p1"`
	Email    string `json:"email" example:"a@x.com"`
}

// LoginRequest documents the login payload.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"p1"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "New user"
// @Success      201   {object}  MessageResponse
// @Failure      400   {object}  MessageResponse
// @Failure      500   {object}  MessageResponse
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerInput
	h.bindBody(c, &input)

	username, err := requireText(input.Username, msgUsernameInvalid)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, rejectionMessage(err))
		return
	}
	password, err := requireText(input.Password, msgPasswordInvalid)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, rejectionMessage(err))
		return
	}
	email, err := requireText(input.Email, msgEmailInvalid)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, rejectionMessage(err))
		return
	}

	_, err = h.services.SignUp(c.Request.Context(), service.SignUpInput{
		Username: username,
		Password: password,
		Email:    email,
	})
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		if h.log != nil {
			h.log.Infow("auth_sign_up_rejected", "username", username, "err", err)
		}
		respondMessage(c, http.StatusBadRequest, msgUsernameTaken)
		return
	case errors.Is(err, service.ErrPasswordTooLong):
		respondMessage(c, http.StatusBadRequest, msgPasswordTooLong)
		return
	case err != nil:
		h.internalError(c, "auth_sign_up_failed", err, "username", username)
		return
	}

	c.Set(ctxUsernameKey, username)
	h.recordActivity(c, models.ActivityUserRegistered, "user registered", nil)
	respondMessage(c, http.StatusCreated, msgUserRegistered)
}

// @Summary      Log in
// @Description  Returns a bearer token valid for one hour.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  TokenResponse
// @Failure      400   {object}  MessageResponse
// @Failure      401   {object}  MessageResponse
// @Failure      500   {object}  MessageResponse
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginInput
	h.bindBody(c, &input)

	username, err := requireText(input.Username, msgUsernameInvalid)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, rejectionMessage(err))
		return
	}
	password, err := requireText(input.Password, msgPasswordInvalid)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, rejectionMessage(err))
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_sign_in_failed", "username", username)
			}
			respondMessage(c, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		h.internalError(c, "auth_sign_in_error", err, "username", username)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
