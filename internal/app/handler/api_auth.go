package handler

import (
	"net/http"

	"github.com/lucian886/healthManagement/internal/app/ds"
	"github.com/lucian886/healthManagement/internal/app/pkg/apperr"
	"github.com/lucian886/healthManagement/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// authResponse is the shared register/login payload.
type authResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	UserID    uint   `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// ApiRegister registers a new account and signs the user in.
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/auth/register [post]
func (h *Handler) ApiRegister(ctx *gin.Context) {
	type requestBody struct {
		Username string `json:"username" binding:"required,min=3,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if taken, err := h.Repository.UsernameExists(body.Username); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	} else if taken {
		h.appError(ctx, apperr.Conflict("username already exists"))
		return
	}
	if taken, err := h.Repository.EmailExists(body.Email); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	} else if taken {
		h.appError(ctx, apperr.Conflict("email already registered"))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	user := &ds.User{
		Username: body.Username,
		Email:    body.Email,
		Password: string(hashedPassword),
		Enabled:  true,
	}
	if err := h.Repository.CreateUser(user); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	// Every account starts with an empty profile row.
	if err := h.Repository.CreateProfile(&ds.UserProfile{UserID: user.ID}); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	h.issueCredentials(ctx, user)
}

// ApiLogin authenticates by username or email.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/auth/login [post]
func (h *Handler) ApiLogin(ctx *gin.Context) {
	type requestBody struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByLogin(body.Username)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}

	if !user.Enabled {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "account disabled"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}

	h.issueCredentials(ctx, user)
}

// ApiLogout drops the redis session, if one backs this request.
// @Summary Log out
// @Tags auth
// @Security BearerAuth
// @Router /api/auth/logout [post]
func (h *Handler) ApiLogout(ctx *gin.Context) {
	if h.SessionService != nil {
		if sessionID, err := ctx.Cookie("session_id"); err == nil && sessionID != "" {
			_ = h.SessionService.Delete(ctx.Request.Context(), sessionID)
		}
	}
	ctx.SetCookie("session_id", "", -1, "/", "", false, true)

	jsonMessage(ctx, "logged out", nil)
}

// issueCredentials signs a JWT and mints a session cookie for the user.
func (h *Handler) issueCredentials(ctx *gin.Context, user *ds.User) {
	token, err := h.JWTService.Generate(user.ID, user.Username)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	if h.SessionService != nil {
		sessionID := uuid.New().String()
		data := auth.SessionData{UserID: user.ID, Username: user.Username}
		if err := h.SessionService.Create(ctx.Request.Context(), sessionID, data); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		ctx.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	}

	jsonResponse(ctx, authResponse{
		Token:     token,
		TokenType: "Bearer",
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
	})
}
