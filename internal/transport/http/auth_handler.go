package handlers

import (
	"errors"
	"net/http"

	"learningapp/internal/application/usecase"
	"learningapp/internal/domain"

	"github.com/gin-gonic/gin"
)

// X-Screen-ID связывает сабмит с экраном: повторный сабмит с того же
// экрана, пока первый в полете, отклоняется.
const screenHeader = "X-Screen-ID"

type AuthHandler struct {
	authUC *usecase.AuthUseCase
}

func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: uc}
}

// Без binding:"required": пустые поля должны дойти до валидатора,
// чтобы пользователь получил его сообщение, а не ошибку биндинга.
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name, err := h.authUC.Login(c.Request.Context(), c.GetHeader(screenHeader), req.Email, req.Password)
	if err != nil {
		status, msg := authErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"message": "Hello " + name + "!",
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form domain.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUC.Register(c.Request.Context(), c.GetHeader(screenHeader), form); err != nil {
		status, msg := authErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully!"})
}

// authErrorResponse переводит доменную ошибку в статус и текст уведомления.
// Тексты — те самые, что видит пользователь в модалке.
func authErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "Please fill in all fields"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return http.StatusBadRequest, "Passwords do not match"
	case errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusBadRequest, "Password must be at least 6 characters long"
	case errors.Is(err, domain.ErrSubmitInFlight):
		return http.StatusConflict, "Request already in progress"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
