package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"config_service_backend/internal/services"
	"config_service_backend/pkg/utils"
)

// TokenRequest is the operator login payload.
type TokenRequest struct {
	Operator string `json:"operator" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// TokenHandler exposes operator token issuance.
type TokenHandler struct {
	tokens services.TokenService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(tokens services.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue handles POST /api/v1/auth/token.
func (h *TokenHandler) Issue(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "Issue: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return
	}

	token, err := h.tokens.IssueToken(req.Operator, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid operator name or password", ""))
		} else {
			utils.LogError(err, "Issue: Error from tokens.IssueToken")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to issue token", ""))
		}
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token})
}
