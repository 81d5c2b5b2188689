package httpapi

import (
	"errors"

	"yoripe/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ ac AuthUseCase }

func NewAuthController(ac AuthUseCase) *AuthController { return &AuthController{ac: ac} }

func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationFailed(c, bindingErrors(err))
		return
	}

	res, err := ctl.ac.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			respondUnauthorized(c)
			return
		}
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}

// Logout revokes the exact token this request presented.
func (ctl *AuthController) Logout(c *gin.Context) {
	if err := ctl.ac.Logout(c.Request.Context(), tokenIDFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c)
}
