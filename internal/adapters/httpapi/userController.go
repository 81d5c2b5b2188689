package httpapi

import (
	"strconv"

	userPort "yoripe/internal/ports/user"

	"github.com/gin-gonic/gin"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

func (ctl *UserController) Index(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	res, err := ctl.uc.ListUsers(c.Request.Context(), actorFrom(c), page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}

func (ctl *UserController) Store(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Role     string `json:"role" binding:"required,oneof=admin manager user"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationFailed(c, bindingErrors(err))
		return
	}

	res, err := ctl.uc.CreateUser(c.Request.Context(), actorFrom(c), userPort.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}

func (ctl *UserController) Show(c *gin.Context) {
	res, err := ctl.uc.GetUser(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}

func (ctl *UserController) Update(c *gin.Context) {
	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Role     *string `json:"role"`
		Password *string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationFailed(c, bindingErrors(err))
		return
	}

	res, err := ctl.uc.UpdateUser(c.Request.Context(), actorFrom(c), c.Param("id"), userPort.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}

func (ctl *UserController) Destroy(c *gin.Context) {
	res, err := ctl.uc.DeleteUser(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}
