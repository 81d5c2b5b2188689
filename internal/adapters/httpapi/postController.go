package httpapi

import (
	"strconv"

	postPort "yoripe/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) Index(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	res, err := ctl.pc.ListPosts(c.Request.Context(), actorFrom(c), page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}

func (ctl *PostController) Store(c *gin.Context) {
	var req struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
		Status  int    `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationFailed(c, bindingErrors(err))
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), actorFrom(c), postPort.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}

func (ctl *PostController) Show(c *gin.Context) {
	res, err := ctl.pc.GetPost(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}

func (ctl *PostController) Update(c *gin.Context) {
	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		Status  *int    `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationFailed(c, bindingErrors(err))
		return
	}

	res, err := ctl.pc.UpdatePost(c.Request.Context(), actorFrom(c), c.Param("id"), postPort.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}

func (ctl *PostController) Destroy(c *gin.Context) {
	res, err := ctl.pc.DeletePost(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOKWithData(c, res)
}
