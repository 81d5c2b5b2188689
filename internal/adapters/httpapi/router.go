package httpapi

import (
	"context"

	"yoripe/internal/core/user"

	postPort "yoripe/internal/ports/post"
	tokenPort "yoripe/internal/ports/token"
	userPort "yoripe/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: what the controllers need from the application services.

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*tokenPort.LoginResponse, error)
	Logout(ctx context.Context, tokenID string) error
	Authenticate(ctx context.Context, raw string) (*user.User, string, error)
}

type UserUseCase interface {
	ListUsers(ctx context.Context, actor *user.User, page int) (*userPort.Page, error)
	CreateUser(ctx context.Context, actor *user.User, in userPort.CreateUserInput) (*userPort.UserDTO, error)
	GetUser(ctx context.Context, actor *user.User, id string) (*userPort.UserDTO, error)
	UpdateUser(ctx context.Context, actor *user.User, id string, in userPort.UpdateUserInput) (*userPort.UserDTO, error)
	DeleteUser(ctx context.Context, actor *user.User, id string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	ListPosts(ctx context.Context, actor *user.User, page int) (*postPort.Page, error)
	CreatePost(ctx context.Context, actor *user.User, in postPort.CreatePostInput) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, actor *user.User, id string) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, actor *user.User, id string, in postPort.UpdatePostInput) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, actor *user.User, id string) (*postPort.PostDTO, error)
}

// SetupRoutes wires the controllers; the use cases are injected from outside.
func SetupRoutes(authUC AuthUseCase, userUC UserUseCase, postUC PostUseCase) *gin.Engine {
	r := gin.Default()
	ac := NewAuthController(authUC)
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)

	r.GET("/status", func(c *gin.Context) {
		respondOKWithData(c, gin.H{"status": "Available"})
	})

	r.POST("/login", ac.Login)

	auth := r.Group("/", AuthMiddleware(authUC))
	auth.POST("/logout", ac.Logout)

	auth.GET("/posts", pc.Index)
	auth.POST("/posts", pc.Store)
	auth.GET("/posts/:id", pc.Show)
	auth.PUT("/posts/:id", pc.Update)
	auth.DELETE("/posts/:id", pc.Destroy)

	auth.GET("/users", uc.Index)
	auth.POST("/users", uc.Store)
	auth.GET("/users/:id", uc.Show)
	auth.PUT("/users/:id", uc.Update)
	auth.DELETE("/users/:id", uc.Destroy)

	r.NoRoute(func(c *gin.Context) {
		respondNotFound(c)
	})

	return r
}
