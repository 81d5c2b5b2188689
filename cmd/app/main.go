package main

import (
	"os"

	dbadapter "yoripe/internal/adapters/database"
	"yoripe/internal/adapters/httpapi"
	redisadapter "yoripe/internal/adapters/redis"
	"yoripe/internal/config"
	"yoripe/internal/core/post"
	"yoripe/internal/core/user"

	authapp "yoripe/internal/core/auth/service"
	postapp "yoripe/internal/core/post/service"
	userapp "yoripe/internal/core/user/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.Role{},
		&user.User{},
		&post.Post{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	if err := dbadapter.Seed(config.DB, os.Getenv("APP_ENV")); err != nil {
		config.Logger.Fatal("Error seeding roles and users:", zap.Error(err))
	}
	config.Logger.Info("✅ Roles and bootstrap users seeded")

	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)
	tokenRepo := redisadapter.NewTokenRepositoryRedis(config.RedisClient)

	authSvc := authapp.NewAuthService(userRepo, tokenRepo, []byte(os.Getenv("JWT_SECRET")))
	userSvc := userapp.NewUserService(userRepo)
	postSvc := postapp.NewPostService(postRepo)

	r := httpapi.SetupRoutes(authSvc, userSvc, postSvc)

	config.Logger.Info("App is running...")

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
