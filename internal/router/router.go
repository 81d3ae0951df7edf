package router

import (
	"net/http"

	"socialnet/backend/internal/auth"
	"socialnet/backend/internal/handler"
	"socialnet/backend/internal/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup builds the gin engine with all application routes. Isolated from main so
// tests can run requests against the same route table.
func Setup() *gin.Engine {
	router := gin.Default()
	router.Use(monitoring.InstrumentHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Operational endpoints
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// Profile routes (protected)
		profileRoutes := apiV1.Group("/profile")
		profileRoutes.Use(auth.AuthMiddleware())
		{
			profileRoutes.GET("", handler.GetProfile)
			profileRoutes.PUT("", handler.UpdateProfile)
			profileRoutes.DELETE("", handler.DeleteProfile)
		}

		// Public user profiles
		apiV1.GET("/users/:id", handler.GetUserByID)

		// Follow graph (protected)
		followRoutes := apiV1.Group("")
		followRoutes.Use(auth.AuthMiddleware())
		{
			followRoutes.POST("/follow/:id", handler.FollowUser)
			followRoutes.POST("/unfollow/:id", handler.UnfollowUser)
		}

		// Post routes: reads are public, writes require authentication.
		postRoutes := apiV1.Group("/posts")
		{
			postRoutes.GET("", handler.GetPosts)
			postRoutes.GET("/:id", handler.GetPostByID)

			protected := postRoutes.Group("")
			protected.Use(auth.AuthMiddleware())
			{
				protected.POST("", handler.CreatePost)
				protected.PUT("/:id", handler.UpdatePost)
				protected.DELETE("/:id", handler.DeletePost)
				protected.POST("/:id/like", handler.LikePost)
				protected.POST("/:id/unlike", handler.UnlikePost)
			}
		}

		// Comment routes: same policy as posts.
		commentRoutes := apiV1.Group("/comments")
		{
			commentRoutes.GET("", handler.GetComments)
			commentRoutes.GET("/:id", handler.GetCommentByID)

			protected := commentRoutes.Group("")
			protected.Use(auth.AuthMiddleware())
			{
				protected.POST("", handler.CreateComment)
				protected.PUT("/:id", handler.UpdateComment)
				protected.DELETE("/:id", handler.DeleteComment)
			}
		}

		// Feed (protected)
		apiV1.GET("/feed", auth.AuthMiddleware(), handler.GetFeed)

		// Notifications (protected, scoped to the requester)
		notificationRoutes := apiV1.Group("/notifications")
		notificationRoutes.Use(auth.AuthMiddleware())
		{
			notificationRoutes.GET("", handler.GetNotifications)
			notificationRoutes.GET("/stream", handler.StreamNotifications)
		}
	}

	return router
}
