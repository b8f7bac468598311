// Package routes wires the portal controllers onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dccc/clubportal/internal/app/controllers"
	"github.com/dccc/clubportal/internal/app/models/dto"
	"github.com/dccc/clubportal/internal/middleware"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Submission   *controllers.SubmissionController
	Event        *controllers.EventController
	Activity     *controllers.ActivityController
	Leaderboard  *controllers.LeaderboardController
	Notification *controllers.NotificationController
	Settings     *controllers.SettingsController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	// Approved submissions showcase (public access)
	submissions := v1.Group("/submissions")
	{
		submissions.GET("", ctrl.Submission.ListApproved)
		submissions.GET("/:id", ctrl.Submission.Get)
	}

	// Events and activities (public access)
	v1.GET("/events", ctrl.Event.List)
	v1.GET("/activities", ctrl.Activity.List)

	// Leaderboard with archived previous month (public access)
	v1.GET("/leaderboard", ctrl.Leaderboard.Get)

	// Member directory (public access)
	v1.GET("/users", ctrl.User.List)
	v1.GET("/users/:id", ctrl.User.Get)

	// Site footer content (public access)
	v1.GET("/settings/footer", ctrl.Settings.GetFooter)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", ctrl.Auth.GetProfile)
		authenticated.PUT("/auth/profile", ctrl.Auth.UpdateProfile)

		// Own submissions, appreciation and comments
		authenticated.GET("/submissions/mine", ctrl.Submission.ListMine)
		authenticated.POST("/submissions", ctrl.Submission.Create)
		authenticated.POST("/submissions/:id/appreciate", ctrl.Submission.ToggleAppreciation)
		authenticated.POST("/submissions/:id/comments", ctrl.Submission.AddComment)

		// Notification feed
		authenticated.GET("/notifications", ctrl.Notification.List)
		authenticated.POST("/notifications/read", ctrl.Notification.MarkRead)

		// --- Admin routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/submissions", ctrl.Submission.ListAll)
			admin.PUT("/submissions/:id", ctrl.Submission.Update)
			admin.DELETE("/submissions/:id", ctrl.Submission.Delete)
			admin.PUT("/submissions/:id/status", ctrl.Submission.UpdateStatus)

			admin.PUT("/users/:id/role", ctrl.User.UpdateRole)
			admin.PUT("/users/:id/suspension", ctrl.User.ToggleSuspension)

			admin.POST("/events", ctrl.Event.Create)
			admin.PUT("/events/:id", ctrl.Event.Update)
			admin.DELETE("/events/:id", ctrl.Event.Delete)

			admin.POST("/activities", ctrl.Activity.Create)
			admin.PUT("/activities/:id", ctrl.Activity.Update)
			admin.DELETE("/activities/:id", ctrl.Activity.Delete)

			admin.PUT("/leaderboard", ctrl.Leaderboard.Set)

			admin.POST("/announcements", ctrl.Notification.Announce)

			admin.PUT("/settings/footer", ctrl.Settings.UpdateFooter)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
