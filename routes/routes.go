package routes

import (
	"github.com/TheSubMish/nutrify-v2-sub000/controllers"
	"github.com/TheSubMish/nutrify-v2-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.POST("/onboard", controllers.CompleteOnboarding)
			user.DELETE("/profile", controllers.DeleteAccount)
			user.GET("/bmi", controllers.GetBodyMetrics)
		}

		meals := api.Group("/meals")
		{
			meals.POST("", controllers.LogMeal)
			meals.GET("", controllers.ListMeals)
			meals.GET("/schedule", controllers.GetSchedule)
			meals.GET("/:id", controllers.GetMeal)
			meals.PUT("/:id", controllers.UpdateMeal)
			meals.DELETE("/:id", controllers.DeleteMeal)
			meals.PATCH("/:id/relocate", controllers.RelocateMeal)
		}

		weights := api.Group("/weights")
		{
			weights.POST("", controllers.AddWeight)
			weights.GET("", controllers.ListWeights)
			weights.GET("/summary", controllers.GetWeightSummary)
		}

		goals := api.Group("/goals")
		{
			goals.GET("", controllers.GetGoal)
			goals.PUT("", controllers.UpdateGoal)
			goals.POST("/macro-split", controllers.CheckMacroSplit)
		}

		api.GET("/preferences", controllers.GetPreferences)
		api.PUT("/preferences", controllers.UpdatePreferences)

		api.GET("/water", controllers.GetWater)
		api.PUT("/water", controllers.UpdateWater)

		chat := api.Group("/chat")
		{
			chat.POST("", controllers.Chat)
			chat.GET("/history", controllers.ChatHistory)
			chat.POST("/nutrition-lookup", controllers.NutritionLookup)
			chat.POST("/photo-lookup", controllers.PhotoLookup)
		}

		progress := api.Group("/progress")
		{
			progress.GET("/summary", controllers.GetProgressSummary)
			progress.GET("/macros", controllers.GetMacroSeries)
			progress.GET("/weight", controllers.GetWeightSeries)
		}

		api.GET("/ws", controllers.ScheduleSocket)
	}

	return r
}
