package routes

import (
	"log"

	"github.com/AmitC04/fitlife-lk/controllers"
	"github.com/AmitC04/fitlife-lk/middlewares"
	"github.com/AmitC04/fitlife-lk/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = 10 << 20

	planSvc := services.NewPlanService()
	ocrSvc, err := services.NewOCRService()
	if err != nil {
		// Menu OCR is optional; uploads still work without it.
		log.Printf("OCR service unavailable: %v", err)
	}

	dietCtl := controllers.NewDietController(planSvc)
	exerciseCtl := controllers.NewExerciseController(planSvc)
	uploadCtl := controllers.NewUploadController(ocrSvc)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "FitLife API running"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	user := r.Group("/api/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/metrics", controllers.GetMetrics)
	}

	upload := r.Group("/api/upload")
	upload.Use(middlewares.AuthMiddleware())
	{
		upload.POST("/menu", uploadCtl.UploadMenu)
	}

	diet := r.Group("/api/diet")
	diet.Use(middlewares.AuthMiddleware())
	{
		diet.POST("/generate", dietCtl.Generate)
	}

	exercise := r.Group("/api/exercise")
	exercise.Use(middlewares.AuthMiddleware())
	{
		exercise.POST("/generate", exerciseCtl.Generate)
	}

	return r
}
