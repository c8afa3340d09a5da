package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moodlens/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	checkInH *CheckInHandler,
	contentH *ContentHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	users := r.Group("/users")
	users.POST("", userH.CreateUser)
	users.GET("/me", JWTAuthMiddleware(jwtSvc), userH.Me)

	auth := r.Group("/auth")
	auth.POST("/login", userH.Login)
	auth.POST("/refresh", userH.RefreshToken)
	auth.POST("/logout", userH.Logout)

	checkIns := r.Group("/checkins", JWTAuthMiddleware(jwtSvc))
	checkIns.POST("", checkInH.CreateCheckIn)
	checkIns.GET("", checkInH.ListCheckIns)
	checkIns.GET("/:id", checkInH.GetCheckIn)
	checkIns.GET("/:id/similar", checkInH.SimilarCheckIns)

	patterns := r.Group("/patterns", JWTAuthMiddleware(jwtSvc))
	patterns.GET("/summary", checkInH.PatternSummary)
	patterns.GET("/history/:category", checkInH.EmotionHistory)

	// El contenido del check-in guiado es público.
	contentGroup := r.Group("/content")
	contentGroup.GET("/emotions", contentH.ListEmotions)
	contentGroup.GET("/questions", contentH.InitialQuestions)
	contentGroup.GET("/prompts/:category", contentH.JournalPrompts)
	contentGroup.POST("/triage", contentH.Triage)
	contentGroup.GET("/voice-prompts", contentH.VoicePrompts)
	contentGroup.GET("/actions/:category", contentH.ActionPlan)
	contentGroup.GET("/emergency", contentH.EmergencyResources)
	contentGroup.GET("/audio/:exercise", contentH.AudioScript)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
