package main

import (
	"context"
	"net/http"
	"time"

	"github.com/careercracker/webclient/config"
	_ "github.com/careercracker/webclient/docs" // Swagger docs - auto-generated
	"github.com/careercracker/webclient/internal/backend"
	userctrl "github.com/careercracker/webclient/internal/controller/user"
	"github.com/careercracker/webclient/internal/logger"
	"github.com/careercracker/webclient/internal/middleware"
	"github.com/careercracker/webclient/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title CareerCracker Web Client Gateway
// @version 1.0
// @description Client gateway for the CareerCracker interview practice platform. Owns the interview session state machine and talks to the CareerCracker backend on behalf of the user.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			backend.NewClient,
			NewGinEngine,
		),

		// Services Layer
		fx.Provide(
			func(client *backend.Client, cfg *config.Config) service.InterviewSessionService {
				return service.NewInterviewSessionService(client, cfg)
			},
			service.NewTranscriptService,
			service.NewActiveInterviewService,
			func(client *backend.Client) service.ProfileService {
				return service.NewProfileService(client)
			},
			func(client *backend.Client) service.AuthService {
				return service.NewAuthService(client)
			},
			func(client *backend.Client) service.JobService {
				return service.NewJobService(client)
			},
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewInterviewController,
			userctrl.NewProfileController,
			userctrl.NewJobController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *userctrl.AuthController,
	interviewCtrl *userctrl.InterviewController,
	profileCtrl *userctrl.ProfileController,
	jobCtrl *userctrl.JobController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authCtrl.SignUp)
		authGroup.POST("/signin", authCtrl.SignIn)
	}

	// Everything below requires a bearer credential.
	protected := api.Group("")
	protected.Use(middleware.RequireCredential())
	{
		protected.GET("/dashboard", profileCtrl.Dashboard)
		protected.GET("/profile", profileCtrl.GetProfile)
		protected.PUT("/profile", profileCtrl.UpdateProfile)
		protected.PUT("/profile/job-title", profileCtrl.UpdateJobTitle)

		protected.GET("/jobs/career-info", jobCtrl.CareerInfo)

		interviews := protected.Group("/interviews")
		{
			interviews.POST("/open", interviewCtrl.Open)
			interviews.GET("/state", interviewCtrl.State)
			interviews.POST("/submit", interviewCtrl.Submit)
			interviews.POST("/next", interviewCtrl.Next)
			interviews.POST("/skip", interviewCtrl.Skip)
			interviews.POST("/complete", interviewCtrl.Complete)
			interviews.POST("/close", interviewCtrl.Close)
			interviews.POST("/clear-error", interviewCtrl.ClearError)

			interviews.POST("/rate", interviewCtrl.Rate)
			interviews.GET("/rating", interviewCtrl.QuestionRating)
			interviews.POST("/:session_id/feedback", interviewCtrl.SubmitFeedback)
			interviews.GET("/history", interviewCtrl.History)
			interviews.GET("/feedback/stream", interviewCtrl.StreamFeedback)

			interviews.POST("/transcription/start", interviewCtrl.StartTranscription)
			interviews.POST("/transcription/events", interviewCtrl.TranscriptionEvent)
			interviews.POST("/transcription/stop", interviewCtrl.StopTranscription)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CareerCracker web client gateway starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
