package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/LizServicos/home-services-api/internal/config"
	"github.com/LizServicos/home-services-api/internal/handlers"
	infraRepo "github.com/LizServicos/home-services-api/internal/infra/repository"
	"github.com/LizServicos/home-services-api/internal/middleware"
	"github.com/LizServicos/home-services-api/internal/notification"
	"github.com/LizServicos/home-services-api/internal/storage"
	ucAppointment "github.com/LizServicos/home-services-api/internal/usecase/appointment"
	ucReview "github.com/LizServicos/home-services-api/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	notificationWriter := notification.New(db)
	notificationDispatcher := notification.NewDispatcher(notificationWriter)

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		notificationDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	// ======================================================
	// USE CASES — REVIEWS
	// ======================================================
	createReviewUC := ucReview.NewCreateReview(reviewRepo, notificationDispatcher)
	deleteReviewUC := ucReview.NewDeleteReview(reviewRepo)
	listReviewsUC := ucReview.NewListReviews(reviewRepo)
	checkReviewedUC := ucReview.NewCheckReviewed(reviewRepo)
	userStatsUC := ucReview.NewGetUserStats(reviewRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, uploader, appointmentRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		transitionAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
	)

	reviewHandler := handlers.NewReviewHandler(
		createReviewUC,
		deleteReviewUC,
		listReviewsUC,
		checkReviewedUC,
		userStatsUC,
	)

	professionalHandler := handlers.NewProfessionalHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	addressHandler := handlers.NewAddressHandler(db)
	favoriteHandler := handlers.NewFavoriteHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	documentHandler := handlers.NewDocumentHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/categories", categoryHandler.List)
		api.GET("/categories/:id/subcategories", categoryHandler.ListSubcategories)
		api.GET("/professionals", professionalHandler.Search)
		api.GET("/professionals/:id", professionalHandler.Get)

		// ------------------------------
		// AUTH (com rate limit)
		// ------------------------------
		authLimiter := middleware.RateLimiter(rdb, 10, time.Minute)
		api.POST("/auth/register", authLimiter, authHandler.Register)
		api.POST("/auth/login", authLimiter, authHandler.Login)

		// ------------------------------
		// PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			secured.GET("/addresses", addressHandler.List)
			secured.POST("/addresses", addressHandler.Create)
			secured.PUT("/addresses/:id", addressHandler.Update)
			secured.DELETE("/addresses/:id", addressHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/reject", appointmentHandler.Reject)
			secured.PATCH("/appointments/:id/on-way", appointmentHandler.MarkOnWay)
			secured.PATCH("/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// REVIEWS
			// ------------------------------
			secured.POST("/reviews", reviewHandler.Create)
			secured.GET("/reviews", reviewHandler.List)
			secured.GET("/reviews/appointment/:appointmentId", reviewHandler.CheckReviewed)
			secured.GET("/reviews/professional/:professionalId", reviewHandler.ListForProfessional)
			secured.GET("/reviews/user/:userId/stats", reviewHandler.Stats)
			secured.DELETE("/reviews/:id", reviewHandler.Delete)

			secured.GET("/favorites", favoriteHandler.List)
			secured.POST("/favorites/:professionalId", favoriteHandler.Add)
			secured.DELETE("/favorites/:professionalId", favoriteHandler.Remove)

			// ------------------------------
			// DOCUMENTOS DE VERIFICAÇÃO
			// ------------------------------
			secured.GET("/documents", documentHandler.List)
			secured.GET("/documents/:id", documentHandler.Get)
			secured.POST("/documents", documentHandler.Create)
			secured.PUT("/documents/:id", documentHandler.Update)
			secured.DELETE("/documents/:id", documentHandler.Delete)
			secured.PATCH("/documents/:id/review", documentHandler.Review)

			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
		}
	}
}
