package router

import (
	"net/http"

	"teenxcel/config"
	"teenxcel/internal/events"
	"teenxcel/internal/handler"
	"teenxcel/internal/middleware"
	"teenxcel/internal/repository"
	"teenxcel/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the process-wide collaborators built in main.
type Deps struct {
	DB        *gorm.DB
	Proofs    service.ObjectStore
	Publisher events.Publisher
	Limiter   middleware.Limiter
	Log       *zap.Logger
}

func Setup(cfg *config.Config, d Deps) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.RequestLogger(d.Log.Named("http")))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RateLimit(d.Limiter, d.Log))

	// Repositories
	adminRepo := repository.NewAdminRepository(d.DB)
	courseRepo := repository.NewCourseRepository(d.DB)
	couponRepo := repository.NewCouponRepository(d.DB)
	paymentRepo := repository.NewPaymentRepository(d.DB)
	callRepo := repository.NewCallRepository(d.DB)
	careerRepo := repository.NewCareerRepository(d.DB)
	notificationRepo := repository.NewNotificationRepository(d.DB)

	// Services
	authSvc := service.NewAuthService(&cfg.JWT, adminRepo)
	courseSvc := service.NewCourseService(courseRepo)
	couponSvc := service.NewCouponService(couponRepo, courseRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, courseRepo, couponSvc, d.Proofs, d.Publisher, cfg.Storage.Folder, d.Log)
	contactSvc := service.NewContactService(callRepo, careerRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)

	// Handlers
	adminHandler := handler.NewAdminHandler(&cfg.JWT, authSvc, d.Log)
	courseHandler := handler.NewCourseHandler(courseSvc, d.Log)
	couponHandler := handler.NewCouponHandler(couponSvc, d.Log)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, cfg.Storage.TempDir, cfg.Storage.MaxUploadBytes, d.Log)
	contactHandler := handler.NewContactHandler(contactSvc, d.Log)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, d.Log)

	adminOnly := middleware.AdminRequired(&cfg.JWT, authSvc)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is live")
	})

	api := r.Group("/api")
	{
		api.POST("/contact/request", contactHandler.RequestCall)
		api.POST("/career/create", contactHandler.RequestJoin)
		api.POST("/payment/create", paymentHandler.Create)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/login", adminHandler.Login)
		admin.POST("/logout", adminHandler.Logout)

		authed := admin.Group("", adminOnly)
		authed.GET("/loggedin", adminHandler.LoggedIn)
		authed.GET("/calls", contactHandler.ListCalls)
		authed.POST("/update-call/:id", contactHandler.UpdateCall)
		authed.POST("/delete-call/:id", contactHandler.DeleteCall)
		authed.GET("/payments", paymentHandler.List)
		authed.GET("/payments/export", paymentHandler.Export)
		authed.POST("/update-payment/:id", paymentHandler.UpdateStatus)
		authed.POST("/delete-payment/:id", paymentHandler.Delete)
		authed.GET("/career-requests", contactHandler.ListJoinRequests)
		authed.POST("/delete-join-request/:id", contactHandler.DeleteJoinRequest)
		authed.POST("/create-coupon", couponHandler.Create)
		authed.POST("/delete-coupon/:id", couponHandler.Delete)
	}

	courses := api.Group("/courses")
	{
		courses.GET("/get-all", courseHandler.List)
		courses.GET("/get-course/:code", courseHandler.Get)
		courses.POST("/create", adminOnly, courseHandler.Create)
		courses.POST("/update", adminOnly, courseHandler.Update)
		courses.POST("/delete/:id", adminOnly, courseHandler.Delete)
	}

	coupons := api.Group("/coupons")
	{
		coupons.POST("/verify", couponHandler.Verify)
		coupons.GET("/get", adminOnly, couponHandler.List)
		coupons.POST("/create", adminOnly, couponHandler.Create)
		coupons.POST("/delete/:id", adminOnly, couponHandler.Delete)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("/get", notificationHandler.List)
		notifications.GET("/get-single/:id", adminOnly, notificationHandler.Get)
		notifications.POST("/create", adminOnly, notificationHandler.Create)
		notifications.POST("/update/:id", adminOnly, notificationHandler.Update)
		notifications.POST("/delete/:id", adminOnly, notificationHandler.Delete)
	}

	return r
}
