package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/catalog"
	"github.com/snap-point/tour-guide-api/controllers"
	"github.com/snap-point/tour-guide-api/media"
	"github.com/snap-point/tour-guide-api/middleware"
	"github.com/snap-point/tour-guide-api/sessions"
)

// Services are the long-lived dependencies the handlers share.
type Services struct {
	Catalog  *catalog.Catalog
	Sessions *sessions.Manager
	Tokens   *sessions.TokenIssuer
	Signer   media.Signer
}

func SetupRoutes(r *gin.Engine, svc *Services) {
	// Initialize controllers
	sessionController := controllers.NewSessionController(svc.Sessions, svc.Tokens)
	profileController := controllers.NewProfileController()
	attractionController := controllers.NewAttractionController()
	tourController := controllers.NewTourController(svc.Signer)
	scanController := controllers.NewScanController(svc.Catalog)
	healthController := controllers.NewHealthController()

	r.GET("/health", healthController.Health)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/sessions", sessionController.StartSession)
	}

	// Session routes
	protected := r.Group("/api")
	protected.Use(middleware.SessionMiddleware(svc.Sessions, svc.Tokens))
	{
		protected.DELETE("/session", sessionController.EndSession)

		SetupProfileRoutes(protected, profileController)
		SetupAttractionRoutes(protected, attractionController)
		SetupTourRoutes(protected, tourController)
		SetupScanRoutes(protected, scanController)
	}
}
