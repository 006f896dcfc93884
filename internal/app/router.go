package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sealgate.io/sealgate/ent"
	"sealgate.io/sealgate/internal/api/handlers"
	"sealgate.io/sealgate/internal/api/middleware"
	"sealgate.io/sealgate/internal/config"
)

func newRouter(cfg *config.Config, server *handlers.Server, entClient *ent.Client) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{cfg.Signing.BaseURL},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Access-Token", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	router.GET("/health/live", server.GetLiveness)
	router.GET("/health/ready", server.GetReadiness)

	admin := middleware.RequireAdmin(cfg.Security.AdminAccessToken)
	scoped := middleware.RequireProjectOrAdmin(entClient, cfg.Security.AdminAccessToken)

	api := router.Group("/api")

	// Requester-facing API: admin for project lifecycle, project token for
	// everything inside one project.
	api.POST("/projects", admin, server.CreateProject)
	api.GET("/projects", admin, server.ListProjects)
	api.DELETE("/projects/:id", admin, server.DeleteProject)

	proj := api.Group("/projects/:id", scoped)
	{
		proj.GET("", server.GetProject)
		proj.POST("/documents", server.UploadDocument)
		proj.GET("/documents", server.ListDocuments)

		proj.POST("/investors", server.CreateInvestor)
		proj.GET("/investors", server.ListInvestors)
		proj.PUT("/investors/:investor_id", server.UpdateInvestor)
		proj.DELETE("/investors/:investor_id", server.DeleteInvestor)

		proj.POST("/envelopes", server.CreateEnvelope)
		proj.GET("/envelopes", server.ListEnvelopes)
		proj.GET("/envelopes/:envelope_id", server.GetEnvelope)
		proj.POST("/envelopes/:envelope_id/send", server.SendEnvelope)
		proj.DELETE("/envelopes/:envelope_id", server.DeleteEnvelope)
		proj.GET("/envelopes/:envelope_id/events", server.ListEnvelopeEvents)
		proj.GET("/envelopes/:envelope_id/audit", server.GetEnvelopeAudit)
		proj.GET("/envelopes/:envelope_id/final.pdf", server.GetEnvelopeFinalPDF)
		proj.GET("/envelopes/:envelope_id/links", server.ListMagicLinks)
	}

	// Signer-facing API: the capability token in the path is the only
	// authorization.
	sign := api.Group("/sign/:token")
	{
		sign.GET("", server.OpenSession)
		sign.GET("/document", server.GetSessionDocument)
		sign.POST("/consent", server.Consent)
		sign.POST("/values", server.SaveValues)
		sign.POST("/complete", server.CompleteSigning)
		sign.GET("/final.pdf", server.GetSessionFinalPDF)
	}

	return router
}
