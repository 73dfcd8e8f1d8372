package router

import (
	"github.com/gin-gonic/gin"

	authhandler "github.com/wmastover/labupops-lead-qualifier/internal/feature/auth/transport/handler"
	backgroundhandler "github.com/wmastover/labupops-lead-qualifier/internal/feature/background/transport/handler"
	logohandler "github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/transport/handler"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/http/handler"
	jwtmw "github.com/wmastover/labupops-lead-qualifier/internal/platform/jwt"
)

func NewRouter(auth *authhandler.AuthHandler, logo *logohandler.LogoFinderHandler,
	background *backgroundhandler.BackgroundHandler) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Routes below require a valid JWT in the Authorization header
	protected := r.Group("/v1")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.POST("/logo/find", logo.FindLogo)
		protected.POST("/background", background.Generate)
	}

	return r
}
