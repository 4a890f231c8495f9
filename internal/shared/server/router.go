package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/resumes"
	"resume-vault/internal/shared/auth"
	"resume-vault/internal/shared/config"
	"resume-vault/internal/shared/metrics"
	"resume-vault/internal/shared/server/middleware"
	"resume-vault/internal/shared/server/respond"
	"resume-vault/internal/users"
)

// RouterDeps carries the handlers and services the router wires up.
type RouterDeps struct {
	Config        config.Config
	Tokens        *auth.TokenService
	UsersHandler  *users.Handler
	ResumeHandler *resumes.Handler
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.UsersHandler.RegisterRoutes(api)

	authed := api.Group("")
	authed.Use(middleware.Auth(deps.Tokens))
	deps.ResumeHandler.RegisterRoutes(authed)

	r.GET("/metrics", metrics.Handler())

	registerStatic(r, deps.Config.StaticDir)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
