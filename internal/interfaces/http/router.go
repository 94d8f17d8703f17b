// Package http wires the gin engine: middleware chain, API routes, the
// /exports file tree, and the optional frontend build.
package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EchoNews615/komibot/internal/infrastructure/config"
	moderationhandlers "github.com/EchoNews615/komibot/internal/interfaces/http/handlers/moderation"
	"github.com/EchoNews615/komibot/internal/interfaces/http/middleware"
	"github.com/EchoNews615/komibot/internal/shared/logger"
	"github.com/EchoNews615/komibot/internal/shared/utils"
)

// Handlers groups the handler set the router mounts.
type Handlers struct {
	Member     *moderationhandlers.MemberHandler
	Punishment *moderationhandlers.PunishmentHandler
	Report     *moderationhandlers.ReportHandler
}

// NewRouter builds the engine. Mutating routes sit behind the api-key
// guard; read routes are open.
func NewRouter(cfg *config.Config, h Handlers, log logger.Interface) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger(log))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
	router.Use(limiter.Limit())

	apiKey := middleware.APIKeyAuth(cfg.Auth)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			utils.OKResponse(c, gin.H{"time": time.Now().UTC().Format(time.RFC3339)})
		})

		api.POST("/memberSync", apiKey, h.Member.SyncMember)
		api.POST("/memberSyncBatch", apiKey, h.Member.SyncMembersBatch)
		api.POST("/memberRemove", apiKey, h.Member.RemoveMember)
		api.GET("/members", h.Member.ListMembers)
		api.GET("/member/:id", h.Member.MemberDetail)
		api.GET("/member/:id/logs", h.Member.MemberLogs)
		api.GET("/member/:id/punishments", h.Member.MemberPunishments)

		api.POST("/logs", apiKey, h.Punishment.AppendLog)
		api.POST("/punish/:kind", apiKey, h.Punishment.Punish)
		api.POST("/ticket", apiKey, h.Punishment.RecordTicket)
		api.POST("/clear/member", apiKey, h.Punishment.ClearMember)
		api.POST("/clear/all", apiKey, h.Punishment.ClearAll)
		api.GET("/policy/next", h.Punishment.NextAction)

		api.GET("/history/:month", h.Report.History)
		api.POST("/export/monthly", apiKey, h.Report.ExportMonthly)
	}

	router.Static("/exports", cfg.Export.Dir)

	if dir := cfg.Static.Dir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			router.NoRoute(frontendHandler(dir))
		}
	}

	return router
}

// frontendHandler serves the dashboard build: an exact file when it
// exists, the same path with .html appended, else index.html so client
// side routing works.
func frontendHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Status(http.StatusNotFound)
			return
		}

		rel := strings.TrimPrefix(filepath.Clean("/"+c.Request.URL.Path), "/")
		candidates := []string{rel, rel + ".html"}
		for _, candidate := range candidates {
			full := filepath.Join(dir, candidate)
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				c.File(full)
				return
			}
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
