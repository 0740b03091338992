package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillfit-backend/internal/analysis"
	"skillfit-backend/internal/match"
	"skillfit-backend/internal/match/gemini"
	"skillfit-backend/internal/shared/config"
	"skillfit-backend/internal/shared/server/middleware"
	"skillfit-backend/internal/shared/server/respond"
	"skillfit-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	matcher := newMatcher(cfg)
	analysisSvc := analysis.NewService(matcher)
	analysisHandler := analysis.NewHandler(analysisSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	analysisHandler.RegisterRoutes(api)

	return r
}

// newMatcher picks the similarity oracle: Gemini embeddings when an API key
// is configured, exact matching otherwise or when the client fails to start.
func newMatcher(cfg config.Config) *match.Matcher {
	matcher := match.New(match.ExactOracle{})
	matcher.Threshold = cfg.SimilarityThreshold

	if cfg.GeminiAPIKey == "" {
		telemetry.Info("match.mode", map[string]any{"mode": "exact"})
		return matcher
	}

	oracle, err := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		telemetry.Error("match.gemini_init_failed", map[string]any{"error": err.Error()})
		telemetry.Info("match.mode", map[string]any{"mode": "exact"})
		return matcher
	}

	matcher.Oracle = oracle
	telemetry.Info("match.mode", map[string]any{"mode": "semantic"})
	return matcher
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
