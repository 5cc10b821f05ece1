package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/engine"
	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

// HTTPHandler exposes the engine operations and read access over HTTP.
// Signature verification is the transport's concern and out of scope here;
// callers assert their identity in the request body.
type HTTPHandler struct {
	engine *engine.Engine
}

func NewHTTPHandler(e *engine.Engine) *HTTPHandler {
	return &HTTPHandler{engine: e}
}

// RegisterRoutes registers all the application routes.
func (h *HTTPHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/config", h.InitProgramConfig)
	router.PATCH("/api/config", h.UpdateProgramConfig)
	router.GET("/api/config", h.GetProgramConfig)

	router.POST("/api/rafflers", h.InitRaffler)
	router.GET("/api/rafflers/:id", h.GetRaffler)
	router.PATCH("/api/rafflers/:id", h.UpdateRaffler)
	router.POST("/api/rafflers/:id/active", h.ToggleActive)
	router.GET("/api/rafflers/:id/raffles", h.ListRaffles)
	router.DELETE("/api/rafflers/:id", h.DeleteRaffler)

	router.POST("/api/raffles", h.InitRaffle)
	router.GET("/api/raffles/:id", h.GetRaffle)
	router.POST("/api/raffles/:id/tickets", h.BuyTickets)
	router.POST("/api/raffles/:id/draw", h.DrawWinner)
	router.POST("/api/raffles/:id/claim", h.ClaimPrize)
	router.POST("/api/raffles/:id/collect", h.CollectNft)
	router.POST("/api/raffles/:id/recover", h.RecoverPrize)
	router.POST("/api/raffles/:id/uri", h.SetEntrantsURI)
	router.DELETE("/api/raffles/:id", h.DeleteRaffle)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// respondError maps the engine's error taxonomy onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, raffle.ErrNotFound),
		errors.Is(err, raffle.ErrAccountNotInitialized),
		errors.Is(err, raffle.ErrConfigNotInitialized):
		status = http.StatusNotFound
	case errors.Is(err, raffle.ErrUnauthorized),
		errors.Is(err, raffle.ErrAdminOnly),
		errors.Is(err, raffle.ErrOnlyAdminCanClaim),
		errors.Is(err, raffle.ErrOnlyWinnerOrAdminCanSettle):
		status = http.StatusForbidden
	case errors.Is(err, raffle.ErrAlreadyClaimed),
		errors.Is(err, raffle.ErrWinnerAlreadyDrawn),
		errors.Is(err, raffle.ErrRandomnessAlreadyRequested),
		errors.Is(err, raffle.ErrConfigExists),
		errors.Is(err, raffle.ErrSlugExists),
		errors.Is(err, raffle.ErrRafflerExists),
		errors.Is(err, raffle.ErrSoldOut):
		status = http.StatusConflict
	}

	if status == http.StatusBadRequest {
		logger.Debug("request rejected", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
