package server

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/san-e/flint/core/logger"
	"github.com/san-e/flint/feature/missions"
)

// Handler handles HTTP requests against the mission model.
type Handler struct {
	service *missions.Service
	logger  *zap.Logger

	// The missions service caches lazily without locking; one request at a
	// time may touch it.
	mu sync.Mutex
}

// NewHandler creates a new HTTP handler over the mission service.
func NewHandler(service *missions.Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the mission query routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/missions")
	group.Get("/bases", h.HandleBases)
	group.Get("/bases/:nickname", h.HandleBase)
	group.Get("/bases/:nickname/news", h.HandleBaseNews)
	group.Get("/factions", h.HandleFactions)
	group.Get("/factions/:affiliation", h.HandleFaction)
}

// HandleBases returns every mission base.
func (h *Handler) HandleBases(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	bases, err := h.service.Bases()
	if err != nil {
		logger.WithRayID(h.logger, c).Error("listing bases failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(bases), "bases": bases})
}

// HandleBase returns one mission base by nickname.
func (h *Handler) HandleBase(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	nickname := c.Params("nickname")
	base, ok, err := h.service.Base(nickname)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("base lookup failed",
			zap.String("nickname", nickname), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown base", "nickname": nickname})
	}
	return c.JSON(base)
}

// HandleBaseNews returns the news broadcast at one base.
func (h *Handler) HandleBaseNews(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	nickname := c.Params("nickname")
	items, err := h.service.NewsFor(nickname)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("news lookup failed",
			zap.String("nickname", nickname), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"base": nickname, "count": len(items), "news": items})
}

// HandleFactions returns every faction behavior profile.
func (h *Handler) HandleFactions(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	props, err := h.service.FactionProps()
	if err != nil {
		logger.WithRayID(h.logger, c).Error("listing factions failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(props), "factions": props})
}

// HandleFaction returns one faction behavior profile by affiliation.
func (h *Handler) HandleFaction(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	affiliation := c.Params("affiliation")
	prop, ok, err := h.service.FactionProp(affiliation)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("faction lookup failed",
			zap.String("affiliation", affiliation), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown faction", "affiliation": affiliation})
	}
	return c.JSON(prop)
}
