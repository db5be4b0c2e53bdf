package countries

import (
	"errors"
	"fmt"
	"net/url"

	"country-currency/core/apperrors"
	"country-currency/core/logger"
	"country-currency/feature/countries/reconcile"
	"country-currency/feature/countries/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for countries.
type Handler struct {
	service  *Service
	logger   *zap.Logger
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		logger:   logger,
		validate: validator.New(),
	}
}

// ListQuery holds the query parameters of GET /countries.
type ListQuery struct {
	Region   string `query:"region" validate:"omitempty,max=100"`
	Currency string `query:"currency" validate:"omitempty,alpha,max=10"`
	Sort     string `query:"sort"`
}

// RefreshResponse is returned by POST /countries/refresh.
type RefreshResponse struct {
	Message string `json:"message"`
	*reconcile.Result
}

// RegisterRoutes registers the countries routes.
// /countries/image is registered before /countries/:name so it is not taken for a name.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/status", h.HandleStatus)

	group := app.Group("/countries")
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/", h.HandleList)
	group.Get("/image", h.HandleImage)
	group.Get("/:name", h.HandleGet)
	group.Delete("/:name", h.HandleDelete)
}

// HandleRefresh fetches upstream data and reconciles the store.
// @Summary Refresh Countries
// @Description Fetch countries and exchange rates, then insert or update every country.
// @Tags countries
// @Produce json
// @Success 200 {object} RefreshResponse "Refresh result"
// @Failure 503 {object} map[string]string "External data source unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /countries/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	res, err := h.service.Refresh(c.UserContext())
	if err != nil {
		return h.fail(c, l, "Refresh failed", err)
	}

	return c.JSON(RefreshResponse{
		Message: fmt.Sprintf("Refreshed %d countries", res.Inserted+res.Updated),
		Result:  res,
	})
}

// HandleList returns the stored countries.
// @Summary List Countries
// @Description List countries, optionally filtered by region and currency and sorted.
// @Tags countries
// @Produce json
// @Param region query string false "Region (case-insensitive)"
// @Param currency query string false "Currency code (case-insensitive)"
// @Param sort query string false "Sort order" Enums(gdp_desc, gdp_asc, population_desc, population_asc, name_asc, name_desc)
// @Success 200 {array} models.Country "Countries"
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /countries [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		return h.fail(c, l, "Invalid list query", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}
	if err := h.validate.Struct(q); err != nil {
		return h.fail(c, l, "Invalid list query", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}
	sort, err := store.ParseSort(q.Sort)
	if err != nil {
		return h.fail(c, l, "Invalid list query", err)
	}

	countries, err := h.service.List(c.UserContext(), store.Filter{Region: q.Region, Currency: q.Currency}, sort)
	if err != nil {
		return h.fail(c, l, "List countries failed", err)
	}
	return c.JSON(countries)
}

// HandleGet returns a single country.
// @Summary Get Country
// @Description Get a country by name (case-insensitive).
// @Tags countries
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} models.Country "Country"
// @Failure 404 {object} map[string]string "Country not found"
// @Security ApiKeyAuth
// @Router /countries/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	country, err := h.service.Get(c.UserContext(), h.name(c))
	if err != nil {
		return h.fail(c, l, "Get country failed", err)
	}
	return c.JSON(country)
}

// HandleDelete removes a single country.
// @Summary Delete Country
// @Description Delete a country by name (case-insensitive).
// @Tags countries
// @Param name path string true "Country name"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Country not found"
// @Security ApiKeyAuth
// @Router /countries/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if err := h.service.Delete(c.UserContext(), h.name(c)); err != nil {
		return h.fail(c, l, "Delete country failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleImage serves the latest summary image.
// @Summary Summary Image
// @Description Get the PNG summary generated by the last refresh.
// @Tags countries
// @Produce png
// @Success 200 {file} binary "Summary image"
// @Failure 404 {object} map[string]string "Summary image not found"
// @Security ApiKeyAuth
// @Router /countries/image [get]
func (h *Handler) HandleImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	rc, size, err := h.service.Image(c.UserContext())
	if err != nil {
		return h.fail(c, l, "Summary image unavailable", err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.SendStream(rc, int(size))
}

// HandleStatus reports the record count and the last refresh time.
// @Summary Status
// @Description Total number of countries and the last successful refresh time.
// @Tags status
// @Produce json
// @Success 200 {object} models.Status "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	status, err := h.service.Status(c.UserContext())
	if err != nil {
		return h.fail(c, l, "Status failed", err)
	}
	return c.JSON(status)
}

func (h *Handler) name(c *fiber.Ctx) string {
	// Params are not unescaped by default, so "United%20States" must be decoded here.
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Params("name")
	}
	return name
}

// fail maps err onto a status code and writes the error body.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrExternalServiceUnavailable):
		l.Error(msg, zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "External data source unavailable",
			"details": err.Error(),
		})
	case errors.Is(err, apperrors.ErrNotFound):
		l.Debug(msg, zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundMessage(c),
		})
	case errors.Is(err, apperrors.ErrValidation):
		l.Debug(msg, zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	default:
		l.Error(msg, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

func notFoundMessage(c *fiber.Ctx) string {
	if c.Path() == "/countries/image" {
		return "Summary image not found"
	}
	return "Country not found"
}
