package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/canvas"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/app"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/lib/logger/sl"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/render"
)

const (
	defaultWheelSize = 500
	minWheelSize     = 64
	maxWheelSize     = 2048
	maxWheelOptions  = 100
)

type Handler struct {
	svc    *app.OptionService
	logger *slog.Logger
}

func NewHandler(svc *app.OptionService, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/healthz", h.Healthz)
	e.Any("/generate-options", h.GenerateOptions)
	e.Any("/.netlify/functions/generate-options", h.GenerateOptions)
	e.GET("/wheel.png", h.WheelPNG)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GenerateOptions(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method Not Allowed"})
	}

	var req GenerateRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return mapError(c, h.logger, h.svc.ProviderName(), err)
	}
	if err := c.Validate(&req); err != nil {
		h.logger.Debug("invalid request", sl.RequestID(requestID(c)), "reason", validationMessage(err))
		return mapError(c, h.logger, h.svc.ProviderName(), domain.ErrEmptyPrompt)
	}

	out, err := h.svc.Generate(c.Request().Context(), req.Prompt)
	if err != nil {
		return mapError(c, h.logger, h.svc.ProviderName(), err)
	}

	return c.JSON(http.StatusOK, GenerateResponse{
		Options:  out.Options,
		Provider: out.Provider,
	})
}

// WheelPNG renders ?option=A&option=B&rotation=R&size=S as a PNG.
func (h *Handler) WheelPNG(c echo.Context) error {
	size := defaultWheelSize
	if raw := c.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minWheelSize || parsed > maxWheelSize {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "size must be an integer between 64 and 2048"})
		}
		size = parsed
	}

	rotation := 0.0
	if raw := c.QueryParam("rotation"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rotation must be a number"})
		}
		rotation = parsed
	}

	options := c.QueryParams()["option"]
	if len(options) > maxWheelOptions {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "at most 100 options are allowed"})
	}

	cv, err := canvas.New(size)
	if err != nil {
		return mapError(c, h.logger, h.svc.ProviderName(), err)
	}
	w := domain.NewWheel(options).WithRotation(rotation)
	if err := render.NewRenderer(cv, nil).Render(w); err != nil {
		return mapError(c, h.logger, h.svc.ProviderName(), err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "image/png")
	c.Response().WriteHeader(http.StatusOK)
	return cv.EncodePNG(c.Response())
}

func mapError(c echo.Context, logger *slog.Logger, provider string, err error) error {
	rid := sl.RequestID(requestID(c))

	var pe *domain.ProviderError
	switch {
	case errors.Is(err, domain.ErrEmptyPrompt):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Prompt is required"})
	case errors.As(err, &pe):
		logger.Error("provider error", rid, sl.Err(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error from " + provider + " API: " + pe.Message})
	case errors.Is(err, domain.ErrNoOptions):
		logger.Warn("no options in completion", rid)
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Failed to extract options from AI response"})
	default:
		logger.Error("internal error", rid, sl.Err(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate options: " + err.Error()})
	}
}
