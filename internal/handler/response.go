package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CICEROsandbox/oversetter/internal/service"
	"github.com/CICEROsandbox/oversetter/internal/service/ai"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps pipeline failures to exactly one visible
// message. Every upstream variant gets the same handling: no detail
// leaks, nothing is retried.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "enter text to translate"})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, ai.ErrUpstream):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "translation service unavailable"})
	case errors.Is(err, service.ErrFetch):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "article fetch failed"})
	case errors.Is(err, service.ErrNoContent):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "no article content found"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
