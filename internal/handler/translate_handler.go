package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/CICEROsandbox/oversetter/internal/model"
	"github.com/CICEROsandbox/oversetter/internal/service"
)

type TranslateHandler struct {
	service service.TranslationService
}

// Request/Response types

type translateRequest struct {
	Text           string `json:"text"`
	From           string `json:"from"`
	To             string `json:"to"`
	PreserveMarkup bool   `json:"preserveMarkup"`
	KeepNumerals   bool   `json:"keepNumerals"`
	Analyze        bool   `json:"analyze"`
}

type translationResponse struct {
	ID             string           `json:"id"`
	From           string           `json:"from"`
	To             string           `json:"to"`
	SourceText     string           `json:"sourceText"`
	Translation    string           `json:"translation"`
	RawOutput      string           `json:"rawOutput"`
	Report         *reportResponse  `json:"report,omitempty"`
	PreserveMarkup bool             `json:"preserveMarkup"`
	Chunks         int              `json:"chunks"`
	SourceURL      string           `json:"sourceUrl,omitempty"`
	SourceTitle    string           `json:"sourceTitle,omitempty"`
	CreatedAt      string           `json:"createdAt"`
}

type reportResponse struct {
	Text     string            `json:"text"`
	Sections []sectionResponse `json:"sections"`
}

type sectionResponse struct {
	Label string `json:"label,omitempty"`
	Body  string `json:"body"`
}

type aiTestResponse struct {
	Reply string `json:"reply"`
}

func NewTranslateHandler(service service.TranslationService) *TranslateHandler {
	return &TranslateHandler{service: service}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
	g.POST("/ai/test", h.TestProvider)
}

// Translate translates pasted text.
// @Summary Translate text
// @Description Translate text between Norwegian and English, optionally with a follow-up quality analysis
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateRequest true "Translation request"
// @Success 200 {object} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	from, to, err := parseDirection(req.From, req.To)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.Translate(c.Request().Context(), model.TranslationRequest{
		Text:           req.Text,
		From:           from,
		To:             to,
		PreserveMarkup: req.PreserveMarkup,
		KeepNumerals:   req.KeepNumerals,
		Analyze:        req.Analyze,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponse(result))
}

// TestProvider probes the configured model API.
// @Summary Test AI provider
// @Description Send a short probe message to the configured provider
// @Tags ai
// @Produce json
// @Success 200 {object} aiTestResponse
// @Failure 502 {object} errorResponse
// @Router /ai/test [post]
func (h *TranslateHandler) TestProvider(c echo.Context) error {
	reply, err := h.service.TestProvider(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, aiTestResponse{Reply: reply})
}

// parseDirection resolves the direction selector values. Empty values
// default to Norwegian source, opposite target.
func parseDirection(fromStr, toStr string) (model.Language, model.Language, error) {
	from := model.LanguageNorwegian
	if fromStr != "" {
		parsed, ok := model.ParseLanguage(fromStr)
		if !ok {
			return "", "", fmt.Errorf("unknown source language %q", fromStr)
		}
		from = parsed
	}

	to := from.Other()
	if toStr != "" {
		parsed, ok := model.ParseLanguage(toStr)
		if !ok {
			return "", "", fmt.Errorf("unknown target language %q", toStr)
		}
		to = parsed
	}
	return from, to, nil
}

func toTranslationResponse(result *model.TranslationResult) translationResponse {
	resp := translationResponse{
		ID:             result.ID,
		From:           string(result.From),
		To:             string(result.To),
		SourceText:     result.SourceText,
		Translation:    result.TranslatedText,
		RawOutput:      result.RawOutput,
		PreserveMarkup: result.PreserveMarkup,
		Chunks:         result.Chunks,
		SourceURL:      result.SourceURL,
		SourceTitle:    result.SourceTitle,
		CreatedAt:      result.CreatedAt.Format(time.RFC3339),
	}
	if result.Report != nil {
		report := &reportResponse{Text: result.Report.Text}
		for _, sec := range result.Report.Sections {
			report.Sections = append(report.Sections, sectionResponse{Label: sec.Label, Body: sec.Body})
		}
		resp.Report = report
	}
	return resp
}
