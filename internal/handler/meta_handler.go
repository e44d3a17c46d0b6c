package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/CICEROsandbox/oversetter/internal/config"
	"github.com/CICEROsandbox/oversetter/internal/model"
	"github.com/CICEROsandbox/oversetter/internal/service"
)

type MetaHandler struct {
	cfg        *config.Config
	references service.ReferenceService
}

type statusResponse struct {
	Name           string  `json:"name"`
	Version        string  `json:"version"`
	Provider       string  `json:"provider"`
	Model          string  `json:"model"`
	APIKey         string  `json:"apiKey"`
	RateLimit      float64 `json:"rateLimit"`
	ReferencePairs int     `json:"referencePairs"`
}

type directionResponse struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

type languagesResponse struct {
	Default    directionResponse   `json:"default"`
	Directions []directionResponse `json:"directions"`
}

type referencePairResponse struct {
	Norwegian string `json:"norwegian"`
	English   string `json:"english"`
}

type referenceListResponse struct {
	Pairs []referencePairResponse `json:"pairs"`
}

func NewMetaHandler(cfg *config.Config, references service.ReferenceService) *MetaHandler {
	return &MetaHandler{cfg: cfg, references: references}
}

func (h *MetaHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/status", h.Status)
	g.GET("/languages", h.Languages)
	g.GET("/reference", h.Reference)
}

// @Summary Service status
// @Description Get service name, configured provider and model
// @Tags meta
// @Produce json
// @Success 200 {object} statusResponse
// @Router /status [get]
func (h *MetaHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{
		Name:           config.AppName,
		Version:        config.AppVersion,
		Provider:       h.cfg.AIProvider,
		Model:          h.cfg.AIModel,
		APIKey:         maskAPIKey(h.cfg.AIKey),
		RateLimit:      h.cfg.RateLimit,
		ReferencePairs: len(h.references.All()),
	})
}

// @Summary Supported directions
// @Description List the translation directions the service supports
// @Tags meta
// @Produce json
// @Success 200 {object} languagesResponse
// @Router /languages [get]
func (h *MetaHandler) Languages(c echo.Context) error {
	nbEN := directionResponse{
		From:  string(model.LanguageNorwegian),
		To:    string(model.LanguageEnglish),
		Label: "Norwegian → English",
	}
	enNB := directionResponse{
		From:  string(model.LanguageEnglish),
		To:    string(model.LanguageNorwegian),
		Label: "English → Norwegian",
	}
	return c.JSON(http.StatusOK, languagesResponse{
		Default:    nbEN,
		Directions: []directionResponse{nbEN, enNB},
	})
}

// @Summary Reference pairs
// @Description List the loaded reference translation pairs
// @Tags meta
// @Produce json
// @Success 200 {object} referenceListResponse
// @Router /reference [get]
func (h *MetaHandler) Reference(c echo.Context) error {
	pairs := h.references.All()
	out := make([]referencePairResponse, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, referencePairResponse{Norwegian: p.Source, English: p.Target})
	}
	return c.JSON(http.StatusOK, referenceListResponse{Pairs: out})
}

// maskAPIKey hides the middle of the key, keeping a short prefix and the
// last few characters so the operator can recognize which key is loaded.
func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "***"
	}

	prefixEnd := strings.Index(key, "-")
	if prefixEnd == -1 || prefixEnd > 5 {
		prefixEnd = 5
	} else {
		prefixEnd++
	}

	return key[:prefixEnd] + "***" + key[len(key)-3:]
}
