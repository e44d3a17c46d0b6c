package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/CICEROsandbox/oversetter/internal/model"
	"github.com/CICEROsandbox/oversetter/internal/service"
)

type ArticleHandler struct {
	articles     service.ArticleService
	translations service.TranslationService
}

type articleTranslateRequest struct {
	URL            string `json:"url"`
	From           string `json:"from"`
	To             string `json:"to"`
	PreserveMarkup bool   `json:"preserveMarkup"`
	KeepNumerals   bool   `json:"keepNumerals"`
	Analyze        bool   `json:"analyze"`
}

type articleExtractRequest struct {
	URL string `json:"url"`
}

type articleResponse struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	SiteName string `json:"siteName"`
	Excerpt  string `json:"excerpt"`
	Text     string `json:"text"`
}

type articleSummaryResponse struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	PublishedAt *string `json:"publishedAt,omitempty"`
}

type latestArticlesResponse struct {
	Articles []articleSummaryResponse `json:"articles"`
}

func NewArticleHandler(articles service.ArticleService, translations service.TranslationService) *ArticleHandler {
	return &ArticleHandler{articles: articles, translations: translations}
}

func (h *ArticleHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/articles/latest", h.Latest)
	g.POST("/articles/extract", h.Extract)
	g.POST("/articles/translate", h.Translate)
}

// Latest lists recent articles from the configured site feed.
// @Summary List recent articles
// @Description List recent articles from the configured site feed
// @Tags articles
// @Produce json
// @Success 200 {object} latestArticlesResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /articles/latest [get]
func (h *ArticleHandler) Latest(c echo.Context) error {
	summaries, err := h.articles.Latest(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := latestArticlesResponse{Articles: make([]articleSummaryResponse, 0, len(summaries))}
	for _, s := range summaries {
		item := articleSummaryResponse{Title: s.Title, URL: s.URL}
		if s.Published != nil {
			published := s.Published.UTC().Format(time.RFC3339)
			item.PublishedAt = &published
		}
		resp.Articles = append(resp.Articles, item)
	}
	return c.JSON(http.StatusOK, resp)
}

// Extract fetches a page and returns its readable content.
// @Summary Extract article
// @Description Fetch a page and extract its readable article content
// @Tags articles
// @Accept json
// @Produce json
// @Param request body articleExtractRequest true "Extract request"
// @Success 200 {object} articleResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /articles/extract [post]
func (h *ArticleHandler) Extract(c echo.Context) error {
	var req articleExtractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	article, err := h.articles.Fetch(c.Request().Context(), req.URL)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// Translate fetches a page and translates its article content.
// @Summary Translate article
// @Description Fetch a page, extract the article and translate it
// @Tags articles
// @Accept json
// @Produce json
// @Param request body articleTranslateRequest true "Article translation request"
// @Success 200 {object} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /articles/translate [post]
func (h *ArticleHandler) Translate(c echo.Context) error {
	var req articleTranslateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	from, to, err := parseDirection(req.From, req.To)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ctx := c.Request().Context()
	article, err := h.articles.Fetch(ctx, req.URL)
	if err != nil {
		return writeServiceError(c, err)
	}

	result, err := h.translations.Translate(ctx, model.TranslationRequest{
		Text:           article.Text,
		From:           from,
		To:             to,
		PreserveMarkup: req.PreserveMarkup,
		KeepNumerals:   req.KeepNumerals,
		Analyze:        req.Analyze,
		SourceURL:      article.URL,
		SourceTitle:    article.Title,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponse(result))
}

func toArticleResponse(article *model.Article) articleResponse {
	return articleResponse{
		URL:      article.URL,
		Title:    article.Title,
		SiteName: article.SiteName,
		Excerpt:  article.Excerpt,
		Text:     article.Text,
	}
}
