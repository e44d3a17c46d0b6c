package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/Noooste/azuretls-client"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/CICEROsandbox/oversetter/internal/config"
	"github.com/CICEROsandbox/oversetter/internal/logger"
	"github.com/CICEROsandbox/oversetter/internal/model"
	"github.com/CICEROsandbox/oversetter/internal/network"
	"github.com/CICEROsandbox/oversetter/internal/service/ai"
)

const (
	fetchTimeout   = 30 * time.Second
	feedTimeout    = 20 * time.Second
	maxLatestItems = 20
	excerptRunes   = 240
)

// fallbackSelectors are tried in order when readability cannot isolate
// the main content.
var fallbackSelectors = []string{
	"article",
	"main",
	"[role=main]",
	".article-body",
	".post-content",
	"#content",
}

// ArticleService fetches pages and extracts their readable content so a
// URL can stand in for pasted text.
type ArticleService interface {
	// Fetch downloads the page and extracts the article. A transport or
	// HTTP failure is ErrFetch; a page without recognizable content is
	// ErrNoContent.
	Fetch(ctx context.Context, rawURL string) (*model.Article, error)
	// Latest lists recent items from the configured site feed.
	Latest(ctx context.Context) ([]model.ArticleSummary, error)
}

type articleService struct {
	clientFactory *network.ClientFactory
	sanitizer     *bluemonday.Policy
	feedURL       string
}

// NewArticleService creates a new article service. feedURL may be empty,
// disabling Latest.
func NewArticleService(clientFactory *network.ClientFactory, feedURL string) ArticleService {
	// Sanitizer policy close to DOMPurify: drops scripts and junk that
	// interferes with readability parsing, keeps structural elements.
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "header", "footer", "nav", "aside", "main", "figure", "figcaption")
	p.AllowAttrs("id", "class", "lang", "dir").Globally()

	return &articleService{
		clientFactory: clientFactory,
		sanitizer:     p,
		feedURL:       feedURL,
	}
}

func (s *articleService) Fetch(ctx context.Context, rawURL string) (*model.Article, error) {
	parsedURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: malformed article URL", ErrInvalid)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported URL scheme %q", ErrInvalid, parsedURL.Scheme)
	}

	body, err := s.fetchPage(ctx, parsedURL)
	if err != nil {
		return nil, err
	}

	sanitized := s.sanitizer.Sanitize(string(body))

	contentHTML := extractReadable(sanitized, parsedURL)
	text := strings.TrimSpace(ai.HTMLToText(contentHTML))
	if text == "" {
		contentHTML = extractFallback(sanitized)
		text = strings.TrimSpace(ai.HTMLToText(contentHTML))
	}
	if text == "" {
		logger.Warn("article extraction empty", "module", "service", "action", "extract", "resource", "article", "result", "failed", "host", parsedURL.Host)
		return nil, fmt.Errorf("%w: no readable content at %s", ErrNoContent, parsedURL.Host)
	}

	title, site := pageMeta(string(body), parsedURL)
	logger.Info("article fetched", "module", "service", "action", "fetch", "resource", "article", "result", "ok", "host", parsedURL.Host, "chars", len(text))

	return &model.Article{
		URL:      parsedURL.String(),
		Title:    title,
		SiteName: site,
		Excerpt:  excerpt(text),
		Text:     text,
		HTML:     contentHTML,
	}, nil
}

// fetchPage downloads the raw page through a browser-profiled session.
func (s *articleService) fetchPage(ctx context.Context, u *url.URL) ([]byte, error) {
	session := s.clientFactory.NewAzureSession(fetchTimeout)
	defer session.Close()

	resp, err := session.Do(&azuretls.Request{
		Method: http.MethodGet,
		Url:    u.String(),
		OrderedHeaders: azuretls.OrderedHeaders{
			{"accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
			{"accept-language", "nb-NO,nb;q=0.9,en;q=0.8"},
			{"sec-ch-ua", config.ChromeSecChUa},
			{"sec-ch-ua-mobile", "?0"},
			{"sec-ch-ua-platform", `"Windows"`},
			{"sec-fetch-dest", "document"},
			{"sec-fetch-mode", "navigate"},
			{"sec-fetch-site", "none"},
			{"user-agent", config.ChromeUserAgent},
		},
	})
	if err != nil {
		logger.Warn("article fetch failed", "module", "service", "action", "fetch", "resource", "article", "result", "failed", "host", u.Host, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("article http error", "module", "service", "action", "fetch", "resource", "article", "result", "failed", "host", u.Host, "status_code", resp.StatusCode)
		return nil, fmt.Errorf("%w: HTTP %d", ErrFetch, resp.StatusCode)
	}
	return resp.Body, nil
}

func extractReadable(sanitized string, pageURL *url.URL) string {
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(sanitized), pageURL)
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// extractFallback tries common article containers when readability came
// up empty. It never falls back to the whole body: a page where none of
// the selectors hold text is treated as having no content.
func extractFallback(sanitized string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized))
	if err != nil {
		return ""
	}
	for _, selector := range fallbackSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		fragment, err := sel.Html()
		if err != nil {
			continue
		}
		if strings.TrimSpace(ai.HTMLToText(fragment)) != "" {
			return fragment
		}
	}
	return ""
}

// pageMeta reads title and site name from the unsanitized page, where
// the meta tags still exist.
func pageMeta(rawHTML string, u *url.URL) (title, site string) {
	site = u.Host
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", site
	}

	if v, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
		title = strings.TrimSpace(v)
	} else if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		title = t
	} else {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	if v, ok := doc.Find(`meta[property="og:site_name"]`).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
		site = strings.TrimSpace(v)
	}
	return title, site
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptRunes {
		return text
	}
	return strings.TrimSpace(string(runes[:excerptRunes])) + "…"
}

func (s *articleService) Latest(ctx context.Context) ([]model.ArticleSummary, error) {
	if s.feedURL == "" {
		return nil, fmt.Errorf("%w: article feed not configured", ErrInvalid)
	}

	client := s.clientFactory.NewHTTPClient(feedTimeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	req.Header.Set("User-Agent", config.OversetterUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		logger.Warn("feed fetch failed", "module", "service", "action", "fetch", "resource", "feed", "result", "failed", "url", s.feedURL, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("feed http error", "module", "service", "action", "fetch", "resource", "feed", "result", "failed", "url", s.feedURL, "status_code", resp.StatusCode)
		return nil, fmt.Errorf("%w: HTTP %d", ErrFetch, resp.StatusCode)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	items := parsed.Items
	if len(items) > maxLatestItems {
		items = items[:maxLatestItems]
	}
	summaries := make([]model.ArticleSummary, 0, len(items))
	for _, item := range items {
		if item == nil || strings.TrimSpace(item.Link) == "" {
			continue
		}
		summaries = append(summaries, model.ArticleSummary{
			Title:     strings.TrimSpace(item.Title),
			URL:       strings.TrimSpace(item.Link),
			Published: item.PublishedParsed,
		})
	}
	return summaries, nil
}
