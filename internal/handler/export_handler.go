package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const maxExportSize = 1 << 20

type ExportHandler struct{}

type exportRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

func (h *ExportHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/export", h.Export)
}

// Export turns a finished translation into a downloadable text file.
// Nothing is stored server-side: the client posts the content it wants
// back as an attachment.
// @Summary Download translation
// @Description Return the posted translation text as a downloadable file
// @Tags export
// @Accept json
// @Produce plain
// @Param request body exportRequest true "Export request"
// @Success 200 {string} string "Text file content"
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Router /export [post]
func (h *ExportHandler) Export(c echo.Context) error {
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response().Writer, req.Body, maxExportSize)

	var body exportRequest
	if err := c.Bind(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "content too large"})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if strings.TrimSpace(body.Content) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "nothing to download"})
	}

	name := exportFilename(body.Filename)
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(body.Content))
}

// exportFilename produces a safe attachment name, defaulting to a dated
// one when the client sent none.
func exportFilename(requested string) string {
	name := strings.TrimSpace(requested)
	if name == "" {
		return fmt.Sprintf("translation-%s.txt", time.Now().UTC().Format("2006-01-02"))
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.' || r == ' ':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	name = strings.Trim(b.String(), ". ")
	if name == "" {
		return fmt.Sprintf("translation-%s.txt", time.Now().UTC().Format("2006-01-02"))
	}
	if len(name) > 80 {
		name = name[:80]
	}
	if !strings.HasSuffix(strings.ToLower(name), ".txt") {
		name += ".txt"
	}
	return name
}
