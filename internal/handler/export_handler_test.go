package handler_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CICEROsandbox/oversetter/internal/handler"
)

func TestExportHandler_Export_Success(t *testing.T) {
	h := handler.NewExportHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/api/export",
		`{"filename":"rapport","content":"Emissions are rising.\n"}`)

	require.NoError(t, h.Export(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `attachment; filename="rapport.txt"`, rec.Header().Get("Content-Disposition"))
	require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "Emissions are rising.\n", rec.Body.String())
}

func TestExportHandler_Export_DefaultFilename(t *testing.T) {
	h := handler.NewExportHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/api/export", `{"content":"Oversatt tekst."}`)

	require.NoError(t, h.Export(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Regexp(t, `^attachment; filename="translation-\d{4}-\d{2}-\d{2}\.txt"$`,
		rec.Header().Get("Content-Disposition"))
}

func TestExportHandler_Export_EmptyContent(t *testing.T) {
	h := handler.NewExportHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/api/export", `{"filename":"x","content":"   "}`)

	require.NoError(t, h.Export(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "nothing to download", decodeError(t, rec))
}

func TestExportHandler_Export_ContentTooLarge(t *testing.T) {
	h := handler.NewExportHandler()
	body := fmt.Sprintf(`{"content":%q}`, strings.Repeat("a", 1<<20+1024))
	c, rec := newJSONContext(t, http.MethodPost, "/api/export", body)

	require.NoError(t, h.Export(c))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, "content too large", decodeError(t, rec))
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		requested string
		want      string
	}{
		{"rapport", "rapport.txt"},
		{"rapport.txt", "rapport.txt"},
		{"notat.TXT", "notat.TXT"},
		{"min/oversettelse: klima?", "min-oversettelse- klima-.txt"},
		{"første dag", "f-rste dag.txt"},
		{strings.Repeat("a", 100), strings.Repeat("a", 80) + ".txt"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, handler.ExportFilenameForTest(tc.requested), "requested %q", tc.requested)
	}

	// Nothing usable left after cleaning: fall back to the dated name.
	require.Regexp(t, `^translation-\d{4}-\d{2}-\d{2}\.txt$`, handler.ExportFilenameForTest(" ... "))
	require.Regexp(t, `^translation-\d{4}-\d{2}-\d{2}\.txt$`, handler.ExportFilenameForTest(""))
}
