package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CICEROsandbox/oversetter/internal/handler"
	"github.com/CICEROsandbox/oversetter/internal/model"
	"github.com/CICEROsandbox/oversetter/internal/service"
	"github.com/CICEROsandbox/oversetter/internal/service/ai"
	"github.com/CICEROsandbox/oversetter/internal/service/mock"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

type translationBody struct {
	ID             string      `json:"id"`
	From           string      `json:"from"`
	To             string      `json:"to"`
	SourceText     string      `json:"sourceText"`
	Translation    string      `json:"translation"`
	RawOutput      string      `json:"rawOutput"`
	Report         *reportBody `json:"report"`
	PreserveMarkup bool        `json:"preserveMarkup"`
	Chunks         int         `json:"chunks"`
	SourceURL      string      `json:"sourceUrl"`
	SourceTitle    string      `json:"sourceTitle"`
	CreatedAt      string      `json:"createdAt"`
}

type reportBody struct {
	Text     string        `json:"text"`
	Sections []sectionBody `json:"sections"`
}

type sectionBody struct {
	Label string `json:"label"`
	Body  string `json:"body"`
}

type errorBody struct {
	Error string `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestTranslateHandler_Translate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	translations := mock.NewMockTranslationService(ctrl)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	translations.EXPECT().
		Translate(gomock.Any(), model.TranslationRequest{
			Text:    "Utslippene øker.",
			From:    model.LanguageNorwegian,
			To:      model.LanguageEnglish,
			Analyze: true,
		}).
		Return(&model.TranslationResult{
			ID:             "9f1c2a",
			From:           model.LanguageNorwegian,
			To:             model.LanguageEnglish,
			SourceText:     "Utslippene øker.",
			TranslatedText: "Emissions are rising.",
			RawOutput:      "TextBlock(text='Emissions are rising.')",
			Report: &model.AnalysisReport{
				Text:     "Key Terms:\n\nutslipp became emissions.",
				Sections: []model.ReportSection{{Label: "Key Terms", Body: "utslipp became emissions."}},
			},
			Chunks:    1,
			CreatedAt: created,
		}, nil)

	h := handler.NewTranslateHandler(translations)
	c, rec := newJSONContext(t, http.MethodPost, "/api/translate",
		`{"text":"Utslippene øker.","from":"norwegian","to":"english","analyze":true}`)

	require.NoError(t, h.Translate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp translationBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "9f1c2a", resp.ID)
	require.Equal(t, "Norwegian", resp.From)
	require.Equal(t, "English", resp.To)
	require.Equal(t, "Emissions are rising.", resp.Translation)
	require.Equal(t, "TextBlock(text='Emissions are rising.')", resp.RawOutput)
	require.Equal(t, 1, resp.Chunks)
	require.Equal(t, "2025-03-01T12:00:00Z", resp.CreatedAt)
	require.NotNil(t, resp.Report)
	require.Len(t, resp.Report.Sections, 1)
	require.Equal(t, "Key Terms", resp.Report.Sections[0].Label)
	require.Equal(t, "utslipp became emissions.", resp.Report.Sections[0].Body)
}

func TestTranslateHandler_Translate_DefaultsDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	translations := mock.NewMockTranslationService(ctrl)

	translations.EXPECT().
		Translate(gomock.Any(), model.TranslationRequest{
			Text: "Hei.",
			From: model.LanguageNorwegian,
			To:   model.LanguageEnglish,
		}).
		Return(&model.TranslationResult{TranslatedText: "Hello."}, nil)
	translations.EXPECT().
		Translate(gomock.Any(), model.TranslationRequest{
			Text: "Hello.",
			From: model.LanguageEnglish,
			To:   model.LanguageNorwegian,
		}).
		Return(&model.TranslationResult{TranslatedText: "Hei."}, nil)

	h := handler.NewTranslateHandler(translations)

	// No direction at all: Norwegian to English.
	c, rec := newJSONContext(t, http.MethodPost, "/api/translate", `{"text":"Hei."}`)
	require.NoError(t, h.Translate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// Only a source: the target defaults to the opposite language.
	c, rec = newJSONContext(t, http.MethodPost, "/api/translate", `{"text":"Hello.","from":"en"}`)
	require.NoError(t, h.Translate(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTranslateHandler_Translate_UnknownLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handler.NewTranslateHandler(mock.NewMockTranslationService(ctrl))

	c, rec := newJSONContext(t, http.MethodPost, "/api/translate", `{"text":"Hallo.","from":"german"}`)
	require.NoError(t, h.Translate(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeError(t, rec), "unknown source language")
}

func TestTranslateHandler_Translate_BindError(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handler.NewTranslateHandler(mock.NewMockTranslationService(ctrl))

	c, rec := newJSONContext(t, http.MethodPost, "/api/translate", `{"text":5}`)
	require.NoError(t, h.Translate(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid request", decodeError(t, rec))
}

func TestTranslateHandler_Translate_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	translations := mock.NewMockTranslationService(ctrl)
	translations.EXPECT().
		Translate(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrEmptyInput)

	h := handler.NewTranslateHandler(translations)
	c, rec := newJSONContext(t, http.MethodPost, "/api/translate", `{"text":"   "}`)

	require.NoError(t, h.Translate(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "enter text to translate", decodeError(t, rec))
}

func TestTranslateHandler_Translate_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	translations := mock.NewMockTranslationService(ctrl)
	translations.EXPECT().
		Translate(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("translate chunk 1/1: %w", ai.ErrRateLimited))

	h := handler.NewTranslateHandler(translations)
	c, rec := newJSONContext(t, http.MethodPost, "/api/translate", `{"text":"Utslippene øker."}`)

	// Every upstream variant collapses into the same message.
	require.NoError(t, h.Translate(c))
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "translation service unavailable", decodeError(t, rec))
}

func TestTranslateHandler_TestProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	translations := mock.NewMockTranslationService(ctrl)
	translations.EXPECT().TestProvider(gomock.Any()).Return("OK", nil)

	h := handler.NewTranslateHandler(translations)
	c, rec := newJSONContext(t, http.MethodPost, "/api/ai/test", "")

	require.NoError(t, h.TestProvider(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"reply":"OK"}`, rec.Body.String())
}

func TestTranslateHandler_TestProvider_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	translations := mock.NewMockTranslationService(ctrl)
	translations.EXPECT().TestProvider(gomock.Any()).Return("", ai.ErrInvalidCredentials)

	h := handler.NewTranslateHandler(translations)
	c, rec := newJSONContext(t, http.MethodPost, "/api/ai/test", "")

	require.NoError(t, h.TestProvider(c))
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "translation service unavailable", decodeError(t, rec))
}
