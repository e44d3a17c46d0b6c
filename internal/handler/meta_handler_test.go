package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CICEROsandbox/oversetter/internal/config"
	"github.com/CICEROsandbox/oversetter/internal/handler"
	"github.com/CICEROsandbox/oversetter/internal/model"
	"github.com/CICEROsandbox/oversetter/internal/service/mock"
)

func TestMetaHandler_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	references := mock.NewMockReferenceService(ctrl)
	references.EXPECT().All().Return([]model.ReferencePair{
		{Source: "drivhusgasser", Target: "greenhouse gases"},
		{Source: "havforsuring", Target: "ocean acidification"},
	})

	cfg := &config.Config{
		AIProvider: "anthropic",
		AIModel:    "claude-3-opus-20240229",
		AIKey:      "sk-ant-REDACTED",
		RateLimit:  10,
	}
	h := handler.NewMetaHandler(cfg, references)
	c, rec := newJSONContext(t, http.MethodGet, "/api/status", "")

	require.NoError(t, h.Status(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Name           string  `json:"name"`
		Version        string  `json:"version"`
		Provider       string  `json:"provider"`
		Model          string  `json:"model"`
		APIKey         string  `json:"apiKey"`
		RateLimit      float64 `json:"rateLimit"`
		ReferencePairs int     `json:"referencePairs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, config.AppName, resp.Name)
	require.Equal(t, config.AppVersion, resp.Version)
	require.Equal(t, "anthropic", resp.Provider)
	require.Equal(t, "claude-3-opus-20240229", resp.Model)
	require.Equal(t, "sk-***999", resp.APIKey)
	require.Equal(t, float64(10), resp.RateLimit)
	require.Equal(t, 2, resp.ReferencePairs)
}

func TestMetaHandler_Languages(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handler.NewMetaHandler(&config.Config{}, mock.NewMockReferenceService(ctrl))
	c, rec := newJSONContext(t, http.MethodGet, "/api/languages", "")

	require.NoError(t, h.Languages(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Default struct {
			From  string `json:"from"`
			To    string `json:"to"`
			Label string `json:"label"`
		} `json:"default"`
		Directions []struct {
			From  string `json:"from"`
			To    string `json:"to"`
			Label string `json:"label"`
		} `json:"directions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Norwegian", resp.Default.From)
	require.Equal(t, "English", resp.Default.To)
	require.Len(t, resp.Directions, 2)
	require.Equal(t, "Norwegian → English", resp.Directions[0].Label)
	require.Equal(t, "English → Norwegian", resp.Directions[1].Label)
}

func TestMetaHandler_Reference(t *testing.T) {
	ctrl := gomock.NewController(t)
	references := mock.NewMockReferenceService(ctrl)
	references.EXPECT().All().Return([]model.ReferencePair{
		{Source: "drivhusgasser", Target: "greenhouse gases"},
	})

	h := handler.NewMetaHandler(&config.Config{}, references)
	c, rec := newJSONContext(t, http.MethodGet, "/api/reference", "")

	require.NoError(t, h.Reference(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"pairs":[{"norwegian":"drivhusgasser","english":"greenhouse gases"}]}`, rec.Body.String())
}

func TestMaskAPIKey(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"short", "***"},
		{"12345678", "***"},
		{"sk-ant-REDACTED", "sk-***999"},
		{"abcdefghijklmnop", "abcde***nop"},
		{"verylongprefix-tail123", "veryl***123"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, handler.MaskAPIKeyForTest(tc.key), "key %q", tc.key)
	}
}
