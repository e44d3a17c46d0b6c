package service

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/CICEROsandbox/oversetter/internal/logger"
	"github.com/CICEROsandbox/oversetter/internal/model"
)

// ReferenceService hands out bilingual example pairs that bias the
// translation prompt toward established terminology. The set is loaded
// once at startup from a read-only CSV and never changes.
type ReferenceService interface {
	// Pick returns up to n pairs oriented for the requested direction.
	Pick(from, to model.Language, n int) []model.ReferencePair
	// All returns every loaded pair in Norwegian-to-English orientation.
	All() []model.ReferencePair
}

type referenceService struct {
	// pairs are stored canonically: Source Norwegian, Target English.
	pairs []model.ReferencePair
}

// NewReferenceService loads the optional reference CSV with two columns,
// Norwegian then English. A missing or unreadable file yields an empty
// service; malformed rows are skipped. An optional header row naming the
// languages is detected and dropped.
func NewReferenceService(csvPath string) ReferenceService {
	s := &referenceService{}
	if csvPath == "" {
		return s
	}

	f, err := os.Open(csvPath)
	if err != nil {
		logger.Warn("reference csv open failed", "module", "service", "action", "load", "resource", "reference", "result", "failed", "path", csvPath, "error", err)
		return s
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		logger.Warn("reference csv read failed", "module", "service", "action", "load", "resource", "reference", "result", "failed", "path", csvPath, "error", err)
		return s
	}

	skipped := 0
	for i, rec := range records {
		if len(rec) < 2 {
			skipped++
			continue
		}
		nb := strings.TrimSpace(rec[0])
		en := strings.TrimSpace(rec[1])
		if nb == "" || en == "" {
			skipped++
			continue
		}
		if i == 0 && isHeaderRow(nb, en) {
			continue
		}
		s.pairs = append(s.pairs, model.ReferencePair{Source: nb, Target: en})
	}

	logger.Info("reference examples loaded", "module", "service", "action", "load", "resource", "reference", "result", "ok", "path", csvPath, "count", len(s.pairs), "skipped", skipped)
	return s
}

// isHeaderRow reports whether both cells look like column labels rather
// than sentences.
func isHeaderRow(a, b string) bool {
	if _, okA := model.ParseLanguage(a); okA {
		if _, okB := model.ParseLanguage(b); okB {
			return true
		}
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return la == "source" && lb == "target" || la == "kilde" && lb == "oversettelse"
}

func (s *referenceService) Pick(from, to model.Language, n int) []model.ReferencePair {
	if n <= 0 || len(s.pairs) == 0 || from == to {
		return nil
	}
	if n > len(s.pairs) {
		n = len(s.pairs)
	}

	picked := make([]model.ReferencePair, 0, n)
	for _, p := range s.pairs[:n] {
		if from == model.LanguageEnglish {
			picked = append(picked, model.ReferencePair{Source: p.Target, Target: p.Source})
			continue
		}
		picked = append(picked, p)
	}
	return picked
}

func (s *referenceService) All() []model.ReferencePair {
	out := make([]model.ReferencePair, len(s.pairs))
	copy(out, s.pairs)
	return out
}
