package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CICEROsandbox/oversetter/internal/logger"
	"github.com/CICEROsandbox/oversetter/internal/model"
	"github.com/CICEROsandbox/oversetter/internal/service/ai"
)

// TranslationService runs the translate-then-analyze pipeline. One call
// is one user action: it blocks until every step finished or the first
// step failed. Nothing is retried and nothing partial is ever returned.
type TranslationService interface {
	// Translate builds the prompt, calls the model once per chunk in
	// order, sanitizes the output and optionally requests an analysis.
	Translate(ctx context.Context, req model.TranslationRequest) (*model.TranslationResult, error)
	// TestProvider probes upstream connectivity with a short message.
	TestProvider(ctx context.Context) (string, error)
}

type translationService struct {
	provider    ai.Provider
	rateLimiter *ai.RateLimiter
	references  ReferenceService
	chunkRunes  int
	maxExamples int
}

// NewTranslationService creates a new translation service.
func NewTranslationService(provider ai.Provider, rateLimiter *ai.RateLimiter, references ReferenceService, chunkRunes, maxExamples int) TranslationService {
	return &translationService{
		provider:    provider,
		rateLimiter: rateLimiter,
		references:  references,
		chunkRunes:  chunkRunes,
		maxExamples: maxExamples,
	}
}

func (s *translationService) Translate(ctx context.Context, req model.TranslationRequest) (*model.TranslationResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyInput
	}
	if !req.From.Valid() || !req.To.Valid() || req.From == req.To {
		return nil, fmt.Errorf("%w: unsupported language pair %q to %q", ErrInvalid, req.From, req.To)
	}

	opts := ai.PromptOptions{
		PreserveMarkup: req.PreserveMarkup,
		KeepNumerals:   req.KeepNumerals,
		References:     toExamples(s.references.Pick(req.From, req.To, s.maxExamples)),
	}

	chunks := ai.SplitChunks(text, s.chunkRunes)
	rawParts := make([]string, 0, len(chunks))
	cleanParts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		raw, err := s.complete(ctx, ai.BuildTranslationPrompt(chunk, string(req.From), string(req.To), opts))
		if err != nil {
			logger.Warn("translation chunk failed", "module", "service", "action", "translate", "resource", "translation", "result", "failed", "chunk", i+1, "chunks", len(chunks), "error", err)
			return nil, fmt.Errorf("translate chunk %d/%d: %w", i+1, len(chunks), err)
		}
		rawParts = append(rawParts, raw)
		cleanParts = append(cleanParts, ai.Sanitize(raw, req.PreserveMarkup))
	}

	result := &model.TranslationResult{
		ID:             uuid.New().String(),
		From:           req.From,
		To:             req.To,
		SourceText:     text,
		TranslatedText: strings.Join(cleanParts, "\n\n"),
		RawOutput:      strings.Join(rawParts, "\n\n"),
		PreserveMarkup: req.PreserveMarkup,
		Chunks:         len(chunks),
		SourceURL:      req.SourceURL,
		SourceTitle:    req.SourceTitle,
		CreatedAt:      time.Now().UTC(),
	}

	if req.Analyze {
		report, err := s.analyze(ctx, result)
		if err != nil {
			logger.Warn("translation analysis failed", "module", "service", "action", "analyze", "resource", "translation", "result", "failed", "error", err)
			return nil, fmt.Errorf("analyze translation: %w", err)
		}
		result.Report = report
	}

	logger.Info("translation completed", "module", "service", "action", "translate", "resource", "translation", "result", "ok", "from", req.From, "to", req.To, "chunks", len(chunks), "analyzed", req.Analyze)
	return result, nil
}

// analyze runs the follow-up quality review as a second, separate call.
func (s *translationService) analyze(ctx context.Context, result *model.TranslationResult) (*model.AnalysisReport, error) {
	raw, err := s.complete(ctx, ai.BuildAnalysisPrompt(result.SourceText, result.TranslatedText, string(result.From), string(result.To)))
	if err != nil {
		return nil, err
	}

	text := ai.Sanitize(raw, false)
	sections := ai.ParseReportSections(text)
	report := &model.AnalysisReport{Text: text}
	for _, sec := range sections {
		report.Sections = append(report.Sections, model.ReportSection{Label: sec.Label, Body: sec.Body})
	}
	return report, nil
}

func (s *translationService) complete(ctx context.Context, prompt string) (string, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}
	return s.provider.Complete(ctx, ai.SystemPrompt(), prompt)
}

func (s *translationService) TestProvider(ctx context.Context) (string, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}
	reply, err := s.provider.Test(ctx)
	if err != nil {
		logger.Warn("ai provider test failed", "module", "service", "action", "test", "resource", "ai", "result", "failed", "provider", s.provider.Name(), "error", err)
		return "", err
	}
	logger.Info("ai provider test ok", "module", "service", "action", "test", "resource", "ai", "result", "ok", "provider", s.provider.Name())
	return reply, nil
}

func toExamples(pairs []model.ReferencePair) []ai.Example {
	if len(pairs) == 0 {
		return nil
	}
	examples := make([]ai.Example, 0, len(pairs))
	for _, p := range pairs {
		examples = append(examples, ai.Example{Source: p.Source, Target: p.Target})
	}
	return examples
}
