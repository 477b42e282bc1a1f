package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/crs-analyzer/internal/advisor"
	"github.com/spigell/crs-analyzer/internal/crs"
	"github.com/spigell/crs-analyzer/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	defaultRetryDelay   = 2 * time.Second
)

// Advisor asks Gemini to review a scored profile.
type Advisor struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxRetries int
	maxLogLen  int
	retryDelay time.Duration
}

func NewAdvisor(generator contentGenerator, logger *zap.Logger, maxRetries, maxLogLength int) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Advisor{
		generator:  generator,
		logger:     logger,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
		retryDelay: defaultRetryDelay,
	}
}

// Advise sends the profile and its breakdown to Gemini and parses the advice
// out of the response, retrying transient generation failures.
func (a *Advisor) Advise(ctx context.Context, profile crs.Profile, breakdown crs.Breakdown) (*advisor.Advice, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}

	breakdownJSON, err := json.MarshalIndent(breakdown, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal breakdown payload: %w", err)
	}

	prompt := buildPrompt(string(profileJSON), string(breakdownJSON))

	a.logger.Debug("gemini generate content request",
		zap.String("model", a.generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	advice, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	advice.Raw = raw
	return advice, nil
}

func (a *Advisor) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			a.logger.Debug("retrying gemini request",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := utils.WaitFor(ctx, a.retryDelay); err != nil {
				return "", err
			}
		}

		raw, err := a.generator.GenerateContent(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("gemini request failed after %d attempts: %w", a.maxRetries+1, lastErr)
}

func buildPrompt(profileJSON, breakdownJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Profile:\n{{PROFILE_JSON}}\n\nBreakdown:\n{{BREAKDOWN_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{PROFILE_JSON}}", profileJSON)
	prompt = strings.ReplaceAll(prompt, "{{BREAKDOWN_JSON}}", breakdownJSON)
	return prompt
}

func parseResponse(raw string) (*advisor.Advice, error) {
	cleaned := extractJSON(raw)

	var data struct {
		Summary    string   `json:"summary"`
		Priorities []string `json:"priorities"`
	}
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	advice := &advisor.Advice{
		Summary: strings.TrimSpace(data.Summary),
	}
	for _, priority := range data.Priorities {
		if priority = strings.TrimSpace(priority); priority != "" {
			advice.Priorities = append(advice.Priorities, priority)
		}
	}

	return advice, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
