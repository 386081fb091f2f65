// Package command turns lines typed at the shell prompt into intents.
package command

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/logger"
)

// Compile-time interface check.
var _ domain.CommandParser = (*KeywordParser)(nil)

// KeywordParser matches input against keyword patterns. The first capture
// group of a pattern, if any, becomes the intent payload.
type KeywordParser struct {
	log   *logger.Logger
	rules []rule
}

type rule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates the shell command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	return &KeywordParser{
		log: log,
		rules: []rule{
			{regexp.MustCompile(`(?i)^(?:help|h|\?)$`), domain.IntentHelp},
			{regexp.MustCompile(`(?i)^(?:quit|exit|q)$`), domain.IntentQuit},
			{regexp.MustCompile(`(?i)^(?:list|ls|all)$`), domain.IntentList},
			{regexp.MustCompile(`(?i)^(?:search|find)(?:\s+(.*))?$`), domain.IntentSearch},
			{regexp.MustCompile(`(?i)^/(.*)$`), domain.IntentSearch},
			{regexp.MustCompile(`(?i)^(?:show|view|cat)\s+(.+)$`), domain.IntentShow},
			{regexp.MustCompile(`(?i)^(?:new|add|\+)$`), domain.IntentNew},
			{regexp.MustCompile(`(?i)^(?:edit|e)\s+(.+)$`), domain.IntentEdit},
			{regexp.MustCompile(`(?i)^set\s+(.+)$`), domain.IntentSet},
			{regexp.MustCompile(`(?i)^(?:draft|form|preview)$`), domain.IntentDraft},
			{regexp.MustCompile(`(?i)^(?:save|done|w)$`), domain.IntentSave},
			{regexp.MustCompile(`(?i)^(?:cancel|discard|close)$`), domain.IntentCancel},
			{regexp.MustCompile(`(?i)^(?:delete|del|rm|remove)\s+(.+)$`), domain.IntentDelete},
			{regexp.MustCompile(`(?i)^(?:go|nav|open)\s+(.+)$`), domain.IntentNavigate},
			{regexp.MustCompile(`(?i)^(dashboard|home|recipes|ingredients|meal ?plan)$`), domain.IntentNavigate},
			{regexp.MustCompile(`(?i)^ping$`), domain.IntentPing},
		},
	}
}

// Parse converts an input line into an intent. Unrecognised input yields
// IntentUnknown with the trimmed line as payload; Parse never fails.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, r := range p.rules {
		m := r.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		payload := ""
		if len(m) > 1 {
			payload = strings.TrimSpace(m[1])
		}
		if r.intent == domain.IntentNavigate && strings.EqualFold(payload, "home") {
			payload = domain.ViewDashboard.String()
		}
		p.log.Debug("matched intent: %s (payload=%q)", r.intent, payload)
		return &domain.Intent{Type: r.intent, Payload: payload}, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}
