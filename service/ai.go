package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const maxGeneratedTags = 5

// Keyword tables are ordered slices, not maps: tag output follows table
// order and classification picks the first matching category.
var tagCategories = []struct {
	Category string
	Keywords []string
}{
	{"iş", []string{"iş", "toplantı", "proje", "çalışma", "ofis"}},
	{"kişisel", []string{"kişisel", "özel", "aile", "arkadaş"}},
	{"alışveriş", []string{"alışveriş", "satın", "liste", "market"}},
	{"önemli", []string{"önemli", "acil", "dikkat", "hatırlat"}},
}

var classifyCategories = []struct {
	Category string
	Keywords []string
}{
	{"iş", []string{"iş", "toplantı", "proje", "çalışma"}},
	{"alışveriş", []string{"alışveriş", "satın", "liste", "market"}},
	{"kişisel", []string{"kişisel", "özel", "aile"}},
}

const defaultCategory = "genel"

// Summarize prefers the AI gateway and falls back to the local algorithm on
// any failure: no gateway configured, rate limiter denial, timeout, bad
// credential or a malformed upstream response. It never returns an error
// for an upstream problem; the client always gets a summary.
func (s *Service) Summarize(ctx context.Context, text string, apiKey string) string {
	cacheKey := summaryCacheKey(text, apiKey)

	if s.Cache != nil {
		if summary, err := s.Cache.GetSummary(ctx, cacheKey); err == nil {
			return summary
		}
	}

	if s.AI == nil {
		return FallbackSummarize(text)
	}

	// Shed upstream load instead of queuing: a denied request is served by
	// the fallback right away
	if !s.aiLimiter.Allow() {
		s.log.Warn("AI rate limit reached, using fallback summarizer")
		return FallbackSummarize(text)
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.AITimeout)
	defer cancel()

	summary, err := s.AI.Summarize(aiCtx, text, apiKey)
	if err != nil {
		s.log.WithError(err).Warn("AI summarize failed, using fallback summarizer")
		return FallbackSummarize(text)
	}

	if s.Cache != nil {
		if err := s.Cache.SetSummary(ctx, cacheKey, summary); err != nil {
			s.log.WithError(err).Warn("failed to cache summary")
		}
	}

	return summary
}

// The credential is folded into the key so a summary produced under one
// API key is never served to a request using another.
func summaryCacheKey(text string, apiKey string) string {
	h := sha256.Sum256([]byte(apiKey + "\x00" + text))
	return hex.EncodeToString(h[:])
}

// GenerateTags matches category keywords as substrings of the lowercased
// text, in table order, at most one tag per category.
func (s *Service) GenerateTags(text string) []string {
	lowered := strings.ToLower(text)

	tags := []string{}
	for _, c := range tagCategories {
		for _, kw := range c.Keywords {
			if strings.Contains(lowered, kw) {
				tags = append(tags, c.Category)
				break
			}
		}
	}

	if len(tags) == 0 {
		return []string{defaultCategory}
	}
	if len(tags) > maxGeneratedTags {
		tags = tags[:maxGeneratedTags]
	}
	return tags
}

// Classify returns the first category whose keyword set matches, in the
// fixed priority order iş, alışveriş, kişisel; anything else is genel.
func (s *Service) Classify(text string) string {
	lowered := strings.ToLower(text)

	for _, c := range classifyCategories {
		for _, kw := range c.Keywords {
			if strings.Contains(lowered, kw) {
				return c.Category
			}
		}
	}
	return defaultCategory
}
