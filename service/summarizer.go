package service

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var sentenceSplitRegex = regexp.MustCompile(`[.!?]+`)

const (
	// Inputs at or under this word count are returned unchanged
	shortInputWordLimit = 30
	// How many of the longest sentences qualify for the summary
	topSentenceCount = 4
	// Inputs over this word count get a truncation marker appended
	truncationWordLimit = 100
)

// FallbackSummarize produces a deterministic extractive summary when the AI
// gateway is unavailable. The longest sentences are treated as the salient
// ones, but the output keeps the original narrative order rather than the
// by-length order. A sentence that appears verbatim more than once is
// selected only at its first position.
func FallbackSummarize(text string) string {
	split := sentenceSplitRegex.Split(text, -1)
	sentences := make([]string, 0, len(split))
	for _, s := range split {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	words := strings.Fields(text)

	// Very short input loses more than it gains from summarizing
	if len(words) <= shortInputWordLimit || len(sentences) <= 2 {
		return text
	}

	ranked := make([]string, len(sentences))
	copy(ranked, sentences)
	// Length is measured in characters, not bytes: Turkish letters are two
	// bytes in UTF-8 and must not outweigh ASCII ones. Stable sort: on an
	// exact length tie the earlier sentence ranks first
	sort.SliceStable(ranked, func(i, j int) bool {
		return utf8.RuneCountInString(ranked[i]) > utf8.RuneCountInString(ranked[j])
	})
	if len(ranked) > topSentenceCount {
		ranked = ranked[:topSentenceCount]
	}

	selected := make(map[string]bool, len(ranked))
	for _, s := range ranked {
		selected[s] = true
	}

	important := make([]string, 0, topSentenceCount)
	seen := make(map[string]bool)
	for _, s := range sentences {
		if selected[s] && !seen[s] {
			important = append(important, s)
			seen[s] = true
		}
	}

	// Too few survivors (heavy duplication): fall back to first + last
	if len(important) < 2 {
		important = important[:0]
		if len(sentences) >= 2 {
			important = append(important, sentences[0])
			if len(sentences) > 2 {
				important = append(important, sentences[len(sentences)-1])
			}
		} else {
			important = append(important, sentences...)
		}
	}

	if len(important) > topSentenceCount {
		important = important[:topSentenceCount]
	}

	summary := strings.Join(important, ". ")
	if len(words) > truncationWordLimit {
		summary += "..."
	}

	return summary
}
