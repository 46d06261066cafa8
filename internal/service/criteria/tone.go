package criteria

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"gym_page_auditor/internal/application/rules"
	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/pkg/markup"

	"github.com/cloudflare/ahocorasick"
)

// phraseSet counts distinct vocabulary phrases in a text.
type phraseSet struct {
	mu      sync.Mutex // Matcher.Match keeps per-call state
	matcher *ahocorasick.Matcher
}

func newPhraseSet(phrases []string) *phraseSet {
	patterns := make([][]byte, 0, len(phrases))
	for _, phrase := range phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		patterns = append(patterns, []byte(phrase))
	}
	return &phraseSet{matcher: ahocorasick.NewMatcher(patterns)}
}

func (s *phraseSet) Count(lowerText string) int {
	s.mu.Lock()
	hits := s.matcher.Match([]byte(lowerText))
	s.mu.Unlock()

	distinct := make(map[int]struct{}, len(hits))
	for _, h := range hits {
		distinct[h] = struct{}{}
	}
	return len(distinct)
}

// ToneEvaluator grades the club introduction built from the first heading and meta description.
type ToneEvaluator struct {
	cfg     *rules.Tone
	appeal  *phraseSet
	benefit *phraseSet
}

func NewToneEvaluator(cfg *rules.Tone) *ToneEvaluator {
	return &ToneEvaluator{
		cfg:     cfg,
		appeal:  newPhraseSet(cfg.AppealTerms),
		benefit: newPhraseSet(cfg.BenefitTerms),
	}
}

// ToneScore holds the inputs of the tone verdict.
type ToneScore struct {
	Snippet     string
	Length      int
	AppealHits  int
	BenefitHits int
}

func (e *ToneEvaluator) Score(p *Page) ToneScore {
	snippet := markup.CollapseWhitespace(p.Heading + " " + p.Description)
	text := strings.ToLower(snippet) + " " + p.Body
	return ToneScore{
		Snippet:     snippet,
		Length:      utf8.RuneCountInString(snippet),
		AppealHits:  e.appeal.Count(text),
		BenefitHits: e.benefit.Count(text),
	}
}

// Evaluate returns the snippet as Text when it reads well, otherwise a remediation sentence.
func (e *ToneEvaluator) Evaluate(p *Page) *models.ClubDescription {
	s := e.Score(p)
	if s.Length >= e.cfg.MinSnippetLength && s.AppealHits >= e.cfg.MinAppealHits && s.BenefitHits >= e.cfg.MinBenefitHits {
		return &models.ClubDescription{Tone: models.ToneAppealing, Text: s.Snippet}
	}
	return &models.ClubDescription{
		Tone: models.ToneNeedsImprovement,
		Text: fmt.Sprintf("Rewrite the club introduction and meta description (at least %d characters) to describe what makes the club appealing and how it helps members reach their goals.",
			e.cfg.MinSnippetLength),
	}
}
