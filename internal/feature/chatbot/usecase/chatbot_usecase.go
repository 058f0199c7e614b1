// Package usecase implements the keyword responder.
package usecase

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"greenthumb_backend/internal/feature/chatbot/domain/entity"
)

const (
	offTopicReply = "❌ Cette question ne semble pas concerner le jardinage. Pose-moi une question sur les plantes, le compost, les maladies, etc. 🌿"
	fallbackReply = "🤔 Je n'ai pas encore la réponse à cette question, mais je m'améliore chaque jour !"
)

// ErrEmptyQuestion is returned for a blank question.
var ErrEmptyQuestion = errors.New("question is required")

// KnowledgeBase supplies the keyword table.
type KnowledgeBase interface {
	Topics() []string
	Rules() []entity.Rule
}

// Responder matches questions against a normalized copy of the knowledge base.
type Responder struct {
	topics []string
	rules  []entity.Rule
}

// NewResponder normalizes the knowledge base once so keywords written with
// accents or capitals still match.
func NewResponder(kb KnowledgeBase) *Responder {
	topics := make([]string, 0, len(kb.Topics()))
	for _, t := range kb.Topics() {
		topics = append(topics, Normalize(t))
	}
	rules := make([]entity.Rule, 0, len(kb.Rules()))
	for _, r := range kb.Rules() {
		kws := make([]string, len(r.Keywords))
		for i, k := range r.Keywords {
			kws[i] = Normalize(k)
		}
		rules = append(rules, entity.Rule{Keywords: kws, Reply: r.Reply})
	}
	return &Responder{topics: topics, rules: rules}
}

// Reply returns the canned answer for question.
func (r *Responder) Reply(question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}
	q := Normalize(question)

	onTopic := false
	for _, t := range r.topics {
		if strings.Contains(q, t) {
			onTopic = true
			break
		}
	}
	if !onTopic {
		return offTopicReply, nil
	}

	for _, rule := range r.rules {
		if containsAll(q, rule.Keywords) {
			return rule.Reply, nil
		}
	}
	return fallbackReply, nil
}

func containsAll(s string, keywords []string) bool {
	for _, k := range keywords {
		if !strings.Contains(s, k) {
			return false
		}
	}
	return true
}

// Normalize lowercases s and strips diacritics: "Arrosé" becomes "arrose".
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
