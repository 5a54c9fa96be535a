package services

import (
	"strings"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// Classifier flags message bodies that match heuristic risk categories.
// Classification is a pure function over the body text, so stored results
// can always be recomputed from the raw message.
type Classifier struct {
	logger *logger.Logger
}

// NewClassifier creates a new Classifier
func NewClassifier(log *logger.Logger) *Classifier {
	return &Classifier{
		logger: log.WithComponent("classifier"),
	}
}

// Classify evaluates every risk rule against body in precedence order and
// returns whether the body is suspicious, together with the first category
// that fired. A body matching several rules takes only the earliest one.
func (c *Classifier) Classify(body string) (bool, models.RiskCategory) {
	tokens := tokenizeWords(strings.ToLower(body))

	for _, rule := range riskRules {
		if matchesRule(rule, body, tokens) {
			return true, rule.Category
		}
	}

	if sentimentScore(tokens) < sentimentThreshold {
		return true, models.RiskCategoryNegativeSentiment
	}

	return false, ""
}

// Apply classifies msg in place, setting IsSuspicious and Category.
func (c *Classifier) Apply(msg *models.Message) {
	msg.IsSuspicious, msg.Category = c.Classify(msg.Body)
}

// matchesRule fires on an exact token hit from the rule's keyword set, or
// on a pattern match against the original-case body.
func matchesRule(rule riskRule, body string, tokens []string) bool {
	for _, token := range tokens {
		if _, ok := rule.Keywords[token]; ok {
			return true
		}
	}
	return rule.Pattern.MatchString(body)
}

// sentimentScore sums the lexicon weights of the body's tokens.
func sentimentScore(tokens []string) int {
	score := 0
	for _, token := range tokens {
		score += sentimentLexicon[token]
	}
	return score
}
