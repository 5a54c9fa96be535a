package services

import (
	"reflect"
	"testing"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(logger.NewDefault())

	tests := []struct {
		name           string
		body           string
		wantSuspicious bool
		wantCategory   models.RiskCategory
	}{
		{
			name:           "fraud keyword",
			body:           "Congratulations, you are our LOTTERY winner",
			wantSuspicious: true,
			wantCategory:   models.RiskCategoryFraud,
		},
		{
			name:           "fraud regex on original case",
			body:           "Your Account will be Suspended unless you act",
			wantSuspicious: true,
			wantCategory:   models.RiskCategoryFraud,
		},
		{
			name:           "criminal keyword",
			body:           "got the stolen phones ready",
			wantSuspicious: true,
			wantCategory:   models.RiskCategoryCriminal,
		},
		{
			name:           "cyberbullying keyword",
			body:           "everyone thinks you're a loser",
			wantSuspicious: true,
			wantCategory:   models.RiskCategoryCyberbullying,
		},
		{
			name:           "threat keyword",
			body:           "i will attack tomorrow",
			wantSuspicious: true,
			wantCategory:   models.RiskCategoryThreat,
		},
		{
			name:           "threat regex",
			body:           "Watch your back on the way home",
			wantSuspicious: true,
			wantCategory:   models.RiskCategoryThreat,
		},
		{
			name:           "negative sentiment",
			body:           "this is horrible and i am so depressed",
			wantSuspicious: true,
			wantCategory:   models.RiskCategoryNegativeSentiment,
		},
		{
			name:           "benign",
			body:           "see you at lunch tomorrow",
			wantSuspicious: false,
			wantCategory:   "",
		},
		{
			name:           "keyword needs exact token not substring",
			body:           "the bomber jacket finally arrived",
			wantSuspicious: false,
			wantCategory:   "",
		},
		{
			name:           "empty body",
			body:           "",
			wantSuspicious: false,
			wantCategory:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suspicious, category := c.Classify(tt.body)
			if suspicious != tt.wantSuspicious || category != tt.wantCategory {
				t.Errorf("Classify(%q) = (%v, %q), want (%v, %q)",
					tt.body, suspicious, category, tt.wantSuspicious, tt.wantCategory)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	c := NewClassifier(logger.NewDefault())

	// fraud and threat both fire; fraud is earlier in the order and wins
	suspicious, category := c.Classify("claim your lottery prize or we kill the deal")
	if !suspicious || category != models.RiskCategoryFraud {
		t.Errorf("Classify() = (%v, %q), want (true, %q)", suspicious, category, models.RiskCategoryFraud)
	}
}

func TestClassifyTotality(t *testing.T) {
	c := NewClassifier(logger.NewDefault())

	bodies := []string{
		"lottery winner",
		"selling drugs tonight",
		"you are pathetic",
		"i will hurt you",
		"everything is awful and hopeless",
		"hello world",
		"",
	}

	for _, body := range bodies {
		suspicious, category := c.Classify(body)
		if suspicious != (category != "") {
			t.Errorf("Classify(%q) = (%v, %q): suspicious and category must be set together", body, suspicious, category)
		}
	}
}

func TestSentimentScore(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{"i love this", 3},
		{"this is horrible", -3},
		{"horrible but thanks", -1},
		{"nothing scored here", 0},
	}

	for _, tt := range tests {
		if got := sentimentScore(tokenizeWords(tt.body)); got != tt.want {
			t.Errorf("sentimentScore(%q) = %d, want %d", tt.body, got, tt.want)
		}
	}
}

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"hello, world!", []string{"hello", "world"}},
		{"claim your $500 prize!!!", []string{"claim", "your", "500", "prize"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{"...", nil},
		{"", nil},
	}

	for _, tt := range tests {
		if got := tokenizeWords(tt.text); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tokenizeWords(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
