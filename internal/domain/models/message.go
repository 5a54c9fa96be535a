package models

// MessageDirection indicates whether an SMS was received or sent
type MessageDirection string

const (
	MessageDirectionReceived MessageDirection = "received"
	MessageDirectionSent     MessageDirection = "sent"
)

// RiskCategory labels a suspicious message with the rule category that fired
type RiskCategory string

const (
	RiskCategoryFraud             RiskCategory = "fraud"
	RiskCategoryCriminal          RiskCategory = "criminal"
	RiskCategoryCyberbullying     RiskCategory = "cyberbullying"
	RiskCategoryThreat            RiskCategory = "threat"
	RiskCategoryNegativeSentiment RiskCategory = "negative_sentiment"
)

// Message is a normalized SMS record extracted from a device dump.
//
// Date holds the normalized local date-time string ("2006-01-02 15:04:05");
// if the raw value could not be parsed it holds the raw value unchanged.
// Category is set iff IsSuspicious is true. ContactName is nil when the
// address did not resolve against the contact set; the JSON field is always
// present so consumers can distinguish "unresolved" from "missing".
type Message struct {
	Address      string           `json:"address"`
	Date         string           `json:"date,omitempty"`
	Direction    MessageDirection `json:"direction,omitempty"`
	Body         string           `json:"body,omitempty"`
	IsSuspicious bool             `json:"isSuspicious"`
	Category     RiskCategory     `json:"category,omitempty"`
	ContactName  *string          `json:"contactName"`
}
