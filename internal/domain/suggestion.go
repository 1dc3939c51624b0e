package domain

import "errors"

// Common validation errors for card message requests.
var (
	ErrEmptyGiftTitle       = errors.New("gift title cannot be empty")
	ErrEmptyGiftDescription = errors.New("gift description cannot be empty")
	ErrEmptyRecipientName   = errors.New("recipient name cannot be empty")
)

// GiftSuggestion is a single gift idea produced by the suggestion pipeline.
// Instances are immutable once returned; the slice order matters only for
// display and carries no ranking guarantee.
type GiftSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reasoning   string `json:"reasoning"`
}

// CardMessageRequest holds the inputs for generating a greeting-card message
// for a chosen gift. SenderName is optional; when absent the prompt refers to
// "the gift giver".
type CardMessageRequest struct {
	GiftTitle       string `json:"giftTitle"`
	GiftDescription string `json:"giftDescription"`
	RecipientName   string `json:"recipientName"`
	Occasion        string `json:"occasion"`
	Relationship    string `json:"relationship"`
	SenderName      string `json:"senderName,omitempty"`
}

// Validate checks that all required card message fields are present.
func (c *CardMessageRequest) Validate() error {
	if c.GiftTitle == "" {
		return ErrEmptyGiftTitle
	}
	if c.GiftDescription == "" {
		return ErrEmptyGiftDescription
	}
	if c.RecipientName == "" {
		return ErrEmptyRecipientName
	}
	if c.Occasion == "" {
		return ErrEmptyOccasion
	}
	if c.Relationship == "" {
		return ErrEmptyRelationship
	}
	return nil
}
