package models

import (
	"encoding/json"
	"net/url"
	"time"
	"unicode/utf8"
)

// MaxTextLength is the hard cap on fact text, enforced on both ends.
const MaxTextLength = 200

type Fact struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Text            string    `gorm:"size:200;not null" json:"text"`
	Source          string    `gorm:"not null" json:"source"`
	Category        string    `gorm:"not null;index" json:"category"`
	VoteInteresting int       `gorm:"not null;default:0" json:"voteInteresting"`
	VoteMindblowing int       `gorm:"not null;default:0" json:"voteMindblowing"`
	VoteFalse       int       `gorm:"not null;default:0" json:"voteFalse"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FactInput is what a client supplies at creation time. Ids and vote
// counters are always assigned server-side.
type FactInput struct {
	Text     string `json:"text" binding:"required,max=200"`
	Source   string `json:"source" binding:"required,httpurl"`
	Category string `json:"category" binding:"required,factcategory"`
}

// Disputed reports whether false votes outweigh interesting + mindblowing.
func (f Fact) Disputed() bool {
	return f.VoteInteresting+f.VoteMindblowing < f.VoteFalse
}

// MarshalJSON adds the derived disputed flag to the wire shape. It is
// computed on the fly and never stored.
func (f Fact) MarshalJSON() ([]byte, error) {
	type alias Fact
	return json.Marshal(struct {
		alias
		Disputed bool `json:"disputed"`
	}{alias(f), f.Disputed()})
}

// ValidationError describes a rejected FactInput field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks a FactInput against the creation rules. The server
// runs this independently of any client-side checks.
func (in *FactInput) Validate() error {
	if in.Text == "" {
		return &ValidationError{Field: "text", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(in.Text) > MaxTextLength {
		return &ValidationError{Field: "text", Message: "must be at most 200 characters"}
	}
	if !ValidSourceURL(in.Source) {
		return &ValidationError{Field: "source", Message: "must be a valid http or https URL"}
	}
	if !ValidCategory(in.Category) {
		return &ValidationError{Field: "category", Message: "unknown category"}
	}
	return nil
}

// ValidSourceURL accepts absolute http/https URLs with a host.
func ValidSourceURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
