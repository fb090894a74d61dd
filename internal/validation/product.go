package validation

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"catalogkeeper/internal/models"
)

const (
	// MinNameLen is the minimum product name length
	MinNameLen = 3
	// MaxPrice is the upper bound for a product price
	MaxPrice = 1_000_000
	// MinDescriptionLen is the minimum description length
	MinDescriptionLen = 10
	// MaxDescriptionLen is the maximum description length
	MaxDescriptionLen = 1000
)

// Error reports a field that failed validation. Field is empty when the
// rejection came from the server without naming a field.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidateDraft checks a product draft against the field rules enforced by
// the server. It returns the first failing field so the check never reaches
// the network for drafts the server would reject anyway.
func ValidateDraft(d models.Draft) error {
	if strings.TrimSpace(d.Name) == "" {
		return &Error{Field: "name", Reason: "product name is required"}
	}
	if len(d.Name) < MinNameLen {
		return &Error{Field: "name", Reason: fmt.Sprintf("product name must be at least %d characters long", MinNameLen)}
	}

	if d.Category == "" {
		return &Error{Field: "category", Reason: "category is required"}
	}
	if !models.ValidCategory(d.Category) {
		return &Error{Field: "category", Reason: "unknown category"}
	}

	if math.IsNaN(d.Price) || math.IsInf(d.Price, 0) {
		return &Error{Field: "price", Reason: "price must be a number"}
	}
	if d.Price < 0 {
		return &Error{Field: "price", Reason: "price cannot be negative"}
	}
	if d.Price > MaxPrice {
		return &Error{Field: "price", Reason: fmt.Sprintf("price cannot exceed %d", MaxPrice)}
	}

	if strings.TrimSpace(d.Description) == "" {
		return &Error{Field: "description", Reason: "description is required"}
	}
	if len(d.Description) < MinDescriptionLen {
		return &Error{Field: "description", Reason: fmt.Sprintf("description must be at least %d characters long", MinDescriptionLen)}
	}
	if len(d.Description) > MaxDescriptionLen {
		return &Error{Field: "description", Reason: fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLen)}
	}

	if d.ImageURL == "" {
		return &Error{Field: "image_url", Reason: "image URL is required"}
	}
	u, err := url.Parse(d.ImageURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &Error{Field: "image_url", Reason: "image URL must be a valid absolute URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &Error{Field: "image_url", Reason: "image URL must start with http:// or https://"}
	}

	return nil
}
