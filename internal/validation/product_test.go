package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogkeeper/internal/models"
)

// validDraft returns a draft that passes every rule
func validDraft() models.Draft {
	return models.Draft{
		Name:        "Wireless Mouse",
		Category:    "Electronics",
		Price:       29.99,
		Description: "A comfortable wireless mouse with long battery life.",
		ImageURL:    "https://example.com/mouse.jpg",
	}
}

func TestValidateDraft_Valid(t *testing.T) {
	assert.NoError(t, ValidateDraft(validDraft()))
}

func TestValidateDraft_FieldErrors(t *testing.T) {
	tests := []struct {
		mutate    func(*models.Draft)
		name      string
		wantField string
	}{
		{
			name:      "empty name",
			mutate:    func(d *models.Draft) { d.Name = "" },
			wantField: "name",
		},
		{
			name:      "name too short",
			mutate:    func(d *models.Draft) { d.Name = "ab" },
			wantField: "name",
		},
		{
			name:      "empty category",
			mutate:    func(d *models.Draft) { d.Category = "" },
			wantField: "category",
		},
		{
			name:      "unknown category",
			mutate:    func(d *models.Draft) { d.Category = "Gadgets" },
			wantField: "category",
		},
		{
			name:      "negative price",
			mutate:    func(d *models.Draft) { d.Price = -1 },
			wantField: "price",
		},
		{
			name:      "price above maximum",
			mutate:    func(d *models.Draft) { d.Price = 2_000_000 },
			wantField: "price",
		},
		{
			name:      "price not a number",
			mutate:    func(d *models.Draft) { d.Price = math.NaN() },
			wantField: "price",
		},
		{
			name:      "price infinite",
			mutate:    func(d *models.Draft) { d.Price = math.Inf(1) },
			wantField: "price",
		},
		{
			name:      "empty description",
			mutate:    func(d *models.Draft) { d.Description = "" },
			wantField: "description",
		},
		{
			name:      "description too short",
			mutate:    func(d *models.Draft) { d.Description = "short" },
			wantField: "description",
		},
		{
			name:      "description too long",
			mutate:    func(d *models.Draft) { d.Description = string(make([]byte, MaxDescriptionLen+1)) },
			wantField: "description",
		},
		{
			name:      "empty image url",
			mutate:    func(d *models.Draft) { d.ImageURL = "" },
			wantField: "image_url",
		},
		{
			name:      "relative image url",
			mutate:    func(d *models.Draft) { d.ImageURL = "/images/mouse.jpg" },
			wantField: "image_url",
		},
		{
			name:      "non http scheme",
			mutate:    func(d *models.Draft) { d.ImageURL = "ftp://example.com/mouse.jpg" },
			wantField: "image_url",
		},
		{
			name:      "not a url",
			mutate:    func(d *models.Draft) { d.ImageURL = "not a url at all" },
			wantField: "image_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := ValidateDraft(draft)
			require.Error(t, err)

			var vErr *Error
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.NotEmpty(t, vErr.Reason)
		})
	}
}

func TestValidateDraft_PriceBounds(t *testing.T) {
	draft := validDraft()

	draft.Price = 0
	assert.NoError(t, ValidateDraft(draft), "zero price is allowed")

	draft.Price = MaxPrice
	assert.NoError(t, ValidateDraft(draft), "maximum price is allowed")
}

func TestError_Message(t *testing.T) {
	withField := &Error{Field: "price", Reason: "price cannot be negative"}
	assert.Equal(t, "price: price cannot be negative", withField.Error())

	serverSide := &Error{Reason: "request rejected by server"}
	assert.Equal(t, "request rejected by server", serverSide.Error())
}
