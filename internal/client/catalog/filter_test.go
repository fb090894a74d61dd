package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalogkeeper/internal/models"
)

func sampleRecords() []models.Product {
	return []models.Product{
		{ID: 1, Draft: models.Draft{Name: "Wireless Mouse", Category: "Electronics", Description: "A comfortable wireless mouse."}},
		{ID: 2, Draft: models.Draft{Name: "Running Shoes", Category: "Sports", Description: "Lightweight shoes for daily runs."}},
		{ID: 3, Draft: models.Draft{Name: "Go Programming", Category: "Books", Description: "An introduction to the Go language."}},
		{ID: 4, Draft: models.Draft{Name: "USB Keyboard", Category: "Electronics", Description: "Mechanical keyboard with a mouse-friendly layout."}},
	}
}

func TestFilter_EmptyFiltersReturnAll(t *testing.T) {
	records := sampleRecords()

	got := Filter(records, "", "")

	assert.Equal(t, records, got)
}

func TestFilter_Query(t *testing.T) {
	records := sampleRecords()

	// Case-insensitive, matches name or description
	got := Filter(records, "MOUSE", "")

	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)
}

func TestFilter_Category(t *testing.T) {
	records := sampleRecords()

	got := Filter(records, "", "Electronics")

	assert.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "Electronics", r.Category)
	}
}

func TestFilter_Intersection(t *testing.T) {
	records := sampleRecords()

	got := Filter(records, "mouse", "Electronics")
	assert.Len(t, got, 2)

	got = Filter(records, "mouse", "Sports")
	assert.Empty(t, got)
}

func TestFilter_Pure(t *testing.T) {
	records := sampleRecords()

	first := Filter(records, "go", "Books")
	second := Filter(records, "go", "Books")

	// Same inputs, same output, and the input is untouched
	assert.Equal(t, first, second)
	assert.Equal(t, sampleRecords(), records)
}

func TestFilter_NoMatch(t *testing.T) {
	got := Filter(sampleRecords(), "telescope", "")
	assert.Empty(t, got)
}
