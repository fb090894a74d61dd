package cli

import (
	"fmt"
	"strconv"
	"strings"

	"catalogkeeper/internal/models"
)

// promptDraft reads the product fields interactively. Validation happens in
// the catalog store; here only the price needs parsing.
func promptDraft() (models.Draft, error) {
	var draft models.Draft

	name, err := readInput("Name: ")
	if err != nil {
		return draft, fmt.Errorf("failed to read name: %w", err)
	}

	fmt.Printf("Category (%s):\n", strings.Join(models.Categories, ", "))
	category, err := readInput("Category: ")
	if err != nil {
		return draft, fmt.Errorf("failed to read category: %w", err)
	}

	priceStr, err := readInput("Price: ")
	if err != nil {
		return draft, fmt.Errorf("failed to read price: %w", err)
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return draft, fmt.Errorf("invalid price: %q", priceStr)
	}

	description, err := readInput("Description: ")
	if err != nil {
		return draft, fmt.Errorf("failed to read description: %w", err)
	}

	imageURL, err := readInput("Image URL: ")
	if err != nil {
		return draft, fmt.Errorf("failed to read image URL: %w", err)
	}

	draft = models.Draft{
		Name:        name,
		Category:    category,
		Price:       price,
		Description: description,
		ImageURL:    imageURL,
	}
	return draft, nil
}
