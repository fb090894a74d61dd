package models

// Categories is the fixed set of product categories accepted by the catalog.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Sports",
	"Other",
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Draft holds the user-editable fields of a product. A draft carries no
// identity; the server assigns an id on create.
type Draft struct {
	Name        string
	Category    string
	Price       float64
	Description string
	ImageURL    string
}

// Product is a persisted catalog record: a draft plus its server-assigned id.
type Product struct {
	Draft
	ID int64
}
