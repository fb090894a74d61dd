package catalog

import (
	"catalogkeeper/internal/models"
	pkgapi "catalogkeeper/pkg/api"
)

func fromWire(p pkgapi.Product) models.Product {
	return models.Product{
		ID: p.ID,
		Draft: models.Draft{
			Name:        p.Name,
			Category:    p.Category,
			Price:       p.Price,
			Description: p.Description,
			ImageURL:    p.ImageURL,
		},
	}
}

func toWire(id int64, d models.Draft) pkgapi.Product {
	return pkgapi.Product{
		ID:          id,
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
}
