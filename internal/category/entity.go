// AngelaMos | 2026
// entity.go

package category

import (
	"time"

	"github.com/carterperez-dev/photo-portfolio/internal/query"
	"github.com/carterperez-dev/photo-portfolio/internal/row"
)

const table = "categories"

var columns = []string{
	"id", "name", "slug", "description", "meta_title", "meta_description",
	"cover_image_url", "is_active", "is_featured", "sort_order", "parent_id",
	"created_at", "updated_at", "created_by", "updated_by",
}

// Orders is the allow-list of category sort tokens.
var Orders = query.OrderSet{
	Columns: map[string]string{
		"name":      "name",
		"createdat": "created_at",
		"sortorder": "sort_order",
	},
	Default: "sort_order",
}

type Category struct {
	ID              int
	Name            string
	Slug            string
	Description     *string
	MetaTitle       *string
	MetaDescription *string
	CoverImageURL   *string
	IsActive        bool
	IsFeatured      bool
	SortOrder       int
	ParentID        *int
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	CreatedBy       *string
	UpdatedBy       *string
}

func fromRow(r *row.Reader) (Category, error) {
	c := Category{
		ID:              r.Int("id"),
		Name:            r.String("name"),
		Slug:            r.String("slug"),
		Description:     r.NullString("description"),
		MetaTitle:       r.NullString("meta_title"),
		MetaDescription: r.NullString("meta_description"),
		CoverImageURL:   r.NullString("cover_image_url"),
		IsActive:        r.Bool("is_active"),
		IsFeatured:      r.Bool("is_featured"),
		SortOrder:       r.Int("sort_order"),
		ParentID:        r.NullInt("parent_id"),
		CreatedAt:       r.Time("created_at"),
		UpdatedAt:       r.NullTime("updated_at"),
		CreatedBy:       r.NullString("created_by"),
		UpdatedBy:       r.NullString("updated_by"),
	}

	if err := r.Err(); err != nil {
		return Category{}, err
	}

	return c, nil
}
