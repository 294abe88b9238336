// AngelaMos | 2026
// dto.go

package category

import (
	"time"
)

type CategoryResponse struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     *string    `json:"description"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	CoverImageURL   *string    `json:"coverImageUrl"`
	IsActive        bool       `json:"isActive"`
	IsFeatured      bool       `json:"isFeatured"`
	SortOrder       int        `json:"sortOrder"`
	ParentID        *int       `json:"parentId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
	CreatedBy       *string    `json:"createdBy"`
	UpdatedBy       *string    `json:"updatedBy"`
}

type CategoriesListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalCount int                `json:"totalCount"`
}

// ListCategoriesParams binds the listing query string.
type ListCategoriesParams struct {
	IncludeInactive bool   `json:"includeInactive"`
	OrderBy         string `json:"orderBy"`
	OrderDescending bool   `json:"orderDescending"`
}

func ToCategoryResponse(c *Category) CategoryResponse {
	return CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Description:     c.Description,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		CoverImageURL:   c.CoverImageURL,
		IsActive:        c.IsActive,
		IsFeatured:      c.IsFeatured,
		SortOrder:       c.SortOrder,
		ParentID:        c.ParentID,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		CreatedBy:       c.CreatedBy,
		UpdatedBy:       c.UpdatedBy,
	}
}

func ToCategoryResponseList(categories []Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, ToCategoryResponse(&c))
	}
	return responses
}
