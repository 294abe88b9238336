// AngelaMos | 2026
// entity.go

package photo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/photo-portfolio/internal/query"
	"github.com/carterperez-dev/photo-portfolio/internal/row"
)

const table = "photos"

var columns = []string{
	"id", "title", "slug", "description", "alt_text", "file_name", "file_path",
	"thumbnail_path", "medium_path", "large_path", "original_file_name",
	"file_size", "file_size_formatted", "content_type", "image_width",
	"image_height", "aspect_ratio", "camera_make", "camera_model", "lens",
	"focal_length", "aperture", "shutter_speed", "iso", "taken_at", "location",
	"latitude", "longitude", "category_id", "is_active", "is_featured",
	"is_private", "allow_download", "sort_order", "view_count", "like_count",
	"download_count", "tags", "colors", "created_at", "updated_at",
	"published_at", "created_by", "updated_by",
}

// Orders is the allow-list of photo sort tokens.
var Orders = query.OrderSet{
	Columns: map[string]string{
		"title":     "title",
		"createdat": "created_at",
		"takenat":   "taken_at",
		"viewcount": "view_count",
		"likecount": "like_count",
		"sortorder": "sort_order",
	},
	Default: "sort_order",
}

// Exif holds camera metadata extracted at upload time.
type Exif struct {
	CameraMake   *string
	CameraModel  *string
	Lens         *string
	FocalLength  *string
	Aperture     *string
	ShutterSpeed *string
	ISO          *string
	TakenAt      *time.Time
}

type Photo struct {
	ID                int
	Title             string
	Slug              string
	Description       *string
	AltText           *string
	FileName          string
	FilePath          string
	ThumbnailPath     *string
	MediumPath        *string
	LargePath         *string
	OriginalFileName  string
	FileSize          int64
	FileSizeFormatted *string
	ContentType       string
	ImageWidth        *int
	ImageHeight       *int
	AspectRatio       decimal.NullDecimal
	Exif              Exif
	Location          *string
	Latitude          decimal.NullDecimal
	Longitude         decimal.NullDecimal
	CategoryID        int
	IsActive          bool
	IsFeatured        bool
	IsPrivate         bool
	AllowDownload     bool
	SortOrder         int
	ViewCount         int
	LikeCount         int
	DownloadCount     int
	Tags              []string
	Colors            []string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	PublishedAt       *time.Time
	CreatedBy         *string
	UpdatedBy         *string
}

// IsPublic reports whether anonymous visitors may see the photo.
func (p *Photo) IsPublic() bool {
	return p.IsActive && !p.IsPrivate
}

func fromRow(r *row.Reader) (Photo, error) {
	p := Photo{
		ID:                r.Int("id"),
		Title:             r.String("title"),
		Slug:              r.String("slug"),
		Description:       r.NullString("description"),
		AltText:           r.NullString("alt_text"),
		FileName:          r.String("file_name"),
		FilePath:          r.String("file_path"),
		ThumbnailPath:     r.NullString("thumbnail_path"),
		MediumPath:        r.NullString("medium_path"),
		LargePath:         r.NullString("large_path"),
		OriginalFileName:  r.String("original_file_name"),
		FileSize:          r.Int64("file_size"),
		FileSizeFormatted: r.NullString("file_size_formatted"),
		ContentType:       r.String("content_type"),
		ImageWidth:        r.NullInt("image_width"),
		ImageHeight:       r.NullInt("image_height"),
		AspectRatio:       r.Decimal("aspect_ratio"),
		Exif: Exif{
			CameraMake:   r.NullString("camera_make"),
			CameraModel:  r.NullString("camera_model"),
			Lens:         r.NullString("lens"),
			FocalLength:  r.NullString("focal_length"),
			Aperture:     r.NullString("aperture"),
			ShutterSpeed: r.NullString("shutter_speed"),
			ISO:          r.NullString("iso"),
			TakenAt:      r.NullTime("taken_at"),
		},
		Location:      r.NullString("location"),
		Latitude:      r.Decimal("latitude"),
		Longitude:     r.Decimal("longitude"),
		CategoryID:    r.Int("category_id"),
		IsActive:      r.Bool("is_active"),
		IsFeatured:    r.Bool("is_featured"),
		IsPrivate:     r.Bool("is_private"),
		AllowDownload: r.Bool("allow_download"),
		SortOrder:     r.Int("sort_order"),
		ViewCount:     r.Int("view_count"),
		LikeCount:     r.Int("like_count"),
		DownloadCount: r.Int("download_count"),
		Tags:          r.Labels("tags"),
		Colors:        r.Labels("colors"),
		CreatedAt:     r.Time("created_at"),
		UpdatedAt:     r.NullTime("updated_at"),
		PublishedAt:   r.NullTime("published_at"),
		CreatedBy:     r.NullString("created_by"),
		UpdatedBy:     r.NullString("updated_by"),
	}

	if err := r.Err(); err != nil {
		return Photo{}, err
	}

	return p, nil
}
