// AngelaMos | 2026
// dto.go

package photo

import (
	"time"

	"github.com/shopspring/decimal"
)

type PhotoResponse struct {
	ID                int                 `json:"id"`
	Title             string              `json:"title"`
	Slug              string              `json:"slug"`
	Description       *string             `json:"description"`
	AltText           *string             `json:"altText"`
	FileName          string              `json:"fileName"`
	FilePath          string              `json:"filePath"`
	ThumbnailPath     *string             `json:"thumbnailPath"`
	MediumPath        *string             `json:"mediumPath"`
	LargePath         *string             `json:"largePath"`
	OriginalFileName  string              `json:"originalFileName"`
	FileSize          int64               `json:"fileSize"`
	FileSizeFormatted *string             `json:"fileSizeFormatted"`
	ContentType       string              `json:"contentType"`
	ImageWidth        *int                `json:"imageWidth"`
	ImageHeight       *int                `json:"imageHeight"`
	AspectRatio       decimal.NullDecimal `json:"aspectRatio"`
	CameraMake        *string             `json:"cameraMake"`
	CameraModel       *string             `json:"cameraModel"`
	Lens              *string             `json:"lens"`
	FocalLength       *string             `json:"focalLength"`
	Aperture          *string             `json:"aperture"`
	ShutterSpeed      *string             `json:"shutterSpeed"`
	ISO               *string             `json:"iso"`
	TakenAt           *time.Time          `json:"takenAt"`
	Location          *string             `json:"location"`
	Latitude          decimal.NullDecimal `json:"latitude"`
	Longitude         decimal.NullDecimal `json:"longitude"`
	CategoryID        int                 `json:"categoryId"`
	CategoryName      *string             `json:"categoryName"`
	IsActive          bool                `json:"isActive"`
	IsFeatured        bool                `json:"isFeatured"`
	IsPrivate         bool                `json:"isPrivate"`
	AllowDownload     bool                `json:"allowDownload"`
	SortOrder         int                 `json:"sortOrder"`
	ViewCount         int                 `json:"viewCount"`
	LikeCount         int                 `json:"likeCount"`
	DownloadCount     int                 `json:"downloadCount"`
	Tags              []string            `json:"tags"`
	Colors            []string            `json:"colors"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         *time.Time          `json:"updatedAt"`
	PublishedAt       *time.Time          `json:"publishedAt"`
	CreatedBy         *string             `json:"createdBy"`
	UpdatedBy         *string             `json:"updatedBy"`
}

type PhotosListResponse struct {
	Photos       []PhotoResponse `json:"photos"`
	TotalCount   int             `json:"totalCount"`
	CategoryID   int             `json:"categoryId"`
	CategoryName *string         `json:"categoryName"`
}

type PhotoFeedResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

// ListPhotosParams binds and validates the by-category query string.
type ListPhotosParams struct {
	CategoryID      int    `json:"categoryId"      validate:"gt=0"`
	IncludeInactive bool   `json:"includeInactive"`
	IncludePrivate  bool   `json:"includePrivate"`
	OrderBy         string `json:"orderBy"`
	OrderDescending bool   `json:"orderDescending"`
	Limit           *int   `json:"limit"           validate:"omitempty,gte=0"`
	Offset          *int   `json:"offset"          validate:"omitempty,gte=0"`
}

type FeedParams struct {
	Limit *int `json:"limit" validate:"omitempty,gte=0,lte=100"`
}

func ToPhotoResponse(p *Photo, categoryName *string) PhotoResponse {
	return PhotoResponse{
		ID:                p.ID,
		Title:             p.Title,
		Slug:              p.Slug,
		Description:       p.Description,
		AltText:           p.AltText,
		FileName:          p.FileName,
		FilePath:          p.FilePath,
		ThumbnailPath:     p.ThumbnailPath,
		MediumPath:        p.MediumPath,
		LargePath:         p.LargePath,
		OriginalFileName:  p.OriginalFileName,
		FileSize:          p.FileSize,
		FileSizeFormatted: p.FileSizeFormatted,
		ContentType:       p.ContentType,
		ImageWidth:        p.ImageWidth,
		ImageHeight:       p.ImageHeight,
		AspectRatio:       p.AspectRatio,
		CameraMake:        p.Exif.CameraMake,
		CameraModel:       p.Exif.CameraModel,
		Lens:              p.Exif.Lens,
		FocalLength:       p.Exif.FocalLength,
		Aperture:          p.Exif.Aperture,
		ShutterSpeed:      p.Exif.ShutterSpeed,
		ISO:               p.Exif.ISO,
		TakenAt:           p.Exif.TakenAt,
		Location:          p.Location,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		CategoryID:        p.CategoryID,
		CategoryName:      categoryName,
		IsActive:          p.IsActive,
		IsFeatured:        p.IsFeatured,
		IsPrivate:         p.IsPrivate,
		AllowDownload:     p.AllowDownload,
		SortOrder:         p.SortOrder,
		ViewCount:         p.ViewCount,
		LikeCount:         p.LikeCount,
		DownloadCount:     p.DownloadCount,
		Tags:              p.Tags,
		Colors:            p.Colors,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		PublishedAt:       p.PublishedAt,
		CreatedBy:         p.CreatedBy,
		UpdatedBy:         p.UpdatedBy,
	}
}

func ToPhotoResponseList(photos []Photo, categoryName *string) []PhotoResponse {
	responses := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		responses = append(responses, ToPhotoResponse(&p, categoryName))
	}
	return responses
}
