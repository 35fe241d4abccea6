package ports

import (
	"context"
	"io"
)

// ResourceType is the kind of a hosted media asset.
type ResourceType string

const (
	ResourceImage ResourceType = "image"
	ResourceVideo ResourceType = "video"
)

// MediaUpload is a file handed to a MediaHost.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Asset describes a stored media file.
type Asset struct {
	URL          string       `json:"url"`
	PublicID     string       `json:"publicId"`
	ResourceType ResourceType `json:"resourceType"`
	Bytes        int64        `json:"bytes"`
}

// MediaHost stores the images and videos displayed by form questions.
type MediaHost interface {
	// Upload stores the file and returns where it is served from.
	Upload(ctx context.Context, upload MediaUpload) (Asset, error)

	// Delete removes an asset. Deleting a missing asset is not an error.
	Delete(ctx context.Context, publicID string, resourceType ResourceType) error
}
