package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"strings"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/ports"
)

// MaxUploadBytes is the largest accepted media file (50 MB).
const MaxUploadBytes = 50 << 20

// Folders under which hosted assets are grouped.
const (
	FolderImages = "form-media/images"
	FolderVideos = "form-media/videos"
)

var allowedExtensions = map[string]ports.ResourceType{
	".jpg":  ports.ResourceImage,
	".jpeg": ports.ResourceImage,
	".png":  ports.ResourceImage,
	".gif":  ports.ResourceImage,
	".webp": ports.ResourceImage,
	".mp4":  ports.ResourceVideo,
	".avi":  ports.ResourceVideo,
	".mov":  ports.ResourceVideo,
	".webm": ports.ResourceVideo,
}

// Classify checks an upload's content type and file extension and returns the
// resource type it is stored as.
func Classify(contentType, filename string) (ports.ResourceType, error) {
	var kind ports.ResourceType
	switch {
	case strings.HasPrefix(contentType, "image/"):
		kind = ports.ResourceImage
	case strings.HasPrefix(contentType, "video/"):
		kind = ports.ResourceVideo
	default:
		return "", domain.Invalid("file", "only image and video files are allowed")
	}

	ext := strings.ToLower(path.Ext(filename))
	if byExt, ok := allowedExtensions[ext]; !ok || byExt != kind {
		return "", domain.Invalid("file", "unsupported file extension %q", ext)
	}
	return kind, nil
}

// Folder returns the storage folder of a resource type.
func Folder(kind ports.ResourceType) string {
	if kind == ports.ResourceVideo {
		return FolderVideos
	}
	return FolderImages
}

var publicIDPattern = regexp.MustCompile(`/v\d+/(.+)\.[^.]+$`)

// PublicID extracts the asset id from a hosted URL of the form
// ".../v<version>/<public id>.<ext>".
func PublicID(url string) (string, bool) {
	m := publicIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ResourceTypeOf infers the resource type from a hosted URL.
func ResourceTypeOf(url string) ports.ResourceType {
	if strings.Contains(url, "/video/") {
		return ports.ResourceVideo
	}
	return ports.ResourceImage
}

// CollectURLs returns the distinct media URLs displayed by image and video
// questions, in page order. Only URLs containing marker (the media host's base
// URL) are returned; an empty marker accepts every URL.
func CollectURLs(pages []domain.Page, marker string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range pages {
		for _, q := range p.Questions() {
			if !q.Type.IsMedia() || q.MediaURL == "" || seen[q.MediaURL] {
				continue
			}
			if marker != "" && !strings.Contains(q.MediaURL, marker) {
				continue
			}
			seen[q.MediaURL] = true
			out = append(out, q.MediaURL)
		}
	}
	return out
}

// Unused returns the media URLs referenced by oldPages and no longer by newPages.
func Unused(oldPages, newPages []domain.Page, marker string) []string {
	keep := make(map[string]bool)
	for _, u := range CollectURLs(newPages, marker) {
		keep[u] = true
	}
	var out []string
	for _, u := range CollectURLs(oldPages, marker) {
		if !keep[u] {
			out = append(out, u)
		}
	}
	return out
}

// Cleanup deletes the assets dropped between oldPages and newPages. Every
// deletion is attempted; failures are logged and returned joined.
func Cleanup(ctx context.Context, host ports.MediaHost, logger *slog.Logger, oldPages, newPages []domain.Page, marker string) error {
	var errs []error
	for _, url := range Unused(oldPages, newPages, marker) {
		id, ok := PublicID(url)
		if !ok {
			continue
		}
		if err := host.Delete(ctx, id, ResourceTypeOf(url)); err != nil {
			logger.Error("Failed to delete media", "public_id", id, "error", err)
			errs = append(errs, fmt.Errorf("failed to delete media %s: %w", id, err))
			continue
		}
		logger.Info("Deleted unused media", "public_id", id)
	}
	return errors.Join(errs...)
}
