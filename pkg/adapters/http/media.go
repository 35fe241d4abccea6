package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/media"
	"github.com/aretw0/canova/pkg/ports"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is the part of an upload kept in memory before spilling to disk.
const multipartMemory = 8 << 20

// UploadMedia handles the POST /api/media request. The file is sent in the
// "file" field of a multipart form.
func (s *Server) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if s.media == nil {
		s.fail(w, r, fmt.Errorf("%w: media uploads are disabled", domain.ErrNotFound))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, media.MaxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, domain.Invalid("file", "file exceeds %d MB", media.MaxUploadBytes>>20))
			return
		}
		s.fail(w, r, domain.Invalid("file", "invalid multipart form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, r, domain.Invalid("file", "no file uploaded"))
		return
	}
	defer file.Close()

	asset, err := s.media.Upload(r.Context(), ports.MediaUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.Info("Media uploaded", "public_id", asset.PublicID, "type", asset.ResourceType, "bytes", asset.Bytes)
	ok(w, http.StatusCreated, "file uploaded", asset)
}

// ServeMedia handles the GET /media/* request.
func (s *Server) ServeMedia(w http.ResponseWriter, r *http.Request) {
	path, found := s.media.Resolve(chi.URLParam(r, "*"))
	if !found {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeFile(w, r, path)
}
