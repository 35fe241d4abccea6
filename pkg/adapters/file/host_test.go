package file_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/aretw0/canova/pkg/adapters/file"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/media"
	"github.com/aretw0/canova/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHost_UploadResolveDelete(t *testing.T) {
	ctx := context.Background()
	host := file.New(t.TempDir(), "http://localhost:8080/media/")

	asset, err := host.Upload(ctx, ports.MediaUpload{
		Filename:    "banner.png",
		ContentType: "image/png",
		Size:        5,
		Body:        strings.NewReader("hello"),
	})
	require.NoError(t, err)

	assert.Equal(t, ports.ResourceImage, asset.ResourceType)
	assert.Equal(t, int64(5), asset.Bytes)
	assert.True(t, strings.HasPrefix(asset.URL, "http://localhost:8080/media/image/upload/v"))
	assert.True(t, strings.HasPrefix(asset.PublicID, media.FolderImages+"/"))

	id, ok := media.PublicID(asset.URL)
	require.True(t, ok)
	assert.Equal(t, asset.PublicID, id)

	onDisk, ok := host.Resolve(strings.TrimPrefix(asset.URL, "http://localhost:8080/media"))
	require.True(t, ok)
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, host.Delete(ctx, asset.PublicID, asset.ResourceType))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, host.Delete(ctx, asset.PublicID, asset.ResourceType), "deleting twice is not an error")
}

func TestHost_RejectsUploads(t *testing.T) {
	ctx := context.Background()
	host := file.New(t.TempDir(), "http://localhost/media")

	_, err := host.Upload(ctx, ports.MediaUpload{Filename: "notes.txt", ContentType: "text/plain", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = host.Upload(ctx, ports.MediaUpload{Filename: "big.mp4", ContentType: "video/mp4", Size: media.MaxUploadBytes + 1, Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = host.Delete(ctx, "../../etc/passwd", ports.ResourceImage)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHost_ResolveRejectsTraversal(t *testing.T) {
	host := file.New(t.TempDir(), "")
	_, ok := host.Resolve("/image/upload/v1/../../secret.png")
	assert.False(t, ok)
	_, ok = host.Resolve("/nothing-here")
	assert.False(t, ok)
}
