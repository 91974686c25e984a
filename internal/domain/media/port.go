// internal/domain/media/port.go
package media

import (
	"context"
	"errors"
)

// Folder prefixes under which product imagery is stored.
const (
	FolderProducts = "products"
	FolderBrands   = "brands"
	FolderBanners  = "banners"
)

var (
	ErrEmptyImage     = errors.New("media: empty image")
	ErrUnsupportedURL = errors.New("media: url does not belong to this store")
	ErrUploadFailed   = errors.New("media: upload failed")
)

// Repository stores image blobs and addresses them by public URL. Upload
// names the object itself; callers only choose the folder.
type Repository interface {
	Upload(ctx context.Context, folder string, data []byte, contentType string) (url string, err error)
	// Delete removes the object a previously returned URL points at.
	// Deleting an already-deleted URL is a no-op.
	Delete(ctx context.Context, url string) error
}
