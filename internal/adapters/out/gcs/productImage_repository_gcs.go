// internal/adapters/out/gcs/productImage_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	gcscommon "flyadmin/internal/adapters/out/gcs/common"
	mediadom "flyadmin/internal/domain/media"
)

// ProductImageRepositoryGCS implements media.Repository backed by Google
// Cloud Storage. Objects are named "<folder>/<uuid><ext>"; the uuid makes
// uploads collision-free without coordinating with callers.
type ProductImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

func NewProductImageRepositoryGCS(client *storage.Client, bucket string) *ProductImageRepositoryGCS {
	return &ProductImageRepositoryGCS{
		Client: client,
		Bucket: strings.TrimSpace(bucket),
	}
}

var _ mediadom.Repository = (*ProductImageRepositoryGCS)(nil)

func (r *ProductImageRepositoryGCS) effectiveBucket() (string, error) {
	b := strings.TrimSpace(r.Bucket)
	if b == "" {
		return "", errors.New("ProductImageRepositoryGCS: bucket is empty")
	}
	return b, nil
}

func extensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	}
	return ".jpg"
}

func (r *ProductImageRepositoryGCS) Upload(ctx context.Context, folder string, data []byte, contentType string) (string, error) {
	if r.Client == nil {
		return "", errors.New("ProductImageRepositoryGCS: nil storage client")
	}
	if len(data) == 0 {
		return "", mediadom.ErrEmptyImage
	}
	bucket, err := r.effectiveBucket()
	if err != nil {
		return "", err
	}

	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = mediadom.FolderProducts
	}
	objName := folder + "/" + uuid.NewString() + extensionFor(contentType)

	w := r.Client.Bucket(bucket).Object(objName).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return gcscommon.PublicURL(bucket, objName, ""), nil
}

func (r *ProductImageRepositoryGCS) Delete(ctx context.Context, rawURL string) error {
	if r.Client == nil {
		return errors.New("ProductImageRepositoryGCS: nil storage client")
	}
	bucket, objName, ok := gcscommon.ParseURL(rawURL)
	if !ok {
		return mediadom.ErrUnsupportedURL
	}

	err := r.Client.Bucket(bucket).Object(objName).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}
