// internal/platform/di/secret_provider_sm.go
package di

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	httpout "flyadmin/internal/adapters/out/http"
)

var errCloudinarySecretNotConfigured = errors.New("di: cloudinary secret provider not configured")

// cloudinarySecretProviderSM resolves the Cloudinary API secret from Secret
// Manager on first use. name is a full resource name, e.g.
// projects/<project>/secrets/cloudinary-api-secret/versions/latest.
func cloudinarySecretProviderSM(sm *secretmanager.Client, name string) httpout.SecretProvider {
	return func(ctx context.Context) (string, error) {
		if sm == nil {
			return "", errCloudinarySecretNotConfigured
		}
		n := strings.TrimSpace(name)
		if n == "" {
			return "", errors.New("di: CLOUDINARY_SECRET_NAME is empty")
		}
		resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: n})
		if err != nil {
			return "", errors.New("di: AccessSecretVersion failed (" + n + "): " + err.Error())
		}
		if resp == nil || resp.Payload == nil {
			return "", errors.New("di: empty secret payload (" + n + ")")
		}
		return strings.TrimSpace(string(resp.Payload.Data)), nil
	}
}
