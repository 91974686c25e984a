// internal/adapters/out/http/cloudinary_client.go
package httpout

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	mediadom "flyadmin/internal/domain/media"
)

// SecretProvider resolves the Cloudinary API secret at call time, so it can
// come from an env var locally and Secret Manager in production.
type SecretProvider func(ctx context.Context) (string, error)

// CloudinaryClient implements media.Repository against the Cloudinary REST
// API. Uploads use an unsigned preset; destroys are signed with the API
// secret.
type CloudinaryClient struct {
	cloudName    string
	uploadPreset string
	apiKey       string
	secret       SecretProvider
	client       *http.Client
	now          func() time.Time
}

func NewCloudinaryClient(cloudName, uploadPreset, apiKey string, secret SecretProvider) *CloudinaryClient {
	return &CloudinaryClient{
		cloudName:    strings.TrimSpace(cloudName),
		uploadPreset: strings.TrimSpace(uploadPreset),
		apiKey:       strings.TrimSpace(apiKey),
		secret:       secret,
		client:       &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
	}
}

var _ mediadom.Repository = (*CloudinaryClient)(nil)

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *CloudinaryClient) endpoint(action string) string {
	return "https://api.cloudinary.com/v1_1/" + c.cloudName + "/image/" + action
}

func (c *CloudinaryClient) Upload(ctx context.Context, folder string, data []byte, contentType string) (string, error) {
	if c.cloudName == "" || c.uploadPreset == "" {
		return "", fmt.Errorf("cloudinary client is not configured")
	}
	if len(data) == 0 {
		return "", mediadom.ErrEmptyImage
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if folder = strings.Trim(strings.TrimSpace(folder), "/"); folder != "" {
		if err := mw.WriteField("folder", folder); err != nil {
			return "", err
		}
	}
	if err := mw.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", err
	}
	fw, err := mw.CreateFormFile("file", "image")
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("upload"), &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	out, err := c.do(req)
	if err != nil {
		return "", err
	}
	if out.SecureURL == "" {
		return "", fmt.Errorf("%w: no secure_url in response", mediadom.ErrUploadFailed)
	}
	return out.SecureURL, nil
}

// Delete destroys the asset behind a delivery URL. The public id is the URL
// path after the version segment with the extension stripped.
func (c *CloudinaryClient) Delete(ctx context.Context, rawURL string) error {
	publicID, ok := publicIDFromURL(rawURL)
	if !ok {
		return mediadom.ErrUnsupportedURL
	}
	if c.secret == nil || c.apiKey == "" {
		return fmt.Errorf("cloudinary client has no destroy credentials")
	}
	secret, err := c.secret(ctx)
	if err != nil {
		return err
	}

	ts := strconv.FormatInt(c.now().Unix(), 10)
	toSign := "public_id=" + publicID + "&timestamp=" + ts + secret
	sum := sha1.Sum([]byte(toSign))

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", ts)
	form.Set("api_key", c.apiKey)
	form.Set("signature", hex.EncodeToString(sum[:]))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("destroy"),
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err = c.do(req)
	return err
}

func (c *CloudinaryClient) do(req *http.Request) (cloudinaryUploadResponse, error) {
	res, err := c.client.Do(req)
	if err != nil {
		return cloudinaryUploadResponse{}, err
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))

	var out cloudinaryUploadResponse
	_ = json.Unmarshal(raw, &out)
	if res.StatusCode != http.StatusOK {
		msg := out.Error.Message
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return cloudinaryUploadResponse{}, fmt.Errorf("cloudinary call failed status=%d: %s", res.StatusCode, msg)
	}
	return out, nil
}

// publicIDFromURL extracts the public id from a Cloudinary delivery URL,
// e.g. https://res.cloudinary.com/demo/image/upload/v17/products/ab12.jpg
// yields "products/ab12".
func publicIDFromURL(rawURL string) (string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || !strings.HasSuffix(strings.ToLower(parsed.Host), "cloudinary.com") {
		return "", false
	}

	segs := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	upload := -1
	for i, s := range segs {
		if s == "upload" {
			upload = i
			break
		}
	}
	if upload < 0 || upload == len(segs)-1 {
		return "", false
	}

	rest := segs[upload+1:]
	// Skip the optional version segment ("v" + digits).
	if len(rest) > 1 && len(rest[0]) > 1 && rest[0][0] == 'v' {
		if _, err := strconv.Atoi(rest[0][1:]); err == nil {
			rest = rest[1:]
		}
	}

	id := strings.Join(rest, "/")
	id = strings.TrimSuffix(id, path.Ext(id))
	if id == "" {
		return "", false
	}
	return id, true
}
