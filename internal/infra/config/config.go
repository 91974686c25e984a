// internal/infra/config/config.go
package config

import "os"

// Config はアプリケーション全体の環境変数設定を保持します。
type Config struct {
	Port     string
	GCPCreds string

	// Firebase / RTDB
	FirebaseProjectID string
	DatabaseURL       string
	FirebaseAPIKey    string

	// GCS
	GCSBucket string

	// Cloudinary（GCS の代わりに使う場合のみ設定）
	CloudinaryCloudName    string
	CloudinaryUploadPreset string
	CloudinaryAPIKey       string
	// Secret Manager 上の API secret のリソース名
	// 例) projects/<project>/secrets/cloudinary-api-secret/versions/latest
	CloudinarySecretName string

	// console 用のローカル設定の保存先
	PrefsDir string
}

// Load は環境変数を読み込み Config を返します。
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "flyadmin-dev")

	cfg := &Config{
		Port:     getenvDefault("PORT", "8080"),
		GCPCreds: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		FirebaseProjectID: getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		DatabaseURL:       getenvDefault("RTDB_URL", "https://"+defaultProject+"-default-rtdb.firebaseio.com"),
		FirebaseAPIKey:    os.Getenv("FIREBASE_API_KEY"),

		GCSBucket: os.Getenv("GCS_BUCKET"),

		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		CloudinaryAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecretName:   os.Getenv("CLOUDINARY_SECRET_NAME"),

		PrefsDir: getenvDefault("FLYADMIN_PREFS_DIR", defaultPrefsDir()),
	}

	return cfg
}

// UseCloudinary は Cloudinary 側の画像ストレージを使うかどうかを返します。
func (c *Config) UseCloudinary() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryUploadPreset != ""
}

func defaultPrefsDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home + "/.flyadmin"
	}
	return ".flyadmin"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
