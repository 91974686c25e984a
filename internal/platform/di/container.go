// internal/platform/di/container.go
package di

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"

	httpin "flyadmin/internal/adapters/in/http"
	"flyadmin/internal/adapters/in/http/middleware"
	gcsrepo "flyadmin/internal/adapters/out/gcs"
	httpout "flyadmin/internal/adapters/out/http"
	"flyadmin/internal/adapters/out/rtdb"
	"flyadmin/internal/application/usecase"
	mediadom "flyadmin/internal/domain/media"
	"flyadmin/internal/infra/config"
)

// OAuth scopes the Realtime Database REST stream requires.
var streamScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/firebase.database",
}

// Container は main.go から使う依存オブジェクトの束。
// これを返したい目的は：main.go を極限まで薄くすること。
type Container struct {
	// REST + SSE エンドポイント用 http.Handler
	Handler http.Handler

	// console や追加配線から使うユースケース群
	FirebaseAuth *fbauth.Client
	Gate         *usecase.AdminGate
	ProductUC    *usecase.ProductUsecase
	CategoryUC   *usecase.CategoryUsecase
	BrandUC      *usecase.BrandUsecase
	BannerUC     *usecase.BannerUsecase
	OrderUC      *usecase.OrderUsecase
	UserUC       *usecase.UserUsecase
	InventoryUC  *usecase.InventoryUsecase

	gcs       *storage.Client
	sm        *secretmanager.Client
	cleanupFn []func()
}

// Close は Cloud Run 終了時などに呼んで安全にリソースを閉じる。
func (c *Container) Close() {
	if c.gcs != nil {
		_ = c.gcs.Close()
	}
	if c.sm != nil {
		_ = c.sm.Close()
	}
	for _, fn := range c.cleanupFn {
		fn()
	}
}

// Build は DIコンテナを初期化して返す。
// - 環境変数/設定の読み込み済み cfg をもらう
// - Firebase / GCS / Secret Manager クライアントを組み立てる
// - Repository実装とUsecaseとHandlerを全部つなぐ
func Build(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	if cfg == nil {
		return nil, nil, errors.New("di: config is nil")
	}

	c := &Container{}

	// Credentials file (optional; mainly for local dev)
	var clientOpts []option.ClientOption
	if credFile := strings.TrimSpace(cfg.GCPCreds); credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di] using credentials file for GCP clients")
	} else {
		log.Printf("[di] using Application Default Credentials")
	}

	// 1) Firebase App + Auth + RTDB (strict)
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.FirebaseProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, clientOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("di: firebase app init failed: %w", err)
	}

	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("di: firebase auth init failed: %w", err)
	}
	c.FirebaseAuth = authClient

	dbClient, err := fbApp.Database(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("di: rtdb client init failed: %w", err)
	}

	// 2) Authorized HTTP client for the RTDB event stream (strict).
	// The Admin SDK has no listener API, so watches go through SSE REST.
	streamOpts := append([]option.ClientOption{option.WithScopes(streamScopes...)}, clientOpts...)
	streamHTTP, _, err := htransport.NewClient(ctx, streamOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("di: stream http client init failed: %w", err)
	}
	store := rtdb.NewClient(dbClient, streamHTTP, cfg.DatabaseURL)

	// 3) Image storage: Cloudinary when configured, GCS otherwise.
	imageRepo, err := buildImageRepo(ctx, cfg, c, clientOpts)
	if err != nil {
		c.Close()
		return nil, nil, err
	}

	// 4) Repositories
	productRepo := rtdb.NewProductRepositoryRTDB(store)
	variantRepo := rtdb.NewVariantRepositoryRTDB(store)
	categoryRepo := rtdb.NewCategoryRepositoryRTDB(store)
	brandRepo := rtdb.NewBrandRepositoryRTDB(store)
	bannerRepo := rtdb.NewBannerRepositoryRTDB(store)
	orderRepo := rtdb.NewOrderRepositoryRTDB(store)
	cartRepo := rtdb.NewCartRepositoryRTDB(store)
	userRepo := rtdb.NewUserRepositoryRTDB(store)
	inventoryRepo := rtdb.NewInventoryRepositoryRTDB(store)
	adminRepo := rtdb.NewAdminRepositoryRTDB(store)

	// 5) Usecases
	c.Gate = usecase.NewAdminGate(adminRepo)
	c.ProductUC = usecase.NewProductUsecase(productRepo, variantRepo, imageRepo)
	c.CategoryUC = usecase.NewCategoryUsecase(categoryRepo)
	c.BrandUC = usecase.NewBrandUsecase(brandRepo)
	c.BannerUC = usecase.NewBannerUsecase(bannerRepo, imageRepo)
	c.OrderUC = usecase.NewOrderUsecase(orderRepo, cartRepo)
	c.UserUC = usecase.NewUserUsecase(userRepo)
	c.InventoryUC = usecase.NewInventoryUsecase(inventoryRepo, variantRepo)

	// 6) Router behind the admin auth chain
	c.Handler = httpin.NewRouter(httpin.RouterDeps{
		ProductUC:   c.ProductUC,
		CategoryUC:  c.CategoryUC,
		BrandUC:     c.BrandUC,
		BannerUC:    c.BannerUC,
		OrderUC:     c.OrderUC,
		UserUC:      c.UserUC,
		InventoryUC: c.InventoryUC,
		Auth: &middleware.AdminAuthMiddleware{
			Verifier: authClient,
			Gate:     c.Gate,
		},
	})

	cleanup := func() { c.Close() }
	return c, cleanup, nil
}

func buildImageRepo(ctx context.Context, cfg *config.Config, c *Container, clientOpts []option.ClientOption) (mediadom.Repository, error) {
	if cfg.UseCloudinary() {
		sm, err := secretmanager.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di] WARN: secretmanager.NewClient failed: %v (image deletion disabled)", err)
			sm = nil
		}
		c.sm = sm
		provider := cloudinarySecretProviderSM(sm, cfg.CloudinarySecretName)
		log.Printf("[di] image storage: cloudinary cloud=%s", cfg.CloudinaryCloudName)
		return httpout.NewCloudinaryClient(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset, cfg.CloudinaryAPIKey, provider), nil
	}

	if strings.TrimSpace(cfg.GCSBucket) == "" {
		return nil, errors.New("di: no image storage configured (set GCS_BUCKET or the CLOUDINARY_* variables)")
	}
	gcsClient, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("di: storage.NewClient failed: %w", err)
	}
	c.gcs = gcsClient
	log.Printf("[di] image storage: gcs bucket=%s", cfg.GCSBucket)
	return gcsrepo.NewProductImageRepositoryGCS(gcsClient, cfg.GCSBucket), nil
}
