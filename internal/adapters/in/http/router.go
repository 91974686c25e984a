// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"flyadmin/internal/adapters/in/http/handlers"
	"flyadmin/internal/adapters/in/http/middleware"
	usecase "flyadmin/internal/application/usecase"
)

// RouterDeps collects all usecases (and the auth middleware) injected from
// the DI container.
type RouterDeps struct {
	ProductUC   *usecase.ProductUsecase
	CategoryUC  *usecase.CategoryUsecase
	BrandUC     *usecase.BrandUsecase
	BannerUC    *usecase.BannerUsecase
	OrderUC     *usecase.OrderUsecase
	UserUC      *usecase.UserUsecase
	InventoryUC *usecase.InventoryUsecase

	Auth *middleware.AdminAuthMiddleware
}

// NewRouter sets up HTTP routing for all admin endpoints. Everything except
// the health check goes through the admin auth chain.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on, no auth)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	admin := http.NewServeMux()

	// 以降、Usecase が存在するものだけマウントする
	if deps.ProductUC != nil {
		admin.Handle("/products/", handlers.NewProductHandler(deps.ProductUC))
		admin.Handle("/products", handlers.NewProductHandler(deps.ProductUC))
	}

	if deps.CategoryUC != nil {
		admin.Handle("/categories/", handlers.NewCategoryHandler(deps.CategoryUC))
		admin.Handle("/categories", handlers.NewCategoryHandler(deps.CategoryUC))
	}

	if deps.BrandUC != nil {
		admin.Handle("/brands/", handlers.NewBrandHandler(deps.BrandUC))
		admin.Handle("/brands", handlers.NewBrandHandler(deps.BrandUC))
	}

	if deps.BannerUC != nil {
		admin.Handle("/banners/", handlers.NewBannerHandler(deps.BannerUC))
		admin.Handle("/banners", handlers.NewBannerHandler(deps.BannerUC))
	}

	if deps.OrderUC != nil {
		admin.Handle("/orders/", handlers.NewOrderHandler(deps.OrderUC))
		admin.Handle("/orders", handlers.NewOrderHandler(deps.OrderUC))
	}

	if deps.UserUC != nil && deps.OrderUC != nil {
		admin.Handle("/users/", handlers.NewUserHandler(deps.UserUC, deps.OrderUC))
		admin.Handle("/users", handlers.NewUserHandler(deps.UserUC, deps.OrderUC))
	}

	if deps.InventoryUC != nil {
		admin.Handle("/inventory/", handlers.NewInventoryHandler(deps.InventoryUC))
	}

	if deps.ProductUC != nil && deps.BrandUC != nil && deps.CategoryUC != nil && deps.UserUC != nil && deps.OrderUC != nil {
		stream := handlers.NewStreamHandler(deps.ProductUC, deps.BrandUC, deps.CategoryUC, deps.UserUC, deps.OrderUC)
		// Exact patterns win over the prefix mounts above.
		admin.Handle("/products/stream", stream)
		admin.Handle("/users/stream", stream)
		admin.Handle("/orders/stream", stream)
	}

	var protected http.Handler = admin
	if deps.Auth != nil {
		protected = deps.Auth.Handler(admin)
	}
	mux.Handle("/", protected)

	return middleware.CORS(middleware.Recover(mux))
}
