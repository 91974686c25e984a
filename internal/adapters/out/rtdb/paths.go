// internal/adapters/out/rtdb/paths.go
package rtdb

// Central registry of Realtime Database paths. The current schema and the
// legacy nodes coexist in one database: legacy nodes keep their original
// capitalized names and must not be renamed, existing clients still read
// them.
const (
	pathProducts                 = "products"
	pathProductVariants          = "productVariants"
	pathProductVariantsByProduct = "productVariantsByProduct"
	pathCategories               = "categories"
	pathCategoryProducts         = "categoryProducts"
	pathBrands                   = "brands"
	pathUsers                    = "users"
	pathCarts                    = "carts"
	pathOrders                   = "orders"
	pathOrderItems               = "orderItems"
	pathUserOrders               = "userOrders"
	pathInventoryLogs            = "inventoryLogs"
	pathBanners                  = "banners"

	// Legacy nodes. Only Admins is read today; Items, Category and Banner
	// are reserved locations still written by old clients.
	pathAdmins         = "Admins"
	pathItemsLegacy    = "Items"
	pathCategoryLegacy = "Category"
	pathBannerLegacy   = "Banner"
)

func productPath(productID string) string {
	return pathProducts + "/" + productID
}

func productVariantPath(variantID string) string {
	return pathProductVariants + "/" + variantID
}

// productVariantsByProductPath is the secondary index bucket mapping a
// product to the set of its variant ids.
func productVariantsByProductPath(productID string) string {
	return pathProductVariantsByProduct + "/" + productID
}

func categoryPath(categoryID string) string {
	return pathCategories + "/" + categoryID
}

// categoryProductsPath is the secondary index bucket mapping a category to
// the set of product ids referencing it.
func categoryProductsPath(categoryID string) string {
	return pathCategoryProducts + "/" + categoryID
}

func brandPath(brandID string) string {
	return pathBrands + "/" + brandID
}

func userPath(userID string) string {
	return pathUsers + "/" + userID
}

func cartPath(userID string) string {
	return pathCarts + "/" + userID
}

func orderPath(orderID string) string {
	return pathOrders + "/" + orderID
}

func orderItemsPath(orderID string) string {
	return pathOrderItems + "/" + orderID
}

func userOrdersPath(userID string) string {
	return pathUserOrders + "/" + userID
}

func bannerPath(bannerID string) string {
	return pathBanners + "/" + bannerID
}

func adminPath(uid string) string {
	return pathAdmins + "/" + uid
}
