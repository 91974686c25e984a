// internal/application/query/product_feed.go
package query

import (
	"sort"
	"strings"
	"sync"

	branddom "flyadmin/internal/domain/brand"
	categorydom "flyadmin/internal/domain/category"
	common "flyadmin/internal/domain/common"
	productdom "flyadmin/internal/domain/product"
)

// ProductSort selects the ordering of the composed product list.
type ProductSort string

const (
	SortRatingDesc ProductSort = "rating-desc"
	SortPriceAsc   ProductSort = "price-asc"
	SortPriceDesc  ProductSort = "price-desc"
	SortNewest     ProductSort = "newest"
)

// ParseProductSort maps a wire value to a sort key; anything unrecognized
// falls back to the default rating ordering.
func ParseProductSort(s string) ProductSort {
	switch ProductSort(strings.TrimSpace(strings.ToLower(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortNewest:
		return SortNewest
	}
	return SortRatingDesc
}

// ProductParams are the five query knobs. The zero value means "no
// filtering, default order".
type ProductParams struct {
	Query      string
	BrandID    string
	CategoryID string
	MinRating  float64
	Sort       ProductSort
}

// ProductFeed composes the latest product snapshot with the current params
// into one observable list. Snapshot or param changes recompute
// synchronously and publish the result to every subscriber. Brand and
// category snapshots are held for lookup (names for the composed rows), not
// for filtering; they still republish so consumers re-render the names.
type ProductFeed struct {
	mu         sync.Mutex
	products   []productdom.Product
	brands     map[string]branddom.Brand
	categories map[string]categorydom.Category
	params     ProductParams
	current    []productdom.Product
	subs       []*common.Subscription[[]productdom.Product]
}

func NewProductFeed() *ProductFeed {
	return &ProductFeed{
		brands:     map[string]branddom.Brand{},
		categories: map[string]categorydom.Category{},
	}
}

// Subscribe registers a consumer. The current composed list is delivered
// immediately; the consumer must Close the subscription when done.
func (f *ProductFeed) Subscribe() *common.Subscription[[]productdom.Product] {
	sub := common.NewSubscription[[]productdom.Product]()
	f.mu.Lock()
	f.subs = append(f.subs, sub)
	snapshot := f.current
	f.mu.Unlock()
	sub.Publish(snapshot)
	return sub
}

func (f *ProductFeed) SetProducts(products []productdom.Product) {
	f.mu.Lock()
	f.products = products
	f.recomputeLocked()
	f.mu.Unlock()
}

func (f *ProductFeed) SetBrands(brands []branddom.Brand) {
	f.mu.Lock()
	f.brands = map[string]branddom.Brand{}
	for _, b := range brands {
		f.brands[b.ID] = b
	}
	f.recomputeLocked()
	f.mu.Unlock()
}

func (f *ProductFeed) SetCategories(categories []categorydom.Category) {
	f.mu.Lock()
	f.categories = map[string]categorydom.Category{}
	for _, c := range categories {
		f.categories[c.ID] = c
	}
	f.recomputeLocked()
	f.mu.Unlock()
}

func (f *ProductFeed) SetParams(p ProductParams) {
	f.mu.Lock()
	f.params = p
	f.recomputeLocked()
	f.mu.Unlock()
}

func (f *ProductFeed) Params() ProductParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.params
}

// Current returns the latest composed list.
func (f *ProductFeed) Current() []productdom.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *ProductFeed) BrandName(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.brands[id].Name
}

func (f *ProductFeed) CategoryName(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categories[id].Name
}

// Close terminates every subscriber.
func (f *ProductFeed) Close() {
	f.mu.Lock()
	subs := f.subs
	f.subs = nil
	f.mu.Unlock()
	for _, s := range subs {
		s.Close()
	}
}

func (f *ProductFeed) recomputeLocked() {
	f.current = Compose(f.products, f.params)

	alive := f.subs[:0]
	for _, s := range f.subs {
		select {
		case <-s.Done():
			continue
		default:
		}
		s.Publish(f.current)
		alive = append(alive, s)
	}
	f.subs = alive
}

// Compose applies the filters in order (brand, category, title substring,
// rating floor), then sorts. The sort is stable: ties keep the snapshot
// order.
func Compose(products []productdom.Product, p ProductParams) []productdom.Product {
	needle := strings.ToLower(strings.TrimSpace(p.Query))

	out := make([]productdom.Product, 0, len(products))
	for _, prod := range products {
		if p.BrandID != "" && prod.BrandID != p.BrandID {
			continue
		}
		if p.CategoryID != "" && prod.CategoryID != p.CategoryID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(prod.Title), needle) {
			continue
		}
		if prod.Rating < p.MinRating {
			continue
		}
		out = append(out, prod)
	}

	var less func(a, b productdom.Product) bool
	switch p.Sort {
	case SortPriceAsc:
		less = func(a, b productdom.Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b productdom.Product) bool { return a.Price > b.Price }
	case SortNewest:
		less = func(a, b productdom.Product) bool { return a.CreatedAt > b.CreatedAt }
	default: // rating desc
		less = func(a, b productdom.Product) bool { return a.Rating > b.Rating }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
