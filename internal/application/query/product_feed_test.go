// internal/application/query/product_feed_test.go
package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	branddom "flyadmin/internal/domain/brand"
	categorydom "flyadmin/internal/domain/category"
	productdom "flyadmin/internal/domain/product"
)

func feedProducts() []productdom.Product {
	return []productdom.Product{
		{ID: "p1", Title: "Air Zoom", BrandID: "b1", CategoryID: "c1", Price: 120, Rating: 4.5, CreatedAt: 100},
		{ID: "p2", Title: "Trail Runner", BrandID: "b2", CategoryID: "c1", Price: 90, Rating: 4.0, CreatedAt: 300},
		{ID: "p3", Title: "air max", BrandID: "b1", CategoryID: "c2", Price: 150, Rating: 3.5, CreatedAt: 200},
		{ID: "p4", Title: "Court Classic", BrandID: "b2", CategoryID: "c2", Price: 90, Rating: 4.0, CreatedAt: 50},
	}
}

func ids(products []productdom.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestProductFeedDefaultSortIsRatingDesc(t *testing.T) {
	f := NewProductFeed()
	f.SetProducts(feedProducts())

	// Ties (p2, p4 at 4.0) keep snapshot order.
	assert.Equal(t, []string{"p1", "p2", "p4", "p3"}, ids(f.Current()))
}

func TestProductFeedFilters(t *testing.T) {
	cases := []struct {
		name   string
		params ProductParams
		want   []string
	}{
		{"brand", ProductParams{BrandID: "b1"}, []string{"p1", "p3"}},
		{"category", ProductParams{CategoryID: "c2"}, []string{"p4", "p3"}},
		{"title is case-insensitive", ProductParams{Query: "AIR"}, []string{"p1", "p3"}},
		{"min rating", ProductParams{MinRating: 4.0}, []string{"p1", "p2", "p4"}},
		{"combined", ProductParams{BrandID: "b2", MinRating: 4.0, Query: "trail"}, []string{"p2"}},
		{"no match", ProductParams{Query: "sandal"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewProductFeed()
			f.SetProducts(feedProducts())
			f.SetParams(tc.params)
			assert.Equal(t, tc.want, ids(f.Current()))
		})
	}
}

func TestProductFeedSorts(t *testing.T) {
	cases := []struct {
		name string
		sort ProductSort
		want []string
	}{
		{"price asc", SortPriceAsc, []string{"p2", "p4", "p1", "p3"}},
		{"price desc", SortPriceDesc, []string{"p3", "p1", "p2", "p4"}},
		{"newest", SortNewest, []string{"p2", "p3", "p1", "p4"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewProductFeed()
			f.SetProducts(feedProducts())
			f.SetParams(ProductParams{Sort: tc.sort})
			assert.Equal(t, tc.want, ids(f.Current()))
		})
	}
}

func TestProductFeedPublishesOnChange(t *testing.T) {
	f := NewProductFeed()
	f.SetProducts(feedProducts())

	sub := f.Subscribe()
	defer sub.Close()

	// Subscription starts with the current composed list.
	first := <-sub.Updates()
	require.Len(t, first, 4)

	f.SetParams(ProductParams{BrandID: "b1"})
	second := <-sub.Updates()
	assert.Equal(t, []string{"p1", "p3"}, ids(second))

	// Latest-wins: two quick changes, the subscriber sees the last one.
	f.SetParams(ProductParams{BrandID: "b2"})
	f.SetParams(ProductParams{Query: "court"})
	third := <-sub.Updates()
	assert.Equal(t, []string{"p4"}, ids(third))
}

func TestProductFeedDropsClosedSubscribers(t *testing.T) {
	f := NewProductFeed()
	sub := f.Subscribe()
	sub.Close()

	// Must not panic or publish to the closed handle.
	f.SetProducts(feedProducts())
	assert.Len(t, f.Current(), 4)
}

func TestProductFeedResolvesNamesAndRepublishes(t *testing.T) {
	f := NewProductFeed()
	f.SetProducts(feedProducts())

	sub := f.Subscribe()
	defer sub.Close()
	<-sub.Updates()

	// Unknown ids resolve to empty names.
	assert.Equal(t, "", f.BrandName("b1"))
	assert.Equal(t, "", f.CategoryName("c1"))

	// A late brand snapshot republishes so consumers re-render names.
	f.SetBrands([]branddom.Brand{{ID: "b1", Name: "Nike"}, {ID: "b2", Name: "Asics"}})
	republished := <-sub.Updates()
	assert.Equal(t, []string{"p1", "p2", "p4", "p3"}, ids(republished))
	assert.Equal(t, "Nike", f.BrandName("b1"))

	f.SetCategories([]categorydom.Category{{ID: "c1", Name: "Shoes"}})
	<-sub.Updates()
	assert.Equal(t, "Shoes", f.CategoryName("c1"))
	assert.Equal(t, "", f.CategoryName("c2"))
}
