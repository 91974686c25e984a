// internal/adapters/out/http/cloudinary_client_test.go
package httpout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{
			name: "versioned",
			url:  "https://res.cloudinary.com/demo/image/upload/v1700000000/products/ab12cd.jpg",
			want: "products/ab12cd",
			ok:   true,
		},
		{
			name: "unversioned",
			url:  "https://res.cloudinary.com/demo/image/upload/products/ab12cd.png",
			want: "products/ab12cd",
			ok:   true,
		},
		{
			name: "no folder",
			url:  "https://res.cloudinary.com/demo/image/upload/ab12cd.jpg",
			want: "ab12cd",
			ok:   true,
		},
		{
			name: "foreign host",
			url:  "https://storage.googleapis.com/bucket/products/x.jpg",
			ok:   false,
		},
		{
			name: "no upload segment",
			url:  "https://res.cloudinary.com/demo/image/ab12cd.jpg",
			ok:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := publicIDFromURL(tc.url)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
