package catalog

import (
	"net/url"
	"strings"

	"github.com/catalog/backend/internal/domain/shared"
)

// Image is a product picture referenced by an absolute URL
type Image struct {
	url string
}

// NewImage validates rawURL and wraps it
func NewImage(rawURL string) (Image, error) {
	if strings.TrimSpace(rawURL) == "" {
		return Image{}, shared.NewInvalidArgumentError("URL is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Image{}, shared.NewInvalidArgumentError("Invalid URL: " + rawURL)
	}
	return Image{url: u.String()}, nil
}

func (i Image) URL() string {
	return i.url
}

func (i Image) String() string {
	return i.url
}

// IsZero reports whether no image was supplied
func (i Image) IsZero() bool {
	return i.url == ""
}

// Equals compares by URL
func (i Image) Equals(other Image) bool {
	return i.url == other.url
}
