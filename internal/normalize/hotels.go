// Package normalize reshapes upstream responses into the public
// structured-content schema: catalog joins, image filtering, price and
// night arithmetic, phone decomposition.
package normalize

import (
	"strings"

	"github.com/hotelzify/concierge/internal/hotelzify"
	"github.com/hotelzify/concierge/internal/schema"
)

// placeholderImageSuffix marks auto-generated placeholder images in the
// chain catalog; they are never shown to users.
const placeholderImageSuffix = "chatbot-converted-images"

// MergeHotels joins search hits with the chain catalog by hotel ID.
// The output preserves the search order (the search API already ranks by
// relevance) and has exactly one entry per hit. Hits without a catalog
// entry get an empty image list; their rating falls back from the hit to
// the catalog entry to zero.
func MergeHotels(hits []hotelzify.SearchHotel, catalog *hotelzify.ChainCatalog) []schema.HotelSummary {
	merged := make([]schema.HotelSummary, 0, len(hits))
	for _, hit := range hits {
		summary := schema.HotelSummary{
			ID:     hit.HotelID,
			Name:   hit.HotelName,
			Rating: hit.Rating,
			Location: schema.Location{
				Address: hit.Location.Address,
				City:    hit.Location.City,
				State:   hit.Location.State,
			},
			AmenitiesText: hit.AmenitiesText,
			SearchScore:   hit.SearchScore,
			Images:        []string{},
		}

		if entry, ok := catalog.ByID(hit.HotelID); ok {
			if summary.Rating == 0 {
				summary.Rating = entry.Rating
			}
			summary.Images = FilterImages(entry.Images)
		}

		merged = append(merged, summary)
	}
	return merged
}

// FilterImages extracts usable image URLs from catalog image records,
// dropping empty URLs and placeholder images. The result is never nil.
func FilterImages(images []hotelzify.ChainHotelImage) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		if img.CDNImageURL == "" || strings.HasSuffix(img.CDNImageURL, placeholderImageSuffix) {
			continue
		}
		urls = append(urls, img.CDNImageURL)
	}
	return urls
}
