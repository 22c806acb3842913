package images

// fallbackPhotos maps exact destination names to curated photo URLs used when
// the live search is unavailable or empty.
var fallbackPhotos = map[string]string{
	"Dubai":      "https://images.unsplash.com/photo-1512453979798-5ea266f8880c",
	"Bali":       "https://images.unsplash.com/photo-1537996194471-e657df975ab4",
	"Maldives":   "https://images.unsplash.com/photo-1514282401047-d79a71a590e8",
	"Singapore":  "https://images.unsplash.com/photo-1525625293386-3f8f99389edd",
	"Phuket":     "https://images.unsplash.com/photo-1589394815804-964ed0be2eb5",
	"Bangkok":    "https://images.unsplash.com/photo-1508009603885-50cf7c579365",
	"Goa":        "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2",
	"Manali":     "https://images.unsplash.com/photo-1626621341517-bbf3d9990a23",
	"Srinagar":   "https://images.unsplash.com/photo-1566837497312-7be4a47b4bf0",
	"Munnar":     "https://images.unsplash.com/photo-1637066742971-726bee8d9f56",
	"Jaipur":     "https://images.unsplash.com/photo-1477587458883-47145ed94245",
	"Port Blair": "https://images.unsplash.com/photo-1544550581-5f7ceaf7f992",
	"Darjeeling": "https://images.unsplash.com/photo-1544649919-47d6f7b62eaa",
}

// defaultFallbackURL is used when the destination has no curated entry.
const defaultFallbackURL = "https://images.unsplash.com/photo-1512453979798-5ea266f8880c"

// fallbackPhoto builds a Photo from the static table.
func fallbackPhoto(destination string) *Photo {
	u, ok := fallbackPhotos[destination]
	if !ok {
		u = defaultFallbackURL
	}
	return &Photo{
		URL:        u + "?w=1080",
		Thumb:      u + "?w=400",
		Credit:     "Unsplash",
		CreditLink: "https://unsplash.com",
	}
}
