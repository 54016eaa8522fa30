package domain

// Detail is the type-specific detail surface behind a dashboard entry.
// Exactly one concrete detail exists per service slug; unknown slugs
// fall back to GenericDetail.
type Detail interface {
	// Route is the navigation route of the detail surface.
	Route() string
}

// WhatsAppDetail is the detail surface for the WhatsApp service.
type WhatsAppDetail struct{}

func (WhatsAppDetail) Route() string { return "/services/whatsapp" }

// WebsiteDetail is the detail surface for the website service.
type WebsiteDetail struct{}

func (WebsiteDetail) Route() string { return "/services/website" }

// MobileAppDetail is the detail surface for the mobile app service.
type MobileAppDetail struct{}

func (MobileAppDetail) Route() string { return "/services/mobile-app" }

// GenericDetail is the read-only fallback surface for any other service.
type GenericDetail struct {
	Slug string
}

func (d GenericDetail) Route() string { return "/services/" + d.Slug }

// DetailFor returns the detail surface for a service slug.
func DetailFor(slug string) Detail {
	switch slug {
	case "whatsapp":
		return WhatsAppDetail{}
	case "website":
		return WebsiteDetail{}
	case "mobile-app":
		return MobileAppDetail{}
	default:
		return GenericDetail{Slug: slug}
	}
}
