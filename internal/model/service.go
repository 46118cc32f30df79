package model

// Service represents a consultation offering shown on the public site.
// Catalog rows are seeded once with stable ids and never mutated; the
// booking form references the Type value when filtering.
//
// Fields:
//  ID          – primary key identifier, stable across seed runs.
//  Title       – display name of the offering.
//  Description – marketing copy for the card on the services page.
//  Price       – display string ("Starting at Rs.18999"), deliberately
//                not numeric so currency formatting stays with content.
//  Type        – one of "residential", "commercial", "personal".
//  Features    – ordered bullet points shown under the price.
//  ImageURL    – hero image for the card.
type Service struct {
	ID          uint64   `json:"id"`          // services.id
	Title       string   `json:"title"`       // services.title
	Description string   `json:"description"` // services.description
	Price       string   `json:"price"`       // services.price
	Type        string   `json:"type"`        // services.type
	Features    []string `json:"features"`    // services.features (JSON column)
	ImageURL    string   `json:"imageUrl"`    // services.image_url
}
