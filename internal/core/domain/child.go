package domain

import "time"

// Child belongs to exactly one orphanage account. It only appears in the
// public listing once the owning orphanage's verification is approved.
type Child struct {
	ID          string    `json:"id"`
	OrphanageID string    `json:"orphanage_id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	ImageURL    string    `json:"image_url,omitempty"`
	About       string    `json:"about,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChildDetail is a child with its resolved hobby names and, on the
// public surface, the owning orphanage's display name.
type ChildDetail struct {
	Child
	OrphanageName string   `json:"orphanage_name,omitempty"`
	Hobbies       []string `json:"hobbies"`
}

// PublicChild is a listing entry for the public homepage.
type PublicChild struct {
	Child
	OrphanageName string `json:"orphanage_name"`
}

// Hobby is a read-only lookup entity.
type Hobby struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
