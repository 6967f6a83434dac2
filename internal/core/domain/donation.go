package domain

// DonationInfo describes how to donate to an orphanage: a method name
// and free-form method-specific details. At most one per account.
type DonationInfo struct {
	OrphanageID     string `json:"orphanage_id,omitempty"`
	DonationMethod  string `json:"donation_method"`
	DonationDetails string `json:"donation_details"`
}
