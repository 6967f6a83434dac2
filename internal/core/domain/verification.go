package domain

import "time"

type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusApproved VerificationStatus = "approved"
	StatusRejected VerificationStatus = "rejected"
)

// VerificationRecord is the compliance dossier an orphanage submits for
// approval, one-to-one with its account. The record is created once via
// account setup and afterwards only the status and rejection reason
// change, through the admin decision.
type VerificationRecord struct {
	OrphanageID                   string             `json:"orphanage_id"`
	Governorate                   string             `json:"governorate"`
	Address                       string             `json:"address"`
	RegistrationCertificateNumber string             `json:"registration_certificate_number"`
	OperatingLicenseNumber        string             `json:"operating_license_number"`
	LicenseExpirationDate         string             `json:"license_expiration_date"`
	ManagerNationalID             string             `json:"manager_national_id"`
	TaxID                         string             `json:"tax_id"`
	BankAccountDetails            string             `json:"bank_account_details"`
	Status                        VerificationStatus `json:"status"`
	RejectionReason               *string            `json:"rejection_reason"`
}

// VerificationRequest is an admin's view of a pending dossier, joined
// with the account's name and email.
type VerificationRequest struct {
	VerificationRecord
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ValidateSubmission checks the required compliance fields and the
// license expiration date format. The first missing or malformed field
// is reported.
func (v *VerificationRecord) ValidateSubmission() error {
	required := []struct {
		name  string
		value string
	}{
		{"governorate", v.Governorate},
		{"address", v.Address},
		{"registration_certificate_number", v.RegistrationCertificateNumber},
		{"operating_license_number", v.OperatingLicenseNumber},
		{"license_expiration_date", v.LicenseExpirationDate},
		{"manager_national_id", v.ManagerNationalID},
		{"tax_id", v.TaxID},
		{"bank_account_details", v.BankAccountDetails},
	}
	for _, f := range required {
		if f.value == "" {
			return Validationf("%s is required", f.name)
		}
	}
	if _, err := time.Parse("2006-01-02", v.LicenseExpirationDate); err != nil {
		return Validationf("invalid date format for license_expiration_date, expected YYYY-MM-DD")
	}
	return nil
}

// ValidateDecision checks an admin decision: status must be approved or
// rejected, and a rejection always carries a non-empty reason.
func ValidateDecision(status VerificationStatus, rejectionReason string) error {
	if status != StatusApproved && status != StatusRejected {
		return Validationf("invalid status, must be 'approved' or 'rejected'")
	}
	if status == StatusRejected && rejectionReason == "" {
		return Validationf("rejection reason is required for rejected status")
	}
	return nil
}
