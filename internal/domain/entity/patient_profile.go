package entity

import "time"

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Genders lists the accepted gender values in form order.
var Genders = []string{GenderMale, GenderFemale, GenderOther}

// IdentificationTypes lists the accepted identification document types.
var IdentificationTypes = []string{
	"Birth Certificate",
	"Driver's License",
	"Medical Insurance Card/Policy",
	"Military ID Card",
	"National Identity Card",
	"Passport",
	"Resident Alien Card (Green Card)",
	"Social Security Card",
	"State ID Card",
	"Student ID Card",
	"Voter ID Card",
}

// KnownIdentificationType reports whether name matches an accepted
// identification document type.
func KnownIdentificationType(name string) bool {
	for _, t := range IdentificationTypes {
		if t == name {
			return true
		}
	}
	return false
}

// FileReference points at an uploaded identification document in blob
// storage.
type FileReference struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
}

// PatientProfile is the full clinical intake record. Each profile references
// exactly one PatientIdentity via UserID and is created once at
// registration; there is no update path.
type PatientProfile struct {
	ID     string `bson:"_id" json:"id"`
	UserID string `bson:"userId" json:"user_id"`

	// Personal information
	Name                   string    `bson:"name" json:"name"`
	Email                  string    `bson:"email" json:"email"`
	Phone                  string    `bson:"phone" json:"phone"`
	BirthDate              time.Time `bson:"birthDate" json:"birth_date"`
	Gender                 string    `bson:"gender" json:"gender"`
	Address                string    `bson:"address" json:"address"`
	Occupation             string    `bson:"occupation" json:"occupation"`
	EmergencyContactName   string    `bson:"emergencyContactName" json:"emergency_contact_name"`
	EmergencyContactNumber string    `bson:"emergencyContactNumber" json:"emergency_contact_number"`

	// Medical information
	PrimaryPhysician      string       `bson:"primaryPhysician" json:"primary_physician"`
	InsuranceProvider     string       `bson:"insuranceProvider" json:"insurance_provider"`
	InsurancePolicyNumber string       `bson:"insurancePolicyNumber" json:"insurance_policy_number"`
	Allergies             OptionalText `bson:"allergies" json:"allergies"`
	CurrentMedication     OptionalText `bson:"currentMedication" json:"current_medication"`
	FamilyMedicalHistory  OptionalText `bson:"familyMedicalHistory" json:"family_medical_history"`
	PastMedicalHistory    OptionalText `bson:"pastMedicalHistory" json:"past_medical_history"`

	// Identification
	IdentificationType     OptionalText   `bson:"identificationType" json:"identification_type"`
	IdentificationNumber   OptionalText   `bson:"identificationNumber" json:"identification_number"`
	IdentificationDocument *FileReference `bson:"identificationDocument,omitempty" json:"identification_document,omitempty"`

	// Consent flags; registration requires all three to be true
	TreatmentConsent  bool `bson:"treatmentConsent" json:"treatment_consent"`
	DisclosureConsent bool `bson:"disclosureConsent" json:"disclosure_consent"`
	PrivacyConsent    bool `bson:"privacyConsent" json:"privacy_consent"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
