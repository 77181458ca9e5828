package domain

// Record statuses. A record is never removed from the sheet; deletion flips
// the status column to inactive.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Record is one person row in the records sheet. The id is 1-based,
// assigned in creation order, and never reused.
type Record struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	PopulationID string `json:"populationId"`
	FamilyID     string `json:"familyId"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	PlaceOfBirth string `json:"placeOfBirth"`
	Religion     string `json:"religion"`
	BloodType    string `json:"bloodType"`
	Status       string `json:"status"`
	LastUpdated  string `json:"lastUpdated"`
}

// RecordInput carries the caller-supplied record fields. ID, status, and
// lastUpdated are always assigned by the service.
type RecordInput struct {
	FullName     string `json:"fullName"`
	PopulationID string `json:"populationId"`
	FamilyID     string `json:"familyId"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	PlaceOfBirth string `json:"placeOfBirth"`
	Religion     string `json:"religion"`
	BloodType    string `json:"bloodType"`
}

// Validate checks the required input fields.
func (in *RecordInput) Validate() error {
	if in.FullName == "" {
		return ErrValidation("fullName is required")
	}
	if in.PopulationID == "" {
		return ErrValidation("populationId is required")
	}
	return nil
}
