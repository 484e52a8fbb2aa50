package entity

// Physician is an entry in the clinic's care-provider roster.
type Physician struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Physicians is the clinic roster offered to patients during intake.
// Intake submissions must name one of these as the primary physician.
var Physicians = []Physician{
	{Name: "John Green", Specialty: "General Medicine"},
	{Name: "Leila Cameron", Specialty: "Pediatrics"},
	{Name: "David Livingston", Specialty: "Cardiology"},
	{Name: "Evan Peter", Specialty: "Orthopedics"},
	{Name: "Jane Powell", Specialty: "Dermatology"},
	{Name: "Alex Ramirez", Specialty: "Neurology"},
	{Name: "Jasmine Lee", Specialty: "Gynecology"},
	{Name: "Alyana Cruz", Specialty: "Ophthalmology"},
	{Name: "Hardik Sharma", Specialty: "Psychiatry"},
}

// KnownPhysician reports whether name matches a roster entry.
func KnownPhysician(name string) bool {
	for _, p := range Physicians {
		if p.Name == name {
			return true
		}
	}
	return false
}
