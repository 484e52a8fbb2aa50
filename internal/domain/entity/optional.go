package entity

import "strings"

// NotProvidedDisplay is what the presentation layer shows for an optional
// field the patient left blank.
const NotProvidedDisplay = "unspecified"

// OptionalText is an optional free-text field with an explicit presence
// marker, so "patient has no allergies" and "field left blank" stay
// distinguishable in the stored record.
type OptionalText struct {
	Value    string `bson:"value" json:"value"`
	Provided bool   `bson:"provided" json:"provided"`
}

// TextOf normalizes a raw form value: blank input becomes a not-provided
// marker, anything else is kept verbatim (trimmed).
func TextOf(s string) OptionalText {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return OptionalText{}
	}
	return OptionalText{Value: trimmed, Provided: true}
}

// Display returns the value for rendering, substituting the not-provided
// marker when the field was left blank.
func (o OptionalText) Display() string {
	if !o.Provided {
		return NotProvidedDisplay
	}
	return o.Value
}
