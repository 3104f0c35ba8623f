// Package variant defines the resume variant configuration model, loading,
// and discovery of variant directories.
package variant

// Variant is one complete resume configuration rendered to its own output
// set. It is loaded from a resume.yaml file in a variant directory and is
// never persisted beyond that file.
type Variant struct {
	Name       string       `yaml:"name" json:"name" validate:"required"`
	Contact    Contact      `yaml:"contact" json:"contact" validate:"required"`
	Style      Style        `yaml:"style" json:"style"`
	Mission    string       `yaml:"mission" json:"mission" validate:"required"`
	Experience []Experience `yaml:"experience" json:"experience" validate:"required,min=1,dive"`
	Education  []Education  `yaml:"education" json:"education" validate:"required,min=1,dive"`
	Interests  string       `yaml:"interests" json:"interests"`
}

// Contact holds the contact block rendered into the document header.
type Contact struct {
	Address string `yaml:"address" json:"address" validate:"required"`
	Phone   string `yaml:"phone" json:"phone" validate:"required"`
	Email   string `yaml:"email" json:"email" validate:"required,email"`
	Link    string `yaml:"link" json:"link"`
}

// Style is a named collection of formatting rules composed additively:
// a base style plus an optional override. Resolution is purely additive,
// there is no conflict handling.
type Style struct {
	Base     string `yaml:"base" json:"base"`
	Override string `yaml:"override,omitempty" json:"override,omitempty"`
}

// Experience is one entry in the ordered experience list.
type Experience struct {
	Company    string   `yaml:"company" json:"company" validate:"required"`
	Location   string   `yaml:"location" json:"location"`
	Title      string   `yaml:"title" json:"title" validate:"required"`
	Dates      string   `yaml:"dates" json:"dates" validate:"required"`
	Summary    string   `yaml:"summary" json:"summary"`
	Highlights []string `yaml:"highlights" json:"highlights"`
}

// Education is one entry in the ordered education list.
type Education struct {
	School  string   `yaml:"school" json:"school" validate:"required"`
	Degree  string   `yaml:"degree" json:"degree" validate:"required"`
	Dates   string   `yaml:"dates" json:"dates" validate:"required"`
	Details []string `yaml:"details,omitempty" json:"details,omitempty"`
}

// DefaultStyleBase is applied when a variant omits the style block.
const DefaultStyleBase = "default"
