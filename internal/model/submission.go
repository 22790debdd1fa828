package model

import "time"

// SizeOptions is the ordered set of accepted clothing sizes.
var SizeOptions = []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"}

// Morphology catalogs offered by the form. They are suggestions for the
// client; the server only requires a non-empty morphology.
var (
	MaleMorphologies   = []string{"Slim", "Fit", "Athletic", "Muscular", "Broad", "Triangle", "Rectangle"}
	FemaleMorphologies = []string{"Slim", "Fit", "Pear", "Hourglass", "Rectangle", "Inverted Triangle", "Curvy"}
)

// Clothing item catalogs offered by the form, per gender.
var (
	MaleClothingItems   = []string{"T-Shirt", "Hoodie", "Oversized Hoodie", "Jacket", "Sleeveless Jacket", "Pants", "Jeans"}
	FemaleClothingItems = append(append([]string{}, MaleClothingItems...), "Skirt")
)

// ClothingSize pairs an item with the submitter's true size and preferred fit.
type ClothingSize struct {
	Item        string `json:"item"`
	RealSize    string `json:"realSize" validate:"required,oneof=XS S M L XL XXL XXXL"`
	ComfortSize string `json:"comfortSize" validate:"required,oneof=XS S M L XL XXL XXXL"`
}

// Submission represents the structure of incoming casting forms.
// All measurements are in centimeters.
type Submission struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=5"`
	Address  string `json:"address" validate:"required,min=5"`

	Height            float64 `json:"height" validate:"required,gte=100,lte=250"`
	Chest             float64 `json:"chest" validate:"required,gte=50,lte=200"`
	Waist             float64 `json:"waist" validate:"required,gte=40,lte=200"`
	Hips              float64 `json:"hips" validate:"required,gte=50,lte=200"`
	Shoulders         float64 `json:"shoulders" validate:"required,gte=30,lte=100"`
	Inseam            float64 `json:"inseam" validate:"required,gte=50,lte=120"`
	SleeveLength      float64 `json:"sleeveLength" validate:"required,gte=40,lte=100"`
	NeckCircumference float64 `json:"neckCircumference" validate:"required,gte=25,lte=60"`

	Gender     string `json:"gender" validate:"required,oneof=male female"`
	Morphology string `json:"morphology" validate:"required"`

	ClothingSizes []ClothingSize `json:"clothingSizes" validate:"dive"`
	Notes         string         `json:"notes"`
}

// SubmissionWithImage carries an optional photo alongside the form fields.
// The image is opaque to validation; a malformed payload degrades the PDF
// instead of rejecting the submission.
type SubmissionWithImage struct {
	Submission
	ImageBase64 string `json:"imageBase64,omitempty"`
	ImageName   string `json:"imageName,omitempty"`
}

// StoredSubmission is an accepted submission with its server-assigned
// identity. Never mutated after creation.
type StoredSubmission struct {
	SubmissionWithImage
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
}
