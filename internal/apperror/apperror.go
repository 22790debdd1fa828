// Package apperror provides utilities to handle and map custom validation errors.
package apperror

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var customMessages = map[string]string{
	"Submission.FullName.required": "is required",
	"Submission.FullName.min":      "must be at least 2 characters long",
	"Submission.Email.required":    "is required",
	"Submission.Email.email":       "must be a valid email address",
	"Submission.Phone.required":    "is required",
	"Submission.Phone.min":         "must be at least 5 characters long",
	"Submission.Address.required":  "is required",
	"Submission.Address.min":       "must be at least 5 characters long",

	"Submission.Height.required":            "is required",
	"Submission.Height.gte":                 "must be at least 100 cm",
	"Submission.Height.lte":                 "must be less than 250 cm",
	"Submission.Chest.required":             "is required",
	"Submission.Chest.gte":                  "must be at least 50 cm",
	"Submission.Chest.lte":                  "must be less than 200 cm",
	"Submission.Waist.required":             "is required",
	"Submission.Waist.gte":                  "must be at least 40 cm",
	"Submission.Waist.lte":                  "must be less than 200 cm",
	"Submission.Hips.required":              "is required",
	"Submission.Hips.gte":                   "must be at least 50 cm",
	"Submission.Hips.lte":                   "must be less than 200 cm",
	"Submission.Shoulders.required":         "is required",
	"Submission.Shoulders.gte":              "must be at least 30 cm",
	"Submission.Shoulders.lte":              "must be less than 100 cm",
	"Submission.Inseam.required":            "is required",
	"Submission.Inseam.gte":                 "must be at least 50 cm",
	"Submission.Inseam.lte":                 "must be less than 120 cm",
	"Submission.SleeveLength.required":      "is required",
	"Submission.SleeveLength.gte":           "must be at least 40 cm",
	"Submission.SleeveLength.lte":           "must be less than 100 cm",
	"Submission.NeckCircumference.required": "is required",
	"Submission.NeckCircumference.gte":      "must be at least 25 cm",
	"Submission.NeckCircumference.lte":      "must be less than 60 cm",

	"Submission.Gender.required":     "is required",
	"Submission.Gender.oneof":        "must be either male or female",
	"Submission.Morphology.required": "is required",

	"Submission.ClothingSizes.RealSize.required":    "is required",
	"Submission.ClothingSizes.RealSize.oneof":       "must be one of XS, S, M, L, XL, XXL, XXXL",
	"Submission.ClothingSizes.ComfortSize.required": "is required",
	"Submission.ClothingSizes.ComfortSize.oneof":    "must be one of XS, S, M, L, XL, XXL, XXXL",
}

// sliceIndex matches the [N] suffix validator appends for dive'd slice
// elements, so every clothing-size entry maps to the same message key.
var sliceIndex = regexp.MustCompile(`\[\d+\]`)

// CustomValidationError converts validator errors into a standardized
// per-field format. Every violated constraint yields its own entry.
func CustomValidationError(err error) []map[string]string {
	errList := make([]map[string]string, 0)

	var validationErr validator.ValidationErrors

	switch {
	case errors.As(err, &validationErr):
		for _, e := range validationErr {
			field := sliceIndex.ReplaceAllString(e.StructNamespace(), "")
			key := field + "." + e.Tag()

			errMsg := fmt.Sprintf("%s is invalid", field)
			if v, ok := customMessages[key]; ok {
				errMsg = v
			}

			errList = append(errList, map[string]string{e.Field(): errMsg})
		}
	}
	return errList
}
