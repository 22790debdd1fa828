// Package whatsapp builds pre-filled wa.me deep links for submissions.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ShadowHD6/Model-Submission-Forum/internal/model"
)

// Composer builds deep links to a fixed destination number.
type Composer struct {
	phone string
}

// New creates a Composer for the given destination phone number
// (international format, digits only).
func New(phone string) *Composer {
	return &Composer{phone: phone}
}

// Compose returns a wa.me link whose pre-filled text body summarizes the
// submission: contact details, primary measurements and clothing sizes.
func (c *Composer) Compose(sub model.Submission) string {
	var b strings.Builder
	b.WriteString("New Model Submission!\n\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.FullName)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	fmt.Fprintf(&b, "Gender: %s\n", sub.Gender)
	fmt.Fprintf(&b, "Morphology: %s\n\n", sub.Morphology)
	fmt.Fprintf(&b, "Height: %vcm\n", sub.Height)
	fmt.Fprintf(&b, "Chest: %vcm\n", sub.Chest)
	fmt.Fprintf(&b, "Waist: %vcm\n", sub.Waist)
	fmt.Fprintf(&b, "Hips: %vcm\n\n", sub.Hips)
	b.WriteString("Clothing Sizes:\n")
	b.WriteString(clothingSizesText(sub.ClothingSizes))

	return fmt.Sprintf("https://wa.me/%s?text=%s", c.phone, encodeText(b.String()))
}

func clothingSizesText(sizes []model.ClothingSize) string {
	if len(sizes) == 0 {
		return "No clothing sizes provided"
	}
	lines := make([]string, len(sizes))
	for i, s := range sizes {
		lines[i] = fmt.Sprintf("%s: Real %s / Comfort %s", s.Item, s.RealSize, s.ComfortSize)
	}
	return strings.Join(lines, "\n")
}

// encodeText percent-encodes the message body. url.QueryEscape encodes
// spaces as '+', which WhatsApp renders literally, so those are rewritten
// to %20.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
