// Package pdf renders submission summary documents.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/ShadowHD6/Model-Submission-Forum/internal/model"
)

// Layout constants, in millimeters on an A4 portrait page.
const (
	marginLeft = 20.0
	topMargin  = 20.0
	lineHeight = 7.0
	sectionGap = 10.0

	// Absolute page-break thresholds. Table rows break past rowBreakY,
	// the notes section starts a fresh page past notesBreakY.
	rowBreakY   = 270.0
	notesBreakY = 250.0

	imageSize  = 50.0
	notesWidth = 170.0
)

// Result carries the rendered document in both transport forms: raw bytes
// for persistence and a data URI for immediate client display.
type Result struct {
	Bytes   []byte
	DataURI string
}

// Renderer draws submission summaries as A4 PDFs.
type Renderer struct {
	log *zap.Logger
}

// New creates a Renderer.
func New(log *zap.Logger) *Renderer {
	return &Renderer{log: log}
}

// Render produces the PDF summary of a validated submission. A missing or
// malformed image is logged and skipped; the document is still produced.
func (r *Renderer) Render(sub model.Submission, imageBase64, imageName string) (Result, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	pageW, _ := doc.GetPageSize()
	y := topMargin

	doc.SetFont("Helvetica", "", 20)
	doc.SetTextColor(192, 192, 192)
	title := "Model Submission Form"
	doc.Text((pageW-doc.GetStringWidth(title))/2, y, title)
	y += 15

	if imageBase64 != "" && r.embedImage(doc, imageBase64, imageName, pageW/2-imageSize/2, y) {
		y += imageSize + 10
	}

	r.sectionHeader(doc, "Personal Information", &y)
	for _, line := range []string{
		fmt.Sprintf("Full Name: %s", sub.FullName),
		fmt.Sprintf("Email: %s", sub.Email),
		fmt.Sprintf("Phone: %s", sub.Phone),
		fmt.Sprintf("Address: %s", sub.Address),
	} {
		doc.Text(marginLeft, y, line)
		y += lineHeight
	}
	y += sectionGap - lineHeight

	r.sectionHeader(doc, "Body Measurements (cm)", &y)
	measurements := []string{
		fmt.Sprintf("Height: %v cm", sub.Height),
		fmt.Sprintf("Chest/Bust: %v cm", sub.Chest),
		fmt.Sprintf("Waist: %v cm", sub.Waist),
		fmt.Sprintf("Hips: %v cm", sub.Hips),
		fmt.Sprintf("Shoulders: %v cm", sub.Shoulders),
		fmt.Sprintf("Inseam: %v cm", sub.Inseam),
		fmt.Sprintf("Sleeve Length: %v cm", sub.SleeveLength),
		fmt.Sprintf("Neck: %v cm", sub.NeckCircumference),
	}
	// Two columns, pairs share a line.
	for i := 0; i < len(measurements); i += 2 {
		doc.Text(marginLeft, y, measurements[i])
		if i+1 < len(measurements) {
			doc.Text(110, y, measurements[i+1])
		}
		y += lineHeight
	}
	y += sectionGap - lineHeight

	r.sectionHeader(doc, "Body Profile", &y)
	doc.Text(marginLeft, y, fmt.Sprintf("Gender: %s", capitalize(sub.Gender)))
	y += lineHeight
	doc.Text(marginLeft, y, fmt.Sprintf("Body Morphology: %s", sub.Morphology))
	y += sectionGap

	r.sectionHeader(doc, "Clothing Sizes", &y)
	doc.Text(marginLeft, y, "Item")
	doc.Text(90, y, "Real Size")
	doc.Text(140, y, "Comfort Size")
	y += lineHeight
	doc.SetDrawColor(64, 64, 64)
	doc.Line(marginLeft, y-2, 180, y-2)

	for _, s := range sub.ClothingSizes {
		if y > rowBreakY {
			doc.AddPage()
			y = topMargin
		}
		doc.Text(marginLeft, y, s.Item)
		doc.Text(90, y, s.RealSize)
		doc.Text(140, y, s.ComfortSize)
		y += lineHeight
	}
	y += sectionGap - lineHeight

	if strings.TrimSpace(sub.Notes) != "" {
		if y > notesBreakY {
			doc.AddPage()
			y = topMargin
		}
		r.sectionHeader(doc, "Additional Notes", &y)
		for _, line := range doc.SplitText(sub.Notes, notesWidth) {
			doc.Text(marginLeft, y, line)
			y += lineHeight
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return Result{}, fmt.Errorf("pdf output: %w", err)
	}

	return Result{
		Bytes:   buf.Bytes(),
		DataURI: "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// sectionHeader draws a 14pt section title and leaves the document font set
// for the 10pt body lines that follow.
func (r *Renderer) sectionHeader(doc *gofpdf.Fpdf, title string, y *float64) {
	doc.SetFont("Helvetica", "", 14)
	doc.SetTextColor(192, 192, 192)
	doc.Text(marginLeft, *y, title)
	*y += lineHeight + 2
	doc.SetFontSize(10)
	doc.SetTextColor(128, 128, 128)
}

// embedImage decodes a data-URI photo and places it as a fixed square.
// The payload is fully decoded before it is handed to gofpdf so a bad image
// never taints the document. Reports whether the image was placed.
func (r *Renderer) embedImage(doc *gofpdf.Fpdf, data, name string, x, y float64) bool {
	payload := data
	if i := strings.Index(payload, ","); i >= 0 {
		payload = payload[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		r.log.Warn("could not add image to PDF", zap.String("image", name), zap.Error(err))
		return false
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		r.log.Warn("could not add image to PDF", zap.String("image", name), zap.Error(err))
		return false
	}
	var imgType string
	switch format {
	case "png":
		imgType = "PNG"
	case "jpeg":
		imgType = "JPEG"
	default:
		r.log.Warn("unsupported image format", zap.String("image", name), zap.String("format", format))
		return false
	}

	opts := gofpdf.ImageOptions{ImageType: imgType}
	doc.RegisterImageOptionsReader("submission-photo", opts, bytes.NewReader(raw))
	doc.ImageOptions("submission-photo", x, y, imageSize, imageSize, false, opts, 0, "")
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
