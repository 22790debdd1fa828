package pdf

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ShadowHD6/Model-Submission-Forum/internal/model"
)

func sampleSubmission() model.Submission {
	return model.Submission{
		FullName:          "Jane Doe",
		Email:             "jane@example.com",
		Phone:             "12345",
		Address:           "1 Main St",
		Height:            170,
		Chest:             90,
		Waist:             70,
		Hips:              95,
		Shoulders:         40,
		Inseam:            75,
		SleeveLength:      60,
		NeckCircumference: 35,
		Gender:            "female",
		Morphology:        "Hourglass",
		ClothingSizes: []model.ClothingSize{
			{Item: "T-Shirt", RealSize: "M", ComfortSize: "L"},
			{Item: "Jeans", RealSize: "S", ComfortSize: "M"},
		},
	}
}

// pngDataURI encodes a small solid PNG as a data URI.
func pngDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestRenderWithoutImage(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := New(zap.New(core))

	res, err := r.Render(sampleSubmission(), "", "")
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(res.Bytes, []byte("%PDF")))
	assert.True(t, strings.HasPrefix(res.DataURI, "data:application/pdf;base64,"))
	assert.Zero(t, logs.FilterMessage("could not add image to PDF").Len())
}

func TestRenderWithImage(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := New(zap.New(core))

	plain, err := r.Render(sampleSubmission(), "", "")
	assert.NoError(t, err)

	res, err := r.Render(sampleSubmission(), pngDataURI(t), "photo.png")
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(res.Bytes, []byte("%PDF")))
	assert.Greater(t, len(res.Bytes), len(plain.Bytes))
	assert.Zero(t, logs.FilterMessage("could not add image to PDF").Len())
}

func TestRenderMalformedImage(t *testing.T) {
	tests := []struct {
		name  string
		image string
	}{
		{name: "not base64", image: "data:image/png;base64,!!!garbage!!!"},
		{name: "base64 but not an image", image: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("hello"))},
		{name: "no data uri prefix", image: "just some text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			r := New(zap.New(core))

			res, err := r.Render(sampleSubmission(), tc.image, "bad.png")
			assert.NoError(t, err)
			assert.True(t, bytes.HasPrefix(res.Bytes, []byte("%PDF")))
			assert.Equal(t, 1, logs.FilterMessage("could not add image to PDF").Len())
		})
	}
}

func TestRenderManyClothingRowsPaginates(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	r := New(zap.New(core))

	sub := sampleSubmission()
	sub.ClothingSizes = nil
	for i := 0; i < 60; i++ {
		sub.ClothingSizes = append(sub.ClothingSizes, model.ClothingSize{
			Item: "Hoodie", RealSize: "L", ComfortSize: "XL",
		})
	}

	short, err := r.Render(sampleSubmission(), "", "")
	assert.NoError(t, err)

	long, err := r.Render(sub, "", "")
	assert.NoError(t, err)
	assert.Greater(t, len(long.Bytes), len(short.Bytes))
}

func TestRenderLongNotes(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	r := New(zap.New(core))

	sub := sampleSubmission()
	sub.Notes = strings.Repeat("Available weekdays after six, previous runway experience in Tunis and Milan. ", 20)

	res, err := r.Render(sub, "", "")
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(res.Bytes, []byte("%PDF")))
}
