// Package handler contains HTTP handlers for the submission API.
package handler

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ShadowHD6/Model-Submission-Forum/internal/apperror"
	"github.com/ShadowHD6/Model-Submission-Forum/internal/model"
	"github.com/ShadowHD6/Model-Submission-Forum/internal/pdf"
	"github.com/ShadowHD6/Model-Submission-Forum/internal/store"
	"github.com/ShadowHD6/Model-Submission-Forum/internal/whatsapp"
)

// JSONTagName reports a struct field's json name so validation errors refer
// to the wire field rather than the Go field.
var JSONTagName = func(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Handler wraps HTTP handlers with logger, renderer, link composer and store.
type Handler struct {
	log      *zap.Logger
	renderer *pdf.Renderer
	composer *whatsapp.Composer
	store    store.Store
	validate *validator.Validate
}

// New creates a new Handler instance.
func New(log *zap.Logger, r *pdf.Renderer, c *whatsapp.Composer, s store.Store, v *validator.Validate) *Handler {
	return &Handler{log: log, renderer: r, composer: c, store: s, validate: v}
}

type validationErrorResponse struct {
	Error   string              `json:"error"`
	Details []map[string]string `json:"details"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type submissionData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Gender     string `json:"gender"`
	Morphology string `json:"morphology"`
}

type submitResponse struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message"`
	PDFBase64      string         `json:"pdfBase64"`
	WhatsAppLink   string         `json:"whatsappLink"`
	SubmissionData submissionData `json:"submissionData"`
}

// Healthz is a simple health check endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Submit validates a casting submission, renders its PDF summary, composes
// the operator's WhatsApp deep link and stores the accepted entry.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmissionWithImage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode json", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request payload",
		})
		return
	}

	if err := h.validate.Struct(req.Submission); err != nil {
		h.log.Warn("validation failed", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
			Error:   "Validation failed",
			Details: apperror.CustomValidationError(err),
		})
		return
	}

	doc, err := h.renderer.Render(req.Submission, req.ImageBase64, req.ImageName)
	if err != nil {
		h.log.Error("failed to render pdf", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to process submission",
			Message: err.Error(),
		})
		return
	}

	link := h.composer.Compose(req.Submission)
	stored := h.store.Save(req)

	h.log.Info("submission accepted",
		zap.String("id", stored.ID),
		zap.String("name", req.FullName),
		zap.Int("pdf_bytes", len(doc.Bytes)))

	h.writeJSON(w, http.StatusOK, submitResponse{
		Success:      true,
		Message:      "Form submitted successfully",
		PDFBase64:    doc.DataURI,
		WhatsAppLink: link,
		SubmissionData: submissionData{
			Name:       req.FullName,
			Email:      req.Email,
			Gender:     req.Gender,
			Morphology: req.Morphology,
		},
	})
}

// Submissions returns all stored submissions, newest first.
func (h *Handler) Submissions(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.List())
}

// SubmissionByID looks up a single stored submission.
func (h *Handler) SubmissionByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sub, ok := h.store.GetByID(id)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "submission not found"})
		return
	}
	h.writeJSON(w, http.StatusOK, sub)
}

type optionsResponse struct {
	Sizes         []string            `json:"sizes"`
	Morphologies  map[string][]string `json:"morphologies"`
	ClothingItems map[string][]string `json:"clothingItems"`
}

// Options lists the size, morphology and clothing-item catalogs the form
// offers per gender. The morphology catalogs are suggestions only.
func (h *Handler) Options(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, optionsResponse{
		Sizes: model.SizeOptions,
		Morphologies: map[string][]string{
			"male":   model.MaleMorphologies,
			"female": model.FemaleMorphologies,
		},
		ClothingItems: map[string][]string{
			"male":   model.MaleClothingItems,
			"female": model.FemaleClothingItems,
		},
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("unable to write response stream", zap.Error(err))
	}
}
