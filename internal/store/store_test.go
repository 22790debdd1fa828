package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ShadowHD6/Model-Submission-Forum/internal/model"
)

func submission(name string) model.SubmissionWithImage {
	return model.SubmissionWithImage{
		Submission: model.Submission{
			FullName: name,
			Email:    "model@example.com",
			Gender:   "female",
		},
	}
}

func TestSaveAssignsIdentity(t *testing.T) {
	m := NewMemory()

	stored := m.Save(submission("Jane Doe"))

	assert.NotEmpty(t, stored.ID)
	_, err := uuid.Parse(stored.ID)
	assert.NoError(t, err)
	assert.False(t, stored.SubmittedAt.IsZero())
	assert.Equal(t, "Jane Doe", stored.FullName)

	other := m.Save(submission("Jane Doe"))
	assert.NotEqual(t, stored.ID, other.ID)
}

func TestListNewestFirst(t *testing.T) {
	m := NewMemory()

	m.Save(submission("First"))
	m.Save(submission("Second"))
	m.Save(submission("Third"))

	listed := m.List()
	assert.Len(t, listed, 3)
	assert.Equal(t, "Third", listed[0].FullName)
	assert.Equal(t, "Second", listed[1].FullName)
	assert.Equal(t, "First", listed[2].FullName)
}

func TestListEmpty(t *testing.T) {
	assert.Empty(t, NewMemory().List())
}

func TestGetByID(t *testing.T) {
	m := NewMemory()
	stored := m.Save(submission("Jane Doe"))

	got, ok := m.GetByID(stored.ID)
	assert.True(t, ok)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.FullName)

	_, ok = m.GetByID("does-not-exist")
	assert.False(t, ok)
}
