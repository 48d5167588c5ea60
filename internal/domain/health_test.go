package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordType_Valid(t *testing.T) {
	for _, rt := range []RecordType{
		RecordVitals, RecordMedication, RecordAppointment, RecordLabResult,
		RecordSymptom, RecordExercise, RecordNutrition,
	} {
		assert.True(t, rt.Valid(), rt)
	}
	assert.False(t, RecordType("sleep").Valid())
	assert.False(t, RecordType("").Valid())
}

func TestHealthRecord_Validate(t *testing.T) {
	ok := HealthRecord{Type: RecordVitals, Title: "Morning BP", Date: "2024-01-01"}
	assert.NoError(t, ok.Validate())

	tests := []struct {
		name string
		rec  HealthRecord
	}{
		{"bad type", HealthRecord{Type: "sleep", Title: "x", Date: "2024-01-01"}},
		{"blank title", HealthRecord{Type: RecordSymptom, Title: "  ", Date: "2024-01-01"}},
		{"no date", HealthRecord{Type: RecordSymptom, Title: "Cough"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			assert.True(t, errors.Is(err, ErrInvalidRecord), "got %v", err)
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.com"))
	assert.False(t, ValidEmail("@b.com"))
	assert.False(t, ValidEmail("ab.com"))
	assert.False(t, ValidEmail("a@bcom"))
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.com "))
}
