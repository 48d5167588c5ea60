package domain

import (
	"fmt"
	"strings"
	"time"
)

type RecordType string

const (
	RecordVitals      RecordType = "vitals"
	RecordMedication  RecordType = "medication"
	RecordAppointment RecordType = "appointment"
	RecordLabResult   RecordType = "lab_result"
	RecordSymptom     RecordType = "symptom"
	RecordExercise    RecordType = "exercise"
	RecordNutrition   RecordType = "nutrition"
)

func (t RecordType) Valid() bool {
	switch t {
	case RecordVitals, RecordMedication, RecordAppointment, RecordLabResult,
		RecordSymptom, RecordExercise, RecordNutrition:
		return true
	}
	return false
}

type HealthRecord struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Type        RecordType `json:"type"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Value       *float64   `json:"value,omitempty"`
	Unit        *string    `json:"unit,omitempty"`
	Date        string     `json:"date"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Validate is only applied by the records API; the dashboard shell never
// inspects record contents.
func (r *HealthRecord) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRecord, r.Type)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidRecord)
	}
	if r.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidRecord)
	}
	return nil
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type HealthMetric struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	Trend       Trend     `json:"trend"`
	Change      float64   `json:"change"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type InsightType string

const (
	InsightRecommendation InsightType = "recommendation"
	InsightWarning        InsightType = "warning"
	InsightTrend          InsightType = "trend"
	InsightGoal           InsightType = "goal"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type AIInsight struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  float64     `json:"confidence"`
	Priority    Priority    `json:"priority"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

type HealthGoal struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Target    float64    `json:"target"`
	Current   float64    `json:"current"`
	Unit      string     `json:"unit"`
	Deadline  string     `json:"deadline"`
	Status    GoalStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}
