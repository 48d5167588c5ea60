package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/yusufkecer/health-tracker/internal/domain"
	"github.com/yusufkecer/health-tracker/internal/middleware"
	"go.uber.org/zap"
)

const (
	defaultRecordLimit = 20
	maxRecordLimit     = 100
)

type RecordStore interface {
	Create(ctx context.Context, rec *domain.HealthRecord) (string, error)
	ListRecords(ctx context.Context, userID string, limit int) ([]domain.HealthRecord, error)
}

type RecordHandler struct {
	repo   RecordStore
	logger *zap.Logger
	now    func() time.Time
}

func NewRecordHandler(repo RecordStore, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{repo: repo, logger: logger, now: time.Now}
}

func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var rec domain.HealthRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := h.now().UTC()
	rec.ID = ""
	rec.UserID = user.ID
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if _, err := h.repo.Create(r.Context(), &rec); err != nil {
		h.logger.Error("failed to create health record", zap.String("user_id", user.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create health record")
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.repo.ListRecords(r.Context(), user.ID, limit)
	if err != nil {
		h.logger.Error("failed to list health records", zap.String("user_id", user.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list health records")
		return
	}
	if records == nil {
		records = []domain.HealthRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultRecordLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.New("limit must be a positive integer")
	}
	return min(n, maxRecordLimit), nil
}
