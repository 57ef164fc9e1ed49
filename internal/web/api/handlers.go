package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/drover-cli/drover/internal/output"
	"github.com/drover-cli/drover/internal/web/jobs"
	"github.com/drover-cli/drover/pkg/types"
	"github.com/go-chi/chi/v5"
)

// Handlers holds dependencies for the REST API handlers.
type Handlers struct {
	Manager *jobs.Manager
	Roster  []types.Account
}

// NewHandlers creates API handlers over the job manager and the account
// roster loaded at startup.
func NewHandlers(manager *jobs.Manager, roster []types.Account) *Handlers {
	return &Handlers{Manager: manager, Roster: roster}
}

// CreateBatch handles POST /api/v1/batches.
func (h *Handlers) CreateBatch(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateBatchRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	selected, err := h.resolveAccounts(req.Accounts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	job := h.Manager.Create(selected, req.Region)
	if err := h.Manager.Start(job.ID); err != nil {
		if strings.Contains(err.Error(), "one batch at a time") {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to start batch: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     job.ID,
		"status": jobs.StatusRunning,
	})
}

// resolveAccounts maps requested account names onto the roster, preserving
// roster order. Empty or ["all"] selects every account.
func (h *Handlers) resolveAccounts(names []string) ([]types.Account, error) {
	if len(names) == 0 || (len(names) == 1 && names[0] == "all") {
		return h.Roster, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var selected []types.Account
	for _, acct := range h.Roster {
		if wanted[acct.Name] {
			selected = append(selected, acct)
			delete(wanted, acct.Name)
		}
	}
	for name := range wanted {
		return nil, fmt.Errorf("unknown account %q", name)
	}
	return selected, nil
}

// ListBatches handles GET /api/v1/batches.
func (h *Handlers) ListBatches(w http.ResponseWriter, r *http.Request) {
	jobList := h.Manager.List()

	type batchSummary struct {
		ID           string         `json:"id"`
		Accounts     []string       `json:"accounts"`
		Region       string         `json:"region"`
		Status       jobs.JobStatus `json:"status"`
		CreatedAt    time.Time      `json:"created_at"`
		FailureCount int            `json:"failure_count"`
	}

	summaries := make([]batchSummary, len(jobList))
	for i, j := range jobList {
		summaries[i] = batchSummary{
			ID:           j.ID,
			Accounts:     j.Accounts,
			Region:       j.Region,
			Status:       j.Status,
			CreatedAt:    j.CreatedAt,
			FailureCount: j.FailureCount(),
		}
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetBatch handles GET /api/v1/batches/{id}.
func (h *Handlers) GetBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := h.Manager.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// GetBatchReport handles GET /api/v1/batches/{id}/report.
func (h *Handlers) GetBatchReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := h.Manager.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	if job.Status != jobs.StatusCompleted {
		writeError(w, http.StatusConflict, "batch is not yet completed")
		return
	}

	formatter := &output.HTMLFormatter{}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, job.Results); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render report: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// DeleteBatch handles DELETE /api/v1/batches/{id}.
func (h *Handlers) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Manager.Delete(id); err != nil {
		if strings.Contains(err.Error(), "cannot be deleted") {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
