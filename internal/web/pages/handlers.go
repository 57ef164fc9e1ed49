package pages

import (
	"net/http"

	"github.com/drover-cli/drover/internal/web/jobs"
	"github.com/drover-cli/drover/internal/web/templates"
	"github.com/drover-cli/drover/pkg/types"
	"github.com/go-chi/chi/v5"
)

// AccountInfo holds display information about a roster account.
type AccountInfo struct {
	Name        string
	AccessKeyID string
}

// IndexData is the template data for the index (batch form) page.
type IndexData struct {
	Accounts []AccountInfo
}

// BatchListData is the template data for the batch history page.
type BatchListData struct {
	Jobs       []*jobs.Job
	HasRunning bool
}

// BatchDetailData is the template data for the batch detail page.
type BatchDetailData struct {
	Job *jobs.Job
}

// NotFoundData is the template data for the 404 page.
type NotFoundData struct {
	Message string
}

// PageHandlers serves the HTML pages of the web application.
type PageHandlers struct {
	manager *jobs.Manager
	roster  []types.Account
}

// NewPageHandlers creates a new PageHandlers.
func NewPageHandlers(manager *jobs.Manager, roster []types.Account) *PageHandlers {
	return &PageHandlers{
		manager: manager,
		roster:  roster,
	}
}

// Index renders the landing page with the batch form.
func (h *PageHandlers) Index(w http.ResponseWriter, r *http.Request) {
	info := make([]AccountInfo, len(h.roster))
	for i, acct := range h.roster {
		info[i] = AccountInfo{Name: acct.Name, AccessKeyID: maskKey(acct.AccessKeyID)}
	}

	data := IndexData{Accounts: info}
	if err := templates.RenderPage(w, "index.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// BatchList renders the batch history page.
func (h *PageHandlers) BatchList(w http.ResponseWriter, r *http.Request) {
	jobList := h.manager.List()
	hasRunning := false
	for _, j := range jobList {
		if j.Status == jobs.StatusRunning || j.Status == jobs.StatusPending {
			hasRunning = true
			break
		}
	}
	data := BatchListData{Jobs: jobList, HasRunning: hasRunning}
	if err := templates.RenderPage(w, "batches.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// BatchDetail renders the detail page for a single batch.
func (h *PageHandlers) BatchDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := h.manager.Get(id)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		templates.RenderPage(w, "not_found.html", NotFoundData{
			Message: "Batch not found.",
		})
		return
	}

	data := BatchDetailData{Job: job}
	if err := templates.RenderPage(w, "batch_detail.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// maskKey hides the middle of an access key ID for display.
func maskKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:4] + "…" + key[len(key)-4:]
}
