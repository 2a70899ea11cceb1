package handlers

import (
	"net/http"
	"testing"

	"github.com/openhire/job-board-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicationBody(candidateID, name, email, company string) map[string]any {
	return map[string]any{
		"candidate_id": candidateID,
		"name":         name,
		"email":        email,
		"company_name": company,
	}
}

func TestApplication_SubmitAndGet(t *testing.T) {
	r, _ := newTestRouter(t, &fakeModel{})
	w := doRequest(t, r, http.MethodPost, "/applications", applicationBody("cand-1", "Ada", "ada@example.com", "Acme"))
	mustStatus(t, w, http.StatusCreated)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "success", body["status"])
	assert.Contains(t, body["message"], "Ada")

	w = doRequest(t, r, http.MethodGet, "/applications/cand-1", nil)
	mustStatus(t, w, http.StatusOK)

	var app models.Application
	decodeBody(t, w, &app)
	assert.Equal(t, "cand-1", app.CandidateID)
	assert.Equal(t, "ada@example.com", app.Email)
}

func TestApplication_DuplicateCandidateIDs(t *testing.T) {
	r, _ := newTestRouter(t, &fakeModel{})
	w := doRequest(t, r, http.MethodPost, "/applications", applicationBody("cand-1", "First", "first@example.com", "Acme"))
	mustStatus(t, w, http.StatusCreated)
	w = doRequest(t, r, http.MethodPost, "/applications", applicationBody("cand-1", "Second", "second@example.com", "Acme"))
	mustStatus(t, w, http.StatusCreated)

	// The first-submitted record wins on lookup.
	w = doRequest(t, r, http.MethodGet, "/applications/cand-1", nil)
	mustStatus(t, w, http.StatusOK)
	var app models.Application
	decodeBody(t, w, &app)
	assert.Equal(t, "First", app.Name)
}

func TestApplication_GetMissingIs404(t *testing.T) {
	r, _ := newTestRouter(t, &fakeModel{})
	w := doRequest(t, r, http.MethodGet, "/applications/nobody", nil)
	mustStatus(t, w, http.StatusNotFound)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "Application not found for candidate ID: nobody", body["error"])
}

func TestApplication_ListConjunctiveFilters(t *testing.T) {
	r, _ := newTestRouter(t, &fakeModel{})
	w := doRequest(t, r, http.MethodPost, "/applications", applicationBody("cand-1", "Ada", "a@b.com", "Acme"))
	mustStatus(t, w, http.StatusCreated)
	w = doRequest(t, r, http.MethodPost, "/applications", applicationBody("cand-2", "Bob", "a@b.com", "Globex"))
	mustStatus(t, w, http.StatusCreated)
	w = doRequest(t, r, http.MethodPost, "/applications", applicationBody("cand-3", "Cyd", "c@d.com", "Acme"))
	mustStatus(t, w, http.StatusCreated)

	w = doRequest(t, r, http.MethodGet, "/applications/?company_name=Acme&candidate_email=a@b.com", nil)
	mustStatus(t, w, http.StatusOK)

	var resp struct {
		Status       string               `json:"status"`
		Applications []models.Application `json:"applications"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, "cand-1", resp.Applications[0].CandidateID)
}

func TestApplication_Replace(t *testing.T) {
	r, _ := newTestRouter(t, &fakeModel{})
	w := doRequest(t, r, http.MethodPost, "/applications", applicationBody("cand-1", "Ada", "ada@example.com", "Acme"))
	mustStatus(t, w, http.StatusCreated)

	body := applicationBody("cand-1", "Grace", "grace@example.com", "Initech")
	body["job_id"] = "7"
	w = doRequest(t, r, http.MethodPut, "/applications/cand-1", body)
	mustStatus(t, w, http.StatusOK)

	w = doRequest(t, r, http.MethodGet, "/applications/cand-1", nil)
	var app models.Application
	decodeBody(t, w, &app)
	assert.Equal(t, "Grace", app.Name)
	assert.Equal(t, "Initech", app.CompanyName)
	assert.Equal(t, "7", app.JobID)
}

func TestApplication_PatchEmptyBody(t *testing.T) {
	r, _ := newTestRouter(t, &fakeModel{})
	w := doRequest(t, r, http.MethodPost, "/applications", applicationBody("cand-1", "Ada", "ada@example.com", "Acme"))
	mustStatus(t, w, http.StatusCreated)

	w = doRequest(t, r, http.MethodPatch, "/applications/cand-1", map[string]any{})
	mustStatus(t, w, http.StatusOK)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "info", body["status"])
	assert.Equal(t, "No fields were updated.", body["message"])

	// Record unchanged.
	w = doRequest(t, r, http.MethodGet, "/applications/cand-1", nil)
	var app models.Application
	decodeBody(t, w, &app)
	assert.Equal(t, "ada@example.com", app.Email)
}

func TestApplication_PatchReportsUpdatedFields(t *testing.T) {
	r, _ := newTestRouter(t, &fakeModel{})
	w := doRequest(t, r, http.MethodPost, "/applications", applicationBody("cand-1", "Ada", "ada@example.com", "Acme"))
	mustStatus(t, w, http.StatusCreated)

	w = doRequest(t, r, http.MethodPatch, "/applications/cand-1", map[string]any{
		"email":  "new@example.com",
		"job_id": "9",
	})
	mustStatus(t, w, http.StatusOK)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Contains(t, body["message"], "email")
	assert.Contains(t, body["message"], "job_id")

	w = doRequest(t, r, http.MethodGet, "/applications/cand-1", nil)
	var app models.Application
	decodeBody(t, w, &app)
	assert.Equal(t, "new@example.com", app.Email)
	assert.Equal(t, "9", app.JobID)
}

func TestApplication_PatchMissing(t *testing.T) {
	r, _ := newTestRouter(t, &fakeModel{})
	w := doRequest(t, r, http.MethodPatch, "/applications/nobody", map[string]any{"email": "x@y.com"})
	mustStatus(t, w, http.StatusNotFound)
}

func TestApplication_Delete(t *testing.T) {
	r, _ := newTestRouter(t, &fakeModel{})
	w := doRequest(t, r, http.MethodPost, "/applications", applicationBody("cand-1", "Ada", "ada@example.com", "Acme"))
	mustStatus(t, w, http.StatusCreated)

	w = doRequest(t, r, http.MethodDelete, "/applications/cand-1", nil)
	mustStatus(t, w, http.StatusOK)

	w = doRequest(t, r, http.MethodGet, "/applications/cand-1", nil)
	mustStatus(t, w, http.StatusNotFound)
}

func TestApplication_DeleteMissing(t *testing.T) {
	r, _ := newTestRouter(t, &fakeModel{})
	w := doRequest(t, r, http.MethodDelete, "/applications/nobody", nil)
	mustStatus(t, w, http.StatusNotFound)
}
