package services

import (
	"sync"

	"github.com/openhire/job-board-api/internal/models"
)

// ApplicationStore keeps applications for the lifetime of the process;
// nothing here is persisted. All access goes through the mutex since the
// store is shared across request goroutines. Records are indexed by
// candidate id for O(1) single-record operations; duplicates are allowed
// and coexist, with the first-submitted record winning for lookups.
type ApplicationStore struct {
	mu          sync.RWMutex
	order       []*models.Application
	byCandidate map[string][]*models.Application
}

func NewApplicationStore() *ApplicationStore {
	return &ApplicationStore{
		byCandidate: make(map[string][]*models.Application),
	}
}

// Submit appends unconditionally; no duplicate-candidate check.
func (st *ApplicationStore) Submit(app models.Application) {
	st.mu.Lock()
	defer st.mu.Unlock()

	record := &app
	st.order = append(st.order, record)
	st.byCandidate[app.CandidateID] = append(st.byCandidate[app.CandidateID], record)
}

// List applies the two filters conjunctively when non-empty and returns
// copies in submission order. The scan is linear over the whole store,
// which is fine for an unbounded-but-small process-lifetime list.
func (st *ApplicationStore) List(companyName, candidateEmail string) []models.Application {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]models.Application, 0, len(st.order))
	for _, app := range st.order {
		if companyName != "" && app.CompanyName != companyName {
			continue
		}
		if candidateEmail != "" && app.Email != candidateEmail {
			continue
		}
		out = append(out, *app)
	}
	return out
}

// Get returns the first-submitted application for the candidate id.
func (st *ApplicationStore) Get(candidateID string) (models.Application, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	records := st.byCandidate[candidateID]
	if len(records) == 0 {
		return models.Application{}, false
	}
	return *records[0], true
}

// Replace overwrites name, email, job id and company name on the
// first-submitted match; the candidate id itself never changes.
func (st *ApplicationStore) Replace(candidateID string, app models.Application) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	records := st.byCandidate[candidateID]
	if len(records) == 0 {
		return false
	}
	record := records[0]
	record.Name = app.Name
	record.Email = app.Email
	record.JobID = app.JobID
	record.CompanyName = app.CompanyName
	return true
}

// Patch applies only the fields present and reports which ones changed.
// found is false on a miss; an empty patch on a hit returns no fields.
func (st *ApplicationStore) Patch(candidateID string, email, jobID *string) (updated []string, found bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	records := st.byCandidate[candidateID]
	if len(records) == 0 {
		return nil, false
	}
	record := records[0]
	if email != nil {
		record.Email = *email
		updated = append(updated, "email")
	}
	if jobID != nil {
		record.JobID = *jobID
		updated = append(updated, "job_id")
	}
	return updated, true
}

// Delete removes the first-submitted match.
func (st *ApplicationStore) Delete(candidateID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	records := st.byCandidate[candidateID]
	if len(records) == 0 {
		return false
	}
	record := records[0]

	if len(records) == 1 {
		delete(st.byCandidate, candidateID)
	} else {
		st.byCandidate[candidateID] = records[1:]
	}
	for i, app := range st.order {
		if app == record {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	return true
}

// Len reports the number of stored applications.
func (st *ApplicationStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.order)
}
