package services

import (
	"testing"

	"github.com/openhire/job-board-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleApplication(candidateID string) models.Application {
	return models.Application{
		CandidateID: candidateID,
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		JobID:       "42",
		CompanyName: "Acme",
	}
}

func TestApplicationStore_DuplicatesCoexist(t *testing.T) {
	store := NewApplicationStore()

	first := sampleApplication("cand-1")
	second := sampleApplication("cand-1")
	second.Name = "Second Submission"

	store.Submit(first)
	store.Submit(second)

	assert.Equal(t, 2, store.Len())

	// Lookup returns the first-submitted match only.
	got, found := store.Get("cand-1")
	require.True(t, found)
	assert.Equal(t, "Ada Lovelace", got.Name)
}

func TestApplicationStore_GetMiss(t *testing.T) {
	store := NewApplicationStore()
	_, found := store.Get("nobody")
	assert.False(t, found)
}

func TestApplicationStore_ListFiltersConjunctively(t *testing.T) {
	store := NewApplicationStore()

	match := sampleApplication("cand-1")
	wrongCompany := sampleApplication("cand-2")
	wrongCompany.CompanyName = "Globex"
	wrongEmail := sampleApplication("cand-3")
	wrongEmail.Email = "other@example.com"

	store.Submit(match)
	store.Submit(wrongCompany)
	store.Submit(wrongEmail)

	got := store.List("Acme", "ada@example.com")
	require.Len(t, got, 1)
	assert.Equal(t, "cand-1", got[0].CandidateID)

	// No filters returns everything in submission order.
	all := store.List("", "")
	require.Len(t, all, 3)
	assert.Equal(t, "cand-1", all[0].CandidateID)
	assert.Equal(t, "cand-3", all[2].CandidateID)
}

func TestApplicationStore_Replace(t *testing.T) {
	store := NewApplicationStore()
	store.Submit(sampleApplication("cand-1"))

	ok := store.Replace("cand-1", models.Application{
		Name:        "Grace Hopper",
		Email:       "grace@example.com",
		JobID:       "7",
		CompanyName: "Initech",
	})
	require.True(t, ok)

	got, found := store.Get("cand-1")
	require.True(t, found)
	assert.Equal(t, "Grace Hopper", got.Name)
	assert.Equal(t, "grace@example.com", got.Email)
	assert.Equal(t, "7", got.JobID)
	assert.Equal(t, "Initech", got.CompanyName)
	// The candidate id itself never changes.
	assert.Equal(t, "cand-1", got.CandidateID)
}

func TestApplicationStore_ReplaceMiss(t *testing.T) {
	store := NewApplicationStore()
	assert.False(t, store.Replace("nobody", sampleApplication("nobody")))
}

func TestApplicationStore_PatchFields(t *testing.T) {
	store := NewApplicationStore()
	store.Submit(sampleApplication("cand-1"))

	email := "new@example.com"
	updated, found := store.Patch("cand-1", &email, nil)
	require.True(t, found)
	assert.Equal(t, []string{"email"}, updated)

	got, _ := store.Get("cand-1")
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "42", got.JobID)
}

func TestApplicationStore_PatchEmptyBody(t *testing.T) {
	store := NewApplicationStore()
	store.Submit(sampleApplication("cand-1"))

	updated, found := store.Patch("cand-1", nil, nil)
	require.True(t, found)
	assert.Empty(t, updated)

	// Record is unchanged.
	got, _ := store.Get("cand-1")
	assert.Equal(t, sampleApplication("cand-1"), got)
}

func TestApplicationStore_PatchMiss(t *testing.T) {
	store := NewApplicationStore()
	email := "new@example.com"
	_, found := store.Patch("nobody", &email, nil)
	assert.False(t, found)
}

func TestApplicationStore_DeleteFirstMatch(t *testing.T) {
	store := NewApplicationStore()
	first := sampleApplication("cand-1")
	second := sampleApplication("cand-1")
	second.Name = "Second Submission"
	store.Submit(first)
	store.Submit(second)

	require.True(t, store.Delete("cand-1"))
	assert.Equal(t, 1, store.Len())

	// The later duplicate is now the visible record.
	got, found := store.Get("cand-1")
	require.True(t, found)
	assert.Equal(t, "Second Submission", got.Name)

	require.True(t, store.Delete("cand-1"))
	_, found = store.Get("cand-1")
	assert.False(t, found)
}

func TestApplicationStore_DeleteMissLeavesStore(t *testing.T) {
	store := NewApplicationStore()
	store.Submit(sampleApplication("cand-1"))

	assert.False(t, store.Delete("nobody"))
	assert.Equal(t, 1, store.Len())
}
