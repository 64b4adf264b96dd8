package service

import (
	"context"
	"sync"
	"testing"

	"github.com/careercracker/webclient/internal/dto"
	"github.com/careercracker/webclient/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileBackend struct {
	mu          sync.Mutex
	profile     model.UserProfile
	fetchCalls  int
	updateCalls int
	lastFields  map[string]any
}

func (f *fakeProfileBackend) FetchProfile(ctx context.Context, cred string) (*model.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	profile := f.profile
	return &profile, nil
}

func (f *fakeProfileBackend) UpdateProfile(ctx context.Context, cred string, fields map[string]any) (*model.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	f.lastFields = fields
	if name, ok := fields["full_name"].(string); ok {
		f.profile.FullName = name
	}
	if title, ok := fields["target_job_title"].(string); ok {
		f.profile.TargetJobTitle = &title
	}
	profile := f.profile
	return &profile, nil
}

func TestProfileCachedAfterFirstFetch(t *testing.T) {
	fake := &fakeProfileBackend{profile: model.UserProfile{Username: "alice", FullName: "Alice"}}
	svc := NewProfileService(fake)

	first, err := svc.Profile(context.Background(), "cred")
	require.NoError(t, err)
	assert.Equal(t, "alice", first.Username)

	_, err = svc.Profile(context.Background(), "cred")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.fetchCalls)

	svc.Invalidate("cred")
	_, err = svc.Profile(context.Background(), "cred")
	require.NoError(t, err)
	assert.Equal(t, 2, fake.fetchCalls)
}

func TestUpdateProfileSendsOnlyChangedFields(t *testing.T) {
	fake := &fakeProfileBackend{profile: model.UserProfile{Username: "alice"}}
	svc := NewProfileService(fake)

	name := "Alice B"
	updated, err := svc.UpdateProfile(context.Background(), "cred", dto.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.FullName)
	assert.Equal(t, map[string]any{"full_name": "Alice B"}, fake.lastFields)

	// The cache was replaced; no extra fetch happens.
	cached, err := svc.Profile(context.Background(), "cred")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", cached.FullName)
	assert.Equal(t, 0, fake.fetchCalls)
}

func TestUpdateJobTitleTouchesSingleField(t *testing.T) {
	fake := &fakeProfileBackend{profile: model.UserProfile{Username: "alice"}}
	svc := NewProfileService(fake)

	updated, err := svc.UpdateJobTitle(context.Background(), "cred", "Data Engineer")
	require.NoError(t, err)
	require.NotNil(t, updated.TargetJobTitle)
	assert.Equal(t, "Data Engineer", *updated.TargetJobTitle)
	assert.Equal(t, map[string]any{"target_job_title": "Data Engineer"}, fake.lastFields)
}
