package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/careercracker/webclient/internal/dto"
	"github.com/careercracker/webclient/internal/model"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// ProfileBackend is the slice of the backend client the profile service uses.
type ProfileBackend interface {
	FetchProfile(ctx context.Context, cred string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, cred string, fields map[string]any) (*model.UserProfile, error)
}

// ProfileService caches the user profile per credential for the lifetime of
// the process. Updates go through the backend and replace the cache wholesale.
type ProfileService interface {
	Profile(ctx context.Context, cred string) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, cred string, req dto.UpdateProfileRequest) (*dto.ProfileDTO, error)
	UpdateJobTitle(ctx context.Context, cred, title string) (*dto.ProfileDTO, error)
	// Invalidate drops the cached profile, e.g. on sign-out.
	Invalidate(cred string)
}

type profileService struct {
	backend ProfileBackend

	mu    sync.RWMutex
	cache map[string]*model.UserProfile
}

func NewProfileService(client ProfileBackend) ProfileService {
	return &profileService{
		backend: client,
		cache:   make(map[string]*model.UserProfile),
	}
}

func (s *profileService) Profile(ctx context.Context, cred string) (*dto.ProfileDTO, error) {
	s.mu.RLock()
	cached, ok := s.cache[cred]
	s.mu.RUnlock()
	if ok {
		return toProfileDTO(cached)
	}

	profile, err := s.backend.FetchProfile(ctx, cred)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch profile")
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	s.mu.Lock()
	s.cache[cred] = profile
	s.mu.Unlock()
	return toProfileDTO(profile)
}

func (s *profileService) UpdateProfile(ctx context.Context, cred string, req dto.UpdateProfileRequest) (*dto.ProfileDTO, error) {
	fields := make(map[string]any)
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Major != nil {
		fields["major"] = *req.Major
	}
	if req.EducationLevel != nil {
		fields["education_level"] = *req.EducationLevel
	}
	if req.ExperienceLevel != nil {
		fields["experience_level"] = *req.ExperienceLevel
	}
	if req.PreferredInterviewType != nil {
		fields["preferred_interview_type"] = req.PreferredInterviewType
	}
	if req.PreferredLanguage != nil {
		fields["preferred_language"] = *req.PreferredLanguage
	}
	if req.ResumeURL != nil {
		fields["resume_url"] = *req.ResumeURL
	}
	if req.TargetJobTitle != nil {
		fields["target_job_title"] = *req.TargetJobTitle
	}
	return s.update(ctx, cred, fields)
}

func (s *profileService) UpdateJobTitle(ctx context.Context, cred, title string) (*dto.ProfileDTO, error) {
	return s.update(ctx, cred, map[string]any{"target_job_title": title})
}

func (s *profileService) update(ctx context.Context, cred string, fields map[string]any) (*dto.ProfileDTO, error) {
	profile, err := s.backend.UpdateProfile(ctx, cred, fields)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.mu.Lock()
	s.cache[cred] = profile
	s.mu.Unlock()
	return toProfileDTO(profile)
}

func (s *profileService) Invalidate(cred string) {
	s.mu.Lock()
	delete(s.cache, cred)
	s.mu.Unlock()
}

func toProfileDTO(profile *model.UserProfile) (*dto.ProfileDTO, error) {
	var out dto.ProfileDTO
	if err := copier.Copy(&out, profile); err != nil {
		return nil, fmt.Errorf("failed to map profile: %w", err)
	}
	return &out, nil
}
