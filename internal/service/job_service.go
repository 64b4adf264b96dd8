package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/careercracker/webclient/internal/dto"
	"github.com/careercracker/webclient/internal/model"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

var ErrEmptyJobTitle = errors.New("job title cannot be empty")

// JobBackend is the slice of the backend client the job service uses.
type JobBackend interface {
	CareerInfo(ctx context.Context, cred, jobTitle string) (*model.CareerInfo, error)
}

// JobService looks up career information for a job title.
type JobService interface {
	CareerInfo(ctx context.Context, cred, jobTitle string) (*dto.CareerInfoDTO, error)
}

type jobService struct {
	backend JobBackend
}

func NewJobService(client JobBackend) JobService {
	return &jobService{backend: client}
}

func (s *jobService) CareerInfo(ctx context.Context, cred, jobTitle string) (*dto.CareerInfoDTO, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return nil, ErrEmptyJobTitle
	}

	info, err := s.backend.CareerInfo(ctx, cred, jobTitle)
	if err != nil {
		log.Error().Err(err).Str("jobTitle", jobTitle).Msg("Failed to fetch career info")
		return nil, fmt.Errorf("failed to fetch career info: %w", err)
	}

	var out dto.CareerInfoDTO
	if err := copier.Copy(&out, info); err != nil {
		return nil, fmt.Errorf("failed to map career info: %w", err)
	}
	return &out, nil
}
