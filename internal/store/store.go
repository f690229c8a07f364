// Package store is the insert-only persistence layer. Submissions are
// written exactly once and never read back by this system.
package store

import (
	"context"
	"errors"

	"cens-backend/internal/models"

	"gorm.io/gorm"
)

var ErrNoDatabase = errors.New("database is not configured")

type SubmissionStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

func (s *SubmissionStore) CreateCompetition(ctx context.Context, sub *models.CompetitionSubmission) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *SubmissionStore) CreateEssay(ctx context.Context, sub *models.EssaySubmission) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *SubmissionStore) CreateProposal(ctx context.Context, sub *models.ProposalSubmission) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *SubmissionStore) CreateEvent(ctx context.Context, sub *models.EventSubmission) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	return s.db.WithContext(ctx).Create(sub).Error
}
