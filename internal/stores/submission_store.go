package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"dns-query-collector/internal/models"
	"dns-query-collector/internal/shared/filestorages"
)

var (
	ErrSubmissionAlreadyExists = errors.New("submission already exists")
	ErrSubmissionNotFound      = errors.New("submission not found")
)

// SubmissionStore persists the chunks accepted by the local collector, one file per submission.
//
//go:generate mockgen -source=submission_store.go -destination=./mocks/submission_store_mock.go -package=mocks
type SubmissionStore interface {
	Put(ctx context.Context, submission *models.Submission) error
	Get(ctx context.Context, collectorID, submissionID string) (*models.Submission, error)
}

type submissionStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSubmissionStore(fileStorage filestorages.FileStorage) SubmissionStore {
	return &submissionStore{fileStorage: fileStorage, dir: "submissions"}
}

func (s *submissionStore) Put(ctx context.Context, submission *models.Submission) error {
	jsonData, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	key := s.getKey(submission.CollectorID, submission.SubmissionID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrSubmissionAlreadyExists
		}
		return fmt.Errorf("failed to put submission: %w", err)
	}
	return nil
}

func (s *submissionStore) Get(ctx context.Context, collectorID, submissionID string) (*models.Submission, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(collectorID, submissionID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read submission: %w", err)
	}
	var submission models.Submission
	if err := json.Unmarshal(data, &submission); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}
	return &submission, nil
}

func (s *submissionStore) getKey(collectorID, submissionID string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, collectorID, submissionID)
}
