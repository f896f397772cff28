package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dns-query-collector/internal/models"
	"dns-query-collector/internal/shared/filestorages"
)

var (
	ErrParseFailuresAlreadyStored = errors.New("parse failures already stored for run")
)

// ParseFailureStore keeps the lines rejected by a run next to the run ID, so they can be fixed
// and replayed. A run writes its report once; a second Put for the same run ID fails.
//
//go:generate mockgen -source=parse_failure_store.go -destination=./mocks/parse_failure_store_mock.go -package=mocks
type ParseFailureStore interface {
	// Put stores failures under runID and returns the path of the written report.
	Put(ctx context.Context, runID string, failures []*models.ParseFailure) (string, error)
}

type parseFailureStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewParseFailureStore(fileStorage filestorages.FileStorage) ParseFailureStore {
	return &parseFailureStore{fileStorage: fileStorage, dir: "parse-failures"}
}

func (s *parseFailureStore) Put(ctx context.Context, runID string, failures []*models.ParseFailure) (string, error) {
	report := &models.ParseFailureReport{RunID: runID, Failures: failures}
	jsonData, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal parse failures: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json", s.dir, runID)
	result, err := s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrParseFailuresAlreadyStored
		}
		return "", fmt.Errorf("failed to put parse failures: %w", err)
	}
	return result.Path, nil
}
