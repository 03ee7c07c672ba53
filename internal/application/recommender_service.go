package application

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/internal/domain/service"
)

var ErrModelDataNotFound = apperr.NotFound("File not found")

// RecommenderService serves the precomputed recommendation data. There is no
// model logic here: Recommend answers with the stored blob for every input.
type RecommenderService struct {
	Source service.BlobSource
}

func NewRecommenderService(source service.BlobSource) *RecommenderService {
	return &RecommenderService{Source: source}
}

func (s *RecommenderService) Load(ctx context.Context) (json.RawMessage, error) {
	b, err := s.Source.Load(ctx)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return nil, ErrModelDataNotFound
		}
		return nil, apperr.IO("Error loading data", err)
	}
	if !json.Valid(b) {
		return nil, apperr.IO("Error loading data", errors.New("model data is not valid JSON"))
	}
	return json.RawMessage(b), nil
}

func (s *RecommenderService) Recommend(ctx context.Context, _ map[string]any) (json.RawMessage, error) {
	return s.Load(ctx)
}
