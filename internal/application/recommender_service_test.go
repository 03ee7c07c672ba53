package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/internal/domain/service"
	"github.com/saffco/skincare-backend/internal/mocks"
)

func TestRecommenderService_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		blob     []byte
		err      error
		wantKind apperr.Kind
		wantErr  bool
	}{
		{name: "valid json", blob: []byte(`{"skin_type":["oily"]}`)},
		{name: "missing blob", err: service.ErrBlobNotFound, wantErr: true, wantKind: apperr.KindNotFound},
		{name: "invalid json", blob: []byte(`{not json`), wantErr: true, wantKind: apperr.KindIO},
		{name: "source failure", err: errors.New("redis timeout"), wantErr: true, wantKind: apperr.KindIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &mocks.BlobSource{}
			src.On("Load", ctx).Return(tt.blob, tt.err)
			svc := NewRecommenderService(src)

			out, err := svc.Load(ctx)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, string(tt.blob), string(out))
			src.AssertExpectations(t)
		})
	}
}

func TestRecommenderService_RecommendIgnoresInput(t *testing.T) {
	ctx := context.Background()
	src := &mocks.BlobSource{}
	src.On("Load", ctx).Return([]byte(`[1,2,3]`), nil).Twice()
	svc := NewRecommenderService(src)

	a, err := svc.Recommend(ctx, map[string]any{"skin_type": "dry"})
	require.NoError(t, err)
	b, err := svc.Recommend(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	src.AssertExpectations(t)
}

func TestRecommenderService_MissingBlobMessage(t *testing.T) {
	src := &mocks.BlobSource{}
	src.On("Load", context.Background()).Return(nil, service.ErrBlobNotFound)

	_, err := NewRecommenderService(src).Load(context.Background())

	assert.Equal(t, "File not found", apperr.PublicMessage(err))
}
