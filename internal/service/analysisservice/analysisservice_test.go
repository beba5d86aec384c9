package analysisservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/filters"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/grouping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockUploadRepo, *MockRepo) {
	ctrl := gomock.NewController(t)
	uploadRepo := NewMockUploadRepo(ctrl)
	repo := NewMockRepo(ctrl)

	service := New(uploadRepo, repo)
	service.now = func() time.Time { return now }
	defer ctrl.Finish()
	return service, uploadRepo, repo
}

func TestGetGroupedAnalyses(t *testing.T) {
	batchID := "b1"
	uploads := []domain.Upload{
		{ID: "u1", BatchID: &batchID, FileName: "home.png", Status: domain.UploadCompleted},
		{ID: "u2", BatchID: &batchID, FileName: "pricing.png", Status: domain.UploadCompleted},
		{ID: "u3", FileName: "checkout.png", Status: domain.UploadFailed},
	}
	individual := []domain.IndividualAnalysis{
		{ID: "ia1", UploadID: "u1", AnalysisType: "ux_review", Confidence: 0.8, CreatedAt: now.Add(-time.Hour)},
		{ID: "ia2", UploadID: "u2", AnalysisType: "ux_review", Confidence: 0.6, CreatedAt: now.Add(-time.Hour)},
		{ID: "ia3", UploadID: "u3", AnalysisType: "ux_review", Confidence: 0.3, CreatedAt: now.AddDate(0, 0, -10)},
	}
	batches := []domain.BatchAnalysis{
		{ID: "ba1", BatchID: batchID, AnalysisType: "batch_comparison", Confidence: 0.9, CreatedAt: now.Add(-time.Minute)},
	}

	tests := []struct {
		name     string
		filters  filters.Filters
		expected []string
	}{
		{name: "default", filters: filters.Default(), expected: []string{"ba1", "ia3"}},
		{name: "this week", filters: filters.Filters{DateRange: filters.DateWeek}, expected: []string{"ba1"}},
		{name: "search by file", filters: filters.Filters{SearchTerm: "CHECKOUT"}, expected: []string{"ia3"}},
		{name: "confidence asc", filters: filters.Filters{SortBy: filters.SortByConfidence, SortOrder: filters.Asc}, expected: []string{"ia3", "ba1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, uploadRepo, repo := NewMock(t)
			uploadRepo.EXPECT().FindByUserID(gomock.Any(), 3).Return(uploads, nil)
			repo.EXPECT().FindIndividualByUserID(gomock.Any(), 3).Return(individual, nil)
			repo.EXPECT().FindBatch(gomock.Any(), 3, "").Return(batches, nil)

			groups, err := service.GetGroupedAnalyses(context.Background(), 3, tt.filters)
			require.NoError(t, err)

			ids := make([]string, len(groups))
			for i, g := range groups {
				ids[i] = g.ID
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	t.Run("batch group carries its members", func(t *testing.T) {
		service, uploadRepo, repo := NewMock(t)
		uploadRepo.EXPECT().FindByUserID(gomock.Any(), 3).Return(uploads, nil)
		repo.EXPECT().FindIndividualByUserID(gomock.Any(), 3).Return(individual, nil)
		repo.EXPECT().FindBatch(gomock.Any(), 3, "").Return(batches, nil)

		groups, err := service.GetGroupedAnalyses(context.Background(), 3, filters.Default())
		require.NoError(t, err)
		require.NotEmpty(t, groups)

		_, isBatch := groups[0].Primary.(grouping.Batch)
		assert.True(t, isBatch)
		assert.Len(t, groups[0].Related, 2)
		assert.Equal(t, 2, groups[0].TotalUploads)
	})

	t.Run("fetch error fails the call", func(t *testing.T) {
		service, uploadRepo, repo := NewMock(t)
		uploadRepo.EXPECT().FindByUserID(gomock.Any(), 3).Return(uploads, nil).AnyTimes()
		repo.EXPECT().FindIndividualByUserID(gomock.Any(), 3).Return(nil, errors.New("db down")).AnyTimes()
		repo.EXPECT().FindBatch(gomock.Any(), 3, "").Return(batches, nil).AnyTimes()

		groups, err := service.GetGroupedAnalyses(context.Background(), 3, filters.Default())
		assert.Error(t, err)
		assert.Nil(t, groups)
	})
}

func TestGetBatchAnalyses(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, _, repo := NewMock(t)
		expected := []domain.BatchAnalysis{{ID: "ba1", BatchID: "b1"}}
		repo.EXPECT().FindBatch(ctx, 3, "b1").Return(expected, nil)

		got, err := service.GetBatchAnalyses(ctx, 3, "b1")
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("error", func(t *testing.T) {
		service, _, repo := NewMock(t)
		repo.EXPECT().FindBatch(ctx, 3, "").Return(nil, errors.New("db down"))

		_, err := service.GetBatchAnalyses(ctx, 3, "")
		assert.Error(t, err)
	})
}
