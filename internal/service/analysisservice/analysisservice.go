package analysisservice

import (
	"context"
	"time"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/filters"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/grouping"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=analysisservice.go -destination=mock_analysisservice.go -package=analysisservice

type UploadRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Upload, error)
}

type Repo interface {
	FindIndividualByUserID(ctx context.Context, userID int) ([]domain.IndividualAnalysis, error)
	FindBatch(ctx context.Context, userID int, batchID string) ([]domain.BatchAnalysis, error)
}

type Service struct {
	uploadRepo UploadRepo
	repo       Repo
	now        func() time.Time
}

func New(uploadRepo UploadRepo, repo Repo) *Service {
	return &Service{
		uploadRepo: uploadRepo,
		repo:       repo,
		now:        time.Now,
	}
}

// GetGroupedAnalyses loads the user's uploads and analyses concurrently,
// groups them and applies f. Any fetch error fails the whole call.
func (s *Service) GetGroupedAnalyses(ctx context.Context, userID int, f filters.Filters) ([]grouping.AnalysisGroup, error) {
	var (
		uploads    []domain.Upload
		individual []domain.IndividualAnalysis
		batches    []domain.BatchAnalysis
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		uploads, err = s.uploadRepo.FindByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		individual, err = s.repo.FindIndividualByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		batches, err = s.repo.FindBatch(gctx, userID, "")
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load analyses", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	groups := grouping.Group(uploads, individual, batches)
	return filters.Apply[grouping.AnalysisGroup](f, s.now())(groups), nil
}

// GetBatchAnalyses returns the user's batch analyses, or only those of
// batchID when it is not empty.
func (s *Service) GetBatchAnalyses(ctx context.Context, userID int, batchID string) ([]domain.BatchAnalysis, error) {
	batches, err := s.repo.FindBatch(ctx, userID, batchID)
	if err != nil {
		zap.L().Error("failed to get batch analyses", zap.Error(err))
		return nil, err
	}
	return batches, nil
}
