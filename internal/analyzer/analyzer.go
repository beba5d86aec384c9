// Package analyzer is the background worker that turns pending design
// uploads into analyses.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/config"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/ledger"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/llm"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/metrics"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=analyzer.go -destination=mock_analyzer.go -package=analyzer

const (
	kindIndividual = "individual"
	kindBatch      = "batch"

	minBatchSize = 2

	defaultLease = time.Minute * 10
)

var processingUploads sync.Map

// batchLocks serializes completeBatch per batch. Batches are spread over a
// fixed set of mutexes.
var batchLocks [64]sync.Mutex

func lockBatch(batchID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(batchID))
	mu := &batchLocks[h.Sum32()%uint32(len(batchLocks))]
	mu.Lock()
	return mu.Unlock
}

type UploadRepo interface {
	ClaimPending(ctx context.Context, limit uint32, lease time.Duration) ([]domain.Upload, error)
	FindByBatchID(ctx context.Context, batchID string) ([]domain.Upload, error)
	UpdateStatus(ctx context.Context, id string, status domain.UploadStatus) error
}

type AnalysisRepo interface {
	CreateIndividual(ctx context.Context, a *domain.IndividualAnalysis) (*domain.IndividualAnalysis, error)
	FindIndividualByUserID(ctx context.Context, userID int) ([]domain.IndividualAnalysis, error)
	CreateBatch(ctx context.Context, b *domain.BatchAnalysis) (*domain.BatchAnalysis, error)
	BatchExists(ctx context.Context, batchID string) (bool, error)
}

type Credits interface {
	ConsumeCredits(ctx context.Context, userID int, amount int, description string, reference *string) (*domain.CreditBalance, error)
	ProcessTransaction(ctx context.Context, userID int, txType domain.TransactionType, amount int, description string, reference *string, createdBy *int) (*domain.CreditBalance, error)
}

type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

type Service struct {
	uploads        UploadRepo
	analyses       AnalysisRepo
	credits        Credits
	store          ObjectStore
	llm            llm.Client
	cost           int
	limit          uint32
	lease          time.Duration
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg config.AnalysisConfig, uploads UploadRepo, analyses AnalysisRepo, credits Credits, store ObjectStore, client llm.Client) *Service {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second * 5
	}
	lease := cfg.Lease
	if lease <= 0 {
		lease = defaultLease
	}
	return &Service{
		uploads:        uploads,
		analyses:       analyses,
		credits:        credits,
		store:          store,
		llm:            client,
		cost:           cfg.Cost,
		limit:          cfg.BatchLimit,
		lease:          lease,
		workerPool:     NewWorkerPool(workers),
		updateInterval: interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Analyzer started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping analyzer")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.processUploads(ctx)
		}
	}
}

func (s *Service) processUploads(ctx context.Context) {
	uploads, err := s.uploads.ClaimPending(ctx, atomic.LoadUint32(&s.limit), s.lease)
	if err != nil {
		zap.L().Error("Failed to claim pending uploads", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, upload := range uploads {
		upload := upload

		if _, loaded := processingUploads.LoadOrStore(upload.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingUploads.Delete(upload.ID)
				return s.handleUpload(ctx, upload)
			})
			if err != nil {
				processingUploads.Delete(upload.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling uploads", zap.Error(err))
	}
}

// handleUpload charges the user, asks the model for a review and stores it.
// Credits are refunded when no analysis could be produced.
func (s *Service) handleUpload(ctx context.Context, upload domain.Upload) error {
	reference := upload.ID
	_, err := s.credits.ConsumeCredits(ctx, upload.UserID, s.cost, "Design analysis: "+upload.FileName, &reference)
	switch {
	case errors.Is(err, ledger.ErrInsufficientBalance):
		zap.L().Info("Not enough credits to analyze upload", zap.String("uploadID", upload.ID), zap.Int("userID", upload.UserID))
		s.finish(ctx, upload, domain.UploadFailed)
		return nil
	case err != nil:
		// Put it back for the next tick.
		s.setStatus(detached(ctx), upload.ID, domain.UploadPending)
		return fmt.Errorf("failed to charge credits for upload %s: %w", upload.ID, err)
	}

	analysis, err := s.analyzeUpload(ctx, upload)
	if err == nil {
		_, err = s.analyses.CreateIndividual(ctx, analysis)
	}
	if err != nil {
		if ctx.Err() != nil {
			// Shutting down: the upload is not at fault.
			s.requeue(ctx, upload)
			return fmt.Errorf("analysis of upload %s interrupted: %w", upload.ID, err)
		}
		s.refund(ctx, upload)
		s.finish(ctx, upload, domain.UploadFailed)
		return fmt.Errorf("failed to analyze upload %s: %w", upload.ID, err)
	}

	s.finish(ctx, upload, domain.UploadCompleted)
	return nil
}

func (s *Service) analyzeUpload(ctx context.Context, upload domain.Upload) (*domain.IndividualAnalysis, error) {
	req := llm.Request{System: systemPrompt, Prompt: buildIndividualPrompt(upload)}

	if upload.SourceURL == nil && strings.HasPrefix(upload.ContentType, "image/") {
		data, err := s.store.Get(ctx, storage.ObjectKey(upload.UserID, upload.ID, upload.FileName))
		if err != nil {
			return nil, err
		}
		req.Images = []llm.Image{{MediaType: upload.ContentType, Data: data}}
	}

	answer, err := s.llm.Complete(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parseResult(answer)
	if err != nil {
		return nil, err
	}

	return &domain.IndividualAnalysis{
		ID:           uuid.NewString(),
		UserID:       upload.UserID,
		UploadID:     upload.ID,
		AnalysisType: IndividualAnalysisType,
		Confidence:   res.Confidence,
		Results:      res.Payload,
	}, nil
}

func (s *Service) finish(ctx context.Context, upload domain.Upload, status domain.UploadStatus) {
	metrics.Analyses.WithLabelValues(kindIndividual, string(status)).Inc()
	s.setStatus(ctx, upload.ID, status)

	if upload.BatchID != nil {
		if err := s.completeBatch(ctx, upload.UserID, *upload.BatchID); err != nil {
			zap.L().Error("Failed to complete batch analysis", zap.String("batchID", *upload.BatchID), zap.Error(err))
		}
	}
}

func (s *Service) setStatus(ctx context.Context, uploadID string, status domain.UploadStatus) {
	if err := s.uploads.UpdateStatus(ctx, uploadID, status); err != nil {
		zap.L().Error("Failed to update upload status",
			zap.String("uploadID", uploadID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
	}
}

// requeue undoes the charge and returns the upload to pending. It still runs
// after ctx is cancelled.
func (s *Service) requeue(ctx context.Context, upload domain.Upload) {
	ctx = detached(ctx)
	s.refund(ctx, upload)
	s.setStatus(ctx, upload.ID, domain.UploadPending)
}

func detached(ctx context.Context) context.Context {
	if ctx.Err() != nil {
		return context.WithoutCancel(ctx)
	}
	return ctx
}

func (s *Service) refund(ctx context.Context, upload domain.Upload) {
	reference := upload.ID
	_, err := s.credits.ProcessTransaction(ctx, upload.UserID, domain.TransactionRefund, s.cost, "Refund for failed analysis: "+upload.FileName, &reference, nil)
	if err != nil {
		zap.L().Error("Failed to refund credits", zap.String("uploadID", upload.ID), zap.Int("userID", upload.UserID), zap.Error(err))
	}
}

// completeBatch writes the comparative analysis once every upload of the
// batch is terminal and at least two of them completed. Calls for the same
// batch run one at a time, so the last member to finish always sees the
// others as terminal.
func (s *Service) completeBatch(ctx context.Context, userID int, batchID string) error {
	unlock := lockBatch(batchID)
	defer unlock()

	members, err := s.uploads.FindByBatchID(ctx, batchID)
	if err != nil {
		return err
	}
	completed := make([]domain.Upload, 0, len(members))
	for _, u := range members {
		if !u.Status.Terminal() {
			return nil
		}
		if u.Status == domain.UploadCompleted {
			completed = append(completed, u)
		}
	}
	if len(completed) < minBatchSize {
		return nil
	}

	exists, err := s.analyses.BatchExists(ctx, batchID)
	if err != nil || exists {
		return err
	}

	individual, err := s.analyses.FindIndividualByUserID(ctx, userID)
	if err != nil {
		return err
	}
	byUpload := make(map[string]domain.IndividualAnalysis, len(individual))
	for _, a := range individual {
		byUpload[a.UploadID] = a
	}

	answer, err := s.llm.Complete(ctx, llm.Request{System: systemPrompt, Prompt: buildBatchPrompt(completed, byUpload)})
	if err != nil {
		metrics.Analyses.WithLabelValues(kindBatch, string(domain.UploadFailed)).Inc()
		return err
	}
	res, err := parseResult(answer)
	if err != nil {
		metrics.Analyses.WithLabelValues(kindBatch, string(domain.UploadFailed)).Inc()
		return err
	}

	batch := &domain.BatchAnalysis{
		ID:           uuid.NewString(),
		UserID:       userID,
		BatchID:      batchID,
		AnalysisType: BatchAnalysisType,
		Confidence:   res.Confidence,
		Results:      res.Payload,
	}
	for _, u := range completed {
		if u.ID == res.Winner {
			winner := u.ID
			batch.WinnerUploadID = &winner
			break
		}
	}

	if _, err := s.analyses.CreateBatch(ctx, batch); err != nil {
		metrics.Analyses.WithLabelValues(kindBatch, string(domain.UploadFailed)).Inc()
		return err
	}
	metrics.Analyses.WithLabelValues(kindBatch, string(domain.UploadCompleted)).Inc()
	zap.L().Info("Batch analysis stored", zap.String("batchID", batchID), zap.Int("uploads", len(completed)))
	return nil
}
