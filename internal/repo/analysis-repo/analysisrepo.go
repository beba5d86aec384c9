package analysisrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateIndividual(ctx context.Context, a *domain.IndividualAnalysis) (*domain.IndividualAnalysis, error) {
	query := `
		INSERT INTO design_analyses (id, user_id, design_upload_id, analysis_type, confidence_score, analysis_results)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, a.ID, a.UserID, a.UploadID, a.AnalysisType, a.Confidence, a.Results).Scan(&a.CreatedAt)
	if err != nil {
		zap.L().Error("can't save analysis", zap.String("upload_id", a.UploadID), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) FindIndividualByUserID(ctx context.Context, userID int) ([]domain.IndividualAnalysis, error) {
	query := `
        SELECT id, user_id, design_upload_id, analysis_type, confidence_score, analysis_results, created_at
        FROM design_analyses
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get analyses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	analyses := make([]domain.IndividualAnalysis, 0)
	for rows.Next() {
		var a domain.IndividualAnalysis
		if err := rows.Scan(&a.ID, &a.UserID, &a.UploadID, &a.AnalysisType, &a.Confidence, &a.Results, &a.CreatedAt); err != nil {
			zap.L().Error("can't scan analysis row", zap.Error(err))
			return nil, err
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate analysis rows", zap.Error(err))
		return nil, err
	}
	return analyses, nil
}

func (r *Repository) CreateBatch(ctx context.Context, b *domain.BatchAnalysis) (*domain.BatchAnalysis, error) {
	query := `
		INSERT INTO batch_analyses (id, user_id, batch_id, analysis_type, confidence_score, winner_upload_id, analysis_results)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, b.ID, b.UserID, b.BatchID, b.AnalysisType, b.Confidence, b.WinnerUploadID, b.Results).
		Scan(&b.CreatedAt)
	if err != nil {
		zap.L().Error("can't save batch analysis", zap.String("batch_id", b.BatchID), zap.Error(err))
		return nil, err
	}
	return b, nil
}

// FindBatch returns the user's batch analyses, newest first. An empty batchID
// returns all of them.
func (r *Repository) FindBatch(ctx context.Context, userID int, batchID string) ([]domain.BatchAnalysis, error) {
	query := `
        SELECT id, user_id, batch_id, analysis_type, confidence_score, winner_upload_id, analysis_results, created_at
        FROM batch_analyses
        WHERE user_id = $1 AND ($2 = '' OR batch_id::text = $2)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, batchID)
	if err != nil {
		zap.L().Error("can't get batch analyses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	batches := make([]domain.BatchAnalysis, 0)
	for rows.Next() {
		var b domain.BatchAnalysis
		err := rows.Scan(&b.ID, &b.UserID, &b.BatchID, &b.AnalysisType, &b.Confidence, &b.WinnerUploadID, &b.Results, &b.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan batch analysis row", zap.Error(err))
			return nil, err
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate batch analysis rows", zap.Error(err))
		return nil, err
	}
	return batches, nil
}

func (r *Repository) BatchExists(ctx context.Context, batchID string) (bool, error) {
	query := `SELECT id FROM batch_analyses WHERE batch_id = $1 LIMIT 1`
	var id string
	err := r.db.QueryRow(ctx, query, batchID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't check batch analysis", zap.String("batch_id", batchID), zap.Error(err))
		return false, err
	}
	return true, nil
}
