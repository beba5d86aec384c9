package uploadrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	"go.uber.org/zap"
)

const uploadColumns = `id, user_id, batch_id, file_name, file_url, source_url, content_type, status, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create stores all uploads of one request atomically.
func (r *Repository) Create(ctx context.Context, uploads []domain.Upload) ([]domain.Upload, error) {
	query := `
        INSERT INTO design_uploads (id, user_id, batch_id, file_name, file_url, source_url, content_type, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	created := make([]domain.Upload, 0, len(uploads))
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, u := range uploads {
			err := r.db.QueryRow(ctx, query, u.ID, u.UserID, u.BatchID, u.FileName, u.FileURL, u.SourceURL, u.ContentType, u.Status).
				Scan(&u.CreatedAt)
			if err != nil {
				zap.L().Error("can't save upload", zap.String("file", u.FileName), zap.Error(err))
				return err
			}
			created = append(created, u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Upload, error) {
	query := `
        SELECT ` + uploadColumns + `
        FROM design_uploads
        WHERE user_id = $1
        ORDER BY created_at DESC, id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get uploads", zap.Error(err))
		return nil, err
	}
	return scanUploads(rows)
}

func (r *Repository) FindByBatchID(ctx context.Context, batchID string) ([]domain.Upload, error) {
	query := `
        SELECT ` + uploadColumns + `
        FROM design_uploads
        WHERE batch_id = $1
        ORDER BY created_at ASC, id
    `
	rows, err := r.db.Query(ctx, query, batchID)
	if err != nil {
		zap.L().Error("can't get batch uploads", zap.String("batch_id", batchID), zap.Error(err))
		return nil, err
	}
	return scanUploads(rows)
}

// ClaimPending moves up to limit pending uploads to processing and returns
// them. Uploads left in processing for longer than lease are claimed again.
// Rows locked by another claimer are skipped, so several analyzer instances
// can poll the same table.
func (r *Repository) ClaimPending(ctx context.Context, limit uint32, lease time.Duration) ([]domain.Upload, error) {
	query := `
        UPDATE design_uploads
        SET status = 'processing', updated_at = NOW()
        WHERE id IN (
            SELECT id
            FROM design_uploads
            WHERE status = 'pending'
               OR (status = 'processing' AND updated_at < NOW() - make_interval(secs => $2))
            ORDER BY created_at ASC, id
            LIMIT $1
            FOR UPDATE SKIP LOCKED
        )
        RETURNING ` + uploadColumns
	var claimed []domain.Upload
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		rows, err := r.db.Query(ctx, query, int(limit), lease.Seconds())
		if err != nil {
			zap.L().Error("can't claim pending uploads", zap.Error(err))
			return err
		}
		claimed, err = scanUploads(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.UploadStatus) error {
	query := `
        UPDATE design_uploads
        SET status = $1, updated_at = NOW()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update upload status", zap.String("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("upload %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

func scanUploads(rows pgx.Rows) ([]domain.Upload, error) {
	defer rows.Close()

	uploads := make([]domain.Upload, 0)
	for rows.Next() {
		var u domain.Upload
		err := rows.Scan(&u.ID, &u.UserID, &u.BatchID, &u.FileName, &u.FileURL, &u.SourceURL, &u.ContentType, &u.Status, &u.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan upload row", zap.Error(err))
			return nil, err
		}
		uploads = append(uploads, u)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate upload rows", zap.Error(err))
		return nil, err
	}
	return uploads, nil
}
