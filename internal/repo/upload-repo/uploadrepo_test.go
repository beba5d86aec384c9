package uploadrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var columns = []string{"id", "user_id", "batch_id", "file_name", "file_url", "source_url", "content_type", "status", "created_at"}

const (
	byUserSQL  = `SELECT ` + uploadColumns + ` FROM design_uploads WHERE user_id = $1 ORDER BY created_at DESC, id`
	byBatchSQL = `SELECT ` + uploadColumns + ` FROM design_uploads WHERE batch_id = $1 ORDER BY created_at ASC, id`
	statusSQL  = `UPDATE design_uploads SET status = $1, updated_at = NOW() WHERE id = $2`
)

const insertSQL = `INSERT INTO design_uploads (id, user_id, batch_id, file_name, file_url, source_url, content_type, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`

const claimSQL = `UPDATE design_uploads SET status = 'processing', updated_at = NOW() WHERE id IN (
            SELECT id FROM design_uploads
            WHERE status = 'pending' OR (status = 'processing' AND updated_at < NOW() - make_interval(secs => $2))
            ORDER BY created_at ASC, id LIMIT $1 FOR UPDATE SKIP LOCKED
        ) RETURNING ` + uploadColumns

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passThrough(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()
	batch := "5b0e3c36-0f0a-4e0b-a9f7-0c1d2e3f4a5b"
	src := "https://example.com/pricing"

	uploads := []domain.Upload{
		{ID: "u1", UserID: 1, BatchID: &batch, FileName: "home.png", FileURL: "s3://designs/u1", ContentType: "image/png", Status: domain.UploadPending},
		{ID: "u2", UserID: 1, BatchID: &batch, FileName: "pricing", SourceURL: &src, Status: domain.UploadPending},
	}

	t.Run("All rows stored", func(t *testing.T) {
		passThrough(tx)
		for _, u := range uploads {
			mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
				WithArgs(u.ID, u.UserID, u.BatchID, u.FileName, u.FileURL, u.SourceURL, u.ContentType, u.Status).
				WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
		}

		created, err := repo.Create(context.Background(), uploads)
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, now, created[0].CreatedAt)
		assert.Equal(t, "u2", created[1].ID)
	})

	t.Run("Failure aborts the whole request", func(t *testing.T) {
		passThrough(tx)
		mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), uploads)
		assert.Error(t, err)
		assert.Nil(t, created)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	batch := "b1"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  []domain.Upload
	}{
		{
			name: "Uploads found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(byUserSQL)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("u1", 1, &batch, "home.png", "s3://designs/u1", nil, "image/png", domain.UploadCompleted, now))
			},
			expected: []domain.Upload{
				{ID: "u1", UserID: 1, BatchID: &batch, FileName: "home.png", FileURL: "s3://designs/u1", ContentType: "image/png", Status: domain.UploadCompleted, CreatedAt: now},
			},
		},
		{
			name: "Batch members sharing a timestamp keep id order",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(byUserSQL)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("a1", 1, &batch, "first.png", "s3://designs/a1", nil, "image/png", domain.UploadPending, now).
						AddRow("b2", 1, &batch, "second.png", "s3://designs/b2", nil, "image/png", domain.UploadPending, now))
			},
			expected: []domain.Upload{
				{ID: "a1", UserID: 1, BatchID: &batch, FileName: "first.png", FileURL: "s3://designs/a1", ContentType: "image/png", Status: domain.UploadPending, CreatedAt: now},
				{ID: "b2", UserID: 1, BatchID: &batch, FileName: "second.png", FileURL: "s3://designs/b2", ContentType: "image/png", Status: domain.UploadPending, CreatedAt: now},
			},
		},
		{
			name: "No uploads",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(byUserSQL)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(columns))
			},
			expected: []domain.Upload{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(byUserSQL)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByBatchID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	batch := "b1"

	mock.ExpectQuery(regexp.QuoteMeta(byBatchSQL)).
		WithArgs(batch).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("u1", 1, &batch, "a.png", "s3://designs/u1", nil, "image/png", domain.UploadCompleted, now).
			AddRow("u2", 1, &batch, "b.png", "s3://designs/u2", nil, "image/png", domain.UploadFailed, now))

	result, err := repo.FindByBatchID(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.UploadFailed, result[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ClaimPending(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	t.Run("Claimed rows come back as processing", func(t *testing.T) {
		passThrough(tx)
		mock.ExpectQuery(regexp.QuoteMeta(claimSQL)).
			WithArgs(50, 600.0).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("u1", 1, nil, "home.png", "s3://designs/u1", nil, "image/png", domain.UploadProcessing, now))

		claimed, err := repo.ClaimPending(context.Background(), 50, 10*time.Minute)
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, domain.UploadProcessing, claimed[0].Status)
		assert.Nil(t, claimed[0].BatchID)
	})

	t.Run("Stale processing rows are reclaimed", func(t *testing.T) {
		passThrough(tx)
		mock.ExpectQuery(regexp.QuoteMeta(claimSQL)).
			WithArgs(50, 30.0).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("u-stale", 1, nil, "old.png", "s3://designs/u-stale", nil, "image/png", domain.UploadProcessing, now.Add(-time.Hour)).
				AddRow("u-new", 1, nil, "new.png", "s3://designs/u-new", nil, "image/png", domain.UploadProcessing, now))

		claimed, err := repo.ClaimPending(context.Background(), 50, 30*time.Second)
		require.NoError(t, err)
		require.Len(t, claimed, 2)
		assert.Equal(t, "u-stale", claimed[0].ID)
	})

	t.Run("Database error", func(t *testing.T) {
		passThrough(tx)
		mock.ExpectQuery(regexp.QuoteMeta(claimSQL)).
			WithArgs(50, 600.0).
			WillReturnError(errors.New("database error"))

		claimed, err := repo.ClaimPending(context.Background(), 50, 10*time.Minute)
		assert.Error(t, err)
		assert.Nil(t, claimed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		check     func(t *testing.T, err error)
	}{
		{
			name: "Updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(statusSQL)).
					WithArgs(domain.UploadCompleted, "u1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "Unknown upload",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(statusSQL)).
					WithArgs(domain.UploadCompleted, "u1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, pgx.ErrNoRows) },
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(statusSQL)).
					WithArgs(domain.UploadCompleted, "u1").
					WillReturnError(errors.New("database error"))
			},
			check: func(t *testing.T, err error) { assert.Error(t, err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tt.check(t, repo.UpdateStatus(context.Background(), "u1", domain.UploadCompleted))
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
