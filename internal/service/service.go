package service

import (
	"time"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/repo"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/service/analysisservice"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/service/authservice"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/service/creditservice"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/service/uploadservice"
	pkgauth "github.com/mattedesign/figmant-759992b3-sub008/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	CreditService   *creditservice.Service
	UploadService   *uploadservice.Service
	AnalysisService *analysisservice.Service
	JWTService      pkgauth.JWTServiceInterface
}

type Options struct {
	JWTSecret       string
	BalanceCacheTTL time.Duration
	Store           uploadservice.ObjectStore
}

func New(repo *repo.Repositories, txManager pg.TXManager, opts Options) *Services {
	jwtService := pkgauth.NewJWTService(opts.JWTSecret)
	creditService := creditservice.New(repo.CreditRepo, repo.TransactionRepo, txManager, opts.BalanceCacheTTL)
	authService := authservice.New(repo.UserRepo, creditService, pkgauth.NewHashService(0), jwtService)
	uploadService := uploadservice.New(repo.UploadRepo, opts.Store)
	analysisService := analysisservice.New(repo.UploadRepo, repo.AnalysisRepo)

	return &Services{
		AuthService:     authService,
		CreditService:   creditService,
		UploadService:   uploadService,
		AnalysisService: analysisService,
		JWTService:      jwtService,
	}
}
