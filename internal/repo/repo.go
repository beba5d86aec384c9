package repo

import (
	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	analysisrepo "github.com/mattedesign/figmant-759992b3-sub008/internal/repo/analysis-repo"
	creditrepo "github.com/mattedesign/figmant-759992b3-sub008/internal/repo/credit-repo"
	transactionrepo "github.com/mattedesign/figmant-759992b3-sub008/internal/repo/transaction-repo"
	uploadrepo "github.com/mattedesign/figmant-759992b3-sub008/internal/repo/upload-repo"
	userrepo "github.com/mattedesign/figmant-759992b3-sub008/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	UploadRepo      *uploadrepo.Repository
	AnalysisRepo    *analysisrepo.Repository
	CreditRepo      *creditrepo.Repository
	TransactionRepo *transactionrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		UploadRepo:      uploadrepo.New(conn, txManager),
		AnalysisRepo:    analysisrepo.New(conn),
		CreditRepo:      creditrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
	}
}
