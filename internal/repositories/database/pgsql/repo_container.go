package pgsql

import (
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SaleRepo:       newPgxSaleRepository(dbPool),
		PurchaseRepo:   newPgxPurchaseRepository(dbPool),
		ExpenseRepo:    newPgxExpenseRepository(dbPool),
		InvestmentRepo: newPgxInvestmentRepository(dbPool),
		AssetRepo:      newPgxAssetRepository(dbPool),
		CategoryRepo:   newPgxCategoryRepository(dbPool),
		Health:         &BaseRepository{Pool: dbPool},
	}
}
