package pgsql

import (
	portsrepo "github.com/SscSPs/impact_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CharityRepo:    newPgxCharityRepository(dbPool),
		EvaluationRepo: newPgxEvaluationRepository(dbPool),
		GrantRepo:      newPgxGrantRepository(dbPool),
	}
}
