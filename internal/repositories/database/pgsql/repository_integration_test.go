package pgsql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/impact_api/internal/core/domain"
	"github.com/SscSPs/impact_api/internal/repositories/database/pgsql"
	"github.com/SscSPs/impact_api/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepositories runs against a disposable PostgreSQL database named by
// IMPACT_TEST_PGSQL_URL and is skipped without one.
func TestRepositories(t *testing.T) {
	url := os.Getenv("IMPACT_TEST_PGSQL_URL")
	if url == "" {
		t.Skip("IMPACT_TEST_PGSQL_URL not set")
	}
	_, err := database.RunMigrations(url)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pool, err := database.NewPgxPool(ctx, url, true)
	require.NoError(t, err)
	defer pool.Close()

	repos := pgsql.NewRepositoryProvider(pool)

	charityID, err := repos.CharityRepo.SaveCharity(ctx, domain.Charity{CharityName: "Test Charity", Abbreviation: "zz-test"})
	require.NoError(t, err)
	interventionID, err := repos.CharityRepo.SaveIntervention(ctx, domain.Intervention{ShortDescription: "zz test intervention"})
	require.NoError(t, err)

	abbreviations, err := repos.CharityRepo.ListAbbreviations(ctx)
	require.NoError(t, err)
	assert.Contains(t, abbreviations, "ZZ-TEST")

	charity := domain.Charity{CharityID: charityID, Abbreviation: "ZZ-TEST"}
	intervention := domain.Intervention{InterventionID: interventionID}
	for _, e := range []domain.Evaluation{
		{Charity: charity, Intervention: intervention, StartYear: 2010, StartMonth: 12, CentsPerOutput: 500},
		{Charity: charity, Intervention: intervention, StartYear: 2011, StartMonth: 1, CentsPerOutput: 450},
		{Charity: charity, Intervention: intervention, StartYear: 2012, StartMonth: 1, CentsPerOutput: 400},
	} {
		_, err := repos.EvaluationRepo.SaveEvaluation(ctx, e)
		require.NoError(t, err)
	}

	rng := domain.RangeSpec{Start: domain.YearMonth{Year: 2010, Month: 6}, End: domain.YearMonth{Year: 2011, Month: 12}}
	inRange, err := repos.EvaluationRepo.FindEvaluationsInRange(ctx, rng, []string{"ZZ-TEST"})
	require.NoError(t, err)
	assert.Len(t, inRange, 2)

	all, err := repos.EvaluationRepo.FindEvaluationsByCharities(ctx, []string{"ZZ-TEST"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	grantID, err := repos.GrantRepo.SaveGrant(ctx, domain.Grant{
		Kind: domain.GrantKindMaxImpactFund, StartYear: 2001, StartMonth: 2,
		Allotments: []domain.Allotment{{Charity: charity, Intervention: intervention, SumInCents: 1000, NumberOutputsPurchased: 10}},
	})
	require.NoError(t, err)
	assert.NotZero(t, grantID)

	grants, err := repos.GrantRepo.FindGrantsInRange(ctx, domain.GrantKindMaxImpactFund,
		domain.RangeSpec{Start: domain.YearMonth{Year: 2001, Month: 2}, End: domain.YearMonth{Year: 2001, Month: 2}})
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Len(t, grants[0].Allotments, 1)
}
