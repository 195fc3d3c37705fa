package mapping_test

import (
	"testing"

	"github.com/SscSPs/impact_api/internal/core/domain"
	"github.com/SscSPs/impact_api/internal/models"
	"github.com/SscSPs/impact_api/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelCharity_UpperCasesAbbreviation(t *testing.T) {
	m := mapping.ToModelCharity(domain.Charity{CharityName: "Against Malaria Foundation", Abbreviation: " amf "})
	assert.Equal(t, "AMF", m.Abbreviation)
}

func TestToDomainGrant_CarriesAllotments(t *testing.T) {
	upper := int64(900)
	g := mapping.ToDomainGrant(
		models.Grant{GrantID: 3, Kind: "all_grants_fund", StartYear: 2019, StartMonth: 4},
		[]models.Allotment{{
			AllotmentID:                      8,
			GrantID:                          3,
			SumInCents:                       250000,
			NumberOutputsPurchased:           500,
			NumberOutputsPurchasedUpperBound: &upper,
			Charity:                          models.Charity{CharityID: 1, Abbreviation: "GD"},
		}},
	)

	assert.Equal(t, domain.GrantKindAllGrantsFund, g.Kind)
	require.Len(t, g.Allotments, 1)
	assert.Equal(t, "GD", g.Allotments[0].Charity.Abbreviation)
	assert.Equal(t, &upper, g.Allotments[0].NumberOutputsPurchasedUpperBound)
	assert.Equal(t, "All Grants Fund Grant 2019-4", g.String())
}

func TestToDomainGrant_NoAllotments(t *testing.T) {
	g := mapping.ToDomainGrant(models.Grant{GrantID: 1, Kind: "max_impact_fund", StartYear: 2015, StartMonth: 6}, nil)
	assert.NotNil(t, g.Allotments)
	assert.Empty(t, g.Allotments)
}
