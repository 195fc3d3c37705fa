package mapping

import (
	"github.com/SscSPs/impact_api/internal/core/domain"
	"github.com/SscSPs/impact_api/internal/models"
)

// ToModelGrant converts a domain Grant to a model Grant. Allotments are mapped
// separately with ToModelAllotment.
func ToModelGrant(d domain.Grant) models.Grant {
	return models.Grant{
		GrantID:    d.GrantID,
		Kind:       string(d.Kind),
		StartYear:  d.StartYear,
		StartMonth: d.StartMonth,
	}
}

// ToDomainGrant converts a model Grant and its allotments to a domain Grant
func ToDomainGrant(m models.Grant, allotments []models.Allotment) domain.Grant {
	g := domain.Grant{
		GrantID:    m.GrantID,
		Kind:       domain.GrantKind(m.Kind),
		StartYear:  m.StartYear,
		StartMonth: m.StartMonth,
		Allotments: make([]domain.Allotment, len(allotments)),
	}
	for i, a := range allotments {
		g.Allotments[i] = ToDomainAllotment(a)
	}
	return g
}

// ToModelAllotment converts a domain Allotment belonging to grantID to a model Allotment
func ToModelAllotment(grantID int64, d domain.Allotment) models.Allotment {
	return models.Allotment{
		AllotmentID:                      d.AllotmentID,
		GrantID:                          grantID,
		SumInCents:                       d.SumInCents,
		NumberOutputsPurchased:           d.NumberOutputsPurchased,
		NumberOutputsPurchasedLowerBound: d.NumberOutputsPurchasedLowerBound,
		NumberOutputsPurchasedUpperBound: d.NumberOutputsPurchasedUpperBound,
		SourceName:                       d.SourceName,
		SourceURL:                        d.SourceURL,
		Comment:                          d.Comment,
		Charity:                          ToModelCharity(d.Charity),
		Intervention:                     ToModelIntervention(d.Intervention),
	}
}

// ToDomainAllotment converts a model Allotment to a domain Allotment
func ToDomainAllotment(m models.Allotment) domain.Allotment {
	return domain.Allotment{
		AllotmentID:                      m.AllotmentID,
		Charity:                          ToDomainCharity(m.Charity),
		Intervention:                     ToDomainIntervention(m.Intervention),
		SumInCents:                       m.SumInCents,
		NumberOutputsPurchased:           m.NumberOutputsPurchased,
		NumberOutputsPurchasedLowerBound: m.NumberOutputsPurchasedLowerBound,
		NumberOutputsPurchasedUpperBound: m.NumberOutputsPurchasedUpperBound,
		SourceName:                       m.SourceName,
		SourceURL:                        m.SourceURL,
		Comment:                          m.Comment,
	}
}
