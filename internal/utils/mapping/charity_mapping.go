package mapping

import (
	"github.com/SscSPs/impact_api/internal/core/domain"
	"github.com/SscSPs/impact_api/internal/models"
)

// ToModelCharity converts a domain Charity to a model Charity, upper-casing the
// abbreviation the way it is stored.
func ToModelCharity(d domain.Charity) models.Charity {
	return models.Charity{
		CharityID:    d.CharityID,
		CharityName:  d.CharityName,
		Abbreviation: domain.NormalizeAbbreviation(d.Abbreviation),
	}
}

// ToDomainCharity converts a model Charity to a domain Charity
func ToDomainCharity(m models.Charity) domain.Charity {
	return domain.Charity{
		CharityID:    m.CharityID,
		CharityName:  m.CharityName,
		Abbreviation: m.Abbreviation,
	}
}

// ToDomainCharitySlice converts a slice of model Charities to a slice of domain Charities
func ToDomainCharitySlice(ms []models.Charity) []domain.Charity {
	ds := make([]domain.Charity, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCharity(m)
	}
	return ds
}

// ToModelIntervention converts a domain Intervention to a model Intervention
func ToModelIntervention(d domain.Intervention) models.Intervention {
	return models.Intervention{
		InterventionID:   d.InterventionID,
		ShortDescription: d.ShortDescription,
		LongDescription:  d.LongDescription,
	}
}

// ToDomainIntervention converts a model Intervention to a domain Intervention
func ToDomainIntervention(m models.Intervention) domain.Intervention {
	return domain.Intervention{
		InterventionID:   m.InterventionID,
		ShortDescription: m.ShortDescription,
		LongDescription:  m.LongDescription,
	}
}
