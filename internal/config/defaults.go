package config

import (
	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/domain"
)

// DefaultParameters returns the built-in 2024 parameter set. The source
// material carried two diverging constant tables (EI 1.27% vs 1.32%,
// QPP cap $4,038.40 vs $4,160.00, federal BPA $15,000 vs $15,705); the
// 2024 figures below are the more recent of the two and are the single
// authoritative set. Yearly updates go through a yaml parameter file,
// not code changes.
func DefaultParameters() *domain.Parameters {
	return &domain.Parameters{
		Metadata: domain.ParametersMetadata{
			TaxYear:     2024,
			LastUpdated: "2024-01-01",
			Description: "Quebec 2024 tax, contribution and benefit parameters",
		},
		FederalTax: domain.TaxSchedule{
			BasicPersonalAmount: decimal.NewFromInt(15705),
			Brackets: []domain.TaxBracket{
				{Min: decimal.Zero, Max: decimal.NewFromInt(55867), Rate: decimal.NewFromFloat(0.15)},
				{Min: decimal.NewFromInt(55867), Max: decimal.NewFromInt(111733), Rate: decimal.NewFromFloat(0.205)},
				{Min: decimal.NewFromInt(111733), Max: decimal.NewFromInt(173205), Rate: decimal.NewFromFloat(0.26)},
				{Min: decimal.NewFromInt(173205), Max: decimal.NewFromInt(246752), Rate: decimal.NewFromFloat(0.29)},
				{Min: decimal.NewFromInt(246752), Max: decimal.Zero, Rate: decimal.NewFromFloat(0.33)},
			},
		},
		QuebecTax: domain.TaxSchedule{
			BasicPersonalAmount: decimal.NewFromInt(18056),
			Brackets: []domain.TaxBracket{
				{Min: decimal.Zero, Max: decimal.NewFromInt(51780), Rate: decimal.NewFromFloat(0.14)},
				{Min: decimal.NewFromInt(51780), Max: decimal.NewFromInt(103545), Rate: decimal.NewFromFloat(0.19)},
				{Min: decimal.NewFromInt(103545), Max: decimal.NewFromInt(126000), Rate: decimal.NewFromFloat(0.24)},
				{Min: decimal.NewFromInt(126000), Max: decimal.Zero, Rate: decimal.NewFromFloat(0.2575)},
			},
		},
		Contributions: domain.ContributionPrograms{
			QPP: domain.ContributionProgram{
				Rate:        decimal.NewFromFloat(0.064),
				Exemption:   decimal.NewFromInt(3500),
				MaxEarnings: decimal.NewFromInt(68500),
				MaxAnnual:   decimal.NewFromFloat(4160.00),
			},
			QPIP: domain.ContributionProgram{
				Rate:        decimal.NewFromFloat(0.00494),
				Exemption:   decimal.Zero,
				MaxEarnings: decimal.NewFromInt(94000),
				MaxAnnual:   decimal.NewFromFloat(464.36),
			},
			EI: domain.ContributionProgram{
				Rate:        decimal.NewFromFloat(0.0132),
				Exemption:   decimal.Zero,
				MaxEarnings: decimal.NewFromInt(63200),
				MaxAnnual:   decimal.NewFromFloat(834.24),
			},
		},
		FederalBenefit: domain.BenefitProgram{
			MaxMonthlyUnder6: decimal.NewFromFloat(666.41),
			MaxMonthly6To17:  decimal.NewFromFloat(562.33),
			IncomeThreshold:  decimal.NewFromInt(37487),
			// 0.0088 of the band maximum per $1,000 over the threshold,
			// anchored to the published 7%/year one-child reduction.
			ReductionRate: decimal.NewFromFloat(0.0088),
		},
		QuebecAllowance: domain.BenefitProgram{
			MaxMonthlyUnder6: decimal.NewFromFloat(243.58),
			MaxMonthly6To17:  decimal.NewFromFloat(243.58),
			IncomeThreshold:  decimal.NewFromInt(57822),
			ReductionRate:    decimal.NewFromFloat(0.0165),
		},
		ChildCosts: domain.ChildCostParameters{
			BaseMonthlyUnder6: decimal.NewFromInt(320),
			BaseMonthly6To12:  decimal.NewFromInt(395),
			BaseMonthly13To17: decimal.NewFromInt(520),
			SiblingFactors: []decimal.Decimal{
				decimal.NewFromInt(1),
				decimal.NewFromFloat(0.85),
				decimal.NewFromFloat(0.75),
				decimal.NewFromFloat(0.70),
			},
			Daycare: domain.DaycareCosts{
				SubsidizedMonthly:  decimal.NewFromFloat(197.20),
				PrivateMonthly:     decimal.NewFromInt(1075),
				AfterSchoolMonthly: decimal.NewFromInt(265),
			},
		},
		Household: domain.HouseholdCostFactors{
			PartnerGroceryFactor: decimal.NewFromFloat(1.5),
			CarMonthlyCost:       decimal.NewFromInt(620),
			HousingSurcharges: []decimal.Decimal{
				decimal.NewFromFloat(0.30),
				decimal.NewFromFloat(0.65),
				decimal.NewFromFloat(1.00),
			},
		},
		Cities: DefaultCities(),
	}
}

// DefaultCities returns the built-in Quebec city cost table.
func DefaultCities() []domain.City {
	return []domain.City{
		{ID: "montreal", Name: "Montréal", AvgRent: decimal.NewFromInt(1650), MonthlyGrocery: decimal.NewFromInt(480), Utilities: decimal.NewFromInt(145), Transportation: decimal.NewFromInt(97), Population: 1762949, Region: "Montréal"},
		{ID: "quebec", Name: "Québec", AvgRent: decimal.NewFromInt(1250), MonthlyGrocery: decimal.NewFromInt(455), Utilities: decimal.NewFromInt(135), Transportation: decimal.NewFromFloat(92.50), Population: 549459, Region: "Capitale-Nationale"},
		{ID: "laval", Name: "Laval", AvgRent: decimal.NewFromInt(1500), MonthlyGrocery: decimal.NewFromInt(470), Utilities: decimal.NewFromInt(140), Transportation: decimal.NewFromInt(97), Population: 438366, Region: "Laval"},
		{ID: "gatineau", Name: "Gatineau", AvgRent: decimal.NewFromInt(1350), MonthlyGrocery: decimal.NewFromInt(460), Utilities: decimal.NewFromInt(138), Transportation: decimal.NewFromInt(105), Population: 291041, Region: "Outaouais"},
		{ID: "longueuil", Name: "Longueuil", AvgRent: decimal.NewFromInt(1450), MonthlyGrocery: decimal.NewFromInt(465), Utilities: decimal.NewFromInt(140), Transportation: decimal.NewFromInt(97), Population: 254483, Region: "Montérégie"},
		{ID: "sherbrooke", Name: "Sherbrooke", AvgRent: decimal.NewFromInt(1050), MonthlyGrocery: decimal.NewFromInt(445), Utilities: decimal.NewFromInt(132), Transportation: decimal.NewFromFloat(88.25), Population: 172950, Region: "Estrie"},
		{ID: "saguenay", Name: "Saguenay", AvgRent: decimal.NewFromInt(900), MonthlyGrocery: decimal.NewFromInt(450), Utilities: decimal.NewFromInt(130), Transportation: decimal.NewFromInt(85), Population: 144746, Region: "Saguenay–Lac-Saint-Jean"},
		{ID: "levis", Name: "Lévis", AvgRent: decimal.NewFromInt(1150), MonthlyGrocery: decimal.NewFromInt(450), Utilities: decimal.NewFromInt(133), Transportation: decimal.NewFromFloat(92.50), Population: 149683, Region: "Chaudière-Appalaches"},
		{ID: "trois-rivieres", Name: "Trois-Rivières", AvgRent: decimal.NewFromInt(950), MonthlyGrocery: decimal.NewFromInt(445), Utilities: decimal.NewFromInt(130), Transportation: decimal.NewFromInt(80), Population: 139163, Region: "Mauricie"},
		{ID: "terrebonne", Name: "Terrebonne", AvgRent: decimal.NewFromInt(1400), MonthlyGrocery: decimal.NewFromInt(465), Utilities: decimal.NewFromInt(138), Transportation: decimal.NewFromInt(105), Population: 119944, Region: "Lanaudière"},
	}
}
