package store

import (
	"context"
	"time"

	"ficlear/internal/bank/models"
)

// SeedDefaultBanks loads the starter lender catalog into an empty store. The
// platform ships with the five large Indian lenders so the eligibility engine
// has something to evaluate before an operator imports a real catalog.
func SeedDefaultBanks(ctx context.Context, s Store) []*models.Bank {
	now := time.Now()
	banks := []*models.Bank{
		{
			ID:            "sbi",
			Name:          "State Bank of India",
			Logo:          "🏦",
			ROI:           8.50,
			ProcessingFee: 0.35,
			Criteria: models.Criteria{
				MinCibil:               650,
				MaxCibil:               900,
				MinSalary:              15000,
				CompanyCategoryAllowed: []string{"A", "B", "C", "D"},
				MaxObligationPercent:   60,
				MaxLTV:                 90,
			},
			Features: []string{"Lowest interest rates", "Nationwide branch network", "Doorstep service"},
		},
		{
			ID:            "pnb",
			Name:          "Punjab National Bank",
			Logo:          "🏦",
			ROI:           8.90,
			ProcessingFee: 0.50,
			Criteria: models.Criteria{
				MinCibil:               650,
				MaxCibil:               900,
				MinSalary:              15000,
				CompanyCategoryAllowed: []string{"A", "B", "C", "D"},
				MaxObligationPercent:   55,
				MaxLTV:                 85,
			},
			Features: []string{"Quick processing", "Minimal documentation", "Flexible tenure"},
		},
		{
			ID:            "bob",
			Name:          "Bank of Baroda",
			Logo:          "🏦",
			ROI:           9.15,
			ProcessingFee: 0.50,
			Criteria: models.Criteria{
				MinCibil:               675,
				MaxCibil:               900,
				MinSalary:              18000,
				CompanyCategoryAllowed: []string{"A", "B", "C"},
				MaxObligationPercent:   55,
				MaxLTV:                 85,
			},
			Features: []string{"Competitive rates", "Rural branch coverage", "Top-up loans"},
		},
		{
			ID:            "hdfc",
			Name:          "HDFC Bank",
			Logo:          "🏦",
			ROI:           10.50,
			ProcessingFee: 1.00,
			Criteria: models.Criteria{
				MinCibil:               700,
				MaxCibil:               900,
				MinSalary:              25000,
				CompanyCategoryAllowed: []string{"A", "B"},
				MaxObligationPercent:   50,
				MaxLTV:                 85,
			},
			Features: []string{"Instant approval", "Digital-first processing", "Pre-approved offers"},
		},
		{
			ID:            "icici",
			Name:          "ICICI Bank",
			Logo:          "🏦",
			ROI:           10.75,
			ProcessingFee: 1.00,
			Criteria: models.Criteria{
				MinCibil:               700,
				MaxCibil:               900,
				MinSalary:              25000,
				CompanyCategoryAllowed: []string{"A", "B"},
				MaxObligationPercent:   50,
				MaxLTV:                 80,
			},
			Features: []string{"Fast disbursal", "Online account management", "Balance transfer"},
		},
	}
	for _, b := range banks {
		b.CreatedAt = now
		b.UpdatedAt = now
		_ = s.Create(ctx, b)
	}
	return banks
}
