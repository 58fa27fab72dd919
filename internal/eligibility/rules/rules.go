// Package rules implements the multi-criteria loan eligibility evaluation.
// Evaluation is a pure computation over an applicant profile and the lender
// catalog; no storage, clock or I/O involved.
package rules

import (
	"math"

	bankmodels "ficlear/internal/bank/models"
	"ficlear/internal/eligibility/models"
	pinmodels "ficlear/internal/pincode/models"
)

// Options carries policy switches that alter rule interpretation.
type Options struct {
	// StrictCibilCeiling turns a bank's stated CIBIL maximum into a hard
	// disqualifier instead of a display bound.
	StrictCibilCeiling bool
}

// Failure reasons, one per criterion. Kept stable so callers and tests can
// match on them.
const (
	ReasonPolicyUnavailable = "policy data unavailable"
	reasonCibilBelowMin     = "CIBIL score below minimum required"
	reasonCibilAboveMax     = "CIBIL score above the bank's accepted maximum"
	reasonSalaryBelowMin    = "Monthly salary below the bank's minimum"
	reasonCategoryRejected  = "Company category not accepted by this bank"
	reasonFoirExceeded      = "Existing obligations exceed the permissible FOIR limit"
	reasonNotServiceable    = "PIN code outside the bank's serviceable area"
)

// Evaluate produces one verdict per bank, in catalog order. A malformed bank
// policy yields a synthetic ineligible verdict for that bank only; the rest
// of the catalog is evaluated normally.
func Evaluate(profile *models.Profile, banks []*bankmodels.Bank, area pinmodels.AreaType, opts Options) []models.Verdict {
	verdicts := make([]models.Verdict, 0, len(banks))
	for _, bank := range banks {
		verdicts = append(verdicts, evaluateBank(profile, bank, area, opts))
	}
	return verdicts
}

func evaluateBank(profile *models.Profile, bank *bankmodels.Bank, area pinmodels.AreaType, opts Options) models.Verdict {
	verdict := models.Verdict{
		BankID:        bank.ID,
		BankName:      bank.Name,
		Reasons:       []string{},
		ROI:           bank.ROI,
		ProcessingFee: bank.ProcessingFee,
	}

	if err := bank.Validate(); err != nil {
		verdict.Reasons = append(verdict.Reasons, ReasonPolicyUnavailable)
		return verdict
	}

	c := bank.Criteria

	if profile.CibilScore < c.MinCibil {
		verdict.Reasons = append(verdict.Reasons, reasonCibilBelowMin)
	} else if opts.StrictCibilCeiling && profile.CibilScore > c.MaxCibil {
		verdict.Reasons = append(verdict.Reasons, reasonCibilAboveMax)
	}

	if profile.MonthlySalary < c.MinSalary {
		verdict.Reasons = append(verdict.Reasons, reasonSalaryBelowMin)
	}

	if !categoryAllowed(profile.CompanyCategory, c.CompanyCategoryAllowed) {
		verdict.Reasons = append(verdict.Reasons, reasonCategoryRejected)
	}

	if !foirWithinCap(profile, bank) {
		verdict.Reasons = append(verdict.Reasons, reasonFoirExceeded)
	}

	if serviceable, _ := Coverage(bank, profile.Pincode, area); !serviceable {
		verdict.Reasons = append(verdict.Reasons, reasonNotServiceable)
	}

	if len(verdict.Reasons) > 0 {
		return verdict
	}

	verdict.Eligible = true
	verdict.MaxLoanAmount = maxLoanAmount(profile, bank)
	return verdict
}

func categoryAllowed(category string, allowed []string) bool {
	for _, cat := range allowed {
		if cat == category {
			return true
		}
	}
	return false
}

// foirWithinCap checks the obligation ratio after adding the estimated EMI
// for the requested amount. The cap is the stricter of the salary-band table
// and the bank's own obligation ceiling.
func foirWithinCap(profile *models.Profile, bank *bankmodels.Bank) bool {
	limit := foirBandCap(profile.MonthlySalary)
	if bank.Criteria.MaxObligationPercent > 0 && bank.Criteria.MaxObligationPercent < limit {
		limit = bank.Criteria.MaxObligationPercent
	}

	emi := estimateEMI(profile.RequestedAmount, bank.ROI, defaultTenureMonths)
	ratio := (profile.MonthlyObligation + emi) / profile.MonthlySalary * 100
	return ratio <= limit
}

// estimateEMI computes a reducing-balance EMI for principal p at annual rate
// percent over n months.
func estimateEMI(p, annualRatePercent float64, n int) float64 {
	r := annualRatePercent / 12 / 100
	if r == 0 {
		return p / float64(n)
	}
	factor := math.Pow(1+r, float64(n))
	return p * r * factor / (factor - 1)
}

// maxLoanAmount caps the requested amount by the income-band multiplier and
// the bank's LTV ceiling. In the top income band no fixed multiplier applies
// and the LTV cap limits alone.
func maxLoanAmount(profile *models.Profile, bank *bankmodels.Bank) float64 {
	amount := profile.RequestedAmount

	multiplier, ltvLimited := incomeMultiplier(profile.MonthlySalary)
	if !ltvLimited {
		amount = math.Min(amount, profile.MonthlySalary*multiplier)
	}

	if bank.Criteria.MaxLTV > 0 {
		amount = math.Min(amount, profile.RequestedAmount*bank.Criteria.MaxLTV/100)
	}
	return math.Round(amount)
}
