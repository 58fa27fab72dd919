package rules

import (
	bankmodels "ficlear/internal/bank/models"
	pinmodels "ficlear/internal/pincode/models"
)

// Loan tenure assumed when estimating the EMI for the requested amount.
const defaultTenureMonths = 60

// foirBandCap returns the published FOIR ceiling for a salary band. The
// effective cap is the lower of this and the bank's own obligation cap.
func foirBandCap(monthlySalary float64) float64 {
	switch {
	case monthlySalary < 50_000:
		return 50
	case monthlySalary < 75_000:
		return 60
	default:
		return 70
	}
}

// incomeMultiplier returns the salary multiplier used to cap the loan amount.
// For the top income band the multiplier is case dependent and the bank's
// LTV cap limits instead, signalled by ltvLimited.
func incomeMultiplier(monthlySalary float64) (multiplier float64, ltvLimited bool) {
	switch {
	case monthlySalary < 35_000:
		return 20, false
	case monthlySalary < 75_000:
		return 22, false
	default:
		return 0, true
	}
}

// Branch network tiers. Every bank in the catalog serves Metro areas; the
// sets below name the banks that additionally reach Non-Metro and Rural
// areas. This mirrors the partner network reference data.
var (
	nonMetroBanks = map[string]struct{}{
		"sbi": {}, "pnb": {}, "bob": {}, "hdfc": {}, "icici": {},
	}
	ruralBanks = map[string]struct{}{
		"sbi": {}, "pnb": {}, "bob": {},
	}
)

// Coverage decides whether a bank serves a PIN code and returns the remark
// shown on the serviceability report. An explicit entry in the bank's
// serviceable list wins over the area-tier mapping.
func Coverage(bank *bankmodels.Bank, pincode string, area pinmodels.AreaType) (bool, string) {
	for _, pin := range bank.Criteria.ServiceablePincodes {
		if pin == pincode && pincode != "" {
			return true, "Multiple branches available"
		}
	}

	switch area {
	case pinmodels.AreaMetro:
		return true, "Branch available"
	case pinmodels.AreaNonMetro:
		if _, ok := nonMetroBanks[bank.ID]; ok {
			return true, "Digital processing available"
		}
	case pinmodels.AreaRural:
		if _, ok := ruralBanks[bank.ID]; ok {
			return true, "Limited branch network"
		}
	}
	return false, "Area not covered"
}
