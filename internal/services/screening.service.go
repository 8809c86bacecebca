package services

import (
	"leasehold/internal/models"

	"github.com/shopspring/decimal"
)

// MinimumIncomeRatio is the gross income to rent multiple an applicant must
// reach, compared after rounding to one decimal.
var MinimumIncomeRatio = decimal.NewFromInt(3)

type ScreeningResult struct {
	IncomeRatio            *string  `json:"incomeRatio,omitempty"`
	MeetsIncomeRequirement *bool    `json:"meetsIncomeRequirement,omitempty"`
	Flagged                bool     `json:"flagged"`
	FlaggedQuestions       []string `json:"flaggedQuestions"`
}

// EvaluateScreening derives the income check and risk flags for an
// application. It is recomputed on every read and never stored. A nil
// listing or a rent that is not positive leaves the ratio unset.
func EvaluateScreening(app *models.Application, listing *models.Listing) ScreeningResult {
	result := ScreeningResult{FlaggedQuestions: []string{}}
	if app == nil {
		return result
	}

	if listing != nil && listing.MonthlyRent.IsPositive() {
		ratio := app.GrossMonthlyIncome.Div(listing.MonthlyRent).Round(1)
		rendered := ratio.StringFixed(1)
		meets := ratio.GreaterThanOrEqual(MinimumIncomeRatio)

		result.IncomeRatio = &rendered
		result.MeetsIncomeRequirement = &meets
	}

	answers := app.Screening()
	for _, question := range models.ScreeningQuestions {
		if isRiskAnswer(question.Key, answers[question.Key].Answer) {
			result.FlaggedQuestions = append(result.FlaggedQuestions, question.Key)
		}
	}
	result.Flagged = len(result.FlaggedQuestions) > 0

	return result
}

// rent_on_first is phrased positively; every other question admits a risk.
func isRiskAnswer(key string, answer bool) bool {
	if key == models.ScreeningRentOnFirst {
		return !answer
	}
	return answer
}
