package services

import (
	"testing"

	"leasehold/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func applicationWith(income string, answers models.ScreeningAnswers) *models.Application {
	app := &models.Application{}
	app.GrossMonthlyIncome = decimal.RequireFromString(income)
	app.ScreeningQuestions = datatypes.NewJSONType(answers)
	return app
}

func baselineAnswers() models.ScreeningAnswers {
	answers := models.DefaultScreeningAnswers()
	answers[models.ScreeningRentOnFirst] = models.ScreeningAnswer{Answer: true}
	return answers
}

func TestEvaluateScreening_IncomeRatio(t *testing.T) {
	listing := &models.Listing{MonthlyRent: decimal.NewFromInt(1000)}

	tests := []struct {
		name   string
		income string
		ratio  string
		meets  bool
	}{
		{"exactly three", "3000", "3.0", true},
		{"rounds up to three", "2950", "3.0", true},
		{"just under", "2949", "2.9", false},
		{"no income", "0", "0.0", false},
		{"well above", "4525.50", "4.5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateScreening(applicationWith(tt.income, baselineAnswers()), listing)

			require.NotNil(t, result.IncomeRatio)
			require.NotNil(t, result.MeetsIncomeRequirement)
			assert.Equal(t, tt.ratio, *result.IncomeRatio)
			assert.Equal(t, tt.meets, *result.MeetsIncomeRequirement)
		})
	}
}

func TestEvaluateScreening_RatioOmitted(t *testing.T) {
	app := applicationWith("3000", baselineAnswers())

	result := EvaluateScreening(app, nil)
	assert.Nil(t, result.IncomeRatio)
	assert.Nil(t, result.MeetsIncomeRequirement)

	result = EvaluateScreening(app, &models.Listing{MonthlyRent: decimal.Zero})
	assert.Nil(t, result.IncomeRatio)
}

func TestEvaluateScreening_Flags(t *testing.T) {
	t.Run("baseline is clean", func(t *testing.T) {
		result := EvaluateScreening(applicationWith("3000", baselineAnswers()), nil)
		assert.False(t, result.Flagged)
		assert.Empty(t, result.FlaggedQuestions)
	})

	t.Run("each risk question flags", func(t *testing.T) {
		for _, question := range models.ScreeningQuestions {
			if question.Key == models.ScreeningRentOnFirst {
				continue
			}
			answers := baselineAnswers()
			answers[question.Key] = models.ScreeningAnswer{Answer: true, Details: "details"}

			result := EvaluateScreening(applicationWith("3000", answers), nil)
			assert.True(t, result.Flagged, question.Key)
			assert.Equal(t, []string{question.Key}, result.FlaggedQuestions)
		}
	})

	t.Run("unable to pay on the first flags", func(t *testing.T) {
		answers := baselineAnswers()
		answers[models.ScreeningRentOnFirst] = models.ScreeningAnswer{Answer: false}

		result := EvaluateScreening(applicationWith("3000", answers), nil)
		assert.True(t, result.Flagged)
		assert.Equal(t, []string{models.ScreeningRentOnFirst}, result.FlaggedQuestions)
	})

	t.Run("flags follow display order", func(t *testing.T) {
		answers := baselineAnswers()
		answers["felony"] = models.ScreeningAnswer{Answer: true}
		answers["evicted"] = models.ScreeningAnswer{Answer: true}

		result := EvaluateScreening(applicationWith("3000", answers), nil)
		assert.Equal(t, []string{"evicted", "felony"}, result.FlaggedQuestions)
	})

	t.Run("missing answers default to no", func(t *testing.T) {
		result := EvaluateScreening(applicationWith("3000", models.ScreeningAnswers{}), nil)
		assert.Equal(t, []string{models.ScreeningRentOnFirst}, result.FlaggedQuestions)
	})
}
