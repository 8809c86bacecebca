package models

import (
	"leasehold/internal/types"
)

const ScreeningRentOnFirst = "rent_on_first"

type ScreeningQuestion struct {
	Key   string `json:"key"`
	Text  string `json:"text"`
	Label string `json:"label"`
}

// ScreeningQuestions is the fixed questionnaire in display order. Every
// question except rent_on_first admits a risk when answered yes.
var ScreeningQuestions = []ScreeningQuestion{
	{"evicted", "Have you ever been evicted or asked to move from any tenancy?", "Evicted"},
	{"broken_lease", "Have you ever broken a rental agreement or lease?", "Broken lease"},
	{"refused_rent", "Have you ever willfully and intentionally refused to pay rent when due?", "Refused rent"},
	{"income_interruption", "Do you know of anything that might interrupt your income or ability to pay rent?", "Income interruption"},
	{"outstanding_judgments", "Are there any outstanding judgments against you?", "Outstanding judgments"},
	{"foreclosure", "Have you had property foreclosed upon or given title/deed in lieu of foreclosure in the past 7 years?", "Foreclosure"},
	{"bankruptcy", "Have you ever filed a petition of bankruptcy? (If yes, provide dates and discharge status)", "Bankruptcy"},
	{"criminal_proceedings", "Are you a named party to a criminal proceeding, lawsuit, or unlawful detainer filing?", "Criminal proceedings"},
	{"felony", "Have you or anyone in your household ever been convicted of a felony?", "Felony"},
	{ScreeningRentOnFirst, "Rent is due in advance on the first day of each month. Are you able to fulfill this requirement?", "Able to pay rent on the 1st"},
}

func IsScreeningQuestion(key string) bool {
	for _, q := range ScreeningQuestions {
		if q.Key == key {
			return true
		}
	}
	return false
}

type ScreeningAnswer struct {
	Answer  bool   `json:"answer"`
	Details string `json:"details"`
}

// Normalized drops details from a "no" answer.
func (a ScreeningAnswer) Normalized() ScreeningAnswer {
	if !a.Answer {
		a.Details = ""
	}
	return a
}

type ScreeningAnswers map[string]ScreeningAnswer

// DefaultScreeningAnswers seeds every question with "no" and empty details.
func DefaultScreeningAnswers() ScreeningAnswers {
	answers := make(ScreeningAnswers, len(ScreeningQuestions))
	for _, q := range ScreeningQuestions {
		answers[q.Key] = ScreeningAnswer{}
	}
	return answers
}

// Normalize returns a complete answer set: missing questions get the default,
// "no" answers lose their details, unknown keys are rejected.
func (s ScreeningAnswers) Normalize() (ScreeningAnswers, error) {
	normalized := DefaultScreeningAnswers()
	for key, answer := range s {
		if !IsScreeningQuestion(key) {
			return nil, types.Validation("unknown screening question %q", key)
		}
		normalized[key] = answer.Normalized()
	}
	return normalized, nil
}
