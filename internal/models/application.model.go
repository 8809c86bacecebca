package models

import (
	"strings"
	"time"

	"leasehold/internal/types"
	"leasehold/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ApplicationStatus string

const (
	ApplicationStatusNew         ApplicationStatus = "new"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusDenied      ApplicationStatus = "denied"
	ApplicationStatusLeaseSigned ApplicationStatus = "lease_signed"
)

// ApplicationStatuses is a flat set: any status may move to any other.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusNew,
	ApplicationStatusUnderReview,
	ApplicationStatusApproved,
	ApplicationStatusDenied,
	ApplicationStatusLeaseSigned,
}

func (s ApplicationStatus) IsValid() bool {
	for _, status := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsPending covers applications nobody has decided on yet.
func (s ApplicationStatus) IsPending() bool {
	return s == ApplicationStatusNew || s == ApplicationStatusUnderReview
}

type ApplyingAs string

const (
	ApplyingAsTenant      ApplyingAs = "Tenant"
	ApplyingAsCoApplicant ApplyingAs = "Co-applicant"
)

const MaxPets = 5

// ApplicantDetails are the single-valued sections of the form: personal
// information, guarantor, current residence and current employment.
type ApplicantDetails struct {
	FullName      string     `gorm:"type:text;not null" json:"fullName"`
	DateOfBirth   string     `gorm:"type:text"          json:"dateOfBirth"`
	Email         string     `gorm:"type:text;not null" json:"email"`
	Phone         string     `gorm:"type:text"          json:"phone"`
	DesiredMoveIn string     `gorm:"type:text"          json:"desiredMoveIn"`
	ApplyingAs    ApplyingAs `gorm:"type:text"          json:"applyingAs"`

	GuarantorName  *string `gorm:"type:text" json:"guarantorName,omitempty"`
	GuarantorEmail *string `gorm:"type:text" json:"guarantorEmail,omitempty"`
	GuarantorPhone *string `gorm:"type:text" json:"guarantorPhone,omitempty"`

	CurrentHousingType   string          `gorm:"type:text"                    json:"currentHousingType"`
	CurrentAddress       string          `gorm:"type:text"                    json:"currentAddress"`
	CurrentCity          string          `gorm:"type:text"                    json:"currentCity"`
	CurrentState         string          `gorm:"type:text"                    json:"currentState"`
	CurrentZip           string          `gorm:"type:text"                    json:"currentZip"`
	CurrentDateFrom      string          `gorm:"type:text"                    json:"currentDateFrom"`
	CurrentDateTo        string          `gorm:"type:text"                    json:"currentDateTo"`
	CurrentMonthlyRent   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"currentMonthlyRent"`
	CurrentLandlordName  string          `gorm:"type:text"                    json:"currentLandlordName"`
	CurrentLandlordEmail *string         `gorm:"type:text"                    json:"currentLandlordEmail,omitempty"`
	CurrentLandlordPhone string          `gorm:"type:text"                    json:"currentLandlordPhone"`

	WorkStatus         string          `gorm:"type:text"                    json:"workStatus"`
	EmployerName       string          `gorm:"type:text"                    json:"employerName"`
	JobTitle           string          `gorm:"type:text"                    json:"jobTitle"`
	GrossMonthlyIncome decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"grossMonthlyIncome"`
	EmploymentDateFrom string          `gorm:"type:text"                    json:"employmentDateFrom"`
	EmploymentDateTo   string          `gorm:"type:text"                    json:"employmentDateTo"`
	SupervisorName     string          `gorm:"type:text"                    json:"supervisorName"`
	SupervisorPhone    string          `gorm:"type:text"                    json:"supervisorPhone"`
	SupervisorEmail    *string         `gorm:"type:text"                    json:"supervisorEmail,omitempty"`
}

type Application struct {
	BaseUUIDModel
	ListingID uuid.UUID         `gorm:"type:uuid;not null;index:idx_applications_listing"         json:"listingId"`
	Status    ApplicationStatus `gorm:"type:text;not null;default:'new';index:idx_applications_status" json:"status"`

	ApplicantDetails `gorm:"embedded"`

	AdditionalOccupants datatypes.JSONSlice[Occupant]          `gorm:"type:jsonb"                              json:"additionalOccupants"`
	PreviousResidences  datatypes.JSONSlice[Residence]         `gorm:"type:jsonb"                              json:"previousResidences"`
	PreviousEmployment  datatypes.JSONSlice[Employment]        `gorm:"type:jsonb"                              json:"previousEmployment"`
	References          datatypes.JSONSlice[Reference]         `gorm:"column:applicant_references;type:jsonb" json:"applicantReferences"`
	HasPets             bool                                   `gorm:"type:bool;default:false;not null"        json:"hasPets"`
	Pets                datatypes.JSONSlice[Pet]               `gorm:"type:jsonb"                              json:"pets"`
	ScreeningQuestions  datatypes.JSONType[ScreeningAnswers]   `gorm:"type:jsonb"                              json:"screeningQuestions"`
	AdditionalInfo      *string                                `gorm:"type:text"                               json:"additionalInfo,omitempty"`
	ConsentAgreed       bool                                   `gorm:"type:bool;not null"                      json:"consentAgreed"`
	SignatureName       string                                 `gorm:"type:text;not null"                      json:"signatureName"`
	SignatureDate       time.Time                              `gorm:"not null"                                json:"signatureDate"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

// Screening returns the stored answers, normalized to the full question set.
func (a *Application) Screening() ScreeningAnswers {
	answers, err := a.ScreeningQuestions.Data().Normalize()
	if err != nil {
		return DefaultScreeningAnswers()
	}
	return answers
}

// PrepareSubmission checks the minimal shape of a new application and
// stamps the fields the client may not choose: status and signature time.
func (a *Application) PrepareSubmission(now time.Time) error {
	if a.ListingID == uuid.Nil {
		return types.Validation("listingId is required")
	}
	if !a.ConsentAgreed {
		return types.Validation("consent must be agreed before submitting")
	}
	if strings.TrimSpace(a.SignatureName) == "" {
		return types.Validation("signatureName is required")
	}

	switch a.ApplyingAs {
	case "":
		a.ApplyingAs = ApplyingAsTenant
	case ApplyingAsTenant, ApplyingAsCoApplicant:
	default:
		return types.Validation("applyingAs %q is not valid", a.ApplyingAs)
	}

	if a.CurrentMonthlyRent.IsNegative() {
		return types.Validation("currentMonthlyRent must not be negative")
	}
	if a.GrossMonthlyIncome.IsNegative() {
		return types.Validation("grossMonthlyIncome must not be negative")
	}

	if len(a.References) == 0 {
		return types.Validation("at least one reference is required")
	}
	for _, reference := range a.References {
		if err := reference.Validate(); err != nil {
			return err
		}
	}

	if len(a.Pets) > MaxPets {
		return types.Validation("no more than %d pets may be listed", MaxPets)
	}
	if !a.HasPets {
		a.Pets = datatypes.JSONSlice[Pet]{}
	}

	screening, err := a.ScreeningQuestions.Data().Normalize()
	if err != nil {
		return err
	}
	a.ScreeningQuestions = datatypes.NewJSONType(screening)

	if a.AdditionalOccupants == nil {
		a.AdditionalOccupants = datatypes.JSONSlice[Occupant]{}
	}
	if a.PreviousResidences == nil {
		a.PreviousResidences = datatypes.JSONSlice[Residence]{}
	}
	if a.PreviousEmployment == nil {
		a.PreviousEmployment = datatypes.JSONSlice[Employment]{}
	}
	if a.Pets == nil {
		a.Pets = datatypes.JSONSlice[Pet]{}
	}

	if a.AdditionalInfo != nil {
		info := utils.CleanText(*a.AdditionalInfo)
		a.AdditionalInfo = &info
		if info == "" {
			a.AdditionalInfo = nil
		}
	}

	a.ID = uuid.Nil
	a.CreatedAt = time.Time{}
	a.UpdatedAt = time.Time{}
	a.Status = ApplicationStatusNew
	a.SignatureDate = now.UTC()
	a.Listing = nil

	return nil
}
