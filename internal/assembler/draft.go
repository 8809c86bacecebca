package assembler

import (
	"time"

	"leasehold/internal/models"
	"leasehold/internal/types"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	GroupOccupants          = "occupants"
	GroupPreviousResidences = "previousResidences"
	GroupPreviousEmployment = "previousEmployment"
	GroupReferences         = "references"
	GroupPets               = "pets"
)

// Draft is an application being assembled section by section before it is
// submitted as a single payload.
type Draft struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listingId"`

	Details models.ApplicantDetails `json:"details"`

	Occupants          Group[models.Occupant]   `json:"occupants"`
	PreviousResidences Group[models.Residence]  `json:"previousResidences"`
	PreviousEmployment Group[models.Employment] `json:"previousEmployment"`
	References         Group[models.Reference]  `json:"references"`
	Pets               Group[models.Pet]        `json:"pets"`

	HasPets        bool                    `json:"hasPets"`
	Screening      models.ScreeningAnswers `json:"screening"`
	AdditionalInfo string                  `json:"additionalInfo"`
	ConsentAgreed  bool                    `json:"consentAgreed"`
	SignatureName  string                  `json:"signatureName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DraftPatch merges scalar fields into a draft. Nil fields are left alone.
type DraftPatch struct {
	Details        *models.ApplicantDetails `json:"details,omitempty"`
	HasPets        *bool                    `json:"hasPets,omitempty"`
	AdditionalInfo *string                  `json:"additionalInfo,omitempty"`
	ConsentAgreed  *bool                    `json:"consentAgreed,omitempty"`
	SignatureName  *string                  `json:"signatureName,omitempty"`
}

func NewDraft(listingID uuid.UUID, now time.Time) *Draft {
	return &Draft{
		ID:                 uuid.New(),
		ListingID:          listingID,
		Details:            models.ApplicantDetails{ApplyingAs: models.ApplyingAsTenant},
		Occupants:          NewGroup[models.Occupant](0, 0),
		PreviousResidences: NewGroup[models.Residence](0, 0),
		PreviousEmployment: NewGroup[models.Employment](0, 0),
		References:         NewGroup[models.Reference](1, 0),
		Pets:               NewGroup[models.Pet](0, models.MaxPets),
		Screening:          models.DefaultScreeningAnswers(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (d *Draft) Apply(patch DraftPatch) {
	if patch.Details != nil {
		d.Details = *patch.Details
	}
	if patch.HasPets != nil {
		d.HasPets = *patch.HasPets
	}
	if patch.AdditionalInfo != nil {
		d.AdditionalInfo = *patch.AdditionalInfo
	}
	if patch.ConsentAgreed != nil {
		d.ConsentAgreed = *patch.ConsentAgreed
	}
	if patch.SignatureName != nil {
		d.SignatureName = *patch.SignatureName
	}
}

// AddEntry returns uuid.Nil and false when the group is full.
func (d *Draft) AddEntry(group string) (uuid.UUID, bool, error) {
	switch group {
	case GroupOccupants:
		id, ok := d.Occupants.Add()
		return id, ok, nil
	case GroupPreviousResidences:
		id, ok := d.PreviousResidences.Add()
		return id, ok, nil
	case GroupPreviousEmployment:
		id, ok := d.PreviousEmployment.Add()
		return id, ok, nil
	case GroupReferences:
		id, ok := d.References.Add()
		return id, ok, nil
	case GroupPets:
		id, ok := d.Pets.Add()
		return id, ok, nil
	}
	return uuid.Nil, false, unknownGroup(group)
}

func (d *Draft) EditEntry(group string, id uuid.UUID, field, value string) error {
	switch group {
	case GroupOccupants:
		return d.Occupants.Edit(id, field, value)
	case GroupPreviousResidences:
		return d.PreviousResidences.Edit(id, field, value)
	case GroupPreviousEmployment:
		return d.PreviousEmployment.Edit(id, field, value)
	case GroupReferences:
		return d.References.Edit(id, field, value)
	case GroupPets:
		return d.Pets.Edit(id, field, value)
	}
	return unknownGroup(group)
}

// RemoveEntry reports false when the group is at its floor.
func (d *Draft) RemoveEntry(group string, id uuid.UUID) (bool, error) {
	switch group {
	case GroupOccupants:
		return d.Occupants.Remove(id)
	case GroupPreviousResidences:
		return d.PreviousResidences.Remove(id)
	case GroupPreviousEmployment:
		return d.PreviousEmployment.Remove(id)
	case GroupReferences:
		return d.References.Remove(id)
	case GroupPets:
		return d.Pets.Remove(id)
	}
	return false, unknownGroup(group)
}

// SetScreeningAnswer records one answer. A "no" answer clears its details.
func (d *Draft) SetScreeningAnswer(key string, answer bool, details string) error {
	if !models.IsScreeningQuestion(key) {
		return types.Validation("unknown screening question %q", key)
	}
	if d.Screening == nil {
		d.Screening = models.DefaultScreeningAnswers()
	}

	d.Screening[key] = models.ScreeningAnswer{Answer: answer, Details: details}.Normalized()
	return nil
}

// CanSubmit mirrors the disabled submit button: consent is mandatory.
func (d *Draft) CanSubmit() bool {
	return d.ConsentAgreed
}

// Submit freezes the signature time and assembles the application payload.
// The draft itself is left untouched so a failed submission stays editable.
func (d *Draft) Submit(now time.Time) (*models.Application, error) {
	if !d.CanSubmit() {
		return nil, types.Validation("consent must be agreed before submitting")
	}

	app := &models.Application{
		ListingID:           d.ListingID,
		ApplicantDetails:    d.Details,
		AdditionalOccupants: datatypes.JSONSlice[models.Occupant](d.Occupants.Values()),
		PreviousResidences:  datatypes.JSONSlice[models.Residence](d.PreviousResidences.Values()),
		PreviousEmployment:  datatypes.JSONSlice[models.Employment](d.PreviousEmployment.Values()),
		References:          datatypes.JSONSlice[models.Reference](d.References.Values()),
		HasPets:             d.HasPets,
		Pets:                datatypes.JSONSlice[models.Pet]{},
		ScreeningQuestions:  datatypes.NewJSONType(copyAnswers(d.Screening)),
		ConsentAgreed:       d.ConsentAgreed,
		SignatureName:       d.SignatureName,
		SignatureDate:       now.UTC(),
	}

	if d.HasPets {
		app.Pets = datatypes.JSONSlice[models.Pet](d.Pets.Values())
	}
	if d.AdditionalInfo != "" {
		info := d.AdditionalInfo
		app.AdditionalInfo = &info
	}
	return app, nil
}

func copyAnswers(answers models.ScreeningAnswers) models.ScreeningAnswers {
	copied := models.DefaultScreeningAnswers()
	for key, answer := range answers {
		copied[key] = answer
	}
	return copied
}

func unknownGroup(group string) error {
	return types.Validation("unknown group %q", group)
}
