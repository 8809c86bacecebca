package models

import (
	"leasehold/internal/types"
)

// Records embedded in an application as jsonb. Each supports WithField so
// the draft assembler can edit one field of one entry at a time.

type Occupant struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
}

func (o Occupant) WithField(field, value string) (Occupant, error) {
	switch field {
	case "name":
		o.Name = value
	case "email":
		o.Email = value
	case "relationship":
		o.Relationship = value
	default:
		return o, unknownField("occupant", field)
	}
	return o, nil
}

type Residence struct {
	HousingType   string `json:"housingType"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	DateFrom      string `json:"dateFrom"`
	DateTo        string `json:"dateTo"`
	MonthlyRent   string `json:"monthlyRent"`
	LandlordName  string `json:"landlordName"`
	LandlordEmail string `json:"landlordEmail"`
	LandlordPhone string `json:"landlordPhone"`
}

func (r Residence) WithField(field, value string) (Residence, error) {
	switch field {
	case "housingType":
		r.HousingType = value
	case "address":
		r.Address = value
	case "city":
		r.City = value
	case "state":
		r.State = value
	case "zip":
		r.Zip = value
	case "dateFrom":
		r.DateFrom = value
	case "dateTo":
		r.DateTo = value
	case "monthlyRent":
		r.MonthlyRent = value
	case "landlordName":
		r.LandlordName = value
	case "landlordEmail":
		r.LandlordEmail = value
	case "landlordPhone":
		r.LandlordPhone = value
	default:
		return r, unknownField("residence", field)
	}
	return r, nil
}

type Employment struct {
	WorkStatus         string `json:"workStatus"`
	EmployerName       string `json:"employerName"`
	JobTitle           string `json:"jobTitle"`
	GrossMonthlyIncome string `json:"grossMonthlyIncome"`
	DateFrom           string `json:"dateFrom"`
	DateTo             string `json:"dateTo"`
	SupervisorName     string `json:"supervisorName"`
	SupervisorPhone    string `json:"supervisorPhone"`
	SupervisorEmail    string `json:"supervisorEmail"`
}

func (e Employment) WithField(field, value string) (Employment, error) {
	switch field {
	case "workStatus":
		e.WorkStatus = value
	case "employerName":
		e.EmployerName = value
	case "jobTitle":
		e.JobTitle = value
	case "grossMonthlyIncome":
		e.GrossMonthlyIncome = value
	case "dateFrom":
		e.DateFrom = value
	case "dateTo":
		e.DateTo = value
	case "supervisorName":
		e.SupervisorName = value
	case "supervisorPhone":
		e.SupervisorPhone = value
	case "supervisorEmail":
		e.SupervisorEmail = value
	default:
		return e, unknownField("employment", field)
	}
	return e, nil
}

type Reference struct {
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	Email                string `json:"email"`
	Relationship         string `json:"relationship"`
	LengthOfAcquaintance string `json:"lengthOfAcquaintance"`
}

func (r Reference) WithField(field, value string) (Reference, error) {
	switch field {
	case "name":
		r.Name = value
	case "phone":
		r.Phone = value
	case "email":
		r.Email = value
	case "relationship":
		r.Relationship = value
	case "lengthOfAcquaintance":
		r.LengthOfAcquaintance = value
	default:
		return r, unknownField("reference", field)
	}
	return r, nil
}

func (r Reference) Validate() error {
	switch {
	case r.Name == "":
		return types.Validation("reference name is required")
	case r.Phone == "":
		return types.Validation("reference phone is required")
	case r.Relationship == "":
		return types.Validation("reference relationship is required")
	}
	return nil
}

type Pet struct {
	Name           string `json:"name"`
	TypeBreedSize  string `json:"typeBreedSize"`
	Sex            string `json:"sex"`
	NeuteredSpayed string `json:"neuteredSpayed"`
	IndoorOutdoor  string `json:"indoorOutdoor"`
}

func (p Pet) WithField(field, value string) (Pet, error) {
	switch field {
	case "name":
		p.Name = value
	case "typeBreedSize":
		p.TypeBreedSize = value
	case "sex":
		p.Sex = value
	case "neuteredSpayed":
		p.NeuteredSpayed = value
	case "indoorOutdoor":
		p.IndoorOutdoor = value
	default:
		return p, unknownField("pet", field)
	}
	return p, nil
}

func unknownField(record, field string) error {
	return types.Validation("%s has no field %q", record, field)
}
