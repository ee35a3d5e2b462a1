package domain

import "fmt"

// BookingField names one user-editable field of the booking form.
type BookingField int

const (
	FieldEmail BookingField = iota
	FieldName
	FieldLicenseNumber
	FieldLicenseValidUntil
)

// BookingFields lists every BookingField in form order.
var BookingFields = []BookingField{FieldEmail, FieldName, FieldLicenseNumber, FieldLicenseValidUntil}

// Key returns the form/JSON key of the field.
func (f BookingField) Key() string {
	switch f {
	case FieldEmail:
		return "email"
	case FieldName:
		return "name"
	case FieldLicenseNumber:
		return "licenseNumber"
	case FieldLicenseValidUntil:
		return "licenseValidUntil"
	}
	return ""
}

// BookingForm is the state of the booking form. The rental range comes from
// navigation and is not editable here.
type BookingForm struct {
	Email             string
	Name              string
	LicenseNumber     string
	LicenseValidUntil string // "yyyy-MM-dd" as entered
	Range             DateRange
}

// Set returns a copy of the form with field f replaced by value.
func (b BookingForm) Set(f BookingField, value string) BookingForm {
	switch f {
	case FieldEmail:
		b.Email = value
	case FieldName:
		b.Name = value
	case FieldLicenseNumber:
		b.LicenseNumber = value
	case FieldLicenseValidUntil:
		b.LicenseValidUntil = value
	default:
		panic(fmt.Sprintf("domain.BookingForm.Set: unknown field %d", int(f)))
	}
	return b
}

// Get returns the current value of field f.
func (b BookingForm) Get(f BookingField) string {
	switch f {
	case FieldEmail:
		return b.Email
	case FieldName:
		return b.Name
	case FieldLicenseNumber:
		return b.LicenseNumber
	case FieldLicenseValidUntil:
		return b.LicenseValidUntil
	}
	return ""
}

// BookingRequest is the body of POST /customer/booking.
// StartDate and EndDate are absolute instants in InstantFormat.
type BookingRequest struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	LicenseNumber     string `json:"licenseNumber"`
	LicenseValidUntil string `json:"licenseValidUntil"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	CarID             string `json:"carId"`
}

// BookingResult is the terminal value of a successful submission.
type BookingResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
