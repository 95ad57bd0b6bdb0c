package models

// Customer is an identity record in the directory. Email and NationalID are optional.
type Customer struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	NationalID    string `json:"national_id,omitempty"`
	LicenseNumber string `json:"license_number"`
	Address       string `json:"address,omitempty"`
}

// CustomerInput carries the fields collected by the Add Customer form.
type CustomerInput struct {
	Name          string `json:"name" validate:"required,max=255"`
	Phone         string `json:"phone" validate:"required,max=32"`
	Email         string `json:"email" validate:"omitempty,email,max=255"`
	NationalID    string `json:"national_id" validate:"omitempty,max=32"`
	LicenseNumber string `json:"license_number" validate:"required,max=64"`
	Address       string `json:"address"`
}
