package models

import (
	"fmt"
	"strings"

	"rentaldesk/internal/domain"
)

type Category string

const (
	CategoryBike Category = "Bike"
	CategoryCar  Category = "Car"
)

// ParseCategory accepts the stored spelling case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bike":
		return CategoryBike, nil
	case "car":
		return CategoryCar, nil
	default:
		return "", domain.ValidationError{Field: "category", Msg: fmt.Sprintf("%q is not one of Bike, Car", s), Err: domain.ErrInvalidCategory}
	}
}

type Vehicle struct {
	ID         int64    `json:"id"`
	Category   Category `json:"category"`
	Brand      string   `json:"brand"`
	Model      string   `json:"model"`
	RegNo      string   `json:"reg_no"`
	RentPerDay float64  `json:"rent_per_day"`
	Available  bool     `json:"available"`
}

// DisplayName is the "brand model" label used in selectors.
func (v Vehicle) DisplayName() string {
	return strings.TrimSpace(v.Brand + " " + v.Model)
}
