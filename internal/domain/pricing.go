package domain

import (
	"time"

	"rentaldesk/internal/utils"
)

// FinePerDay is the flat penalty for each day a vehicle comes back after its end date.
const FinePerDay float64 = 200

// RentalQuote is the estimate shown before a booking is confirmed.
type RentalQuote struct {
	Days        int     `json:"days"`
	DailyRate   float64 `json:"daily_rate"`
	TotalAmount float64 `json:"total_amount"`
}

// RentalDays counts both endpoints, so a same-day rental is one day.
func RentalDays(start, end time.Time) (int, error) {
	diff := utils.DaysBetween(start, end)
	if diff < 0 {
		return 0, ValidationError{Field: "end_date", Msg: "must not be before start_date", Err: ErrInvalidDateRange}
	}
	return diff + 1, nil
}

func QuoteRental(dailyRate float64, start, end time.Time) (RentalQuote, error) {
	if dailyRate <= 0 {
		return RentalQuote{}, ValidationError{Field: "daily_rate", Msg: "must be positive"}
	}
	days, err := RentalDays(start, end)
	if err != nil {
		return RentalQuote{}, err
	}
	return RentalQuote{
		Days:        days,
		DailyRate:   dailyRate,
		TotalAmount: utils.RoundMoney(float64(days) * dailyRate),
	}, nil
}

// DaysLate is zero when the vehicle is back on or before endDate.
func DaysLate(endDate, returnDate time.Time) int {
	late := utils.DaysBetween(endDate, returnDate)
	if late < 0 {
		return 0
	}
	return late
}

func ComputeFine(endDate, returnDate time.Time) float64 {
	return float64(DaysLate(endDate, returnDate)) * FinePerDay
}

func AmountDue(total, fine float64) float64 {
	return utils.RoundMoney(total + fine)
}
