package services

import (
	"context"

	"rentaldesk/internal/repositories"
)

type ReportSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalRentals int64   `json:"total_rentals"`
}

type ReportsService struct {
	Rentals  repositories.RentalRepository
	Payments repositories.PaymentRepository
}

// TotalRevenue sums every recorded payment; zero when nothing has been paid.
func (s ReportsService) TotalRevenue(ctx context.Context) (float64, error) {
	return s.Payments.SumAmount(ctx)
}

// TotalRentalCount counts rentals in any state.
func (s ReportsService) TotalRentalCount(ctx context.Context) (int64, error) {
	return s.Rentals.Count(ctx)
}

func (s ReportsService) Summary(ctx context.Context) (ReportSummary, error) {
	revenue, err := s.TotalRevenue(ctx)
	if err != nil {
		return ReportSummary{}, err
	}
	count, err := s.TotalRentalCount(ctx)
	if err != nil {
		return ReportSummary{}, err
	}
	return ReportSummary{TotalRevenue: revenue, TotalRentals: count}, nil
}
