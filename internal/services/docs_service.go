package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/domain/models"
	"rentaldesk/internal/repositories"
	"rentaldesk/internal/utils"
)

// DocsService renders the payment receipt handed to the customer.
type DocsService struct {
	Payments  repositories.PaymentRepository
	Rentals   repositories.RentalRepository
	Customers repositories.CustomerRepository
	Vehicles  repositories.VehicleRepository
	RequestID string
	Loader    func(ctx context.Context, paymentID int64) (receiptData, error)
}

type receiptData struct {
	Payment  models.Payment
	Rental   models.Rental
	Customer models.Customer
	Vehicle  models.Vehicle
}

func (s DocsService) GenerateReceipt(ctx context.Context, paymentID int64) ([]byte, string, error) {
	if err := requirePositiveID("payment_id", paymentID); err != nil {
		return nil, "", err
	}
	data, err := s.loadReceiptData(ctx, paymentID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("payment_id=%d", paymentID))
	return buildReceiptPDF(data)
}

func (s DocsService) loadReceiptData(ctx context.Context, paymentID int64) (receiptData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, paymentID)
	}
	var out receiptData
	p, err := s.Payments.GetByID(ctx, paymentID)
	if err != nil {
		return out, err
	}
	out.Payment = p
	rt, err := s.Rentals.GetByID(ctx, p.RentalID)
	if err != nil {
		return out, err
	}
	out.Rental = rt
	// a deleted customer or vehicle still yields a receipt with placeholders
	c, err := s.Customers.GetByID(ctx, rt.CustomerID)
	switch {
	case err == nil:
		out.Customer = c
	case domain.IsNotFound(err):
		utils.LogEvent(s.RequestID, "docs", "load_receipt", fmt.Sprintf("customer_id=%d missing", rt.CustomerID))
	default:
		return out, err
	}
	v, err := s.Vehicles.GetByID(ctx, rt.VehicleID)
	switch {
	case err == nil:
		out.Vehicle = v
	case domain.IsNotFound(err):
		utils.LogEvent(s.RequestID, "docs", "load_receipt", fmt.Sprintf("vehicle_id=%d missing", rt.VehicleID))
	default:
		return out, err
	}
	return out, nil
}

func buildReceiptPDF(d receiptData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	receiptNo := fmt.Sprintf("RCP-%d-%d", d.Rental.ID, d.Payment.ID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Receipt No : "+receiptNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Paid On    : "+utils.FormatDate(d.Payment.PaymentDate))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Method     : "+safe(string(d.Payment.Method), "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Customer:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name    : %s", safe(d.Customer.Name, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone   : %s", safe(d.Customer.Phone, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("License : %s", safe(d.Customer.LicenseNumber, "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rental:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, s := range rentalLines(d) {
		pdf.Cell(0, 6, s)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total Paid: "+utils.FormatRupee(d.Payment.Amount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for renting with us. Keep this receipt for your records.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", d.Payment.ID, utils.SafeFilenamePart(d.Customer.Name))
	return buf.Bytes(), filename, nil
}

func rentalLines(d receiptData) []string {
	returned := "-"
	if d.Rental.ActualReturn != nil {
		returned = utils.FormatDate(*d.Rental.ActualReturn)
	}
	days := "-"
	if n, err := domain.RentalDays(d.Rental.StartDate, d.Rental.EndDate); err == nil {
		days = fmt.Sprintf("%d", n)
	}
	return []string{
		fmt.Sprintf("Rental ID   : #%d", d.Rental.ID),
		fmt.Sprintf("Vehicle     : %s (%s)", safe(d.Vehicle.DisplayName(), "-"), safe(d.Vehicle.RegNo, "-")),
		fmt.Sprintf("Period      : %s to %s", utils.FormatDate(d.Rental.StartDate), utils.FormatDate(d.Rental.EndDate)),
		fmt.Sprintf("Days        : %s", days),
		fmt.Sprintf("Returned On : %s", returned),
		fmt.Sprintf("Rent        : %s", utils.FormatRupee(d.Rental.TotalAmount)),
		fmt.Sprintf("Late Fine   : %s", utils.FormatRupee(d.Rental.FineAmount)),
	}
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
