package salaryslip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexhr/hr-panel-go/internal/config"
	"github.com/nexhr/hr-panel-go/internal/domain/document"
	"github.com/nexhr/hr-panel-go/internal/domain/employee"
	"github.com/nexhr/hr-panel-go/internal/domain/salaryslip"
	"github.com/nexhr/hr-panel-go/internal/pkg/email"
	"github.com/nexhr/hr-panel-go/internal/pkg/pdf"
	"github.com/nexhr/hr-panel-go/internal/pkg/storage"
)

type SalarySlipServiceImpl struct {
	salaryslip.SalarySlipRepository
	employee.EmployeeRepository
	exporter *pdf.Exporter
	files    storage.FileStorage
	mailer   email.EmailService
	company  config.CompanyConfig
}

func NewSalarySlipService(
	slipRepo salaryslip.SalarySlipRepository,
	employeeRepo employee.EmployeeRepository,
	exporter *pdf.Exporter,
	files storage.FileStorage,
	mailer email.EmailService,
	company config.CompanyConfig,
) salaryslip.SalarySlipService {
	return &SalarySlipServiceImpl{
		SalarySlipRepository: slipRepo,
		EmployeeRepository:   employeeRepo,
		exporter:             exporter,
		files:                files,
		mailer:               mailer,
		company:              company,
	}
}

// CreateDraft implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) CreateDraft(ctx context.Context, req salaryslip.CreateSlipRequest) (salaryslip.SlipResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryslip.SlipResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salaryslip.SlipResponse{}, employee.ErrEmployeeNotFound
		}
		return salaryslip.SlipResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	_, err := s.SalarySlipRepository.GetByEmployeePeriod(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
	if err == nil {
		return salaryslip.SlipResponse{}, salaryslip.ErrSlipAlreadyExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return salaryslip.SlipResponse{}, fmt.Errorf("failed to check existing slip: %w", err)
	}

	slip := salaryslip.SalarySlip{
		EmployeeID:  req.EmployeeID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Earnings:    req.Earnings,
		Deductions:  req.Deductions,
		Status:      salaryslip.StatusDraft,
	}
	s.applyTotals(&slip)

	created, err := s.SalarySlipRepository.Create(ctx, slip)
	if err != nil {
		return salaryslip.SlipResponse{}, fmt.Errorf("failed to create salary slip: %w", err)
	}

	return mapSlipToResponse(created), nil
}

// UpdateDraft implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) UpdateDraft(ctx context.Context, req salaryslip.UpdateSlipRequest) (salaryslip.SlipResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryslip.SlipResponse{}, err
	}

	slip, err := s.getSlip(ctx, req.ID)
	if err != nil {
		return salaryslip.SlipResponse{}, err
	}
	if slip.Status == salaryslip.StatusPublished {
		return salaryslip.SlipResponse{}, salaryslip.ErrSlipAlreadyPublished
	}

	if req.Earnings != nil {
		slip.Earnings = *req.Earnings
	}
	if req.Deductions != nil {
		slip.Deductions = *req.Deductions
	}
	s.applyTotals(&slip)

	if err := s.SalarySlipRepository.Update(ctx, slip); err != nil {
		return salaryslip.SlipResponse{}, fmt.Errorf("failed to update salary slip: %w", err)
	}

	return mapSlipToResponse(slip), nil
}

// Get implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) Get(ctx context.Context, id string) (salaryslip.SlipResponse, error) {
	slip, err := s.getSlip(ctx, id)
	if err != nil {
		return salaryslip.SlipResponse{}, err
	}
	return mapSlipToResponse(slip), nil
}

// List implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) List(ctx context.Context, filter salaryslip.SlipFilter) (salaryslip.ListSlipResponse, error) {
	slips, total, err := s.SalarySlipRepository.List(ctx, filter)
	if err != nil {
		return salaryslip.ListSlipResponse{}, fmt.Errorf("failed to list salary slips: %w", err)
	}

	responses := make([]salaryslip.SlipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, mapSlipToResponse(slip))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return salaryslip.ListSlipResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Slips:      responses,
	}, nil
}

// Publish implements salaryslip.SalarySlipService. The draft to
// published transition happens exactly once; re-publishing fails.
func (s *SalarySlipServiceImpl) Publish(ctx context.Context, id string) (salaryslip.SlipResponse, error) {
	slip, err := s.getSlip(ctx, id)
	if err != nil {
		return salaryslip.SlipResponse{}, err
	}
	if slip.Status == salaryslip.StatusPublished {
		return salaryslip.SlipResponse{}, salaryslip.ErrSlipAlreadyPublished
	}

	pdfBytes, filename, err := s.renderSlip(ctx, slip)
	if err != nil {
		return salaryslip.SlipResponse{}, err
	}

	archivePath := fmt.Sprintf("slips/%s/%s-%s", slip.EmployeeID, uuid.New().String(), filename)
	storedPath, err := s.files.Upload(ctx, bytes.NewReader(pdfBytes), archivePath, "application/pdf")
	if err != nil {
		return salaryslip.SlipResponse{}, fmt.Errorf("failed to archive slip pdf: %w", err)
	}

	now := time.Now()
	slip.Status = salaryslip.StatusPublished
	slip.PublishedAt = &now
	slip.PdfPath = &storedPath

	if err := s.SalarySlipRepository.Update(ctx, slip); err != nil {
		return salaryslip.SlipResponse{}, fmt.Errorf("failed to publish salary slip: %w", err)
	}

	s.notifyPublished(ctx, slip)

	return mapSlipToResponse(slip), nil
}

// DeleteDraft implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) DeleteDraft(ctx context.Context, id string) error {
	slip, err := s.getSlip(ctx, id)
	if err != nil {
		return err
	}
	if slip.Status == salaryslip.StatusPublished {
		return salaryslip.ErrSlipAlreadyPublished
	}

	if err := s.SalarySlipRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete salary slip: %w", err)
	}
	return nil
}

// ExportPDF implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) ExportPDF(ctx context.Context, id string) ([]byte, string, error) {
	slip, err := s.getSlip(ctx, id)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, filename, err := s.renderSlip(ctx, slip)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, filename, nil
}

func (s *SalarySlipServiceImpl) getSlip(ctx context.Context, id string) (salaryslip.SalarySlip, error) {
	slip, err := s.SalarySlipRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salaryslip.SalarySlip{}, salaryslip.ErrSlipNotFound
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to get salary slip: %w", err)
	}
	return slip, nil
}

// applyTotals recomputes derived money fields. An over-deducted slip is
// clamped to zero and logged, never rejected.
func (s *SalarySlipServiceImpl) applyTotals(slip *salaryslip.SalarySlip) {
	totals := ComputeTotals(slip.Earnings, slip.Deductions)
	if totals.TotalDeductions.GreaterThan(totals.TotalEarnings) {
		slog.Warn("salary slip deductions exceed earnings, net clamped to zero",
			"employee_id", slip.EmployeeID,
			"period_month", slip.PeriodMonth,
			"period_year", slip.PeriodYear,
			"total_earnings", totals.TotalEarnings.String(),
			"total_deductions", totals.TotalDeductions.String(),
		)
	}
	slip.TotalEarnings = totals.TotalEarnings
	slip.TotalDeductions = totals.TotalDeductions
	slip.NetSalary = totals.NetSalary
}

func (s *SalarySlipServiceImpl) renderSlip(ctx context.Context, slip salaryslip.SalarySlip) ([]byte, string, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, slip.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", employee.ErrEmployeeNotFound
		}
		return nil, "", fmt.Errorf("failed to get employee: %w", err)
	}

	filename := document.SalarySlipFilename(time.Month(slip.PeriodMonth), slip.PeriodYear)

	doc := pdf.SalarySlipDocument{
		Name:            filename,
		CompanyName:     s.company.Name,
		CompanyAddress:  s.company.Address,
		EmployeeName:    emp.Name,
		EmployeeCode:    emp.Code,
		Position:        emp.Position,
		PeriodLabel:     periodLabel(slip.PeriodMonth, slip.PeriodYear),
		Earnings:        mapAmountLines(slip.Earnings),
		Deductions:      mapAmountLines(slip.Deductions),
		TotalEarnings:   printableINR(FormatINR(slip.TotalEarnings)),
		TotalDeductions: printableINR(FormatINR(slip.TotalDeductions)),
		NetSalary:       printableINR(FormatINR(slip.NetSalary)),
		NetInWords:      AmountToWords(slip.NetSalary),
	}

	pdfBytes, err := s.exporter.Export(slip.ID, doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to export slip pdf: %w", err)
	}
	return pdfBytes, filename, nil
}

func (s *SalarySlipServiceImpl) notifyPublished(ctx context.Context, slip salaryslip.SalarySlip) {
	emp, err := s.EmployeeRepository.GetByID(ctx, slip.EmployeeID)
	if err != nil {
		slog.Error("failed to load employee for publish notification", "slip_id", slip.ID, "error", err)
		return
	}

	err = s.mailer.SendSlipPublished(emp.Email, emp.Name, periodLabel(slip.PeriodMonth, slip.PeriodYear), FormatINR(slip.NetSalary))
	if err != nil {
		// Notification failure never rolls back a publish.
		slog.Error("failed to send slip published email", "slip_id", slip.ID, "error", err)
	}
}

func periodLabel(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}

func mapAmountLines(items []salaryslip.LineItem) []pdf.AmountLine {
	lines := make([]pdf.AmountLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, pdf.AmountLine{
			Description: item.Description,
			Amount:      printableINR(FormatINR(item.Amount)),
		})
	}
	return lines
}

// printableINR swaps the rupee sign for an ASCII prefix; the core PDF
// fonts are cp1252 and cannot encode it.
func printableINR(s string) string {
	return strings.Replace(s, "₹", "Rs. ", 1)
}

func mapSlipToResponse(slip salaryslip.SalarySlip) salaryslip.SlipResponse {
	resp := salaryslip.SlipResponse{
		ID:               slip.ID,
		EmployeeID:       slip.EmployeeID,
		PeriodMonth:      slip.PeriodMonth,
		PeriodYear:       slip.PeriodYear,
		Earnings:         slip.Earnings,
		Deductions:       slip.Deductions,
		TotalEarnings:    slip.TotalEarnings,
		TotalDeductions:  slip.TotalDeductions,
		NetSalary:        slip.NetSalary,
		NetSalaryInWords: AmountToWords(slip.NetSalary),
		NetSalaryDisplay: FormatINR(slip.NetSalary),
		Status:           string(slip.Status),
		Position:         slip.Position,
	}

	if slip.EmployeeName != nil {
		resp.EmployeeName = *slip.EmployeeName
	}
	if slip.EmployeeCode != nil {
		resp.EmployeeCode = *slip.EmployeeCode
	}
	if slip.PublishedAt != nil {
		published := slip.PublishedAt.Format(time.RFC3339)
		resp.PublishedAt = &published
	}
	return resp
}
