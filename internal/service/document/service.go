package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nexhr/hr-panel-go/internal/config"
	"github.com/nexhr/hr-panel-go/internal/domain/document"
	"github.com/nexhr/hr-panel-go/internal/domain/employee"
	"github.com/nexhr/hr-panel-go/internal/pkg/pdf"
	salarycalc "github.com/nexhr/hr-panel-go/internal/service/salaryslip"
)

var twelve = decimal.NewFromInt(12)

type DocumentServiceImpl struct {
	employee.EmployeeRepository
	exporter *pdf.Exporter
	company  config.CompanyConfig
}

func NewDocumentService(
	employeeRepo employee.EmployeeRepository,
	exporter *pdf.Exporter,
	company config.CompanyConfig,
) document.DocumentService {
	return &DocumentServiceImpl{
		EmployeeRepository: employeeRepo,
		exporter:           exporter,
		company:            company,
	}
}

// GenerateOfferLetter implements document.DocumentService.
func (d *DocumentServiceImpl) GenerateOfferLetter(ctx context.Context, req document.OfferLetterRequest) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	emp, err := d.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, "", err
	}

	position := emp.Position
	if req.Position != nil {
		position = *req.Position
	}
	startDate := emp.JoiningDate.Format("2006-01-02")
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	annualSalary := "as discussed"
	if emp.BaseSalary != nil {
		annual := emp.BaseSalary.Mul(twelve)
		annualSalary = printableINR(salarycalc.FormatINR(annual)) + " per annum"
	}

	filename := document.OfferLetterFilename(emp.Name)

	doc := pdf.OfferLetterDocument{
		Name:           filename,
		CompanyName:    d.company.Name,
		CompanyAddress: d.company.Address,
		EmployeeName:   emp.Name,
		Position:       position,
		StartDate:      startDate,
		AnnualSalary:   annualSalary,
		IssueDate:      time.Now().Format("2006-01-02"),
		SignatoryName:  d.company.SignatoryName,
		SignatoryRole:  d.company.SignatoryRole,
	}

	pdfBytes, err := d.exporter.Export("offer-letter:"+emp.ID, doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to export offer letter: %w", err)
	}
	return pdfBytes, filename, nil
}

// GenerateExperienceLetter implements document.DocumentService.
func (d *DocumentServiceImpl) GenerateExperienceLetter(ctx context.Context, req document.ExperienceLetterRequest) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	emp, err := d.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, "", err
	}

	lastWorkingDate := time.Now().Format("2006-01-02")
	if req.LastWorkingDate != nil {
		lastWorkingDate = *req.LastWorkingDate
	}

	filename := document.ExperienceLetterFilename(emp.Name)

	doc := pdf.ExperienceLetterDocument{
		Name:            filename,
		CompanyName:     d.company.Name,
		CompanyAddress:  d.company.Address,
		EmployeeName:    emp.Name,
		Position:        emp.Position,
		JoiningDate:     emp.JoiningDate.Format("2006-01-02"),
		LastWorkingDate: lastWorkingDate,
		IssueDate:       time.Now().Format("2006-01-02"),
		SignatoryName:   d.company.SignatoryName,
		SignatoryRole:   d.company.SignatoryRole,
	}

	pdfBytes, err := d.exporter.Export("experience-letter:"+emp.ID, doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to export experience letter: %w", err)
	}
	return pdfBytes, filename, nil
}

func (d *DocumentServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := d.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func printableINR(s string) string {
	return strings.Replace(s, "₹", "Rs. ", 1)
}
