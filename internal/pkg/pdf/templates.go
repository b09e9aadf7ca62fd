package pdf

import "fmt"

// The document templates carry plain pre-formatted fields; callers map
// their entities (and format amounts) before handing them over. Core
// PDF fonts are cp1252, so amounts arrive as "Rs. 34,200" rather than
// with the rupee sign.

type SalarySlipDocument struct {
	Name            string
	CompanyName     string
	CompanyAddress  string
	EmployeeName    string
	EmployeeCode    string
	Position        string
	PeriodLabel     string // e.g. "March 2025"
	Earnings        []AmountLine
	Deductions      []AmountLine
	TotalEarnings   string
	TotalDeductions string
	NetSalary       string
	NetInWords      string
}

type AmountLine struct {
	Description string
	Amount      string
}

func (d SalarySlipDocument) Filename() string { return d.Name }

func (d SalarySlipDocument) Render(b *Builder) error {
	b.Title(d.CompanyName)
	b.Subtitle(d.CompanyAddress)
	b.SectionHeading(fmt.Sprintf("Salary Slip - %s", d.PeriodLabel))

	b.KeyValue("Employee Name", d.EmployeeName)
	b.KeyValue("Employee Code", d.EmployeeCode)
	b.KeyValue("Designation", d.Position)
	b.Spacer(4)

	b.SectionHeading("Earnings")
	for _, line := range d.Earnings {
		b.AmountRow(line.Description, line.Amount, false)
	}
	b.AmountRow("Total Earnings", d.TotalEarnings, true)
	b.Spacer(3)

	b.SectionHeading("Deductions")
	for _, line := range d.Deductions {
		b.AmountRow(line.Description, line.Amount, false)
	}
	b.AmountRow("Total Deductions", d.TotalDeductions, true)

	b.Divider()
	b.AmountRow("Net Salary", d.NetSalary, true)
	b.KeyValue("In Words", d.NetInWords)
	return nil
}

type CertificateDocument struct {
	Name              string
	CompanyName       string
	CertificateNumber string
	NameOnCertificate string
	CourseName        string
	StartDate         string
	CompletionDate    string
	Duration          string
	IssueDate         string
}

func (d CertificateDocument) Filename() string { return d.Name }

func (d CertificateDocument) Render(b *Builder) error {
	b.Title("Certificate of Completion")
	b.Subtitle(d.CompanyName)
	b.Spacer(6)

	b.Paragraph(fmt.Sprintf(
		"This is to certify that %s has successfully completed the course %q conducted from %s to %s (duration: %s).",
		d.NameOnCertificate, d.CourseName, d.StartDate, d.CompletionDate, d.Duration,
	))
	b.Spacer(4)

	b.KeyValue("Certificate No.", d.CertificateNumber)
	b.KeyValue("Date of Issue", d.IssueDate)
	return nil
}

type OfferLetterDocument struct {
	Name           string
	CompanyName    string
	CompanyAddress string
	EmployeeName   string
	Position       string
	StartDate      string
	AnnualSalary   string
	IssueDate      string
	SignatoryName  string
	SignatoryRole  string
}

func (d OfferLetterDocument) Filename() string { return d.Name }

func (d OfferLetterDocument) Render(b *Builder) error {
	b.Title(d.CompanyName)
	b.Subtitle(d.CompanyAddress)
	b.SectionHeading("Offer of Employment")

	b.KeyValue("Date", d.IssueDate)
	b.Spacer(3)
	b.Paragraph(fmt.Sprintf("Dear %s,", d.EmployeeName))
	b.Paragraph(fmt.Sprintf(
		"We are pleased to offer you the position of %s at %s, commencing on %s. Your annual compensation will be %s.",
		d.Position, d.CompanyName, d.StartDate, d.AnnualSalary,
	))
	b.Paragraph("Please confirm your acceptance by signing and returning a copy of this letter.")
	b.Spacer(8)
	b.Paragraph("Sincerely,")
	b.Paragraph(signOff(d.SignatoryName, d.SignatoryRole))
	return nil
}

type ExperienceLetterDocument struct {
	Name            string
	CompanyName     string
	CompanyAddress  string
	EmployeeName    string
	Position        string
	JoiningDate     string
	LastWorkingDate string
	IssueDate       string
	SignatoryName   string
	SignatoryRole   string
}

func (d ExperienceLetterDocument) Filename() string { return d.Name }

func (d ExperienceLetterDocument) Render(b *Builder) error {
	b.Title(d.CompanyName)
	b.Subtitle(d.CompanyAddress)
	b.SectionHeading("Experience Certificate")

	b.KeyValue("Date", d.IssueDate)
	b.Spacer(3)
	b.Paragraph("To Whom It May Concern,")
	b.Paragraph(fmt.Sprintf(
		"This is to certify that %s was employed with %s as %s from %s to %s.",
		d.EmployeeName, d.CompanyName, d.Position, d.JoiningDate, d.LastWorkingDate,
	))
	b.Paragraph("During their tenure, their conduct and performance were found to be satisfactory. We wish them success in their future endeavors.")
	b.Spacer(8)
	b.Paragraph("Sincerely,")
	b.Paragraph(signOff(d.SignatoryName, d.SignatoryRole))
	return nil
}

func signOff(name, role string) string {
	switch {
	case name != "" && role != "":
		return fmt.Sprintf("%s\n%s", name, role)
	case name != "":
		return name
	case role != "":
		return role
	default:
		return "Human Resources"
	}
}
