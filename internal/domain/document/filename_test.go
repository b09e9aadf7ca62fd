package document

import (
	"testing"
	"time"
)

func TestSalarySlipFilename(t *testing.T) {
	tests := []struct {
		month time.Month
		year  int
		want  string
	}{
		{time.March, 2025, "Salary_Slip_March_2025.pdf"},
		{time.December, 2024, "Salary_Slip_December_2024.pdf"},
		{time.January, 2026, "Salary_Slip_January_2026.pdf"},
	}

	for _, tt := range tests {
		if got := SalarySlipFilename(tt.month, tt.year); got != tt.want {
			t.Errorf("SalarySlipFilename(%s, %d) = %q, want %q", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestSalarySlipFilename_Deterministic(t *testing.T) {
	first := SalarySlipFilename(time.March, 2025)
	second := SalarySlipFilename(time.March, 2025)
	if first != second {
		t.Errorf("same metadata produced different filenames: %q vs %q", first, second)
	}
}

func TestLetterFilenames(t *testing.T) {
	if got := OfferLetterFilename("John Doe"); got != "Offer_Letter_John_Doe.pdf" {
		t.Errorf("OfferLetterFilename = %q", got)
	}
	if got := ExperienceLetterFilename("  Priya Sharma "); got != "Experience_Letter_Priya_Sharma.pdf" {
		t.Errorf("ExperienceLetterFilename = %q", got)
	}
	if got := CertificateFilename("CERT/2025/042"); got != "Certificate_CERT2025042.pdf" {
		t.Errorf("CertificateFilename = %q", got)
	}
}
