package document

import (
	"fmt"
	"strings"
	"time"
)

// Filenames are deterministic: the same metadata always yields the
// same name, so repeat downloads and the export in-flight guard key
// off a stable string.

func SalarySlipFilename(month time.Month, year int) string {
	return fmt.Sprintf("Salary_Slip_%s_%d.pdf", month.String(), year)
}

func CertificateFilename(certificateNumber string) string {
	return fmt.Sprintf("Certificate_%s.pdf", sanitize(certificateNumber))
}

func OfferLetterFilename(employeeName string) string {
	return fmt.Sprintf("Offer_Letter_%s.pdf", sanitize(employeeName))
}

func ExperienceLetterFilename(employeeName string) string {
	return fmt.Sprintf("Experience_Letter_%s.pdf", sanitize(employeeName))
}

// sanitize keeps filenames filesystem- and header-safe: spaces become
// underscores, anything outside [A-Za-z0-9_-] is dropped.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
