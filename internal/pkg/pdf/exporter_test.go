package pdf

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSlip() SalarySlipDocument {
	return SalarySlipDocument{
		Name:           "Salary_Slip_March_2025.pdf",
		CompanyName:    "NexHR Private Limited",
		CompanyAddress: "Bengaluru, India",
		EmployeeName:   "Priya Sharma",
		EmployeeCode:   "2023-0042",
		Position:       "Software Engineer",
		PeriodLabel:    "March 2025",
		Earnings: []AmountLine{
			{Description: "Basic Pay", Amount: "Rs. 30,000"},
			{Description: "HRA", Amount: "Rs. 12,000"},
		},
		Deductions: []AmountLine{
			{Description: "Professional Tax", Amount: "Rs. 200"},
		},
		TotalEarnings:   "Rs. 42,000",
		TotalDeductions: "Rs. 200",
		NetSalary:       "Rs. 41,800",
		NetInWords:      "Forty One Thousand Eight Hundred",
	}
}

func TestExporter_ProducesPDF(t *testing.T) {
	exporter := NewExporter()

	docs := []struct {
		key string
		doc Document
	}{
		{"slip-1", sampleSlip()},
		{"cert-1", CertificateDocument{
			Name:              "Certificate_CERT2025042.pdf",
			CompanyName:       "NexHR Private Limited",
			CertificateNumber: "CERT/2025/042",
			NameOnCertificate: "Priya Sharma",
			CourseName:        "Go Backend Development",
			StartDate:         "2025-01-15",
			CompletionDate:    "2025-03-15",
			Duration:          "2 Months",
			IssueDate:         "2025-03-20",
		}},
		{"offer-letter:emp-1", OfferLetterDocument{
			Name:         "Offer_Letter_Priya_Sharma.pdf",
			CompanyName:  "NexHR Private Limited",
			EmployeeName: "Priya Sharma",
			Position:     "Software Engineer",
			StartDate:    "2025-04-01",
			AnnualSalary: "Rs. 12,00,000",
			IssueDate:    "2025-03-10",
		}},
		{"experience-letter:emp-1", ExperienceLetterDocument{
			Name:            "Experience_Letter_Priya_Sharma.pdf",
			CompanyName:     "NexHR Private Limited",
			EmployeeName:    "Priya Sharma",
			Position:        "Software Engineer",
			JoiningDate:     "2023-06-01",
			LastWorkingDate: "2025-03-31",
			IssueDate:       "2025-04-02",
		}},
	}

	for _, tc := range docs {
		got, err := exporter.Export(tc.key, tc.doc)
		require.NoError(t, err, "export %s", tc.doc.Filename())
		assert.True(t, bytes.HasPrefix(got, []byte("%PDF")), "%s must start with the PDF magic", tc.doc.Filename())
		assert.Greater(t, len(got), 500, "%s looks suspiciously small", tc.doc.Filename())
	}
}

func TestExporter_ConcurrentSameKey(t *testing.T) {
	exporter := NewExporter()
	doc := sampleSlip()

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = exporter.Export("slip-1", doc)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		require.NoError(t, errs[i])
		assert.True(t, bytes.HasPrefix(results[i], []byte("%PDF")))
	}
}

// Slip download filenames carry only the period, so two employees' slips
// for the same month share a filename. Exporting them concurrently under
// their own keys must never hand one employee the other's slip.
func TestExporter_ConcurrentSameFilenameDifferentKeys(t *testing.T) {
	exporter := NewExporter()

	slipA := sampleSlip()
	slipB := sampleSlip()
	slipB.EmployeeName = "Rahul Verma"
	slipB.EmployeeCode = "2023-0043"
	slipB.NetSalary = "Rs. 55,000"
	slipB.NetInWords = "Fifty Five Thousand"
	require.Equal(t, slipA.Filename(), slipB.Filename())

	for run := 0; run < 20; run++ {
		var wg sync.WaitGroup
		var gotA, gotB []byte
		var errA, errB error

		wg.Add(2)
		go func() {
			defer wg.Done()
			gotA, errA = exporter.Export("slip-a", slipA)
		}()
		go func() {
			defer wg.Done()
			gotB, errB = exporter.Export("slip-b", slipB)
		}()
		wg.Wait()

		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.False(t, bytes.Equal(gotA, gotB), "distinct slips must not share rendered bytes")
	}
}
