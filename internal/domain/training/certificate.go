package training

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// Renderer produces the certificate document and returns its path.
type Renderer interface {
	Render(data CertificateData) (string, error)
}

// PDFRenderer writes A4 landscape completion certificates under Dir.
type PDFRenderer struct {
	Dir string
}

func NewPDFRenderer(dir string) *PDFRenderer {
	return &PDFRenderer{Dir: dir}
}

func (r *PDFRenderer) Render(data CertificateData) (string, error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(r.Dir, fmt.Sprintf("certificate-%d.pdf", data.EnrollmentID))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 30, "Certificate of Completion", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 12, "This certifies that", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 14, fmt.Sprintf("%s %s", data.FirstName, data.LastName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 12, "has successfully completed the training program", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, fmt.Sprintf("%s (%s)", data.ProgramTitle, data.ProgramCode), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 16, fmt.Sprintf("Issued on %s", data.CompletedDate.Format("2006-01-02")), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
