package seal

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

type certificateInfo struct {
	EnvelopeID     string
	SHA256Original string
	SealedAt       time.Time
}

const (
	certPageW   = 612.0 // US Letter, points
	certPageH   = 792.0
	certMargin  = 72.0
	certLineGap = 14.0
	certMaxLine = 95
)

// writeCertificate appends the completion certificate as the final page.
func writeCertificate(pdf *fpdf.Fpdf, info certificateInfo) {
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: certPageW, Ht: certPageH})

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(certMargin, certMargin-30, "Certificate of Completion")

	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Envelope ID: %s", info.EnvelopeID),
		fmt.Sprintf("Original document SHA-256: %s", info.SHA256Original),
		fmt.Sprintf("Sealed at: %s", info.SealedAt.Format(time.RFC3339)),
	}
	y := certMargin
	for _, line := range lines {
		if len(line) > certMaxLine {
			line = line[:certMaxLine]
		}
		if y > certPageH-certMargin {
			pdf.AddPageFormat("P", fpdf.SizeType{Wd: certPageW, Ht: certPageH})
			pdf.SetFont("Helvetica", "", 10)
			y = certMargin - 30
		}
		pdf.Text(certMargin, y, line)
		y += certLineGap
	}
}
