package seal

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"
	contribgofpdi "github.com/go-pdf/fpdf/contrib/gofpdi"
	"github.com/phpdave11/gofpdi"
	"go.uber.org/zap"

	"sealgate.io/sealgate/internal/pkg/canonical"
	"sealgate.io/sealgate/internal/pkg/logger"
)

// Result is the output of a successful seal: the flattened document, the
// audit sidecar, and the digests bound into it.
type Result struct {
	FinalPDF       []byte
	AuditJSON      []byte
	SHA256Original string
	SHA256Final    string
	SealedAt       time.Time
}

// Seal flattens every submitted value onto its page of the original document,
// appends a certificate page, and produces the audit sidecar. The output is a
// pure function of the inputs: the same original, values, and sealedAt always
// yield byte-identical artifacts.
//
// Individual malformed values are logged and skipped; only a document-level
// failure returns an error.
func Seal(original []byte, envelopeID string, values map[string]Submission, sealedAt time.Time) (res *Result, err error) {
	// The template importer panics on malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("merge source pages: %v", r)
		}
	}()
	sealedAt = sealedAt.UTC()

	pageCount, pageSizes, err := inspect(original)
	if err != nil {
		return nil, fmt.Errorf("inspect source pdf: %w", err)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(sealedAt)
	pdf.SetModificationDate(sealedAt)
	pdf.SetAutoPageBreak(false, 0)

	imp := contribgofpdi.NewImporter()
	var rs io.ReadSeeker = bytes.NewReader(original)

	byPage := marksByPage(envelopeID, values, pageCount)

	for page := 1; page <= pageCount; page++ {
		w, h := pageSize(pageSizes, page)
		addPage(pdf, w, h)
		tpl := imp.ImportPageFromStream(pdf, &rs, page, "/MediaBox")
		imp.UseImportedTemplate(pdf, tpl, 0, 0, w, h)
		for _, m := range byPage[page] {
			draw(pdf, m, h)
		}
	}

	sha256Original := canonical.SHA256Hex(original)
	writeCertificate(pdf, certificateInfo{
		EnvelopeID:     envelopeID,
		SHA256Original: sha256Original,
		SealedAt:       sealedAt,
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write sealed pdf: %w", err)
	}
	finalPDF := buf.Bytes()
	sha256Final := canonical.SHA256Hex(finalPDF)

	audit, err := canonical.JSON(map[string]interface{}{
		"envelope_id":     envelopeID,
		"sha256_original": sha256Original,
		"sealed_at":       sealedAt.Format(time.RFC3339),
		"sha256_final":    sha256Final,
	})
	if err != nil {
		return nil, fmt.Errorf("encode audit record: %w", err)
	}

	return &Result{
		FinalPDF:       finalPDF,
		AuditJSON:      audit,
		SHA256Original: sha256Original,
		SHA256Final:    sha256Final,
		SealedAt:       sealedAt,
	}, nil
}

// inspect reads page count and media box sizes without touching the reader
// used for template import.
func inspect(original []byte) (int, map[int]map[string]map[string]float64, error) {
	var rs io.ReadSeeker = bytes.NewReader(original)
	probe := gofpdi.NewImporter()

	count := 0
	var sizes map[int]map[string]map[string]float64
	// gofpdi panics on unparsable input; surface that as a normal error.
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("parse pdf: %v", r)
			}
		}()
		probe.SetSourceStream(&rs)
		count = probe.GetNumPages()
		sizes = probe.GetPageSizes()
		return nil
	}()
	if err != nil {
		return 0, nil, err
	}
	if count < 1 {
		return 0, nil, fmt.Errorf("document has no pages")
	}
	return count, sizes, nil
}

func pageSize(sizes map[int]map[string]map[string]float64, page int) (w, h float64) {
	w, h = 612.0, 792.0
	if box, ok := sizes[page]["/MediaBox"]; ok {
		if box["w"] > 0 && box["h"] > 0 {
			w, h = box["w"], box["h"]
		}
	}
	return w, h
}

func addPage(pdf *fpdf.Fpdf, w, h float64) {
	orientation := "P"
	size := fpdf.SizeType{Wd: w, Ht: h}
	if w > h {
		orientation = "L"
		size = fpdf.SizeType{Wd: h, Ht: w}
	}
	pdf.AddPageFormat(orientation, size)
}

// marksByPage validates every submission and buckets the survivors by page,
// clamping out-of-range placements to the nearest real page. Iteration order
// is made deterministic by sorting marks within a page by registration name.
func marksByPage(envelopeID string, values map[string]Submission, pageCount int) map[int][]mark {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	byPage := make(map[int][]mark)
	for _, id := range ids {
		s := values[id]
		m, err := buildMark(id, s)
		if err != nil {
			logger.Warn("skipping malformed field value",
				zap.String("envelope_id", envelopeID),
				zap.String("field_id", id),
				zap.Error(err))
			continue
		}
		page := s.Page
		if page < 1 {
			page = 1
		}
		if page > pageCount {
			page = pageCount
		}
		byPage[page] = append(byPage[page], m)
	}
	return byPage
}

// draw renders one mark onto the current page. Coordinates arrive with a
// bottom-left origin and are converted to the writer's top-left origin.
func draw(pdf *fpdf.Fpdf, m mark, pageH float64) {
	switch m.kind {
	case markText:
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(m.x, pageH-m.y, m.text)
	case markCheckbox:
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(1)
		pdf.Rect(m.x, pageH-m.y-10, 10, 10, "D")
		if m.checked {
			pdf.Line(m.x, pageH-m.y, m.x+10, pageH-m.y-10)
			pdf.Line(m.x, pageH-m.y-10, m.x+10, pageH-m.y)
		}
	case markImage:
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(m.name, opts, bytes.NewReader(m.pngData))
		pdf.ImageOptions(m.name, m.x, pageH-m.y-m.h, m.w, m.h, false, opts, 0, "")
	}
}
