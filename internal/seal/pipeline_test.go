package seal

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealgate.io/sealgate/internal/pkg/canonical"
	"sealgate.io/sealgate/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// sourcePDF builds a small two-page document to seal against.
func sourcePDF(t *testing.T) []byte {
	t.Helper()
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(72, 72, "Subscription Agreement")
	pdf.AddPage()
	pdf.Text(72, 72, "Signature Page")
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	return buf.Bytes()
}

func signaturePNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func sampleValues(t *testing.T) map[string]Submission {
	return map[string]Submission{
		"f-sig": {
			Type: "signature", Page: 2,
			X: 72, Y: 144, W: 0, H: 0,
			Value: signaturePNG(t),
		},
		"f-name": {
			Type: "text", Page: 1,
			X: 72, Y: 600,
			Value: "Alice Ystad",
		},
		"f-date": {
			Type: "date", Page: 2,
			X: 300, Y: 144,
			Value: "2026-08-30",
		},
		"f-accredited": {
			Type: "checkbox", Page: 1,
			X: 72, Y: 540,
			Value: true,
		},
	}
}

func TestSealDeterministic(t *testing.T) {
	original := sourcePDF(t)
	sealedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	first, err := Seal(original, "env-1", sampleValues(t), sealedAt)
	require.NoError(t, err)
	second, err := Seal(original, "env-1", sampleValues(t), sealedAt)
	require.NoError(t, err)

	assert.Equal(t, first.FinalPDF, second.FinalPDF)
	assert.Equal(t, first.AuditJSON, second.AuditJSON)
	assert.Equal(t, first.SHA256Final, second.SHA256Final)
}

func TestSealAuditRecord(t *testing.T) {
	original := sourcePDF(t)
	sealedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	res, err := Seal(original, "env-7", sampleValues(t), sealedAt)
	require.NoError(t, err)

	var audit map[string]string
	require.NoError(t, json.Unmarshal(res.AuditJSON, &audit))
	assert.Equal(t, "env-7", audit["envelope_id"])
	assert.Equal(t, canonical.SHA256Hex(original), audit["sha256_original"])
	assert.Equal(t, canonical.SHA256Hex(res.FinalPDF), audit["sha256_final"])
	assert.Equal(t, "2026-08-30T12:00:00Z", audit["sealed_at"])
	assert.Equal(t, res.SHA256Original, audit["sha256_original"])
	assert.Equal(t, res.SHA256Final, audit["sha256_final"])
}

func TestSealSkipsMalformedValues(t *testing.T) {
	original := sourcePDF(t)
	sealedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	values := sampleValues(t)
	values["f-broken"] = Submission{
		Type: "signature", Page: 1,
		X: 72, Y: 400,
		Value: "data:image/png;base64,%%%not-base64%%%",
	}
	values["f-not-an-image"] = Submission{
		Type: "initials", Page: 1,
		X: 72, Y: 360,
		Value: base64.StdEncoding.EncodeToString([]byte("plain text, not png")),
	}
	values["f-unknown"] = Submission{
		Type: "hologram", Page: 1,
		X: 72, Y: 320,
		Value: "x",
	}

	res, err := Seal(original, "env-2", values, sealedAt)
	require.NoError(t, err)
	require.NotEmpty(t, res.FinalPDF)

	clean, err := Seal(original, "env-2", sampleValues(t), sealedAt)
	require.NoError(t, err)
	assert.Equal(t, clean.FinalPDF, res.FinalPDF, "skipped values must not change output")
}

func TestSealClampsOutOfRangePages(t *testing.T) {
	original := sourcePDF(t)
	sealedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	values := map[string]Submission{
		"f-high": {Type: "text", Page: 99, X: 72, Y: 100, Value: "last page"},
		"f-low":  {Type: "text", Page: 0, X: 72, Y: 100, Value: "first page"},
	}
	res, err := Seal(original, "env-3", values, sealedAt)
	require.NoError(t, err)
	require.NotEmpty(t, res.FinalPDF)

	clamped := map[string]Submission{
		"f-high": {Type: "text", Page: 2, X: 72, Y: 100, Value: "last page"},
		"f-low":  {Type: "text", Page: 1, X: 72, Y: 100, Value: "first page"},
	}
	want, err := Seal(original, "env-3", clamped, sealedAt)
	require.NoError(t, err)
	assert.Equal(t, want.FinalPDF, res.FinalPDF)
}

func TestSealRejectsGarbageInput(t *testing.T) {
	_, err := Seal([]byte("not a pdf at all"), "env-4", nil, time.Now())
	assert.Error(t, err)
}

func TestBuildMarkDefaultsSignatureBox(t *testing.T) {
	m, err := buildMark("f1", Submission{Type: "signature", Value: signaturePNG(t)})
	require.NoError(t, err)
	assert.Equal(t, defaultSigWidth, m.w)
	assert.Equal(t, defaultSigHeight, m.h)
}

func TestTruthy(t *testing.T) {
	assert.True(t, truthy(true))
	assert.True(t, truthy("yes"))
	assert.True(t, truthy(1.0))
	assert.False(t, truthy(false))
	assert.False(t, truthy(""))
	assert.False(t, truthy("false"))
	assert.False(t, truthy(nil))
}
