package seal

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"strconv"
	"strings"
)

// Submission is one aggregated field value handed to the pipeline: the
// field's placement plus whatever the signer submitted.
type Submission struct {
	Type  string // signature|initials|text|date|checkbox
	Page  int    // 1-based page number as placed
	X     float64
	Y     float64 // bottom-left origin, PDF points
	W     float64
	H     float64
	Value interface{}
	Font  string
}

// Default signature box, applied when the field rectangle has no extent.
const (
	defaultSigWidth  = 180.0
	defaultSigHeight = 80.0
)

// markKind discriminates the per-type drawing logic so it is exhaustively
// checked where marks are rendered.
type markKind int

const (
	markText markKind = iota
	markCheckbox
	markImage
)

// mark is a validated drawing operation for one page.
type mark struct {
	kind    markKind
	x, y    float64 // bottom-left origin
	w, h    float64
	text    string
	checked bool
	pngData []byte
	name    string // unique image registration name
}

// buildMark validates one submission into a drawable mark. An error means the
// single mark is skipped; it never aborts the seal.
func buildMark(fieldID string, s Submission) (mark, error) {
	switch s.Type {
	case "text", "date":
		return mark{
			kind: markText,
			x:    s.X, y: s.Y,
			text: stringValue(s.Value),
		}, nil
	case "checkbox":
		return mark{
			kind: markCheckbox,
			x:    s.X, y: s.Y,
			checked: truthy(s.Value),
		}, nil
	case "signature", "initials":
		raw, ok := s.Value.(string)
		if !ok || raw == "" {
			return mark{}, fmt.Errorf("field %s: %s value is not an image payload", fieldID, s.Type)
		}
		data, err := decodePNGPayload(raw)
		if err != nil {
			return mark{}, fmt.Errorf("field %s: %w", fieldID, err)
		}
		w, h := s.W, s.H
		if w <= 0 {
			w = defaultSigWidth
		}
		if h <= 0 {
			h = defaultSigHeight
		}
		return mark{
			kind: markImage,
			x:    s.X, y: s.Y, w: w, h: h,
			pngData: data,
			name:    "mark-" + fieldID,
		}, nil
	default:
		return mark{}, fmt.Errorf("field %s: unknown field type %q", fieldID, s.Type)
	}
}

// decodePNGPayload accepts either a data URL ("data:image/png;base64,...") or
// bare base64 and verifies the bytes really decode as PNG, so a malformed
// image can never poison the document writer's sticky error state.
func decodePNGPayload(raw string) ([]byte, error) {
	if i := strings.Index(raw, ","); strings.HasPrefix(raw, "data:") && i >= 0 {
		raw = raw[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode image base64: %w", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return data, nil
}

func stringValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != "" && t != "false" && t != "0"
	case float64:
		return t != 0
	case int:
		return t != 0
	case nil:
		return false
	default:
		return true
	}
}
