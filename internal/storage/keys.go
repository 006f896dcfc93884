package storage

import "fmt"

// Artifact naming is deterministic and derivable from ids alone, so any
// consumer can locate blobs without a side index.

// UploadKey locates an original document upload.
func UploadKey(projectID, filename string) string {
	return fmt.Sprintf("projects/%s/uploads/%s", projectID, filename)
}

// FinalPDFKey locates an envelope's sealed document.
func FinalPDFKey(projectID, envelopeID string) string {
	return fmt.Sprintf("projects/%s/final/envelopes/%s.pdf", projectID, envelopeID)
}

// FinalAuditKey locates an envelope's audit summary.
func FinalAuditKey(projectID, envelopeID string) string {
	return fmt.Sprintf("projects/%s/final/envelopes/%s.audit.json", projectID, envelopeID)
}
