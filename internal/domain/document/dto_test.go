package document

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileRequest(rawBytes int) CreateDocumentRequest {
	payload := "data:application/pdf;base64," + strings.Repeat("A", rawBytes/3*4)
	return CreateDocumentRequest{
		MitarbeiterID: "emp-1",
		Dokumenttyp:   "sonstiges",
		DateiInhalt:   &payload,
	}
}

func TestValidate_FileSizeUsesDecodedBytes(t *testing.T) {
	// The limit applies to the decoded payload, not the base64 text, which
	// is a third larger.
	req := fileRequest(4 * 1024 * 1024)
	require.NoError(t, req.Validate())

	req = fileRequest(MaxFileSize)
	require.NoError(t, req.Validate())

	req = fileRequest(MaxFileSize + 3)
	require.Error(t, req.Validate())
}

func TestToResponse_HatDatei(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// List queries report the payload's presence without loading it.
	listed := Document{Dokumenttyp: DokumenttypReisepass, HatDatei: true}
	assert.True(t, ToResponse(listed, today).HatDatei)

	// A content type without a payload is not a file.
	typ := "application/pdf"
	typOnly := Document{Dokumenttyp: DokumenttypReisepass, DateiTyp: &typ}
	assert.False(t, ToResponse(typOnly, today).HatDatei)

	inhalt := "data:application/pdf;base64,QUJD"
	created := Document{Dokumenttyp: DokumenttypReisepass, DateiInhalt: &inhalt}
	assert.True(t, ToResponse(created, today).HatDatei)
}
