package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Fields(t *testing.T) {
	doc := Document{
		ID:     "0b5c-report.pdf",
		Format: FormatPDF,
		Text:   "page one",
	}

	assert.Equal(t, "0b5c-report.pdf", doc.ID)
	assert.Equal(t, FormatPDF, doc.Format)
	assert.Equal(t, "page one", doc.Text)
}

func TestUpload_JSON(t *testing.T) {
	upload := Upload{Key: "0b5c-notes.txt", URL: "https://example.test/notes?sig=1"}

	data, err := json.Marshal(upload)
	require.NoError(t, err)

	assert.JSONEq(t, `{"key":"0b5c-notes.txt","url":"https://example.test/notes?sig=1"}`, string(data))
}
