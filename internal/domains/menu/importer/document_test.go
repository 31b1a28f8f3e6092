package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument_CSV(t *testing.T) {
	data := []byte("Nom,Prix,Categorie\nHeineken,8,biere\n")

	doc, err := ReadDocument("menu.csv", data)
	require.NoError(t, err)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []string{"Heineken", "8", "biere"}, doc.Rows[1])
	assert.Contains(t, doc.Text, "Heineken")
}

func TestReadDocument_XLSUsesLegacyReader(t *testing.T) {
	// BIFF workbooks are not zip archives; the extraction must not go
	// through excelize.
	_, err := ReadDocument("menu.xls", []byte("not a workbook"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "legacy spreadsheet")
}

func TestReadDocument_UnsupportedExtension(t *testing.T) {
	_, err := ReadDocument("menu.txt", []byte("whatever"))
	assert.Error(t, err)
}

func TestReadDocument_EmptyContent(t *testing.T) {
	_, err := ReadDocument("menu.csv", []byte(" \n"))
	assert.Error(t, err)
}
