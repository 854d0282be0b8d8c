package csvimport_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/gleikstore/gleikstore-api/internal/infrastructure/csvimport"
)

func TestReadWarranties_UTF8ConAlias(t *testing.T) {
	in := "\xef\xbb\xbfIMEI;Modelo;Data_Compra;Fim_Garantia\n" +
		"356789;iPhone 14;2024-01-01;2025-01-01\n" +
		";;;\n" +
		" 123 ; iPhone 13 ;2024-02-01;2024-08-01\n"

	rows, err := csvimport.ReadWarranties(strings.NewReader(in), csvimport.Options{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "356789", rows[0].Request.IMEI)
	assert.Equal(t, "2025-01-01", rows[0].Request.WarrantyEnd)
	assert.Equal(t, 4, rows[1].Line, "la fila vacía cuenta como línea")
	assert.Equal(t, "123", rows[1].Request.IMEI)
	assert.Equal(t, "iPhone 13", rows[1].Request.Model)
}

func TestReadWarranties_Windows1252(t *testing.T) {
	raw, err := charmap.Windows1252.NewEncoder().String("imei,model,purchaseDate,warrantyEnd\n1,Galaxy Édição Ñ,2024-01-01,2024-12-31\n")
	require.NoError(t, err)

	rows, err := csvimport.ReadWarranties(bytes.NewReader([]byte(raw)), csvimport.Options{Comma: ',', Charset: "windows-1252"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Galaxy Édição Ñ", rows[0].Request.Model)
}

func TestReadWarranties_Errores(t *testing.T) {
	_, err := csvimport.ReadWarranties(strings.NewReader("imei;model\n1;x\n"), csvimport.Options{})
	assert.ErrorIs(t, err, csvimport.ErrMissingColumn)

	_, err = csvimport.ReadWarranties(strings.NewReader("imei;model;purchaseDate;warrantyEnd\n"), csvimport.Options{Charset: "ebcdic"})
	assert.Error(t, err)

	_, err = csvimport.ReadWarranties(strings.NewReader(""), csvimport.Options{})
	assert.Error(t, err)
}
