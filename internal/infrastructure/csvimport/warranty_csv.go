// Package csvimport lee planillas de garantías exportadas por el sistema de caja de la loja.
package csvimport

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
)

// ErrMissingColumn la cabecera no trae alguna columna obligatoria.
var ErrMissingColumn = errors.New("csvimport: columna obligatoria ausente")

// Options formato del archivo.
type Options struct {
	Comma   rune   // separador; por defecto ';'
	Charset string // utf-8 (defecto), latin1 o windows-1252
}

// Row fila leída; Line es el número de línea en el archivo (la cabecera es la 1).
type Row struct {
	Line    int
	Request dto.UpsertWarrantyRequest
}

// alias de cabecera aceptados, en minúsculas.
var columns = map[string][]string{
	"imei":         {"imei"},
	"model":        {"model", "modelo"},
	"purchaseDate": {"purchasedate", "data_compra", "datacompra"},
	"warrantyEnd":  {"warrantyend", "fim_garantia", "fimgarantia"},
}

// ReadWarranties lee todas las filas. Las filas vacías se saltan; la validación de fechas
// queda para WarrantyUseCase.Upsert.
func ReadWarranties(r io.Reader, opts Options) ([]Row, error) {
	dec, err := decoder(opts.Charset)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec.NewDecoder())
	}
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && string(b) == "\xef\xbb\xbf" {
		_, _ = br.Discard(3)
	}

	cr := csv.NewReader(br)
	cr.Comma = ';'
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csvimport: leer cabecera: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvimport: %w", err)
		}
		if blank(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, Row{
			Line: line,
			Request: dto.UpsertWarrantyRequest{
				IMEI:         field(rec, idx["imei"]),
				Model:        field(rec, idx["model"]),
				PurchaseDate: field(rec, idx["purchaseDate"]),
				WarrantyEnd:  field(rec, idx["warrantyEnd"]),
			},
		})
	}
	return rows, nil
}

func decoder(charset string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	}
	return nil, fmt.Errorf("csvimport: charset no soportado %q", charset)
}

func columnIndex(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	idx := make(map[string]int, len(columns))
	for name, aliases := range columns {
		found := false
		for _, a := range aliases {
			if i, ok := pos[a]; ok {
				idx[name] = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return idx, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
