// Package pdf genera el certificado de garantía en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Gleikstore            │  Certificado + fecha emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  APARELHO: Modelo / IMEI                                    │
//	│  TABLA: Compra | Fin garantía | Días restantes | Estado      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR a la consulta pública + leyenda                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gleikstore/gleikstore-api/internal/application/ports"
	"github.com/gleikstore/gleikstore-api/internal/domain/warranty"
)

var _ ports.WarrantyCertificateGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 17, Green: 17, Blue: 17}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorActive   = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorInactive = &props.Color{Red: 185, Green: 28, Blue: 28}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.WarrantyCertificateGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	storeName string
	now       func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(storeName string) *MarotoPDFGenerator {
	if storeName == "" {
		storeName = "Gleikstore"
	}
	return &MarotoPDFGenerator{storeName: storeName, now: time.Now}
}

// GenerateWarrantyCertificate genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateWarrantyCertificate(_ context.Context, s warranty.Status, lookupURL string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Certificado de Garantia", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(deviceRow(s))
	m.AddRows(line.NewRow(4))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableValueRow(s))
	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(lookupURL)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar certificado: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow() core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("CERTIFICADO DE GARANTIA", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido em "+g.now().Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func deviceRow(s warranty.Status) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("APARELHO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3,
			}),
			text.New(s.Model, props.Text{Style: fontstyle.Bold, Size: 12, Top: 8}),
			text.New("IMEI: "+s.IMEI, props.Text{Size: 9, Top: 15, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string) core.Col {
		return col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Data da compra"),
		h("Fim da garantia"),
		h("Dias restantes"),
		h("Status"),
	)
}

func tableValueRow(s warranty.Status) core.Row {
	v := func(value string, c *props.Color) core.Col {
		return col.New(3).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: c, Top: 1,
		}))
	}
	return row.New(10).Add(
		v(s.PurchaseDate.Format(dateLayout), colorPrimary),
		v(s.WarrantyEnd.Format(dateLayout), colorPrimary),
		v(fmt.Sprintf("%d", s.DaysRemaining), colorPrimary),
		v(StatusLabel(s), statusColor(s)),
	)
}

// footerRows: QR a la consulta pública y leyenda.
func footerRows(lookupURL string) []core.Row {
	rows := []core.Row{row.New(3)}
	if lookupURL != "" {
		rows = append(rows, row.New(45).Add(
			col.New(4).Add(code.NewQr(lookupURL, props.Rect{Percent: 95, Center: true})),
			col.New(8).Add(
				text.New("Escaneie o QR code para consultar\na garantia atualizada deste aparelho.", props.Text{
					Size: 9, Top: 6, Left: 3, Color: colorGray,
				}),
				text.New(lookupURL, props.Text{Size: 7, Top: 22, Left: 3, Color: colorGray}),
			),
		))
	}
	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New(
			"A garantia cobre defeitos de funcionamento e não cobre danos por queda, líquidos ou mau uso. "+
				"Apresente este certificado junto com o aparelho na loja.",
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// StatusLabel texto del estado para el certificado.
func StatusLabel(s warranty.Status) string {
	if s.IsActive {
		return "ATIVA"
	}
	return "EXPIRADA"
}

func statusColor(s warranty.Status) *props.Color {
	if s.IsActive {
		return colorActive
	}
	return colorInactive
}
