// Package pdf gera a versão imprimível da nota fiscal da oficina.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Mecânica Guaianases  │  N° da nota + Data           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nome + ID  |  MECÂNICO: nome                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Serviço | Local | P.Unit | Subtotal           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Serviços / Peças / Taxa / Desconto / TOTAL          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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
	"github.com/shopspring/decimal"

	"github.com/guaianases/oficina-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const workshopName = "Mecânica Guaianases"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa workshop.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF gera o PDF e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, invoice *entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota Fiscal "+invoice.InvoiceNumber, true).
		WithAuthor(workshopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(invoice)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome da oficina (esq) e número + data da nota (dir).
func headerRow(invoice *entity.Invoice) core.Row {
	data := invoice.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(workshopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Serviços mecânicos e venda de veículos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("NOTA FISCAL DE SERVIÇO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: cliente (esq) e mecânico responsável (dir).
func partiesRow(invoice *entity.Invoice) core.Row {
	local := "Na oficina"
	if invoice.Location == entity.LocationExternal {
		local = "Atendimento externo"
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("ID: "+invoice.ClientID+"   |   Categoria: "+invoice.ClientCategory, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("MECÂNICO RESPONSÁVEL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.MechanicName, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
			text.New(local, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de serviços.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Serviço", 5, align.Left),
		h("Local", 2, align.Center),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableItemRows: uma linha por serviço da nota.
func tableItemRows(items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		local := "Oficina"
		if it.IsExternal {
			local = "Externo"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.ServiceName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				local,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+it.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: bloco de totais alinhado à direita. Peças, taxa e desconto só
// aparecem quando têm valor.
func totalsRows(invoice *entity.Invoice) []core.Row {
	totalRow := func(label, value string, grand bool) core.Row {
		size := float64(9)
		color := (*props.Color)(nil)
		if grand {
			size = 10
			color = colorPrimary
		}
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: size, Align: align.Right, Color: color, Right: 2,
			})),
			col.New(3).Add(text.New(value, props.Text{
				Style: fontstyle.Bold, Size: size, Align: align.Right, Color: color, Right: 1,
			})),
		)
	}
	money := func(d decimal.Decimal) string { return "R$ " + d.StringFixed(2) }

	rows := []core.Row{
		totalRow("Serviços:", money(invoice.ServicesSubtotal), false),
	}
	if invoice.PartsSubtotal.IsPositive() {
		rows = append(rows, totalRow("Peças extras:", money(invoice.PartsSubtotal), false))
	}
	if invoice.PartsTax.IsPositive() {
		taxa := fmt.Sprintf("Taxa de peças (%s%%):", invoice.PartsTaxPercent.StringFixed(0))
		rows = append(rows, totalRow(taxa, money(invoice.PartsTax), false))
	}
	if invoice.DiscountAmount.IsPositive() {
		rows = append(rows, totalRow("Desconto:", "- "+money(invoice.DiscountAmount), false))
	}
	rows = append(rows, totalRow("TOTAL:", money(invoice.Total), true))
	return rows
}

// footerRow: texto de agradecimento no rodapé.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			workshopName+" agradece a preferência. Guarde esta nota como comprovante do serviço.",
			props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 2},
		),
	))
}
