package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/quote"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func svcTrocaOleo() *entity.Service {
	return &entity.Service{
		ID:           "svc-oleo",
		Name:         "Troca de óleo",
		PriceInShop:  decimal.NewFromInt(100),
		PriceOffsite: decimal.NewFromInt(150),
		IsActive:     true,
	}
}

func svcFreio() *entity.Service {
	return &entity.Service{
		ID:           "svc-freio",
		Name:         "Revisão de freios",
		PriceInShop:  decimal.NewFromInt(300),
		PriceOffsite: decimal.NewFromInt(400),
		IsActive:     true,
	}
}

func assertMoney(t *testing.T, expected string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(expected)),
		"%s: esperado %s, veio %s", msg, expected, got.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// AddService / SetQuantity
// ──────────────────────────────────────────────────────────────────────────────

// Adicionar o mesmo serviço duas vezes incrementa a quantidade de uma única
// linha, nunca cria duplicata.
func TestAddService_DuasVezesUmaLinha(t *testing.T) {
	st := quote.NewState()
	svc := svcTrocaOleo()

	st.AddService(svc)
	st.AddService(svc)

	require.Len(t, st.Lines, 1, "mesmo serviço duas vezes deve virar uma linha")
	assert.Equal(t, 2, st.Lines[0].Quantity)
	assertMoney(t, "200", st.Lines[0].Subtotal, "subtotal da linha")
}

// O flag externo da linha congela na primeira inserção: mudar o local do
// orçamento depois não reprecifica linhas existentes.
func TestAddService_FlagExternoCongelaNaInsercao(t *testing.T) {
	st := quote.NewState()
	svc := svcTrocaOleo()

	st.AddService(svc) // local interno: 100

	st.Location = entity.LocationExternal
	st.AddService(svc) // incrementa a MESMA linha com o flag antigo

	require.Len(t, st.Lines, 1)
	assert.False(t, st.Lines[0].IsExternal, "flag deve continuar interno")
	assertMoney(t, "200", st.Lines[0].Subtotal, "2 × preço interno, não externo")
}

// Linha criada com o orçamento em local externo usa o preço externo.
func TestAddService_LocalExternoUsaPriceOffsite(t *testing.T) {
	st := quote.NewState()
	st.Location = entity.LocationExternal

	st.AddService(svcTrocaOleo())

	require.Len(t, st.Lines, 1)
	assert.True(t, st.Lines[0].IsExternal)
	assertMoney(t, "150", st.Lines[0].UnitPrice, "preço externo")
}

func TestSetQuantity_Atualiza(t *testing.T) {
	st := quote.NewState()
	st.AddService(svcTrocaOleo())

	st.SetQuantity("svc-oleo", 5)

	assert.Equal(t, 5, st.Lines[0].Quantity)
	assertMoney(t, "500", st.Lines[0].Subtotal, "subtotal recalculado")
}

// Quantidade zero remove a linha; não sobra linha fantasma com quantidade 0.
func TestSetQuantity_ZeroRemoveLinha(t *testing.T) {
	st := quote.NewState()
	st.AddService(svcTrocaOleo())

	st.SetQuantity("svc-oleo", 0)
	assert.Empty(t, st.Lines, "quantidade zero deve remover a linha")

	// Chamada posterior com o mesmo id é no-op, como se nunca existisse.
	st.SetQuantity("svc-oleo", 3)
	assert.Empty(t, st.Lines)
}

func TestSetQuantity_NegativaRemoveLinha(t *testing.T) {
	st := quote.NewState()
	st.AddService(svcTrocaOleo())

	st.SetQuantity("svc-oleo", -2)
	assert.Empty(t, st.Lines)
}

// ──────────────────────────────────────────────────────────────────────────────
// Taxa de peças por categoria
// ──────────────────────────────────────────────────────────────────────────────

func TestTaxPercentFor_Tabela(t *testing.T) {
	assertMoney(t, "30", quote.TaxPercentFor(quote.CategoryCliente), "cliente")
	assertMoney(t, "20", quote.TaxPercentFor(quote.CategoryPolicial), "policial")
	assertMoney(t, "15", quote.TaxPercentFor(quote.CategorySAMU), "samu")
	assertMoney(t, "30", quote.TaxPercentFor("desconhecida"), "categoria desconhecida cai em cliente")
}

// Com valor de peças positivo, trocar a categoria rederiva a taxa.
func TestSyncPartsTax_CategoriaRederivaComPecas(t *testing.T) {
	st := quote.NewState()
	st.SetExtraParts(decimal.NewFromInt(100))
	assertMoney(t, "30", st.PartsTaxPercent, "cliente default")

	st.SetClientCategory(quote.CategoryPolicial)
	assertMoney(t, "20", st.PartsTaxPercent, "taxa segue a nova categoria")
}

// Zerar o valor de peças NÃO reseta a taxa: ela fica com o último valor.
// Comportamento assimétrico intencional da calculadora.
func TestSyncPartsTax_ZerarPecasPreservaTaxa(t *testing.T) {
	st := quote.NewState()
	st.SetClientCategory(quote.CategorySAMU)
	st.SetExtraParts(decimal.NewFromInt(50))
	assertMoney(t, "15", st.PartsTaxPercent, "taxa samu aplicada")

	st.SetExtraParts(decimal.Zero)
	assertMoney(t, "15", st.PartsTaxPercent, "taxa preservada com peças zeradas")

	// Sem peças, trocar a categoria também não mexe na taxa.
	st.SetClientCategory(quote.CategoryCliente)
	assertMoney(t, "15", st.PartsTaxPercent, "sem peças a taxa não rederiva")
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals: cenários de fechamento
// ──────────────────────────────────────────────────────────────────────────────

// 1 serviço interno de 100, quantidade 2, sem peças e sem desconto.
func TestComputeTotals_SomenteServicos(t *testing.T) {
	st := quote.NewState()
	st.AddService(svcTrocaOleo())
	st.SetQuantity("svc-oleo", 2)

	totals := st.ComputeTotals()

	assertMoney(t, "200", totals.ServicesSubtotal, "serviços")
	assertMoney(t, "0", totals.PartsSubtotal, "peças")
	assertMoney(t, "0", totals.PartsTax, "taxa")
	assertMoney(t, "200", totals.Subtotal, "subtotal")
	assertMoney(t, "0", totals.DiscountAmount, "desconto")
	assertMoney(t, "200", totals.Total, "total")
}

// Peças 100 com categoria policial: taxa 20% => 20 de taxa, 120 no subtotal.
func TestComputeTotals_PecasComTaxaPolicial(t *testing.T) {
	st := quote.NewState()
	st.SetClientCategory(quote.CategoryPolicial)
	st.SetExtraParts(decimal.NewFromInt(100))

	totals := st.ComputeTotals()

	assertMoney(t, "100", totals.PartsSubtotal, "peças")
	assertMoney(t, "20", totals.PartsTax, "taxa 20%")
	assertMoney(t, "120", totals.Subtotal, "subtotal = peças + taxa")
	assertMoney(t, "120", totals.Total, "total")
}

// Serviços 300, desconto 20 em valor + 10% => desconto 50, total 250.
func TestComputeTotals_DescontoValorMaisPercentual(t *testing.T) {
	st := quote.NewState()
	st.AddService(svcFreio())
	st.DiscountValue = decimal.NewFromInt(20)
	st.DiscountPercent = decimal.NewFromInt(10)

	totals := st.ComputeTotals()

	assertMoney(t, "300", totals.ServicesSubtotal, "serviços")
	assertMoney(t, "50", totals.DiscountAmount, "20 + 10% de 300")
	assertMoney(t, "250", totals.Total, "total")
}

// Desconto maior que o subtotal trava o total em zero, nunca negativo.
func TestComputeTotals_TotalNuncaNegativo(t *testing.T) {
	st := quote.NewState()
	st.AddService(&entity.Service{
		ID:          "svc-barato",
		PriceInShop: decimal.NewFromInt(50),
		IsActive:    true,
	})
	st.DiscountValue = decimal.NewFromInt(10000)

	totals := st.ComputeTotals()

	assertMoney(t, "0", totals.Total, "total travado em zero")
	assertMoney(t, "10000", totals.DiscountAmount, "desconto reportado por inteiro")
}

// Mesmo estado, mesmo resultado: fechar duas vezes não muda nada.
func TestComputeTotals_Idempotente(t *testing.T) {
	st := quote.NewState()
	st.AddService(svcTrocaOleo())
	st.SetExtraParts(decimal.NewFromFloat(33.33))
	st.DiscountPercent = decimal.NewFromInt(7)

	t1 := st.ComputeTotals()
	t2 := st.ComputeTotals()

	assert.True(t, t1.ServicesSubtotal.Equal(t2.ServicesSubtotal))
	assert.True(t, t1.PartsTax.Equal(t2.PartsTax))
	assert.True(t, t1.Subtotal.Equal(t2.Subtotal))
	assert.True(t, t1.DiscountAmount.Equal(t2.DiscountAmount))
	assert.True(t, t1.Total.Equal(t2.Total))
}

// Cada campo arredonda a 2 casas a partir da precisão cheia.
func TestComputeTotals_ArredondamentoPorCampo(t *testing.T) {
	st := quote.NewState()
	st.SetExtraParts(decimal.RequireFromString("10.555"))

	totals := st.ComputeTotals()

	// peças 10.555 -> 10.56 (só na saída); taxa 30% de 10.555 = 3.1665 -> 3.17
	assertMoney(t, "10.56", totals.PartsSubtotal, "peças arredondadas")
	assertMoney(t, "3.17", totals.PartsTax, "taxa arredondada da precisão cheia")
	// subtotal usa os valores cheios: 10.555 + 3.1665 = 13.7215 -> 13.72
	assertMoney(t, "13.72", totals.Subtotal, "subtotal da precisão cheia")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reset
// ──────────────────────────────────────────────────────────────────────────────

func TestReset_DescartaTudo(t *testing.T) {
	st := quote.NewState()
	st.AddService(svcTrocaOleo())
	st.ClientID = "c-1"
	st.MechanicName = "João"
	st.SetExtraParts(decimal.NewFromInt(10))

	fresh := st.Reset(false)

	assert.Empty(t, fresh.Lines)
	assert.Empty(t, fresh.ClientID)
	assert.Empty(t, fresh.MechanicName, "sem keepMechanic o nome some")
	assert.Equal(t, quote.CategoryCliente, fresh.ClientCategory)
	assert.Equal(t, entity.LocationInternal, fresh.Location)
}

func TestReset_PreservaMecanico(t *testing.T) {
	st := quote.NewState()
	st.MechanicName = "João"
	st.ClientID = "c-1"

	fresh := st.Reset(true)

	assert.Equal(t, "João", fresh.MechanicName, "mecânico logado mantém o nome")
	assert.Empty(t, fresh.ClientID)
}
