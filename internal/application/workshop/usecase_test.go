package workshop_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/application/workshop"
	"github.com/guaianases/oficina-api/internal/domain"
	"github.com/guaianases/oficina-api/internal/domain/access"
	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeServiceRepo struct {
	services map[string]*entity.Service
}

func (f *fakeServiceRepo) Create(s *entity.Service) error { f.services[s.ID] = s; return nil }
func (f *fakeServiceRepo) GetByID(id string) (*entity.Service, error) {
	return f.services[id], nil
}
func (f *fakeServiceRepo) ListActive() ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range f.services {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeServiceRepo) Update(s *entity.Service) error { f.services[s.ID] = s; return nil }
func (f *fakeServiceRepo) Deactivate(id string) error {
	if s, ok := f.services[id]; ok {
		s.IsActive = false
	}
	return nil
}

type fakeInvoiceRepo struct {
	created   []*entity.Invoice
	createErr error
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, inv)
	return nil
}
func (f *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range f.created {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}
func (f *fakeInvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	for _, inv := range f.created {
		if inv.InvoiceNumber == number {
			return inv, nil
		}
	}
	return nil, nil
}
func (f *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	return f.created, nil
}
func (f *fakeInvoiceRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.created {
		if inv.ClientID == clientID {
			out = append(out, inv)
		}
	}
	return out, nil
}
func (f *fakeInvoiceRepo) Delete(id string) error { return nil }

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (f *fakeClientRepo) Create(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return f.clients[id], nil
}
func (f *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }

type fakeMechanicRepo struct {
	mechanics map[string]*entity.Mechanic
}

func (f *fakeMechanicRepo) Create(m *entity.Mechanic) error { f.mechanics[m.ID] = m; return nil }
func (f *fakeMechanicRepo) GetByID(id string) (*entity.Mechanic, error) {
	return f.mechanics[id], nil
}
func (f *fakeMechanicRepo) GetByEmail(email string) (*entity.Mechanic, error) {
	for _, m := range f.mechanics {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, nil
}
func (f *fakeMechanicRepo) List(limit, offset int) ([]*entity.Mechanic, error) { return nil, nil }
func (f *fakeMechanicRepo) Update(m *entity.Mechanic) error                    { f.mechanics[m.ID] = m; return nil }
func (f *fakeMechanicRepo) Delete(id string) error                             { delete(f.mechanics, id); return nil }

type fakeNotificationRepo struct {
	inserted  []*entity.Notification
	insertErr error
}

func (f *fakeNotificationRepo) Insert(n *entity.Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, n)
	return nil
}
func (f *fakeNotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	return f.inserted, nil
}
func (f *fakeNotificationRepo) ListUnread() ([]*entity.Notification, error) { return f.inserted, nil }
func (f *fakeNotificationRepo) MarkRead(id string) error                    { return nil }
func (f *fakeNotificationRepo) MarkAllRead() error                          { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Montagem
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *workshop.WorkshopUseCase
	invoices *fakeInvoiceRepo
	notifs   *fakeNotificationRepo
	clients  *fakeClientRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	services := &fakeServiceRepo{services: map[string]*entity.Service{
		"svc-oleo": {
			ID:           "svc-oleo",
			Name:         "Troca de óleo",
			PriceInShop:  decimal.NewFromInt(100),
			PriceOffsite: decimal.NewFromInt(150),
			IsActive:     true,
		},
	}}
	invoices := &fakeInvoiceRepo{}
	clients := &fakeClientRepo{clients: map[string]*entity.Client{}}
	mechanics := &fakeMechanicRepo{mechanics: map[string]*entity.Mechanic{}}
	notifs := &fakeNotificationRepo{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	uc := workshop.NewWorkshopUseCase(
		workshop.NewSessionStore(), services, invoices, clients, mechanics, notifs, log,
	)
	return &fixture{uc: uc, invoices: invoices, notifs: notifs, clients: clients}
}

func mechActor(name string) workshop.Actor {
	return workshop.Actor{
		User: access.User{
			ID:       "mec-1",
			Type:     entity.TypeMechanic,
			Position: entity.PositionColaborador,
			Approved: true,
		},
		FullName: name,
	}
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Orçamento
// ──────────────────────────────────────────────────────────────────────────────

// Mecânico logado já chega na calculadora com o nome preenchido.
func TestQuote_PrefillNomeMecanico(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Quote(mechActor("João da Silva"))
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", out.MechanicName)
}

// E o nome fica travado: atualização não sobrescreve para mecânicos.
func TestUpdateQuote_NomeTravadoParaMecanico(t *testing.T) {
	f := newFixture(t)
	actor := mechActor("João da Silva")

	out, err := f.uc.UpdateQuote(actor, dto.UpdateQuoteRequest{MechanicName: strPtr("Outro Nome")})
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", out.MechanicName)
}

// Admin digita o nome do mecânico livremente.
func TestUpdateQuote_AdminDigitaNome(t *testing.T) {
	f := newFixture(t)
	admin := workshop.Actor{User: access.User{ID: "adm-1", Type: entity.TypeAdmin}, FullName: "ADMEC"}

	out, err := f.uc.UpdateQuote(admin, dto.UpdateQuoteRequest{MechanicName: strPtr("Carlos")})
	require.NoError(t, err)
	assert.Equal(t, "Carlos", out.MechanicName)
}

func TestUpdateQuote_LocalInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.UpdateQuote(mechActor("João"), dto.UpdateQuoteRequest{Location: strPtr("na_rua")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddService_Inexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.AddService(mechActor("João"), "svc-sumido")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Sessões são isoladas por usuário: o orçamento de um não vaza para outro.
func TestQuote_SessoesIsoladas(t *testing.T) {
	f := newFixture(t)
	a := mechActor("João")
	b := workshop.Actor{
		User:     access.User{ID: "mec-2", Type: entity.TypeMechanic, Approved: true},
		FullName: "Maria",
	}

	_, err := f.uc.AddService(a, "svc-oleo")
	require.NoError(t, err)

	outB, err := f.uc.Quote(b)
	require.NoError(t, err)
	assert.Empty(t, outB.Lines, "orçamento de outro usuário deve estar vazio")
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateInvoice: pré-condições na ordem e estado intacto em falha
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateInvoice_OrdemDasValidacoes(t *testing.T) {
	f := newFixture(t)
	actor := mechActor("João")

	// Sem cliente: primeira mensagem.
	_, err := f.uc.GenerateInvoice(actor)
	assert.ErrorIs(t, err, domain.ErrMissingClientID)

	// Com cliente mas sem serviços.
	_, err = f.uc.UpdateQuote(actor, dto.UpdateQuoteRequest{ClientID: strPtr("c-99")})
	require.NoError(t, err)
	_, err = f.uc.GenerateInvoice(actor)
	assert.ErrorIs(t, err, domain.ErrEmptySelection)

	// Nada foi emitido e o orçamento segue com o cliente preenchido.
	assert.Empty(t, f.invoices.created)
	out, err := f.uc.Quote(actor)
	require.NoError(t, err)
	assert.Equal(t, "c-99", out.ClientID)
}

// Admin sem nome de mecânico digitado falha na segunda pré-condição.
func TestGenerateInvoice_SemMecanico(t *testing.T) {
	f := newFixture(t)
	admin := workshop.Actor{User: access.User{ID: "adm-1", Type: entity.TypeAdmin}, FullName: "ADMEC"}

	_, err := f.uc.UpdateQuote(admin, dto.UpdateQuoteRequest{ClientID: strPtr("c-1")})
	require.NoError(t, err)
	_, err = f.uc.GenerateInvoice(admin)
	assert.ErrorIs(t, err, domain.ErrMissingMechanic)
}

// Cliente logado preenche tudo mas não tem generate_invoices.
func TestGenerateInvoice_SemPermissao(t *testing.T) {
	f := newFixture(t)
	cliente := workshop.Actor{User: access.User{ID: "c-1", Type: entity.TypeClient}, FullName: "Ana"}

	_, err := f.uc.UpdateQuote(cliente, dto.UpdateQuoteRequest{
		ClientID:     strPtr("c-1"),
		MechanicName: strPtr("João"),
	})
	require.NoError(t, err)
	_, err = f.uc.AddService(cliente, "svc-oleo")
	require.NoError(t, err)

	_, err = f.uc.GenerateInvoice(cliente)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.invoices.created)
}

// Mecânico não aprovado entra na calculadora mas a emissão nega.
func TestGenerateInvoice_MecanicoNaoAprovado(t *testing.T) {
	f := newFixture(t)
	actor := workshop.Actor{
		User:     access.User{ID: "mec-9", Type: entity.TypeMechanic, Approved: false},
		FullName: "Pedro",
	}
	_, err := f.uc.UpdateQuote(actor, dto.UpdateQuoteRequest{ClientID: strPtr("c-1")})
	require.NoError(t, err)
	_, err = f.uc.AddService(actor, "svc-oleo")
	require.NoError(t, err)

	_, err = f.uc.GenerateInvoice(actor)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateInvoice: sucesso e falha de persistência
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateInvoice_Sucesso(t *testing.T) {
	f := newFixture(t)
	f.clients.clients["c-1"] = &entity.Client{ID: "c-1", FullName: "Ana Souza", Email: "ana@x.com"}
	actor := mechActor("João")

	_, err := f.uc.UpdateQuote(actor, dto.UpdateQuoteRequest{ClientID: strPtr("c-1")})
	require.NoError(t, err)
	_, err = f.uc.AddService(actor, "svc-oleo")
	require.NoError(t, err)

	out, err := f.uc.GenerateInvoice(actor)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.InvoiceNumber, "MGU-"), "número deve exibir o prefixo MGU-")
	assert.Equal(t, "Ana Souza", out.ClientName)
	assert.Equal(t, "João", out.MechanicName)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Troca de óleo", out.Items[0].ServiceName)
	assert.True(t, out.Totals.Total.Equal(decimal.NewFromInt(100)))

	// Persistida e notificada.
	require.Len(t, f.invoices.created, 1)
	require.Len(t, f.notifs.inserted, 1)
	assert.Contains(t, f.notifs.inserted[0].Message, out.InvoiceNumber)
	assert.Contains(t, f.notifs.inserted[0].Message, "Cliente: c-1")

	// Orçamento zerado, preservando o nome do mecânico logado.
	quote, err := f.uc.Quote(actor)
	require.NoError(t, err)
	assert.Empty(t, quote.Lines)
	assert.Empty(t, quote.ClientID)
	assert.Equal(t, "João", quote.MechanicName)
}

// Cada emissão ganha um número distinto, mesmo em sequência imediata.
func TestGenerateInvoice_NumerosUnicos(t *testing.T) {
	f := newFixture(t)
	actor := mechActor("João")

	numeros := map[string]bool{}
	for i := 0; i < 5; i++ {
		_, err := f.uc.UpdateQuote(actor, dto.UpdateQuoteRequest{ClientID: strPtr("c-1")})
		require.NoError(t, err)
		_, err = f.uc.AddService(actor, "svc-oleo")
		require.NoError(t, err)
		out, err := f.uc.GenerateInvoice(actor)
		require.NoError(t, err)
		assert.False(t, numeros[out.InvoiceNumber], "número repetido: %s", out.InvoiceNumber)
		numeros[out.InvoiceNumber] = true
	}
}

// ID sem cadastro emite normalmente com o marcador de não registrado.
func TestGenerateInvoice_ClienteNaoRegistrado(t *testing.T) {
	f := newFixture(t)
	actor := mechActor("João")

	_, err := f.uc.UpdateQuote(actor, dto.UpdateQuoteRequest{ClientID: strPtr("steam-123")})
	require.NoError(t, err)
	_, err = f.uc.AddService(actor, "svc-oleo")
	require.NoError(t, err)

	out, err := f.uc.GenerateInvoice(actor)
	require.NoError(t, err)
	assert.Equal(t, "Não registrado", out.ClientName)
}

// Falha de gravação devolve o erro de persistência e NÃO zera o orçamento:
// o usuário corrige a conexão e tenta de novo sem redigitar nada.
func TestGenerateInvoice_FalhaDePersistenciaPreservaOrcamento(t *testing.T) {
	f := newFixture(t)
	f.invoices.createErr = errors.New("conexão recusada")
	actor := mechActor("João")

	_, err := f.uc.UpdateQuote(actor, dto.UpdateQuoteRequest{ClientID: strPtr("c-1")})
	require.NoError(t, err)
	_, err = f.uc.AddService(actor, "svc-oleo")
	require.NoError(t, err)

	_, err = f.uc.GenerateInvoice(actor)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, f.notifs.inserted, "sem nota, sem notificação")

	out, err := f.uc.Quote(actor)
	require.NoError(t, err)
	assert.Len(t, out.Lines, 1, "orçamento preservado para retentativa")
	assert.Equal(t, "c-1", out.ClientID)
}

// Notificação é best-effort: falha nela não derruba a emissão.
func TestGenerateInvoice_FalhaDeNotificacaoNaoDerruba(t *testing.T) {
	f := newFixture(t)
	f.notifs.insertErr = errors.New("fila indisponível")
	actor := mechActor("João")

	_, err := f.uc.UpdateQuote(actor, dto.UpdateQuoteRequest{ClientID: strPtr("c-1")})
	require.NoError(t, err)
	_, err = f.uc.AddService(actor, "svc-oleo")
	require.NoError(t, err)

	out, err := f.uc.GenerateInvoice(actor)
	require.NoError(t, err)
	assert.NotEmpty(t, out.InvoiceNumber)
	require.Len(t, f.invoices.created, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Counterpart
// ──────────────────────────────────────────────────────────────────────────────

func TestCounterpart(t *testing.T) {
	f := newFixture(t)
	f.clients.clients["c-1"] = &entity.Client{ID: "c-1", FullName: "Ana", Email: "ana@x.com"}

	cp := f.uc.Counterpart("c-1")
	assert.Equal(t, "registered_client", cp.Kind)
	assert.Equal(t, "Ana", cp.FullName)

	cp = f.uc.Counterpart("ninguem")
	assert.Equal(t, "unregistered", cp.Kind)
	assert.Empty(t, cp.FullName)
}
