package workshop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/domain"
	"github.com/guaianases/oficina-api/internal/domain/access"
	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/quote"
	"github.com/guaianases/oficina-api/internal/domain/repository"
	"github.com/guaianases/oficina-api/pkg/logger"
)

// Actor é quem está operando a oficina: a identidade de acesso mais o nome
// de exibição vindo do token.
type Actor struct {
	User     access.User
	FullName string
}

// WorkshopUseCase orquestra a calculadora de orçamentos e a emissão de
// notas fiscais da oficina.
type WorkshopUseCase struct {
	sessions     *SessionStore
	serviceRepo  repository.ServiceRepository
	invoiceRepo  repository.InvoiceRepository
	clientRepo   repository.ClientRepository
	mechanicRepo repository.MechanicRepository
	notifRepo    repository.NotificationRepository
	log          *logger.Logger
}

// NewWorkshopUseCase constrói o caso de uso da oficina.
func NewWorkshopUseCase(
	sessions *SessionStore,
	serviceRepo repository.ServiceRepository,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	mechanicRepo repository.MechanicRepository,
	notifRepo repository.NotificationRepository,
	log *logger.Logger,
) *WorkshopUseCase {
	return &WorkshopUseCase{
		sessions:     sessions,
		serviceRepo:  serviceRepo,
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
		mechanicRepo: mechanicRepo,
		notifRepo:    notifRepo,
		log:          log,
	}
}

// state devolve o orçamento do ator, preenchendo o nome do mecânico na
// primeira carga (a UI antiga fazia isso ao montar a calculadora).
func (uc *WorkshopUseCase) state(actor Actor) *quote.State {
	st := uc.sessions.Get(actor.User.ID)
	if st.MechanicName == "" && actor.User.Type == entity.TypeMechanic {
		st.MechanicName = actor.FullName
	}
	return st
}

// Quote devolve o orçamento corrente com totais.
func (uc *WorkshopUseCase) Quote(actor Actor) (*dto.QuoteResponse, error) {
	return uc.toResponse(uc.state(actor))
}

// AddService adiciona o serviço ao orçamento do ator.
func (uc *WorkshopUseCase) AddService(actor Actor, serviceID string) (*dto.QuoteResponse, error) {
	svc, err := uc.serviceRepo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.IsActive {
		return nil, domain.ErrNotFound
	}
	st := uc.state(actor)
	st.AddService(svc)
	return uc.toResponse(st)
}

// SetQuantity fixa a quantidade de uma linha; zero remove a linha.
func (uc *WorkshopUseCase) SetQuantity(actor Actor, serviceID string, quantity int) (*dto.QuoteResponse, error) {
	st := uc.state(actor)
	st.SetQuantity(serviceID, quantity)
	return uc.toResponse(st)
}

// UpdateQuote aplica uma atualização parcial aos campos do orçamento.
// A taxa de peças rederiva da categoria enquanto há valor de peças; o
// override manual (PartsTaxPercent) vem por último e prevalece.
func (uc *WorkshopUseCase) UpdateQuote(actor Actor, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	st := uc.state(actor)
	if in.ClientID != nil {
		st.ClientID = *in.ClientID
	}
	if in.MechanicName != nil && actor.User.Type != entity.TypeMechanic {
		// Mecânico logado tem o nome travado no token; os demais digitam.
		st.MechanicName = *in.MechanicName
	}
	if in.Location != nil {
		if *in.Location != entity.LocationInternal && *in.Location != entity.LocationExternal {
			return nil, domain.ErrInvalidInput
		}
		st.Location = *in.Location
	}
	if in.ClientCategory != nil {
		st.SetClientCategory(*in.ClientCategory)
	}
	if in.ExtraPartsValue != nil {
		st.SetExtraParts(in.ExtraPartsValue.Decimal)
	}
	if in.DiscountValue != nil {
		st.DiscountValue = in.DiscountValue.Decimal
	}
	if in.DiscountPercent != nil {
		st.DiscountPercent = in.DiscountPercent.Decimal
	}
	if in.PartsTaxPercent != nil {
		st.PartsTaxPercent = in.PartsTaxPercent.Decimal
	}
	return uc.toResponse(st)
}

// ResetQuote descarta o orçamento corrente.
func (uc *WorkshopUseCase) ResetQuote(actor Actor) (*dto.QuoteResponse, error) {
	st := uc.state(actor).Reset(actor.User.Type == entity.TypeMechanic)
	uc.sessions.Replace(actor.User.ID, st)
	return uc.toResponse(st)
}

// ListServices devolve o catálogo ativo de serviços.
func (uc *WorkshopUseCase) ListServices() ([]*dto.ServiceResponse, error) {
	list, err := uc.serviceRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, &dto.ServiceResponse{
			ID:           s.ID,
			Name:         s.Name,
			Description:  s.Description,
			PriceInShop:  dto.Money{Decimal: s.PriceInShop},
			PriceOffsite: dto.Money{Decimal: s.PriceOffsite},
			RequiresTow:  s.RequiresTow,
		})
	}
	return out, nil
}

// Counterpart resolve o ID informado no orçamento: primeiro na tabela de
// clientes, depois na de mecânicos; sem registro em nenhuma, devolve o
// marcador de não registrado (não é erro).
func (uc *WorkshopUseCase) Counterpart(id string) *dto.CounterpartResponse {
	if client, _ := uc.clientRepo.GetByID(id); client != nil {
		return &dto.CounterpartResponse{
			Kind:     "registered_client",
			ID:       client.ID,
			FullName: client.FullName,
			Email:    client.Email,
			Phone:    client.Phone,
		}
	}
	if mechanic, _ := uc.mechanicRepo.GetByID(id); mechanic != nil {
		return &dto.CounterpartResponse{
			Kind:     "registered_mechanic",
			ID:       mechanic.ID,
			FullName: mechanic.FullName,
			Email:    mechanic.Email,
			Phone:    mechanic.Phone,
			Position: mechanic.PositionOrDefault(),
		}
	}
	return &dto.CounterpartResponse{Kind: "unregistered"}
}

// GenerateInvoice fecha o orçamento e emite a nota fiscal.
//
// Pré-condições, nesta ordem, a primeira que falhar vence: ID do cliente
// preenchido; nome do mecânico preenchido; ao menos um serviço; permissão
// generate_invoices. Falha de validação nunca toca no orçamento.
//
// No sucesso: calcula os totais, atribui um número único (MGU-<ULID>),
// persiste, emite a notificação e zera o orçamento preservando o nome do
// mecânico quando o emissor é mecânico. Falha de persistência preserva o
// orçamento para retentativa.
func (uc *WorkshopUseCase) GenerateInvoice(actor Actor) (*dto.InvoiceResponse, error) {
	st := uc.state(actor)

	if st.ClientID == "" {
		return nil, domain.ErrMissingClientID
	}
	if st.MechanicName == "" {
		return nil, domain.ErrMissingMechanic
	}
	if len(st.Lines) == 0 {
		return nil, domain.ErrEmptySelection
	}
	if !access.HasPermission(&actor.User, access.PermGenerateInvoices) {
		return nil, domain.ErrForbidden
	}

	totals := st.ComputeTotals()
	number := "MGU-" + ulid.Make().String()
	now := time.Now()

	items := make([]entity.InvoiceItem, 0, len(st.Lines))
	for _, line := range st.Lines {
		name := ""
		if svc, _ := uc.serviceRepo.GetByID(line.ServiceID); svc != nil {
			name = svc.Name
		}
		items = append(items, entity.InvoiceItem{
			ServiceID:   line.ServiceID,
			ServiceName: name,
			Quantity:    line.Quantity,
			IsExternal:  line.IsExternal,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}

	clientName := "Não registrado"
	if cp := uc.Counterpart(st.ClientID); cp.Kind != "unregistered" {
		clientName = cp.FullName
	}

	inv := &entity.Invoice{
		ID:              uuid.New().String(),
		InvoiceNumber:   number,
		ClientID:        st.ClientID,
		ClientName:      clientName,
		MechanicName:    st.MechanicName,
		MechanicID:      actor.User.ID,
		Location:        st.Location,
		ClientCategory:  st.ClientCategory,
		Items:           items,
		ExtraPartsValue: st.ExtraPartsValue,
		PartsTaxPercent: st.PartsTaxPercent,
		DiscountValue:   st.DiscountValue,
		DiscountPercent: st.DiscountPercent,

		ServicesSubtotal: totals.ServicesSubtotal,
		PartsSubtotal:    totals.PartsSubtotal,
		PartsTax:         totals.PartsTax,
		Subtotal:         totals.Subtotal,
		DiscountAmount:   totals.DiscountAmount,
		Total:            totals.Total,
		CreatedAt:        now,
	}

	if err := uc.invoiceRepo.Create(inv); err != nil {
		uc.log.Error().Err(err).Str("invoice_number", number).Msg("gravação da nota fiscal falhou")
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	// Notificação best-effort; a nota já está emitida.
	if err := uc.notifRepo.Insert(&entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationInvoice,
		Message:   fmt.Sprintf("Nova nota fiscal gerada: %s - Cliente: %s", number, st.ClientID),
		IsRead:    false,
		CreatedAt: now,
	}); err != nil {
		uc.log.Warn().Err(err).Str("invoice_number", number).Msg("notificação de nota não emitida")
	}

	uc.sessions.Replace(actor.User.ID, st.Reset(actor.User.Type == entity.TypeMechanic))

	return toInvoiceResponse(inv), nil
}

// toResponse materializa o estado + totais, resolvendo nomes de serviço
// para exibição.
func (uc *WorkshopUseCase) toResponse(st *quote.State) (*dto.QuoteResponse, error) {
	names := map[string]string{}
	if len(st.Lines) > 0 {
		list, err := uc.serviceRepo.ListActive()
		if err != nil {
			return nil, err
		}
		for _, s := range list {
			names[s.ID] = s.Name
		}
	}
	lines := make([]dto.QuoteLineResponse, 0, len(st.Lines))
	for _, line := range st.Lines {
		lines = append(lines, dto.QuoteLineResponse{
			ServiceID:   line.ServiceID,
			ServiceName: names[line.ServiceID],
			Quantity:    line.Quantity,
			IsExternal:  line.IsExternal,
			UnitPrice:   dto.Money{Decimal: line.UnitPrice},
			Subtotal:    dto.Money{Decimal: line.Subtotal},
		})
	}
	totals := st.ComputeTotals()
	return &dto.QuoteResponse{
		Lines:           lines,
		ExtraPartsValue: dto.Money{Decimal: st.ExtraPartsValue},
		ClientCategory:  st.ClientCategory,
		PartsTaxPercent: dto.Money{Decimal: st.PartsTaxPercent},
		DiscountValue:   dto.Money{Decimal: st.DiscountValue},
		DiscountPercent: dto.Money{Decimal: st.DiscountPercent},
		ClientID:        st.ClientID,
		MechanicName:    st.MechanicName,
		Location:        st.Location,
		Totals:          toTotalsResponse(totals),
	}, nil
}

func toTotalsResponse(t quote.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{
		ServicesSubtotal: dto.Money{Decimal: t.ServicesSubtotal},
		PartsSubtotal:    dto.Money{Decimal: t.PartsSubtotal},
		PartsTax:         dto.Money{Decimal: t.PartsTax},
		Subtotal:         dto.Money{Decimal: t.Subtotal},
		DiscountAmount:   dto.Money{Decimal: t.DiscountAmount},
		Total:            dto.Money{Decimal: t.Total},
	}
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Quantity:    it.Quantity,
			IsExternal:  it.IsExternal,
			UnitPrice:   dto.Money{Decimal: it.UnitPrice},
			Subtotal:    dto.Money{Decimal: it.Subtotal},
		})
	}
	return &dto.InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		ClientID:        inv.ClientID,
		ClientName:      inv.ClientName,
		MechanicName:    inv.MechanicName,
		Location:        inv.Location,
		ClientCategory:  inv.ClientCategory,
		Items:           items,
		ExtraPartsValue: dto.Money{Decimal: inv.ExtraPartsValue},
		PartsTaxPercent: dto.Money{Decimal: inv.PartsTaxPercent},
		DiscountValue:   dto.Money{Decimal: inv.DiscountValue},
		DiscountPercent: dto.Money{Decimal: inv.DiscountPercent},
		Totals: dto.TotalsResponse{
			ServicesSubtotal: dto.Money{Decimal: inv.ServicesSubtotal},
			PartsSubtotal:    dto.Money{Decimal: inv.PartsSubtotal},
			PartsTax:         dto.Money{Decimal: inv.PartsTax},
			Subtotal:         dto.Money{Decimal: inv.Subtotal},
			DiscountAmount:   dto.Money{Decimal: inv.DiscountAmount},
			Total:            dto.Money{Decimal: inv.Total},
		},
		CreatedAt: inv.CreatedAt,
	}
}
