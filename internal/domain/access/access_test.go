package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guaianases/oficina-api/internal/domain/access"
	"github.com/guaianases/oficina-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var allPerms = []access.Permission{
	access.PermViewCars,
	access.PermBuyCars,
	access.PermRequestCarPurchase,
	access.PermViewOwnInvoices,
	access.PermGenerateInvoices,
	access.PermAccessWorkshop,
	access.PermSellCars,
	access.PermManagePurchaseRequests,
	access.PermViewNotifications,
	access.PermViewAllInvoices,
	access.PermManageCars,
	access.PermPostCars,
	access.PermDeleteInvoices,
	access.PermManageMechanics,
}

var allRoutes = []access.Route{
	access.RouteHome,
	access.RouteCars,
	access.RouteInvoices,
	access.RouteLogin,
	access.RouteRegisterClient,
	access.RouteRegisterMechanic,
	access.RouteWorkshop,
	access.RouteAdmin,
	access.RouteManager,
	access.RouteSupervisor,
	access.RouteRegional,
	access.RouteSubRegional,
}

func mechanic(position string, approved bool) *access.User {
	return &access.User{ID: "m-1", Type: entity.TypeMechanic, Position: position, Approved: approved}
}

func permSet(u *access.User) map[access.Permission]bool {
	set := map[access.Permission]bool{}
	for _, p := range allPerms {
		if access.HasPermission(u, p) {
			set[p] = true
		}
	}
	return set
}

// ──────────────────────────────────────────────────────────────────────────────
// HasPermission
// ──────────────────────────────────────────────────────────────────────────────

// Admin detém toda permissão e navega em toda rota, incondicionalmente.
func TestAdmin_TudoLiberado(t *testing.T) {
	admin := &access.User{ID: "a-1", Type: entity.TypeAdmin}
	for _, p := range allPerms {
		assert.True(t, access.HasPermission(admin, p), "admin deve ter %s", p)
	}
	for _, r := range allRoutes {
		assert.True(t, access.CanAccessRoute(admin, r), "admin deve acessar %s", r)
	}
	// Até um token fora do vocabulário é concedido para admin.
	assert.True(t, access.HasPermission(admin, access.Permission("qualquer_coisa")))
}

// Usuário nulo (sessão anônima) não tem permissão nenhuma.
func TestUsuarioNulo_NegaTudo(t *testing.T) {
	for _, p := range allPerms {
		assert.False(t, access.HasPermission(nil, p), "anônimo não pode ter %s", p)
	}
}

// Mecânico não aprovado tem sessão mas zero privilégio.
func TestMecanicoNaoAprovado_ZeroPermissoes(t *testing.T) {
	u := mechanic(entity.PositionRegional, false) // nem o cargo máximo ajuda
	for _, p := range allPerms {
		assert.False(t, access.HasPermission(u, p), "não aprovado não pode ter %s", p)
	}
}

// Cliente tem o conjunto fixo, independente de qualquer cargo no struct.
func TestCliente_ConjuntoFixo(t *testing.T) {
	u := &access.User{ID: "c-1", Type: entity.TypeClient, Position: entity.PositionRegional}

	assert.True(t, access.HasPermission(u, access.PermViewCars))
	assert.True(t, access.HasPermission(u, access.PermBuyCars))
	assert.True(t, access.HasPermission(u, access.PermRequestCarPurchase))
	assert.True(t, access.HasPermission(u, access.PermViewOwnInvoices))

	assert.False(t, access.HasPermission(u, access.PermAccessWorkshop))
	assert.False(t, access.HasPermission(u, access.PermGenerateInvoices))
	assert.False(t, access.HasPermission(u, access.PermManageMechanics))
}

// Monotonicidade: cargo superior nunca perde permissão de cargo inferior, e
// sub_regional e regional têm exatamente o mesmo conjunto.
func TestCargos_Monotonicidade(t *testing.T) {
	ordem := []string{
		entity.PositionColaborador,
		entity.PositionEncarregado,
		entity.PositionGerente,
		entity.PositionSubRegional,
	}
	anterior := permSet(mechanic(ordem[0], true))
	for _, cargo := range ordem[1:] {
		atual := permSet(mechanic(cargo, true))
		for p := range anterior {
			assert.True(t, atual[p], "%s deve herdar %s do cargo inferior", cargo, p)
		}
		anterior = atual
	}

	subRegional := permSet(mechanic(entity.PositionSubRegional, true))
	regional := permSet(mechanic(entity.PositionRegional, true))
	assert.Equal(t, subRegional, regional, "sub_regional e regional devem ser idênticos")
}

// Amostras da tabela por cargo.
func TestCargos_Amostras(t *testing.T) {
	colaborador := mechanic(entity.PositionColaborador, true)
	assert.True(t, access.HasPermission(colaborador, access.PermAccessWorkshop))
	assert.True(t, access.HasPermission(colaborador, access.PermGenerateInvoices))
	assert.False(t, access.HasPermission(colaborador, access.PermSellCars))
	assert.False(t, access.HasPermission(colaborador, access.PermViewNotifications))

	encarregado := mechanic(entity.PositionEncarregado, true)
	assert.True(t, access.HasPermission(encarregado, access.PermSellCars))
	assert.True(t, access.HasPermission(encarregado, access.PermManagePurchaseRequests))
	assert.True(t, access.HasPermission(encarregado, access.PermViewNotifications))
	assert.False(t, access.HasPermission(encarregado, access.PermViewAllInvoices))

	gerente := mechanic(entity.PositionGerente, true)
	assert.True(t, access.HasPermission(gerente, access.PermViewAllInvoices))
	assert.False(t, access.HasPermission(gerente, access.PermManageCars))
	assert.False(t, access.HasPermission(gerente, access.PermDeleteInvoices))

	regional := mechanic(entity.PositionRegional, true)
	assert.True(t, access.HasPermission(regional, access.PermManageCars))
	assert.True(t, access.HasPermission(regional, access.PermPostCars))
	assert.True(t, access.HasPermission(regional, access.PermDeleteInvoices))
	assert.True(t, access.HasPermission(regional, access.PermManageMechanics))
}

// Cargo vazio vale colaborador; cargo desconhecido cai no conjunto mínimo.
func TestCargo_DefaultEFallback(t *testing.T) {
	semCargo := mechanic("", true)
	assert.True(t, access.HasPermission(semCargo, access.PermAccessWorkshop),
		"cargo vazio deve valer colaborador")

	desconhecido := mechanic("chefe_supremo", true)
	assert.True(t, access.HasPermission(desconhecido, access.PermViewCars))
	assert.False(t, access.HasPermission(desconhecido, access.PermAccessWorkshop),
		"cargo desconhecido não entra na oficina")
	assert.False(t, access.HasPermission(desconhecido, access.PermGenerateInvoices))
}

// Token fora do vocabulário resolve para negado (fail-closed).
func TestPermissaoDesconhecida_Negada(t *testing.T) {
	u := mechanic(entity.PositionRegional, true)
	assert.False(t, access.HasPermission(u, access.Permission("inventada")))

	cliente := &access.User{ID: "c-1", Type: entity.TypeClient}
	assert.False(t, access.HasPermission(cliente, access.Permission("inventada")))
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAccessRoute
// ──────────────────────────────────────────────────────────────────────────────

// Anônimo navega só nas rotas públicas.
func TestRotas_Anonimo(t *testing.T) {
	publicas := []access.Route{
		access.RouteHome, access.RouteCars, access.RouteInvoices,
		access.RouteLogin, access.RouteRegisterClient, access.RouteRegisterMechanic,
	}
	for _, r := range publicas {
		assert.True(t, access.CanAccessRoute(nil, r), "anônimo deve ver %s", r)
	}
	assert.False(t, access.CanAccessRoute(nil, access.RouteWorkshop))
	assert.False(t, access.CanAccessRoute(nil, access.RouteAdmin))
	assert.False(t, access.CanAccessRoute(nil, access.Route("/inexistente")))
}

// Mecânico não aprovado só chega na home.
func TestRotas_MecanicoNaoAprovado(t *testing.T) {
	u := mechanic(entity.PositionGerente, false)
	assert.True(t, access.CanAccessRoute(u, access.RouteHome))
	for _, r := range allRoutes {
		if r == access.RouteHome {
			continue
		}
		assert.False(t, access.CanAccessRoute(u, r), "não aprovado não deve ver %s", r)
	}
}

func TestRotas_Cliente(t *testing.T) {
	u := &access.User{ID: "c-1", Type: entity.TypeClient}
	assert.True(t, access.CanAccessRoute(u, access.RouteHome))
	assert.True(t, access.CanAccessRoute(u, access.RouteCars))
	assert.True(t, access.CanAccessRoute(u, access.RouteInvoices))
	assert.False(t, access.CanAccessRoute(u, access.RouteWorkshop))
	assert.False(t, access.CanAccessRoute(u, access.RouteAdmin))
}

// As rotas de especialidade são por cargo EXATO, sem cumulatividade: a rota
// do supervisor pertence ao encarregado, não ao gerente acima dele.
func TestRotas_EspecialidadePorCargoExato(t *testing.T) {
	casos := []struct {
		rota     access.Route
		liberado []string
	}{
		{access.RouteSupervisor, []string{entity.PositionEncarregado}},
		{access.RouteManager, []string{entity.PositionGerente}},
		{access.RouteSubRegional, []string{entity.PositionSubRegional}},
		{access.RouteRegional, []string{entity.PositionRegional}},
		{access.RouteAdmin, []string{
			entity.PositionEncarregado, entity.PositionGerente,
			entity.PositionSubRegional, entity.PositionRegional,
		}},
	}
	cargos := []string{
		entity.PositionColaborador, entity.PositionEncarregado,
		entity.PositionGerente, entity.PositionSubRegional, entity.PositionRegional,
	}
	for _, caso := range casos {
		permitidos := map[string]bool{}
		for _, c := range caso.liberado {
			permitidos[c] = true
		}
		for _, cargo := range cargos {
			got := access.CanAccessRoute(mechanic(cargo, true), caso.rota)
			assert.Equal(t, permitidos[cargo], got,
				"rota %s para cargo %s", caso.rota, cargo)
		}
	}
}

// Todo mecânico aprovado tem as rotas base, inclusive a oficina.
func TestRotas_BaseMecanicoAprovado(t *testing.T) {
	u := mechanic(entity.PositionColaborador, true)
	assert.True(t, access.CanAccessRoute(u, access.RouteHome))
	assert.True(t, access.CanAccessRoute(u, access.RouteCars))
	assert.True(t, access.CanAccessRoute(u, access.RouteWorkshop))
	assert.True(t, access.CanAccessRoute(u, access.RouteInvoices))
	assert.False(t, access.CanAccessRoute(u, access.Route("/inexistente")),
		"rota desconhecida resolve para negado")
}

// ──────────────────────────────────────────────────────────────────────────────
// DefaultRoute / CanAccessAdminPanel / PositionDescriptions
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultRoute(t *testing.T) {
	assert.Equal(t, access.RouteAdmin, access.DefaultRoute(entity.TypeAdmin))
	assert.Equal(t, access.RouteHome, access.DefaultRoute(entity.TypeClient))
	assert.Equal(t, access.RouteHome, access.DefaultRoute(entity.TypeMechanic))
	assert.Equal(t, access.RouteHome, access.DefaultRoute(""))
}

func TestCanAccessAdminPanel(t *testing.T) {
	assert.True(t, access.CanAccessAdminPanel(&access.User{Type: entity.TypeAdmin}))
	assert.True(t, access.CanAccessAdminPanel(mechanic(entity.PositionEncarregado, true)))
	assert.True(t, access.CanAccessAdminPanel(mechanic(entity.PositionRegional, true)))
	assert.False(t, access.CanAccessAdminPanel(mechanic(entity.PositionColaborador, true)))
	assert.False(t, access.CanAccessAdminPanel(mechanic(entity.PositionGerente, false)))
	assert.False(t, access.CanAccessAdminPanel(&access.User{Type: entity.TypeClient}))
	assert.False(t, access.CanAccessAdminPanel(nil))
}

func TestPositionDescriptions(t *testing.T) {
	assert.NotEmpty(t, access.PositionDescriptions(entity.PositionColaborador))
	assert.Contains(t, access.PositionDescriptions(entity.PositionRegional), "Equivalente ao ADMEC")
	assert.Equal(t, []string{"Sem permissões especiais"}, access.PositionDescriptions("outro"))
}
