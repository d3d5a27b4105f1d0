package access

import "github.com/guaianases/oficina-api/internal/domain/entity"

// Vocabulário fechado de permissões.
const (
	PermViewCars               Permission = "view_cars"
	PermBuyCars                Permission = "buy_cars"
	PermRequestCarPurchase     Permission = "request_car_purchase"
	PermViewOwnInvoices        Permission = "view_own_invoices"
	PermGenerateInvoices       Permission = "generate_invoices"
	PermAccessWorkshop         Permission = "access_workshop"
	PermSellCars               Permission = "sell_cars"
	PermManagePurchaseRequests Permission = "manage_purchase_requests"
	PermViewNotifications      Permission = "view_notifications"
	PermViewAllInvoices        Permission = "view_all_invoices"
	PermManageCars             Permission = "manage_cars"
	PermPostCars               Permission = "post_cars"
	PermDeleteInvoices         Permission = "delete_invoices"
	PermManageMechanics        Permission = "manage_mechanics"
)

// Rotas nomeadas da aplicação.
const (
	RouteHome             Route = "/"
	RouteCars             Route = "/cars"
	RouteInvoices         Route = "/invoices"
	RouteLogin            Route = "/login"
	RouteRegisterClient   Route = "/register/client"
	RouteRegisterMechanic Route = "/register/mechanic"
	RouteWorkshop         Route = "/workshop"
	RouteAdmin            Route = "/admin"
	RouteManager          Route = "/manager"
	RouteSupervisor       Route = "/supervisor"
	RouteRegional         Route = "/regional"
	RouteSubRegional      Route = "/subregional"
)

// Níveis de privilégio dos cargos. sub_regional e regional compartilham o
// nível máximo: os conjuntos dos dois são idênticos por construção.
const (
	rankColaborador = iota
	rankEncarregado
	rankGerente
	rankTopo
)

var positionRank = map[string]int{
	entity.PositionColaborador: rankColaborador,
	entity.PositionEncarregado: rankEncarregado,
	entity.PositionGerente:     rankGerente,
	entity.PositionSubRegional: rankTopo,
	entity.PositionRegional:    rankTopo,
}

// grantsByRank lista só o que cada nível ACRESCENTA ao anterior. A tabela
// cumulativa permissionsByRank é montada em init, o que garante
// estruturalmente a monotonicidade: um cargo superior nunca perde
// capacidade de um inferior.
var grantsByRank = [][]Permission{
	rankColaborador: {
		PermViewCars,
		PermBuyCars,
		PermRequestCarPurchase,
		PermGenerateInvoices,
		PermAccessWorkshop,
	},
	rankEncarregado: {
		PermSellCars,
		PermManagePurchaseRequests,
		PermViewNotifications,
	},
	rankGerente: {
		PermViewAllInvoices,
	},
	rankTopo: {
		PermManageCars,
		PermPostCars,
		PermDeleteInvoices,
		PermManageMechanics,
	},
}

var permissionsByRank []map[Permission]bool

func init() {
	permissionsByRank = make([]map[Permission]bool, len(grantsByRank))
	acc := map[Permission]bool{}
	for rank, grants := range grantsByRank {
		for _, p := range grants {
			acc[p] = true
		}
		set := make(map[Permission]bool, len(acc))
		for p := range acc {
			set[p] = true
		}
		permissionsByRank[rank] = set
	}
}

// Conjunto fixo de permissões de cliente, independente de cargo.
var clientPermissions = map[Permission]bool{
	PermViewCars:           true,
	PermBuyCars:            true,
	PermRequestCarPurchase: true,
	PermViewOwnInvoices:    true,
}

// fallbackPermissions vale para mecânico aprovado com cargo fora da tabela:
// mantém só o básico de consulta, sem acesso à oficina.
var fallbackPermissions = map[Permission]bool{
	PermViewCars:           true,
	PermBuyCars:            true,
	PermRequestCarPurchase: true,
}

// Rotas acessíveis sem login.
var publicRoutes = map[Route]bool{
	RouteHome:             true,
	RouteCars:             true,
	RouteInvoices:         true,
	RouteLogin:            true,
	RouteRegisterClient:   true,
	RouteRegisterMechanic: true,
}

// Rotas de cliente logado.
var clientRoutes = map[Route]bool{
	RouteHome:     true,
	RouteCars:     true,
	RouteInvoices: true,
}

// Rotas base de qualquer mecânico aprovado.
var mechanicBaseRoutes = map[Route]bool{
	RouteHome:     true,
	RouteCars:     true,
	RouteWorkshop: true,
	RouteInvoices: true,
}

// specialtyRoutes restringe cada rota especial a um conjunto EXATO de
// cargos. Aqui não há cumulatividade: a rota do supervisor é só do
// encarregado, a do manager só do gerente, e assim por diante.
var specialtyRoutes = map[Route]map[string]bool{
	RouteAdmin: {
		entity.PositionEncarregado: true,
		entity.PositionGerente:     true,
		entity.PositionSubRegional: true,
		entity.PositionRegional:    true,
	},
	RouteManager: {
		entity.PositionGerente: true,
	},
	RouteSupervisor: {
		entity.PositionEncarregado: true,
	},
	RouteRegional: {
		entity.PositionRegional: true,
	},
	RouteSubRegional: {
		entity.PositionSubRegional: true,
	},
}

// Descrições por cargo exibidas no painel de gestão de mecânicos.
var positionDescriptions = map[string][]string{
	entity.PositionColaborador: {
		"Fazer serviços na oficina",
		"Gerar notas fiscais",
		"Ver carros disponíveis",
	},
	entity.PositionEncarregado: {
		"Fazer serviços na oficina",
		"Gerar notas fiscais",
		"Ver carros disponíveis",
		"Fazer vendas de veículos",
		"Aceitar/recusar solicitações de compra",
		"Ver notificações do sistema",
	},
	entity.PositionGerente: {
		"Fazer serviços na oficina",
		"Gerar notas fiscais",
		"Ver carros disponíveis",
		"Fazer vendas de veículos",
		"Aceitar/recusar solicitações de compra",
		"Visualizar todas as notas fiscais",
		"Ver notificações do sistema",
	},
	entity.PositionSubRegional: {
		"Acesso total ao sistema",
		"Adicionar/remover carros",
		"Gerenciar mecânicos",
		"Deletar notas fiscais",
		"Painel administrativo completo",
	},
	entity.PositionRegional: {
		"Acesso total ao sistema",
		"Adicionar/remover carros",
		"Gerenciar mecânicos",
		"Deletar notas fiscais",
		"Nível máximo de acesso",
		"Equivalente ao ADMEC",
	},
}
