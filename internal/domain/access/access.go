// Package access resolve permissões e rotas a partir da identidade do
// usuário. Tudo aqui é função pura sobre tabelas de dados: nenhum I/O,
// nenhum estado, e qualquer token ou rota desconhecida resolve para
// negado (fail-closed).
package access

import "github.com/guaianases/oficina-api/internal/domain/entity"

// Permission é um token de capacidade do vocabulário fechado do sistema.
type Permission string

// Route identifica uma view da aplicação. O controle de rotas é uma tabela
// separada da de permissões: algumas rotas (supervisor, manager, regional,
// subregional) são restritas a um cargo exato, não a uma capacidade que
// outros cargos também poderiam ter. Não derive uma tabela da outra.
type Route string

// User é a identidade mínima necessária para decidir acesso.
// Position e Approved só têm significado quando Type é mechanic.
type User struct {
	ID       string
	Type     string // client | mechanic | admin
	Position string // vazio vale colaborador
	Approved bool
}

// position devolve o cargo efetivo, defaultando para colaborador.
func (u *User) position() string {
	if u.Position == "" {
		return entity.PositionColaborador
	}
	return u.Position
}

// HasPermission decide se o usuário detém a capacidade pedida.
//   - usuário ausente: nega tudo (sessão anônima não tem permissões);
//   - admin: concede tudo, incondicionalmente;
//   - client: conjunto fixo, independente de cargo;
//   - mechanic: exige Approved e consulta a tabela cumulativa por cargo.
func HasPermission(u *User, perm Permission) bool {
	if u == nil {
		return false
	}
	switch u.Type {
	case entity.TypeAdmin:
		return true
	case entity.TypeClient:
		return clientPermissions[perm]
	case entity.TypeMechanic:
		if !u.Approved {
			return false
		}
		rank, ok := positionRank[u.position()]
		if !ok {
			// Cargo desconhecido: só o conjunto mínimo de cliente da oficina.
			return fallbackPermissions[perm]
		}
		return permissionsByRank[rank][perm]
	default:
		return false
	}
}

// CanAccessRoute decide se o usuário pode navegar até a rota.
func CanAccessRoute(u *User, route Route) bool {
	if u == nil {
		return publicRoutes[route]
	}
	switch u.Type {
	case entity.TypeAdmin:
		return true
	case entity.TypeClient:
		return clientRoutes[route]
	case entity.TypeMechanic:
		if !u.Approved {
			return route == RouteHome
		}
		if mechanicBaseRoutes[route] {
			return true
		}
		if positions, ok := specialtyRoutes[route]; ok {
			return positions[u.position()]
		}
		return false
	default:
		return false
	}
}

// DefaultRoute devolve a rota inicial para o tipo de usuário; usada pela UI
// para redirecionar quem cai numa rota proibida.
func DefaultRoute(userType string) Route {
	if userType == entity.TypeAdmin {
		return RouteAdmin
	}
	return RouteHome
}

// CanAccessAdminPanel informa se o usuário pode abrir o painel
// administrativo: admin sempre; mecânico aprovado a partir de encarregado.
func CanAccessAdminPanel(u *User) bool {
	if u == nil {
		return false
	}
	if u.Type == entity.TypeAdmin {
		return true
	}
	if u.Type != entity.TypeMechanic || !u.Approved {
		return false
	}
	rank, ok := positionRank[u.position()]
	return ok && rank >= rankEncarregado
}

// PositionDescriptions devolve a descrição legível das atribuições do cargo,
// para exibição no painel de gestão de mecânicos.
func PositionDescriptions(position string) []string {
	if d, ok := positionDescriptions[position]; ok {
		return d
	}
	return []string{"Sem permissões especiais"}
}
