package workshop

import (
	"sync"

	"github.com/guaianases/oficina-api/internal/domain/quote"
)

// SessionStore guarda o orçamento em andamento de cada usuário logado.
// Cada State pertence a uma única sessão; o lock protege só o mapa e a
// troca de ponteiros, já que um usuário não compete consigo mesmo fora de
// submissões duplicadas (responsabilidade da UI de desabilitar o botão).
type SessionStore struct {
	mu     sync.Mutex
	byUser map[string]*quote.State
}

// NewSessionStore constrói o armazém de sessões.
func NewSessionStore() *SessionStore {
	return &SessionStore{byUser: make(map[string]*quote.State)}
}

// Get devolve o orçamento do usuário, criando um vazio na primeira chamada.
func (s *SessionStore) Get(userID string) *quote.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byUser[userID]
	if !ok {
		st = quote.NewState()
		s.byUser[userID] = st
	}
	return st
}

// Replace troca o orçamento do usuário (usado no reset pós-emissão).
func (s *SessionStore) Replace(userID string, st *quote.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[userID] = st
}
