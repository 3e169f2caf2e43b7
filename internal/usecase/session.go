package usecase

import (
	"sync"

	repo "github.com/SEP491/FitBridge-Web-sub001/internal/repository"
)

// Session is one operator's pair of controllers. It lives in memory only;
// nothing about it is persisted.
type Session struct {
	List   *OrderListUsecase
	Detail *OrderDetailUsecase
}

func NewSession(orders repo.OrderRepository, defaultPageSize int) *Session {
	list := NewOrderListUsecase(orders, defaultPageSize)
	return &Session{
		List:   list,
		Detail: NewOrderDetailUsecase(orders, list),
	}
}

// SessionManager hands out one session per operator subject, created lazily.
type SessionManager struct {
	orders          repo.OrderRepository
	defaultPageSize int

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager(orders repo.OrderRepository, defaultPageSize int) *SessionManager {
	return &SessionManager{
		orders:          orders,
		defaultPageSize: defaultPageSize,
		sessions:        map[string]*Session{},
	}
}

func (m *SessionManager) Session(subject string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[subject]; ok {
		return s
	}
	s := NewSession(m.orders, m.defaultPageSize)
	m.sessions[subject] = s
	return s
}
