// Package fake - хранилище в памяти для тестов сервисов.
// Реализует все репозитории и менеджер транзакций с откатом.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"casino_web/internal/model"
	"casino_web/internal/svcerr"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

type state struct {
	users        map[int64]model.User
	sessions     map[string]model.Session
	transactions []model.Transaction
	nextUserID   int64
	nextTxID     int64
}

func (s state) clone() state {
	c := state{
		users:        make(map[int64]model.User, len(s.users)),
		sessions:     make(map[string]model.Session, len(s.sessions)),
		transactions: append([]model.Transaction(nil), s.transactions...),
		nextUserID:   s.nextUserID,
		nextTxID:     s.nextTxID,
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.sessions {
		c.sessions[k] = v
	}
	return c
}

type Store struct {
	mu    sync.Mutex
	st    state
	depth int
	snap  state

	// Ошибки, которые вернут соответствующие методы, если заданы
	FailCreateTransaction error
	FailAddBalance        error
	FailCreateSession     error

	// Количество вызовов менеджера транзакций
	TxCalls int
}

func NewStore() *Store {
	return &Store{
		st: state{
			users:    make(map[int64]model.User),
			sessions: make(map[string]model.Session),
		},
	}
}

// Do выполняет fn как транзакцию: при ошибке состояние откатывается.
// Вложенные вызовы присоединяются к внешней транзакции.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	s.TxCalls++
	if s.depth == 0 {
		s.snap = s.st.clone()
	}
	s.depth++
	s.mu.Unlock()

	err := fn(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.depth--
	if err != nil && s.depth == 0 {
		s.st = s.snap
	}
	return err
}

func (s *Store) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return s.Do(ctx, fn)
}

// SeedUser добавляет пользователя напрямую, минуя сервисы
func (s *Store) SeedUser(email string, balance decimal.Decimal) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.nextUserID++
	u := model.User{ID: s.st.nextUserID, Email: email, Balance: balance, CreatedAt: time.Now()}
	s.st.users[u.ID] = u
	return &u
}

// Balance - текущий баланс пользователя
func (s *Store) Balance(id int64) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.users[id].Balance
}

// Transactions - копия журнала операций
func (s *Store) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Transaction(nil), s.st.transactions...)
}

// Sessions - количество активных сессий
func (s *Store) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.sessions)
}

func (s *Store) CreateUser(_ context.Context, user *model.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.st.users {
		if u.Email == user.Email {
			return 0, svcerr.ErrDuplicateEmail
		}
	}
	s.st.nextUserID++
	u := *user
	u.ID = s.st.nextUserID
	u.CreatedAt = time.Now()
	s.st.users[u.ID] = u
	return u.ID, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.st.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, svcerr.ErrUserNotFound
}

func (s *Store) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.st.users[id]
	if !ok {
		return nil, svcerr.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) GetBalanceForUpdate(_ context.Context, id int64) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.st.users[id]
	if !ok {
		return decimal.Zero, svcerr.ErrUserNotFound
	}
	return u.Balance, nil
}

func (s *Store) AddBalance(_ context.Context, id int64, delta decimal.Decimal, allowNegative bool) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailAddBalance != nil {
		return decimal.Zero, s.FailAddBalance
	}
	u, ok := s.st.users[id]
	if !ok {
		return decimal.Zero, svcerr.ErrUserNotFound
	}
	next := u.Balance.Add(delta)
	if next.IsNegative() && !allowNegative {
		return decimal.Zero, svcerr.ErrInsufficientFunds
	}
	u.Balance = next
	s.st.users[id] = u
	return next, nil
}

func (s *Store) CreateSession(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCreateSession != nil {
		return s.FailCreateSession
	}
	s.st.sessions[session.ID] = *session
	return nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.st.sessions[sessionID]
	if !ok {
		return nil, svcerr.ErrUnauthenticated
	}
	return &sess, nil
}

func (s *Store) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.st.sessions, sessionID)
	return nil
}

func (s *Store) CreateTransaction(_ context.Context, tx *model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCreateTransaction != nil {
		return s.FailCreateTransaction
	}
	s.st.nextTxID++
	tx.ID = s.st.nextTxID
	tx.CreatedAt = time.Now()
	s.st.transactions = append(s.st.transactions, *tx)
	return nil
}

func (s *Store) ListTransactions(_ context.Context, userID int64, page model.Page) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page = page.Normalize()

	var own []model.Transaction
	for _, t := range s.st.transactions {
		if t.UserID == userID {
			own = append(own, t)
		}
	}
	sort.SliceStable(own, func(i, j int) bool { return own[i].ID > own[j].ID })

	if page.Offset >= len(own) {
		return []model.Transaction{}, nil
	}
	end := page.Offset + page.Limit
	if end > len(own) {
		end = len(own)
	}
	return own[page.Offset:end], nil
}
