package services

import (
	"github.com/stretchr/testify/mock"

	"github.com/playden/backend/internal/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) LoadGames() ([]models.Game, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockStore) SaveGames(games []models.Game) error {
	args := m.Called(games)
	return args.Error(0)
}

func (m *MockStore) LoadUsers() (map[string]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.User), args.Error(1)
}

func (m *MockStore) PutUser(user models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStore) LoadSessions() (map[string]models.Session, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.Session), args.Error(1)
}

func (m *MockStore) PutSession(session models.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockStore) DeleteSession(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

func (m *MockStore) AppendInvoice(rec models.InvoiceRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockStore) ListInvoices(mobile string, limit int) ([]models.InvoiceRecord, error) {
	args := m.Called(mobile, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InvoiceRecord), args.Error(1)
}

func (m *MockStore) AppendPayment(rec models.PaymentRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

// quietStore returns a MockStore that accepts every write and loads nothing,
// for tests that only care about service behavior.
func quietStore() *MockStore {
	st := &MockStore{}
	st.On("LoadGames").Return([]models.Game{}, nil).Maybe()
	st.On("SaveGames", mock.Anything).Return(nil).Maybe()
	st.On("LoadUsers").Return(map[string]models.User{}, nil).Maybe()
	st.On("PutUser", mock.Anything).Return(nil).Maybe()
	st.On("LoadSessions").Return(map[string]models.Session{}, nil).Maybe()
	st.On("PutSession", mock.Anything).Return(nil).Maybe()
	st.On("DeleteSession", mock.Anything).Return(nil).Maybe()
	st.On("AppendInvoice", mock.Anything).Return(nil).Maybe()
	st.On("ListInvoices", mock.Anything, mock.Anything).Return([]models.InvoiceRecord{}, nil).Maybe()
	st.On("AppendPayment", mock.Anything).Return(nil).Maybe()
	return st
}
