package services

import (
	"sync"

	"github.com/playden/backend/internal/models"
)

// UserService owns wallet balances keyed by mobile number. Lookup-or-create
// is one atomic step, so two first-time references to the same number yield
// one record, and wallet updates read and write under the same lock.
type UserService struct {
	mu    sync.Mutex
	users map[string]models.User
}

// NewUserService starts from the users loaded at boot. nil means none.
func NewUserService(initial map[string]models.User) *UserService {
	users := make(map[string]models.User, len(initial))
	for mobile, user := range initial {
		users[mobile] = user
	}
	return &UserService{users: users}
}

// GetOrCreate returns the user for mobile, creating a zero-wallet record on
// first sight. The second result reports whether a record was created.
func (u *UserService) GetOrCreate(mobile string) (models.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if user, ok := u.users[mobile]; ok {
		return user, false
	}
	user := models.User{Mobile: mobile, Wallet: 0}
	u.users[mobile] = user
	return user, true
}

// UpdateWallet applies fn to the current balance and stores the result, all
// under the lock. fn receives the live balance, so settlement math that
// depends on it cannot race a concurrent update. Unknown mobiles start from
// a zero wallet.
func (u *UserService) UpdateWallet(mobile string, fn func(balance float64) float64) models.User {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.users[mobile]
	if !ok {
		user = models.User{Mobile: mobile}
	}
	user.Wallet = fn(user.Wallet)
	u.users[mobile] = user
	return user
}
