package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playden/backend/internal/models"
)

func TestUserService_GetOrCreate(t *testing.T) {
	t.Run("first sight creates a zero wallet", func(t *testing.T) {
		users := NewUserService(nil)

		user, created := users.GetOrCreate("9876543210")
		assert.True(t, created)
		assert.Equal(t, "9876543210", user.Mobile)
		assert.Equal(t, 0.0, user.Wallet)
	})

	t.Run("second sight returns the same record", func(t *testing.T) {
		users := NewUserService(nil)
		users.GetOrCreate("111")

		user, created := users.GetOrCreate("111")
		assert.False(t, created)
		assert.Equal(t, "111", user.Mobile)
	})

	t.Run("loaded users keep their balance", func(t *testing.T) {
		users := NewUserService(map[string]models.User{
			"111": {Mobile: "111", Wallet: 42.5},
		})

		user, created := users.GetOrCreate("111")
		assert.False(t, created)
		assert.Equal(t, 42.5, user.Wallet)
	})
}

func TestUserService_UpdateWallet(t *testing.T) {
	t.Run("applies fn to the live balance", func(t *testing.T) {
		users := NewUserService(map[string]models.User{
			"111": {Mobile: "111", Wallet: 50},
		})

		user := users.UpdateWallet("111", func(balance float64) float64 {
			assert.Equal(t, 50.0, balance)
			return balance - 50 + 15
		})
		assert.Equal(t, 15.0, user.Wallet)

		again, _ := users.GetOrCreate("111")
		assert.Equal(t, 15.0, again.Wallet)
	})

	t.Run("unknown mobile starts from zero", func(t *testing.T) {
		users := NewUserService(nil)

		user := users.UpdateWallet("222", func(balance float64) float64 {
			assert.Equal(t, 0.0, balance)
			return balance + 10
		})
		assert.Equal(t, "222", user.Mobile)
		assert.Equal(t, 10.0, user.Wallet)
	})
}

func TestUserService_ConcurrentGetOrCreate(t *testing.T) {
	users := NewUserService(nil)

	const attempts = 32
	var wg sync.WaitGroup
	created := make([]bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, created[i] = users.GetOrCreate("111")
		}(i)
	}
	wg.Wait()

	creations := 0
	for _, c := range created {
		if c {
			creations++
		}
	}
	assert.Equal(t, 1, creations, "a mobile is created exactly once")
}

func TestUserService_ConcurrentUpdates(t *testing.T) {
	users := NewUserService(map[string]models.User{
		"111": {Mobile: "111", Wallet: 0},
	})

	const updates = 100
	var wg sync.WaitGroup
	for i := 0; i < updates; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			users.UpdateWallet("111", func(balance float64) float64 {
				return balance + 1
			})
		}()
	}
	wg.Wait()

	user, _ := users.GetOrCreate("111")
	assert.Equal(t, float64(updates), user.Wallet)
}

func TestUserService_IsolatesMobiles(t *testing.T) {
	users := NewUserService(nil)
	for i := 0; i < 5; i++ {
		mobile := fmt.Sprintf("mobile-%d", i)
		users.UpdateWallet(mobile, func(balance float64) float64 {
			return float64(i * 10)
		})
	}

	for i := 0; i < 5; i++ {
		user, created := users.GetOrCreate(fmt.Sprintf("mobile-%d", i))
		assert.False(t, created)
		assert.Equal(t, float64(i*10), user.Wallet)
	}
}
