package services

import (
	"math"
	"time"

	"github.com/playden/backend/internal/models"
)

// BillingEngine prices completed sessions. It holds no mutable state: every
// method is a pure function of its inputs, so callers may share one instance
// across goroutines and invoke it while holding their own locks.
type BillingEngine struct {
	loyaltyRate        float64
	fallbackHourlyRate float64
}

// NewBillingEngine returns an engine crediting loyaltyRate of each base cost
// back to the wallet and pricing orphaned sessions (game since removed from
// the catalog) at fallbackHourlyRate.
func NewBillingEngine(loyaltyRate, fallbackHourlyRate float64) *BillingEngine {
	return &BillingEngine{
		loyaltyRate:        loyaltyRate,
		fallbackHourlyRate: fallbackHourlyRate,
	}
}

// WalletOutcome is the settlement side of one billing: how much wallet was
// burned, what remains to collect in cash, and the wallet after credit.
type WalletOutcome struct {
	WalletUsed       float64
	TotalDue         float64
	LoyaltyEarned    float64
	NewWalletBalance float64
}

// ComputeDuration converts elapsed wall-clock time into billable hours.
// Whole hours always count; the leftover minutes add half an hour only when
// strictly more than 15. An end before start (clock adjustment) bills zero.
func (b *BillingEngine) ComputeDuration(start, end time.Time) float64 {
	minutes := end.Sub(start).Minutes()
	if minutes < 0 {
		minutes = 0
	}
	wholeHours := math.Floor(minutes / 60)
	if minutes-wholeHours*60 > 15 {
		return wholeHours + 0.5
	}
	return wholeHours
}

// ComputeBaseCost prices hours of play. Titles that need controllers bill
// per controller with a floor of one; the rest bill flat per hour and ignore
// the controller count entirely. A nil game means the title was dropped from
// the catalog while the session ran; it bills at the fallback rate on the
// per-controller branch.
func (b *BillingEngine) ComputeBaseCost(game *models.Game, hours float64, controllers int) float64 {
	price := b.fallbackHourlyRate
	perController := true
	if game != nil {
		price = game.PricePerHour
		perController = game.RequiresControllers
	}
	if !perController {
		return hours * price
	}
	if controllers < 1 {
		controllers = 1
	}
	return hours * price * float64(controllers)
}

// ApplyWallet settles a bill against a wallet. The wallet covers play and
// food alike, but loyalty accrues on the base cost only, whether or not the
// wallet paid for it. Only the final balance is rounded; intermediate values
// keep full precision.
func (b *BillingEngine) ApplyWallet(baseCost, foodCost, walletBalance float64, useWallet bool) WalletOutcome {
	total := baseCost + foodCost
	used := 0.0
	if useWallet && walletBalance > 0 {
		used = math.Min(walletBalance, total)
	}
	earned := b.loyaltyRate * baseCost
	return WalletOutcome{
		WalletUsed:       used,
		TotalDue:         total - used,
		LoyaltyEarned:    earned,
		NewWalletBalance: Round2(walletBalance - used + earned),
	}
}

// Bill composes duration, base cost and wallet settlement into the immutable
// record for one ended session. game may be nil, see ComputeBaseCost.
func (b *BillingEngine) Bill(sess models.Session, game *models.Game, now time.Time, foodCost float64, useWallet bool, walletBalance float64) (models.BillingRecord, WalletOutcome) {
	hours := b.ComputeDuration(sess.StartTime, now)
	baseCost := b.ComputeBaseCost(game, hours, sess.Controllers)
	outcome := b.ApplyWallet(baseCost, foodCost, walletBalance, useWallet)

	return models.BillingRecord{
		Date:            now.Local().Format("2006-01-02 15:04:05"),
		Mobile:          sess.Mobile,
		Station:         sess.Station,
		Game:            sess.Game,
		Controllers:     sess.Controllers,
		DurationHours:   hours,
		BaseCost:        baseCost,
		FoodCost:        foodCost,
		WalletUsed:      outcome.WalletUsed,
		TotalDue:        outcome.TotalDue,
		LoyaltyEarned:   outcome.LoyaltyEarned,
		RemainingWallet: outcome.NewWalletBalance,
	}, outcome
}

// Round2 quantizes a currency amount to two decimals. Wallet balances are
// the only stored value that gets rounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
