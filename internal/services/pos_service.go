package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/playden/backend/internal/models"
	"github.com/playden/backend/internal/store"
)

const (
	paymentQueueKey   = "payments:queue"
	occupancyBoardKey = "occupancy:board"
	revenueKeyPrefix  = "revenue:"

	occupancyBoardTTL = 30 * time.Second
)

// POSService composes the catalog, session ledger, wallets and billing
// engine into the operations the HTTP layer exposes. It owns the
// collaborator fan-out: persistence, invoice rendering and redis
// reconciliation all run after the in-memory transition has committed, and
// their failures are logged, never returned to the caller.
type POSService struct {
	catalog  *CatalogService
	ledger   *SessionLedger
	users    *UserService
	billing  *BillingEngine
	invoices *InvoiceService
	store    store.Store
	redis    *redis.Client

	now func() time.Time
}

// NewPOSService wires the POS components together. redis may be nil; the
// reconciliation queue and occupancy cache are then skipped.
func NewPOSService(
	catalog *CatalogService,
	ledger *SessionLedger,
	users *UserService,
	billing *BillingEngine,
	invoices *InvoiceService,
	st store.Store,
	redisClient *redis.Client,
) *POSService {
	return &POSService{
		catalog:  catalog,
		ledger:   ledger,
		users:    users,
		billing:  billing,
		invoices: invoices,
		store:    st,
		redis:    redisClient,
		now:      time.Now,
	}
}

// ListGames returns the current catalog.
func (p *POSService) ListGames() []models.Game {
	return p.catalog.ListGames()
}

// UpdateGamePrice changes one title's hourly rate.
func (p *POSService) UpdateGamePrice(name string, pricePerHour float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("game name required: %w", ErrInvalidArgument)
	}
	return p.catalog.UpdatePrice(name, pricePerHour)
}

// GetOrCreateUser returns the wallet record for mobile, creating it on
// first sight.
func (p *POSService) GetOrCreateUser(mobile string) (models.User, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return models.User{}, fmt.Errorf("mobile number required: %w", ErrInvalidArgument)
	}
	user, created := p.users.GetOrCreate(mobile)
	if created {
		p.persistUser(user)
	}
	return user, nil
}

// StartSession claims a station and starts the meter. The customer record
// is created on the spot if this is their first visit.
func (p *POSService) StartSession(mobile, station, game string, controllers int) (models.Session, error) {
	mobile = strings.TrimSpace(mobile)
	station = strings.ToUpper(strings.TrimSpace(station))
	game = strings.TrimSpace(game)

	if mobile == "" {
		return models.Session{}, fmt.Errorf("mobile number required: %w", ErrInvalidArgument)
	}
	if !p.catalog.StationExists(station) {
		return models.Session{}, fmt.Errorf("unknown station %q: %w", station, ErrInvalidArgument)
	}
	g, ok := p.catalog.FindGame(game)
	if !ok {
		return models.Session{}, fmt.Errorf("unknown game %q: %w", game, ErrInvalidArgument)
	}
	if controllers < 0 {
		return models.Session{}, fmt.Errorf("controllers must not be negative: %w", ErrInvalidArgument)
	}
	if !g.RequiresControllers {
		controllers = 0
	}

	user, created := p.users.GetOrCreate(mobile)
	if created {
		p.persistUser(user)
	}

	sess, err := p.ledger.StartSession(mobile, station, game, controllers, p.now())
	if err != nil {
		return models.Session{}, err
	}

	if err := p.store.PutSession(sess); err != nil {
		log.Printf("[POS] Failed to persist session %s: %v", sess.ID, err)
	}
	p.cacheOccupancy()

	return sess, nil
}

// GetOccupancy returns the station board.
func (p *POSService) GetOccupancy() map[string]models.StationStatus {
	return p.ledger.Occupancy(p.catalog.Stations())
}

// ListActiveSessions returns the running sessions.
func (p *POSService) ListActiveSessions() []models.Session {
	return p.ledger.Active()
}

// EndSession stops the meter, bills the session and settles the wallet. The
// session leaves the ledger before any billing math runs, so a racing
// second call gets ErrNotFound instead of a double bill. Everything after
// the wallet commit is best-effort: history writes, the invoice file and
// redis fan-out log their failures and the response still succeeds.
func (p *POSService) EndSession(sessionID string, foodCost float64, useWallet bool) (models.BillingRecord, string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return models.BillingRecord{}, "", fmt.Errorf("session id required: %w", ErrInvalidArgument)
	}
	if math.IsNaN(foodCost) || math.IsInf(foodCost, 0) || foodCost < 0 {
		return models.BillingRecord{}, "", fmt.Errorf("food cost %v is not a usable amount: %w", foodCost, ErrInvalidArgument)
	}

	sess, err := p.ledger.Remove(sessionID)
	if err != nil {
		return models.BillingRecord{}, "", err
	}
	if err := p.store.DeleteSession(sessionID); err != nil {
		log.Printf("[POS] Failed to delete persisted session %s: %v", sessionID, err)
	}

	now := p.now()
	var game *models.Game
	if g, ok := p.catalog.FindGame(sess.Game); ok {
		game = &g
	} else {
		log.Printf("[POS] Session %s references game %q no longer in catalog, billing at fallback rate", sessionID, sess.Game)
	}

	// The billing math runs inside the wallet update so the balance it
	// reads is the balance it settles against.
	var rec models.BillingRecord
	user := p.users.UpdateWallet(sess.Mobile, func(balance float64) float64 {
		var outcome WalletOutcome
		rec, outcome = p.billing.Bill(sess, game, now, foodCost, useWallet, balance)
		return outcome.NewWalletBalance
	})
	p.persistUser(user)

	payment := models.PaymentRecord{Mobile: rec.Mobile, Amount: rec.TotalDue, Date: rec.Date}
	if err := p.store.AppendPayment(payment); err != nil {
		log.Printf("[POS] Failed to record payment for %s: %v", rec.Mobile, err)
	}

	invoiceID := strings.ReplaceAll(sess.ID, "-", "")
	if err := p.store.AppendInvoice(models.NewInvoiceRecord(invoiceID, rec)); err != nil {
		log.Printf("[POS] Failed to append invoice %s: %v", invoiceID, err)
	}

	invoiceRef := ""
	if p.invoices != nil {
		ref, err := p.invoices.Render(invoiceID, rec)
		if err != nil {
			log.Printf("[POS] Failed to render invoice %s: %v", invoiceID, err)
		} else {
			invoiceRef = ref
		}
	}

	p.queuePayment(payment)
	p.bumpRevenue(rec.TotalDue, now)
	p.cacheOccupancy()

	return rec, invoiceRef, nil
}

// ListInvoices returns billing history, newest first. limit <= 0 applies
// the default page size.
func (p *POSService) ListInvoices(mobile string, limit int) ([]models.InvoiceRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	records, err := p.store.ListInvoices(strings.TrimSpace(mobile), limit)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return records, nil
}

// InvoiceQR returns a scan-to-pay UPI intent and QR image for an invoice
// with an outstanding amount due.
func (p *POSService) InvoiceQR(invoiceID string) (string, string, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return "", "", fmt.Errorf("invoice id is required: %w", ErrInvalidArgument)
	}
	if p.invoices == nil {
		return "", "", fmt.Errorf("scan-to-pay is not configured: %w", ErrInvalidArgument)
	}

	records, err := p.store.ListInvoices("", 0)
	if err != nil {
		return "", "", fmt.Errorf("load invoice %s: %w", invoiceID, err)
	}
	for _, rec := range records {
		if rec.InvoiceID != invoiceID {
			continue
		}
		if rec.AmountDue <= 0 {
			return "", "", fmt.Errorf("invoice %s has nothing due: %w", invoiceID, ErrInvalidArgument)
		}
		return p.invoices.PaymentQR(rec.AmountDue)
	}
	return "", "", fmt.Errorf("invoice %s: %w", invoiceID, ErrNotFound)
}

func (p *POSService) persistUser(user models.User) {
	if err := p.store.PutUser(user); err != nil {
		log.Printf("[POS] Failed to persist user %s: %v", user.Mobile, err)
	}
}

// queuePayment pushes the payment onto the reconciliation queue a back
// office worker drains at day close.
func (p *POSService) queuePayment(payment models.PaymentRecord) {
	if p.redis == nil {
		return
	}
	data, err := json.Marshal(payment)
	if err != nil {
		return
	}
	if err := p.redis.RPush(context.Background(), paymentQueueKey, data).Err(); err != nil {
		log.Printf("[POS] Failed to queue payment for reconciliation: %v", err)
	}
}

// bumpRevenue maintains the per-day revenue counter the dashboard reads.
func (p *POSService) bumpRevenue(amount float64, now time.Time) {
	if p.redis == nil || amount <= 0 {
		return
	}
	key := revenueKeyPrefix + now.Local().Format("2006-01-02")
	if err := p.redis.IncrByFloat(context.Background(), key, amount).Err(); err != nil {
		log.Printf("[POS] Failed to update revenue counter: %v", err)
	}
}

// cacheOccupancy publishes the station board for read-only lobby displays.
func (p *POSService) cacheOccupancy() {
	if p.redis == nil {
		return
	}
	data, err := json.Marshal(p.GetOccupancy())
	if err != nil {
		return
	}
	if err := p.redis.Set(context.Background(), occupancyBoardKey, data, occupancyBoardTTL).Err(); err != nil {
		log.Printf("[POS] Failed to cache occupancy board: %v", err)
	}
}
