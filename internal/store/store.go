// Package store defines the persistence contract behind the POS services.
// Implementations are durability collaborators only: in-memory service state
// is authoritative, and a failed write must never roll back a state change
// that already happened.
package store

import "github.com/playden/backend/internal/models"

// Store persists catalog, wallet, session and billing history data.
type Store interface {
	// LoadGames returns the saved catalog in insertion order, or an empty
	// slice when nothing has been saved yet.
	LoadGames() ([]models.Game, error)
	// SaveGames replaces the whole saved catalog.
	SaveGames(games []models.Game) error

	// LoadUsers returns every known user keyed by mobile number.
	LoadUsers() (map[string]models.User, error)
	// PutUser inserts or overwrites one user record.
	PutUser(user models.User) error

	// LoadSessions returns the sessions that were active at shutdown,
	// keyed by session id.
	LoadSessions() (map[string]models.Session, error)
	// PutSession inserts or overwrites one active session.
	PutSession(session models.Session) error
	// DeleteSession removes an ended session. Deleting an id that is not
	// present is not an error.
	DeleteSession(sessionID string) error

	// AppendInvoice adds one row to the append-only invoice history.
	AppendInvoice(rec models.InvoiceRecord) error
	// ListInvoices returns history rows newest first, optionally filtered
	// by mobile number. A positive limit caps the page; limit <= 0 returns
	// everything.
	ListInvoices(mobile string, limit int) ([]models.InvoiceRecord, error)

	// AppendPayment adds one row to the append-only payment history.
	AppendPayment(rec models.PaymentRecord) error
}
