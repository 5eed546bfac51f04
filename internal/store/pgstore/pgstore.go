// Package pgstore persists POS data in PostgreSQL. Multi-counter sites run
// this backend so every till shares one set of wallets and history tables.
package pgstore

import (
	"database/sql"
	"fmt"

	"github.com/playden/backend/internal/models"
)

// PGStore implements store.Store over an open *sql.DB.
type PGStore struct {
	db *sql.DB
}

// New wraps db and makes sure the POS tables exist.
func New(db *sql.DB) (*PGStore, error) {
	s := &PGStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *PGStore) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			position SERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			price_per_hour DOUBLE PRECISION NOT NULL,
			requires_controllers BOOLEAN NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			mobile TEXT PRIMARY KEY,
			wallet DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			mobile TEXT NOT NULL,
			station TEXT NOT NULL,
			game TEXT NOT NULL,
			controllers INTEGER NOT NULL,
			start_time TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id SERIAL PRIMARY KEY,
			invoice_id TEXT UNIQUE NOT NULL,
			billed_at TEXT NOT NULL,
			mobile TEXT NOT NULL,
			amount_due DOUBLE PRECISION NOT NULL,
			game TEXT NOT NULL,
			station TEXT NOT NULL,
			controllers INTEGER NOT NULL,
			duration_hours DOUBLE PRECISION NOT NULL,
			base_cost DOUBLE PRECISION NOT NULL,
			food_cost DOUBLE PRECISION NOT NULL,
			wallet_used DOUBLE PRECISION NOT NULL,
			loyalty_earned DOUBLE PRECISION NOT NULL,
			remaining_wallet DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id SERIAL PRIMARY KEY,
			mobile TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			paid_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadGames returns the catalog in insertion order.
func (s *PGStore) LoadGames() ([]models.Game, error) {
	rows, err := s.db.Query(`SELECT name, price_per_hour, requires_controllers FROM games ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.Name, &g.PricePerHour, &g.RequiresControllers); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// SaveGames replaces the stored catalog in one transaction.
func (s *PGStore) SaveGames(games []models.Game) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save games: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM games`); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}
	for _, g := range games {
		if _, err := tx.Exec(
			`INSERT INTO games (name, price_per_hour, requires_controllers) VALUES ($1, $2, $3)`,
			g.Name, g.PricePerHour, g.RequiresControllers,
		); err != nil {
			return fmt.Errorf("insert game %s: %w", g.Name, err)
		}
	}
	return tx.Commit()
}

// LoadUsers returns every user keyed by mobile.
func (s *PGStore) LoadUsers() (map[string]models.User, error) {
	rows, err := s.db.Query(`SELECT mobile, wallet FROM users`)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	defer rows.Close()

	users := make(map[string]models.User)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Mobile, &u.Wallet); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users[u.Mobile] = u
	}
	return users, rows.Err()
}

// PutUser upserts one user row.
func (s *PGStore) PutUser(user models.User) error {
	_, err := s.db.Exec(
		`INSERT INTO users (mobile, wallet) VALUES ($1, $2)
		 ON CONFLICT (mobile) DO UPDATE SET wallet = EXCLUDED.wallet`,
		user.Mobile, user.Wallet,
	)
	if err != nil {
		return fmt.Errorf("put user %s: %w", user.Mobile, err)
	}
	return nil
}

// LoadSessions returns the active sessions keyed by id.
func (s *PGStore) LoadSessions() (map[string]models.Session, error) {
	rows, err := s.db.Query(`SELECT session_id, mobile, station, game, controllers, start_time FROM sessions`)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	defer rows.Close()

	sessions := make(map[string]models.Session)
	for rows.Next() {
		var sess models.Session
		if err := rows.Scan(&sess.ID, &sess.Mobile, &sess.Station, &sess.Game, &sess.Controllers, &sess.StartTime); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions[sess.ID] = sess
	}
	return sessions, rows.Err()
}

// PutSession upserts one active session row.
func (s *PGStore) PutSession(session models.Session) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, mobile, station, game, controllers, start_time)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (session_id) DO UPDATE SET
			mobile = EXCLUDED.mobile,
			station = EXCLUDED.station,
			game = EXCLUDED.game,
			controllers = EXCLUDED.controllers,
			start_time = EXCLUDED.start_time`,
		session.ID, session.Mobile, session.Station, session.Game, session.Controllers, session.StartTime,
	)
	if err != nil {
		return fmt.Errorf("put session %s: %w", session.ID, err)
	}
	return nil
}

// DeleteSession removes an ended session row.
func (s *PGStore) DeleteSession(sessionID string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}

// AppendInvoice inserts one invoice history row.
func (s *PGStore) AppendInvoice(rec models.InvoiceRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO invoices (
			invoice_id, billed_at, mobile, amount_due, game, station, controllers,
			duration_hours, base_cost, food_cost, wallet_used, loyalty_earned, remaining_wallet
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rec.InvoiceID, rec.Date, rec.Mobile, rec.AmountDue, rec.Game, rec.Station, rec.Controllers,
		rec.DurationHours, rec.BaseCost, rec.FoodCost, rec.WalletUsed, rec.LoyaltyEarned, rec.RemainingWallet,
	)
	if err != nil {
		return fmt.Errorf("append invoice %s: %w", rec.InvoiceID, err)
	}
	return nil
}

// ListInvoices returns history rows newest first. A limit of zero or less
// means no cap.
func (s *PGStore) ListInvoices(mobile string, limit int) ([]models.InvoiceRecord, error) {
	query := `SELECT invoice_id, billed_at, mobile, amount_due, game, station, controllers,
		duration_hours, base_cost, food_cost, wallet_used, loyalty_earned, remaining_wallet
		FROM invoices`
	args := []any{}
	if mobile != "" {
		query += ` WHERE mobile = $1`
		args = append(args, mobile)
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	records := make([]models.InvoiceRecord, 0)
	for rows.Next() {
		var rec models.InvoiceRecord
		if err := rows.Scan(
			&rec.InvoiceID, &rec.Date, &rec.Mobile, &rec.AmountDue, &rec.Game, &rec.Station, &rec.Controllers,
			&rec.DurationHours, &rec.BaseCost, &rec.FoodCost, &rec.WalletUsed, &rec.LoyaltyEarned, &rec.RemainingWallet,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// AppendPayment inserts one payment history row.
func (s *PGStore) AppendPayment(rec models.PaymentRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO payments (mobile, amount, paid_at) VALUES ($1, $2, $3)`,
		rec.Mobile, rec.Amount, rec.Date,
	)
	if err != nil {
		return fmt.Errorf("append payment: %w", err)
	}
	return nil
}
