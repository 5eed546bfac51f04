package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/playden/backend/internal/models"
)

// SessionLedger is the occupancy state machine. It exclusively owns the set
// of active sessions: the station-free check and the insert happen under one
// lock, as do lookup and removal, so a station can never be double-booked
// and a session can never be billed twice. The ledger does no I/O; callers
// persist after a transition commits.
type SessionLedger struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	newID    func() string
}

// NewSessionLedger starts from the sessions that were active at shutdown.
// A nil map means a clean start.
func NewSessionLedger(initial map[string]models.Session) *SessionLedger {
	sessions := make(map[string]models.Session, len(initial))
	for id, sess := range initial {
		sessions[id] = sess
	}
	return &SessionLedger{
		sessions: sessions,
		newID:    uuid.NewString,
	}
}

// StartSession claims station for mobile. The claim is atomic: between the
// occupancy check and the insert nobody else can slot in. Occupied stations
// fail with ErrConflict.
func (l *SessionLedger) StartSession(mobile, station, game string, controllers int, now time.Time) (models.Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, sess := range l.sessions {
		if sess.Station == station {
			return models.Session{}, fmt.Errorf("station %s is occupied: %w", station, ErrConflict)
		}
	}

	sess := models.Session{
		ID:          l.newID(),
		Mobile:      mobile,
		Station:     station,
		Game:        game,
		Controllers: controllers,
		StartTime:   now.UTC(),
	}
	l.sessions[sess.ID] = sess
	return sess, nil
}

// Remove takes a session out of the ledger and returns it. The lookup and
// the delete are one atomic step, so of two racing end requests exactly one
// gets the session; the other sees ErrNotFound.
func (l *SessionLedger) Remove(sessionID string) (models.Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sess, ok := l.sessions[sessionID]
	if !ok {
		return models.Session{}, fmt.Errorf("session %q: %w", sessionID, ErrNotFound)
	}
	delete(l.sessions, sessionID)
	return sess, nil
}

// Active returns a snapshot of the running sessions, oldest first.
func (l *SessionLedger) Active() []models.Session {
	l.mu.Lock()
	defer l.mu.Unlock()

	sessions := make([]models.Session, 0, len(l.sessions))
	for _, sess := range l.sessions {
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].StartTime.Equal(sessions[j].StartTime) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
	return sessions
}

// Occupancy projects the ledger onto the station board. Every configured
// station gets an entry; a session on a station outside the configured set
// (config shrank across a restart) is still reported so the counter can see
// and end it.
func (l *SessionLedger) Occupancy(stations []string) map[string]models.StationStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	board := make(map[string]models.StationStatus, len(stations))
	for _, station := range stations {
		board[station] = models.StationStatus{}
	}
	for id, sess := range l.sessions {
		sessionID := id
		board[sess.Station] = models.StationStatus{Occupied: true, SessionID: &sessionID}
	}
	return board
}
