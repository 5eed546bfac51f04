package models

import "time"

// Session represents one active play period on a station. A session exists
// only while it is running; ending it removes the record and produces a
// BillingRecord.
type Session struct {
	ID          string    `json:"session_id" db:"session_id"`
	Mobile      string    `json:"mobile" db:"mobile"`
	Station     string    `json:"station" db:"station" example:"A"`
	Game        string    `json:"game" db:"game" example:"Game A"`
	Controllers int       `json:"controllers" db:"controllers" example:"2"`
	StartTime   time.Time `json:"start_time" db:"start_time"`
}

// StationStatus is one station's entry on the occupancy board.
type StationStatus struct {
	Occupied  bool    `json:"occupied"`
	SessionID *string `json:"session_id"`
}
