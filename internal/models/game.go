package models

// Game represents a playable title in the lounge catalog. The name is the
// identity; price updates mutate the entry in place.
type Game struct {
	Name                string  `json:"name" db:"name" example:"Game A"`
	PricePerHour        float64 `json:"price_per_hour" db:"price_per_hour" example:"100"`
	RequiresControllers bool    `json:"requires_controllers" db:"requires_controllers"`
}

// DefaultGames returns the catalog a fresh installation starts with.
func DefaultGames() []Game {
	return []Game{
		{Name: "Game A", PricePerHour: 100, RequiresControllers: true},
		{Name: "Game B", PricePerHour: 120, RequiresControllers: false},
		{Name: "Game C", PricePerHour: 80, RequiresControllers: true},
	}
}
