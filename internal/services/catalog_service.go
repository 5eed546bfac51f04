package services

import (
	"fmt"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/playden/backend/internal/models"
	"github.com/playden/backend/internal/store"
)

// CatalogService owns the game catalog and the fixed station set. The
// catalog lives in memory behind the lock and is the source of truth; the
// store is written through on mutation so a restart comes back with the
// same prices.
type CatalogService struct {
	mu       sync.RWMutex
	games    []models.Game
	stations []string
	store    store.Store
}

// NewCatalogService loads the saved catalog, seeding the defaults on first
// run. The station list is fixed for the life of the process.
func NewCatalogService(st store.Store, stations []string) (*CatalogService, error) {
	games, err := st.LoadGames()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(games) == 0 {
		games = models.DefaultGames()
		if err := st.SaveGames(games); err != nil {
			log.Printf("[CATALOG] Failed to persist seeded catalog: %v", err)
		}
	}

	sorted := make([]string, len(stations))
	copy(sorted, stations)
	sort.Strings(sorted)

	return &CatalogService{
		games:    games,
		stations: sorted,
		store:    st,
	}, nil
}

// ListGames returns the catalog in its stored order.
func (c *CatalogService) ListGames() []models.Game {
	c.mu.RLock()
	defer c.mu.RUnlock()
	games := make([]models.Game, len(c.games))
	copy(games, c.games)
	return games
}

// FindGame looks a title up by exact name.
func (c *CatalogService) FindGame(name string) (models.Game, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, g := range c.games {
		if g.Name == name {
			return g, true
		}
	}
	return models.Game{}, false
}

// UpdatePrice changes one title's hourly rate. Running sessions are not
// repriced; they bill at whatever the catalog says when they end.
func (c *CatalogService) UpdatePrice(name string, pricePerHour float64) error {
	if math.IsNaN(pricePerHour) || math.IsInf(pricePerHour, 0) || pricePerHour < 0 {
		return fmt.Errorf("price %v is not a usable rate: %w", pricePerHour, ErrInvalidArgument)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.games {
		if c.games[i].Name != name {
			continue
		}
		c.games[i].PricePerHour = pricePerHour
		if err := c.store.SaveGames(c.games); err != nil {
			log.Printf("[CATALOG] Failed to persist price change for %s: %v", name, err)
		}
		return nil
	}
	return fmt.Errorf("game %q: %w", name, ErrNotFound)
}

// Stations returns the station identifiers in display order.
func (c *CatalogService) Stations() []string {
	stations := make([]string, len(c.stations))
	copy(stations, c.stations)
	return stations
}

// StationExists reports whether id names a configured station.
func (c *CatalogService) StationExists(id string) bool {
	for _, s := range c.stations {
		if s == id {
			return true
		}
	}
	return false
}
