package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadPOSConfig_Defaults(t *testing.T) {
	cfg := LoadPOSConfig()

	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, cfg.Stations)
	assert.Equal(t, 0.10, cfg.LoyaltyRate)
	assert.Equal(t, 100.0, cfg.FallbackHourlyRate)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "./static", cfg.StaticDir)
	assert.Equal(t, "./invoices", cfg.InvoiceDir)
	assert.Equal(t, "soffice", cfg.SofficeBin)
	assert.Equal(t, "", cfg.UPIVPA)
	assert.Equal(t, "PlayDen Gaming Lounge", cfg.LoungeName)
}

func TestLoadPOSConfig_FromEnv(t *testing.T) {
	t.Setenv("POS_STATIONS", "a, b ,c,")
	t.Setenv("POS_LOYALTY_RATE", "0.05")
	t.Setenv("POS_FALLBACK_RATE", "80")
	t.Setenv("POS_UPI_VPA", "playden@upi")

	cfg := LoadPOSConfig()

	assert.Equal(t, []string{"A", "B", "C"}, cfg.Stations)
	assert.Equal(t, 0.05, cfg.LoyaltyRate)
	assert.Equal(t, 80.0, cfg.FallbackHourlyRate)
	assert.Equal(t, "playden@upi", cfg.UPIVPA)
}

func TestLoadPOSConfig_BadFloatFallsBack(t *testing.T) {
	t.Setenv("POS_LOYALTY_RATE", "ten percent")

	cfg := LoadPOSConfig()
	assert.Equal(t, 0.10, cfg.LoyaltyRate)
}

func TestSplitStations(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, splitStations("A,B,C"))
	assert.Equal(t, []string{"A", "B"}, splitStations(" a , b "))
	assert.Equal(t, []string{"PS1", "PS2"}, splitStations("ps1,,ps2,"))
	assert.Empty(t, splitStations(""))
	assert.Empty(t, splitStations(",,,"))
}
