package config

import (
	"os"
	"strconv"
	"strings"
)

// POSConfig carries the lounge-level knobs: the physical station set, the
// billing constants and the invoice rendering setup. Server and storage
// settings live in viper; these are plain env vars because defaults are
// almost always right and there is nothing secret in them.
type POSConfig struct {
	Stations           []string
	LoyaltyRate        float64
	FallbackHourlyRate float64
	DataDir            string
	StaticDir          string
	InvoiceDir         string
	SofficeBin         string
	UPIVPA             string
	LoungeName         string
}

func LoadPOSConfig() *POSConfig {
	return &POSConfig{
		Stations:           splitStations(getEnv("POS_STATIONS", "A,B,C,D,E,F,G")),
		LoyaltyRate:        getEnvAsFloat("POS_LOYALTY_RATE", 0.10),
		FallbackHourlyRate: getEnvAsFloat("POS_FALLBACK_RATE", 100),
		DataDir:            getEnv("POS_DATA_DIR", "./data"),
		StaticDir:          getEnv("POS_STATIC_DIR", "./static"),
		InvoiceDir:         getEnv("POS_INVOICE_DIR", "./invoices"),
		SofficeBin:         getEnv("POS_SOFFICE_BIN", "soffice"),
		UPIVPA:             getEnv("POS_UPI_VPA", ""),
		LoungeName:         getEnv("POS_LOUNGE_NAME", "PlayDen Gaming Lounge"),
	}
}

// splitStations parses "A,B,C" into upper-cased station ids, dropping empty
// entries so a trailing comma does not create a ghost station.
func splitStations(raw string) []string {
	parts := strings.Split(raw, ",")
	stations := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			stations = append(stations, p)
		}
	}
	return stations
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if floatVal, err := strconv.ParseFloat(val, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}
