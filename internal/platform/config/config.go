package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the hotel application. Every
// value has a default so the program runs with no environment at all.
type Config struct {
	HotelName  string // displayed on the welcome banner
	LedgerPath string // path of the guest ledger file
	RoomCount  int    // number of rooms in the fixed inventory
}

// Load reads settings from the environment, after loading a .env file
// from the working directory when one exists.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded settings from .env")
	}

	return Config{
		HotelName:  getenv("HOTEL_NAME", "Sunset Resort"),
		LedgerPath: getenv("HOTEL_LEDGER_PATH", "CustomerData.txt"),
		RoomCount:  getenvInt("HOTEL_ROOM_COUNT", 100),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Printf("Ignoring invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
