package config_test

import (
	"testing"
	"time"

	"github.com/kingresort/booking-api/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}

	// The original deployment's room inventory is the default policy.
	want := map[string]int{
		"Deluxe Ocean View":        5,
		"Executive Cityscape Room": 3,
		"Family Garden Retreat":    4,
	}
	for roomType, capacity := range want {
		if got := cfg.Rooms.Limits[roomType]; got != capacity {
			t.Errorf("Limits[%q] = %d, want %d", roomType, got, capacity)
		}
	}
}

func TestRoomLimitsOverride(t *testing.T) {
	t.Setenv("ROOM_LIMITS", `{"Suite": 2, "Standard": 10}`)

	cfg := config.Load()
	if got := cfg.Rooms.Limits["Suite"]; got != 2 {
		t.Errorf("Limits[Suite] = %d, want 2", got)
	}
	if got := cfg.Rooms.Limits["Standard"]; got != 10 {
		t.Errorf("Limits[Standard] = %d, want 10", got)
	}
	if _, ok := cfg.Rooms.Limits["Deluxe Ocean View"]; ok {
		t.Error("override should replace the default map, not merge into it")
	}
}

func TestRoomLimitsBadJSONFallsBack(t *testing.T) {
	t.Setenv("ROOM_LIMITS", `not-json`)

	cfg := config.Load()
	if got := cfg.Rooms.Limits["Deluxe Ocean View"]; got != 5 {
		t.Errorf("Limits[Deluxe Ocean View] = %d, want default 5", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("EMAIL_DEV_MODE", "false")

	cfg := config.Load()
	if cfg.Server.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Server.Port)
	}
	if cfg.Database.MaxConns != 25 {
		t.Errorf("MaxConns = %d, want 25", cfg.Database.MaxConns)
	}
	if cfg.Email.DevMode {
		t.Error("DevMode = true, want false")
	}
}
