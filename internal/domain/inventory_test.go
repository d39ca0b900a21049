package domain_test

import (
	"testing"

	"github.com/kingresort/booking-api/internal/domain"
)

func TestInventoryCapacity(t *testing.T) {
	inv := domain.NewInventory(map[string]int{
		"Deluxe Ocean View":        5,
		"Executive Cityscape Room": 3,
	})

	if got := inv.Capacity("Deluxe Ocean View"); got != 5 {
		t.Errorf("Capacity(Deluxe Ocean View) = %d, want 5", got)
	}
	if got := inv.Capacity("Executive Cityscape Room"); got != 3 {
		t.Errorf("Capacity(Executive Cityscape Room) = %d, want 3", got)
	}
	if got := inv.Capacity("Penthouse Suite"); got != 0 {
		t.Errorf("Capacity for unknown room type = %d, want 0", got)
	}
}

func TestNewInventoryCopiesInput(t *testing.T) {
	limits := map[string]int{"Family Garden Retreat": 4}
	inv := domain.NewInventory(limits)

	limits["Family Garden Retreat"] = 99
	if got := inv.Capacity("Family Garden Retreat"); got != 4 {
		t.Errorf("Capacity after mutating source map = %d, want 4", got)
	}
}
