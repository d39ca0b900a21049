package domain

// Inventory is the static room-type capacity policy. It bounds how many
// bookings of one room type may hold overlapping stays at once. Fixed at
// startup; never mutated at runtime.
type Inventory map[string]int

func NewInventory(limits map[string]int) Inventory {
	inv := make(Inventory, len(limits))
	for roomType, capacity := range limits {
		inv[roomType] = capacity
	}
	return inv
}

// Capacity returns the unit limit for a room type. Unknown room types have
// capacity zero, so no booking for them is ever admitted.
func (inv Inventory) Capacity(roomType string) int {
	return inv[roomType]
}
