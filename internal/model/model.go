package model

// SlotState - Occupancy of a slot as seen by the engine
type SlotState uint8

// SlotEmpty - State of a slot holding the empty sentinel or lying beyond the end of the file
const SlotEmpty SlotState = 0

// SlotOccupied - State of a slot holding a record with a non-blank key
const SlotOccupied SlotState = 1

// Slot - Represents one data slot read from the hash file.
// The on-disk format has no occupancy flag, State is derived from the decoded key at the byte boundary.
type Slot struct {
	State   SlotState
	RBN     int64
	Address int64
	Data    []byte
}
