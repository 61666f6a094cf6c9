package units

import (
	"fmt"

	"github.com/wricardo/isotactics/game/grid"
)

// Side identifies which team owns a unit. NoSide marks a free slot.
type Side uint8

const (
	NoSide Side = iota
	SideA
	SideB
)

// Other returns the opposing side
func (s Side) Other() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		panic(fmt.Sprintf("units: side %d has no opponent", s))
	}
}

// String returns "A", "B" or "none"
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "none"
	}
}

// Slot is a stable handle into a Store. Slots are reused after release.
type Slot int

// NoSlot is returned by lookups that find nothing
const NoSlot Slot = -1

// Store keeps unit attributes in parallel columns addressed by Slot.
//
// A slot is valid while its team column holds a side. Released slots keep
// their stale attributes until the next Allocate hands them out again.
type Store struct {
	positions  []grid.Position
	names      []string
	healths    []int
	maxHealths []int
	moveSpeeds []int
	teams      []Side

	free []Slot
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Allocate returns a recycled slot if one is free, otherwise appends a new
// row. Every attribute except the team starts zeroed; the slot is valid
// from here until Release.
func (s *Store) Allocate(side Side) Slot {
	if side == NoSide {
		panic("units: allocate without an owning side")
	}
	if n := len(s.free); n > 0 {
		slot := s.free[n-1]
		s.free = s.free[:n-1]
		s.reset(slot)
		s.teams[slot] = side
		return slot
	}

	s.positions = append(s.positions, grid.Position{})
	s.names = append(s.names, "")
	s.healths = append(s.healths, 0)
	s.maxHealths = append(s.maxHealths, 0)
	s.moveSpeeds = append(s.moveSpeeds, 0)
	s.teams = append(s.teams, side)
	return Slot(len(s.teams) - 1)
}

// Release marks a slot free and pushes it onto the free list. Releasing a
// slot that is already free does nothing and returns false, so the free list
// never holds the same slot twice.
func (s *Store) Release(slot Slot) bool {
	if !s.IsValid(slot) {
		return false
	}
	s.teams[slot] = NoSide
	s.free = append(s.free, slot)
	return true
}

// IsValid reports whether the slot currently holds a live unit
func (s *Store) IsValid(slot Slot) bool {
	if slot < 0 || int(slot) >= len(s.teams) {
		return false
	}
	return s.teams[slot] != NoSide
}

// IndexOfPosition scans valid slots starting at from and returns the first
// one standing on pos.
func (s *Store) IndexOfPosition(pos grid.Position, from Slot) (Slot, bool) {
	if from < 0 {
		from = 0
	}
	for i := int(from); i < len(s.teams); i++ {
		if s.teams[i] != NoSide && s.positions[i] == pos {
			return Slot(i), true
		}
	}
	return NoSlot, false
}

// Len returns the number of rows, valid or not
func (s *Store) Len() int {
	return len(s.teams)
}

// FreeCount returns how many released slots are waiting for reuse
func (s *Store) FreeCount() int {
	return len(s.free)
}

// Damage subtracts amount from the unit's health and returns what is left.
// Health never drops below zero.
func (s *Store) Damage(slot Slot, amount int) int {
	h := s.healths[slot] - amount
	if h < 0 {
		h = 0
	}
	s.healths[slot] = h
	return h
}

func (s *Store) reset(slot Slot) {
	s.positions[slot] = grid.Position{}
	s.names[slot] = ""
	s.healths[slot] = 0
	s.maxHealths[slot] = 0
	s.moveSpeeds[slot] = 0
	s.teams[slot] = NoSide
}

// Field accessors. An out-of-range slot panics with the runtime's index
// error; callers gate on IsValid for anything that may be stale.

func (s *Store) Position(slot Slot) grid.Position       { return s.positions[slot] }
func (s *Store) SetPosition(slot Slot, p grid.Position) { s.positions[slot] = p }
func (s *Store) Name(slot Slot) string                  { return s.names[slot] }
func (s *Store) SetName(slot Slot, name string)         { s.names[slot] = name }
func (s *Store) Health(slot Slot) int                   { return s.healths[slot] }
func (s *Store) SetHealth(slot Slot, h int)             { s.healths[slot] = h }
func (s *Store) MaxHealth(slot Slot) int                { return s.maxHealths[slot] }
func (s *Store) SetMaxHealth(slot Slot, h int)          { s.maxHealths[slot] = h }
func (s *Store) MoveSpeed(slot Slot) int                { return s.moveSpeeds[slot] }
func (s *Store) SetMoveSpeed(slot Slot, v int)          { s.moveSpeeds[slot] = v }
func (s *Store) Team(slot Slot) Side                    { return s.teams[slot] }
func (s *Store) SetTeam(slot Slot, side Side)           { s.teams[slot] = side }
