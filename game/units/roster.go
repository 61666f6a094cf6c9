package units

// Roster is the ordered list of slots fielded by one side. It only tracks
// membership; allocating and releasing store slots is the caller's job.
type Roster struct {
	Side  Side
	slots []Slot
}

// NewRoster creates an empty roster for a side
func NewRoster(side Side) *Roster {
	return &Roster{Side: side}
}

// Add appends a slot
func (r *Roster) Add(slot Slot) {
	r.slots = append(r.slots, slot)
}

// Remove deletes the first occurrence of slot and reports whether it was found
func (r *Roster) Remove(slot Slot) bool {
	for i, s := range r.slots {
		if s == slot {
			r.RemoveAt(i)
			return true
		}
	}
	return false
}

// RemoveAt deletes the slot at roster position i, preserving order
func (r *Roster) RemoveAt(i int) {
	r.slots = append(r.slots[:i], r.slots[i+1:]...)
}

// Len returns the number of slots in the roster
func (r *Roster) Len() int {
	return len(r.slots)
}

// At returns the slot at roster position i
func (r *Roster) At(i int) Slot {
	return r.slots[i]
}

// Contains reports whether slot is a member
func (r *Roster) Contains(slot Slot) bool {
	for _, s := range r.slots {
		if s == slot {
			return true
		}
	}
	return false
}

// Slots returns a copy of the member slots in roster order
func (r *Roster) Slots() []Slot {
	out := make([]Slot, len(r.slots))
	copy(out, r.slots)
	return out
}

// Clear removes every member
func (r *Roster) Clear() {
	r.slots = r.slots[:0]
}
