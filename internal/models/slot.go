package models

import (
	"encoding/json"
	"fmt"
)

// SlotKind discriminates the three states a grid cell can be in.
type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotFixed
	SlotAssigned
)

// FixedKind identifies which institutional break occupies a fixed slot.
type FixedKind string

const (
	FixedPrep               FixedKind = "prep"
	FixedBreakfast          FixedKind = "breakfast"
	FixedLunch              FixedKind = "lunch"
	FixedAfternoonBreakfast FixedKind = "afternoon-breakfast"
)

// Slot is the content of one (day, period) cell: empty, a fixed institutional
// break, or an assignment of subject/class (and, for class-mode edits, the
// owning teacher).
type Slot struct {
	Kind      SlotKind
	Fixed     FixedKind
	SubjectID string
	ClassID   string
	TeacherID string
}

// NewFixedSlot builds an immutable fixed-period slot.
func NewFixedSlot(kind FixedKind) Slot {
	return Slot{Kind: SlotFixed, Fixed: kind}
}

// NewAssignedSlot builds a regular assignment slot. teacherID is empty in
// teacher-mode grids, where the owner is implied by the enclosing timetable.
func NewAssignedSlot(subjectID, classID, teacherID string) Slot {
	return Slot{Kind: SlotAssigned, SubjectID: subjectID, ClassID: classID, TeacherID: teacherID}
}

// IsFixed reports whether the slot is an institutional break.
func (s Slot) IsFixed() bool { return s.Kind == SlotFixed }

// IsAssigned reports whether the slot carries a regular assignment.
func (s Slot) IsAssigned() bool { return s.Kind == SlotAssigned }

// IsEmpty reports whether the slot holds nothing.
func (s Slot) IsEmpty() bool { return s.Kind == SlotEmpty }

// Legacy wire encoding. Persisted grids mark fixed periods with a sentinel
// classId and encode the break kind in subjectId; stored documents from the
// previous system must keep round-tripping unchanged.
const (
	legacyFixedClassID = "fixed-period"

	legacyFixedPrep               = "fixed-prep"
	legacyFixedBreakfast          = "fixed-breakfast"
	legacyFixedLunch              = "fixed-lunch"
	legacyFixedAfternoonBreakfast = "fixed-afternoon-breakfast"
)

var fixedKindToLegacy = map[FixedKind]string{
	FixedPrep:               legacyFixedPrep,
	FixedBreakfast:          legacyFixedBreakfast,
	FixedLunch:              legacyFixedLunch,
	FixedAfternoonBreakfast: legacyFixedAfternoonBreakfast,
}

var legacyToFixedKind = map[string]FixedKind{
	legacyFixedPrep:               FixedPrep,
	legacyFixedBreakfast:          FixedBreakfast,
	legacyFixedLunch:              FixedLunch,
	legacyFixedAfternoonBreakfast: FixedAfternoonBreakfast,
}

type slotWire struct {
	SubjectID string `json:"subjectId,omitempty"`
	ClassID   string `json:"classId,omitempty"`
	TeacherID string `json:"teacherId,omitempty"`
}

// MarshalJSON encodes the slot in the legacy wire format.
func (s Slot) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SlotFixed:
		subject, ok := fixedKindToLegacy[s.Fixed]
		if !ok {
			return nil, fmt.Errorf("unknown fixed slot kind %q", s.Fixed)
		}
		return json.Marshal(slotWire{SubjectID: subject, ClassID: legacyFixedClassID})
	case SlotAssigned:
		return json.Marshal(slotWire{SubjectID: s.SubjectID, ClassID: s.ClassID, TeacherID: s.TeacherID})
	default:
		return []byte("{}"), nil
	}
}

// UnmarshalJSON decodes the legacy wire format back into the tagged variant.
func (s *Slot) UnmarshalJSON(data []byte) error {
	var wire slotWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.ClassID == legacyFixedClassID {
		kind, ok := legacyToFixedKind[wire.SubjectID]
		if !ok {
			return fmt.Errorf("unknown fixed period subject %q", wire.SubjectID)
		}
		*s = NewFixedSlot(kind)
		return nil
	}
	if wire.SubjectID == "" && wire.ClassID == "" && wire.TeacherID == "" {
		*s = Slot{}
		return nil
	}
	*s = NewAssignedSlot(wire.SubjectID, wire.ClassID, wire.TeacherID)
	return nil
}
