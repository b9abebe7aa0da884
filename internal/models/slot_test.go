package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotDecodesLegacyFixedSentinel(t *testing.T) {
	var slot Slot
	require.NoError(t, json.Unmarshal([]byte(`{"subjectId":"fixed-lunch","classId":"fixed-period"}`), &slot))
	assert.True(t, slot.IsFixed())
	assert.Equal(t, FixedLunch, slot.Fixed)
	assert.Empty(t, slot.ClassID, "sentinel ids never leak into the variant")
}

func TestSlotRejectsUnknownFixedSentinel(t *testing.T) {
	var slot Slot
	err := json.Unmarshal([]byte(`{"subjectId":"fixed-nap","classId":"fixed-period"}`), &slot)
	assert.Error(t, err)
}

func TestSlotEncodesAssignment(t *testing.T) {
	raw, err := json.Marshal(NewAssignedSlot("subj-math", "c-3a", "t1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"subjectId":"subj-math","classId":"c-3a","teacherId":"t1"}`, string(raw))
}

func TestSlotEmptyRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Slot{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))

	var slot Slot
	require.NoError(t, json.Unmarshal(raw, &slot))
	assert.True(t, slot.IsEmpty())
}

func TestGridJSONKeepsLegacyShape(t *testing.T) {
	grid := NewGrid()
	grid.Set("Pazartesi", "2", NewAssignedSlot("subj-math", "c-3a", ""))

	raw, err := json.Marshal(grid)
	require.NoError(t, err)

	var decoded Grid
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "c-3a", decoded.Slot("Pazartesi", "2").ClassID)
}
