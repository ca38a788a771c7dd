package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	raw := "```json\n" + `[
		{"day": "monday", "startTime": "9:00", "endTime": "10:30 am", "subject": " Maths ", "room": "B12"},
		{"day": "Tue", "startTime": "1:00 PM", "endTime": "2:00 PM", "subject": "Physics"},
		{"day": "Someday", "startTime": "1:00 PM", "endTime": "2:00 PM", "subject": "Ghost"},
		{"day": "Friday", "startTime": "", "endTime": "2:00 PM", "subject": "Half"}
	]` + "\n```"

	items, dropped, err := ParseSchedule(raw)
	require.NoError(t, err)
	assert.Equal(t, 2, dropped)
	require.Len(t, items, 2)

	assert.Equal(t, "Monday", items[0].Day)
	assert.Equal(t, "9:00 AM", items[0].StartTime)
	assert.Equal(t, "10:30 AM", items[0].EndTime)
	assert.Equal(t, "Maths", items[0].Subject)
	assert.Equal(t, "B12", items[0].Room)
	assert.Empty(t, items[0].ID)

	assert.Equal(t, "Tuesday", items[1].Day)
	assert.Empty(t, items[1].Room)
}

func TestParseSchedule_WrappedObject(t *testing.T) {
	items, _, err := ParseSchedule(`{"schedule":[{"day":"Wednesday","startTime":"8am","endTime":"9am","subject":"Art"}]}`)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "8:00 AM", items[0].StartTime)
}

func TestParseSchedule_Failures(t *testing.T) {
	_, _, err := ParseSchedule("")
	assert.ErrorIs(t, err, ErrEmptyExtraction)

	_, _, err = ParseSchedule("[]")
	assert.ErrorIs(t, err, ErrEmptyExtraction)

	_, _, err = ParseSchedule("I could not read this image, sorry")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, "[]", stripFences("```json\n[]\n```"))
	assert.Equal(t, "[]", stripFences("```\n[]\n```"))
	assert.Equal(t, "[]", stripFences("  []  "))
}
