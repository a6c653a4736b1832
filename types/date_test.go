package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalCalendarDate(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01"`), &d))
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 1, d.Day())
}

func TestDateUnmarshalRFC3339(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01T15:04:05Z"`), &d))
	assert.Equal(t, 15, d.Hour())
}

func TestDateUnmarshalEmpty(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"June 1st, 2024"`), &d))
}

func TestDateMarshal(t *testing.T) {
	d := NewDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01T00:00:00Z"`, string(out))

	var zero Date
	out, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}
