package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnit(t *testing.T) {
	assert.Equal(t, "kg", Unit("weight"))
	assert.Equal(t, "mmHg", Unit("blood_pressure"))
	assert.Equal(t, "mmol/L", Unit("blood_sugar"))
	assert.Equal(t, "beats/min", Unit("heart_rate"))
	assert.Equal(t, "℃", Unit("temperature"))
	assert.Equal(t, "hours", Unit("sleep"))
	assert.Equal(t, "", Unit("something_else"))
}

func TestParseDecimal(t *testing.T) {
	v := ParseDecimal("58.5")
	require.NotNil(t, v)
	assert.Equal(t, 58.5, *v)

	// unit suffixes are stripped
	v = ParseDecimal("72 kg")
	require.NotNil(t, v)
	assert.Equal(t, 72.0, *v)

	assert.Nil(t, ParseDecimal(""))
	assert.Nil(t, ParseDecimal("abc"))
	assert.Nil(t, ParseDecimal("..."))
}

func TestParseBloodPressure(t *testing.T) {
	sys, dia := ParseBloodPressure("130/80")
	require.NotNil(t, sys)
	require.NotNil(t, dia)
	assert.Equal(t, 130, *sys)
	assert.Equal(t, 80, *dia)

	sys, dia = ParseBloodPressure(" 120 / 75 ")
	require.NotNil(t, sys)
	assert.Equal(t, 120, *sys)
	assert.Equal(t, 75, *dia)

	for _, raw := range []string{"", "130", "130/80/90", "high/low"} {
		sys, dia = ParseBloodPressure(raw)
		assert.Nil(t, sys, raw)
		assert.Nil(t, dia, raw)
	}
}
