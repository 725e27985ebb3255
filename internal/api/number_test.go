package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecimalUnmarshal(t *testing.T) {
	var d Decimal
	require.NoError(t, json.Unmarshal([]byte(`9.99`), &d))
	require.EqualValues(t, 9.99, d)

	require.NoError(t, json.Unmarshal([]byte(`"12.50"`), &d))
	require.EqualValues(t, 12.50, d)

	d = 0
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	require.EqualValues(t, 0, d)

	require.Error(t, json.Unmarshal([]byte(`"abc"`), &d))

	out, err := json.Marshal(Decimal(1.5))
	require.NoError(t, err)
	require.Equal(t, `1.5`, string(out))
}

func TestIntegerUnmarshal(t *testing.T) {
	var i Integer
	require.NoError(t, json.Unmarshal([]byte(`10`), &i))
	require.EqualValues(t, 10, i)

	require.NoError(t, json.Unmarshal([]byte(`"42"`), &i))
	require.EqualValues(t, 42, i)

	require.Error(t, json.Unmarshal([]byte(`"3.5"`), &i))

	out, err := json.Marshal(Integer(7))
	require.NoError(t, err)
	require.Equal(t, `7`, string(out))
}

func TestFlagUnmarshal(t *testing.T) {
	var f Flag
	require.NoError(t, json.Unmarshal([]byte(`true`), &f))
	require.True(t, bool(f))

	require.NoError(t, json.Unmarshal([]byte(`"false"`), &f))
	require.False(t, bool(f))

	require.NoError(t, json.Unmarshal([]byte(`"true"`), &f))
	require.True(t, bool(f))

	require.Error(t, json.Unmarshal([]byte(`"yes"`), &f))

	out, err := json.Marshal(Flag(true))
	require.NoError(t, err)
	require.Equal(t, `true`, string(out))
}
