package object

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectEquality(t *testing.T) {
	tests := []struct {
		a, b     Object
		expected bool
	}{
		{NewInt(2), NewInt(2), true},
		{NewInt(2), NewInt(3), false},
		{NewInt(2), NewFloat(2), true},
		{NewFloat(2.5), NewFloat(2.5), true},
		{NewString("a"), NewString("a"), true},
		{NewString("a"), NewInt(1), false},
		{NewBool(true), True, true},
		{NewBool(false), True, false},
		{nil, nil, true},
		{nil, NewInt(0), false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, Equals(tt.a, tt.b), "%v == %v", tt.a, tt.b)
	}
}

func TestInspect(t *testing.T) {
	require.Equal(t, "42", NewInt(42).Inspect())
	require.Equal(t, "1.5", NewFloat(1.5).Inspect())
	require.Equal(t, `"hi"`, NewString("hi").Inspect())
	require.Equal(t, "false", NewBool(false).Inspect())
}

func TestFromGoType(t *testing.T) {
	require.Equal(t, NewInt(3), FromGoType(3))
	require.Equal(t, NewFloat(0.5), FromGoType(0.5))
	require.Equal(t, NewString("x"), FromGoType("x"))
	require.Equal(t, True, FromGoType(true))
	require.Nil(t, FromGoType([]int{1}))
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal([]Object{NewInt(1), NewFloat(2.5), NewString("s"), True})
	require.NoError(t, err)
	require.Equal(t, `[1,2.5,"s",true]`, string(data))
}
