package ir

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/risor-io/stackscript/object"
	"github.com/stretchr/testify/require"
)

func TestVerifyWellFormed(t *testing.T) {
	seq := []Instruction{
		Push{Value: object.NewInt(2)},
		Push{Value: object.NewInt(3)},
		Operation{Op: "*"},
		DeclareVariable{Name: "x"},
		DeclareFunction{Name: "f", Body: []Instruction{
			GetVariable{Name: "x"},
			Call{Name: "print", ArgCount: 1},
			Pop{},
			Ret{},
		}},
		Call{Name: "f"},
	}
	require.NoError(t, Verify(seq))
	require.NoError(t, Verify(nil))
}

func TestVerifyUnderflow(t *testing.T) {
	err := Verify([]Instruction{Pop{}})
	require.Error(t, err)

	var underflow *UnderflowError
	require.True(t, errors.As(err, &underflow))
	require.Equal(t, "<main>", underflow.Scope)
	require.Equal(t, 0, underflow.Index)
	require.Equal(t, 0, underflow.Depth)
	require.Contains(t, underflow.Error(), "Pop() consumes 1 value(s) but the stack holds 0")
	require.Equal(t, "E2001", string(underflow.Code()))
}

func TestVerifyCollectsAllViolations(t *testing.T) {
	seq := []Instruction{
		Push{Value: object.NewInt(1)},
		Operation{Op: "+"},
		DeclareFunction{Name: "g", Body: []Instruction{
			Call{Name: "h", ArgCount: 2},
			Ret{},
			Pop{},
		}},
	}
	err := Verify(seq)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 3)

	first, ok := merr.Errors[0].(*UnderflowError)
	require.True(t, ok)
	require.Equal(t, 1, first.Index)
	require.Equal(t, 1, first.Depth)

	second, ok := merr.Errors[1].(*UnderflowError)
	require.True(t, ok)
	require.Equal(t, "g", second.Scope)

	third, ok := merr.Errors[2].(*UnreachableError)
	require.True(t, ok)
	require.Equal(t, "g", third.Scope)
	require.Equal(t, 2, third.Index)
	require.Equal(t, "E2002", string(third.Code()))
}
