package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		token string
		want  Operation
	}{
		{"--add", Add},
		{"--subtract", Subtract},
		{"--multiply", Multiply},
		{"--divide", Divide},
		{"add", Add},
		{"DIVIDE", Divide},
		{" --Multiply ", Multiply},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			op, err := ParseOperation(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}
}

func TestParseOperation_Unknown(t *testing.T) {
	for _, token := range []string{"", "--", "-add", "--pow", "plus", "+"} {
		_, err := ParseOperation(token)
		assert.ErrorIs(t, err, ErrUnknownOperation, "token %q", token)
	}
}

func TestOperation_Accessors(t *testing.T) {
	assert.Equal(t, []Operation{Add, Subtract, Multiply, Divide}, Operations())

	for _, op := range Operations() {
		assert.True(t, op.Valid())
		parsed, err := ParseOperation(op.Token())
		require.NoError(t, err)
		assert.Equal(t, op, parsed)
	}

	assert.Equal(t, "--subtract", Subtract.Token())
	assert.Equal(t, "/", Divide.Symbol())
	assert.Equal(t, "?", Operation("pow").Symbol())
	assert.False(t, Operation("pow").Valid())
	assert.Equal(t, "multiply", Multiply.String())
}
