package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hdwallet-core/pkg/errno"
)

type sample struct {
	Name  string `mapstructure:"name" validate:"required"`
	Mode  string `mapstructure:"mode" validate:"oneof=fast slow"`
	Count int    `mapstructure:"count" validate:"min=1,max=10"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(sample{Name: "a", Mode: "fast", Count: 3}))

	err := Struct(sample{Mode: "medium", Count: 11})
	require.ErrorIs(t, err, errno.ErrBadInput)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), `mode must be one of [fast slow], got "medium"`)
	assert.Contains(t, err.Error(), "count must be at most 10")
}

func TestGetErrorMsgPlainError(t *testing.T) {
	assert.Equal(t, "boom", GetErrorMsg(errors.New("boom")))
}
