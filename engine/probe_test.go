package engine

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectProviderNames(t *testing.T) {
	names := []string{"CPUExecutionProvider", "CUDAExecutionProvider", "TensorrtExecutionProvider"}
	released := 0

	got, err := collectProviderNames(len(names),
		func(i int) (string, error) { return names[i], nil },
		func() { released++ },
	)

	require.NoError(t, err)
	assert.Equal(t, names, got)
	assert.Equal(t, 1, released)
}

func TestCollectProviderNamesReleasesOnFailure(t *testing.T) {
	released := 0

	got, err := collectProviderNames(3,
		func(i int) (string, error) {
			if i == 1 {
				return "", errors.New("provider list entry 1 is nil")
			}
			return "CPUExecutionProvider", nil
		},
		func() { released++ },
	)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, released, "the native array must be released exactly once even on a partial read")
}

func TestCollectProviderNamesZeroCount(t *testing.T) {
	released := 0

	got, err := collectProviderNames(0,
		func(i int) (string, error) { return "", errors.New("must not be called") },
		func() { released++ },
	)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, released)
}
