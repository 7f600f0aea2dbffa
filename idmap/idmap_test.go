package idmap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmrgraph/idmap"
	"github.com/katalvlaran/dmrgraph/registry"
)

func TestCreateDMRID_Scenario(t *testing.T) {
	id, err := idmap.CreateDMRID(79, 10000)
	require.NoError(t, err)
	assert.Equal(t, 10080, id)

	raw, err := idmap.ReverseCreateDMRID(10080, 10000)
	require.NoError(t, err)
	assert.Equal(t, 79, raw)
}

func TestRoundTrip(t *testing.T) {
	for _, offset := range []int{0, 1, 10000, 20000, 123457} {
		for _, raw := range []int{0, 1, 2, 79, 9999, 500000} {
			id, err := idmap.CreateDMRID(raw, offset)
			require.NoError(t, err)
			assert.NotZero(t, id, "persisted id 0 is reserved")

			back, err := idmap.ReverseCreateDMRID(id, offset)
			require.NoError(t, err)
			assert.Equal(t, raw, back)

			conv, err := idmap.ConvertDMRID(raw, offset)
			require.NoError(t, err)
			assert.Equal(t, id, conv)
		}
	}
}

func TestInvalidIDs(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (int, error)
	}{
		{"negative raw", func() (int, error) { return idmap.CreateDMRID(-1, 0) }},
		{"negative offset", func() (int, error) { return idmap.ConvertDMRID(3, -10) }},
		{"reverse below offset", func() (int, error) { return idmap.ReverseCreateDMRID(10000, 10000) }},
		{"reverse zero", func() (int, error) { return idmap.ReverseCreateDMRID(0, 0) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			require.ErrorIs(t, err, idmap.ErrInvalidID)
			var ie *idmap.InvalidIDError
			assert.True(t, errors.As(err, &ie))
		})
	}
}

// TestDoubleOffsetDetected shows that shifting twice is caught when reversing
// with a smaller offset than was applied.
func TestDoubleOffsetDetected(t *testing.T) {
	once, err := idmap.CreateDMRID(5, 10000)
	require.NoError(t, err)
	twice, err := idmap.ConvertDMRID(once, 10000)
	require.NoError(t, err)

	raw, err := idmap.ReverseCreateDMRID(twice, 10000)
	require.NoError(t, err)
	assert.NotEqual(t, 5, raw, "double shift no longer round-trips")

	_, err = idmap.ReverseCreateDMRID(once, 20000)
	assert.ErrorIs(t, err, idmap.ErrInvalidID)
}

func TestValidateGeneID(t *testing.T) {
	reg := registry.New()
	_, _, _ = reg.Resolve("NPPA")
	assert.NoError(t, idmap.ValidateGeneID(reg, 0))
	assert.ErrorIs(t, idmap.ValidateGeneID(reg, 1), registry.ErrUnknownGene)
}

func TestOffsetFor(t *testing.T) {
	assert.Equal(t, 0, idmap.OffsetFor(0, 0))
	assert.Equal(t, 20000, idmap.OffsetFor(2, 0))
	assert.Equal(t, 150, idmap.OffsetFor(3, 50))
}
