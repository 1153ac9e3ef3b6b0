package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributionMap_Value(t *testing.T) {
	t.Run("NilMapStoresEmptyObject", func(t *testing.T) {
		var d DistributionMap
		v, err := d.Value()
		require.NoError(t, err)
		assert.Equal(t, "{}", v)
	})

	t.Run("MarshalsToJSONString", func(t *testing.T) {
		d := DistributionMap{"mcq": 0.4, "tf": 0.6}
		v, err := d.Value()
		require.NoError(t, err)
		s, ok := v.(string)
		require.True(t, ok)
		assert.JSONEq(t, `{"mcq":0.4,"tf":0.6}`, s)
	})
}

func TestDistributionMap_Scan(t *testing.T) {
	t.Run("FromString", func(t *testing.T) {
		var d DistributionMap
		require.NoError(t, d.Scan(`{"basic":0.3,"advanced":0.7}`))
		assert.InDelta(t, 0.3, d["basic"], 1e-9)
		assert.InDelta(t, 0.7, d["advanced"], 1e-9)
	})

	t.Run("FromBytes", func(t *testing.T) {
		var d DistributionMap
		require.NoError(t, d.Scan([]byte(`{"remember":1}`)))
		assert.InDelta(t, 1.0, d["remember"], 1e-9)
	})

	t.Run("NullAndEmptyBecomeEmptyMap", func(t *testing.T) {
		var d DistributionMap
		require.NoError(t, d.Scan(nil))
		assert.Empty(t, d)
		require.NoError(t, d.Scan(""))
		assert.Empty(t, d)
		require.NoError(t, d.Scan("null"))
		assert.Empty(t, d)
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		var d DistributionMap
		assert.Error(t, d.Scan(42))
	})
}
