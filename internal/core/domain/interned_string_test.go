package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("src/com/acme/Widget.java")
	is2 := domain.NewInternedString("src/com/acme/Widget.java")

	assert.Equal(t, is1.Value(), is2.Value())
	assert.Equal(t, "src/com/acme/Widget.java", is1.String())
}

func TestInternedString_ZeroValue(t *testing.T) {
	var zero domain.InternedString

	assert.Empty(t, zero.String())

	data, err := zero.MarshalText()
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestInternedStringJSON(t *testing.T) {
	t.Run("Marshal and Unmarshal preserve string value", func(t *testing.T) {
		original := domain.NewInternedString("src/A.java")

		data, err := json.Marshal(original)
		require.NoError(t, err)
		assert.JSONEq(t, `"src/A.java"`, string(data))

		var unmarshaled domain.InternedString
		require.NoError(t, json.Unmarshal(data, &unmarshaled))
		assert.Equal(t, original, unmarshaled)
	})

	t.Run("Marshal and Unmarshal in slice", func(t *testing.T) {
		original := domain.NewInternedStrings([]string{"src/A.java", "src/B.java"})

		data, err := json.Marshal(original)
		require.NoError(t, err)
		assert.JSONEq(t, `["src/A.java","src/B.java"]`, string(data))

		var unmarshaled []domain.InternedString
		require.NoError(t, json.Unmarshal(data, &unmarshaled))
		assert.Equal(t, original, unmarshaled)
	})
}

func TestNewInternedStrings(t *testing.T) {
	t.Run("Empty slice returns empty slice", func(t *testing.T) {
		assert.Empty(t, domain.NewInternedStrings([]string{}))
	})

	t.Run("Duplicates share a handle", func(t *testing.T) {
		interned := domain.NewInternedStrings([]string{"src/A.java", "src/A.java"})
		assert.Equal(t, interned[0].Value(), interned[1].Value())
	})
}
