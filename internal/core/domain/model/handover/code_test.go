package handover_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/handover"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("produces codes of the requested length", func(t *testing.T) {
		for _, length := range []int{4, 6, 8} {
			t.Run(fmt.Sprintf("length %d", length), func(t *testing.T) {
				code, err := handover.Generate(length)

				require.NoError(t, err)
				assert.Len(t, code.String(), length)
				for _, c := range code.String() {
					assert.GreaterOrEqual(t, c, '0')
					assert.LessOrEqual(t, c, '9')
				}
			})
		}
	})

	t.Run("rejects out-of-range lengths", func(t *testing.T) {
		for _, length := range []int{0, 3, 11, -1} {
			_, err := handover.Generate(length)
			require.Error(t, err, "length %d", length)
		}
	})

	t.Run("consecutive codes differ", func(t *testing.T) {
		// Statistically a fixed 8-digit collision across 16 draws indicates
		// a broken random source rather than bad luck.
		seen := make(map[string]bool)
		collisions := 0
		for range 16 {
			code, err := handover.Generate(8)
			require.NoError(t, err)
			if seen[code.String()] {
				collisions++
			}
			seen[code.String()] = true
		}
		assert.Zero(t, collisions)
	})
}

func TestCodeFromString(t *testing.T) {
	t.Run("accepts stored digits with leading zeros", func(t *testing.T) {
		code, err := handover.CodeFromString("0042")

		require.NoError(t, err)
		assert.Equal(t, "0042", code.String())
		require.NoError(t, code.Validate())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := handover.CodeFromString("")
		require.Error(t, err)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := handover.CodeFromString("12a4")
		require.Error(t, err)
	})

	t.Run("rejects wrong lengths", func(t *testing.T) {
		_, err := handover.CodeFromString("123")
		require.Error(t, err)

		_, err = handover.CodeFromString("12345678901")
		require.Error(t, err)
	})
}

func TestCode_Matches(t *testing.T) {
	code, err := handover.CodeFromString("4821")
	require.NoError(t, err)

	t.Run("matches exact input", func(t *testing.T) {
		assert.True(t, code.Matches("4821"))
	})

	t.Run("rejects wrong input", func(t *testing.T) {
		assert.False(t, code.Matches("0000"))
		assert.False(t, code.Matches("482"))
		assert.False(t, code.Matches("48211"))
		assert.False(t, code.Matches(""))
	})

	t.Run("zero code matches nothing", func(t *testing.T) {
		var zero handover.Code
		assert.False(t, zero.Matches(""))
		assert.False(t, zero.Matches("0000"))
	})
}

func TestCode_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var code handover.Code

		require.Error(t, code.Validate())
		assert.True(t, code.IsZero())
	})

	t.Run("generated code is valid", func(t *testing.T) {
		code, err := handover.Generate(handover.DefaultLength)

		require.NoError(t, err)
		require.NoError(t, code.Validate())
		assert.False(t, code.IsZero())
	})
}
