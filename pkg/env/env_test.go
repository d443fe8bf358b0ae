package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unset removes key for the duration of the test. t.Setenv registers the
// restore; os.Unsetenv then makes the variable genuinely absent.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestGet(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("CSB_TEST_FOO", "bar")

		value, err := Get("CSB_TEST_FOO")
		require.NoError(t, err)
		assert.Equal(t, "bar", value)
	})

	t.Run("empty value is present", func(t *testing.T) {
		t.Setenv("CSB_TEST_EMPTY", "")

		value, err := Get("CSB_TEST_EMPTY")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("missing variable yields MissingError naming the key", func(t *testing.T) {
		unset(t, "CSB_TEST_QUX")

		_, err := Get("CSB_TEST_QUX")
		require.Error(t, err)

		var missing *MissingError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "CSB_TEST_QUX", missing.Key)
		assert.Contains(t, err.Error(), "CSB_TEST_QUX")
		assert.ErrorIs(t, err, ErrMissing)
	})
}

func TestGetDefault(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		present  bool
		fallback string
		want     string
	}{
		{"set value wins over fallback", "bar", true, "fallback", "bar"},
		{"empty value wins over fallback", "", true, "fallback", ""},
		{"missing variable falls back", "", false, "fallback", "fallback"},
		{"empty fallback is a legitimate default", "", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.present {
				t.Setenv("CSB_TEST_BAZ", tt.value)
			} else {
				unset(t, "CSB_TEST_BAZ")
			}

			assert.Equal(t, tt.want, GetDefault("CSB_TEST_BAZ", tt.fallback))
		})
	}
}

func TestLookup(t *testing.T) {
	t.Setenv("CSB_TEST_FOO", "bar")
	value, ok := Lookup("CSB_TEST_FOO")
	assert.True(t, ok)
	assert.Equal(t, "bar", value)

	unset(t, "CSB_TEST_FOO")
	_, ok = Lookup("CSB_TEST_FOO")
	assert.False(t, ok)
}

func TestMustGet(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("CSB_TEST_FOO", "bar")
		assert.Equal(t, "bar", MustGet("CSB_TEST_FOO"))
	})

	t.Run("panics with the key when missing", func(t *testing.T) {
		unset(t, "CSB_TEST_QUX")

		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.Contains(t, err.Error(), "CSB_TEST_QUX")
		}()
		MustGet("CSB_TEST_QUX")
	})
}

// TestResolutionScenarios walks the four canonical resolution outcomes in
// one place: a set variable wins, an absent one falls back, an absent one
// without a fallback fails naming the key, and set-to-empty beats the
// fallback.
func TestResolutionScenarios(t *testing.T) {
	t.Setenv("CSB_TEST_FOO", "bar")
	t.Setenv("CSB_TEST_EMPTY", "")
	unset(t, "CSB_TEST_BAZ")
	unset(t, "CSB_TEST_QUX")

	value, err := Get("CSB_TEST_FOO")
	require.NoError(t, err)
	assert.Equal(t, "bar", value)

	assert.Equal(t, "default", GetDefault("CSB_TEST_BAZ", "default"))

	_, err = Get("CSB_TEST_QUX")
	var missing *MissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "CSB_TEST_QUX", missing.Key)

	assert.Equal(t, "", GetDefault("CSB_TEST_EMPTY", "fallback"))
}

func TestGetIsIdempotent(t *testing.T) {
	t.Setenv("CSB_TEST_FOO", "bar")

	first, err := Get("CSB_TEST_FOO")
	require.NoError(t, err)
	second, err := Get("CSB_TEST_FOO")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	unset(t, "CSB_TEST_QUX")
	assert.Equal(t, "d", GetDefault("CSB_TEST_QUX", "d"))
	assert.Equal(t, "d", GetDefault("CSB_TEST_QUX", "d"))
}
