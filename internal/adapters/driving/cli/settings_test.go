package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsShowCmd_Executes(t *testing.T) {
	settings := newMockSettings()
	cleanup := setupTestServices(&mockExplainer{}, settings)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Provider: (not set)")
	assert.Contains(t, out, "Target grade: 4.0")
	assert.Contains(t, out, "Max rewrites: 5")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsGradeCmd_Executes(t *testing.T) {
	settings := newMockSettings()
	cleanup := setupTestServices(&mockExplainer{}, settings)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "grade", "6.5"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.InDelta(t, 6.5, settings.lastGrade, 0.001)
	assert.Contains(t, buf.String(), "Target grade set to 6.5")
}

func TestSettingsGradeCmd_RejectsGarbage(t *testing.T) {
	cleanup := setupTestServices(&mockExplainer{}, newMockSettings())
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "grade", "abc"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid grade")
}

func TestSettingsAttemptsCmd_Executes(t *testing.T) {
	settings := newMockSettings()
	cleanup := setupTestServices(&mockExplainer{}, settings)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "attempts", "3"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, 3, settings.lastAttempts)
	assert.Contains(t, buf.String(), "Max rewrites set to 3")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "sk-1...wxyz", maskAPIKey("sk-1234567890wxyz"))
}

func TestParseChoice(t *testing.T) {
	assert.Equal(t, 1, parseChoice("", 3, 1))
	assert.Equal(t, 2, parseChoice("2", 3, 1))
	assert.Equal(t, 1, parseChoice("9", 3, 1))
	assert.Equal(t, 1, parseChoice("abc", 3, 1))
}
