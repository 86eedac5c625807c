package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/dynamic-island/internal/config"
	"github.com/ytget/dynamic-island/internal/hotkey"
	"github.com/ytget/dynamic-island/internal/logger"
)

func TestFlagDefaults(t *testing.T) {
	cmd := New("1.2.3")
	require.NoError(t, cmd.ParseFlags(nil))

	level, err := cmd.Flags().GetString("log-level")
	require.NoError(t, err)
	assert.Equal(t, "info", level)

	hk, err := cmd.Flags().GetString("hotkey")
	require.NoError(t, err)
	assert.Equal(t, hotkey.DefaultBinding, hk)

	noHotkey, err := cmd.Flags().GetBool("no-hotkey")
	require.NoError(t, err)
	assert.False(t, noHotkey)
}

func TestFlagParsing(t *testing.T) {
	cmd := New("dev")
	o := &Options{}
	cmd.ResetFlags()
	AddOptions(cmd, o)

	require.NoError(t, cmd.ParseFlags([]string{
		"-c", "/tmp/island.json", "--log-level", "debug", "--dev", "--no-hotkey", "--log-file",
	}))
	assert.Equal(t, Options{
		ConfigPath: "/tmp/island.json",
		LogLevel:   "debug",
		LogFile:    true,
		Dev:        true,
		NoHotkey:   true,
		Hotkey:     hotkey.DefaultBinding,
	}, *o)
}

func TestInvalidHotkeyFailsBeforeStarting(t *testing.T) {
	cmd := New("dev")
	cmd.SetArgs([]string{"--hotkey", "1"})
	cmd.SetOut(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	cmd := New("1.2.3")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	var info VersionInfo
	require.NoError(t, sonic.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, VersionInfo{Name: AppName, Version: "1.2.3"}, info)

	out.Reset()
	cmd.SetArgs([]string{"version", "--short"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1.2.3", strings.TrimSpace(out.String()))
}

func TestConfigPathPrefersFlag(t *testing.T) {
	settings := config.NewSettings(test.NewApp())
	settings.SetConfigPath("/saved/config.json")

	assert.Equal(t, "/flag/config.json", ConfigPath(&Options{ConfigPath: "/flag/config.json"}, settings))
	assert.Equal(t, "/saved/config.json", ConfigPath(&Options{}, settings))
}

func TestLoggerConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)

	cfg := LoggerConfig(&Options{LogLevel: "warn"}, path)
	assert.Equal(t, "warn", cfg.Level)
	assert.Empty(t, cfg.File)

	cfg = LoggerConfig(&Options{LogLevel: "debug", LogFile: true, Dev: true}, path)
	assert.True(t, cfg.Development)
	assert.Equal(t, filepath.Join(dir, logger.LogFileName), cfg.File)
}
