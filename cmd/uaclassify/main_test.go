package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/webtools/pkg/useragent"
)

const (
	firefoxUA   = "Mozilla/5.0 (Windows NT 6.3; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0"
	googlebotUA = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestRunJSON(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "", firefoxUA, "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, "firefox", got["browser_name"])
	assert.Equal(t, "89.0", got["browser_version"])
	assert.Equal(t, "gecko", got["browser_engine"])
	assert.Equal(t, "Windows 8.1", got["operating_system"])
	assert.Equal(t, "firefox 89.0", got["full_name"])
	assert.Equal(t, true, got["is_real_browser"])

	var unknown map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &unknown))
	assert.Nil(t, unknown["browser_name"])
	assert.Contains(t, unknown, "browser_name")
	assert.Equal(t, true, unknown["is_unknown"])
}

func TestRunYAML(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "", "-format", "yaml", googlebotUA)
	require.NoError(t, err)

	var got useragent.View
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.BrowserName)
	assert.Equal(t, "googlebot", *got.BrowserName)
	assert.Nil(t, got.BrowserEngine)
	assert.True(t, got.IsBot)
	assert.False(t, got.IsRealBrowser)
}

func TestRunText(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "", "-format", "text", firefoxUA, googlebotUA, "curl/8.0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"BROWSER", "ENGINE", "OS", "CLASS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"firefox", "89.0", "gecko", "Windows", "8.1", "browser"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"googlebot", "2.1", "-", "-", "bot"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"-", "-", "-", "unknown"}, strings.Fields(lines[3]))
}

func TestRunStdin(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, firefoxUA+"\n"+googlebotUA+"\n", "-format", "json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var bot useragent.View
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &bot))
	assert.Equal(t, googlebotUA, bot.Raw)
	assert.True(t, bot.IsBot)
}

func TestRunNormalize(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "", "-normalize", "-format", "text", "  Mozilla/5.0   (X11;\tLinux)  ")
	require.NoError(t, err)
	assert.Equal(t, "Mozilla/5.0 (X11; Linux)\n", out)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, err := runCLI(t, "", "-format", "xml", firefoxUA)
		require.ErrorIs(t, err, errUnknownFormat)
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		_, err := runCLI(t, "", "-nope")
		require.Error(t, err)
	})
}

func TestRunFlushesBeforeFailure(t *testing.T) {
	t.Parallel()

	errRead := errors.New("read failed")
	stdin := io.MultiReader(strings.NewReader(firefoxUA+"\n"), iotest.ErrReader(errRead))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-format", "text"}, stdin, &stdout, &stderr)
	require.ErrorIs(t, err, errRead)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"BROWSER", "ENGINE", "OS", "CLASS"}, strings.Fields(lines[0]))
	assert.Equal(t, "firefox", strings.Fields(lines[1])[0])
}
