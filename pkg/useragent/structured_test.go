package useragent_test

import (
	"encoding/json"
	"testing"

	"github.com/dmitrymomot/webtools/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameFields(t *testing.T, expected, actual useragent.UserAgent) {
	t.Helper()
	assert.Equal(t, expected.BrowserName(), actual.BrowserName())
	assert.Equal(t, expected.BrowserVersion(), actual.BrowserVersion())
	assert.Equal(t, expected.BrowserEngine(), actual.BrowserEngine())
	assert.Equal(t, expected.OperatingSystem(), actual.OperatingSystem())
}

func TestToMap(t *testing.T) {
	t.Parallel()

	t.Run("firefox", func(t *testing.T) {
		t.Parallel()
		ua := useragent.Parse("Mozilla/5.0 (X11; U; Linux x86_64; en-US; rv:1.9.2pre) Gecko/20100116 Ubuntu/9.10 (karmic) Namoroka/3.6pre")

		assert.Equal(t, map[string]any{
			"browser_name":     "firefox",
			"browser_version":  "3.6",
			"browser_engine":   "gecko",
			"operating_system": "Linux",
		}, ua.ToMap())
	})

	t.Run("absent fields are nil", func(t *testing.T) {
		t.Parallel()
		ua := useragent.Parse("Mozilla/5.0 (compatible; Yahoo! Slurp; http://help.yahoo.com/help/us/ysearch/slurp)")

		m := ua.ToMap()
		require.Len(t, m, 4)
		assert.Equal(t, "yahoobot", m[useragent.KeyBrowserName])
		assert.Nil(t, m[useragent.KeyBrowserVersion])
		assert.Nil(t, m[useragent.KeyBrowserEngine])
		assert.Nil(t, m[useragent.KeyOperatingSystem])
	})
}

func TestFromMap_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Mozilla/5.0 (X11; U; Linux x86_64; en-US; rv:1.9.2pre) Gecko/20100116 Ubuntu/9.10 (karmic) Namoroka/3.6pre",
		"Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.0; DigExt)",
		"Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)",
		"Mozilla/5.0 (Linux; Android 4.1.1; Nexus 7 Build/JRO03D) AppleWebKit/535.19 (KHTML, like Gecko) Chrome/18.0.1025.166 Safari/535.19",
		"hmm...",
		"",
	}

	for _, in := range inputs {
		original := useragent.Parse(in)

		restored, err := useragent.FromMap(original.ToMap())
		require.NoError(t, err)
		sameFields(t, original, restored)
		assert.Empty(t, restored.Raw(), "raw string is not part of the payload")
	}
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	t.Run("missing keys are absent", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.FromMap(map[string]any{"browser_name": "chrome"})
		require.NoError(t, err)
		assert.Equal(t, "chrome", ua.BrowserName())
		assert.Empty(t, ua.BrowserVersion())
		assert.False(t, ua.IsUnknown())
	})

	t.Run("nil map", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.FromMap(nil)
		require.NoError(t, err)
		assert.True(t, ua.IsUnknown())
	})

	t.Run("string pointers", func(t *testing.T) {
		t.Parallel()
		name := "opera"
		ua, err := useragent.FromMap(map[string]any{"browser_name": &name, "browser_version": (*string)(nil)})
		require.NoError(t, err)
		assert.Equal(t, "opera", ua.BrowserName())
		assert.Empty(t, ua.BrowserVersion())
	})

	t.Run("invalid type", func(t *testing.T) {
		t.Parallel()
		_, err := useragent.FromMap(map[string]any{"browser_name": 42})
		require.Error(t, err)
		assert.ErrorIs(t, err, useragent.ErrInvalidField)
		assert.Contains(t, err.Error(), "browser_name")
	})

	t.Run("errors follow key order", func(t *testing.T) {
		t.Parallel()
		in := map[string]any{
			"operating_system": 1.5,
			"browser_engine":   true,
			"browser_version":  7,
			"browser_name":     42,
		}
		want := "invalid user agent field value\n" +
			"browser_name: unexpected type int\n" +
			"browser_version: unexpected type int\n" +
			"browser_engine: unexpected type bool\n" +
			"operating_system: unexpected type float64"
		for range 20 {
			_, err := useragent.FromMap(in)
			require.Error(t, err)
			assert.Equal(t, want, err.Error())
		}
	})
}

func TestView(t *testing.T) {
	t.Parallel()

	raw := "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)"
	data, err := json.Marshal(useragent.Parse(raw).View())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"raw": "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)",
		"browser_name": "bingbot",
		"browser_version": "2.0",
		"browser_engine": null,
		"operating_system": null,
		"full_name": "bingbot 2.0",
		"display_name": "Bingbot 2.0",
		"is_bot": true,
		"is_real_browser": false,
		"is_unknown": false
	}`, string(data))

	empty := useragent.Parse("").View()
	assert.Nil(t, empty.BrowserName)
	assert.True(t, empty.IsUnknown)
	assert.Equal(t, "Unknown", empty.DisplayName)
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	original := useragent.Parse("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"browser_name": "googlebot",
		"browser_version": "2.1",
		"browser_engine": null,
		"operating_system": null
	}`, string(data))

	var restored useragent.UserAgent
	require.NoError(t, json.Unmarshal(data, &restored))
	sameFields(t, original, restored)
	assert.True(t, restored.IsBot())
}

func TestJSON_InvalidPayload(t *testing.T) {
	t.Parallel()

	var ua useragent.UserAgent
	err := json.Unmarshal([]byte(`{"browser_name": 12}`), &ua)
	require.Error(t, err)
	assert.ErrorIs(t, err, useragent.ErrInvalidPayload)
}
