package useragent

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserAgent is the classification of a single User-Agent string.
// A zero field means the corresponding axis did not match.
type UserAgent struct {
	// Raw user agent string as received
	raw string

	browserName     string
	browserVersion  string
	browserEngine   string
	operatingSystem string
}

// Parse classifies a User-Agent string. It never fails: input that matches
// no rule yields a UserAgent with every classification field absent.
func Parse(raw string) UserAgent {
	ua := classify(Normalize(raw))
	ua.raw = raw
	return ua
}

// classify runs the three cascades over an already normalized string.
func classify(normalized string) UserAgent {
	if normalized == "" {
		return UserAgent{}
	}

	family := familyRules.first(normalized)
	engine := engineRules.first(normalized)
	os := osRules.first(normalized)

	return UserAgent{
		browserName:     family.label,
		browserVersion:  family.version,
		browserEngine:   engine.label,
		operatingSystem: osLabel(os),
	}
}

// New builds a UserAgent from already known values without running the
// classification rules. Intended for tests and manual construction.
func New(raw, browserName, browserVersion, browserEngine, operatingSystem string) UserAgent {
	return UserAgent{
		raw:             raw,
		browserName:     browserName,
		browserVersion:  browserVersion,
		browserEngine:   browserEngine,
		operatingSystem: operatingSystem,
	}
}

// Raw returns the User-Agent string the record was parsed from.
func (ua UserAgent) Raw() string { return ua.raw }

// BrowserName returns the lower-case family label, e.g. "firefox" or "bingbot".
func (ua UserAgent) BrowserName() string { return ua.browserName }

// BrowserVersion returns the "major.minor" version of the family.
func (ua UserAgent) BrowserVersion() string { return ua.browserVersion }

// BrowserEngine returns the rendering engine label, e.g. "gecko".
func (ua UserAgent) BrowserEngine() string { return ua.browserEngine }

// OperatingSystem returns the operating system label, e.g. "Windows 7".
func (ua UserAgent) OperatingSystem() string { return ua.operatingSystem }

// IsUnknown reports whether no browser family was recognized. Engine and OS
// are not considered.
func (ua UserAgent) IsUnknown() bool { return ua.browserName == "" }

// IsRealBrowser reports whether the family is one of KnownRealBrowsers.
func (ua UserAgent) IsRealBrowser() bool { return isKnownRealBrowser(ua.browserName) }

// IsBot reports whether the family is one of KnownBots. Crawlers without a
// recognized token are unknown, not bots.
func (ua UserAgent) IsBot() bool { return isKnownBot(ua.browserName) }

// FullName combines family and version, e.g. "firefox 3.6". The version is
// omitted when absent; an unknown record yields "".
func (ua UserAgent) FullName() string {
	if ua.browserVersion == "" {
		return ua.browserName
	}
	return ua.browserName + " " + ua.browserVersion
}

// String implements fmt.Stringer.
func (ua UserAgent) String() string { return ua.FullName() }

var displayNames = map[string]string{
	BrowserMSIE:        "Internet Explorer",
	BrowserYandex:      "Yandex Browser",
	BrowserAppleWebKit: "AppleWebKit",
	BotGoogle:          "Googlebot",
	BotBing:            "Bingbot",
	BotMSN:             "MSNBot",
	BotYahoo:           "Yahoo! Slurp",
	BotYandex:          "YandexBot",
	BotBaidu:           "Baiduspider",
	BotFacebook:        "Facebook",
}

// DisplayName returns a human-readable name for logs and UIs, e.g.
// "Firefox 3.6" or "Internet Explorer 6.0". Unknown records yield "Unknown".
func (ua UserAgent) DisplayName() string {
	if ua.IsUnknown() {
		return "Unknown"
	}

	name, ok := displayNames[ua.browserName]
	if !ok {
		name = cases.Title(language.English).String(ua.browserName)
	}

	return strings.TrimSpace(name + " " + ua.browserVersion)
}
