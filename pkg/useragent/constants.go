package useragent

// Browser family labels produced by the family cascade.
const (
	// BrowserFirefox identifies Mozilla Firefox, including its pre-release code names
	BrowserFirefox = "firefox"

	// BrowserChrome identifies Google Chrome and Chrome for iOS
	BrowserChrome = "chrome"

	// BrowserMSIE identifies Microsoft Internet Explorer
	BrowserMSIE = "msie"

	// BrowserOpera identifies Opera, both Presto and Chromium based
	BrowserOpera = "opera"

	// BrowserSafari identifies Apple Safari and the Android stock browser
	BrowserSafari = "safari"

	// BrowserEdge identifies Microsoft Edge
	BrowserEdge = "edge"

	// BrowserYandex identifies Yandex Browser
	BrowserYandex = "yabrowser"

	// BrowserMaxthon identifies Maxthon
	BrowserMaxthon = "maxthon"

	// BrowserKonqueror identifies KDE Konqueror
	BrowserKonqueror = "konqueror"

	// BrowserNetscape identifies Netscape Navigator
	BrowserNetscape = "netscape"

	// BrowserLynx identifies the Lynx text browser
	BrowserLynx = "lynx"

	// BrowserAppleWebKit is the fallback family for WebKit clients without a product token
	BrowserAppleWebKit = "applewebkit"
)

// Bot family labels produced by the family cascade.
const (
	BotGoogle   = "googlebot"
	BotBing     = "bingbot"
	BotMSN      = "msnbot"
	BotYahoo    = "yahoobot"
	BotYandex   = "yandexbot"
	BotBaidu    = "baidubot"
	BotFacebook = "facebookbot"
)

// Rendering engine labels.
const (
	EngineGecko    = "gecko"
	EngineWebKit   = "webkit"
	EngineTrident  = "trident"
	EnginePresto   = "presto"
	EngineKHTML    = "khtml"
	EngineEdgeHTML = "edgehtml"
)

// Operating system labels. Android labels carry the embedded version,
// e.g. "Android 4.1.1", so OSAndroid is only a prefix for those.
const (
	OSWindows10    = "Windows 10"
	OSWindows81    = "Windows 8.1"
	OSWindows8     = "Windows 8"
	OSWindows7     = "Windows 7"
	OSWindowsVista = "Windows Vista"
	OSWindows2003  = "Windows Server 2003"
	OSWindowsXP    = "Windows XP"
	OSWindows2000  = "Windows 2000"
	OSWindowsNT    = "Windows NT"
	OSWindowsME    = "Windows ME"
	OSWindows98    = "Windows 98"
	OSWindows95    = "Windows 95"
	OSWindowsCE    = "Windows CE"
	OSWindowsPhone = "Windows Phone"
	OSMacOSX       = "Mac OS X"
	OSIPad         = "iPad"
	OSIPod         = "iPod"
	OSIPhone       = "iPhone"
	OSAndroid      = "Android"
	OSChromeOS     = "Chrome OS"
	OSFreeBSD      = "FreeBSD"
	OSOpenBSD      = "OpenBSD"
	OSLinux        = "Linux"
)

// isKnownRealBrowser reports membership in the fixed set of real browser families.
func isKnownRealBrowser(name string) bool {
	switch name {
	case BrowserFirefox, BrowserChrome, BrowserMSIE, BrowserOpera, BrowserSafari,
		BrowserEdge, BrowserYandex, BrowserMaxthon, BrowserKonqueror, BrowserNetscape,
		BrowserLynx:
		return true
	}
	return false
}

// isKnownBot reports membership in the fixed set of bot families.
func isKnownBot(name string) bool {
	switch name {
	case BotGoogle, BotBing, BotMSN, BotYahoo, BotYandex, BotBaidu, BotFacebook:
		return true
	}
	return false
}

// KnownRealBrowsers returns the family labels counted as real browsers.
// The returned slice is a fresh copy.
func KnownRealBrowsers() []string {
	return []string{
		BrowserFirefox,
		BrowserChrome,
		BrowserMSIE,
		BrowserOpera,
		BrowserSafari,
		BrowserEdge,
		BrowserYandex,
		BrowserMaxthon,
		BrowserKonqueror,
		BrowserNetscape,
		BrowserLynx,
	}
}

// KnownBots returns the family labels counted as bots. The returned slice is a fresh copy.
func KnownBots() []string {
	return []string{BotGoogle, BotBing, BotMSN, BotYahoo, BotYandex, BotBaidu, BotFacebook}
}
