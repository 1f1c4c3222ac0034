package useragent

// familyRules is the family+version cascade. Order is precedence: bots
// first, then products whose strings embed another product's token
// (Opera, Edge, Yandex and Maxthon carry "Chrome"; Chrome carries
// "Safari"; Firefox code names may carry "Firefox"), then the generic
// Safari and WebKit fallbacks.
var familyRules = cascade{
	// Crawlers. Versions are optional, "Yahoo! Slurp" never has one.
	newRule(BotGoogle, `googlebot(?:-[a-z]+)?(?:/`+versionPattern+`)?`, 1),
	newRule(BotBing, `bingbot(?:/`+versionPattern+`)?`, 1),
	newRule(BotMSN, `msnbot(?:-[a-z]+)?(?:/`+versionPattern+`)?`, 1),
	newRule(BotYandex, `yandexbot(?:/`+versionPattern+`)?`, 1),
	newRule(BotBaidu, `baiduspider(?:-[a-z]+)?(?:/`+versionPattern+`)?`, 1),
	newRule(BotFacebook, `facebookexternalhit(?:/`+versionPattern+`)?`, 1),
	newRule(BotFacebook, `\bfacebot\b`, 0),
	newRule(BotYahoo, `yahoo! slurp`, 0),

	// Firefox pre-release and rebranded builds report their own version.
	versioned(BrowserFirefox, `(?:namoroka|shiretoko|minefield|granparadiso|iceweasel)/`),

	// Presto Opera 10+ freezes "Opera/9.80" and puts the real version last.
	newRule(BrowserOpera, `\bopera[/ ].*\bversion/`+versionPattern, 1),
	versioned(BrowserOpera, `\bopr/`),
	versioned(BrowserOpera, `\bopera[/ ]`),

	versioned(BrowserEdge, `\bedg(?:e|a|ios)?/`),
	versioned(BrowserYandex, `\byabrowser/`),
	newRule(BrowserMaxthon, `\bmaxthon(?:[/ ]`+versionPattern+`)?`, 1),
	versioned(BrowserChrome, `\b(?:chrome|crios)/`),

	versioned(BrowserMSIE, `\bmsie `),
	// IE 11 dropped the MSIE token and reports "Trident/7.0; rv:11.0".
	newRule(BrowserMSIE, `\btrident/[0-9.]+.*\brv:`+versionPattern, 1),

	versioned(BrowserFirefox, `\bfirefox/`),
	versioned(BrowserKonqueror, `\bkonqueror[/ ]`),
	versioned(BrowserNetscape, `\b(?:netscape[0-9]?|navigator)/`),
	versioned(BrowserLynx, `\blynx/`),

	// Safari and the Android stock browser publish the product version in
	// "Version/x"; the "Safari/x" token is a WebKit build number.
	newRule(BrowserSafari, `\bversion/`+versionPattern+`.*\bsafari\b`, 1),
	versioned(BrowserSafari, `\bsafari/`),

	// WebKit clients without a product token, e.g. iOS web views.
	versioned(BrowserAppleWebKit, `\bapplewebkit/`),
}
