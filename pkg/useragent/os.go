package useragent

// osRules is the operating system cascade. Device tokens precede desktop
// ones because iOS strings say "like Mac OS X" and Android strings say
// "Linux". Windows Phone 8.1+ also claims Android and iPhone, so it comes
// first. Windows versions are mapped from the NT kernel number to the
// marketing name.
var osRules = cascade{
	newRule(OSWindowsPhone, `\bwindows phone\b`, 0),

	// The Android version is reported verbatim: "Android 2.1-update1" -> "Android 2.1".
	newRule(OSAndroid, `\bandroid(?:[ /]([0-9]+(?:\.[0-9]+)*))?`, 1),
	newRule(OSIPad, `\bipad\b`, 0),
	newRule(OSIPod, `\bipod\b`, 0),
	newRule(OSIPhone, `\biphone\b`, 0),

	newRule(OSWindows10, `\bwindows nt 10\.0\b`, 0),
	newRule(OSWindows81, `\bwindows nt 6\.3\b`, 0),
	newRule(OSWindows8, `\bwindows nt 6\.2\b`, 0),
	newRule(OSWindows7, `\bwindows nt 6\.1\b`, 0),
	newRule(OSWindowsVista, `\bwindows nt 6\.0\b`, 0),
	newRule(OSWindows2003, `\bwindows nt 5\.2\b`, 0),
	newRule(OSWindowsXP, `\bwindows nt 5\.1\b`, 0),
	newRule(OSWindows2000, `\bwindows (?:nt 5\.01?|2000)\b`, 0),
	newRule(OSWindowsNT, `\bwindows nt\b`, 0),
	newRule(OSWindowsME, `\bwin(?:dows me|9x 4\.90)\b`, 0),
	newRule(OSWindows98, `\bwin(?:dows )?98\b`, 0),
	newRule(OSWindows95, `\bwin(?:dows )?95\b`, 0),
	newRule(OSWindowsCE, `\bwindows ce\b`, 0),

	newRule(OSChromeOS, `\bcros\b`, 0),
	newRule(OSMacOSX, `\b(?:mac os x|macintosh)\b`, 0),
	newRule(OSFreeBSD, `\bfreebsd\b`, 0),
	newRule(OSOpenBSD, `\bopenbsd\b`, 0),
	newRule(OSLinux, `\blinux\b`, 0),
}

// osLabel renders an OS result. Only versioned rules (Android) append the version.
func osLabel(r result) string {
	if !r.matched {
		return ""
	}
	if r.version != "" {
		return r.label + " " + r.version
	}
	return r.label
}
