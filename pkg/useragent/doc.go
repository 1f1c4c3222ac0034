// Package useragent classifies HTTP User-Agent strings into a browser
// family, version, rendering engine and operating system, and tells real
// browsers from known crawlers.
//
// Classification is a pure function of the input. Parse never fails: a
// string that matches nothing yields a UserAgent whose fields are all
// absent (empty) and whose IsUnknown reports true.
//
// # Architecture
//
// Each axis has its own ordered rule list (a cascade) built once at package
// init and never mutated:
//
//	raw ──► Normalize ──► familyRules (browser.go) ──┐
//	                  ├─► engineRules (engine.go)  ──┼──► UserAgent
//	                  └─► osRules     (os.go)      ──┘
//
// Within a cascade the first matching rule wins, so declaration order is
// precedence, not specificity. Chrome strings also contain "Safari" and
// "AppleWebKit", so the Chrome rule sits above the Safari and WebKit rules.
// Firefox pre-release code names (Namoroka, Minefield, ...) sit above the
// generic Firefox rule and still report "firefox". A family rule also
// decides which capture group carries the version, which keeps the
// version tied to the exact token that matched.
//
// Device tokens (iPhone, iPad, Android) only affect the operating system.
// Windows is reported by marketing name derived from the NT version
// ("Windows NT 6.1" is "Windows 7"); Android keeps its embedded version
// ("Android 4.1.1"). Bot tokens only appear in the family cascade, so
// crawlers normally have no engine or operating system.
//
// # Usage
//
//	ua := useragent.Parse(r.UserAgent())
//
//	switch {
//	case ua.IsBot():
//	    // skip analytics
//	case ua.IsRealBrowser():
//	    log.Printf("browser=%s os=%s", ua.FullName(), ua.OperatingSystem())
//	case ua.IsUnknown():
//	    // unidentified client
//	}
//
// For servers, Middleware stores the classification in the request context
// and FromContext reads it back. Classifier memoizes results in a bounded
// LRU when the same strings repeat.
//
// # Structured form
//
// ToMap/FromMap and MarshalJSON/UnmarshalJSON round-trip the four fields
// under the keys browser_name, browser_version, browser_engine and
// operating_system. Absent fields are nil/null. The raw string is not part
// of the payload.
package useragent
