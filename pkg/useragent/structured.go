package useragent

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Keys of the structured form.
const (
	KeyBrowserName     = "browser_name"
	KeyBrowserVersion  = "browser_version"
	KeyBrowserEngine   = "browser_engine"
	KeyOperatingSystem = "operating_system"
)

// ToMap returns the four classification fields keyed by their structured
// names. Absent fields map to nil. The raw string is not included.
func (ua UserAgent) ToMap() map[string]any {
	return map[string]any{
		KeyBrowserName:     optional(ua.browserName),
		KeyBrowserVersion:  optional(ua.browserVersion),
		KeyBrowserEngine:   optional(ua.browserEngine),
		KeyOperatingSystem: optional(ua.operatingSystem),
	}
}

// FromMap rebuilds a UserAgent from the output of ToMap. Missing keys and nil
// values are absent fields. Values must be string, *string or nil; anything
// else returns ErrInvalidField. The returned record has no raw string.
func FromMap(m map[string]any) (UserAgent, error) {
	var (
		ua   UserAgent
		errs []error
	)

	for _, f := range []struct {
		key string
		dst *string
	}{
		{KeyBrowserName, &ua.browserName},
		{KeyBrowserVersion, &ua.browserVersion},
		{KeyBrowserEngine, &ua.browserEngine},
		{KeyOperatingSystem, &ua.operatingSystem},
	} {
		v, err := stringValue(m[f.key])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.key, err))
			continue
		}
		*f.dst = v
	}

	if len(errs) > 0 {
		return UserAgent{}, errors.Join(append([]error{ErrInvalidField}, errs...)...)
	}
	return ua, nil
}

// View is the flat wire form of a classified user agent shared by the HTTP
// API and the CLI. Unlike the structured form it carries the raw string and
// the derived names and predicates. Absent fields are null.
type View struct {
	Raw             string  `json:"raw" yaml:"raw"`
	BrowserName     *string `json:"browser_name" yaml:"browser_name"`
	BrowserVersion  *string `json:"browser_version" yaml:"browser_version"`
	BrowserEngine   *string `json:"browser_engine" yaml:"browser_engine"`
	OperatingSystem *string `json:"operating_system" yaml:"operating_system"`
	FullName        string  `json:"full_name" yaml:"full_name"`
	DisplayName     string  `json:"display_name" yaml:"display_name"`
	IsBot           bool    `json:"is_bot" yaml:"is_bot"`
	IsRealBrowser   bool    `json:"is_real_browser" yaml:"is_real_browser"`
	IsUnknown       bool    `json:"is_unknown" yaml:"is_unknown"`
}

// View returns the wire form of ua.
func (ua UserAgent) View() View {
	return View{
		Raw:             ua.raw,
		BrowserName:     optionalPtr(ua.browserName),
		BrowserVersion:  optionalPtr(ua.browserVersion),
		BrowserEngine:   optionalPtr(ua.browserEngine),
		OperatingSystem: optionalPtr(ua.operatingSystem),
		FullName:        ua.FullName(),
		DisplayName:     ua.DisplayName(),
		IsBot:           ua.IsBot(),
		IsRealBrowser:   ua.IsRealBrowser(),
		IsUnknown:       ua.IsUnknown(),
	}
}

// payload is the JSON shape of the structured form.
type payload struct {
	BrowserName     *string `json:"browser_name"`
	BrowserVersion  *string `json:"browser_version"`
	BrowserEngine   *string `json:"browser_engine"`
	OperatingSystem *string `json:"operating_system"`
}

// MarshalJSON encodes the structured form; absent fields become null.
func (ua UserAgent) MarshalJSON() ([]byte, error) {
	return json.Marshal(payload{
		BrowserName:     optionalPtr(ua.browserName),
		BrowserVersion:  optionalPtr(ua.browserVersion),
		BrowserEngine:   optionalPtr(ua.browserEngine),
		OperatingSystem: optionalPtr(ua.operatingSystem),
	})
}

// UnmarshalJSON decodes the structured form produced by MarshalJSON.
func (ua *UserAgent) UnmarshalJSON(data []byte) error {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return errors.Join(ErrInvalidPayload, err)
	}
	*ua = UserAgent{
		browserName:     deref(p.BrowserName),
		browserVersion:  deref(p.BrowserVersion),
		browserEngine:   deref(p.BrowserEngine),
		operatingSystem: deref(p.OperatingSystem),
	}
	return nil
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optionalPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stringValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case *string:
		return deref(val), nil
	default:
		return "", fmt.Errorf("unexpected type %T", v)
	}
}
