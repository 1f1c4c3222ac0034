package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/webtools/pkg/useragent"
)

// Class buckets a classified user agent for reporting.
type Class string

const (
	ClassBrowser Class = "browser"
	ClassBot     Class = "bot"
	ClassOther   Class = "other"
	ClassUnknown Class = "unknown"
)

// ClassOf returns the reporting bucket of ua. Recognized families that are
// neither real browsers nor bots (e.g. bare AppleWebKit) are ClassOther.
func ClassOf(ua useragent.UserAgent) Class {
	switch {
	case ua.IsUnknown():
		return ClassUnknown
	case ua.IsBot():
		return ClassBot
	case ua.IsRealBrowser():
		return ClassBrowser
	default:
		return ClassOther
	}
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	Total            int64            `json:"total"`
	Classes          map[Class]int64  `json:"classes"`
	Families         map[string]int64 `json:"families"`
	OperatingSystems map[string]int64 `json:"operating_systems"`
}

// Recorder counts classified user agents.
type Recorder interface {
	Record(ctx context.Context, ua useragent.UserAgent) error
	Snapshot(ctx context.Context) (Snapshot, error)
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// New builds the recorder selected by cfg.Backend.
func New(ctx context.Context, cfg Config, log *slog.Logger) (Recorder, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendMemory:
		return NewMemoryRecorder(), nil
	case BackendRedis:
		client, err := Connect(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		return NewRedisRecorder(client, cfg.RedisKey), nil
	default:
		return nil, errors.Join(ErrUnknownBackend, fmt.Errorf("%q", cfg.Backend))
	}
}

// Counter field names shared by every backend.
const (
	fieldTotal   = "total"
	prefixClass  = "class:"
	prefixFamily = "family:"
	prefixOS     = "os:"

	// labelOther replaces labels that cannot be bucketed.
	labelOther  = "other"
	maxLabelLen = 32
)

// fields lists the counters a single classification increments.
func fields(ua useragent.UserAgent) []string {
	out := make([]string, 0, 4)
	out = append(out, fieldTotal, prefixClass+string(ClassOf(ua)))
	if name := ua.BrowserName(); name != "" {
		out = append(out, prefixFamily+bounded(name))
	}
	if os := ua.OperatingSystem(); os != "" {
		out = append(out, prefixOS+osBucket(os))
	}
	return out
}

// osBucket folds versioned Android labels to major.minor. Versions with
// components longer than two digits count as plain Android.
func osBucket(label string) string {
	version, ok := strings.CutPrefix(label, useragent.OSAndroid+" ")
	if !ok {
		return bounded(label)
	}
	major, rest, _ := strings.Cut(version, ".")
	minor, _, _ := strings.Cut(rest, ".")
	switch {
	case !shortNumber(major):
		return useragent.OSAndroid
	case minor == "" || !shortNumber(minor):
		return useragent.OSAndroid + " " + major
	default:
		return useragent.OSAndroid + " " + major + "." + minor
	}
}

func shortNumber(s string) bool {
	if s == "" || len(s) > 2 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// bounded keeps hand-built records with oversized labels out of the counters.
func bounded(label string) string {
	if len(label) > maxLabelLen {
		return labelOther
	}
	return label
}

func buildSnapshot(counters map[string]int64) Snapshot {
	snap := Snapshot{
		Classes:          make(map[Class]int64),
		Families:         make(map[string]int64),
		OperatingSystems: make(map[string]int64),
	}
	for field, n := range counters {
		switch {
		case field == fieldTotal:
			snap.Total = n
		case strings.HasPrefix(field, prefixClass):
			snap.Classes[Class(strings.TrimPrefix(field, prefixClass))] = n
		case strings.HasPrefix(field, prefixFamily):
			snap.Families[strings.TrimPrefix(field, prefixFamily)] = n
		case strings.HasPrefix(field, prefixOS):
			snap.OperatingSystems[strings.TrimPrefix(field, prefixOS)] = n
		}
	}
	return snap
}

func parseCounters(raw map[string]string) (map[string]int64, error) {
	out := make(map[string]int64, len(raw))
	for field, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		out[field] = n
	}
	return out, nil
}
