// Package stats counts classified user agents per class, browser family and
// operating system.
//
// Two Recorder implementations exist: MemoryRecorder for a single process and
// RedisRecorder, which keeps every counter as a field of one Redis hash
// (HINCRBY on record, HGETALL on snapshot) so replicas share totals. New picks
// one from Config.Backend; Connect retries the initial Redis ping the same
// way the service waits for other dependencies at startup.
package stats
