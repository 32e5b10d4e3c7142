package service

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

const backupKeyExt = ".json"

// BackupKey names a backup object created at t: <prefix>_<epoch-millis>.json.
func BackupKey(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%d%s", prefix, t.UnixMilli(), backupKeyExt)
}

// ParseBackupKey extracts the creation time encoded in key. It reports false
// for keys that do not follow the naming for prefix exactly.
func ParseBackupKey(prefix, key string) (time.Time, bool) {
	millis, ok := parseKeyMillis(backupKeyPattern(prefix), key)
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(millis).UTC(), true
}

func backupKeyPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `_(\d+)` + regexp.QuoteMeta(backupKeyExt) + `$`)
}

func parseKeyMillis(re *regexp.Regexp, key string) (int64, bool) {
	m := re.FindStringSubmatch(key)
	if m == nil {
		return 0, false
	}
	millis, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return millis, true
}

type timedKey struct {
	key    string
	millis int64
}

// sortBackupKeys keeps the keys named for prefix and orders them by their
// embedded timestamp, oldest first. The store's listing order is never
// trusted.
func sortBackupKeys(prefix string, keys []string) []timedKey {
	re := backupKeyPattern(prefix)

	timed := make([]timedKey, 0, len(keys))
	for _, key := range keys {
		millis, ok := parseKeyMillis(re, key)
		if !ok {
			continue
		}
		timed = append(timed, timedKey{key: key, millis: millis})
	}

	sort.Slice(timed, func(i, j int) bool {
		if timed[i].millis != timed[j].millis {
			return timed[i].millis < timed[j].millis
		}
		return timed[i].key < timed[j].key
	})
	return timed
}

// selectForPruning returns the keys to delete so that only the retain most
// recent backups named for prefix survive, oldest first.
func selectForPruning(prefix string, keys []string, retain int) []string {
	timed := sortBackupKeys(prefix, keys)
	excess := len(timed) - retain
	if retain <= 0 || excess <= 0 {
		return nil
	}

	victims := make([]string, 0, excess)
	for _, tk := range timed[:excess] {
		victims = append(victims, tk.key)
	}
	return victims
}
