package i18n

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultLocale is used until an override or a locale tag from the engine
// arrives.
const DefaultLocale = "en"

var (
	mu     sync.RWMutex
	active = DefaultLocale
)

// Normalize reduces a locale tag to its table key ("zh-CN" -> "zh").
func Normalize(tag string) string {
	tag = strings.TrimSpace(strings.ToLower(tag))
	if tag == "" {
		return ""
	}
	if idx := strings.IndexAny(tag, "-_"); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

// SetLocale switches the active locale. Unknown locales fall back to the
// default table at lookup time; the tag itself is kept so a later table can
// serve it.
func SetLocale(tag string) {
	normalized := Normalize(tag)
	if normalized == "" {
		return
	}
	mu.Lock()
	active = normalized
	mu.Unlock()
}

// Locale returns the active locale tag.
func Locale() string {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// T resolves a key against the active locale, falling back to the default
// table and finally to the key itself.
func T(key string) string {
	mu.RLock()
	locale := active
	mu.RUnlock()

	if table, ok := tables[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if locale != DefaultLocale {
		if msg, ok := tables[DefaultLocale][key]; ok {
			return msg
		}
	}
	return key
}

// Tf resolves a key and applies fmt-style arguments.
func Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(T(key), args...)
}
