package main

import (
	"fmt"
	"github.com/Gabriel-Freitas-S/analise-hash/hashfunc"
	"os"
	"strconv"
	"strings"
)

// getEnv - Returns the value of environment variable key, or def when unset or empty
func getEnv(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return def
}

// atoi64Default - Returns s as an int64, or def when s does not parse
func atoi64Default(s string, def int64) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return def
	}

	return value
}

// parseKinds - Parses a comma separated list of hash function names, "all" or an empty list gives every kind
func parseKinds(list string) (kinds []hashfunc.Kind, err error) {
	list = strings.TrimSpace(list)
	if list == "" || strings.EqualFold(list, "all") {
		kinds = hashfunc.Kinds
		return
	}

	seen := make(map[hashfunc.Kind]bool)
	for _, name := range strings.Split(list, ",") {
		var kind hashfunc.Kind
		kind, err = hashfunc.ParseKind(name)
		if err != nil {
			err = fmt.Errorf("invalid -hash value: %w", err)
			return
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}

	return
}
