package handlers

import (
	"hash/fnv"
	"strconv"
	"strings"
)

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// sampleSeed keeps a store's demo orders stable between page loads.
func sampleSeed(storeID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(storeID))
	return int64(h.Sum64())
}
