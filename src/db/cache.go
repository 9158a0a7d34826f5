package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Cache keys are tracked per entity so a write can clear every cached read
// of that entity without touching the others.
var (
	Cache *ristretto.Cache

	LedgerCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
	MemberCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

// Ledger Cache Functions
func SetLedgerCache(cacheKey string, value interface{}) {
	LedgerCacheKeys.Lock()
	LedgerCacheKeys.m[cacheKey] = struct{}{}
	LedgerCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func ClearAllLedgerCaches() {
	LedgerCacheKeys.Lock()
	for key := range LedgerCacheKeys.m {
		Cache.Del(key)
	}
	LedgerCacheKeys.m = make(map[string]struct{})
	LedgerCacheKeys.Unlock()
}

// Member Cache Functions
func SetMemberCache(cacheKey string, value interface{}) {
	MemberCacheKeys.Lock()
	MemberCacheKeys.m[cacheKey] = struct{}{}
	MemberCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelMemberCache(cacheKey string) {
	MemberCacheKeys.Lock()
	delete(MemberCacheKeys.m, cacheKey)
	MemberCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

func ClearAllMemberCaches() {
	MemberCacheKeys.Lock()
	for key := range MemberCacheKeys.m {
		Cache.Del(key)
	}
	MemberCacheKeys.m = make(map[string]struct{})
	MemberCacheKeys.Unlock()
}
