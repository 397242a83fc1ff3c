package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AdminSessionKey returns the cache key holding the active session JTI for an admin.
func (r *CacheKeyStruct) AdminSessionKey(adminID string) string {
	return fmt.Sprintf("admin:%s:session", adminID)
}

// PublicSettingsKey returns the cache key for the public site settings payload.
func (r *CacheKeyStruct) PublicSettingsKey() string {
	return "settings:public"
}

var CacheKey = NewCacheKeyStruct()
