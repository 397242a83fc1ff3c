package config

import (
	"reflect"
	"testing"
)

func TestParseOrigins(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"https://alict.lk", []string{"https://alict.lk"}},
		{"https://alict.lk, https://admin.alict.lk", []string{"https://alict.lk", "https://admin.alict.lk"}},
		{"https://alict.lk,,  ,https://admin.alict.lk", []string{"https://alict.lk", "https://admin.alict.lk"}},
	}

	for _, tc := range cases {
		if got := parseOrigins(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseOrigins(%q) = %#v, want %#v", tc.raw, got, tc.want)
		}
	}
}

func TestCacheKeys(t *testing.T) {
	if got := CacheKey.AdminSessionKey("42"); got != "admin:42:session" {
		t.Errorf("AdminSessionKey = %q", got)
	}
	if got := CacheKey.PublicSettingsKey(); got != "settings:public" {
		t.Errorf("PublicSettingsKey = %q", got)
	}
}
