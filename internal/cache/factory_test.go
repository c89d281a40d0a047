package cache

import (
	"testing"
	"time"
)

func TestNew_MemoryByDefault(t *testing.T) {
	c, backend := New(Config{DefaultTTL: time.Minute, CleanupInterval: time.Minute})
	defer func() { _ = c.Close() }()

	if backend != BackendMemory {
		t.Errorf("backend = %q, want %q", backend, BackendMemory)
	}
	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("cache type = %T, want *MemoryCache", c)
	}
}

func TestNew_FallsBackWhenRedisUnreachable(t *testing.T) {
	c, backend := New(Config{
		RedisURL:        "redis://127.0.0.1:1/0",
		DefaultTTL:      time.Minute,
		CleanupInterval: time.Minute,
	})
	defer func() { _ = c.Close() }()

	if backend != BackendMemory {
		t.Errorf("backend = %q, want %q", backend, BackendMemory)
	}
}
