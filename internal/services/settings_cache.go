package services

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// SettingsCacheImpl implements domain.SettingsCache. The mapping is an
// immutable snapshot behind an atomic pointer: Load and Refresh build a
// new map and swap it in one step, so readers never observe a partially
// rebuilt cache and no locks are needed on the read path.
type SettingsCacheImpl struct {
	repo     domain.SettingRepository
	snapshot atomic.Pointer[map[string]string]
	loaded   atomic.Bool
}

// NewSettingsCache creates a new settings cache. Call Load before the
// listener accepts traffic.
func NewSettingsCache(repo domain.SettingRepository) *SettingsCacheImpl {
	c := &SettingsCacheImpl{repo: repo}
	empty := map[string]string{}
	c.snapshot.Store(&empty)
	return c
}

// Load implements domain.SettingsCache. The storage error propagates so
// the caller decides whether startup aborts.
func (c *SettingsCacheImpl) Load(ctx context.Context) error {
	settings, err := c.repo.FindAllActive(ctx)
	if err != nil {
		return err
	}

	next := make(map[string]string, len(settings))
	for _, s := range settings {
		next[s.Key] = s.Value
	}

	c.snapshot.Store(&next)
	c.loaded.Store(true)
	log.Printf("SETTINGS_CACHE_LOADED: count=%d", len(next))
	return nil
}

// Get implements domain.SettingsCache. Reading before Load is a warning,
// not an error: every caller supplies a sane default.
func (c *SettingsCacheImpl) Get(key, defaultValue string) string {
	if !c.loaded.Load() {
		log.Printf("SETTINGS_CACHE_NOT_LOADED: key=%s", key)
		return defaultValue
	}
	if v, ok := (*c.snapshot.Load())[key]; ok {
		return v
	}
	return defaultValue
}

// GetAll implements domain.SettingsCache, returning a defensive copy.
func (c *SettingsCacheImpl) GetAll() map[string]string {
	current := *c.snapshot.Load()
	out := make(map[string]string, len(current))
	for k, v := range current {
		out[k] = v
	}
	return out
}

// Refresh implements domain.SettingsCache
func (c *SettingsCacheImpl) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// IsLoaded implements domain.SettingsCache
func (c *SettingsCacheImpl) IsLoaded() bool {
	return c.loaded.Load()
}
