package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/alictclasses/alict-backend/internal/config"
	"github.com/alictclasses/alict-backend/internal/repository"
)

// SettingService handles site settings. The public subset is cached in Redis
// since every page load of the marketing site reads it.
type SettingService struct {
	settingRepo *repository.SettingRepository
	rdb         *redis.Client
	cfg         *config.Config
	log         zerolog.Logger
}

func NewSettingService(settingRepo *repository.SettingRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *SettingService {
	return &SettingService{
		settingRepo: settingRepo,
		rdb:         rdb,
		cfg:         cfg,
		log:         log.With().Str("component", "setting_service").Logger(),
	}
}

// GetAllSettings returns all settings as a key/value map (admin view, uncached).
func (s *SettingService) GetAllSettings(ctx context.Context) (map[string]string, error) {
	settingsList, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get all settings")
		return nil, err
	}

	settingsMap := make(map[string]string)
	for _, setting := range settingsList {
		settingsMap[setting.Key] = setting.Value
	}
	return settingsMap, nil
}

// GetPublicSettings returns the settings map for the marketing site, served
// from the Redis cache when warm. A cold or unavailable cache falls back to
// the database.
func (s *SettingService) GetPublicSettings(ctx context.Context) (map[string]string, error) {
	cacheKey := config.CacheKey.PublicSettingsKey()

	cached, err := s.rdb.Get(ctx, cacheKey).Result()
	if err == nil {
		var settingsMap map[string]string
		if err := json.Unmarshal([]byte(cached), &settingsMap); err == nil {
			return settingsMap, nil
		}
		s.log.Warn().Msg("corrupt settings cache entry, refetching")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("settings cache read failed")
	}

	settingsMap, err := s.GetAllSettings(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(settingsMap); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, s.cfg.SettingsCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("settings cache write failed")
		}
	}

	return settingsMap, nil
}

// UpdateSettings upserts the given keys and invalidates the public cache.
// Settings are low volume; iterative upserts are fine.
func (s *SettingService) UpdateSettings(ctx context.Context, settingsMap map[string]string) error {
	for key, value := range settingsMap {
		if err := s.settingRepo.Upsert(ctx, key, value); err != nil {
			s.log.Error().Err(err).Str("key", key).Msg("failed to update setting")
			return err
		}
	}

	if err := s.rdb.Del(ctx, config.CacheKey.PublicSettingsKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("settings cache invalidation failed")
	}
	return nil
}

// GetSettingByKey returns a single setting value.
func (s *SettingService) GetSettingByKey(ctx context.Context, key string) (string, error) {
	setting, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}
