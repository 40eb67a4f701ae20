package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"pharmaradar/config"
	"pharmaradar/internal/domain"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(cfg config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	var client *redis.Client

	if cfg.URL != "" {
		opt, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("niepoprawny REDIS_URL: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("brak połączenia z Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
	}, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *RedisStore) SetTokens(ctx context.Context, sessionID string, tokens domain.Tokens) error {
	payload, err := json.Marshal(tokens)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(sessionID), payload, s.ttl).Err()
}

func (s *RedisStore) GetTokens(ctx context.Context, sessionID string) (domain.Tokens, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Tokens{}, ErrNotFound
		}
		return domain.Tokens{}, err
	}

	var tokens domain.Tokens
	if err := json.Unmarshal(payload, &tokens); err != nil {
		return domain.Tokens{}, err
	}

	if tokens.AccessToken == "" {
		return domain.Tokens{}, ErrNotFound
	}

	return tokens, nil
}

func (s *RedisStore) RemoveTokens(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

func (s *RedisStore) IsAuthenticated(ctx context.Context, sessionID string) bool {
	_, err := s.GetTokens(ctx, sessionID)
	return err == nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
