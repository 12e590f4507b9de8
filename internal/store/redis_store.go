package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisStore menyimpan dokumen sebagai string JSON di Redis.
// Prefix scan pakai SCAN MATCH 'prefix*' lalu MGET.
type RedisStore struct {
	client *redis.Client
}

// NewRedis membuka koneksi Redis dan cek ping dulu biar gagal cepat
func NewRedis(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(val), nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	// Tanpa TTL: dokumen hidup sampai dihapus
	return s.client.Set(ctx, key, raw, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []json.RawMessage{}, nil
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	values := make([]json.RawMessage, 0, len(vals))
	for _, v := range vals {
		// Key bisa saja terhapus di antara SCAN dan MGET
		if str, ok := v.(string); ok {
			values = append(values, json.RawMessage(str))
		}
	}
	return values, nil
}
