package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/encoding/pb"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/redis/go-redis/v9"
)

// RedisMazeCache keeps protobuf encoded mazes in Redis with a TTL.
type RedisMazeCache struct {
	client  *redis.Client
	encoder *pb.Protobuf
	ttl     time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (i.MazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}

	return &RedisMazeCache{
		client:  client,
		encoder: &pb.Protobuf{},
		ttl:     time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Get returns the maze stored under key, or i.ErrCacheMiss.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (*pb.Snapshot, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, i.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	return c.encoder.UnmarshalMaze(payload)
}

// Set stores s under key, replacing any previous entry and resetting its TTL.
func (c *RedisMazeCache) Set(ctx context.Context, key string, s *pb.Snapshot) error {
	payload, err := c.encoder.MarshalMaze(s)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, payload, c.ttl).Err()
}
