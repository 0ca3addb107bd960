package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/vinom-maze/encoding/pb"
)

// ErrCacheMiss is returned by MazeCache.Get when nothing is stored under a key.
var ErrCacheMiss = errors.New("maze not in cache")

// MazeCache stores generated mazes keyed by their generation parameters.
type MazeCache interface {
	Get(ctx context.Context, key string) (*pb.Snapshot, error)
	Set(ctx context.Context, key string, s *pb.Snapshot) error
}
