package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/encoding/pb"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultPrefix = "maze"
	mazeKeyFmt    = "%s:%s:%dx%d:%d"
)

var (
	ErrNilLogger = errors.New("maze service requires a logger")
)

type seedFunc func() int64

type Options struct {
	// Prefix of cache keys.
	Prefix string
	// SeedSource picks a seed when the request carries none.
	SeedSource seedFunc
}

// MazeService clamps requests, builds mazes and keeps them in an optional cache.
type MazeService struct {
	cache  i.MazeCache
	logger i.Logger
	opts   *Options
}

// NewMazeService creates a MazeService. cache may be nil to disable caching.
func NewMazeService(cache i.MazeCache, logger i.Logger, opts *Options) (i.MazeGenerator, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.SeedSource == nil {
		opts.SeedSource = func() int64 { return time.Now().UnixNano() }
	}

	return &MazeService{
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate implements i.MazeGenerator.
func (s *MazeService) Generate(ctx context.Context, req dmn.MazeRequest) (*dmn.Maze, error) {
	width, height, notices := maze.ClampDimensions(req.Width, req.Height)
	for _, notice := range notices {
		s.logger.Warn(notice)
	}

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = maze.AlgorithmCarver
	}
	if algorithm != maze.AlgorithmCarver && algorithm != maze.AlgorithmWilson {
		return nil, fmt.Errorf("%w: %q", maze.ErrUnknownAlgorithm, algorithm)
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		seed = s.opts.SeedSource()
	}

	result := &dmn.Maze{
		ID:        uuid.New(),
		Width:     width,
		Height:    height,
		Seed:      seed,
		Algorithm: algorithm,
		Notices:   notices,
	}

	key := fmt.Sprintf(mazeKeyFmt, s.opts.Prefix, algorithm, width, height, seed)
	if grid := s.cached(ctx, key); grid != nil {
		result.Grid = grid
		result.Cached = true
		return result, nil
	}

	grid, err := maze.New(width, height, algorithm, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("building maze: %w", err)
	}
	result.Grid = grid
	s.store(ctx, key, &pb.Snapshot{Seed: seed, Algorithm: algorithm, Grid: grid})

	s.logger.Info(fmt.Sprintf("Generated %s maze %dx%d with seed %d", algorithm, width, height, seed))
	return result, nil
}

// cached returns the grid stored under key, or nil. Cache failures are
// logged and treated as misses.
func (s *MazeService) cached(ctx context.Context, key string) *maze.Grid {
	if s.cache == nil {
		return nil
	}

	snapshot, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, i.ErrCacheMiss) {
			s.logger.Error(fmt.Sprintf("Reading maze cache %s: %v", key, err))
		}
		return nil
	}
	return snapshot.Grid
}

func (s *MazeService) store(ctx context.Context, key string, snapshot *pb.Snapshot) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, key, snapshot); err != nil {
		s.logger.Error(fmt.Sprintf("Writing maze cache %s: %v", key, err))
	}
}
