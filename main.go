package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient    *redis.Client
	mazeCache      i.MazeCache
	mazeService    i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

// Command line flags
var (
	serveFlag bool
	seedFlag  int64
	algorithm string
)

func initLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	if err := l.SetLevel(config.Envs.LogLevel); err != nil {
		l.Warn(fmt.Sprintf("Unknown log level %q, keeping info", config.Envs.LogLevel))
	}
	return l
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeCache() {
	c, err := cache.NewRedisMazeCache(redisClient, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze cache: %v", err))
		os.Exit(1)
	}
	mazeCache = c
	appLogger.Info("Maze cache initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(mazeCache, initLogger("MAZE-SERVICE", config.ColorCyan), nil)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

// dimension reads the positional argument at index, or def when absent.
func dimension(index int, name string, def int) int {
	if flag.NArg() <= index {
		return def
	}
	value, notice := maze.ParseDimension(flag.Arg(index), name, def)
	if notice != "" {
		appLogger.Warn(notice)
	}
	return value
}

func serve() {
	gin.SetMode(config.Envs.GinMode)

	if config.Envs.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		initRedis(ctx)
		cancel()
		defer redisClient.Close()
		initMazeCache()
	} else {
		appLogger.Warn("REDIS_ADDR not set, maze cache disabled")
	}

	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

func generate() {
	req := dmn.MazeRequest{
		Width:     dimension(0, "width", maze.DefaultWidth),
		Height:    dimension(1, "height", maze.DefaultHeight),
		Algorithm: algorithm,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			req.Seed = &seedFlag
		}
	})

	initMazeService()

	m, err := mazeService.Generate(context.Background(), req)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
		os.Exit(1)
	}

	fmt.Print(m.Grid.String())
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [width] [height]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.BoolVar(&serveFlag, "serve", false, "start the REST API")
	flag.Int64Var(&seedFlag, "seed", 0, "random seed (default: time based)")
	flag.StringVar(&algorithm, "algorithm", maze.AlgorithmCarver, "generator: carver or wilson")
	flag.Parse()

	appLogger = initLogger("APP", config.ColorGreen)

	if serveFlag {
		serve()
		return
	}
	generate()
}
