package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/encoding/pb"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	generateTimeout = 2 * time.Second

	contentTypeText     = "text/plain; charset=utf-8"
	contentTypeProtobuf = "application/x-protobuf"

	headerMazeID   = "X-Maze-Id"
	headerMazeSeed = "X-Maze-Seed"
)

// MazeController serves generated mazes as JSON, text and protobuf.
type MazeController struct {
	generator i.MazeGenerator
	encoder   *pb.Protobuf
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze generator is nil")
	}

	return &MazeController{
		generator: g,
		encoder:   &pb.Protobuf{},
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.json)
		mazes.GET("/text", mc.text)
		mazes.GET("/pb", mc.protobuf)
	}
}

// json responds with the maze and its rendered rows.
func (mc *MazeController) json(ctx *gin.Context) {
	m, ok := mc.generate(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		ID:        m.ID,
		Width:     m.Width,
		Height:    m.Height,
		Seed:      m.Seed,
		Algorithm: m.Algorithm,
		Notices:   m.Notices,
		Rows:      maze.Lines(m.Grid),
	})
}

// text responds with the rendered maze.
func (mc *MazeController) text(ctx *gin.Context) {
	m, ok := mc.generate(ctx)
	if !ok {
		return
	}

	setMazeHeaders(ctx, m)
	ctx.Data(http.StatusOK, contentTypeText, []byte(maze.Render(m.Grid)))
}

// protobuf responds with the protobuf encoded maze.
func (mc *MazeController) protobuf(ctx *gin.Context) {
	m, ok := mc.generate(ctx)
	if !ok {
		return
	}

	payload, err := mc.encoder.MarshalMaze(&pb.Snapshot{
		ID:        m.ID.String(),
		Seed:      m.Seed,
		Algorithm: m.Algorithm,
		Grid:      m.Grid,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while encoding maze"})
		return
	}

	setMazeHeaders(ctx, m)
	ctx.Data(http.StatusOK, contentTypeProtobuf, payload)
}

// generate binds the query and builds the maze. It writes the error
// response itself and reports false when the request cannot be served.
func (mc *MazeController) generate(ctx *gin.Context) (*dmn.Maze, bool) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	var notices []string
	width := maze.DefaultWidth
	if query.Width != "" {
		var notice string
		width, notice = maze.ParseDimension(query.Width, "width", maze.DefaultWidth)
		if notice != "" {
			notices = append(notices, notice)
		}
	}
	height := maze.DefaultHeight
	if query.Height != "" {
		var notice string
		height, notice = maze.ParseDimension(query.Height, "height", maze.DefaultHeight)
		if notice != "" {
			notices = append(notices, notice)
		}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), generateTimeout)
	defer cancel()

	m, err := mc.generator.Generate(timeoutCtx, dmn.MazeRequest{
		Width:     width,
		Height:    height,
		Seed:      query.Seed,
		Algorithm: query.Algorithm,
	})
	if err != nil {
		if errors.Is(err, maze.ErrUnknownAlgorithm) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return nil, false
	}

	m.Notices = append(notices, m.Notices...)
	return m, true
}

func setMazeHeaders(ctx *gin.Context, m *dmn.Maze) {
	ctx.Header(headerMazeID, m.ID.String())
	ctx.Header(headerMazeSeed, strconv.FormatInt(m.Seed, 10))
}
