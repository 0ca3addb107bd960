package mazeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/encoding/pb"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}

type failingGenerator struct {
	err error
}

func (f failingGenerator) Generate(context.Context, dmn.MazeRequest) (*dmn.Maze, error) {
	return nil, f.err
}

func newTestEngine(t *testing.T, c *MazeController) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	c.RegisterPublic(engine.Group("/api/v1"))
	return engine
}

func newTestController(t *testing.T) *MazeController {
	t.Helper()
	svc, err := service.NewMazeService(nil, nopLogger{}, &service.Options{
		SeedSource: func() int64 { return 1 },
	})
	require.NoError(t, err)

	c, err := NewMazeController(svc)
	require.NoError(t, err)
	return c
}

func get(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestNewMazeController(t *testing.T) {
	_, err := NewMazeController(nil)
	assert.Error(t, err)
}

func TestMazeJSON(t *testing.T) {
	engine := newTestEngine(t, newTestController(t))

	t.Run("defaults", func(t *testing.T) {
		w := get(engine, "/api/v1/mazes")
		require.Equal(t, http.StatusOK, w.Code)

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, maze.DefaultWidth, resp.Width)
		assert.Equal(t, maze.DefaultHeight, resp.Height)
		assert.Equal(t, int64(1), resp.Seed)
		assert.Equal(t, maze.AlgorithmCarver, resp.Algorithm)
		assert.Empty(t, resp.Notices)
		assert.Len(t, resp.Rows, maze.DefaultHeight+1)
	})

	t.Run("clamped and lenient dimensions", func(t *testing.T) {
		w := get(engine, "/api/v1/mazes?width=3&height=abc&seed=9&algorithm=wilson")
		require.Equal(t, http.StatusOK, w.Code)

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, maze.MinWidth, resp.Width)
		assert.Equal(t, maze.DefaultHeight, resp.Height)
		assert.Equal(t, int64(9), resp.Seed)
		assert.Equal(t, maze.AlgorithmWilson, resp.Algorithm)
		assert.Equal(t, []string{
			"abc is not an acceptable height. Using default: 40.",
			"Desired width too small. Reset to 8.",
		}, resp.Notices)
	})

	t.Run("same seed same maze", func(t *testing.T) {
		var first, second MazeResponse
		require.NoError(t, json.Unmarshal(get(engine, "/api/v1/mazes?width=12&height=9&seed=42").Body.Bytes(), &first))
		require.NoError(t, json.Unmarshal(get(engine, "/api/v1/mazes?width=12&height=9&seed=42").Body.Bytes(), &second))
		assert.Equal(t, first.Rows, second.Rows)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("bad seed", func(t *testing.T) {
		w := get(engine, "/api/v1/mazes?seed=twelve")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		w := get(engine, "/api/v1/mazes?algorithm=prim")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMazeText(t *testing.T) {
	engine := newTestEngine(t, newTestController(t))

	w := get(engine, "/api/v1/mazes/text?width=8&height=8&seed=3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "3", w.Header().Get(headerMazeSeed))
	assert.NotEmpty(t, w.Header().Get(headerMazeID))

	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "  "+strings.Repeat("__", 7), lines[0])
	assert.True(t, strings.HasSuffix(lines[8], " |"))
}

func TestMazeProtobuf(t *testing.T) {
	engine := newTestEngine(t, newTestController(t))

	w := get(engine, "/api/v1/mazes/pb?width=10&height=11&seed=7")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeProtobuf, w.Header().Get("Content-Type"))

	snapshot, err := (&pb.Protobuf{}).UnmarshalMaze(w.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, int64(7), snapshot.Seed)
	assert.Equal(t, w.Header().Get(headerMazeID), snapshot.ID)
	assert.Equal(t, 10, snapshot.Grid.Width())
	assert.Equal(t, 11, snapshot.Grid.Height())

	text := get(engine, "/api/v1/mazes/text?width=10&height=11&seed=7")
	assert.Equal(t, text.Body.String(), maze.Render(snapshot.Grid))
}

func TestMazeGeneratorFailure(t *testing.T) {
	t.Run("unknown algorithm", func(t *testing.T) {
		c, err := NewMazeController(failingGenerator{err: maze.ErrUnknownAlgorithm})
		require.NoError(t, err)
		w := get(newTestEngine(t, c), "/api/v1/mazes")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("internal", func(t *testing.T) {
		c, err := NewMazeController(failingGenerator{err: errors.New("boom")})
		require.NoError(t, err)
		w := get(newTestEngine(t, c), "/api/v1/mazes/text")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "error while generating maze")
	})
}
