package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazeio"
	"github.com/katalvlaran/mazepath/route"
	"github.com/katalvlaran/mazepath/search"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeMalformedMaze  = "MALFORMED_MAZE"
	CodeSearchFailed   = "SEARCH_FAILED"
)

// SolveRequest is the body of POST /v1/solve. Maze holds exactly one maze in
// the text format; Connectivity defaults to conn4 and Strategy to astar.
type SolveRequest struct {
	Maze         string `json:"maze" binding:"required,max=1048576"`
	Connectivity string `json:"connectivity" binding:"omitempty,oneof=conn4 conn8"`
	Strategy     string `json:"strategy" binding:"omitempty,oneof=astar greedy"`
}

// Point is a grid coordinate in JSON form.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolveResponse is the body of a successful solve, path or not.
type SolveResponse struct {
	RequestID    string   `json:"request_id"`
	Strategy     string   `json:"strategy"`
	Connectivity string   `json:"connectivity"`
	Found        bool     `json:"found"`
	Steps        int      `json:"steps"`
	Expanded     int      `json:"expanded"`
	Path         []Point  `json:"path"`
	Grid         []string `json:"grid"`
}

// ErrorResponse describes a rejected request.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
	Code      string `json:"code"`
}

func (s *Server) handleSolve(c *gin.Context) {
	id := c.GetString(requestIDKey)
	logger := s.logger.With(slog.String("request_id", id))

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid solve request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: id, Error: err.Error(), Code: CodeInvalidRequest})
		return
	}
	if req.Connectivity == "" {
		req.Connectivity = grid.Conn4.String()
	}
	if req.Strategy == "" {
		req.Strategy = search.AStar.Key()
	}
	conn, err := grid.ParseConnectivity(req.Connectivity)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: id, Error: err.Error(), Code: CodeInvalidRequest})
		return
	}
	strategy, err := search.ParseStrategy(req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: id, Error: err.Error(), Code: CodeInvalidRequest})
		return
	}

	g, err := parseSingle(req.Maze)
	if err != nil {
		logger.Info("malformed maze", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{RequestID: id, Error: err.Error(), Code: CodeMalformedMaze})
		return
	}

	start := time.Now()
	res, err := search.Search(g,
		search.WithStrategy(strategy),
		search.WithConnectivity(conn),
		search.WithContext(c.Request.Context()),
		search.WithMaxExpansions(s.maxExpansions),
	)
	elapsed := time.Since(start)
	notFound := errors.Is(err, search.ErrPathNotFound)
	if err != nil && !notFound {
		s.metrics.ObserveSearch(strategy, conn.String(), false, 0, elapsed, err)
		logger.Error("search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{RequestID: id, Error: err.Error(), Code: CodeSearchFailed})
		return
	}
	s.metrics.ObserveSearch(strategy, conn.String(), res.Found, res.Expanded, elapsed, nil)

	resp := SolveResponse{
		RequestID:    id,
		Strategy:     strategy.Key(),
		Connectivity: conn.String(),
		Found:        res.Found,
		Steps:        res.Steps(),
		Expanded:     res.Expanded,
		Path:         []Point{},
	}
	if res.Found {
		if err := route.Mark(g, res.Path, conn); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{RequestID: id, Error: err.Error(), Code: CodeSearchFailed})
			return
		}
		for _, p := range res.Path {
			resp.Path = append(resp.Path, Point{Row: p.Row, Col: p.Col})
		}
	}
	resp.Grid = g.Lines()

	logger.Debug("solved",
		slog.String("strategy", resp.Strategy),
		slog.Bool("found", resp.Found),
		slog.Int("expanded", resp.Expanded),
		slog.Duration("duration", elapsed),
	)
	c.JSON(http.StatusOK, resp)
}

var errMultipleMazes = errors.New("server: request holds more than one maze")

func parseSingle(text string) (*grid.Grid, error) {
	mazes, err := mazeio.ParseAll(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	if len(mazes) > 1 {
		return nil, errMultipleMazes
	}
	return mazes[0].Grid, mazes[0].Err
}
