// Package mazeio reads and writes the maze text format.
//
// Input: one or more mazes separated by at least one blank line. Each maze
// is a block of rows using S (start), G (goal), X (blocked) and _ (open).
// Leading and trailing blank lines, and carriage returns, are ignored.
//
// Output: for every search run a label line (e.g. "A*"), the grid with the
// path marked as P, and a blank separator line.
package mazeio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/mazepath/grid"
)

// ErrNoMazes indicates an input without any maze block.
var ErrNoMazes = errors.New("mazeio: no mazes in input")

// Block is the raw text of one maze.
type Block struct {
	// Line is the 1-based line number of the first row.
	Line int
	Rows []string
}

// Maze is a parsed block. Err is set instead of Grid when the block is
// malformed; it never aborts reading the remaining mazes.
type Maze struct {
	Index int
	Line  int
	Grid  *grid.Grid
	Err   error
}

// Read splits r into maze blocks.
func Read(r io.Reader) ([]Block, error) {
	var (
		blocks []Block
		cur    *Block
		lineNo int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			cur = nil
			continue
		}
		if cur == nil {
			blocks = append(blocks, Block{Line: lineNo})
			cur = &blocks[len(blocks)-1]
		}
		cur.Rows = append(cur.Rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazeio: read line %d: %w", lineNo+1, err)
	}
	return blocks, nil
}

// ParseAll reads r and parses every block into a Maze.
// A read failure is returned as an error; a malformed maze is reported in
// its Maze.Err. ErrNoMazes is returned when r holds no blocks.
func ParseAll(r io.Reader) ([]Maze, error) {
	blocks, err := Read(r)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrNoMazes
	}
	mazes := make([]Maze, len(blocks))
	for i, b := range blocks {
		g, perr := grid.Parse(b.Rows)
		if perr != nil {
			perr = fmt.Errorf("maze %d (line %d): %w", i, b.Line, perr)
		}
		mazes[i] = Maze{Index: i, Line: b.Line, Grid: g, Err: perr}
	}
	return mazes, nil
}

// ReadFile opens path and calls ParseAll.
func ReadFile(path string) ([]Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazeio: %w", err)
	}
	defer f.Close()

	mazes, err := ParseAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mazes, nil
}

// WriteGrid writes g one row per line.
func WriteGrid(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	for _, line := range g.Lines() {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteResult writes the label line, the grid and a blank separator line.
func WriteResult(w io.Writer, label string, g *grid.Grid) error {
	if _, err := io.WriteString(w, label+"\n"); err != nil {
		return err
	}
	if err := WriteGrid(w, g); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// AppendFile appends g to path preceded by a blank separator line,
// creating the file when needed.
func AppendFile(path string, g *grid.Grid) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("mazeio: %w", err)
	}
	if _, err = io.WriteString(f, "\n"); err == nil {
		err = WriteGrid(f, g)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("mazeio: append %s: %w", path, err)
	}
	return nil
}
