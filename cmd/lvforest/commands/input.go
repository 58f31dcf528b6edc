package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvforest/prim_kruskal"
)

// ErrBadInput indicates a malformed edge-list file.
var ErrBadInput = errors.New("lvforest: bad input")

// graphInput is a parsed edge list.
type graphInput struct {
	n     int
	edges []prim_kruskal.Edge
}

// openInput returns stdin for "" or "-", the named file otherwise.
func openInput(stdin io.Reader, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}

	return os.Open(path)
}

// parseEdgeList reads
//
//	# comment
//	<n>
//	<u> <v> <w>
//	...
//
// Blank lines and text after '#' are ignored.
func parseEdgeList(r io.Reader) (graphInput, error) {
	var (
		in      graphInput
		haveN   bool
		lineNo  int
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if !haveN {
			if len(fields) != 1 {
				return in, fmt.Errorf("%w: line %d: want vertex count, got %q", ErrBadInput, lineNo, line)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return in, fmt.Errorf("%w: line %d: bad vertex count %q", ErrBadInput, lineNo, fields[0])
			}
			in.n, haveN = n, true
			continue
		}

		if len(fields) != 3 {
			return in, fmt.Errorf("%w: line %d: want \"u v w\", got %q", ErrBadInput, lineNo, line)
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		w, errW := strconv.ParseFloat(fields[2], 64)
		if err := errors.Join(errU, errV, errW); err != nil {
			return in, fmt.Errorf("%w: line %d: %w", ErrBadInput, lineNo, err)
		}
		in.edges = append(in.edges, prim_kruskal.Edge{From: u, To: v, Weight: w})
	}
	if err := scanner.Err(); err != nil {
		return in, err
	}
	if !haveN {
		return in, fmt.Errorf("%w: missing vertex count", ErrBadInput)
	}

	return in, nil
}
