package scenario

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polyclip"
	"github.com/pkg/errors"
)

// The text format is one point per line, "x y", with blocks separated by
// blank lines. Lines starting with # are comments. The first block is the
// polygon. After that a block with one point is a query point and a block
// with more is a path.
//
// A block may open with a header line to say what it is and name it:
//
//	point center
//	1 1
//
//	segments overlap
//	0 0
//	4 0
//	2 0
//	6 0
//
// A "type int" or "type float" line outside any block sets the coordinate
// type.

type textBlock struct {
	line   int
	kind   string
	name   string
	points []polyclip.Point[float64]
}

// LoadText reads a scenario in the plain text format.
func LoadText(r io.Reader) (s *Scenario, err error) {
	defer func() {
		if recoveredErr := handleParsePanicRecover(recover()); recoveredErr != nil {
			s = nil
			err = recoveredErr
		}
	}()

	s = &Scenario{}
	blocks, err := readBlocks(r, s)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, errors.New("empty scenario")
	}

	for i, block := range blocks {
		kind := block.kind
		if kind == "" {
			switch {
			case i == 0:
				kind = "polygon"
			case len(block.points) == 1:
				kind = "point"
			default:
				kind = "path"
			}
		}

		switch kind {
		case "polygon":
			if s.Polygon != nil {
				fatalf("line %d: only one polygon is allowed", block.line)
			}
			s.Polygon = block.points
		case "point":
			if len(block.points) != 1 {
				fatalf("line %d: a point block has exactly one point", block.line)
			}
			s.Points = append(s.Points, Query{Name: block.name, At: block.points[0]})
		case "path":
			s.Paths = append(s.Paths, Path{Name: block.name, Points: block.points})
		case "segments":
			if len(block.points) != 4 {
				fatalf("line %d: a segments block has exactly four points", block.line)
			}
			p := block.points
			s.Segments = append(s.Segments, SegmentPair{
				Name: block.name,
				A:    [2]polyclip.Point[float64]{p[0], p[1]},
				B:    [2]polyclip.Point[float64]{p[2], p[3]},
			})
		default:
			fatalf("line %d: unknown block kind %q", block.line, kind)
		}
	}

	s.finish()
	return s, nil
}

func readBlocks(r io.Reader, s *Scenario) ([]textBlock, error) {
	var blocks []textBlock
	var current *textBlock

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// An empty line ends the current block, if there is one
		if line == "" {
			if current != nil {
				blocks = append(blocks, *current)
				current = nil
			}
			continue
		}

		fields := strings.Fields(line)
		if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
			if current == nil && fields[0] == "type" && len(fields) == 2 {
				s.Type = CoordType(fields[1])
				continue
			}
			if current != nil {
				fatalf("line %d: header %q must open a block", lineNumber, line)
			}
			current = &textBlock{line: lineNumber, kind: fields[0]}
			if len(fields) > 1 {
				current.name = strings.Join(fields[1:], " ")
			}
			continue
		}

		if current == nil {
			current = &textBlock{line: lineNumber}
		}
		current.points = append(current.points, parseTextPoint(lineNumber, fields))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading scenario")
	}

	// Handle trailing block if any
	if current != nil {
		blocks = append(blocks, *current)
	}
	return blocks, nil
}

func parseTextPoint(lineNumber int, fields []string) polyclip.Point[float64] {
	if len(fields) != 2 {
		fatalf("line %d: want \"x y\", got %d fields", lineNumber, len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		fatalf("line %d: invalid x value %q", lineNumber, fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		fatalf("line %d: invalid y value %q", lineNumber, fields[1])
	}
	return polyclip.Point[float64]{X: x, Y: y}
}
