// Package ingest reads the upstream station-spacing text file and
// feeds it to the subway builder as a record stream.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/LianshengTAT/Wuhan-Metro-Simulation-System/subway"
)

// The data file is the metro operator's spacing table: each line's
// block opens with a "<name>站点间距" header followed by a column
// header and a blank row, then one "A---B<tab>distance" row per
// adjacent station pair.
const (
	lineHeaderMarker = "站点间距"
	stationSeparator = "---"
)

var fieldSplitter = regexp.MustCompile(`\t+`)

// ParseError reports a row whose distance field was present but not a
// valid non-negative number. It aborts the whole build.
type ParseError struct {
	Row int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse consumes a spacing table and builds the network. Rows that do
// not match the station-pair shape are skipped; an unparsable or
// negative distance fails with *ParseError, and a data row before any
// line header fails with *subway.StructuralError. Either failure means
// no graph is returned.
func Parse(r io.Reader) (*subway.Graph, error) {
	builder := subway.NewBuilder()
	scanner := bufio.NewScanner(r)

	row := 0
	discard := 0
	for scanner.Scan() {
		row++
		text := strings.TrimSpace(scanner.Text())

		// Each line header is followed by a column header and a
		// blank row; both are discarded unconditionally.
		if discard > 0 {
			discard--
			continue
		}
		if text == "" {
			continue
		}

		if idx := strings.Index(text, lineHeaderMarker); idx >= 0 {
			// The line name is everything before the marker; trailing
			// annotations after the marker are not part of the name.
			builder.BeginLine(strings.TrimSpace(text[:idx]))
			discard = 2
			continue
		}

		fields := fieldSplitter.Split(text, -1)
		if len(fields) < 2 {
			continue
		}
		stations := strings.Split(fields[0], stationSeparator)
		if len(stations) != 2 {
			continue
		}

		distance, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, &ParseError{Row: row, Err: err}
		}
		if distance < 0 {
			return nil, &ParseError{Row: row, Err: fmt.Errorf("negative distance %v", distance)}
		}

		rec := subway.EdgeRow{
			From:     strings.TrimSpace(stations[0]),
			To:       strings.TrimSpace(stations[1]),
			Distance: distance,
		}
		if err := builder.Apply(rec); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return builder.Build(), nil
}

// LoadFile opens and parses a spacing table from disk.
func LoadFile(path string) (*subway.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open subway data file: %w", err)
	}
	defer file.Close()

	graph, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	log.Printf("Loaded subway network from %s: %d stations, %d lines",
		path, graph.StationCount(), graph.LineCount())
	return graph, nil
}
