package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rtree"
	"github.com/npillmayer/rtree/geom"
)

// Record is one parsed rectangle with its payload tag.
type Record struct {
	Start geom.Point[float64]
	End   geom.Point[float64]
	Tag   string
}

// Feed is an asynchronous source of rectangle records read from a file.
//
// Subscribers receive batches of records ([]Record) until the file is
// exhausted, after which the broadcast channel is closed. Subscriptions
// must be set up before Start is called, or early batches will be missed.
type Feed struct {
	path      string
	file      *os.File
	batchSize int
	cast      *caster.Caster // broadcaster for async record loading
	lastError error          // remember last I/O or parse error
}

// DefaultBatchSize is the number of records per published batch when the
// caller does not choose one.
const DefaultBatchSize = 64

// Open prepares a feed for a dataset file. Opening is always synchronous;
// parsing does not start before Start is called.
func Open(name string, batchSize int) (*Feed, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("dataset: file is not a regular file")
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	f := &Feed{
		path:      name,
		file:      file,
		batchSize: batchSize,
		cast:      caster.New(nil), // we will broadcast batches of parsed records
	}
	return f, nil
}

// Subscribe returns a channel of record batches. The second return value is
// false when the feed has already been closed.
func (f *Feed) Subscribe() (<-chan interface{}, bool) {
	return f.cast.Sub(nil, 1)
}

// LastError returns the last I/O or parse error encountered by the loader
// goroutine. It is meaningful after the broadcast channel has been closed.
func (f *Feed) LastError() error {
	return f.lastError
}

// Start launches the loader goroutine. Parsed records are published in
// batches; the broadcaster is closed when the file is exhausted.
func (f *Feed) Start() {
	go func() {
		defer f.cast.Close()
		defer f.file.Close()
		scanner := bufio.NewScanner(f.file)
		batch := make([]Record, 0, f.batchSize)
		lineno := 0
		for scanner.Scan() {
			lineno++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			rec, err := parseRecord(line)
			if err != nil {
				f.lastError = fmt.Errorf("%s:%d: %w", f.path, lineno, err)
				T().Errorf("dataset: %v", f.lastError)
				continue
			}
			batch = append(batch, rec)
			if len(batch) == f.batchSize {
				f.cast.Pub(batch)
				batch = make([]Record, 0, f.batchSize)
			}
		}
		if err := scanner.Err(); err != nil {
			f.lastError = fmt.Errorf("dataset: error loading records: %w", err)
		}
		if len(batch) > 0 {
			f.cast.Pub(batch)
		}
	}()
}

// parseRecord parses "x1 y1 x2 y2 [tag …]" into a record.
func parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Record{}, fmt.Errorf("dataset: record needs 4 coordinates, has %d fields", len(fields))
	}
	var coords [4]float64
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Record{}, fmt.Errorf("dataset: bad coordinate %q: %w", fields[i], err)
		}
		coords[i] = v
	}
	return Record{
		Start: geom.Point[float64]{coords[0], coords[1]},
		End:   geom.Point[float64]{coords[2], coords[3]},
		Tag:   strings.Join(fields[4:], " "),
	}, nil
}

// Populate drains a feed into a tree and returns the number of inserted
// records. The feed must not have been started yet.
func Populate(t *rtree.Tree[float64, string], f *Feed) (int, error) {
	ch, ok := f.Subscribe()
	if !ok {
		return 0, fmt.Errorf("dataset: feed is already closed")
	}
	f.Start()
	n := 0
	for m := range ch {
		batch := m.([]Record)
		for _, rec := range batch {
			if err := t.Insert(rec.Start, rec.End, rec.Tag); err != nil {
				return n, err
			}
			n++
		}
	}
	T().Debugf("dataset: populated tree with %d records from %s", n, f.path)
	return n, f.LastError()
}
