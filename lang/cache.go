package lang

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// Cache memoizes parsed [CommandCall] results by the xxh3 hash of their
// source text, so a line that repeats within the calls parsed through one
// Cache is tokenized only once. Grounded on
// ardnew-aenv/lang/cache.go, which uses the same two libraries for the
// same purpose against its own grammar.
type Cache struct {
	mu      sync.RWMutex
	entries map[uint64]*CommandCall
}

// NewCache constructs an empty parse cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]*CommandCall)}
}

// ParseString parses line (if not already cached) into a [CommandCall],
// caching the result keyed by its xxh3 hash.
func (c *Cache) ParseString(line string, lineNo int) (*CommandCall, error) {
	key := xxh3.HashString(line)

	c.mu.RLock()
	if call, ok := c.entries[key]; ok {
		c.mu.RUnlock()

		return call, nil
	}
	c.mu.RUnlock()

	call, err := ParseCall(line, lineNo)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = call
	c.mu.Unlock()

	return call, nil
}

// ParseReader reads newline-delimited command calls from r, skipping blank
// lines and lines whose first non-blank token is a '#' comment, and parses
// each through the shared cache. r is wrapped in a read-ahead buffer so
// that the Eval subcommand's file reads overlap I/O with parsing, matching
// ardnew-aenv/cli/cmd/eval.go's use of a buffered source stream.
func (c *Cache) ParseReader(r io.Reader) ([]*CommandCall, error) {
	ra, err := readahead.NewReaderSize(r, 4, 64*1024)
	if err != nil {
		return nil, NewError(KindSyntax, "failed to wrap reader with read-ahead buffering").Wrap(err)
	}
	defer ra.Close()

	scanner := bufio.NewScanner(ra)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var calls []*CommandCall

	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		call, err := c.ParseString(line, lineNo)
		if err != nil {
			return nil, err
		}

		calls = append(calls, call)
	}

	if err := scanner.Err(); err != nil {
		return nil, NewError(KindSyntax, "failed reading source").Wrap(err)
	}

	return calls, nil
}
