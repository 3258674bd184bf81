package feedback

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// RatingLog appends ratings to a JSONL file, one object per line. Writes are
// serialized so concurrent workers never interleave lines.
type RatingLog struct {
	mu   sync.Mutex
	path string
}

func NewRatingLog(path string) (*RatingLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("could not create ratings directory: %w", err)
		}
	}
	return &RatingLog{path: path}, nil
}

func (l *RatingLog) Append(rating Rating) error {
	line, err := json.Marshal(rating)
	if err != nil {
		return fmt.Errorf("could not marshal rating: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open ratings log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("could not write rating: %w", err)
	}
	return nil
}

// Read returns every rating in the log, oldest first.
func (l *RatingLog) Read() ([]Rating, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read ratings log: %w", err)
	}

	var ratings []Rating
	decoder := json.NewDecoder(bytes.NewReader(data))
	for decoder.More() {
		var r Rating
		if err := decoder.Decode(&r); err != nil {
			return nil, fmt.Errorf("could not parse ratings log: %w", err)
		}
		ratings = append(ratings, r)
	}
	return ratings, nil
}
