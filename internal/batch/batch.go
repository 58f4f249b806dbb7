// Package batch generates maps for many dates concurrently on top of
// the worker pool.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/chronomap/internal/pipeline"
	"github.com/ppiankov/chronomap/internal/worker"
)

// Generator produces one map per request. Satisfied by
// *pipeline.Pipeline.
type Generator interface {
	Generate(ctx context.Context, req pipeline.GenerateRequest) (*pipeline.Result, error)
}

// MapJob generates one map.
type MapJob struct {
	Request   pipeline.GenerateRequest
	Generator Generator
}

// Execute runs the generation.
func (j *MapJob) Execute(ctx context.Context) worker.Result {
	result, err := j.Generator.Generate(ctx, j.Request)
	return &MapResult{
		Date:   j.Request.Date,
		Output: result,
		Error:  err,
	}
}

// MapResult is the outcome of one batch entry.
type MapResult struct {
	Date   string
	Output *pipeline.Result
	Error  error
}

// GetError returns the job error, if any.
func (r *MapResult) GetError() error {
	return r.Error
}

// Processor generates maps for many dates concurrently.
type Processor struct {
	generator   Generator
	concurrency int
	format      pipeline.Format
}

// NewProcessor creates a processor that renders in the given format
// with the given worker count.
func NewProcessor(generator Generator, concurrency int, format pipeline.Format) *Processor {
	return &Processor{
		generator:   generator,
		concurrency: concurrency,
		format:      format,
	}
}

// ProcessDates generates a map per date. Result order follows job
// completion, not input order; each result carries its date.
func (b *Processor) ProcessDates(ctx context.Context, dates []string) []*MapResult {
	if len(dates) == 0 {
		return []*MapResult{}
	}

	pool := worker.NewPool(b.concurrency)
	pool.Start()

	for _, date := range dates {
		pool.Submit(&MapJob{
			Request: pipeline.GenerateRequest{
				Date:   date,
				Format: b.format,
			},
			Generator: b.generator,
		})
	}

	results := pool.Wait()

	mapResults := make([]*MapResult, len(results))
	for i, result := range results {
		mapResults[i] = result.(*MapResult)
	}

	return mapResults
}

// ProcessFile reads dates from a file and generates a map for each.
func (b *Processor) ProcessFile(ctx context.Context, filePath string) ([]*MapResult, error) {
	dates, err := ReadDatesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read dates: %w", err)
	}

	return b.ProcessDates(ctx, dates), nil
}

// ReadDatesFromFile reads date strings from a file, one per line.
// Blank lines and # comments are skipped; duplicates are dropped.
func ReadDatesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var dates []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			dates = append(dates, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return dates, nil
}
