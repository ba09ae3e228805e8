package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/trustlens/internal/model"
)

// Runner analyzes a single URL. Satisfied by the pipeline.
type Runner interface {
	AnalyzeURL(ctx context.Context, url string, opts model.Options) *model.AnalysisResult
}

// AnalyzeJob is one URL analysis queued on the pool
type AnalyzeJob struct {
	URL     string
	Runner  Runner
	Options model.Options
	Limiter *Limiter
}

// Execute runs the analysis after rate limit clearance
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.URL); err != nil {
			return &AnalyzeResult{URL: j.URL, Error: err}
		}
	}

	result := j.Runner.AnalyzeURL(ctx, j.URL, j.Options)
	out := &AnalyzeResult{URL: j.URL, Result: result}
	if result.Error != "" {
		out.Error = fmt.Errorf("%s", result.Error)
	}
	return out
}

// AnalyzeResult is the outcome of one URL analysis
type AnalyzeResult struct {
	URL    string
	Result *model.AnalysisResult
	Error  error
}

// GetError returns the job error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many URLs concurrently
type BatchProcessor struct {
	runner      Runner
	options     model.Options
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor with a shared per-domain
// rate limiter.
func NewBatchProcessor(runner Runner, opts model.Options, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		options:     opts,
		concurrency: concurrency,
		limiter:     NewLimiter(requestsPerSecond, burst),
	}
}

// ProcessURLs analyzes the URLs concurrently and returns one result per URL
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []*AnalyzeResult {
	if len(urls) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, url := range urls {
		pool.Submit(&AnalyzeJob{
			URL:     url,
			Runner:  b.runner,
			Options: b.options,
			Limiter: b.limiter,
		})
	}

	results := pool.Wait()

	out := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		out[i] = result.(*AnalyzeResult)
	}

	return out
}

// ProcessFile reads URLs from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}

	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads URLs from a file, one per line. Blank lines and
// comments are skipped; duplicates keep only the first occurrence.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return urls, nil
}
