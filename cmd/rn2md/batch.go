package main

import (
	"context"
	"runtime"
	"sync"
	"time"

	rn2md "github.com/alnah/go-rn2md"
)

// DayConverter is the interface for the conversion service.
type DayConverter interface {
	Convert(ctx context.Context, input rn2md.Input) (*rn2md.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ DayConverter = (*rn2md.Converter)(nil)

// dayJob is one notebook entry to convert.
type dayJob struct {
	Day  time.Time
	Text string
}

// dayResult holds the outcome of a single day conversion.
type dayResult struct {
	Day      time.Time
	Markdown string
	Err      error
	Duration time.Duration
}

// convertDays converts jobs concurrently and returns results in job order.
// The converter is shared: each Convert call runs its own pipeline.
func convertDays(ctx context.Context, conv DayConverter, jobs []dayJob, workers int) []dayResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]dayResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = dayResult{Day: jobs[idx].Day, Err: ctx.Err()}
					continue
				}
				results[idx] = convertDay(ctx, conv, jobs[idx])
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// convertDay converts a single entry and returns the result.
func convertDay(ctx context.Context, conv DayConverter, job dayJob) dayResult {
	start := time.Now()
	result := dayResult{Day: job.Day}

	res, err := conv.Convert(ctx, rn2md.Input{Text: job.Text, Date: job.Day})
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}
	result.Markdown = res.Markdown
	return result
}

// resolvePoolSize determines the number of conversion workers.
// Priority: explicit setting > GOMAXPROCS-based auto-calculation.
func resolvePoolSize(workers int) int {
	// Explicit setting takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
