// SPDX-License-Identifier: MIT

package request

import (
	"context"
	"runtime"
	"sync"

	"github.com/katalvlaran/seqmem/align"
	"github.com/katalvlaran/seqmem/internal/logging"
	"github.com/katalvlaran/seqmem/memory"
)

// Response pairs a request name with its report or its failure.
// Alignment is set only for requests carrying a reference.
type Response struct {
	Name      string         `json:"name"`
	Report    *memory.Report `json:"report,omitempty"`
	Alignment *align.Result  `json:"alignment,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Failed reports whether the request did not produce a report.
func (r Response) Failed() bool { return r.Report == nil }

// Execute validates and runs one request.
func Execute(req Request) (Response, error) {
	resp := Response{Name: req.Name}

	opts, err := req.Options()
	if err != nil {
		resp.Error = err.Error()
		return resp, err
	}
	seq, err := req.Symbols()
	if err != nil {
		resp.Error = err.Error()
		return resp, err
	}
	rep, err := memory.Run(seq, opts)
	if err != nil {
		resp.Error = err.Error()
		return resp, err
	}
	al, err := req.Align(seq)
	if err != nil {
		resp.Error = err.Error()
		return resp, err
	}
	resp.Report, resp.Alignment = &rep, al

	return resp, nil
}

// ExecuteAll runs reqs on up to workers goroutines (≤ 0 means NumCPU) and
// returns one Response per request in input order. A failed request is
// recorded in its Response and does not stop the others. ctx is checked
// before each request starts; requests never started carry ctx.Err() and
// the same error is returned.
func ExecuteAll(ctx context.Context, reqs []Request, workers int, log *logging.Logger) ([]Response, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(reqs))

	out := make([]Response, len(reqs))
	started := make([]bool, len(reqs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				started[i] = true
				log.Debugf("start %q", reqs[i].Name)
				resp, err := Execute(reqs[i])
				if err != nil {
					log.Errorf("%v", err)
				} else {
					log.Infof("done %q: %d checkpoints", resp.Name, len(resp.Report.Checkpoints))
				}
				out[i] = resp
			}
		}()
	}

feed:
	for i := range reqs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	var skipped int
	for i := range out {
		if !started[i] {
			out[i] = Response{Name: reqs[i].Name, Error: ctx.Err().Error()}
			skipped++
		}
	}
	if skipped > 0 {
		log.Warnf("interrupted: %d of %d requests not started: %v", skipped, len(reqs), ctx.Err())
		return out, ctx.Err()
	}

	return out, nil
}
