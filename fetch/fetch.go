package fetch

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preciossuperpy/preciossuperpy"
	"github.com/preciossuperpy/preciossuperpy/log"
	"github.com/preciossuperpy/preciossuperpy/sources"
)

const defaultWorkers = 4

// ErrNothingFetched is returned when every source's top-level listing
// failed: the run produced nothing and must not overwrite history.
var ErrNothingFetched = errors.New("fetch: no source could list its work units")

// Runner drives source adapters with a bounded worker pool. A failing unit
// yields zero records and does not abort its siblings; a failing source
// listing yields zero records for that source.
type Runner struct {
	Workers int
	Log     log.Logger
}

// Run fetches one source. Every produced record is stamped with a capture
// time fixed at invocation start.
func (r *Runner) Run(src sources.Source) ([]preciossuperpy.Record, error) {
	logger := r.Log.WithFields(log.Fields{"run": uuid.NewString(), "source": src.Name()})
	return r.run(logger, src, time.Now())
}

// RunAll fetches each source in turn, sharing one capture time across the
// whole run. It returns the per-source row counts alongside the records.
// The only fatal outcome is every source failing its listing call.
func (r *Runner) RunAll(srcs []sources.Source) ([]preciossuperpy.Record, map[string]int, error) {
	captured := time.Now()
	runLog := r.Log.WithFields(log.Fields{"run": uuid.NewString()})

	var records []preciossuperpy.Record
	counts := make(map[string]int, len(srcs))
	failed := 0
	for _, src := range srcs {
		fetched, err := r.run(runLog.WithFields(log.Fields{"source": src.Name()}), src, captured)
		if err != nil {
			failed++
		}
		counts[src.Name()] = len(fetched)
		records = append(records, fetched...)
	}

	if len(srcs) > 0 && failed == len(srcs) {
		return nil, counts, ErrNothingFetched
	}
	return records, counts, nil
}

func (r *Runner) run(logger log.Logger, src sources.Source, captured time.Time) ([]preciossuperpy.Record, error) {
	units, err := src.Units()
	if err != nil {
		logger.Errorf("could not list work units: %v", err)
		return nil, err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	unitCh := make(chan string)
	var (
		mu      sync.Mutex
		records []preciossuperpy.Record
		wg      sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for unit := range unitCh {
				fetched, err := src.Fetch(unit)
				if err != nil {
					logger.Errorf("unit %s yielded no records: %v", unit, err)
					continue
				}
				for i := range fetched {
					fetched[i].CapturedAt = captured
				}
				mu.Lock()
				records = append(records, fetched...)
				mu.Unlock()
			}
		}()
	}

	for _, unit := range units {
		unitCh <- unit
	}
	close(unitCh)
	wg.Wait()

	logger.Printf("fetched %d records from %d units", len(records), len(units))
	return records, nil
}
