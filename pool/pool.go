package pool

import (
	"runtime"
	"sync"
)

//Task is a unit of work. Tasks are expected to write their results
//somewhere themselves, typically to a slot of a shared, pre-allocated
//slice, so no result plumbing is needed here.
type Task func() error

//Pool runs batches of tasks over a fixed number of worker goroutines.
//A Pool holds no state between batches and can be reused.
type Pool struct {
	workers int
}

//New returns a pool with the given number of workers, or one worker per
//logical CPU if n is not positive.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return &Pool{workers: n}
}

//Workers returns the number of worker goroutines the pool uses.
func (P *Pool) Workers() int {
	return P.workers
}

//RunAll runs every task in the batch and returns after all of them have
//finished. There is no cancellation: a failing task does not stop the
//others, but the first error is returned once the whole batch has
//joined, so the caller can discard the batch results.
func (P *Pool) RunAll(tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	nw := P.workers
	if nw > len(tasks) {
		nw = len(tasks)
	}
	jobs := make(chan Task)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var first error
	for w := 0; w < nw; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				if err := t(); err != nil {
					mu.Lock()
					if first == nil {
						first = err
					}
					mu.Unlock()
				}
			}
		}()
	}
	for _, t := range tasks {
		jobs <- t
	}
	close(jobs)
	wg.Wait()
	return first
}
