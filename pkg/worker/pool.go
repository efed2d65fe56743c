package worker

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	ErrPoolClosed = errors.New("pool is closed")
)

// Pool runs submitted jobs with a bounded number of goroutines.
type Pool struct {
	sem    chan struct{}
	wg     sync.WaitGroup
	closed atomic.Bool
}

// NewPool creates a pool with the given concurrency limit
func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = 8
	}
	return &Pool{
		sem: make(chan struct{}, limit),
	}
}

// Go submits a job, blocking while the pool is at its limit
func (p *Pool) Go(job func()) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}

	p.wg.Add(1)
	p.sem <- struct{}{}

	go func() {
		defer func() {
			<-p.sem
			p.wg.Done()
		}()
		if job != nil {
			job()
		}
	}()

	return nil
}

// Wait closes the pool and waits for all submitted jobs to finish
func (p *Pool) Wait() {
	p.closed.Store(true)
	p.wg.Wait()
}

// InFlight returns the number of jobs currently running
func (p *Pool) InFlight() int {
	return len(p.sem)
}
