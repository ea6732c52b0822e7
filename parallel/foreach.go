// Package parallel contains the bounded worker loop used to decode image directories.
package parallel

import "sync"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length. The first error
// returned by body is reported once every started goroutine has finished;
// no new iterations are started after it.
func ForEach(length, limit int, body func(i int) error) error {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		mut      sync.Mutex
		firstErr error
	)
	failed := func() bool {
		mut.Lock()
		defer mut.Unlock()
		return firstErr != nil
	}

	sem := make(chan struct{}, limit)
	for i := 0; i < length; i++ {
		sem <- struct{}{}
		if failed() {
			<-sem
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := body(i); err != nil {
				mut.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mut.Unlock()
			}
		}(i)
	}

	wg.Wait()
	return firstErr
}
