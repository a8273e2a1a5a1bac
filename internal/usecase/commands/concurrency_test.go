//go:build unit

package commands_test

import "sync"

// runConcurrently starts n calls of fn together and returns their errors by index.
func runConcurrently(n int, fn func(i int) error) []error {
	errsOut := make([]error, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errsOut[i] = fn(i)
		}()
	}
	close(start)
	wg.Wait()
	return errsOut
}
