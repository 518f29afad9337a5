package worker

// InOrder reads results that may arrive in any order and calls emit for each in
// Index order, starting at 0. Results are held back until every lower index has
// been emitted. Indexes that never arrive leave later results unemitted; the
// count of results still held back is returned.
func InOrder(results <-chan ProcessResult, emit func(ProcessResult)) int {
	pending := make(map[int]ProcessResult)
	next := 0
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			emit(ready)
			next++
		}
	}
	return len(pending)
}
