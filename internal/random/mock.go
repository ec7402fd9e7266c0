package random

// Mock is a mock implementation of Random for testing. It returns
// queued values in order and falls back to 0 once the queue is empty.
type Mock struct {
	IntnResults []int
	index       int
}

var _ Random = (*Mock)(nil)

// NewMock creates a new Mock.
func NewMock(values ...int) *Mock {
	return &Mock{IntnResults: values}
}

// Intn returns the next queued result, or 0 if none remain.
func (r *Mock) Intn(n int) int {
	if r.index >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.index]
	r.index++
	return result
}

// Queue adds values to the result queue.
func (r *Mock) Queue(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}
