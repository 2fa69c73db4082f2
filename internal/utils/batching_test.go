package utils

import (
	"sync"
	"testing"
)

func TestBatchBuffer(t *testing.T) {
	buffer := NewBatchBuffer[int]()

	if buffer.Size() != 0 {
		t.Fatalf("Size = %d, want 0 for fresh buffer", buffer.Size())
	}

	for i := 0; i < 5; i++ {
		buffer.Add(i)
	}
	if buffer.Size() != 5 {
		t.Errorf("Size = %d, want 5", buffer.Size())
	}

	batch := buffer.GetAndClear()
	if len(batch) != 5 {
		t.Fatalf("len(batch) = %d, want 5", len(batch))
	}
	for i, v := range batch {
		if v != i {
			t.Errorf("batch[%d] = %d, want %d", i, v, i)
		}
	}
	if buffer.Size() != 0 {
		t.Errorf("Size = %d after GetAndClear, want 0", buffer.Size())
	}
}

func TestBatchBufferConcurrentAdds(t *testing.T) {
	buffer := NewBatchBuffer[int]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			buffer.Add(n)
		}(i)
	}
	wg.Wait()

	if got := len(buffer.GetAndClear()); got != 100 {
		t.Errorf("drained %d items, want 100", got)
	}
}
