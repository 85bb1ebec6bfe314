package PriorityQueues

import (
	"math/rand"
	"testing"

	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/require"

	lin "github.com/g-m-twostay/go-linear"
)

var rg = rand.New(rand.NewSource(0))

func backings() map[string]func() PriorityQueue[int, int] {
	return map[string]func() PriorityQueue[int, int]{
		"sorted": func() PriorityQueue[int, int] { return MakeSorted[int, int]() },
		"heap":   func() PriorityQueue[int, int] { return MakeHeap[int, int]() },
		"tree":   func() PriorityQueue[int, int] { return MakeTree[int, int](0) },
	}
}

// item lets the llrb tree order entries independently of the code under test.
type item Entry[int, int]

func (a item) Less(b llrb.Item) bool {
	o := b.(item)
	if a.Priority != o.Priority {
		return a.Priority < o.Priority
	}
	return a.Arrival < o.Arrival
}

func TestPriorityQueue_Order(t *testing.T) {
	for name, mk := range backings() {
		t.Run(name, func(t *testing.T) {
			pq, oracle := mk(), llrb.New()
			for i := 0; i < 2000; i++ {
				p := rg.Intn(10)
				pq.Insert(p, i)
				oracle.InsertNoReplace(item{p, uint64(i), i})
			}
			require.Equal(t, uint(oracle.Len()), pq.Size())

			var prev Entry[int, int]
			for i := 0; !pq.Empty(); i++ {
				e, err := pq.Extract()
				require.NoError(t, err)
				require.Equal(t, Entry[int, int](oracle.DeleteMin().(item)), e)
				if i > 0 {
					require.True(t, prev.Before(e), "%v extracted before %v", prev, e)
					require.LessOrEqual(t, prev.Priority, e.Priority)
				}
				prev = e
			}
			require.Zero(t, oracle.Len())
		})
	}
}

func TestPriorityQueue_Interleaved(t *testing.T) {
	pqs := backings()
	sorted, heap, tree := pqs["sorted"](), pqs["heap"](), pqs["tree"]()
	for i := 0; i < 5000; i++ {
		if rg.Intn(3) > 0 {
			p := rg.Intn(20) - 10
			sorted.Insert(p, i)
			heap.Insert(p, i)
			tree.Insert(p, i)
			continue
		}
		a, errA := sorted.Extract()
		b, errB := heap.Extract()
		c, errC := tree.Extract()
		if errA != nil {
			require.Error(t, errB)
			require.Error(t, errC)
			continue
		}
		require.NoError(t, errA)
		require.Equal(t, a, b)
		require.Equal(t, a, c)
	}
}

func TestPriorityQueue_Empty(t *testing.T) {
	for name, mk := range backings() {
		t.Run(name, func(t *testing.T) {
			pq := mk()
			var eerr *lin.EmptyContainerError
			_, err := pq.Peek()
			require.ErrorAs(t, err, &eerr)
			require.Equal(t, "Peek", eerr.Op)
			_, err = pq.Extract()
			require.ErrorAs(t, err, &eerr)
			require.Equal(t, "Extract", eerr.Op)

			pq.Insert(2, 20)
			pq.Insert(1, 10)
			e, err := pq.Peek()
			require.NoError(t, err)
			require.Equal(t, Entry[int, int]{1, 1, 10}, e)
			require.Equal(t, uint(2), pq.Size())
		})
	}
}

func TestPriorityQueue_Ties(t *testing.T) {
	tasks := []struct {
		p    int
		task string
	}{
		{3, "normal"}, {1, "urgent"}, {5, "low"}, {2, "important"}, {4, "regular"},
		{1, "second urgent"}, {3, "second normal"},
	}
	want := []string{"urgent", "second urgent", "important", "normal", "second normal", "regular", "low"}
	for name, pq := range map[string]PriorityQueue[int, string]{
		"sorted": MakeSorted[int, string](),
		"heap":   MakeHeap[int, string](),
		"tree":   MakeTree[int, string](2),
	} {
		t.Run(name, func(t *testing.T) {
			for _, tk := range tasks {
				pq.Insert(tk.p, tk.task)
			}
			var got []string
			for !pq.Empty() {
				e, err := pq.Extract()
				require.NoError(t, err)
				got = append(got, e.Value)
			}
			require.Equal(t, want, got)
		})
	}
}

func TestOrderedPriorityQueue_Range(t *testing.T) {
	for name, pq := range map[string]OrderedPriorityQueue[float64, string]{
		"sorted": MakeSorted[float64, string](),
		"tree":   MakeTree[float64, string](4),
	} {
		t.Run(name, func(t *testing.T) {
			pq.Insert(2.5, "c")
			pq.Insert(-1, "a")
			pq.Insert(2.5, "d")
			pq.Insert(0, "b")
			var got []string
			pq.Range(func(e Entry[float64, string]) bool {
				got = append(got, e.Value)
				return true
			})
			require.Equal(t, []string{"a", "b", "c", "d"}, got)
			require.Equal(t, uint(4), pq.Size())

			got = got[:0]
			pq.Range(func(e Entry[float64, string]) bool {
				got = append(got, e.Value)
				return len(got) < 2
			})
			require.Equal(t, []string{"a", "b"}, got)
		})
	}
}

func BenchmarkPriorityQueue(b *testing.B) {
	for name, mk := range backings() {
		b.Run(name, func(b *testing.B) {
			for _i := 0; _i < b.N; _i++ {
				pq := mk()
				for i := 0; i < 1024; i++ {
					pq.Insert(rg.Intn(64), i)
				}
				for !pq.Empty() {
					_, _ = pq.Extract()
				}
			}
		})
	}
}
