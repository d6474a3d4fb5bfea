package seq

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/seq/result"
)

func TestDuplicateEach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	l := Of(1, 2)
	if got := l.DuplicateEach(3); !Equal(got, Of(1, 1, 1, 2, 2, 2)) {
		t.Logf("got = %s", printSeq(got))
		t.Error("expected every element to appear 3 times in a row, doesn't")
	}
	if got := l.DuplicateEach(1); !Equal(got, l) {
		t.Error("expected duplication with k=1 to reproduce the elements, doesn't")
	}
	if !Empty[int]().DuplicateEach(5).IsEmpty() {
		t.Error("expected duplication of the empty sequence to be empty, isn't")
	}
}

func TestDuplicateEachZeroTimes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	l := Of(1, 2, 3)
	if !l.DuplicateEach(0).IsEmpty() {
		t.Error("expected duplication with k=0 to be empty, isn't")
	}
	if !l.DuplicateEach(-2).IsEmpty() {
		t.Error("expected duplication with negative k to be empty, isn't")
	}
}

func TestRotate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	l := Of(1, 2, 3, 4, 5)
	if got := l.Rotate(2); !Equal(got, Of(3, 4, 5, 1, 2)) {
		t.Logf("got = %s", printSeq(got))
		t.Error("expected rotation by 2 to yield [3,4,5,1,2], doesn't")
	}
	if got := l.Rotate(0); !Equal(got, l) {
		t.Error("expected rotation by 0 to reproduce the sequence, doesn't")
	}
	if got := l.Rotate(5); !Equal(got, l) {
		t.Error("expected rotation by the length to reproduce the sequence, doesn't")
	}
	if !Equal(l, Of(1, 2, 3, 4, 5)) {
		t.Error("expected rotation to leave the input sequence unchanged, didn't")
	}
}

func TestRotateWrapsAround(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	l := Of(1, 2, 3)
	if got := l.Rotate(2); !Equal(got, Of(3, 1, 2)) {
		t.Logf("got = %s", printSeq(got))
		t.Error("expected rotation by 2 of [1,2,3] to be [3,1,2], isn't")
	}
	if got := l.Rotate(7); !Equal(got, Of(2, 3, 1)) {
		t.Logf("got = %s", printSeq(got))
		t.Error("expected rotation by 7 of 3 elements to equal rotation by 1, doesn't")
	}
	for _, k := range []int{3, 6} {
		if got := l.Rotate(k); !Equal(got, l) {
			t.Errorf("expected rotation by %d to reproduce the 3-element sequence, doesn't", k)
		}
	}
}

func TestRotateEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	if !Empty[int]().Rotate(0).IsEmpty() {
		t.Error("expected rotation of the empty sequence to be empty, isn't")
	}
	if !Empty[int]().Rotate(3).IsEmpty() {
		t.Error("expected rotation of the empty sequence by 3 to be empty, isn't")
	}
}

func TestRotateNegativePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	l := Of(1, 2, 3)
	r := result.Try(func() Sequence[int] { return l.Rotate(-2) })
	var got Sequence[int]
	var err error
	switch m := r.Match(); m {
	case m.Ok(&got):
		t.Errorf("expected rotation by a negative count to fail, got %v", got)
	case m.Err(&err):
		oor, ok := err.(OutOfRangeError)
		if !ok {
			t.Fatalf("expected an out of range error, is %q", err)
		}
		if oor.Index != -2 || oor.Length != 3 {
			t.Errorf("expected error to report index -2 of length 3, reports %v", oor)
		}
	}
}

func TestSampleIsReproducible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	l := Of("a", "b", "c", "d", "e")
	first := l.Sample(rand.New(rand.NewSource(42)), 8)
	second := l.Sample(rand.New(rand.NewSource(42)), 8)
	if !Equal(first, second) {
		t.Logf("first  = %v", first)
		t.Logf("second = %v", second)
		t.Error("expected equally seeded samples to be equal, aren't")
	}
}

func TestSampleDrawsFromInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	l := Of(10, 20, 30)
	members := map[int]bool{10: true, 20: true, 30: true}
	sample := l.Sample(rand.New(rand.NewSource(7)), 50)
	if sample.Len() != 50 {
		t.Errorf("expected 50 draws, got %d", sample.Len())
	}
	for cur := sample.cell; cur != nil; cur = cur.tail.cell {
		if !members[cur.head] {
			t.Fatalf("expected every draw to be an element of the input, %d isn't", cur.head)
		}
	}
}

func TestSampleZeroDraws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	l := Of(1, 2, 3)
	if !l.Sample(rand.New(rand.NewSource(1)), 0).IsEmpty() {
		t.Error("expected sampling 0 elements to be empty, isn't")
	}
	if !l.Sample(nil, -4).IsEmpty() {
		t.Error("expected sampling a negative count to be empty, isn't")
	}
}

func TestSampleFromEmptyPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(1))
	r := result.Try(func() Sequence[int] { return Empty[int]().Sample(rnd, 3) })
	var got Sequence[int]
	var err error
	switch m := r.Match(); m {
	case m.Ok(&got):
		t.Errorf("expected sampling from the empty sequence to fail, got %v", got)
	case m.Err(&err):
		if err != ErrEmptyAccess {
			t.Errorf("expected failure to be ErrEmptyAccess, is %q", err)
		}
	}
}

func TestSampleNeedsRandomness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	r := result.Try(func() Sequence[int] { return Of(1, 2).Sample(nil, 3) })
	var got Sequence[int]
	var err error
	switch m := r.Match(); m {
	case m.Ok(&got):
		t.Errorf("expected sampling without a random source to fail, got %v", got)
	case m.Err(&err):
		if !strings.Contains(err.Error(), "randomness") {
			t.Errorf("expected failure to name the missing random source, is %q", err)
		}
	}
}
