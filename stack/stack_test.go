package stack

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLIFOOrdering(t *testing.T) {
	Convey("pushes come back in reverse order", t, func() {
		s := New[int]()
		for i := 1; i <= 100; i++ {
			s.Push(i)
		}

		for i := 100; i >= 1; i-- {
			v, ok := s.Pop()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, i)
		}

		So(s.Len(), ShouldEqual, 0)
	})

	Convey("push immediately followed by pop restores the prior state", t, func() {
		s := New[int]()
		s.Push(7)
		s.Push(8)

		s.Push(99)
		v, ok := s.Pop()
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, 99)

		So(s.Len(), ShouldEqual, 2)
		v, _ = s.Pop()
		So(v, ShouldEqual, 8)
		v, _ = s.Pop()
		So(v, ShouldEqual, 7)
	})
}

func TestEmptyPop(t *testing.T) {
	Convey("popping an empty stack is safe", t, func() {
		s := New[string]()

		v, ok := s.Pop()
		So(ok, ShouldBeFalse)
		So(v, ShouldEqual, "")
		So(s.Len(), ShouldEqual, 0)

		Convey("even repeatedly", func() {
			for i := 0; i < 10; i++ {
				_, ok := s.Pop()
				So(ok, ShouldBeFalse)
			}
			So(s.Len(), ShouldEqual, 0)
		})
	})
}

func TestCountInvariant(t *testing.T) {
	Convey("length equals pushes minus successful pops", t, func() {
		s := New[int]()
		pushes, pops := 0, 0

		ops := []struct {
			push bool
			v    int
		}{
			{true, 1}, {true, 2}, {false, 0}, {true, 3},
			{false, 0}, {false, 0}, {false, 0}, {true, 4},
		}
		for _, op := range ops {
			if op.push {
				s.Push(op.v)
				pushes++
			} else if _, ok := s.Pop(); ok {
				pops++
			}
			So(s.Len(), ShouldEqual, pushes-pops)
			So(s.Len(), ShouldBeGreaterThanOrEqualTo, 0)
		}
	})
}

func TestGenericElements(t *testing.T) {
	Convey("the stack holds any element type", t, func() {
		type pair struct{ a, b string }

		s := New[pair]()
		s.Push(pair{"x", "y"})
		s.Push(pair{"p", "q"})

		v, ok := s.Pop()
		So(ok, ShouldBeTrue)
		So(v, ShouldResemble, pair{"p", "q"})
	})
}
