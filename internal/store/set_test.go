package store

import (
	"reflect"
	"testing"
)

func TestSetAdd(t *testing.T) {
	set := NewSet()

	added := set.Add("member1", "member2", "member3")
	if added != 3 {
		t.Errorf("Expected 3 members added, got %d", added)
	}

	added = set.Add("member1")
	if added != 0 {
		t.Errorf("Expected 0 members added (already exists), got %d", added)
	}

	added = set.Add("member2", "member4", "member5")
	if added != 2 {
		t.Errorf("Expected 2 new members added, got %d", added)
	}

	if set.Card() != 5 {
		t.Errorf("Expected cardinality 5, got %d", set.Card())
	}
}

func TestSetAddIsIdempotent(t *testing.T) {
	once := NewSet("https://ex.com/a")
	twice := NewSet("https://ex.com/a")
	twice.Add("https://ex.com/a")

	if !reflect.DeepEqual(once.Members(), twice.Members()) {
		t.Errorf("Expected %v, got %v", once.Members(), twice.Members())
	}
}

func TestSetRemove(t *testing.T) {
	set := NewSet("member1", "member2", "member3")

	removed := set.Remove("member1")
	if removed != 1 {
		t.Errorf("Expected 1 member removed, got %d", removed)
	}

	removed = set.Remove("nonexistent")
	if removed != 0 {
		t.Errorf("Expected 0 members removed, got %d", removed)
	}

	removed = set.Remove("member2", "member3", "nonexistent")
	if removed != 2 {
		t.Errorf("Expected 2 members removed, got %d", removed)
	}

	if set.Card() != 0 {
		t.Errorf("Expected cardinality 0, got %d", set.Card())
	}
}

func TestSetIsMember(t *testing.T) {
	set := NewSet("member1", "member2")

	if !set.IsMember("member1") {
		t.Error("Expected member1 to be in set")
	}

	if set.IsMember("nonexistent") {
		t.Error("Expected nonexistent to not be in set")
	}

	set.Remove("member1")
	if set.IsMember("member1") {
		t.Error("Expected member1 to not be in set after removal")
	}
}

func TestSetMembersKeepInsertionOrder(t *testing.T) {
	set := NewSet()

	if len(set.Members()) != 0 {
		t.Errorf("Expected 0 members, got %d", len(set.Members()))
	}

	set.Add("c", "a", "b", "a")
	set.Remove("a")
	set.Add("a")

	want := []string{"c", "b", "a"}
	if got := set.Members(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	members := set.Members()
	members[0] = "mutated"
	if set.IsMember("mutated") {
		t.Error("Expected Members to return a copy")
	}
}

func TestSetPositionAndAt(t *testing.T) {
	set := NewSet("x", "y", "z")

	if pos := set.Position("y"); pos != 2 {
		t.Errorf("Expected position 2, got %d", pos)
	}
	if pos := set.Position("nope"); pos != 0 {
		t.Errorf("Expected position 0, got %d", pos)
	}

	if v, ok := set.At(0); !ok || v != "x" {
		t.Errorf("Expected x at 0, got %q (%v)", v, ok)
	}
	if _, ok := set.At(3); ok {
		t.Error("Expected At(3) to fail")
	}
	if _, ok := set.At(-1); ok {
		t.Error("Expected At(-1) to fail")
	}
}

func TestSetPop(t *testing.T) {
	set := NewSet("x", "y", "z")

	member, ok := set.Pop()
	if !ok || member != "z" {
		t.Errorf("Expected z, got %q (%v)", member, ok)
	}
	if set.IsMember("z") {
		t.Error("Expected popped member to be removed")
	}

	empty := NewSet()
	if _, ok := empty.Pop(); ok {
		t.Error("Expected pop on empty set to fail")
	}
}

func TestSetReplace(t *testing.T) {
	set := NewSet("a", "b")
	set.Replace([]string{"c", "c", "d"})

	want := []string{"c", "d"}
	if got := set.Members(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if set.IsMember("a") {
		t.Error("Expected a to be gone after replace")
	}
}

func TestSetUnionAndDifference(t *testing.T) {
	a := NewSet("1", "2")
	b := NewSet("2", "3")
	c := NewSet("3")
	d := NewSet("1", "4")

	unionA := Union(a, b)
	unionB := Union(c, d)
	result := unionA.Difference(unionB)

	if got, want := unionA.Members(), []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Expected union %v, got %v", want, got)
	}
	if got, want := result.Members(), []string{"2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Expected difference %v, got %v", want, got)
	}
	if a.Card() != 2 || b.Card() != 2 {
		t.Error("Expected union inputs to be unchanged")
	}
}
