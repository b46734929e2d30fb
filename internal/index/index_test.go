package index

import "testing"

func TestGetOrAllocateAssignsInsertionOrder(t *testing.T) {
	ix := New[string]()

	if id := ix.GetOrAllocate("a"); id != 0 {
		t.Errorf("first item: id = %d, want 0", id)
	}
	if id := ix.GetOrAllocate("b"); id != 1 {
		t.Errorf("second item: id = %d, want 1", id)
	}
	if id := ix.GetOrAllocate("a"); id != 0 {
		t.Errorf("repeat item: id = %d, want 0", id)
	}
	if ix.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ix.Len())
	}
}

func TestGetRoundTrips(t *testing.T) {
	ix := New[int]()
	id := ix.GetOrAllocate(42)
	if got := ix.Get(id); got != 42 {
		t.Errorf("Get(%d) = %d, want 42", id, got)
	}
}

func TestLookupMissing(t *testing.T) {
	ix := New[string]()
	ix.GetOrAllocate("present")
	if _, ok := ix.Lookup("absent"); ok {
		t.Error("Lookup(\"absent\") reported present")
	}
	if _, ok := ix.Lookup("present"); !ok {
		t.Error("Lookup(\"present\") reported absent")
	}
}

func TestWithCapacityStartsEmpty(t *testing.T) {
	ix := WithCapacity[int](16)
	if ix.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ix.Len())
	}
}
