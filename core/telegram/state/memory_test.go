package state

import "testing"

func TestMemoryManagerStateTransitions(t *testing.T) {
	mgr := NewMemoryManager()
	const userID = int64(42)

	if mgr.GetState(userID) != StateIdle {
		t.Fatal("fresh user should be idle")
	}
	if mgr.InProgress(userID) {
		t.Fatal("fresh user should not be in progress")
	}

	mgr.SetState(userID, State("bands:zone"))
	if !mgr.InProgress(userID) {
		t.Fatal("user with non-idle state should be in progress")
	}
	if got := mgr.GetState(userID); got != State("bands:zone") {
		t.Fatalf("state = %q", got)
	}

	mgr.ClearState(userID)
	if mgr.InProgress(userID) {
		t.Fatal("cleared user should be idle")
	}
}

func TestMemoryManagerTempData(t *testing.T) {
	mgr := NewMemoryManager()
	const userID = int64(7)

	if _, ok := mgr.GetTemp(userID, "continent"); ok {
		t.Fatal("unexpected temp value for fresh user")
	}

	mgr.SetTemp(userID, "continent", "EU")
	got, ok := mgr.GetTempString(userID, "continent")
	if !ok || got != "EU" {
		t.Fatalf("temp = %q ok=%v", got, ok)
	}

	mgr.ClearTemp(userID, "continent")
	if _, ok := mgr.GetTemp(userID, "continent"); ok {
		t.Fatal("temp value should have been cleared")
	}

	mgr.SetTemp(userID, "continent", "NA")
	mgr.Clear(userID)
	if _, ok := mgr.GetTemp(userID, "continent"); ok {
		t.Fatal("session should have been dropped")
	}
	if mgr.GetState(userID) != StateIdle {
		t.Fatal("dropped session should report idle")
	}
}
