package dialog

import (
	"errors"
	"testing"
	"time"
)

func TestGetOrCreate_FirstWriterWins(t *testing.T) {
	ResetForTesting()

	l1 := GetOrCreate("/first", WindowHandle(1))
	if got := l1.DefaultOpen(); got != "/first" {
		t.Errorf("DefaultOpen = %q, want %q", got, "/first")
	}
	if got := l1.Window(); got != WindowHandle(1) {
		t.Errorf("Window = %v, want 1", got)
	}
	l1.Release()

	// A second caller with different arguments sees the first
	// caller's instance untouched.
	l2 := GetOrCreate("/second", WindowHandle(2))
	defer l2.Release()
	if got := l2.DefaultOpen(); got != "/first" {
		t.Errorf("DefaultOpen after second GetOrCreate = %q, want %q", got, "/first")
	}
	if got := l2.DefaultSave(); got != "/first" {
		t.Errorf("DefaultSave after second GetOrCreate = %q, want %q", got, "/first")
	}
	if got := l2.Window(); got != WindowHandle(1) {
		t.Errorf("Window after second GetOrCreate = %v, want 1", got)
	}
}

func TestUninitializedAccess(t *testing.T) {
	ResetForTesting()

	if l, ok := TryGet(); ok {
		l.Release()
		t.Fatal("TryGet before Create reported a manager")
	}

	l, err := Get()
	if err == nil {
		l.Release()
		t.Fatal("Get before Create succeeded")
	}
	if !errors.Is(err, ErrManagerUninitialized) {
		t.Errorf("Get error = %v, want ErrManagerUninitialized", err)
	}
}

func TestCreateOverwrites(t *testing.T) {
	ResetForTesting()

	GetOrCreate("/old", WindowHandle(1)).Release()
	Create("/new", WindowHandle(2))

	l, err := Get()
	if err != nil {
		t.Fatalf("Get after Create error = %v", err)
	}
	defer l.Release()
	if got := l.DefaultOpen(); got != "/new" {
		t.Errorf("DefaultOpen = %q, want %q", got, "/new")
	}
	if got := l.Window(); got != WindowHandle(2) {
		t.Errorf("Window = %v, want 2", got)
	}
}

func TestOpenSaveIndependence(t *testing.T) {
	ResetForTesting()

	l := GetOrCreate("/start", 0)
	defer l.Release()

	l.SetDefaultOpen("/opened-here")
	if got := l.DefaultSave(); got != "/start" {
		t.Errorf("SetDefaultOpen changed save default to %q", got)
	}

	l.SetDefaultSave("/saved-here")
	if got := l.DefaultOpen(); got != "/opened-here" {
		t.Errorf("SetDefaultSave changed open default to %q", got)
	}
}

func TestMutualExclusion(t *testing.T) {
	ResetForTesting()

	l1 := GetOrCreate("/start", 0)

	acquired := make(chan *Lease)
	go func() {
		l2, err := Get()
		if err != nil {
			t.Errorf("second Get error = %v", err)
			acquired <- nil
			return
		}
		acquired <- l2
	}()

	// The second acquirer must block while the first lease is live.
	select {
	case l2 := <-acquired:
		if l2 != nil {
			l2.Release()
		}
		t.Fatal("second Get completed while first lease was held")
	case <-time.After(50 * time.Millisecond):
	}

	l1.Release()

	select {
	case l2 := <-acquired:
		if l2 == nil {
			t.Fatal("second Get failed after release")
		}
		l2.Release()
	case <-time.After(2 * time.Second):
		t.Fatal("second Get still blocked after first lease was released")
	}
}

func TestLeaseReleaseIdempotent(t *testing.T) {
	ResetForTesting()

	l := GetOrCreate("/start", 0)
	l.Release()
	l.Release() // must not unlock twice

	l2, err := Get()
	if err != nil {
		t.Fatalf("Get after double release error = %v", err)
	}
	l2.Release()
}
