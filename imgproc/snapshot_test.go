package imgproc

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

// fakeSource records the order of lock, read and unlock calls.
type fakeSource struct {
	data    []byte
	events  []string
	lockErr error
}

func (f *fakeSource) Lock() error {
	if f.lockErr != nil {
		return f.lockErr
	}
	f.events = append(f.events, "lock")
	return nil
}

func (f *fakeSource) Unlock() error {
	f.events = append(f.events, "unlock")
	return nil
}

func (f *fakeSource) Data() []byte {
	f.events = append(f.events, "data")
	return f.data
}

func TestSnapshotCopiesUnderLock(t *testing.T) {
	src := &fakeSource{data: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	dst := make([]byte, len(src.data))

	if err := Snapshot(src, dst); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(dst, src.data) {
		t.Errorf("snapshot %v does not match source %v", dst, src.data)
	}

	// The buffer read must be bracketed by exactly one lock/unlock pair.
	want := []string{"lock", "data", "unlock"}
	if !reflect.DeepEqual(src.events, want) {
		t.Errorf("got call order %v, want %v", src.events, want)
	}
}

func TestSnapshotOwnsItsCopy(t *testing.T) {
	src := &fakeSource{data: []byte{10, 20, 30, 40}}
	dst := make([]byte, len(src.data))

	if err := Snapshot(src, dst); err != nil {
		t.Fatal(err)
	}

	// The producer overwriting the buffer afterwards must not reach dst.
	src.data[0] = 99
	if dst[0] != 10 {
		t.Errorf("snapshot aliases the source buffer")
	}
}

func TestSnapshotLockFailure(t *testing.T) {
	lockErr := errors.New("lock failed")
	src := &fakeSource{data: []byte{1, 2}, lockErr: lockErr}
	dst := make([]byte, 2)

	if err := Snapshot(src, dst); !errors.Is(err, lockErr) {
		t.Errorf("got %v, want %v", err, lockErr)
	}
	if len(src.events) != 0 {
		t.Errorf("source touched after failed lock: %v", src.events)
	}
}
