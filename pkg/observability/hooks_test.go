package observability

import (
	"context"
	"testing"
	"time"
)

type recordingStoreHooks struct {
	saves, loads, deletes int
}

func (r *recordingStoreHooks) OnSave(_ context.Context, _, _ string, _ int, _ time.Duration, _ error) {
	r.saves++
}
func (r *recordingStoreHooks) OnLoad(_ context.Context, _, _ string, _ time.Duration, _ error) {
	r.loads++
}
func (r *recordingStoreHooks) OnDelete(_ context.Context, _, _ string, _ error) {
	r.deletes++
}

func TestStoreHooksRegistration(t *testing.T) {
	defer Reset()

	rec := &recordingStoreHooks{}
	SetStoreHooks(rec)

	ctx := context.Background()
	Store().OnSave(ctx, "file", "g1", 128, time.Millisecond, nil)
	Store().OnLoad(ctx, "file", "g1", time.Millisecond, nil)
	Store().OnDelete(ctx, "file", "g1", nil)

	if rec.saves != 1 || rec.loads != 1 || rec.deletes != 1 {
		t.Errorf("events = %d/%d/%d, want 1/1/1", rec.saves, rec.loads, rec.deletes)
	}
}

func TestNilHooksIgnored(t *testing.T) {
	defer Reset()

	SetStoreHooks(nil)
	if Store() == nil {
		t.Fatal("Store() returned nil after SetStoreHooks(nil)")
	}
	// Default no-ops must not panic.
	Store().OnSave(context.Background(), "null", "x", 0, 0, nil)
	Codec().OnEncode(context.Background(), 0, 0, 0, nil)
}

func TestReset(t *testing.T) {
	rec := &recordingStoreHooks{}
	SetStoreHooks(rec)
	Reset()

	Store().OnSave(context.Background(), "file", "g", 1, 0, nil)
	if rec.saves != 0 {
		t.Error("Reset did not restore no-op hooks")
	}
}
