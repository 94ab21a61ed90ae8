package saveslot

import (
	"context"
	"testing"
	"time"

	"github.com/agentstation/saveslot/pkg/codec"
	"github.com/agentstation/saveslot/pkg/logging"
	"github.com/agentstation/saveslot/pkg/slots"
	"github.com/agentstation/saveslot/pkg/storage"
	"github.com/agentstation/saveslot/pkg/storage/memory"
)

// validSaveBlob is a decodable save with a 2-member active party and a
// 7260-frame elapsed counter (121 seconds at 60 frames/sec).
const validSaveBlob = `{
	"party": {"members": [1, 2]},
	"actors": [
		{"id": 1, "name": "Alia", "characterSheet": "Actor1", "characterIndex": 0, "faceSheet": "Actor1", "faceIndex": 0},
		{"id": 2, "name": "Bren", "characterSheet": "Actor2", "characterIndex": 3, "faceSheet": "Actor2", "faceIndex": 3}
	],
	"system": {"playtimeFrames": 7260}
}`

var testMeta = StaticMetadata{
	GameID:       "test-game",
	Title:        "Test Quest",
	MaxSlots:     5,
	MaxPartySize: 4,
}

// countingStore wraps a provider and counts writes, so tests can assert
// that a converged index writes nothing.
type countingStore struct {
	storage.Provider
	writes int
}

func (s *countingStore) Save(slot int, data []byte) error {
	s.writes++
	return s.Provider.Save(slot, data)
}

func newTestClient(t *testing.T, store storage.Provider, opts ...Option) Client {
	t.Helper()
	logging.DisableLoggingForTest(t)

	base := []Option{
		WithStorage(store),
		WithMetadata(testMeta),
	}
	c, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

func TestReconcileSynthesizesUntrackedSlots(t *testing.T) {
	store, err := memory.New(
		memory.WithSlot(1, []byte(validSaveBlob)),
		memory.WithSlot(3, []byte(validSaveBlob)),
	)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := newTestClient(t, store, WithNow(func() time.Time { return now }))

	result, err := c.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if got, want := result.Added, []int{1, 3}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Added = %v, want %v", got, want)
	}
	if len(result.Removed) != 0 {
		t.Errorf("Removed = %v, want empty", result.Removed)
	}
	if !result.Saved {
		t.Error("Expected index to be saved after changes")
	}
	if !store.Exists(storage.IndexSlot) {
		t.Error("Expected index blob in reserved slot after save")
	}

	idx := c.Index()
	summary, ok := idx.Get(1)
	if !ok {
		t.Fatal("Expected summary for slot 1")
	}
	if summary.Playtime != "00:02:01" {
		t.Errorf("Playtime = %q, want %q", summary.Playtime, "00:02:01")
	}
	if len(summary.Characters) != 2 || len(summary.Faces) != 2 {
		t.Fatalf("Roster sizes = %d/%d, want 2/2", len(summary.Characters), len(summary.Faces))
	}
	if summary.Characters[0] != (slots.SpriteRef{Sheet: "Actor1", Index: 0}) {
		t.Errorf("Characters[0] = %+v", summary.Characters[0])
	}
	if summary.Characters[1] != (slots.SpriteRef{Sheet: "Actor2", Index: 3}) {
		t.Errorf("Characters[1] = %+v", summary.Characters[1])
	}
	if summary.Faces[1] != (slots.SpriteRef{Sheet: "Actor2", Index: 3}) {
		t.Errorf("Faces[1] = %+v", summary.Faces[1])
	}
	if summary.GameID != "test-game" || summary.Title != "Test Quest" {
		t.Errorf("Identity = %q/%q, want test-game/Test Quest", summary.GameID, summary.Title)
	}
	if !summary.Timestamp.Equal(now) {
		t.Errorf("Timestamp = %v, want %v", summary.Timestamp, now)
	}
}

func TestReconcileRemovesStaleEntries(t *testing.T) {
	// Seed an index that tracks slot 2, with no save file behind it.
	stale := slots.NewIndex()
	stale.Put(2, &slots.Summary{Title: "Ghost", Playtime: "01:00:00"})
	blob, err := codec.NewJSON().EncodeIndex(stale)
	if err != nil {
		t.Fatalf("Failed to encode seed index: %v", err)
	}

	store, err := memory.New(memory.WithSlot(storage.IndexSlot, blob))
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	c := newTestClient(t, store)

	result, err := c.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if len(result.Removed) != 1 || result.Removed[0] != 2 {
		t.Errorf("Removed = %v, want [2]", result.Removed)
	}
	if len(result.Added) != 0 {
		t.Errorf("Added = %v, want empty", result.Added)
	}
	if c.Index().Len() != 0 {
		t.Errorf("Index length = %d, want 0", c.Index().Len())
	}
}

func TestReconcileCompletenessInvariant(t *testing.T) {
	// A mix of tracked, untracked, and stale slots.
	stale := slots.NewIndex()
	stale.Put(4, &slots.Summary{Title: "Ghost"})
	blob, err := codec.NewJSON().EncodeIndex(stale)
	if err != nil {
		t.Fatalf("Failed to encode seed index: %v", err)
	}

	store, err := memory.New(
		memory.WithSlot(storage.IndexSlot, blob),
		memory.WithSlot(1, []byte(validSaveBlob)),
		memory.WithSlot(5, []byte("not json")),
	)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	c := newTestClient(t, store)
	if _, err := c.Reconcile(context.Background()); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	idx := c.Index()
	for slot := 1; slot <= testMeta.MaxSlots; slot++ {
		if got, want := idx.Has(slot), store.Exists(slot); got != want {
			t.Errorf("Slot %d: indexHasSummary = %v, storageHasContent = %v", slot, got, want)
		}
	}
}

func TestReconcileIdempotent(t *testing.T) {
	inner, err := memory.New(memory.WithSlot(1, []byte(validSaveBlob)))
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	store := &countingStore{Provider: inner}

	c := newTestClient(t, store)

	first, err := c.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("First Reconcile() error = %v", err)
	}
	if !first.HasChanges() || !first.Saved {
		t.Fatalf("First pass = %+v, expected changes and a save", first)
	}
	before := c.Index()
	writesAfterFirst := store.writes

	second, err := c.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Second Reconcile() error = %v", err)
	}
	if second.HasChanges() || second.Saved {
		t.Errorf("Second pass = %+v, expected a fixed point", second)
	}
	if store.writes != writesAfterFirst {
		t.Errorf("Writes = %d after second pass, want %d", store.writes, writesAfterFirst)
	}
	if !before.Equal(c.Index()) {
		t.Error("Index changed across a converged pass")
	}
}

func TestReconcileNoOpWritesNothing(t *testing.T) {
	// Presence already matches: empty storage, empty index.
	inner, err := memory.New()
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	store := &countingStore{Provider: inner}

	c := newTestClient(t, store)

	result, err := c.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if result.HasChanges() || result.Saved {
		t.Errorf("Result = %+v, expected no changes", result)
	}
	if store.writes != 0 {
		t.Errorf("Writes = %d, want 0", store.writes)
	}
}

func TestReconcileDryRun(t *testing.T) {
	inner, err := memory.New(memory.WithSlot(1, []byte(validSaveBlob)))
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	store := &countingStore{Provider: inner}

	c := newTestClient(t, store)

	result, err := c.Reconcile(context.Background(), WithDryRun())
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if len(result.Added) != 1 || result.Added[0] != 1 {
		t.Errorf("Added = %v, want [1]", result.Added)
	}
	if result.Saved {
		t.Error("Dry run must not save")
	}
	if store.writes != 0 {
		t.Errorf("Writes = %d, want 0 for dry run", store.writes)
	}
	if c.Index().Has(1) {
		t.Error("Dry run must not touch the memoized index")
	}
}

func TestReconcileHooks(t *testing.T) {
	stale := slots.NewIndex()
	stale.Put(3, &slots.Summary{Title: "Ghost"})
	blob, err := codec.NewJSON().EncodeIndex(stale)
	if err != nil {
		t.Fatalf("Failed to encode seed index: %v", err)
	}

	store, err := memory.New(
		memory.WithSlot(storage.IndexSlot, blob),
		memory.WithSlot(1, []byte(validSaveBlob)),
	)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	c := newTestClient(t, store)

	var addedSlots, removedSlots []int
	c.OnSlotAdded(func(slot int, summary slots.Summary) {
		addedSlots = append(addedSlots, slot)
		if summary.Playtime != "00:02:01" {
			t.Errorf("Hook summary playtime = %q", summary.Playtime)
		}
	})
	c.OnSlotRemoved(func(slot int, summary slots.Summary) {
		removedSlots = append(removedSlots, slot)
		if summary.Title != "Ghost" {
			t.Errorf("Hook summary title = %q", summary.Title)
		}
	})

	if _, err := c.Reconcile(context.Background()); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if len(addedSlots) != 1 || addedSlots[0] != 1 {
		t.Errorf("Added hook slots = %v, want [1]", addedSlots)
	}
	if len(removedSlots) != 1 || removedSlots[0] != 3 {
		t.Errorf("Removed hook slots = %v, want [3]", removedSlots)
	}
}

func TestReconcileSurvivesIndexRoundTrip(t *testing.T) {
	// A second client over the same storage must see the reconciled index.
	store, err := memory.New(memory.WithSlot(2, []byte(validSaveBlob)))
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	c1 := newTestClient(t, store)
	if _, err := c1.Reconcile(context.Background()); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	c2 := newTestClient(t, store)
	idx := c2.Index()
	if !idx.Has(2) {
		t.Fatal("Fresh client did not see persisted summary for slot 2")
	}
	s, _ := idx.Get(2)
	if s.Playtime != "00:02:01" {
		t.Errorf("Persisted playtime = %q, want %q", s.Playtime, "00:02:01")
	}
}
