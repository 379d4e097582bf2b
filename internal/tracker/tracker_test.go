package tracker

import (
	"testing"

	"github.com/abhisek/leveltrack/internal/gamedata"
)

func newTracker(t *testing.T, opts Options) *Tracker {
	t.Helper()
	return New(gamedata.Default(), opts)
}

func mustEnter(t *testing.T, tr *Tracker, raw string) ZoneEntry {
	t.Helper()
	entry, ok := tr.EnterZone(raw)
	if !ok {
		t.Fatalf("EnterZone(%q) failed to resolve", raw)
	}
	return entry
}

func TestEnterZone_ByID(t *testing.T) {
	tr := newTracker(t, Options{})

	entry := mustEnter(t, tr, "1_1_1")
	if entry.ZoneID != "1_1_1" {
		t.Errorf("got zone id %q, want %q", entry.ZoneID, "1_1_1")
	}
	if entry.Name != "Twilight Strand" {
		t.Errorf("got name %q, want %q", entry.Name, "Twilight Strand")
	}
	if entry.Act != 1 {
		t.Errorf("got act %d, want 1", entry.Act)
	}
	if tr.VisitCount() != 1 {
		t.Errorf("got history length %d, want 1", tr.VisitCount())
	}
}

func TestEnterZone_ByName(t *testing.T) {
	tr := newTracker(t, Options{})

	entry := mustEnter(t, tr, "Upper Prison")
	if entry.ZoneID != "1_1_7_2" {
		t.Errorf("got zone id %q, want %q", entry.ZoneID, "1_1_7_2")
	}
}

func TestEnterZone_Unresolved(t *testing.T) {
	tr := newTracker(t, Options{})
	mustEnter(t, tr, "1_1_1")

	_, ok := tr.EnterZone("Completely Made Up Zone Name")
	if ok {
		t.Fatal("expected unresolved zone to fail")
	}
	if tr.VisitCount() != 1 {
		t.Errorf("unresolved zone mutated history: length %d, want 1", tr.VisitCount())
	}
	if tr.CurrentAct() != 1 {
		t.Errorf("unresolved zone mutated act: %d, want 1", tr.CurrentAct())
	}
	if tr.Visited("1_1_2") {
		t.Error("unresolved zone marked as visited")
	}
}

func TestEnterZone_UnknownID(t *testing.T) {
	tr := newTracker(t, Options{})

	if _, ok := tr.EnterZone("9_9_9_9"); ok {
		t.Fatal("expected unknown id to fail")
	}
	if tr.VisitCount() != 0 {
		t.Errorf("unknown id mutated history: length %d, want 0", tr.VisitCount())
	}
}

func TestEnterZone_PrefixStripFallback(t *testing.T) {
	// The dataset stores "Coast" without the article; the log says
	// "The Coast". Resolution strips the prefix and retries.
	tr := newTracker(t, Options{})

	entry := mustEnter(t, tr, "The Coast")
	if entry.ZoneID != "1_1_2" {
		t.Errorf("got zone id %q, want %q", entry.ZoneID, "1_1_2")
	}
	if entry.Name != "Coast" {
		t.Errorf("got name %q, want stripped form %q", entry.Name, "Coast")
	}
}

func TestEnterZone_MapNameAlias(t *testing.T) {
	tr := newTracker(t, Options{})

	entry := mustEnter(t, tr, "The Submerged Passage")
	if entry.ZoneID != "1_1_4_1" {
		t.Errorf("got zone id %q, want %q", entry.ZoneID, "1_1_4_1")
	}
}

func TestProximity_DuplicateNameResolvesNearestAct(t *testing.T) {
	// "Solaris Temple" exists in acts 3 and 8. From act 7 the act-8
	// record (distance 1) must win over act 3 (distance 4).
	tr := newTracker(t, Options{})
	mustEnter(t, tr, "1_7_1")

	entry := mustEnter(t, tr, "Solaris Temple")
	if entry.ZoneID != "1_8_9_1" {
		t.Errorf("got zone id %q, want act-8 record 1_8_9_1", entry.ZoneID)
	}
	if entry.Act != 8 {
		t.Errorf("got act %d, want 8", entry.Act)
	}
}

func TestProximity_AboveBeforeBelow(t *testing.T) {
	// From act 7, "Riverways" (acts 2 and 6) resolves downward only
	// after the same distance upward misses: act 6 is distance 1.
	tr := newTracker(t, Options{})
	mustEnter(t, tr, "1_7_1")

	entry := mustEnter(t, tr, "Riverways")
	if entry.ZoneID != "1_6_9" {
		t.Errorf("got zone id %q, want 1_6_9", entry.ZoneID)
	}
}

func TestPassivePoints_NoDoubleCount(t *testing.T) {
	tr := newTracker(t, Options{})

	var fired int
	tr.OnPassivePoint(func(zone string, total int) { fired++ })

	mustEnter(t, tr, "1_1_7_2")
	if tr.PassivePoints() != 1 || fired != 1 {
		t.Fatalf("got %d points, %d notifications; want 1, 1", tr.PassivePoints(), fired)
	}

	mustEnter(t, tr, "1_1_8")
	mustEnter(t, tr, "1_1_7_2") // revisit
	if tr.PassivePoints() != 1 {
		t.Errorf("revisit double-counted: got %d points, want 1", tr.PassivePoints())
	}
	if fired != 1 {
		t.Errorf("revisit fired notification: got %d, want 1", fired)
	}
}

func TestActProgressionScenario(t *testing.T) {
	// Act 1 start to act 2: one act change, two passive points, every
	// id lands in the history.
	tr := newTracker(t, Options{})

	var actChanges [][2]int
	var passives []int
	tr.OnActChange(func(oldAct, newAct int) { actChanges = append(actChanges, [2]int{oldAct, newAct}) })
	tr.OnPassivePoint(func(zone string, total int) { passives = append(passives, total) })

	ids := []string{
		"1_1_1", "1_1_town", "1_1_2", "1_1_3", "1_1_4_1", "1_1_5",
		"1_1_6", "1_1_7_1", "1_1_7_2", "1_1_8", "1_1_9", "1_1_11_1",
		"1_1_town", "1_2_1",
	}
	for _, id := range ids {
		mustEnter(t, tr, id)
	}

	if len(actChanges) != 1 || actChanges[0] != [2]int{1, 2} {
		t.Errorf("got act changes %v, want [[1 2]]", actChanges)
	}
	if len(passives) != 2 || tr.PassivePoints() != 2 {
		t.Errorf("got %d passive notifications, %d points; want 2, 2", len(passives), tr.PassivePoints())
	}
	if tr.VisitCount() != len(ids) {
		t.Errorf("got history length %d, want %d", tr.VisitCount(), len(ids))
	}
	if tr.CurrentAct() != 2 {
		t.Errorf("got act %d, want 2", tr.CurrentAct())
	}
}

func TestNotificationOrdering(t *testing.T) {
	// A passive zone in a new act triggers all three notifications;
	// the order is fixed: passive point, act change, zone change.
	tr := newTracker(t, Options{})
	mustEnter(t, tr, "1_1_11_1") // passive in act 1, consumed here

	var order []string
	tr.OnZoneChange(func(ZoneEntry) { order = append(order, "zone") })
	tr.OnActChange(func(_, _ int) { order = append(order, "act") })
	tr.OnPassivePoint(func(string, int) { order = append(order, "passive") })

	mustEnter(t, tr, "1_2_10_3") // Weaver's Chambers: passive, act 2

	want := []string{"passive", "act", "zone"}
	if len(order) != len(want) {
		t.Fatalf("got notifications %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got notifications %v, want %v", order, want)
		}
	}
}

func TestActRegression_Default(t *testing.T) {
	// Default policy trusts the parsed act, including backward moves.
	tr := newTracker(t, Options{})
	mustEnter(t, tr, "1_2_1")

	var changes [][2]int
	tr.OnActChange(func(oldAct, newAct int) { changes = append(changes, [2]int{oldAct, newAct}) })

	entry := mustEnter(t, tr, "1_1_town")
	if entry.Act != 1 {
		t.Errorf("got entry act %d, want 1", entry.Act)
	}
	if tr.CurrentAct() != 1 {
		t.Errorf("got current act %d, want 1", tr.CurrentAct())
	}
	if len(changes) != 1 || changes[0] != [2]int{2, 1} {
		t.Errorf("got act changes %v, want [[2 1]]", changes)
	}
}

func TestActRegression_Monotonic(t *testing.T) {
	tr := newTracker(t, Options{MonotonicAct: true})
	mustEnter(t, tr, "1_2_1")

	var fired bool
	tr.OnActChange(func(_, _ int) { fired = true })

	entry := mustEnter(t, tr, "1_1_town")
	if entry.Act != 2 {
		t.Errorf("got entry act %d, want pinned act 2", entry.Act)
	}
	if tr.CurrentAct() != 2 {
		t.Errorf("got current act %d, want 2", tr.CurrentAct())
	}
	if fired {
		t.Error("act change fired on a backtrack under monotonic policy")
	}

	// Forward movement still advances.
	mustEnter(t, tr, "1_3_town")
	if tr.CurrentAct() != 3 {
		t.Errorf("got current act %d, want 3", tr.CurrentAct())
	}
}

func TestReset(t *testing.T) {
	tr := newTracker(t, Options{})
	mustEnter(t, tr, "1_1_7_2")
	mustEnter(t, tr, "1_2_1")

	tr.Reset()

	fresh := newTracker(t, Options{})
	if tr.CurrentAct() != fresh.CurrentAct() {
		t.Errorf("got act %d, want %d", tr.CurrentAct(), fresh.CurrentAct())
	}
	if tr.PassivePoints() != fresh.PassivePoints() {
		t.Errorf("got points %d, want %d", tr.PassivePoints(), fresh.PassivePoints())
	}
	if tr.VisitCount() != fresh.VisitCount() {
		t.Errorf("got history length %d, want %d", tr.VisitCount(), fresh.VisitCount())
	}
	if _, ok := tr.CurrentZone(); ok {
		t.Error("current zone survived reset")
	}
	if tr.Visited("1_1_7_2") {
		t.Error("visited set survived reset")
	}

	// Reset is idempotent and a reset tracker earns passives again.
	tr.Reset()
	mustEnter(t, tr, "1_1_7_2")
	if tr.PassivePoints() != 1 {
		t.Errorf("got %d points after reset, want 1", tr.PassivePoints())
	}
}

func TestRecentZonesAndZonesInAct(t *testing.T) {
	tr := newTracker(t, Options{})
	for _, id := range []string{"1_1_1", "1_1_town", "1_1_2", "1_1_3"} {
		mustEnter(t, tr, id)
	}

	recent := tr.RecentZones(2)
	if len(recent) != 2 {
		t.Fatalf("got %d recent zones, want 2", len(recent))
	}
	if recent[0].ZoneID != "1_1_2" || recent[1].ZoneID != "1_1_3" {
		t.Errorf("got recent %s, %s; want 1_1_2, 1_1_3", recent[0].ZoneID, recent[1].ZoneID)
	}

	if got := tr.RecentZones(10); len(got) != 4 {
		t.Errorf("got %d recent zones for oversized n, want 4", len(got))
	}
	if got := tr.RecentZones(0); got != nil {
		t.Errorf("got %v for n=0, want nil", got)
	}

	if got := tr.ZonesInAct(1); len(got) != 4 {
		t.Errorf("got %d act-1 zones, want 4", len(got))
	}
	if got := tr.ZonesInAct(2); len(got) != 0 {
		t.Errorf("got %d act-2 zones, want 0", len(got))
	}
}

func TestFullActOnePlaythroughByName(t *testing.T) {
	// A realistic act 1 route fed as display names, backtracking and
	// the town revisit included.
	tr := newTracker(t, Options{})

	var zoneChanges int
	tr.OnZoneChange(func(ZoneEntry) { zoneChanges++ })

	route := []string{
		"Twilight Strand",
		"Lioneye's Watch",
		"The Coast",
		"Mud Flats",
		"Submerged Passage",
		"Flooded Depths",
		"Submerged Passage",
		"The Ledge",
		"The Climb",
		"Lower Prison",
		"Upper Prison",
		"Prisoner's Gate",
		"Ship Graveyard",
		"Cavern of Wrath",
		"Lioneye's Watch",
	}
	for _, name := range route {
		entry := mustEnter(t, tr, name)
		if entry.Act != 1 {
			t.Errorf("%s: got act %d, want 1", name, entry.Act)
		}
	}

	if zoneChanges != len(route) {
		t.Errorf("got %d zone changes, want %d", zoneChanges, len(route))
	}
	if tr.PassivePoints() != 2 {
		t.Errorf("got %d passive points, want 2", tr.PassivePoints())
	}
	if tr.CurrentAct() != 1 {
		t.Errorf("got act %d, want 1", tr.CurrentAct())
	}
}

func TestIsPassiveZone(t *testing.T) {
	if !IsPassiveZone("1_1_7_2") {
		t.Error("1_1_7_2 should be a passive zone")
	}
	if IsPassiveZone("1_1_1") {
		t.Error("1_1_1 should not be a passive zone")
	}
}
