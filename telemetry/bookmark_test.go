package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_LeadChange(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bd.Check(WindowStats{WindowEndTick: 600, LeaderTeam: 1, LeaderMass: 100, TeamsAlive: 8})
	same := bd.Check(WindowStats{WindowEndTick: 1200, LeaderTeam: 1, LeaderMass: 120, TeamsAlive: 8})
	if hasBookmark(same, BookmarkLeadChange) {
		t.Error("unexpected lead_change while leader is unchanged")
	}

	changed := bd.Check(WindowStats{WindowEndTick: 1800, LeaderTeam: 4, LeaderMass: 150, TeamsAlive: 8})
	if !hasBookmark(changed, BookmarkLeadChange) {
		t.Error("expected lead_change bookmark")
	}
}

func TestBookmarkDetector_TeamEliminated(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bd.Check(WindowStats{WindowEndTick: 600, TeamsAlive: 5})
	bookmarks := bd.Check(WindowStats{WindowEndTick: 1200, TeamsAlive: 3})

	if !hasBookmark(bookmarks, BookmarkTeamEliminated) {
		t.Error("expected team_eliminated bookmark")
	}
}

func TestBookmarkDetector_FeedingFrenzy(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Consumptions: 2, TeamsAlive: 8})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, Consumptions: 9, TeamsAlive: 8})
	if !hasBookmark(bookmarks, BookmarkFeedingFrenzy) {
		t.Error("expected feeding_frenzy bookmark")
	}
}

func TestBookmarkDetector_FinalDuelOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	first := bd.Check(WindowStats{WindowEndTick: 600, TeamsAlive: 2})
	if !hasBookmark(first, BookmarkFinalDuel) {
		t.Fatal("expected final_duel bookmark")
	}
	second := bd.Check(WindowStats{WindowEndTick: 1200, TeamsAlive: 2})
	if hasBookmark(second, BookmarkFinalDuel) {
		t.Error("final_duel should only fire once")
	}
}
