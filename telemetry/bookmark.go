package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkLeadChange     BookmarkType = "lead_change"
	BookmarkTeamEliminated BookmarkType = "team_eliminated"
	BookmarkFeedingFrenzy  BookmarkType = "feeding_frenzy"
	BookmarkFinalDuel      BookmarkType = "final_duel"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects turning points in a match.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// Last window seen, valid once seen is true
	last      WindowStats
	seen      bool
	duelFired bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.seen {
		if b := bd.checkLeadChange(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkTeamEliminated(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkFeedingFrenzy(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}
	if b := bd.checkFinalDuel(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	bd.last = stats
	bd.seen = true

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkLeadChange(stats WindowStats) *Bookmark {
	if stats.LeaderTeam < 0 || bd.last.LeaderTeam < 0 || stats.LeaderTeam == bd.last.LeaderTeam {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkLeadChange,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("team %d overtook team %d (%.0f mass)", stats.LeaderTeam, bd.last.LeaderTeam, stats.LeaderMass),
	}
}

func (bd *BookmarkDetector) checkTeamEliminated(stats WindowStats) *Bookmark {
	lost := bd.last.TeamsAlive - stats.TeamsAlive
	if lost <= 0 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkTeamEliminated,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d team(s) eliminated, %d remaining", lost, stats.TeamsAlive),
	}
}

// checkFeedingFrenzy fires when consumptions exceed twice the rolling average.
func (bd *BookmarkDetector) checkFeedingFrenzy(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 2 {
		return nil
	}

	var sum float64
	for _, h := range history {
		sum += float64(h.Consumptions)
	}
	avg := sum / float64(len(history))

	if avg > 0 && float64(stats.Consumptions) > 2*avg && stats.Consumptions >= 3 {
		return &Bookmark{
			Type:        BookmarkFeedingFrenzy,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("consumptions %d vs %.1f avg", stats.Consumptions, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkFinalDuel(stats WindowStats) *Bookmark {
	if bd.duelFired || stats.TeamsAlive != 2 {
		return nil
	}
	bd.duelFired = true
	return &Bookmark{
		Type:        BookmarkFinalDuel,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("two teams left, %.0f total mass", stats.TotalMass),
	}
}
