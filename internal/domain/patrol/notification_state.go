package patrol

import (
	"math"
	"time"

	"patrol/internal/domain/entity"
)

// DefaultFeedLimit caps how many notifications an admin sees at once.
const DefaultFeedLimit = 25

// ApplyNotificationState filters a sorted feed through an admin's state and annotates each item.
// Deleted ids and anything at or before the last reset are dropped before the cap is applied.
func ApplyNotificationState(feed []entity.AdminNotification, state *entity.NotificationState, now time.Time, limit int) []entity.AdminNotification {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if state == nil {
		state = entity.NewNotificationState("")
	}

	out := make([]entity.AdminNotification, 0, min(limit, len(feed)))
	for _, n := range feed {
		if len(out) == limit {
			break
		}
		if state.IsDeleted(n.ID) || state.Suppressed(n.Time) {
			continue
		}
		n.Unread = !state.IsRead(n.ID)
		n.Acknowledged = state.IsAcked(n.ID)
		n.TimeAgoMinutes = minutesAgo(now, n.Time)
		out = append(out, n)
	}

	return out
}

func minutesAgo(now, t time.Time) int {
	return max(0, int(math.Round(now.Sub(t).Minutes())))
}
