package events

import "time"

const NewsLifecycleTopic = "inova.news.lifecycle.v1"

const (
	NewsCreated = "news_created"
	NewsUpdated = "news_updated"
	NewsDeleted = "news_deleted"
	NewsEvicted = "news_evicted"
)

// NewsLifecycleEvent is published for every write to a news article.
// CoverURL is carried so consumers can clean up assets after the row is gone.
type NewsLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	NewsID     int64     `json:"news_id"`
	OwnerID    string    `json:"owner_id,omitempty"`
	CoverURL   string    `json:"cover_url,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RemovesCover reports whether consumers should delete the cover asset.
func (e NewsLifecycleEvent) RemovesCover() bool {
	return (e.EventType == NewsDeleted || e.EventType == NewsEvicted) && e.CoverURL != ""
}
