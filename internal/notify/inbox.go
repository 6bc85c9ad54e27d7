package notify

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

type Kind string

const (
	KindTransaction Kind = "transaction"
	KindSecurity    Kind = "security"
	KindAccount     Kind = "account"
)

type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	Link      string    `json:"link,omitempty"`
}

// PushSettings decide which kinds also raise a push notification.
type PushSettings struct {
	Transactions bool
	Security     bool
}

func (p PushSettings) allows(kind Kind) bool {
	switch kind {
	case KindTransaction:
		return p.Transactions
	case KindSecurity:
		return p.Security
	default:
		return false
	}
}

// Inbox is the session's notification list, newest first.
type Inbox struct {
	mu       sync.Mutex
	items    []Notification
	pushes   []Notification
	settings PushSettings
	logger   *logrus.Logger
	now      func() time.Time
}

func NewInbox(settings PushSettings, logger *logrus.Logger) *Inbox {
	return &Inbox{
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

// Notify prepends a notification and raises a push when the settings allow
// its kind.
func (i *Inbox) Notify(kind Kind, title, message, link string) Notification {
	n := Notification{
		ID:        uuid.Must(uuid.NewV4()),
		Kind:      kind,
		Title:     title,
		Message:   message,
		Timestamp: i.now(),
		Link:      link,
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = append([]Notification{n}, i.items...)
	if i.settings.allows(kind) {
		i.pushes = append(i.pushes, n)
		i.logger.WithFields(logrus.Fields{
			"kind":  kind,
			"title": title,
		}).Info("Inbox.Notify.push")
	}
	return n
}

func (i *Inbox) List() []Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]Notification, len(i.items))
	copy(out, i.items)
	return out
}

// Pushes returns the notifications that raised a push, oldest first.
func (i *Inbox) Pushes() []Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]Notification, len(i.pushes))
	copy(out, i.pushes)
	return out
}

func (i *Inbox) UnreadCount() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	count := 0
	for _, n := range i.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead marks every notification read and returns how many changed.
func (i *Inbox) MarkAllRead() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	changed := 0
	for idx := range i.items {
		if !i.items[idx].Read {
			i.items[idx].Read = true
			changed++
		}
	}
	return changed
}
