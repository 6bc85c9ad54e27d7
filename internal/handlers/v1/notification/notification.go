package notification

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/notify"
)

type Notification struct {
	ID        string `json:"id" doc:"Notification UUID"`
	Kind      string `json:"kind" doc:"transaction, security, or account"`
	Title     string `json:"title" doc:"Short title"`
	Message   string `json:"message" doc:"Body text"`
	Timestamp string `json:"timestamp" doc:"RFC3339 time raised"`
	Read      bool   `json:"read" doc:"Whether it has been read"`
	Link      string `json:"link,omitempty" doc:"Screen the notification points at"`
}

type inbox interface {
	List() []notify.Notification
	UnreadCount() int
	MarkAllRead() int
}

// Handler serves the session inbox.
type Handler struct {
	Inbox inbox
}

func NewHandler(in inbox) *Handler {
	return &Handler{Inbox: in}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-notifications",
		Method:      http.MethodGet,
		Path:        "/v1/notifications",
		Summary:     "List notifications",
		Tags:        []string{"Notifications"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "read-notifications",
		Method:      http.MethodPost,
		Path:        "/v1/notifications/read",
		Summary:     "Mark every notification read",
		Tags:        []string{"Notifications"},
	}, h.markRead)
}

type ListOutput struct {
	Body struct {
		Notifications []Notification `json:"notifications" doc:"Newest first"`
		Unread        int            `json:"unread" doc:"Number of unread notifications"`
	}
}

func (h *Handler) list(_ context.Context, _ *struct{}) (*ListOutput, error) {
	items := h.Inbox.List()

	out := &ListOutput{}
	out.Body.Notifications = make([]Notification, len(items))
	for i, n := range items {
		out.Body.Notifications[i] = Notification{
			ID:        n.ID.String(),
			Kind:      string(n.Kind),
			Title:     n.Title,
			Message:   n.Message,
			Timestamp: n.Timestamp.Format(time.RFC3339),
			Read:      n.Read,
			Link:      n.Link,
		}
	}
	out.Body.Unread = h.Inbox.UnreadCount()
	return out, nil
}

type MarkReadOutput struct {
	Body struct {
		Marked int `json:"marked" doc:"How many notifications changed to read"`
	}
}

func (h *Handler) markRead(ctx context.Context, _ *struct{}) (*MarkReadOutput, error) {
	out := &MarkReadOutput{}
	out.Body.Marked = h.Inbox.MarkAllRead()
	logging.GetLogData(ctx).AddData("marked", out.Body.Marked)
	return out, nil
}
