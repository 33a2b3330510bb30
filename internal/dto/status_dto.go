package dto

import "time"

type ConnectivityStatusResponse struct {
	Status    string    `json:"status"`
	CheckedAt time.Time `json:"checked_at"`
	// Detail explains a disconnected state with the normalized probe error.
	Detail string `json:"detail,omitempty"`
}

// StatusChangedEvent is published on the in-process bus whenever the
// connectivity status flips, and pushed to pages over the websocket channel.
type StatusChangedEvent struct {
	Status    string    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}
