package models

import "github.com/droverhq/drover/ent"

// EventsResponse contains the events on one channel since a given id
type EventsResponse struct {
	Events []*ent.Event `json:"events"`
}
