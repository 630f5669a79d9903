package model

// Event is a scheduled club event
type Event struct {
	ID          int    `json:"id" toml:"id"`
	Title       string `json:"title" toml:"title"`
	Date        string `json:"date" toml:"date"`
	Time        string `json:"time" toml:"time"`
	Location    string `json:"location" toml:"location"`
	Description string `json:"description" toml:"description"`
}

// EventList is the response body of the events endpoint
type EventList struct {
	Upcoming []Event `json:"upcoming"`
}
