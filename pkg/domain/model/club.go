package model

// ClubInfo describes the club itself
type ClubInfo struct {
	Name        string   `json:"name" toml:"name"`
	Description string   `json:"description" toml:"description"`
	Location    string   `json:"location" toml:"location"`
	Founded     string   `json:"founded" toml:"founded"`
	Website     string   `json:"website" toml:"website"`
	Activities  []string `json:"activities" toml:"activities"`
	Contact     Contact  `json:"contact" toml:"contact"`
}

// Contact holds how to reach the club
type Contact struct {
	Email    string `json:"email" toml:"email"`
	Meetings string `json:"meetings" toml:"meetings"`
}
