package model

// Aircraft is a recommended pattern aircraft
type Aircraft struct {
	Name       string `json:"name" toml:"name"`
	Wingspan   string `json:"wingspan" toml:"wingspan"`
	Weight     string `json:"weight" toml:"weight"`
	Engine     string `json:"engine" toml:"engine"`
	SkillLevel string `json:"skill_level" toml:"skill_level"`
}

// AircraftList is the response body of the aircraft endpoint
type AircraftList struct {
	Recommended []Aircraft `json:"recommended"`
}
