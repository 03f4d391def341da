package model

type DriverStanding struct {
	Position        int     `json:"position"`
	Points          float64 `json:"points"`
	Wins            int     `json:"wins"`
	DriverName      string  `json:"driver_name"`
	Nationality     string  `json:"nationality,omitempty"`
	ConstructorID   string  `json:"constructor_id,omitempty"`
	ConstructorName string  `json:"constructor_name,omitempty"`
}

type ConstructorStanding struct {
	Position        int     `json:"position"`
	Points          float64 `json:"points"`
	Wins            int     `json:"wins"`
	ConstructorID   string  `json:"constructor_id"`
	ConstructorName string  `json:"constructor_name"`
	Nationality     string  `json:"nationality,omitempty"`
}
