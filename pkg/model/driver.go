package model

type Driver struct {
	ID              int    `json:"id,omitempty"`
	DriverRef       string `json:"driver_id,omitempty"`
	DriverName      string `json:"driver_name"`
	Number          int    `json:"number,omitempty"`
	Code            string `json:"code,omitempty"`
	Nationality     string `json:"nationality,omitempty"`
	DriverURL       string `json:"driver_url,omitempty"`
	ConstructorID   string `json:"constructor_id,omitempty"`
	ConstructorName string `json:"constructor_name,omitempty"`
}

type Constructor struct {
	ID              int      `json:"id,omitempty"`
	ConstructorID   string   `json:"constructor_id"`
	ConstructorName string   `json:"constructor_name"`
	Nationality     string   `json:"nationality,omitempty"`
	Drivers         []Driver `json:"drivers,omitempty"`
}
