package model

type Circuit struct {
	ID                     int     `json:"id,omitempty"`
	CircuitRef             string  `json:"circuit_id,omitempty"`
	CircuitName            string  `json:"circuit_name,omitempty"`
	CircuitURL             string  `json:"circuit_url,omitempty"`
	Locality               string  `json:"locality,omitempty"`
	Country                string  `json:"country,omitempty"`
	Lat                    float64 `json:"lat,omitempty"`
	Long                   float64 `json:"long,omitempty"`
	Length                 float64 `json:"length,omitempty"` // meters
	Corners                int     `json:"corners,omitempty"`
	LapRecord              string  `json:"lap_record,omitempty"`
	LapRecordDriver        string  `json:"lap_record_driver,omitempty"`
	LapRecordYear          int     `json:"lap_record_year,omitempty"`
	FirstGrandPrix         int     `json:"first_grand_prix,omitempty"`
	TypicalLapCount        int     `json:"typical_lap_count,omitempty"`
	RaceDistance           float64 `json:"race_distance,omitempty"` // km
	CircuitLayoutImageURL  string  `json:"circuit_layout_image_url,omitempty"`
	CircuitLayoutImagePath string  `json:"circuit_layout_image_path,omitempty"`
}
