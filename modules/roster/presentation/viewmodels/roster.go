package viewmodels

type WeekRange struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Year    int    `json:"year"`
	ISOWeek int    `json:"isoWeek"`
}

type Row struct {
	DutyDate      string `json:"dutyDate"`
	Weekday       int    `json:"weekday"`
	WeekdayLabel  string `json:"weekdayLabel"`
	Position      string `json:"position"`
	PositionLabel string `json:"positionLabel"`
	DayPerson     string `json:"dayPerson"`
	DayPhone      string `json:"dayPhone"`
	NightPerson   string `json:"nightPerson"`
	NightPhone    string `json:"nightPhone"`
	NightPosition string `json:"nightPosition,omitempty"`
}

type Day struct {
	DutyDate     string `json:"dutyDate"`
	Weekday      int    `json:"weekday"`
	WeekdayLabel string `json:"weekdayLabel"`
	Rows         []*Row `json:"rows"`
}

type Warning struct {
	Index    int    `json:"index"`
	DutyDate string `json:"dutyDate"`
	Message  string `json:"message"`
}

type WeekRoster struct {
	Range    WeekRange  `json:"range"`
	Rows     []*Row     `json:"rows"`
	Days     []*Day     `json:"days"`
	Warnings []*Warning `json:"warnings"`
}
