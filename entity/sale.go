package entity

type Sale struct {
	CustomerName string  `json:"customer_name"`
	Channel      Channel `json:"channel"`
}

// Receipt is returned for every accepted sale.
type Receipt struct {
	Sale      Sale `json:"sale"`
	Remaining int  `json:"remaining_seats"`
}

// Summary is a point-in-time snapshot of the registry.
type Summary struct {
	TotalCapacity int             `json:"total_capacity"`
	Sold          int             `json:"sold"`
	Remaining     int             `json:"remaining"`
	PerChannel    map[Channel]int `json:"per_channel"`
	CustomerNames []string        `json:"customer_names"`
}
