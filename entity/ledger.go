package entity

import "time"

type ChannelLedger struct {
	Customers map[string]Channel `json:"customers"`
	Tally     map[Channel]int    `json:"tally"`

	SoldOutAt  *time.Time `json:"sold_out_at,omitempty"`
	LastUpdate time.Time  `json:"last_update"`
}
