package entity

import (
	"fmt"
	"strings"
)

// Channel is the origin of a sale request. It is recorded for reporting only
// and never affects whether a sale is accepted.
type Channel string

const (
	ChannelBoxOffice Channel = "BOX_OFFICE"
	ChannelOnline    Channel = "ONLINE"
)

// Channels lists every known channel in reporting order.
var Channels = []Channel{ChannelBoxOffice, ChannelOnline}

func ParseChannel(s string) (Channel, error) {
	switch c := Channel(strings.ToUpper(strings.TrimSpace(s))); c {
	case ChannelBoxOffice, ChannelOnline:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, s)
	}
}

func (c Channel) String() string {
	return string(c)
}
