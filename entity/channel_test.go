package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannel(t *testing.T) {
	testCases := []struct {
		in   string
		want Channel
	}{
		{in: "BOX_OFFICE", want: ChannelBoxOffice},
		{in: "box_office", want: ChannelBoxOffice},
		{in: " online ", want: ChannelOnline},
		{in: "ONLINE", want: ChannelOnline},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseChannel(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseChannel_unknown(t *testing.T) {
	for _, in := range []string{"", "phone", "BOX OFFICE"} {
		_, err := ParseChannel(in)
		assert.ErrorIs(t, err, ErrUnknownChannel, in)
	}
}
