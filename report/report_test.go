package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema/entity"
)

func TestSaleLine(t *testing.T) {
	line := SaleLine(entity.Receipt{
		Sale:      entity.Sale{CustomerName: "Alice", Channel: entity.ChannelBoxOffice},
		Remaining: 9,
	})

	assert.Equal(t, "One Ticket sold to Alice. Available seats: 9", line)
}

func TestRejectionLine(t *testing.T) {
	assert.Equal(t, "Sorry Cemre, the cinema is fully booked.", RejectionLine("Cemre"))
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer

	err := WriteSummary(&buf, entity.Summary{
		TotalCapacity: 10,
		Sold:          3,
		Remaining:     7,
		PerChannel: map[entity.Channel]int{
			entity.ChannelBoxOffice: 1,
			entity.ChannelOnline:    2,
		},
		CustomerNames: []string{"Alice", "Homer", "Marge"},
	})
	require.NoError(t, err)

	assert.Equal(t, `Cinema Summary:
Total Seats: 10
Sold Seats: 3
Customers: Alice, Homer, Marge
BOX_OFFICE: 1
ONLINE: 2
`, buf.String())
}
