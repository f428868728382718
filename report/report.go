// Package report renders sales results as the plain text shown at the
// cinema's counters.
package report

import (
	"fmt"
	"io"
	"strings"

	"cinema/entity"
)

func SaleLine(receipt entity.Receipt) string {
	return fmt.Sprintf("One Ticket sold to %s. Available seats: %d", receipt.Sale.CustomerName, receipt.Remaining)
}

func RejectionLine(customerName string) string {
	return fmt.Sprintf("Sorry %s, the cinema is fully booked.", customerName)
}

func WriteSummary(w io.Writer, summary entity.Summary) error {
	lines := []string{
		"Cinema Summary:",
		fmt.Sprintf("Total Seats: %d", summary.TotalCapacity),
		fmt.Sprintf("Sold Seats: %d", summary.Sold),
		fmt.Sprintf("Customers: %s", strings.Join(summary.CustomerNames, ", ")),
	}
	for _, channel := range entity.Channels {
		lines = append(lines, fmt.Sprintf("%s: %d", channel, summary.PerChannel[channel]))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
