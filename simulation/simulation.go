// Package simulation replays the cinema's reference sales day: two box
// offices and the online shop selling from one registry until it is full.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cinema/entity"
	"cinema/report"
	"cinema/sales"
)

type Offices struct {
	BoxOffice1 *sales.Office
	BoxOffice2 *sales.Office
	Online     *sales.Office
}

type step struct {
	office   func(Offices) *sales.Office
	customer string
}

func boxOffice1(o Offices) *sales.Office { return o.BoxOffice1 }
func boxOffice2(o Offices) *sales.Office { return o.BoxOffice2 }
func online(o Offices) *sales.Office     { return o.Online }

var script = []step{
	{boxOffice1, "Alice"},
	{boxOffice2, "Marie"},
	{boxOffice2, "Rosalind"},
	{boxOffice2, "Margaret"},
	{online, "Tinky Winky"},
	{online, "Homer"},
	{online, "Marge"},
	{online, "Bart"},
	{online, "Lisa"},
	{online, "Maggie"},
}

// lateCustomer shows up at box office 2 after the house is full.
var lateCustomer = step{boxOffice2, "Cemre"}

// Run sells the scripted tickets and writes what each counter would print
// to w. It returns the final summary.
func Run(ctx context.Context, w io.Writer, offices Offices) (entity.Summary, error) {
	p := printer{w: w}

	for _, s := range script {
		sell(ctx, &p, s.office(offices), s.customer)
	}

	p.println("")
	sell(ctx, &p, lateCustomer.office(offices), lateCustomer.customer)

	summary := offices.Online.Summary()

	p.println("")
	p.println("Final Cinema Ticket Sales Summary:")
	if p.err == nil {
		p.err = report.WriteSummary(w, summary)
	}

	p.println("")
	p.println("Verifying shared registry:")
	p.println(fmt.Sprintf(
		"%s and %s share one registry: %t",
		offices.BoxOffice1.Name(), offices.BoxOffice2.Name(),
		offices.BoxOffice1.Registry() == offices.BoxOffice2.Registry(),
	))
	p.println(fmt.Sprintf(
		"%s and %s share one registry: %t",
		offices.BoxOffice1.Name(), offices.Online.Name(),
		offices.BoxOffice1.Registry() == offices.Online.Registry(),
	))

	return summary, p.err
}

func sell(ctx context.Context, p *printer, office *sales.Office, customer string) {
	if p.err != nil {
		return
	}

	receipt, err := office.Sell(ctx, customer)
	switch {
	case errors.Is(err, entity.ErrSoldOut):
		p.println(report.RejectionLine(customer))
	case err != nil:
		p.err = fmt.Errorf("could not sell ticket to %s at %s: %w", customer, office.Name(), err)
	default:
		p.println(report.SaleLine(receipt))
	}
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, line)
}
