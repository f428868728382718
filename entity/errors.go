package entity

import "errors"

var (
	ErrSoldOut             = errors.New("cinema is fully booked")
	ErrUnknownChannel      = errors.New("unknown sales channel")
	ErrInvalidCustomerName = errors.New("customer name must not be empty")
)
