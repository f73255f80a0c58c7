package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Available(t *testing.T) {
	e := &Event{Capacity: 100, SoldCount: 37}
	assert.Equal(t, 63, e.Available())
	assert.False(t, e.SoldOut())

	e.SoldCount = 100
	assert.Equal(t, 0, e.Available())
	assert.True(t, e.SoldOut())
}

func TestTicket_Total(t *testing.T) {
	tk := &Ticket{Quantity: 3, UnitPrice: 2500}
	assert.Equal(t, int64(7500), tk.Total())

	free := &Ticket{Quantity: 5, UnitPrice: 0}
	assert.Equal(t, int64(0), free.Total())
}
