package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCentsRounds(t *testing.T) {
	cases := []struct {
		price float64
		cents int64
	}{
		{49.99, 4999},
		{0.1, 10},
		{7.77, 777},
		{12.5, 1250},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.cents, toCents(tc.price), "price %v", tc.price)
	}
}
