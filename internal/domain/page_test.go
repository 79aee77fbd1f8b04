package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        Page
	}{
		{"defaults", 0, 0, Page{Page: 1, Limit: 10}},
		{"negative", -3, -1, Page{Page: 1, Limit: 10}},
		{"capped", 2, 500, Page{Page: 2, Limit: 100}},
		{"explicit", 3, 25, Page{Page: 3, Limit: 25}},
		{"huge page", math.MaxInt, 10, Page{Page: MaxPage, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPage(tt.page, tt.limit))
		})
	}
}

func TestPageOffsetAndPages(t *testing.T) {
	p := NewPage(3, 10)
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 0, p.Pages(0))
	assert.Equal(t, 1, p.Pages(10))
	assert.Equal(t, 3, p.Pages(21))
}

func TestHugePageOffsetStaysPositive(t *testing.T) {
	p := NewPage(math.MaxInt, MaxLimit)
	assert.Equal(t, (MaxPage-1)*MaxLimit, p.Offset())
	assert.Positive(t, p.Offset())
}
