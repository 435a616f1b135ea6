package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		want        Window
	}{
		{"defaults", 0, 0, Window{Page: 1, Limit: 10}},
		{"negative", -3, -1, Window{Page: 1, Limit: 10}},
		{"given", 3, 25, Window{Page: 3, Limit: 25}},
		{"capped", 2, 5000, Window{Page: 2, Limit: MaxLimit}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.page, tc.limit))
		})
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, Window{Page: 1, Limit: 10}, Parse("abc", "1.5"))
	assert.Equal(t, Window{Page: 4, Limit: 7}, Parse(" 4 ", "7"))
	assert.Equal(t, Window{Page: 1, Limit: 10}, Parse("", ""))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Normalize(1, 10).Offset())
	assert.Equal(t, 20, Normalize(3, 10).Offset())
	assert.Equal(t, 0, Window{Page: -2, Limit: 10}.Offset())
}

func TestNewPageNeverNil(t *testing.T) {
	p := NewPage[int](Normalize(1, 10), nil)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}
