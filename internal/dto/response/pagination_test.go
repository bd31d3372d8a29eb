package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		count     int64
		wantPages int
		wantNext  *int
		wantPrev  *int
	}{
		{name: "empty", page: 1, count: 0, wantPages: 0},
		{name: "single page", page: 1, count: 7, wantPages: 1},
		{name: "first of three", page: 1, count: 25, wantPages: 3, wantNext: intPtr(2)},
		{name: "middle", page: 2, count: 25, wantPages: 3, wantNext: intPtr(3), wantPrev: intPtr(1)},
		{name: "last", page: 3, count: 25, wantPages: 3, wantPrev: intPtr(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage([]string{}, tt.page, 10, tt.count)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.Next)
			assert.Equal(t, tt.wantPrev, p.Previous)
		})
	}
}

func TestPage_JSONShape(t *testing.T) {
	body, err := json.Marshal(NewPage([]int{1, 2}, 1, 10, 2))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"count":2,"page":1,"page_size":10,"total_pages":1,"next":null,"previous":null,"results":[1,2]}`,
		string(body))
}

func intPtr(v int) *int { return &v }
