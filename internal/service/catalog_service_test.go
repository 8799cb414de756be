package service

import "testing"

func TestPageSpec(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		wantLimit  int
		wantOffset int
	}{
		{"first page", 1, 20, 20, 0},
		{"third page", 3, 10, 10, 20},
		{"zero page clamps to first", 0, 20, 20, 0},
		{"negative page clamps to first", -5, 20, 20, 0},
		{"zero size falls back to default", 2, 0, 20, 20},
		{"oversized page size falls back to default", 1, 500, 20, 0},
		{"max size passes through", 2, 100, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := pageSpec(tt.page, tt.perPage)
			if spec.Limit != tt.wantLimit {
				t.Errorf("pageSpec(%d, %d).Limit = %d, want %d", tt.page, tt.perPage, spec.Limit, tt.wantLimit)
			}
			if spec.Offset != tt.wantOffset {
				t.Errorf("pageSpec(%d, %d).Offset = %d, want %d", tt.page, tt.perPage, spec.Offset, tt.wantOffset)
			}
		})
	}
}
