package svg

import "testing"

func TestMinMaxPoint(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point
		wantMin Point
		wantMax Point
		wantOK  bool
	}{
		{
			name:   "Empty",
			points: nil,
			wantOK: false,
		},
		{
			name:    "Single",
			points:  []Point{{X: 3, Y: 4}},
			wantMin: Point{X: 3, Y: 4},
			wantMax: Point{X: 3, Y: 4},
			wantOK:  true,
		},
		{
			name:    "Mixed",
			points:  []Point{{X: 3, Y: 4}, {X: -1, Y: 9}, {X: 5, Y: 0}},
			wantMin: Point{X: -1, Y: 0},
			wantMax: Point{X: 5, Y: 9},
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, ok := MinPoint(tt.points)
			if ok != tt.wantOK {
				t.Fatalf("MinPoint ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && min != tt.wantMin {
				t.Errorf("MinPoint = %v, want %v", min, tt.wantMin)
			}

			max, ok := MaxPoint(tt.points)
			if ok != tt.wantOK {
				t.Fatalf("MaxPoint ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && max != tt.wantMax {
				t.Errorf("MaxPoint = %v, want %v", max, tt.wantMax)
			}
		})
	}
}
