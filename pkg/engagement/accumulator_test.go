package engagement

import "testing"

func TestScoreAccumulator(t *testing.T) {
	t.Run("empty accumulator averages to zero", func(t *testing.T) {
		acc := scoreAccumulator{}
		if got := acc.Average(); got != 0 {
			t.Errorf("Average() = %v, want 0", got)
		}
	})

	t.Run("nil values are skipped", func(t *testing.T) {
		acc := scoreAccumulator{}
		four := 4.0
		acc.AddIfPresent(&four)
		acc.AddIfPresent(nil)
		if acc.Count() != 1 {
			t.Errorf("Count() = %d, want 1", acc.Count())
		}
		if got := acc.Average(); got != 4 {
			t.Errorf("Average() = %v, want 4", got)
		}
	})

	t.Run("average is rounded to two decimals", func(t *testing.T) {
		acc := scoreAccumulator{}
		acc.Add(1)
		acc.Add(2)
		acc.Add(2)
		// 5/3 = 1.666...
		if got := acc.Average(); got != 1.67 {
			t.Errorf("Average() = %v, want 1.67", got)
		}
	})
}

func TestCompletionRate(t *testing.T) {
	type args struct {
		total     int64
		completed int64
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			name: "no assignments",
			args: args{total: 0, completed: 0},
			want: 0,
		},
		{
			name: "one of three",
			args: args{total: 3, completed: 1},
			want: 33,
		},
		{
			name: "two of three rounds up",
			args: args{total: 3, completed: 2},
			want: 67,
		},
		{
			name: "all completed",
			args: args{total: 4, completed: 4},
			want: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completionRate(tt.args.total, tt.args.completed); got != tt.want {
				t.Errorf("completionRate() = %v, want %v", got, tt.want)
			}
		})
	}
}
