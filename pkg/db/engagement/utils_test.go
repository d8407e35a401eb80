package engagement

import (
	"testing"
)

func TestGetTotalPages(t *testing.T) {
	type args struct {
		totalCount int64
		limit      int64
	}
	tests := []struct {
		name string
		args args
		want int64
	}{
		{
			name: "exact fit",
			args: args{
				totalCount: 40,
				limit:      20,
			},
			want: 2,
		},
		{
			name: "partial last page",
			args: args{
				totalCount: 41,
				limit:      20,
			},
			want: 3,
		},
		{
			name: "single page",
			args: args{
				totalCount: 5,
				limit:      20,
			},
			want: 1,
		},
		{
			name: "zero limit",
			args: args{
				totalCount: 10,
				limit:      0,
			},
			want: 0,
		},
		{
			name: "zero total",
			args: args{
				totalCount: 0,
				limit:      20,
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getTotalPages(tt.args.totalCount, tt.args.limit); got != tt.want {
				t.Errorf("getTotalPages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrepPaginationInfos(t *testing.T) {
	t.Run("defaults applied for missing page and limit", func(t *testing.T) {
		got := prepPaginationInfos(100, 0, 0)
		if got.CurrentPage != 1 || got.PageSize != 20 {
			t.Errorf("unexpected defaults: %+v", got)
		}
		if got.TotalPages != 5 {
			t.Errorf("totalPages = %d, want 5", got.TotalPages)
		}
	})

	t.Run("zero total yields zero pages", func(t *testing.T) {
		got := prepPaginationInfos(0, 1, 20)
		if got.TotalPages != 0 {
			t.Errorf("totalPages = %d, want 0", got.TotalPages)
		}
	})
}
