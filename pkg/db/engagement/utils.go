package engagement

const (
	DEFAULT_PAGE_SIZE    = 20
	DEFAULT_CURRENT_PAGE = 1
)

func getTotalPages(totalCount int64, limit int64) int64 {
	if limit == 0 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}

func prepPaginationInfos(totalCount int64, page int64, limit int64) *PaginationInfos {
	if limit < 1 {
		limit = DEFAULT_PAGE_SIZE
	}
	if page < 1 {
		page = DEFAULT_CURRENT_PAGE
	}
	return &PaginationInfos{
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  getTotalPages(totalCount, limit),
		PageSize:    limit,
	}
}
