package analytics

import "sort"

// DefaultPageSize 排行榜默认每页条数
const DefaultPageSize = 10

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	EntityID   string  `json:"entityId"`
	EntityName string  `json:"entityName"`
	Score      float64 `json:"score"`
	Samples    int     `json:"samples"`
}

// PaginationMeta 分页信息
type PaginationMeta struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	TotalData   int `json:"totalData"`
	Limit       int `json:"limit"`
}

// LeaderboardPage 排行榜的一页
type LeaderboardPage struct {
	Entries []LeaderboardEntry `json:"entries"`
	Meta    PaginationMeta     `json:"meta"`
}

// RankLeaderboard 按得分降序排名，同分按名称、ID 升序。返回新切片。
func RankLeaderboard(entries []LeaderboardEntry) []LeaderboardEntry {
	ranked := make([]LeaderboardEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.EntityName != b.EntityName {
			return a.EntityName < b.EntityName
		}
		return a.EntityID < b.EntityID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Paginate 截取指定页，超出范围时返回空页
func Paginate(entries []LeaderboardEntry, page, limit int) LeaderboardPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	total := len(entries)
	totalPage := total / limit
	if total%limit != 0 {
		totalPage++
	}

	start, end := total, total
	if page <= totalPage {
		start = (page - 1) * limit
		if limit < total-start {
			end = start + limit
		}
	}

	return LeaderboardPage{
		Entries: append([]LeaderboardEntry{}, entries[start:end]...),
		Meta: PaginationMeta{
			CurrentPage: page,
			TotalPage:   totalPage,
			TotalData:   total,
			Limit:       limit,
		},
	}
}
