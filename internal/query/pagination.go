package query

// PageLink는 페이지 이동 버튼 하나입니다. Ellipsis가 true이면 "..." 자리입니다.
type PageLink struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Pagination은 목록 하단의 페이지 컨트롤을 그리기 위한 정보입니다.
type Pagination struct {
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
	From       int        `json:"from"`
	To         int        `json:"to"`
	HasPrev    bool       `json:"hasPrev"`
	HasNext    bool       `json:"hasNext"`
	Links      []PageLink `json:"links"`
}

// TotalPages는 전체 페이지 수를 반환합니다. 결과가 없어도 최소 1입니다.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}
	return (total-1)/pageSize + 1
}

// NewPagination은 현재 페이지 기준의 페이지 컨트롤 정보를 계산합니다.
func NewPagination(page, pageSize, total int) Pagination {
	pages := TotalPages(total, pageSize)
	p := Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
		Links:      PageLinks(page, pages),
	}

	if total > 0 && page >= 1 && pageSize >= 1 && page-1 <= (total-1)/pageSize {
		p.From = (page-1)*pageSize + 1
		p.To = p.From - 1 + min(pageSize, total-p.From+1)
	}
	return p
}

// PageLinks는 첫 페이지, 현재 페이지 앞뒤 한 칸, 마지막 페이지를 보여주고
// 사이가 비면 생략 표시를 넣습니다.
func PageLinks(current, totalPages int) []PageLink {
	links := []PageLink{{Number: 1}}

	start := max(2, current-1)
	end := totalPages - 1
	if current < end {
		end = current + 1
	}

	if start > 2 {
		links = append(links, PageLink{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		links = append(links, PageLink{Number: i})
	}
	if end < totalPages-1 {
		links = append(links, PageLink{Ellipsis: true})
	}
	if totalPages > 1 {
		links = append(links, PageLink{Number: totalPages})
	}
	return links
}
