package catalog

import "github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"

// RegionAll is the catch-all filter value.
const RegionAll = "전체"

// Regions is the static region option table used by filters and the
// post composer. IDs match the backend's regionId values.
var Regions = []domain.Region{
	{ID: 1, Name: "서울특별시"},
	{ID: 2, Name: "부산광역시"},
	{ID: 3, Name: "대구광역시"},
	{ID: 4, Name: "인천광역시"},
	{ID: 5, Name: "광주광역시"},
	{ID: 6, Name: "대전광역시"},
	{ID: 7, Name: "울산광역시"},
	{ID: 8, Name: "세종특별자치시"},
	{ID: 9, Name: "경기도"},
	{ID: 10, Name: "강원도"},
	{ID: 11, Name: "충청북도"},
	{ID: 12, Name: "충청남도"},
	{ID: 13, Name: "전라북도"},
	{ID: 14, Name: "전라남도"},
	{ID: 15, Name: "경상북도"},
	{ID: 16, Name: "경상남도"},
	{ID: 17, Name: "제주특별자치도"},
}

// RegionByID returns the region for an id, or false when unknown.
func RegionByID(id int) (domain.Region, bool) {
	for _, r := range Regions {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Region{}, false
}
