package catalog

import (
	"sort"
	"strings"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
)

// Sort options for the policy list.
const (
	SortLatest = "최신순"
	SortLikes  = "좋아요순"
)

// Filters narrows the policy list. Zero value matches everything.
type Filters struct {
	SearchTerm string
	Region     string   // RegionAll or a region name
	Tags       []string // every tag must match
	Sort       string
}

// DefaultFilters returns the initial filter state of the policy list.
func DefaultFilters() Filters {
	return Filters{Region: RegionAll, Sort: SortLatest}
}

// Apply returns the policies matching f, in catalog order for 최신순 or
// by descending likes for 좋아요순. The input slice is not modified.
func Apply(policies []domain.Policy, f Filters) []domain.Policy {
	out := make([]domain.Policy, 0, len(policies))
	for _, p := range policies {
		if f.SearchTerm != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.SearchTerm)) {
			continue
		}
		if f.Region != "" && f.Region != RegionAll && p.Location != f.Region {
			continue
		}
		if !hasAllTags(p, f.Tags) {
			continue
		}
		out = append(out, p)
	}
	if f.Sort == SortLikes {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	}
	return out
}

func hasAllTags(p domain.Policy, tags []string) bool {
	for _, want := range tags {
		found := false
		for _, have := range p.Tags {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// PolicyByID returns the catalog entry for an id, or false.
func PolicyByID(policies []domain.Policy, id int) (domain.Policy, bool) {
	for _, p := range policies {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Policy{}, false
}

// BuiltIn is the bundled policy dataset. The service has no policy
// list API yet; the catalog ships with the client the same way the web
// frontend ships its mock dataset.
func BuiltIn() []domain.Policy {
	return []domain.Policy{
		{
			ID:                1,
			Title:             "청년 월세 특별지원",
			Description:       "무주택 청년의 주거비 부담을 덜기 위해 월세를 지원합니다.",
			Status:            "진행중",
			Location:          "서울특별시",
			Likes:             128,
			Tags:              []string{"주거", "생활비"},
			SupportContent:    "월 최대 20만원 월세 지원",
			SupportScale:      "약 15,000명",
			ApplicationPeriod: "2025.01.01 ~ 2025.12.31",
			ApplicationMethod: "복지로 온라인 신청",
			Eligibility:       "만 19세~34세 무주택 청년, 기준 중위소득 60% 이하",
			RequiredDocuments: "임대차계약서, 소득증빙서류",
			ApplicationURL:    "https://www.bokjiro.go.kr",
		},
		{
			ID:                2,
			Title:             "청년 내일채움공제",
			Description:       "중소기업에 취업한 청년의 자산 형성을 돕는 공제 사업입니다.",
			Status:            "진행중",
			Location:          "경기도",
			Likes:             342,
			Tags:              []string{"취업", "자산형성"},
			SupportContent:    "2년 만기 시 1,200만원 수령",
			SupportScale:      "약 20,000명",
			ApplicationPeriod: "상시",
			ApplicationMethod: "워크넷 신청",
			Eligibility:       "만 15세~34세, 중소기업 정규직 신규 취업자",
			RequiredDocuments: "재직증명서, 근로계약서",
			ApplicationURL:    "https://www.work.go.kr",
		},
		{
			ID:                3,
			Title:             "부산 청년 기쁨두배통장",
			Description:       "근로 청년의 저축액에 시가 같은 금액을 더해 주는 자산형성 사업입니다.",
			Status:            "진행전",
			Location:          "부산광역시",
			Likes:             87,
			Tags:              []string{"자산형성", "생활비"},
			SupportContent:    "본인 저축액 1:1 매칭 지원",
			SupportScale:      "약 4,000명",
			ApplicationPeriod: "2025.09.01 ~ 2025.09.30",
			ApplicationMethod: "부산청년플랫폼 온라인 신청",
			Eligibility:       "부산 거주 만 18세~34세 근로 청년",
			RequiredDocuments: "주민등록등본, 근로소득 증빙",
			ApplicationURL:    "https://young.busan.go.kr",
		},
		{
			ID:                4,
			Title:             "청년 구직활동 지원금",
			Description:       "취업을 준비하는 청년에게 구직활동 비용을 지원합니다.",
			Status:            "완료",
			Location:          "대전광역시",
			Likes:             54,
			Tags:              []string{"취업"},
			SupportContent:    "월 50만원, 최대 6개월",
			SupportScale:      "약 2,500명",
			ApplicationPeriod: "2025.03.01 ~ 2025.05.31",
			ApplicationMethod: "온통대전 온라인 신청",
			Eligibility:       "대전 거주 만 18세~34세 미취업 청년",
			RequiredDocuments: "졸업증명서, 구직활동계획서",
			ApplicationURL:    "https://www.daejeon.go.kr",
		},
		{
			ID:                5,
			Title:             "제주 청년 문화바우처",
			Description:       "청년의 문화생활을 지원하는 바우처를 지급합니다.",
			Status:            "진행중",
			Location:          "제주특별자치도",
			Likes:             201,
			Tags:              []string{"문화", "생활비"},
			SupportContent:    "연 10만원 문화바우처",
			SupportScale:      "약 8,000명",
			ApplicationPeriod: "2025.02.01 ~ 소진 시",
			ApplicationMethod: "제주청년센터 신청",
			Eligibility:       "제주 거주 만 19세~39세 청년",
			RequiredDocuments: "주민등록등본",
			ApplicationURL:    "https://jejuyouthcenter.com",
		},
	}
}
