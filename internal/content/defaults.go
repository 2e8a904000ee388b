package content

// Default mission and template names, matching the backend seed data
const (
	MissionGratitudeDiary = "감사 일기 작성하기"
	MissionBibleReading   = "말씀 읽기"

	EventFruitFirst  = "첫번째 탕이 과일"
	EventFruitSecond = "두번째 탕이 과일"

	ChristmasQuestion = "성탄절에 대한 질문"
	ChristmasPrayer   = "성탄절을 기다리는 기도"
)

// Event fruit trigger counts
const (
	EventConditionFirst  = 1
	EventConditionSecond = 5
)

// Default returns the built-in catalog
func Default() *Catalog {
	return &Catalog{
		Missions: MissionNames{
			GratitudeDiary: MissionGratitudeDiary,
			BibleReading:   MissionBibleReading,
		},
		EventFruits: []EventFruit{
			{Condition: EventConditionFirst, Template: EventFruitFirst},
			{Condition: EventConditionSecond, Template: EventFruitSecond},
		},
		ChristmasMissions: []EventMission{
			{Name: ChristmasQuestion, Label: "질문", Badge: "bg-blue-50 text-blue-700"},
			{Name: ChristmasPrayer, Label: "기도", Badge: "bg-green-50 text-green-700"},
		},
		DefaultBadge: "bg-red-50 text-red-700",
		Reactions:    []string{"😆", "😮", "💪", "🙏", "👏"},
		TopReactions: 2,
		InquiryURL:   "https://www.notion.so/gun17/29470a02a0b780d1b3f6ffb3a80e4189?source=copy_link",
		Messages: Messages{
			NetworkError:         "네트워크 연결을 확인해주세요.",
			ServerError:          "서버에서 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
			FetchFruitError:      "과일 정보를 불러오는데 실패했습니다.",
			CreateFruitError:     "씨앗 심기 중 오류가 발생했습니다.",
			CompleteMissionError: "미션 완료 중 오류가 발생했습니다.",
			HarvestFruitError:    "수확 중 오류가 발생했습니다.",
			TemplateNotFound:     "%s 템플릿을 찾을 수 없습니다.",
			TestMissionError:     "테스트 미션 완료 중 오류가 발생했습니다.",
			LoginError:           "로그인 중 오류가 발생했습니다. 다시 시도해주세요.",
			LoginFieldsRequired:  "셀과 이름을 모두 입력해주세요.",
			LogoutError:          "로그아웃 중 오류가 발생했습니다.",
			LogoutConfirm:        "로그아웃 하시겠습니까?",
			ValidationError:      "입력값을 확인해주세요.",
			MinLengthError:       "5자 이상 작성해주세요.",
			ReadNotConfirmed:     "말씀을 읽었는지 확인해주세요.",
			NotHarvestable:       "아직 수확할 수 없습니다.",
			MissionNotFound:      "미션을 찾을 수 없습니다.",
			BibleFallback:        "오늘의 말씀이 준비되지 않았습니다. 자유롭게 성경을 읽어보세요!",
			BibleFetchError:      "오늘의 말씀을 불러오는 중 오류가 발생했습니다.",
			InteractionError:     "공감을 남기는 중 오류가 발생했습니다.",
			HarvestComplete:      "수확 완료! 🎉",
		},
	}
}
