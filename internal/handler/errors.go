package handler

// Plain-text responses written outside the page layout
const (
	ErrMsgRenderFailed = "서버에서 오류가 발생했습니다."
	ErrMsgPageNotFound = "페이지를 찾을 수 없습니다."
	ErrMsgFormExpired  = "요청이 만료되었습니다. 새로고침 후 다시 시도해주세요."
)

// Page titles
const (
	titleLogin          = "로그인"
	titleLogout         = "로그아웃"
	titleHome           = "말씀 챌린지"
	titleHomeChristmas  = "성탄 챌린지"
	titleGrove          = "과수원"
	titleDiary          = "감사일기장"
	titleDiaryChristmas = "성탄 일기장"
	titleError          = "오류"
)

// Response headers
const (
	headerContentType  = "Content-Type"
	headerCacheControl = "Cache-Control"
	contentTypeHTML    = "text/html; charset=utf-8"
	contentTypeJSON    = "application/json"
	cacheNoStore       = "no-store"
)

// Health check messages
const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
	msgBackendDown    = "backend connection failed"
)
