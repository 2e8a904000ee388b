package domain

// FruitStatus is a growth stage code reported by the backend
type FruitStatus string

// Growth stage codes, in growth order, followed by the terminal state
const (
	StatusFirst     FruitStatus = "FIRST_STATUS"
	StatusSecond    FruitStatus = "SECOND_STATUS"
	StatusThird     FruitStatus = "THIRD_STATUS"
	StatusFourth    FruitStatus = "FOURTH_STATUS"
	StatusFifth     FruitStatus = "FIFTH_STATUS"
	StatusSixth     FruitStatus = "SIXTH_STATUS"
	StatusSeventh   FruitStatus = "SEVENTH_STATUS"
	StatusCompleted FruitStatus = "COMPLETED"
)

// DefaultFruitName is shown when the backend sends neither a template name nor a name
const DefaultFruitName = "과일"

// Fruit is a user's growth cycle as returned by the backend
type Fruit struct {
	ID            string      `json:"id,omitempty"`
	FruitID       string      `json:"fruit_id,omitempty"`
	TemplateName  string      `json:"template_name,omitempty"`
	Name          string      `json:"name,omitempty"`
	Type          string      `json:"type,omitempty"`
	Status        FruitStatus `json:"status"`
	FirstStatus   string      `json:"first_status,omitempty"`
	SecondStatus  string      `json:"second_status,omitempty"`
	ThirdStatus   string      `json:"third_status,omitempty"`
	FourthStatus  string      `json:"fourth_status,omitempty"`
	FifthStatus   string      `json:"fifth_status,omitempty"`
	SixthStatus   string      `json:"sixth_status,omitempty"`
	SeventhStatus string      `json:"seventh_status,omitempty"`
	CreatedAt     string      `json:"created_at,omitempty"`
	UpdatedAt     string      `json:"updated_at,omitempty"`
}

// Identifier returns the id the backend expects in fruit_id request fields.
// In-progress payloads carry fruit_id, create/harvest payloads carry id.
func (f *Fruit) Identifier() string {
	if f == nil {
		return ""
	}
	if f.FruitID != "" {
		return f.FruitID
	}
	return f.ID
}

// DisplayName returns the template name, the fruit name, or the default label
func (f *Fruit) DisplayName() string {
	if f == nil {
		return DefaultFruitName
	}
	if f.TemplateName != "" {
		return f.TemplateName
	}
	if f.Name != "" {
		return f.Name
	}
	return DefaultFruitName
}

// StageValue returns the display value stored for the given stage code
func (f *Fruit) StageValue(status FruitStatus) string {
	if f == nil {
		return ""
	}
	switch status {
	case StatusFirst:
		return f.FirstStatus
	case StatusSecond:
		return f.SecondStatus
	case StatusThird:
		return f.ThirdStatus
	case StatusFourth:
		return f.FourthStatus
	case StatusFifth:
		return f.FifthStatus
	case StatusSixth:
		return f.SixthStatus
	case StatusSeventh:
		return f.SeventhStatus
	default:
		return ""
	}
}

// IsCompleted reports whether the fruit has been harvested
func (f *Fruit) IsCompleted() bool {
	return f != nil && f.Status == StatusCompleted
}

// IsHarvestable reports whether the fruit sits at the last growth stage
func (f *Fruit) IsHarvestable() bool {
	return f != nil && f.Status == StatusSeventh
}

// StageInfo describes one growth stage
type StageInfo struct {
	Level  int
	Name   string
	Status FruitStatus
}

// FruitWithMissions is the in-progress fruit payload
type FruitWithMissions struct {
	Fruit    *Fruit    `json:"fruit"`
	Missions []Mission `json:"missions"`
}
