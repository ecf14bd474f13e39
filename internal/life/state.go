package life

import (
	"github.com/annakobylinska4-wq/life-game/internal/config"
)

// ChatMessage is one entry of a location's conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PlayerState is the full per-user simulation state, persisted as a JSON
// document. Older documents may miss fields; normalizeState repairs them at
// load time.
type PlayerState struct {
	Money           int      `json:"money"`
	Happiness       int      `json:"happiness"`
	Tiredness       int      `json:"tiredness"`
	Hunger          int      `json:"hunger"`
	Look            int      `json:"look"`
	TimeRemaining   int      `json:"time_remaining"`
	Turn            int      `json:"turn"`
	CurrentLocation Location `json:"current_location"`

	Qualification     string   `json:"qualification"`
	CompletedCourses  []string `json:"completed_courses"`
	EnrolledCourse    string   `json:"enrolled_course"`
	LecturesCompleted int      `json:"lectures_completed"`

	CurrentJob string `json:"current_job"`
	JobWage    int    `json:"job_wage"`

	FlatTier int `json:"flat_tier"`
	Rent     int `json:"rent"`

	Items []string `json:"items"`

	ConversationHistory map[string][]ChatMessage `json:"conversation_history"`
}

// NewPlayerState returns a fresh state with the configured starting values.
func NewPlayerState(rules config.GameRules) *PlayerState {
	return &PlayerState{
		Money:               rules.InitialMoney,
		Happiness:           rules.InitialHappiness,
		Tiredness:           rules.InitialTiredness,
		Hunger:              rules.InitialHunger,
		Look:                1,
		TimeRemaining:       rules.DayMinutes,
		Turn:                1,
		CurrentLocation:     LocationHome,
		Qualification:       "None",
		CompletedCourses:    []string{},
		CurrentJob:          "Unemployed",
		Items:               []string{},
		ConversationHistory: map[string][]ChatMessage{},
	}
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// AddHappiness changes happiness by delta, clamped to [0,100].
func (s *PlayerState) AddHappiness(delta int) {
	s.Happiness = clampStat(s.Happiness + delta)
}

// AddTiredness changes tiredness by delta, clamped to [0,100].
func (s *PlayerState) AddTiredness(delta int) {
	s.Tiredness = clampStat(s.Tiredness + delta)
}

// AddHunger changes hunger by delta, clamped to [0,100]. The end-of-day
// hunger increase bypasses this deliberately and may push hunger past 100.
func (s *PlayerState) AddHunger(delta int) {
	s.Hunger = clampStat(s.Hunger + delta)
}

// HasCompleted reports whether the course id is in the completed list.
func (s *PlayerState) HasCompleted(courseID string) bool {
	for _, id := range s.CompletedCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// Owns reports whether the named item is in the inventory.
func (s *PlayerState) Owns(item string) bool {
	for _, it := range s.Items {
		if it == item {
			return true
		}
	}
	return false
}

// clothingItems is the stock of look-improving clothing sold at John Lewis.
// Look is derived from how many of these the player owns, so the membership
// set lives with the state rather than the shop.
var clothingItems = map[string]bool{
	"Formal Suit":     true,
	"Blazer":          true,
	"Dress Shirt":     true,
	"Oxford Shirt":    true,
	"Dress Trousers":  true,
	"Chinos":          true,
	"Oxford Shoes":    true,
	"Brogues":         true,
	"Silk Tie":        true,
	"Leather Belt":    true,
	"Waistcoat":       true,
	"Cufflinks":       true,
	"Winter Coat":     true,
	"Polo Shirt":      true,
	"Trainers":        true,
	"Leather Boots":   true,
	"Cashmere Jumper": true,
	"Jeans":           true,
	"Wool Scarf":      true,
}

// IsClothing reports whether the item counts toward the look level.
func IsClothing(item string) bool {
	return clothingItems[item]
}

// UpdateLook recomputes the 1-5 look level from the number of clothing items
// in the inventory. Duplicates count separately.
func (s *PlayerState) UpdateLook() {
	count := 0
	for _, item := range s.Items {
		if clothingItems[item] {
			count++
		}
	}
	switch {
	case count == 0:
		s.Look = 1
	case count <= 2:
		s.Look = 2
	case count <= 4:
		s.Look = 3
	case count <= 7:
		s.Look = 4
	default:
		s.Look = 5
	}
}

var lookLabels = map[int]string{
	1: "Shabby",
	2: "Scruffy",
	3: "Presentable",
	4: "Smart",
	5: "Very well groomed",
}

// LookLabel returns the display label for a 1-5 look level.
func LookLabel(look int) string {
	if label, ok := lookLabels[look]; ok {
		return label
	}
	return "Shabby"
}

type statBand struct {
	min, max int
	label    string
}

var tirednessBands = []statBand{
	{0, 20, "Well rested"},
	{21, 40, "Slightly tired"},
	{41, 60, "Tired"},
	{61, 80, "Very tired"},
	{81, 100, "Exhausted"},
}

var happinessBands = []statBand{
	{0, 20, "Miserable"},
	{21, 40, "Unhappy"},
	{41, 60, "Content"},
	{61, 80, "Happy"},
	{81, 100, "Ecstatic"},
}

var hungerBands = []statBand{
	{0, 20, "Full"},
	{21, 40, "Satisfied"},
	{41, 60, "Peckish"},
	{61, 80, "Hungry"},
	{81, 100, "Starving"},
}

func bandLabel(bands []statBand, v int, fallback string) string {
	for _, b := range bands {
		if v >= b.min && v <= b.max {
			return b.label
		}
	}
	return fallback
}

// TirednessLabel returns the band label for a tiredness value. Values past
// 100 stay "Exhausted".
func TirednessLabel(v int) string {
	return bandLabel(tirednessBands, v, "Exhausted")
}

// HappinessLabel returns the band label for a happiness value.
func HappinessLabel(v int) string {
	return bandLabel(happinessBands, v, "Miserable")
}

// HungerLabel returns the band label for a hunger value. Values past 100
// stay "Starving" (the per-turn hunger increase is uncapped).
func HungerLabel(v int) string {
	return bandLabel(hungerBands, v, "Starving")
}

var flatTierNames = map[int]string{
	0: "Homeless",
	1: "Dingy Bedsit",
	2: "Basic Studio",
	3: "Comfortable Flat",
	4: "Stylish Apartment",
	5: "Luxury Penthouse",
}

// FlatName returns the display name for a flat tier.
func FlatName(tier int) string {
	if name, ok := flatTierNames[tier]; ok {
		return name
	}
	return "Homeless"
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneHistory(in map[string][]ChatMessage) map[string][]ChatMessage {
	out := make(map[string][]ChatMessage, len(in))
	for loc, msgs := range in {
		cp := make([]ChatMessage, len(msgs))
		copy(cp, msgs)
		out[loc] = cp
	}
	return out
}

// Clone returns a deep copy that shares no memory with s.
func (s *PlayerState) Clone() *PlayerState {
	if s == nil {
		return nil
	}
	out := *s
	out.CompletedCourses = cloneStrings(s.CompletedCourses)
	out.Items = cloneStrings(s.Items)
	out.ConversationHistory = cloneHistory(s.ConversationHistory)
	return &out
}

// normalizeState upgrades a loaded document in place: missing collections
// become empty, out-of-range values are repaired and look is recomputed from
// the inventory. A document that never recorded a turn is treated as absent
// and replaced with a fresh state.
func normalizeState(s *PlayerState, rules config.GameRules) *PlayerState {
	if s == nil || s.Turn == 0 {
		return NewPlayerState(rules)
	}
	if s.Turn < 1 {
		s.Turn = 1
	}
	if s.TimeRemaining < 0 {
		s.TimeRemaining = 0
	}
	if s.TimeRemaining > rules.DayMinutes {
		s.TimeRemaining = rules.DayMinutes
	}
	s.Happiness = clampStat(s.Happiness)
	s.Tiredness = clampStat(s.Tiredness)
	if s.Hunger < 0 {
		s.Hunger = 0
	}
	if s.Qualification == "" {
		s.Qualification = "None"
	}
	if s.CurrentJob == "" {
		s.CurrentJob = "Unemployed"
	}
	if s.JobWage < 0 {
		s.JobWage = 0
	}
	if _, ok := locationInfos[s.CurrentLocation]; !ok {
		s.CurrentLocation = LocationHome
	}
	if s.FlatTier < 0 {
		s.FlatTier = 0
	}
	if s.FlatTier > 5 {
		s.FlatTier = 5
	}
	if s.Rent < 0 {
		s.Rent = 0
	}
	if s.CompletedCourses == nil {
		s.CompletedCourses = []string{}
	}
	if s.Items == nil {
		s.Items = []string{}
	}
	if s.ConversationHistory == nil {
		s.ConversationHistory = map[string][]ChatMessage{}
	}
	if s.EnrolledCourse != "" && s.HasCompleted(s.EnrolledCourse) {
		s.EnrolledCourse = ""
		s.LecturesCompleted = 0
	}
	if s.EnrolledCourse == "" || s.LecturesCompleted < 0 {
		s.LecturesCompleted = 0
	}
	s.UpdateLook()
	return s
}
