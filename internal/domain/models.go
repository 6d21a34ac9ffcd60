package domain

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Somatotype is the body-frame/composition classification.
type Somatotype string

const (
	Ectomorph Somatotype = "ectomorph"
	Mesomorph Somatotype = "mesomorph"
	Endomorph Somatotype = "endomorph"
)

// Chronotype is the circadian preference classification.
type Chronotype string

const (
	Lion Chronotype = "lion" // early riser
	Bear Chronotype = "bear" // average
	Wolf Chronotype = "wolf" // night-oriented
)

type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalEnergy      Goal = "energy"
	GoalHealthDetox Goal = "health_detox"
)

type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// AssessmentData is the raw questionnaire submission. Zero-valued fields are
// filled with documented defaults before classification, so the pipeline is
// total over partial input.
type AssessmentData struct {
	Gender       Gender      `json:"gender"`
	Age          int         `json:"age"`
	Height       float64     `json:"height"`     // cm
	Weight       float64     `json:"weight"`     // kg
	WristSize    float64     `json:"wrist_size"` // cm
	WakeTime     string      `json:"wake_time"`  // HH:MM
	StressLevel  StressLevel `json:"stress_level"`
	MainGoal     Goal        `json:"main_goal"`
	Neighborhood string      `json:"neighborhood,omitempty"`
	FullName     string      `json:"full_name,omitempty"`
}

type BMIStatus string

const (
	BMIUnderweight BMIStatus = "Underweight"
	BMINormal      BMIStatus = "Normal"
	BMIOverweight  BMIStatus = "Overweight"
	BMIObese       BMIStatus = "Obese"
)

// BMIResult carries the one-decimal BMI value and its status band.
type BMIResult struct {
	Value  float64   `json:"value"`
	Status BMIStatus `json:"status"`
}

type MealCategory string

const (
	CategoryBreakfast MealCategory = "breakfast"
	CategoryMain      MealCategory = "main"
	CategorySalad     MealCategory = "salad"
	CategorySnack     MealCategory = "snack"
)

// Menu item tags recognized by the meal scorer.
const (
	TagLowCarb     = "low-carb"
	TagHighCarb    = "high-carb"
	TagHighProtein = "high-protein"
	TagBalanced    = "balanced"
	TagKeto        = "keto"
	TagVegan       = "vegan"
)

// MenuItem is read-only catalog data. The engine never mutates it.
type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Protein     float64      `json:"protein"` // grams
	Ingredients string       `json:"ingredients,omitempty"`
	Category    MealCategory `json:"category"`
	Tags        []string     `json:"tags"`
	OrderLink   string       `json:"order_link"`
}

func (m MenuItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type TimelineItemType string

const (
	EventMeal       TimelineItemType = "meal"
	EventWorkout    TimelineItemType = "workout"
	EventSleep      TimelineItemType = "sleep"
	EventSupplement TimelineItemType = "supplement"
	EventOther      TimelineItemType = "other"
)

type TimelineStatus string

const (
	StatusDone    TimelineStatus = "done"
	StatusActive  TimelineStatus = "active"
	StatusPending TimelineStatus = "pending"
)

// TimelineItem is one event of the generated day schedule. Ordering is
// insertion order, chronological by offset from wake time.
type TimelineItem struct {
	Time        string           `json:"time"` // HH:MM
	Type        TimelineItemType `json:"type"`
	Title       string           `json:"title"`
	Status      TimelineStatus   `json:"status"`
	Icon        string           `json:"icon"`
	ActionLink  string           `json:"action_link,omitempty"`
	ActionLabel string           `json:"action_label,omitempty"`
	Promo       *PromoData       `json:"promo,omitempty"`
}

type PromoData struct {
	Code        string `json:"code"`
	Link        string `json:"link"`
	Description string `json:"description,omitempty"`
}

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type NutritionCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Detail string `json:"detail"`
	Macros Macros `json:"macros"`
}

type WorkoutCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"` // clock time
	Detail string `json:"detail"`
}

type SmartCards struct {
	Nutrition NutritionCard `json:"nutrition"`
	Workout   WorkoutCard   `json:"workout"`
}

type DashboardMeta struct {
	Greeting      string `json:"greeting"`
	EnergyLevel   string `json:"energy_level"` // Low | Medium | High
	HydrationGoal int    `json:"hydration_goal"`
}

// SkinHairProfile is the dietary skin/hair care narrative. All modifier
// logic is append-only string composition.
type SkinHairProfile struct {
	SkinCondition     string `json:"skin_condition"`
	HairCondition     string `json:"hair_condition"`
	NutritionStrategy string `json:"nutrition_strategy"`
	HeroIngredient    string `json:"hero_ingredient"`
	MorningProtocol   string `json:"morning_protocol"`
	EveningProtocol   string `json:"evening_protocol"`
	CircadianTip      string `json:"circadian_tip"`
}

type Recommendations struct {
	Nutrition   string   `json:"nutrition"`
	Workout     string   `json:"workout"`
	Supplements []string `json:"supplements"`
	Lifestyle   string   `json:"lifestyle"`
}

// GeneratedPlan is the classification result for one assessment.
type GeneratedPlan struct {
	Somatotype      Somatotype      `json:"somatotype"`
	Chronotype      Chronotype      `json:"chronotype"`
	BMIValue        float64         `json:"bmi_value"`
	BMIStatus       BMIStatus       `json:"bmi_status"`
	BMR             int             `json:"bmr"`
	TDEE            int             `json:"tdee"`
	Recommendations Recommendations `json:"recommendations"`
}

// LiveDashboard aggregates the display projections recomputed on each load.
type LiveDashboard struct {
	Meta     DashboardMeta   `json:"dashboard_meta"`
	Cards    SmartCards      `json:"smart_cards"`
	SkinHair SkinHairProfile `json:"skin_hair_profile"`
	Timeline []TimelineItem  `json:"timeline"`
}

// AssessmentRecord is a stored assessment with its derived classification
// and commercial lead score attached.
type AssessmentRecord struct {
	ID         string         `json:"id"`
	CreatedAt  string         `json:"created_at"`
	Assessment AssessmentData `json:"assessment"`
	Somatotype Somatotype     `json:"somatotype"`
	Chronotype Chronotype     `json:"chronotype"`
	BMIValue   float64        `json:"bmi_value"`
	BMIStatus  BMIStatus      `json:"bmi_status"`
	LeadScore  int            `json:"lead_score"`
}
