package engine

import (
	"github.com/vitaclub/wellness-engine/internal/domain"
	"github.com/vitaclub/wellness-engine/internal/timeutil"
)

// lunchPromo rides on the lunch event, carried through to the order flow.
var lunchPromo = domain.PromoData{
	Code:        "NORUZ1405",
	Link:        "/shop/promo",
	Description: "Suggested: the fiber & protein plate",
}

// GenerateTimeline builds the fixed 7-event day schedule anchored to wake
// time. Offsets are hours since wake, so the plan follows the user's clock:
// hydration 15 min in, breakfast (delayed to 2.5h for endomorphs as light
// intermittent fasting), lunch at 6h, snack at 9h, workout placed by
// chronotype, dinner at 13.5h, sleep at 16h. Meal events embed the scorer's
// picks; dinner excludes the lunch item so the two never repeat.
func (e *Engine) GenerateTimeline(chronotype domain.Chronotype, somatotype domain.Somatotype, wakeTime string, currentHour int, goal domain.Goal) []domain.TimelineItem {
	wakeMin, ok := timeutil.TimeToMinutes(wakeTime)
	if !ok {
		wakeMin = defaultWakeMinutes
	}

	timeline := make([]domain.TimelineItem, 0, 7)
	addEvent := func(offsetHours float64, title string, typ domain.TimelineItemType, icon string) *domain.TimelineItem {
		eventMin := wakeMin + int(offsetHours*60)
		eventHour := (eventMin / 60) % 24

		status := domain.StatusPending
		cur := timeutil.AdjustHour(currentHour)
		evt := timeutil.AdjustHour(eventHour)
		switch {
		case cur > evt+1:
			status = domain.StatusDone
		case cur >= evt-1 && cur <= evt+1:
			status = domain.StatusActive
		}

		timeline = append(timeline, domain.TimelineItem{
			Time:   timeutil.MinutesToTime(eventMin),
			Type:   typ,
			Title:  title,
			Status: status,
			Icon:   icon,
		})
		return &timeline[len(timeline)-1]
	}

	addEvent(0.25, "Hydration + electrolytes", domain.EventOther, "droplet")

	breakfastOffset := 1.0
	if somatotype == domain.Endomorph {
		breakfastOffset = 2.5
	}
	breakfast, _ := e.RecommendMeal(SlotBreakfast, somatotype, chronotype, goal, nil)
	b := addEvent(breakfastOffset, "Breakfast: "+breakfast.Name, domain.EventMeal, "sun")
	b.ActionLink = breakfast.OrderLink
	b.ActionLabel = "Order"

	lunch, _ := e.RecommendMeal(SlotLunch, somatotype, chronotype, goal, nil)
	lunchTitle := "Lunch (insulin control): " + lunch.Name
	if somatotype == domain.Mesomorph {
		lunchTitle = "Lunch (muscle fuel): " + lunch.Name
	}
	l := addEvent(6, lunchTitle, domain.EventMeal, "flame")
	l.ActionLink = lunch.OrderLink
	l.ActionLabel = "Order"
	promo := lunchPromo
	l.Promo = &promo

	addEvent(9, "Afternoon snack", domain.EventMeal, "leaf")

	workoutOffset := 11.0
	switch chronotype {
	case domain.Lion:
		workoutOffset = 10
	case domain.Wolf:
		workoutOffset = 12
	}
	addEvent(workoutOffset, "Targeted workout", domain.EventWorkout, "dumbbell")

	dinner, _ := e.RecommendMeal(SlotDinner, somatotype, chronotype, goal, map[string]bool{lunch.ID: true})
	d := addEvent(13.5, "Light dinner: "+dinner.Name, domain.EventMeal, "moon")
	d.ActionLink = dinner.OrderLink
	d.ActionLabel = "Order"

	addEvent(16, "Sleep (recovery)", domain.EventSleep, "moon")

	return timeline
}
