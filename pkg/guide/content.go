package guide

import "mindgarden-be/pkg/mood"

// All wellness guide output is configuration data keyed by risk tier (plus
// an optional gender tip list). A single renderer reads these tables; there
// is no per-theme branching code.

type TimeBlock struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type VideoPick struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// Content is everything the guide screen shows for one risk tier.
type Content struct {
	Tier      mood.Tier   `json:"tier"`
	Headline  string      `json:"headline"`
	Message   string      `json:"message"`
	Quote     string      `json:"quote"`
	Resources []Link      `json:"resources,omitempty"`
	Routine   []TimeBlock `json:"routine,omitempty"`
}

var motivationalQuote = `"The only way to do great work is to love what you do." - Steve Jobs`

var byTier = map[mood.Tier]Content{
	mood.TierLow: {
		Tier:     mood.TierLow,
		Headline: "You're doing great!",
		Message:  "Keep up whatever you're doing - your routine is working for you.",
		Quote:    motivationalQuote,
	},
	mood.TierModerate: {
		Tier:     mood.TierModerate,
		Headline: "You might be feeling overwhelmed.",
		Message:  "A steadier daily rhythm with built-in breaks usually helps at this level.",
		Quote:    motivationalQuote,
		Resources: []Link{
			{Title: "Burnout Management Tips from CDC", URL: "https://www.cdc.gov/mentalhealth/stress-coping/cope-with-stress/index.html"},
			{Title: "Guided unwind session", URL: "https://www.youtube.com/watch?v=2OEL4P1Rz04"},
		},
		Routine: []TimeBlock{
			{Time: "6:30 AM - 7:30 AM", Activity: "Light exercise (walking, stretching)"},
			{Time: "7:30 AM - 8:00 AM", Activity: "Healthy breakfast with fruits and veggies"},
			{Time: "8:00 AM - 10:00 AM", Activity: "Focused study/work"},
			{Time: "10:00 AM - 10:15 AM", Activity: "Break - meditate or relax"},
			{Time: "10:15 AM - 12:00 PM", Activity: "Study or project work"},
			{Time: "12:00 PM - 1:00 PM", Activity: "Balanced lunch"},
			{Time: "1:00 PM - 2:00 PM", Activity: "Rest or light nap"},
			{Time: "2:00 PM - 4:00 PM", Activity: "Study or assignments"},
			{Time: "4:00 PM - 4:30 PM", Activity: "Physical activity (walk, cycling)"},
			{Time: "4:30 PM - 5:00 PM", Activity: "Healthy snack"},
			{Time: "5:00 PM - 7:00 PM", Activity: "Light study/revision"},
			{Time: "7:00 PM - 8:00 PM", Activity: "Dinner with veggies"},
			{Time: "8:00 PM - 9:00 PM", Activity: "Relaxation and hobbies"},
			{Time: "9:00 PM - 10:00 PM", Activity: "Prepare for next day & sleep early"},
		},
	},
	mood.TierHigh: {
		Tier:     mood.TierHigh,
		Headline: "You might be feeling overwhelmed.",
		Message:  "Your answers point to a high burnout risk. A recovery-first routine and the short quiz below will tailor the advice.",
		Quote:    motivationalQuote,
		Resources: []Link{
			{Title: "Burnout Management Tips from CDC", URL: "https://www.cdc.gov/mentalhealth/stress-coping/cope-with-stress/index.html"},
			{Title: "Guided unwind session", URL: "https://www.youtube.com/watch?v=2OEL4P1Rz04"},
		},
		Routine: []TimeBlock{
			{Time: "6:00 AM - 7:00 AM", Activity: "Wake up & Morning exercise (stretch, yoga)"},
			{Time: "7:00 AM - 7:30 AM", Activity: "Healthy breakfast (include green veggies, fruits)"},
			{Time: "7:30 AM - 9:00 AM", Activity: "Focused study session"},
			{Time: "9:00 AM - 9:15 AM", Activity: "Short break (walk/stretch)"},
			{Time: "9:15 AM - 11:00 AM", Activity: "Study / Assignments"},
			{Time: "11:00 AM - 12:00 PM", Activity: "Light snack & rest"},
			{Time: "12:00 PM - 1:00 PM", Activity: "Lunch (balanced with veggies and protein)"},
			{Time: "1:00 PM - 2:00 PM", Activity: "Power nap or relaxation"},
			{Time: "2:00 PM - 4:00 PM", Activity: "Study or project work"},
			{Time: "4:00 PM - 4:30 PM", Activity: "Physical activity (walk, cycling, sport)"},
			{Time: "4:30 PM - 5:00 PM", Activity: "Healthy snack"},
			{Time: "5:00 PM - 7:00 PM", Activity: "Study / Revision"},
			{Time: "7:00 PM - 8:00 PM", Activity: "Dinner (include green vegetables)"},
			{Time: "8:00 PM - 9:00 PM", Activity: "Leisure time (reading, hobbies)"},
			{Time: "9:00 PM - 10:00 PM", Activity: "Prepare for next day & relax"},
			{Time: "10:00 PM", Activity: "Sleep early for recovery"},
		},
	},
}

// Talk-of-the-day picks shown on every guide screen regardless of tier.
var videoPicks = []VideoPick{
	{
		Title:   "TEDx - The Power of Vulnerability",
		URL:     "https://www.youtube.com/watch?v=iCvmsMzlF7o",
		Caption: `"Vulnerability is the birthplace of innovation, creativity and change." - Brene Brown`,
	},
	{
		Title:   "Motivational Speech - Never Give Up",
		URL:     "https://www.youtube.com/watch?v=mgmVOuLgFB0",
		Caption: `"Don't watch the clock; do what it does. Keep going." - Sam Levenson`,
	},
	{
		Title:   "Mindfulness Meditation",
		URL:     "https://www.youtube.com/watch?v=inpok4MKVLM",
		Caption: "Relax your mind and body with this meditation.",
	},
	{
		Title:   "Calming Nature Sounds",
		URL:     "https://www.youtube.com/watch?v=OdIJ2x3nxzQ",
		Caption: "Experience calm and tranquility with nature's sounds.",
	},
}

var tipsByGender = map[string][]string{
	"male": {
		"Strength or cardio sessions are a reliable pressure valve - schedule them like meetings.",
		"Talk to someone you trust; bottling stress up tends to extend it.",
	},
	"female": {
		"Guard your sleep window first - everything else recovers faster from there.",
		"Short walks outdoors between tasks lower stress more than one long break.",
	},
}

var defaultTips = []string{
	"Keep a consistent wake-up time, including weekends.",
	"Step away from screens for the last hour before bed.",
}

// ForTier returns the content block for a risk tier.
func ForTier(tier mood.Tier) Content {
	if c, ok := byTier[tier]; ok {
		return c
	}
	return byTier[mood.TierModerate]
}

// Videos returns the shared talk-of-the-day table.
func Videos() []VideoPick {
	out := make([]VideoPick, len(videoPicks))
	copy(out, videoPicks)
	return out
}

// TipsFor returns gender-specific tips, falling back to the neutral set.
func TipsFor(gender string) []string {
	if tips, ok := tipsByGender[gender]; ok {
		return tips
	}
	return defaultTips
}

// BucketAdvice maps a quiz recommendation bucket to its guidance line.
var BucketAdvice = map[mood.QuizBucket]string{
	mood.BucketSelfCare:     "Keep an eye on your routine and protect your rest days.",
	mood.BucketIntensive:    "Treat recovery as a daily task this week: sleep, movement, and time fully off.",
	mood.BucketProfessional: "Your answers suggest sustained strain - consider talking to a counselor or professional.",
}
