// Package catalog holds the static content of the Living Legacy wizard:
// the legacy types with their follow-up scoping questions, the audience and
// delivery format options, and the timeline and subject relationship choices.
package catalog

import "slices"

// QuestionKind distinguishes how a scoping question is answered.
type QuestionKind string

const (
	QuestionKindRadio       QuestionKind = "radio"
	QuestionKindMultiselect QuestionKind = "multiselect"
	QuestionKindText        QuestionKind = "text"
)

// ScopingQuestion is a follow-up question attached to a legacy type.
type ScopingQuestion struct {
	Key         string       `json:"key"`
	Prompt      string       `json:"prompt"`
	Kind        QuestionKind `json:"kind"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// LegacyType is one of the selectable narrative focuses of a legacy project.
type LegacyType struct {
	Name             string            `json:"name"`
	Icon             string            `json:"icon"`
	Description      string            `json:"description"`
	ScopingQuestions []ScopingQuestion `json:"scopingQuestions"`
}

// Option is a selectable catalog entry with a short explanation (audiences
// and delivery formats).
type Option struct {
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

var legacyTypes = []LegacyType{
	{
		Name:        "Full Life Story",
		Icon:        "📖",
		Description: "A comprehensive journey through your entire life — from earliest memories to today. This is the most complete legacy, capturing every chapter.",
		ScopingQuestions: []ScopingQuestion{
			{
				Key:    "time_depth",
				Prompt: "How far back would you like to go?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"As far back as I can remember",
					"Starting from my teenage years",
					"Starting from adulthood",
				},
			},
			{
				Key:    "themes",
				Prompt: "Which life themes are most important to include? (Select all that apply)",
				Kind:   QuestionKindMultiselect,
				Options: []string{
					"Family & Relationships",
					"Career & Professional Life",
					"Education & Learning",
					"Travel & Adventures",
					"Faith & Spirituality",
					"Health & Overcoming Challenges",
					"Hobbies & Passions",
					"Community & Volunteering",
					"Military Service",
					"Cultural Heritage & Traditions",
				},
			},
			{
				Key:    "tone",
				Prompt: "What tone or feel should the story have?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"Warm and conversational — like sitting on the porch together",
					"Reflective and thoughtful — lessons learned along the way",
					"Celebratory and uplifting — highlighting the best moments",
					"Honest and raw — the full truth, good and hard",
				},
			},
			{
				Key:    "estimated_length",
				Prompt: "How extensive should the final piece be?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"A concise overview (10-20 pages / 30-60 min of audio)",
					"A detailed narrative (50-100 pages / 2-4 hours of audio)",
					"A comprehensive memoir (100+ pages / 5+ hours of audio)",
				},
			},
		},
	},
	{
		Name:        "Words of Wisdom",
		Icon:        "💡",
		Description: "The life lessons, values, and advice you want to pass down. What do you know now that you wish you'd known sooner?",
		ScopingQuestions: []ScopingQuestion{
			{
				Key:    "wisdom_topics",
				Prompt: "What areas of wisdom would you like to share? (Select all that apply)",
				Kind:   QuestionKindMultiselect,
				Options: []string{
					"Life lessons & general advice",
					"Relationship & marriage wisdom",
					"Parenting insights",
					"Career & professional guidance",
					"Financial lessons learned",
					"Health & wellness advice",
					"Faith & spiritual guidance",
					"Dealing with adversity & resilience",
					"Happiness & finding purpose",
					"Mistakes I learned from",
				},
			},
			{
				Key:    "format_pref",
				Prompt: "How would you like the wisdom presented?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"Short, memorable sayings and principles",
					"Stories that illustrate each lesson",
					"Letters addressed to specific people",
					"A mix of stories, advice, and reflections",
				},
			},
			{
				Key:    "tone",
				Prompt: "What tone feels right?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"Gentle and encouraging",
					"Direct and no-nonsense",
					"Humorous and lighthearted",
					"Deeply personal and heartfelt",
				},
			},
		},
	},
	{
		Name:        "Growing Up",
		Icon:        "🌱",
		Description: "The story of your childhood and formative years — the people, places, and moments that shaped who you became.",
		ScopingQuestions: []ScopingQuestion{
			{
				Key:    "era_focus",
				Prompt: "Which period would you like to focus on most?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"Early childhood (birth to age 10)",
					"Pre-teen and teenage years (10-18)",
					"The full span of growing up (birth through leaving home)",
				},
			},
			{
				Key:    "growing_up_themes",
				Prompt: "What aspects of growing up are most important to capture? (Select all that apply)",
				Kind:   QuestionKindMultiselect,
				Options: []string{
					"Family life & home",
					"Neighborhood & community",
					"School days & friendships",
					"Cultural traditions & holidays",
					"Pivotal moments & turning points",
					"Games, toys & entertainment of the era",
					"Food, meals & family recipes",
					"Summer vacations & adventures",
					"Challenges & how I overcame them",
					"The historical era I grew up in",
				},
			},
			{
				Key:    "setting_detail",
				Prompt: "How important is it to paint a picture of the time and place?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"Very important — I want readers to feel like they're there",
					"Somewhat — mention key details but focus on the stories",
					"Not very — the stories and people matter most",
				},
			},
		},
	},
	{
		Name:        "Professional Life: My Career",
		Icon:        "💼",
		Description: "Your professional journey — the jobs, mentors, breakthroughs, and lessons from your working life.",
		ScopingQuestions: []ScopingQuestion{
			{
				Key:    "career_scope",
				Prompt: "What part of your career would you like to focus on?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"My entire career arc, start to finish",
					"A specific role or company that defined me",
					"A particular industry or field I worked in",
					"My entrepreneurial journey / business I built",
				},
			},
			{
				Key:    "career_themes",
				Prompt: "Which professional themes matter most? (Select all that apply)",
				Kind:   QuestionKindMultiselect,
				Options: []string{
					"How I got started & early career",
					"Mentors & people who shaped my path",
					"Major accomplishments & proud moments",
					"Failures, setbacks & what I learned",
					"Leadership philosophy & management style",
					"Industry changes I witnessed or drove",
					"Work-life balance & sacrifices",
					"Advice for the next generation in my field",
					"The legacy I left at my workplace",
					"Transition to retirement",
				},
			},
			{
				Key:    "detail_level",
				Prompt: "How technical or detailed should the career story be?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"Keep it accessible — anyone should be able to enjoy it",
					"Some industry detail — for people familiar with my field",
					"In-depth — a record for professionals and colleagues",
				},
			},
		},
	},
	{
		Name:        "Love & Family",
		Icon:        "❤️",
		Description: "The story of your most important relationships — your partner, your children, your family bonds.",
		ScopingQuestions: []ScopingQuestion{
			{
				Key:    "relationship_focus",
				Prompt: "Which relationships would you like to focus on? (Select all that apply)",
				Kind:   QuestionKindMultiselect,
				Options: []string{
					"My love story / marriage",
					"Being a parent",
					"Being a grandparent",
					"My parents & the family I came from",
					"Siblings & extended family",
					"Lifelong friendships",
					"Chosen family & community bonds",
				},
			},
			{
				Key:    "family_themes",
				Prompt: "What aspects of these relationships matter most? (Select all that apply)",
				Kind:   QuestionKindMultiselect,
				Options: []string{
					"How we met / how it all began",
					"Traditions & rituals we built together",
					"Challenges we faced & overcame",
					"Everyday moments that defined us",
					"Lessons I learned about love & commitment",
					"Funny stories & inside jokes",
					"What I want them to know",
				},
			},
			{
				Key:    "tone",
				Prompt: "What tone feels right for these stories?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"Romantic and sentimental",
					"Warm and down-to-earth",
					"Funny and affectionate",
					"Deeply honest — the real story",
				},
			},
		},
	},
	{
		Name:        "Military & Service",
		Icon:        "🎖️",
		Description: "Your time in uniform — the service, sacrifice, camaraderie, and experiences that shaped you.",
		ScopingQuestions: []ScopingQuestion{
			{
				Key:         "service_scope",
				Prompt:      "What branch and era of service?",
				Kind:        QuestionKindText,
				Placeholder: "e.g., US Army, 1968-1972 / Navy, 1990-2010",
			},
			{
				Key:    "service_themes",
				Prompt: "Which aspects of your service are most important to capture? (Select all that apply)",
				Kind:   QuestionKindMultiselect,
				Options: []string{
					"Basic training & early days",
					"Deployments & duty stations",
					"Combat experiences",
					"Brotherhood & camaraderie",
					"Leadership & lessons learned",
					"Impact on family & home life",
					"Transition to civilian life",
					"How service shaped who I am",
					"Honoring fallen comrades",
					"Funny stories & lighter moments",
				},
			},
			{
				Key:    "sensitivity",
				Prompt: "Are there aspects of your service you'd prefer to keep private?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"I'm an open book — capture it all",
					"Some topics are off-limits — I'll let you know as we go",
					"I'd like to focus on the positive and skip the difficult parts",
				},
			},
		},
	},
	{
		Name:        "Faith & Spiritual Journey",
		Icon:        "🙏",
		Description: "Your spiritual path — how faith has guided, challenged, and sustained you through life.",
		ScopingQuestions: []ScopingQuestion{
			{
				Key:    "faith_scope",
				Prompt: "What best describes your spiritual journey?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"Lifelong faith in one tradition",
					"A journey across different beliefs or denominations",
					"Coming to faith later in life",
					"A spiritual but not religious path",
					"A complex relationship with faith",
				},
			},
			{
				Key:    "faith_themes",
				Prompt: "What aspects of your faith journey matter most? (Select all that apply)",
				Kind:   QuestionKindMultiselect,
				Options: []string{
					"Foundational beliefs & values",
					"Key moments of spiritual growth",
					"How faith carried me through hard times",
					"Community & fellowship",
					"Doubts, questions & honest wrestling",
					"Prayers that were answered",
					"Spiritual mentors & teachers",
					"Faith traditions I want to pass down",
					"How my faith evolved over time",
				},
			},
		},
	},
	{
		Name:        "A Specific Chapter",
		Icon:        "📌",
		Description: "One particular period, event, or experience you want to preserve in detail — a move, an adventure, a challenge overcome.",
		ScopingQuestions: []ScopingQuestion{
			{
				Key:         "chapter_description",
				Prompt:      "Briefly describe the chapter or experience you want to capture:",
				Kind:        QuestionKindText,
				Placeholder: "e.g., The year we lived in Italy, My battle with cancer, Starting my business from scratch",
			},
			{
				Key:    "chapter_timeframe",
				Prompt: "Roughly how long did this chapter span?",
				Kind:   QuestionKindRadio,
				Options: []string{
					"A single event or moment",
					"Days to weeks",
					"Months",
					"A year or two",
					"Several years",
				},
			},
			{
				Key:    "chapter_themes",
				Prompt: "What makes this chapter worth preserving? (Select all that apply)",
				Kind:   QuestionKindMultiselect,
				Options: []string{
					"It changed who I am",
					"It's a story my family should know",
					"It involved incredible people",
					"It was an adventure or unique experience",
					"I overcame something difficult",
					"It shaped my values or beliefs",
					"It's a piece of history",
					"It's simply a great story",
				},
			},
		},
	},
}

var audiences = []Option{
	{Label: "My Children", Icon: "👶", Description: "Stories and lessons for your sons and daughters"},
	{Label: "My Grandchildren", Icon: "👧", Description: "Connecting generations — so they know where they come from"},
	{Label: "Future Generations", Icon: "🌳", Description: "A lasting record for descendants you may never meet"},
	{Label: "My Spouse / Partner", Icon: "💑", Description: "A gift of memories and love for your life partner"},
	{Label: "Extended Family", Icon: "👨‍👩‍👧‍👦", Description: "Siblings, nieces, nephews, cousins — the wider family"},
	{Label: "Friends & Community", Icon: "🤝", Description: "People beyond family who are part of your story"},
	{Label: "Professional Colleagues", Icon: "🏢", Description: "Mentees, coworkers, and people in your industry"},
	{Label: "The General Public", Icon: "🌍", Description: "Your story deserves to be shared widely"},
	{Label: "Myself", Icon: "🪞", Description: "A personal reflection — capturing your story for your own sake"},
}

var deliveryFormats = []Option{
	{Label: "Written Book / Memoir", Icon: "📕", Description: "A printed or digital book — a classic, lasting keepsake"},
	{Label: "Audio Recording", Icon: "🎙️", Description: "Stories told in your own voice — intimate and personal"},
	{Label: "Video Documentary", Icon: "🎬", Description: "Visual storytelling with interviews and imagery"},
	{Label: "Digital Archive", Icon: "💻", Description: "An interactive digital collection — stories, photos, and documents"},
	{Label: "Scrapbook / Photo Essay", Icon: "📸", Description: "A visual journey pairing photos with narrative"},
	{Label: "Letters Collection", Icon: "✉️", Description: "Personal letters to specific people — to be read now or later"},
	{Label: "Not sure yet", Icon: "🤔", Description: "We'll help you decide the best format as we go"},
}

var timelineOptions = []string{
	"I'd like to start right away",
	"Within the next month",
	"Within the next few months",
	"No rush — I'm just exploring for now",
}

var subjectRelationships = []string{
	"This is my own story",
	"I'm capturing a parent's story",
	"I'm capturing a grandparent's story",
	"I'm capturing a spouse/partner's story",
	"I'm capturing a friend's story",
	"I'm capturing someone else's story",
}

// LegacyTypes returns all legacy types in display order. The result is a
// copy; callers cannot mutate the catalog through it.
func LegacyTypes() []LegacyType {
	out := slices.Clone(legacyTypes)
	for i := range out {
		out[i].ScopingQuestions = cloneQuestions(out[i].ScopingQuestions)
	}
	return out
}

// LegacyTypeByName looks up a legacy type by its display name.
func LegacyTypeByName(name string) (LegacyType, bool) {
	for _, lt := range legacyTypes {
		if lt.Name == name {
			lt.ScopingQuestions = cloneQuestions(lt.ScopingQuestions)
			return lt, true
		}
	}
	return LegacyType{}, false
}

func cloneQuestions(qs []ScopingQuestion) []ScopingQuestion {
	out := slices.Clone(qs)
	for i := range out {
		out[i].Options = slices.Clone(out[i].Options)
	}
	return out
}

// ScopingQuestionByKey looks up one of a legacy type's follow-up questions.
func (lt LegacyType) ScopingQuestionByKey(key string) (ScopingQuestion, bool) {
	for _, q := range lt.ScopingQuestions {
		if q.Key == key {
			return q, true
		}
	}
	return ScopingQuestion{}, false
}

// HasOption reports whether value is one of the question's allowed options.
func (q ScopingQuestion) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// Audiences returns all audience options in display order.
func Audiences() []Option {
	return slices.Clone(audiences)
}

// IsKnownAudience reports whether label matches a catalog audience.
func IsKnownAudience(label string) bool {
	return hasLabel(audiences, label)
}

// DeliveryFormats returns all delivery format options in display order.
func DeliveryFormats() []Option {
	return slices.Clone(deliveryFormats)
}

// IsKnownDeliveryFormat reports whether label matches a catalog format.
func IsKnownDeliveryFormat(label string) bool {
	return hasLabel(deliveryFormats, label)
}

// TimelineOptions returns the start-timeline choices.
func TimelineOptions() []string {
	return slices.Clone(timelineOptions)
}

// IsKnownTimeline reports whether value is a catalog timeline option.
func IsKnownTimeline(value string) bool {
	for _, t := range timelineOptions {
		if t == value {
			return true
		}
	}
	return false
}

// SubjectRelationships returns the subject relationship choices.
func SubjectRelationships() []string {
	return slices.Clone(subjectRelationships)
}

func hasLabel(options []Option, label string) bool {
	for _, opt := range options {
		if opt.Label == label {
			return true
		}
	}
	return false
}
