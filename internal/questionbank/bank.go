// Package questionbank holds the master interview question pool and the
// mapping tables that tailor it to a confirmed project scope. Questions are
// grouped by thematic category; each legacy type pulls in a base set of
// categories and the user's scoping selections widen that set.
package questionbank

// Category display names. Order inside questionsByCategory is the interview
// order within a category.
const (
	CategoryChildhood  = "Childhood & Growing Up"
	CategoryFamily     = "Family & Relationships"
	CategoryCareer     = "Career & Professional Life"
	CategoryValues     = "Values & Life Lessons"
	CategoryFaith      = "Faith & Spirituality"
	CategoryMilitary   = "Military & Service"
	CategoryAdventures = "Adventures & Experiences"
	CategoryHealth     = "Health & Resilience"
	CategoryHeritage   = "Cultural Heritage & Traditions"
	CategoryReflection = "Reflection & Legacy"
)

var questionsByCategory = map[string][]string{
	CategoryChildhood: {
		"What is your earliest memory?",
		"Where did you grow up, and what was your neighborhood like?",
		"Describe the home you grew up in — what did it look like, smell like, sound like?",
		"Who were the most important people in your childhood?",
		"What were your favorite games, toys, or ways to spend time as a kid?",
		"What was school like for you? Did you have a favorite teacher?",
		"What got you in trouble as a kid?",
		"What was dinnertime like in your family?",
		"What holidays or traditions did your family celebrate, and how?",
		"Was there a moment in your childhood that changed the direction of your life?",
		"What was the best summer you remember as a kid?",
		"What did you want to be when you grew up?",
		"What were your parents like when you were young?",
		"What music, TV shows, or movies do you remember from growing up?",
		"What was the hardest thing about being a kid in that era?",
	},
	CategoryFamily: {
		"How did you meet your spouse or life partner?",
		"What was your wedding day like?",
		"What's the secret to a lasting relationship, in your experience?",
		"What was it like becoming a parent for the first time?",
		"What's a favorite memory with each of your children?",
		"How would you describe your parenting style?",
		"What traditions have you created with your own family?",
		"What do you admire most about your parents?",
		"Tell me about a family challenge you overcame together.",
		"What do you most want your children or grandchildren to know about you?",
		"Is there a family recipe, song, or saying that's been passed down?",
		"What has being a grandparent meant to you?",
		"Describe a perfect ordinary day with your family.",
		"What's the funniest thing that ever happened in your family?",
		"Who in your extended family had the biggest impact on you?",
	},
	CategoryCareer: {
		"What was your very first job?",
		"How did you end up in the career or industry you spent your life in?",
		"Who was the most influential mentor in your professional life?",
		"What accomplishment are you most proud of professionally?",
		"Tell me about a time you failed at work and what you learned from it.",
		"How did your career change you as a person?",
		"What was the biggest risk you took professionally?",
		"What was the hardest decision you ever made at work?",
		"What leadership lesson took you the longest to learn?",
		"If you could give one piece of career advice to a young person, what would it be?",
		"How did you handle the balance between work and family?",
		"What do you think your colleagues would say about you?",
		"What industry changes did you witness during your career?",
		"Describe the moment you knew it was time to retire or move on.",
		"What legacy did you leave at the place you worked the longest?",
	},
	CategoryValues: {
		"What values were you raised with that you still hold today?",
		"What's the most important lesson life has taught you?",
		"What do you know now that you wish you'd known at 20?",
		"What does 'success' mean to you — has that definition changed?",
		"What advice would you give about handling money?",
		"How do you define a good life?",
		"What's the best advice anyone ever gave you?",
		"What's a mistake you made that taught you something valuable?",
		"How do you handle disagreements or conflict?",
		"What does courage mean to you? When have you had to be courageous?",
		"How do you decide what's right when the answer isn't clear?",
		"What's worth fighting for?",
		"If you could write a letter to your younger self, what would it say?",
		"What keeps you going when life gets hard?",
		"What do you hope people learn from your life?",
	},
	CategoryFaith: {
		"How would you describe your relationship with faith or spirituality?",
		"Were you raised in a religious tradition? How did that shape you?",
		"Was there a defining moment in your spiritual life?",
		"How has your faith helped you through difficult times?",
		"Have you ever had doubts? How did you work through them?",
		"What spiritual practices are most meaningful to you?",
		"Is there a scripture, prayer, or saying that guides your life?",
		"Who has been a spiritual mentor or model for you?",
		"How has your faith changed or deepened over the years?",
		"What do you hope to pass down about your faith?",
		"Describe a moment you felt truly at peace.",
		"How does your faith community matter to you?",
	},
	CategoryMilitary: {
		"Why did you join the military / enter service?",
		"What was basic training like?",
		"Where were you stationed, and what was life like there?",
		"Tell me about the people you served with — who stands out?",
		"What was your most meaningful experience during your service?",
		"How did military life affect your family?",
		"Was there a moment that tested everything you had?",
		"What did you learn about leadership in the military?",
		"How did you transition back to civilian life?",
		"Is there a fallen comrade you'd like to honor or remember?",
		"What do civilians most misunderstand about military life?",
		"How did your service shape the person you became?",
		"What's the funniest thing that happened during your service?",
		"If you could talk to a young person considering enlisting, what would you say?",
	},
	CategoryAdventures: {
		"What's the greatest adventure you've ever had?",
		"Where is the most memorable place you've ever traveled?",
		"Tell me about a time you stepped completely outside your comfort zone.",
		"What's the most spontaneous thing you've ever done?",
		"Is there an experience that fundamentally changed how you see the world?",
		"What's a hobby or passion that has brought you the most joy?",
		"Describe a perfect day doing something you love.",
		"What's a risk you took that paid off — or didn't?",
		"Tell me about a time you were truly awestruck.",
		"What's on your bucket list that you still hope to do?",
	},
	CategoryHealth: {
		"Have you faced a serious health challenge? How did you cope?",
		"What kept you strong during the hardest period of your life?",
		"How did your family support you through a difficult time?",
		"What did you learn about yourself through adversity?",
		"Has a loss or hardship changed your perspective on life?",
		"What advice would you give someone going through something similar?",
		"How do you take care of your mental and emotional health?",
		"Who or what gave you hope when things looked dark?",
	},
	CategoryHeritage: {
		"What is your cultural or ethnic heritage?",
		"What traditions from your culture are most important to you?",
		"Are there family customs you'd like to see continue?",
		"What language(s) were spoken in your home growing up?",
		"Tell me about a food or recipe that connects you to your heritage.",
		"What cultural values were instilled in you?",
		"How has your heritage shaped your identity?",
		"Is there a family history or origin story that's been passed down?",
	},
	CategoryReflection: {
		"When you look back on your life, what are you most grateful for?",
		"What are you most proud of?",
		"Is there anything you wish you'd done differently?",
		"What do you want people to remember about you?",
		"If you could live one day over again, which would it be and why?",
		"What brings you the most joy right now?",
		"What does the word 'legacy' mean to you?",
		"What message would you like to leave for future generations?",
		"How would you like to be remembered by those who knew you best?",
		"If you had one more thing to say to the people you love, what would it be?",
	},
}

// legacyTypeCategories maps each legacy type to its default category order.
var legacyTypeCategories = map[string][]string{
	"Full Life Story": {
		CategoryChildhood,
		CategoryFamily,
		CategoryCareer,
		CategoryValues,
		CategoryAdventures,
		CategoryReflection,
	},
	"Words of Wisdom": {
		CategoryValues,
		CategoryReflection,
	},
	"Growing Up": {
		CategoryChildhood,
		CategoryHeritage,
	},
	"Professional Life: My Career": {
		CategoryCareer,
		CategoryValues,
	},
	"Love & Family": {
		CategoryFamily,
		CategoryReflection,
	},
	"Military & Service": {
		CategoryMilitary,
		CategoryValues,
		CategoryReflection,
	},
	"Faith & Spiritual Journey": {
		CategoryFaith,
		CategoryValues,
		CategoryReflection,
	},
	"A Specific Chapter": {
		CategoryAdventures,
		CategoryHealth,
		CategoryReflection,
	},
}

// themeToCategory maps scoping selections (multiselect and radio option
// strings from the catalog) to extra categories to pull in.
var themeToCategory = map[string]string{
	// Full Life Story themes
	"Family & Relationships":         CategoryFamily,
	"Career & Professional Life":     CategoryCareer,
	"Education & Learning":           CategoryChildhood,
	"Travel & Adventures":            CategoryAdventures,
	"Faith & Spirituality":           CategoryFaith,
	"Health & Overcoming Challenges": CategoryHealth,
	"Hobbies & Passions":             CategoryAdventures,
	"Community & Volunteering":       CategoryHeritage,
	"Military Service":               CategoryMilitary,
	"Cultural Heritage & Traditions": CategoryHeritage,

	// Words of Wisdom topics
	"Life lessons & general advice":       CategoryValues,
	"Relationship & marriage wisdom":      CategoryFamily,
	"Parenting insights":                  CategoryFamily,
	"Career & professional guidance":      CategoryCareer,
	"Financial lessons learned":           CategoryValues,
	"Health & wellness advice":            CategoryHealth,
	"Faith & spiritual guidance":          CategoryFaith,
	"Dealing with adversity & resilience": CategoryHealth,
	"Happiness & finding purpose":         CategoryValues,
	"Mistakes I learned from":             CategoryValues,

	// Growing Up themes
	"Family life & home":                     CategoryFamily,
	"Neighborhood & community":               CategoryHeritage,
	"School days & friendships":              CategoryChildhood,
	"Cultural traditions & holidays":         CategoryHeritage,
	"Pivotal moments & turning points":       CategoryValues,
	"Games, toys & entertainment of the era": CategoryChildhood,
	"Food, meals & family recipes":           CategoryHeritage,
	"Summer vacations & adventures":          CategoryAdventures,
	"Challenges & how I overcame them":       CategoryHealth,
	"The historical era I grew up in":        CategoryHeritage,

	// Career themes
	"How I got started & early career":           CategoryCareer,
	"Mentors & people who shaped my path":        CategoryCareer,
	"Major accomplishments & proud moments":      CategoryCareer,
	"Failures, setbacks & what I learned":        CategoryHealth,
	"Leadership philosophy & management style":   CategoryCareer,
	"Industry changes I witnessed or drove":      CategoryCareer,
	"Work-life balance & sacrifices":             CategoryFamily,
	"Advice for the next generation in my field": CategoryValues,
	"The legacy I left at my workplace":          CategoryReflection,
	"Transition to retirement":                   CategoryReflection,

	// Love & Family: relationship focus
	"My love story / marriage":            CategoryFamily,
	"Being a parent":                      CategoryFamily,
	"Being a grandparent":                 CategoryFamily,
	"My parents & the family I came from": CategoryFamily,
	"Siblings & extended family":          CategoryFamily,
	"Lifelong friendships":                CategoryFamily,
	"Chosen family & community bonds":     CategoryHeritage,

	// Love & Family: family themes
	"How we met / how it all began":             CategoryFamily,
	"Traditions & rituals we built together":    CategoryHeritage,
	"Challenges we faced & overcame":            CategoryHealth,
	"Everyday moments that defined us":          CategoryFamily,
	"Lessons I learned about love & commitment": CategoryValues,
	"Funny stories & inside jokes":              CategoryFamily,
	"What I want them to know":                  CategoryReflection,

	// Military themes
	"Basic training & early days":     CategoryMilitary,
	"Deployments & duty stations":     CategoryMilitary,
	"Combat experiences":              CategoryMilitary,
	"Brotherhood & camaraderie":       CategoryMilitary,
	"Leadership & lessons learned":    CategoryValues,
	"Impact on family & home life":    CategoryFamily,
	"Transition to civilian life":     CategoryMilitary,
	"How service shaped who I am":     CategoryReflection,
	"Honoring fallen comrades":        CategoryMilitary,
	"Funny stories & lighter moments": CategoryMilitary,

	// Faith themes
	"Foundational beliefs & values":           CategoryFaith,
	"Key moments of spiritual growth":         CategoryFaith,
	"How faith carried me through hard times": CategoryFaith,
	"Community & fellowship":                  CategoryHeritage,
	"Doubts, questions & honest wrestling":    CategoryFaith,
	"Prayers that were answered":              CategoryFaith,
	"Spiritual mentors & teachers":            CategoryFaith,
	"Faith traditions I want to pass down":    CategoryFaith,
	"How my faith evolved over time":          CategoryFaith,

	// Specific Chapter themes
	"It changed who I am":                      CategoryReflection,
	"It's a story my family should know":       CategoryFamily,
	"It involved incredible people":            CategoryFamily,
	"It was an adventure or unique experience": CategoryAdventures,
	"I overcame something difficult":           CategoryHealth,
	"It shaped my values or beliefs":           CategoryValues,
	"It's a piece of history":                  CategoryHeritage,
	"It's simply a great story":                CategoryAdventures,
}
