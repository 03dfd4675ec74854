// Package seed generates the synthetic startup dataset: 6 fixed categories
// and 80 articles built from cyclic lookup tables. The dataset is a pure
// function of the base time, since read times come from a fixed-seed PRNG,
// so two runs with the same base produce identical articles.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/newsbench/newsd/pkg/news"
)

// readTimeSeed fixes the PRNG so seeded read times are reproducible.
const readTimeSeed = 1847

const hourMillis = int64(time.Hour / time.Millisecond)

var categories = []news.Category{
	{ID: "1", Name: "Technology", Description: "Latest tech news and innovations"},
	{ID: "2", Name: "Science", Description: "Scientific discoveries and research"},
	{ID: "3", Name: "Business", Description: "Business news and market updates"},
	{ID: "4", Name: "Health", Description: "Health and wellness information"},
	{ID: "5", Name: "Sports", Description: "Sports news and updates"},
	{ID: "6", Name: "Entertainment", Description: "Entertainment and celebrity news"},
}

var techTopics = []string{
	"Machine Learning", "Quantum Computing", "Robotics", "Cybersecurity",
	"Cloud Computing", "IoT", "Blockchain", "5G Networks", "Autonomous Vehicles", "AR/VR",
}

var scienceTopics = []string{
	"Climate Science", "Genetics", "Space Exploration", "Nanotechnology",
	"Neuroscience", "Physics", "Marine Biology", "Astronomy", "Chemistry", "Ecology",
}

var businessTopics = []string{
	"Digital Transformation", "Sustainability", "Market Expansion",
	"Innovation", "Partnership", "Investment", "Growth Strategy", "Merger", "IPO", "Acquisition",
}

var healthTopics = []string{
	"Exercise", "Meditation", "Nutrition", "Sleep", "Mental Health",
	"Preventive Care", "Healthy Aging", "Stress Management", "Immunity", "Fitness",
}

var teams = []string{
	"Thunder", "Eagles", "Lions", "Tigers", "Warriors", "Knights",
	"Dragons", "Falcons", "Sharks", "Phoenix",
}

var sportTypes = []string{
	"Basketball", "Football", "Soccer", "Tennis", "Baseball",
	"Hockey", "Rugby", "Cricket", "Golf", "Swimming",
}

var entertainmentTypes = []string{
	"Film", "Series", "Album", "Concert Tour", "Documentary",
	"Podcast", "Game", "Musical", "Art Exhibition", "Book",
}

var companies = []string{
	"TechCorp", "InnovateTech", "FutureSync", "GlobalTech",
	"NextGen Industries", "Pioneer Systems", "Quantum Labs", "Synergy Group",
	"Nexus Technologies", "Apex Solutions",
}

var authors = []string{
	"Sarah Johnson", "Michael Chen", "Emma Williams", "David Garcia",
	"Lisa Anderson", "James Martinez", "Maria Rodriguez", "Robert Taylor",
	"Jennifer Lee", "William Brown", "Patricia Wilson", "Richard Moore",
	"Linda Davis", "Thomas Jackson", "Barbara White", "Christopher Harris",
	"Nancy Martin", "Daniel Thompson", "Karen Garcia", "Matthew Martinez",
}

// run describes one category's slice of the dataset. offset is the global
// article index of the run's first article, which drives both the author
// rotation and the one-hour publication spacing across the whole dataset.
type run struct {
	category string
	idPrefix string
	count    int
	offset   int
	readMin  int
	readMax  int
	title    func(i int) string
	summary  func(i int) string
	tags     func(i int) []string
}

var runs = []run{
	{
		category: "Technology", idPrefix: "tech", count: 20, offset: 0, readMin: 3, readMax: 10,
		title: func(i int) string {
			return fmt.Sprintf("Breaking: New AI Development Revolutionizes %s", cycle(techTopics, i))
		},
		summary: func(i int) string {
			return fmt.Sprintf("Researchers announce groundbreaking advancement in artificial intelligence that could transform the %s industry.", cycle(techTopics, i))
		},
		tags: func(i int) []string {
			return []string{"AI", "Technology", "Innovation", cycle(techTopics, i)}
		},
	},
	{
		category: "Science", idPrefix: "sci", count: 15, offset: 20, readMin: 5, readMax: 12,
		title: func(i int) string {
			return fmt.Sprintf("Scientists Discover New %s Breakthrough", cycle(scienceTopics, i))
		},
		summary: func(i int) string {
			return fmt.Sprintf("International team of researchers makes unprecedented discovery in the %s field.", cycle(scienceTopics, i))
		},
		tags: func(i int) []string {
			return []string{"Science", "Research", cycle(scienceTopics, i)}
		},
	},
	{
		category: "Business", idPrefix: "biz", count: 15, offset: 35, readMin: 4, readMax: 8,
		title: func(i int) string {
			return fmt.Sprintf("%s Announces Major %s Initiative", cycle(companies, i), cycle(businessTopics, i))
		},
		summary: func(i int) string {
			return fmt.Sprintf("Leading company reveals strategic plans for %s expansion in global markets.", cycle(businessTopics, i))
		},
		tags: func(i int) []string {
			return []string{"Business", "Finance", cycle(businessTopics, i)}
		},
	},
	{
		category: "Health", idPrefix: "health", count: 10, offset: 50, readMin: 6, readMax: 10,
		title: func(i int) string {
			return fmt.Sprintf("New Study Reveals %s Benefits", cycle(healthTopics, i))
		},
		summary: func(i int) string {
			return fmt.Sprintf("Medical researchers publish findings on the positive effects of %s on overall wellness.", cycle(healthTopics, i))
		},
		tags: func(i int) []string {
			return []string{"Health", "Wellness", cycle(healthTopics, i)}
		},
	},
	{
		category: "Sports", idPrefix: "sport", count: 10, offset: 60, readMin: 3, readMax: 7,
		title: func(i int) string {
			return fmt.Sprintf("%s Wins Championship in %s", cycle(teams, i), cycle(sportTypes, i))
		},
		summary: func(i int) string {
			return fmt.Sprintf("Historic victory as %s clinches the championship title in a thrilling final match.", cycle(teams, i))
		},
		tags: func(i int) []string {
			return []string{"Sports", cycle(sportTypes, i), "Championship"}
		},
	},
	{
		category: "Entertainment", idPrefix: "ent", count: 10, offset: 70, readMin: 4, readMax: 8,
		title: func(i int) string {
			return fmt.Sprintf("Award-Winning %s Set for Release", cycle(entertainmentTypes, i))
		},
		summary: func(i int) string {
			return fmt.Sprintf("Highly anticipated %s from acclaimed creators debuts this season.", cycle(entertainmentTypes, i))
		},
		tags: func(i int) []string {
			return []string{"Entertainment", cycle(entertainmentTypes, i), "Media"}
		},
	},
}

// Categories returns the fixed category reference set in seed order, with
// zero article counts; the store recomputes counts on load.
func Categories() []news.Category {
	out := make([]news.Category, len(categories))
	copy(out, categories)
	return out
}

// Articles generates the full 80-article dataset. Publication times step back
// one hour per global article index from base, so Technology is newest and
// Entertainment oldest.
func Articles(base time.Time) []news.Article {
	rng := rand.New(rand.NewSource(readTimeSeed))
	baseMillis := base.UnixMilli()

	var articles []news.Article
	for _, r := range runs {
		for i := 0; i < r.count; i++ {
			global := r.offset + i
			articles = append(articles, news.Article{
				ID:              fmt.Sprintf("%s-%d", r.idPrefix, i+1),
				Title:           r.title(i),
				Content:         articleContent(r.category, i),
				Summary:         r.summary(i),
				ImageURL:        fmt.Sprintf("https://picsum.photos/800/600?random=%s%d", r.idPrefix, i+1),
				Author:          cycle(authors, global),
				PublishedAt:     baseMillis - int64(global)*hourMillis,
				Category:        r.category,
				ReadTimeMinutes: r.readMin + rng.Intn(r.readMax-r.readMin+1),
				Tags:            r.tags(i),
			})
		}
	}
	return articles
}

// Populate seeds the store with the full dataset anchored at base.
func Populate(s *news.Store, base time.Time) {
	s.Seed(Categories(), Articles(base))
}

func cycle(table []string, i int) string {
	return table[i%len(table)]
}

// articleContent produces templated markdown prose for a seeded article.
func articleContent(category string, index int) string {
	topic := strings.ToLower(category)
	return fmt.Sprintf(`This is a comprehensive article about %[1]s topic number %[2]d.

## Introduction

In recent developments, experts have made significant progress in understanding and advancing this field. This breakthrough represents a major milestone in %[1]s research and development.

## Key Findings

The research team conducted extensive analysis over several months, gathering data from multiple sources and collaborating with international partners. Their findings reveal important insights that could reshape our understanding of this domain.

### Impact on Industry

Industry leaders are already taking notice of these developments. Several major companies have announced plans to integrate these findings into their operations, potentially transforming how they approach %[1]s challenges.

### Future Implications

Looking ahead, experts predict that these advances will continue to influence the field for years to come. The potential applications are vast, ranging from immediate practical uses to long-term strategic planning.

## Expert Opinions

Leading researchers in the field have praised the work, noting its methodological rigor and innovative approach. "This represents a significant step forward," noted one prominent expert. "The implications for future research are profound."

## Conclusion

As we continue to explore these developments, it's clear that the intersection of research, innovation, and practical application will drive progress in %[1]s. The coming months will likely bring even more exciting discoveries and opportunities for advancement.

Stay tuned for more updates as this story develops.`, topic, index+1)
}
