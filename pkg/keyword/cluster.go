package keyword

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Intent labels a search-intent category.
type Intent string

const (
	IntentTrack       Intent = "track"
	IntentManage      Intent = "manage"
	IntentPlan        Intent = "plan"
	IntentCreate      Intent = "create"
	IntentLearn       Intent = "learn"
	IntentFind        Intent = "find"
	IntentCompare     Intent = "compare"
	IntentShare       Intent = "share"
	IntentSave        Intent = "save"
	IntentHealth      Intent = "health"
	IntentCommunicate Intent = "communicate"
	IntentAutomate    Intent = "automate"
	IntentGeneral     Intent = "general"
)

type intentCategory struct {
	Intent Intent
	Seeds  []string
}

// intentVocabulary is the fixed seed-word table used for clustering. Order
// matters: a keyword overlapping two categories equally is assigned to the
// earlier one, so reordering entries changes cluster membership for
// ambiguous keywords.
var intentVocabulary = []intentCategory{
	{IntentTrack, []string{"track", "tracking", "monitor", "log", "record", "measure", "count", "diary"}},
	{IntentManage, []string{"manage", "management", "organize", "organizer", "control", "handle", "coordinate"}},
	{IntentPlan, []string{"plan", "planner", "planning", "schedule", "scheduler", "calendar", "agenda", "timeline"}},
	{IntentCreate, []string{"create", "creator", "make", "maker", "build", "builder", "design", "designer", "edit", "editor"}},
	{IntentLearn, []string{"learn", "learning", "study", "education", "course", "tutorial", "teach", "training"}},
	{IntentFind, []string{"find", "finder", "search", "discover", "locate", "lookup", "browse", "explore"}},
	{IntentCompare, []string{"compare", "comparison", "versus", "review", "rate", "rating", "rank", "ranking"}},
	{IntentShare, []string{"share", "sharing", "social", "connect", "collaborate", "collaboration", "team", "group"}},
	{IntentSave, []string{"save", "saving", "budget", "budgeting", "money", "finance", "financial", "expense", "cost"}},
	{IntentHealth, []string{"health", "healthy", "fitness", "workout", "exercise", "diet", "nutrition", "wellness", "meditation"}},
	{IntentCommunicate, []string{"chat", "message", "messaging", "call", "calling", "video", "voice", "talk"}},
	{IntentAutomate, []string{"automate", "automation", "automatic", "auto", "smart", "ai", "intelligent", "reminder"}},
}

// queryTemplates are the per-intent natural-query banks. {obj} is replaced
// with the object terms left after stripping intent seed words.
var queryTemplates = map[Intent][]string{
	IntentTrack: {
		"apps to help me track {obj}",
		"best {obj} tracking app",
		"how to track my {obj} on my phone",
	},
	IntentManage: {
		"apps to help me manage {obj}",
		"best {obj} management app",
		"how to organize my {obj}",
	},
	IntentPlan: {
		"apps to help me plan {obj}",
		"best {obj} planner app",
		"how to schedule my {obj}",
	},
	IntentCreate: {
		"apps to create {obj}",
		"best {obj} creator app",
		"easy way to make {obj}",
	},
	IntentLearn: {
		"apps to learn {obj}",
		"best {obj} learning app",
		"how to study {obj} on my phone",
	},
	IntentFind: {
		"apps to find {obj}",
		"best app for finding {obj}",
		"where to find {obj}",
	},
	IntentCompare: {
		"apps to compare {obj}",
		"best {obj} comparison app",
		"how to compare {obj}",
	},
	IntentShare: {
		"apps to share {obj}",
		"best {obj} sharing app",
		"how to collaborate on {obj}",
	},
	IntentSave: {
		"apps to save {obj}",
		"best {obj} budgeting app",
		"how to manage my {obj}",
	},
	IntentHealth: {
		"apps for {obj}",
		"best {obj} app",
		"how to improve my {obj}",
	},
	IntentCommunicate: {
		"apps for {obj}",
		"best {obj} app",
		"how to {obj} for free",
	},
	IntentAutomate: {
		"apps to automate {obj}",
		"best smart {obj} app",
		"how to automate {obj}",
	},
}

// genericTemplates back any intent without its own bank, including the
// unclustered General bucket.
var genericTemplates = []string{
	"apps for {obj}",
	"best {obj} app",
}

// Stats carries the per-keyword analysis data used for cluster scoring.
type Stats struct {
	SearchVolume   int     `json:"search_volume"`
	CompetingApps  int     `json:"competing_apps"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Cluster groups keywords sharing a search intent.
type Cluster struct {
	Name           string   `json:"name"`
	Intent         Intent   `json:"intent"`
	Keywords       []string `json:"keywords"`
	KeywordCount   int      `json:"keyword_count"`
	NaturalQueries []string `json:"natural_queries"`
	CombinedScore  float64  `json:"combined_score"`
}

// ClusterByIntent groups keywords into intent clusters. Each keyword is
// assigned to the vocabulary category whose seed words overlap its own word
// set the most (strictly; equal overlap keeps the earlier category).
// Keywords overlapping no category land in a trailing General cluster.
// Clusters are sorted by combined score descending; the sort is stable, so
// equal scores keep first-assignment order.
//
// data is optional per-keyword analysis used for scoring; nil or empty data
// falls back to the count-only score. Clustering the same list twice yields
// identical membership and order.
func ClusterByIntent(keywords []string, data map[string]Stats) []Cluster {
	buckets := make(map[Intent][]string)
	var bucketOrder []Intent
	var unclustered []string

	for _, kw := range keywords {
		words := tokenSet(kw)

		var matched Intent
		bestOverlap := 0
		for _, category := range intentVocabulary {
			overlap := 0
			for _, seed := range category.Seeds {
				if words[seed] {
					overlap++
				}
			}
			if overlap > bestOverlap {
				bestOverlap = overlap
				matched = category.Intent
			}
		}

		if bestOverlap > 0 {
			if _, seen := buckets[matched]; !seen {
				bucketOrder = append(bucketOrder, matched)
			}
			buckets[matched] = append(buckets[matched], kw)
		} else {
			unclustered = append(unclustered, kw)
		}
	}

	clusters := make([]Cluster, 0, len(bucketOrder)+1)
	for _, intent := range bucketOrder {
		members := buckets[intent]
		clusters = append(clusters, Cluster{
			Name:           titleWord(string(intent)) + " Intent",
			Intent:         intent,
			Keywords:       members,
			KeywordCount:   len(members),
			NaturalQueries: GenerateNaturalQueries(intent, members, 5),
			CombinedScore:  ScoreCluster(members, data),
		})
	}

	if len(unclustered) > 0 {
		clusters = append(clusters, Cluster{
			Name:           "General",
			Intent:         IntentGeneral,
			Keywords:       unclustered,
			KeywordCount:   len(unclustered),
			NaturalQueries: GenerateNaturalQueries(IntentGeneral, unclustered, 5),
			CombinedScore:  ScoreCluster(unclustered, data),
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].CombinedScore > clusters[j].CombinedScore
	})
	return clusters
}

// ScoreCluster computes the combined potential of a keyword cluster (0-100).
// Without data (nil or empty) the score is a count-only proxy, min(n*10, 50).
// With data it sums four capped components: total volume (30), mean relevance
// (30), volume/competition opportunity (30) and keyword diversity (10).
func ScoreCluster(keywords []string, data map[string]Stats) float64 {
	if len(keywords) == 0 {
		return 0
	}
	if len(data) == 0 {
		return math.Min(float64(len(keywords))*10, 50)
	}

	var totalVolume float64
	var totalRelevance float64
	var totalOpportunity float64

	for _, kw := range keywords {
		stats, ok := data[kw]
		if !ok {
			// Absent keywords contribute neutral assumptions.
			stats = Stats{SearchVolume: 0, CompetingApps: 5000, RelevanceScore: 0.5}
		}

		totalVolume += float64(stats.SearchVolume)
		totalRelevance += stats.RelevanceScore

		if stats.CompetingApps > 0 {
			totalOpportunity += float64(stats.SearchVolume) / float64(stats.CompetingApps) * stats.RelevanceScore
		} else {
			totalOpportunity += float64(stats.SearchVolume) * stats.RelevanceScore
		}
	}

	count := float64(len(keywords))
	volumeScore := math.Min(totalVolume/10000, 30)
	relevanceScore := totalRelevance / count * 30
	opportunityScore := math.Min(totalOpportunity*10, 30)
	diversityScore := math.Min(count*2, 10)

	return round1(volumeScore + relevanceScore + opportunityScore + diversityScore)
}

// GenerateNaturalQueries produces up to maxQueries natural-language query
// variants for a cluster. Object terms are extracted by stripping the
// intent's seed words from each keyword; duplicates (of both objects and
// generated queries) are suppressed and generation stops at the cap.
func GenerateNaturalQueries(intent Intent, keywords []string, maxQueries int) []string {
	if maxQueries <= 0 {
		maxQueries = 5
	}

	templates, ok := queryTemplates[intent]
	if !ok {
		templates = genericTemplates
	}

	seedWords := make(map[string]bool)
	for _, category := range intentVocabulary {
		if category.Intent == intent {
			for _, seed := range category.Seeds {
				seedWords[seed] = true
			}
			break
		}
	}

	// Object terms in first-seen order, deduplicated.
	var objects []string
	seenObjects := make(map[string]bool)
	for _, kw := range keywords {
		var objWords []string
		for _, w := range tokenize(kw) {
			if !seedWords[w] && len(w) > 2 {
				objWords = append(objWords, w)
			}
		}
		if len(objWords) == 0 {
			continue
		}
		obj := strings.Join(objWords, " ")
		if !seenObjects[obj] {
			seenObjects[obj] = true
			objects = append(objects, obj)
		}
	}
	if len(objects) > maxQueries {
		objects = objects[:maxQueries]
	}

	var queries []string
	seenQueries := make(map[string]bool)
	for _, obj := range objects {
		for _, template := range templates {
			query := strings.ReplaceAll(template, "{obj}", obj)
			if seenQueries[query] {
				continue
			}
			seenQueries[query] = true
			queries = append(queries, query)
			if len(queries) >= maxQueries {
				return queries
			}
		}
	}
	return queries
}

// tokenize lowercases and splits on non-alphanumeric runes.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range tokenize(s) {
		set[w] = true
	}
	return set
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
