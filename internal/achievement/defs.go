package achievement

// Category groups achievements for the UI.
type Category string

const (
	CategoryCollection  Category = "collection"
	CategoryCare        Category = "care"
	CategoryProgression Category = "progression"
	CategoryMastery     Category = "mastery"
)

// Definition is a static achievement: reach Requirement, earn Reward coins.
type Definition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Reward      int
	Requirement int
	Category    Category
}

var Definitions = []Definition{
	{ID: "first_friend", Name: "First Friend", Description: "Adopt your first pet", Icon: "🐣", Reward: 50, Requirement: 1, Category: CategoryCollection},
	{ID: "collector", Name: "Collector", Description: "Own 5 pets", Icon: "📦", Reward: 100, Requirement: 5, Category: CategoryCollection},
	{ID: "rare_find", Name: "Rare Find", Description: "Get a rare pet", Icon: "💎", Reward: 150, Requirement: 1, Category: CategoryCollection},
	{ID: "legendary_hunter", Name: "Legendary Hunter", Description: "Get a legendary pet", Icon: "🌟", Reward: 500, Requirement: 1, Category: CategoryCollection},
	{ID: "caring_soul", Name: "Caring Soul", Description: "Perform 100 care actions", Icon: "💖", Reward: 200, Requirement: 100, Category: CategoryCare},
	{ID: "dedicated", Name: "Dedicated", Description: "Login 7 days in a row", Icon: "📅", Reward: 300, Requirement: 7, Category: CategoryCare},
	{ID: "evolver", Name: "Evolver", Description: "Evolve a pet", Icon: "🦋", Reward: 250, Requirement: 1, Category: CategoryProgression},
	{ID: "master", Name: "Master", Description: "Max level a pet (Level 50)", Icon: "👑", Reward: 1000, Requirement: 1, Category: CategoryProgression},
	{ID: "gamer", Name: "Gamer", Description: "Win 10 mini-games", Icon: "🎮", Reward: 200, Requirement: 10, Category: CategoryMastery},
	{ID: "wealthy", Name: "Wealthy", Description: "Have 5000 coins at once", Icon: "💰", Reward: 100, Requirement: 5000, Category: CategoryMastery},
}

// DefinitionByID looks up a static achievement definition.
func DefinitionByID(id string) (Definition, bool) {
	for _, d := range Definitions {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
