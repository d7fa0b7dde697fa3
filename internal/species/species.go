package species

// Rarity tiers used by the gacha weight table.
const (
	Common    = 1
	Uncommon  = 2
	Rare      = 3
	Epic      = 4
	Legendary = 5
)

// Species is an immutable catalog entry for a pet kind.
type Species struct {
	ID             string
	Name           string
	Emoji          string
	Rarity         int
	Color          string
	SecondaryColor string
	Description    string
	Personality    string
	// Evolutions holds the display names for stage 2 and stage 3.
	Evolutions [2]string
}

// Catalog is the fixed species list: 10 common, 8 uncommon, 6 rare, 4 epic,
// 2 legendary.
var Catalog = []Species{
	{ID: "blob", Name: "Blobby", Emoji: "🟢", Rarity: Common, Color: "#98FB98", SecondaryColor: "#32CD32", Description: "A friendly blob that loves to bounce!", Personality: "playful", Evolutions: [2]string{"Blobert", "Blobzilla"}},
	{ID: "puff", Name: "Puffball", Emoji: "🔵", Rarity: Common, Color: "#87CEEB", SecondaryColor: "#4169E1", Description: "Fluffy and always happy!", Personality: "lazy", Evolutions: [2]string{"Puffster", "Cloudking"}},
	{ID: "dot", Name: "Dotty", Emoji: "🟡", Rarity: Common, Color: "#FFE4B5", SecondaryColor: "#FFA500", Description: "Small but full of energy!", Personality: "energetic", Evolutions: [2]string{"Dottie", "Sunspot"}},
	{ID: "slime", Name: "Goopy", Emoji: "🟣", Rarity: Common, Color: "#DDA0DD", SecondaryColor: "#9932CC", Description: "Leaves a sparkly trail everywhere!", Personality: "playful", Evolutions: [2]string{"Glooper", "Slimesire"}},
	{ID: "rock", Name: "Pebble", Emoji: "🪨", Rarity: Common, Color: "#A9A9A9", SecondaryColor: "#696969", Description: "Solid and dependable friend!", Personality: "lazy", Evolutions: [2]string{"Boulder", "Golem Jr"}},
	{ID: "leaf", Name: "Sprout", Emoji: "🌱", Rarity: Common, Color: "#90EE90", SecondaryColor: "#228B22", Description: "Grows a little every day!", Personality: "hungry", Evolutions: [2]string{"Sapling", "Treant"}},
	{ID: "drop", Name: "Dewdrop", Emoji: "💧", Rarity: Common, Color: "#ADD8E6", SecondaryColor: "#1E90FF", Description: "Fresh as morning dew!", Personality: "clean", Evolutions: [2]string{"Splash", "Tsunami"}},
	{ID: "spark", Name: "Zippy", Emoji: "⚡", Rarity: Common, Color: "#FFD700", SecondaryColor: "#FFA500", Description: "Always buzzing with energy!", Personality: "energetic", Evolutions: [2]string{"Zapper", "Thunderbolt"}},
	{ID: "cloud", Name: "Cumulus", Emoji: "☁️", Rarity: Common, Color: "#F0F8FF", SecondaryColor: "#B0C4DE", Description: "Floats wherever the wind takes it!", Personality: "sleepy", Evolutions: [2]string{"Nimbus", "Stormcloud"}},
	{ID: "star", Name: "Twinkle", Emoji: "⭐", Rarity: Common, Color: "#FFFACD", SecondaryColor: "#FFD700", Description: "Shines brightest at night!", Personality: "playful", Evolutions: [2]string{"Starlet", "Supernova"}},

	{ID: "fox", Name: "Fox Kit", Emoji: "🦊", Rarity: Uncommon, Color: "#FF7F50", SecondaryColor: "#FF4500", Description: "Clever and curious!", Personality: "playful", Evolutions: [2]string{"Foxfire", "Ninetail"}},
	{ID: "bunny", Name: "Bunbun", Emoji: "🐰", Rarity: Uncommon, Color: "#FFB6C1", SecondaryColor: "#FF69B4", Description: "Loves carrots and cuddles!", Personality: "hungry", Evolutions: [2]string{"Hopster", "Moonrabbit"}},
	{ID: "chick", Name: "Chicky", Emoji: "🐤", Rarity: Uncommon, Color: "#FFD700", SecondaryColor: "#FFA500", Description: "Cheerful chirps all day!", Personality: "energetic", Evolutions: [2]string{"Roostlet", "Goldhen"}},
	{ID: "puppy", Name: "Wooflet", Emoji: "🐕", Rarity: Uncommon, Color: "#DEB887", SecondaryColor: "#8B4513", Description: "Your most loyal companion!", Personality: "playful", Evolutions: [2]string{"Goodboy", "Cerberus Jr"}},
	{ID: "kitten", Name: "Mewsy", Emoji: "🐱", Rarity: Uncommon, Color: "#FFE4E1", SecondaryColor: "#FFA07A", Description: "Purrs like a tiny motor!", Personality: "sleepy", Evolutions: [2]string{"Whiskers", "Catmancer"}},
	{ID: "snowman", Name: "Frosty", Emoji: "⛄", Rarity: Uncommon, Color: "#FFFFFF", SecondaryColor: "#E0FFFF", Description: "Never melts!", Personality: "clean", Evolutions: [2]string{"Snowpal", "Blizzard"}},
	{ID: "mushroom", Name: "Shroomy", Emoji: "🍄", Rarity: Uncommon, Color: "#FF6347", SecondaryColor: "#8B0000", Description: "Loves dark cozy places!", Personality: "sleepy", Evolutions: [2]string{"Funguy", "Sporeling"}},
	{ID: "bee", Name: "Buzzy", Emoji: "🐝", Rarity: Uncommon, Color: "#FFD700", SecondaryColor: "#000000", Description: "Busy busy busy!", Personality: "energetic", Evolutions: [2]string{"Honeybee", "Queenbee"}},

	{ID: "dragon", Name: "Drake Jr", Emoji: "🐲", Rarity: Rare, Color: "#9370DB", SecondaryColor: "#4B0082", Description: "Tiny but mighty!", Personality: "energetic", Evolutions: [2]string{"Wyrm", "Elder Dragon"}},
	{ID: "spirit", Name: "Spirit Cat", Emoji: "👻", Rarity: Rare, Color: "#E6E6FA", SecondaryColor: "#9370DB", Description: "Mysterious and magical!", Personality: "playful", Evolutions: [2]string{"Phantom", "Spectre Lord"}},
	{ID: "phoenix", Name: "Ember", Emoji: "🔥", Rarity: Rare, Color: "#FF4500", SecondaryColor: "#FFD700", Description: "Born from flames!", Personality: "energetic", Evolutions: [2]string{"Blaze", "Phoenix"}},
	{ID: "reindeer", Name: "Rudolph Jr", Emoji: "🦌", Rarity: Rare, Color: "#8B4513", SecondaryColor: "#FF0000", Description: "Nose glows on Christmas!", Personality: "playful", Evolutions: [2]string{"Dasher", "Prancer"}},
	{ID: "unicorn", Name: "Sparkle", Emoji: "🦄", Rarity: Rare, Color: "#FF69B4", SecondaryColor: "#9370DB", Description: "Magical and majestic!", Personality: "clean", Evolutions: [2]string{"Hornstar", "Alicorn"}},
	{ID: "robot", Name: "Beepbot", Emoji: "🤖", Rarity: Rare, Color: "#C0C0C0", SecondaryColor: "#4169E1", Description: "Beep boop, friend detected!", Personality: "playful", Evolutions: [2]string{"Mech-Pal", "Ultron Jr"}},

	{ID: "void", Name: "Void Walker", Emoji: "🌑", Rarity: Epic, Color: "#4B0082", SecondaryColor: "#000000", Description: "From the space between stars!", Personality: "sleepy", Evolutions: [2]string{"Darkstar", "Void Lord"}},
	{ID: "crystal", Name: "Crystal Guard", Emoji: "💎", Rarity: Epic, Color: "#00CED1", SecondaryColor: "#E0FFFF", Description: "Shimmers with power!", Personality: "clean", Evolutions: [2]string{"Gemkeeper", "Diamond King"}},
	{ID: "angel", Name: "Halo", Emoji: "👼", Rarity: Epic, Color: "#FFFAF0", SecondaryColor: "#FFD700", Description: "Pure light and kindness!", Personality: "clean", Evolutions: [2]string{"Seraph", "Archangel"}},
	{ID: "demon", Name: "Implet", Emoji: "😈", Rarity: Epic, Color: "#8B0000", SecondaryColor: "#FF4500", Description: "Mischievous but loyal!", Personality: "playful", Evolutions: [2]string{"Fiend", "Archdemon"}},

	{ID: "cosmic", Name: "Cosmic Whale", Emoji: "🐋", Rarity: Legendary, Color: "#FF00FF", SecondaryColor: "#4B0082", Description: "Swims through galaxies!", Personality: "lazy", Evolutions: [2]string{"Star Whale", "Galaxy Leviathan"}},
	{ID: "ancient", Name: "Ancient One", Emoji: "🗿", Rarity: Legendary, Color: "#DAA520", SecondaryColor: "#8B4513", Description: "Older than time itself!", Personality: "sleepy", Evolutions: [2]string{"Elder Stone", "Eternity"}},
}

// StarterIDs are the species offered on first launch.
var StarterIDs = []string{"fox", "blob", "chick", "reindeer"}

// ByID looks up a species by id.
func ByID(id string) (Species, bool) {
	for _, s := range Catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Species{}, false
}

// ByRarity returns all species of the given rarity tier.
func ByRarity(rarity int) []Species {
	var out []Species
	for _, s := range Catalog {
		if s.Rarity == rarity {
			out = append(out, s)
		}
	}
	return out
}

// EvolutionName returns the display name for a stage (1-3). Stage 1 is the
// base name.
func (s Species) EvolutionName(stage int) string {
	switch stage {
	case 2:
		return s.Evolutions[0]
	case 3:
		return s.Evolutions[1]
	default:
		return s.Name
	}
}

// RarityName returns the display label for a rarity tier.
func RarityName(rarity int) string {
	switch rarity {
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}
