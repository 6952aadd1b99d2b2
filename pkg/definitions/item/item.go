package item

import "strings"

type Kind int32

const (
	Air Kind = iota
	LeatherBoots
	LeatherLeggings
	LeatherChestplate
	LeatherHelmet
	ChainmailBoots
	ChainmailLeggings
	ChainmailChestplate
	ChainmailHelmet
	IronBoots
	IronLeggings
	IronChestplate
	IronHelmet
	GoldBoots
	GoldLeggings
	GoldChestplate
	GoldHelmet
	DiamondBoots
	DiamondLeggings
	DiamondChestplate
	DiamondHelmet
	WoodSword
	StoneSword
	IronSword
	GoldSword
	DiamondSword
	Bow
	Arrow
	FishingRod
	GlassBottle
	Wool
	StoneAxe
	IronAxe
	StonePickaxe
	IronPickaxe
	DiamondPickaxe
	WoodHoe
	StoneHoe
	IronHoe
	GoldHoe
	DiamondHoe
	Fire
	TNT
	Grass
	Stone
	GoldenApple
	EnderPearl
	numKinds
)

var names = [...]string{
	Air:                 "air",
	LeatherBoots:        "leather_boots",
	LeatherLeggings:     "leather_leggings",
	LeatherChestplate:   "leather_chestplate",
	LeatherHelmet:       "leather_helmet",
	ChainmailBoots:      "chainmail_boots",
	ChainmailLeggings:   "chainmail_leggings",
	ChainmailChestplate: "chainmail_chestplate",
	ChainmailHelmet:     "chainmail_helmet",
	IronBoots:           "iron_boots",
	IronLeggings:        "iron_leggings",
	IronChestplate:      "iron_chestplate",
	IronHelmet:          "iron_helmet",
	GoldBoots:           "gold_boots",
	GoldLeggings:        "gold_leggings",
	GoldChestplate:      "gold_chestplate",
	GoldHelmet:          "gold_helmet",
	DiamondBoots:        "diamond_boots",
	DiamondLeggings:     "diamond_leggings",
	DiamondChestplate:   "diamond_chestplate",
	DiamondHelmet:       "diamond_helmet",
	WoodSword:           "wood_sword",
	StoneSword:          "stone_sword",
	IronSword:           "iron_sword",
	GoldSword:           "gold_sword",
	DiamondSword:        "diamond_sword",
	Bow:                 "bow",
	Arrow:               "arrow",
	FishingRod:          "fishing_rod",
	GlassBottle:         "glass_bottle",
	Wool:                "wool",
	StoneAxe:            "stone_axe",
	IronAxe:             "iron_axe",
	StonePickaxe:        "stone_pickaxe",
	IronPickaxe:         "iron_pickaxe",
	DiamondPickaxe:      "diamond_pickaxe",
	WoodHoe:             "wood_hoe",
	StoneHoe:            "stone_hoe",
	IronHoe:             "iron_hoe",
	GoldHoe:             "gold_hoe",
	DiamondHoe:          "diamond_hoe",
	Fire:                "fire",
	TNT:                 "tnt",
	Grass:               "grass",
	Stone:               "stone",
	GoldenApple:         "golden_apple",
	EnderPearl:          "ender_pearl",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return names[k]
}

func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// Parse looks up a kind by its lower-case name, e.g. "iron_sword".
func Parse(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range names {
		if n == name {
			return Kind(k), true
		}
	}
	return Air, false
}

// Stack is an amount of one item kind, as found in inventories and death drops.
type Stack struct {
	Kind   Kind
	Amount int
}

// DefaultDisabledDrops lists the standard kit items that should not drop when
// a player dies: armour, weapons, tools and wool.
func DefaultDisabledDrops() []Kind {
	return []Kind{
		LeatherBoots, LeatherLeggings, LeatherChestplate, LeatherHelmet,
		WoodSword, StoneSword,
		IronBoots, IronLeggings, IronChestplate, IronHelmet, IronSword,
		GoldBoots, GoldLeggings, GoldChestplate, GoldHelmet, GoldSword,
		Bow,
		DiamondBoots, DiamondLeggings, DiamondChestplate, DiamondHelmet, DiamondSword,
		Arrow, FishingRod, GlassBottle, Wool,
		ChainmailBoots, ChainmailLeggings, ChainmailChestplate, ChainmailHelmet,
		IronAxe, IronPickaxe, StonePickaxe, StoneAxe,
		WoodHoe, StoneHoe, GoldHoe, IronHoe, DiamondHoe, DiamondPickaxe,
	}
}
