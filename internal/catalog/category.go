package catalog

import (
	"sort"
	"strings"
)

// Category identifies a product type. The set is closed; General is the
// fallback for anything the classifier does not recognise.
type Category string

// Department groups categories that share photography conventions.
type Department string

const (
	DeptApparel    Department = "apparel"
	DeptFootwear   Department = "footwear"
	DeptJewelry    Department = "jewelry"
	DeptAccessory  Department = "accessories"
	DeptHomeDecor  Department = "home_decor"
	DeptKitchen    Department = "kitchen"
	DeptTextile    Department = "textiles"
	DeptCraft      Department = "craft"
	DeptWellness   Department = "wellness"
	DeptStationery Department = "stationery"
	DeptFurniture  Department = "furniture"
	DeptFood       Department = "food"
	DeptGeneral    Department = "general"
)

const (
	General Category = "general"

	// apparel
	Hoodie   Category = "hoodie"
	TShirt   Category = "tshirt"
	Shirt    Category = "shirt"
	Kurta    Category = "kurta"
	Saree    Category = "saree"
	Lehenga  Category = "lehenga"
	Dress    Category = "dress"
	Skirt    Category = "skirt"
	Jacket   Category = "jacket"
	Sweater  Category = "sweater"
	Jeans    Category = "jeans"
	Trousers Category = "trousers"
	Shawl    Category = "shawl"
	Scarf    Category = "scarf"
	Dupatta  Category = "dupatta"
	Cap      Category = "cap"

	// footwear
	Sneakers Category = "sneakers"
	Sandals  Category = "sandals"
	Boots    Category = "boots"
	Juttis   Category = "juttis"

	// jewelry
	Necklace Category = "necklace"
	Earrings Category = "earrings"
	Bracelet Category = "bracelet"
	Bangles  Category = "bangles"
	Ring     Category = "ring"
	Anklet   Category = "anklet"
	Pendant  Category = "pendant"
	NoseRing Category = "nose_ring"
	Brooch   Category = "brooch"
	Jewelry  Category = "jewelry"

	// accessories
	Handbag    Category = "handbag"
	ToteBag    Category = "tote_bag"
	Clutch     Category = "clutch"
	Wallet     Category = "wallet"
	Belt       Category = "belt"
	Watch      Category = "watch"
	Sunglasses Category = "sunglasses"
	Backpack   Category = "backpack"

	// home decor
	Vase      Category = "vase"
	Pottery   Category = "pottery"
	Planter   Category = "planter"
	Candle    Category = "candle"
	Lamp      Category = "lamp"
	WallArt   Category = "wall_art"
	Painting  Category = "painting"
	Mirror    Category = "mirror"
	Clock     Category = "clock"
	Cushion   Category = "cushion"
	Rug       Category = "rug"
	Tapestry  Category = "tapestry"
	Basket    Category = "basket"
	Figurine  Category = "figurine"
	Sculpture Category = "sculpture"

	// kitchen and dining
	Mug      Category = "mug"
	Plate    Category = "plate"
	Bowl     Category = "bowl"
	Teapot   Category = "teapot"
	Tray     Category = "tray"
	Cutlery  Category = "cutlery"
	Coasters Category = "coasters"

	// textiles
	Quilt       Category = "quilt"
	Embroidery  Category = "embroidery"
	Bedsheet    Category = "bedsheet"
	TableRunner Category = "table_runner"

	// craft
	WoodenBox  Category = "wooden_box"
	BrassDecor Category = "brass_decor"
	WindChime  Category = "wind_chime"
	Toy        Category = "toy"
	Doll       Category = "doll"

	// wellness
	Soap         Category = "soap"
	Perfume      Category = "perfume"
	Skincare     Category = "skincare"
	Incense      Category = "incense"
	EssentialOil Category = "essential_oil"

	// stationery
	Notebook     Category = "notebook"
	GreetingCard Category = "greeting_card"

	// furniture
	Chair Category = "chair"
	Table Category = "table"
	Stool Category = "stool"

	// food
	Tea    Category = "tea"
	Spices Category = "spices"
	Sweets Category = "sweets"
)

var departments = map[Category]Department{
	General: DeptGeneral,

	Hoodie: DeptApparel, TShirt: DeptApparel, Shirt: DeptApparel, Kurta: DeptApparel,
	Saree: DeptApparel, Lehenga: DeptApparel, Dress: DeptApparel, Skirt: DeptApparel,
	Jacket: DeptApparel, Sweater: DeptApparel, Jeans: DeptApparel, Trousers: DeptApparel,
	Shawl: DeptApparel, Scarf: DeptApparel, Dupatta: DeptApparel, Cap: DeptApparel,

	Sneakers: DeptFootwear, Sandals: DeptFootwear, Boots: DeptFootwear, Juttis: DeptFootwear,

	Necklace: DeptJewelry, Earrings: DeptJewelry, Bracelet: DeptJewelry, Bangles: DeptJewelry,
	Ring: DeptJewelry, Anklet: DeptJewelry, Pendant: DeptJewelry, NoseRing: DeptJewelry,
	Brooch: DeptJewelry, Jewelry: DeptJewelry,

	Handbag: DeptAccessory, ToteBag: DeptAccessory, Clutch: DeptAccessory, Wallet: DeptAccessory,
	Belt: DeptAccessory, Watch: DeptAccessory, Sunglasses: DeptAccessory, Backpack: DeptAccessory,

	Vase: DeptHomeDecor, Pottery: DeptHomeDecor, Planter: DeptHomeDecor, Candle: DeptHomeDecor,
	Lamp: DeptHomeDecor, WallArt: DeptHomeDecor, Painting: DeptHomeDecor, Mirror: DeptHomeDecor,
	Clock: DeptHomeDecor, Cushion: DeptHomeDecor, Rug: DeptHomeDecor, Tapestry: DeptHomeDecor,
	Basket: DeptHomeDecor, Figurine: DeptHomeDecor, Sculpture: DeptHomeDecor,

	Mug: DeptKitchen, Plate: DeptKitchen, Bowl: DeptKitchen, Teapot: DeptKitchen,
	Tray: DeptKitchen, Cutlery: DeptKitchen, Coasters: DeptKitchen,

	Quilt: DeptTextile, Embroidery: DeptTextile, Bedsheet: DeptTextile, TableRunner: DeptTextile,

	WoodenBox: DeptCraft, BrassDecor: DeptCraft, WindChime: DeptCraft, Toy: DeptCraft, Doll: DeptCraft,

	Soap: DeptWellness, Perfume: DeptWellness, Skincare: DeptWellness, Incense: DeptWellness,
	EssentialOil: DeptWellness,

	Notebook: DeptStationery, GreetingCard: DeptStationery,

	Chair: DeptFurniture, Table: DeptFurniture, Stool: DeptFurniture,

	Tea: DeptFood, Spices: DeptFood, Sweets: DeptFood,
}

// Department returns the group c belongs to. Unknown categories report
// DeptGeneral.
func (c Category) Department() Department {
	if d, ok := departments[c]; ok {
		return d
	}
	return DeptGeneral
}

// Valid reports whether c is part of the taxonomy.
func (c Category) Valid() bool {
	_, ok := departments[c]
	return ok
}

// Label is a human readable form of the identifier ("tote_bag" -> "tote bag").
func (c Category) Label() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// ParseCategory maps an identifier onto the taxonomy, returning General for
// anything unknown.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c
	}
	return General
}

// All returns every category, sorted, including General.
func All() []Category {
	out := make([]Category, 0, len(departments))
	for c := range departments {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
