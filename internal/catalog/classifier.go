package catalog

import (
	"regexp"
	"strings"
)

// Rule maps a case-insensitive, word-bounded pattern to a category.
type Rule struct {
	Category Category
	Pattern  *regexp.Regexp
}

// Classifier assigns a category to free text. Rules are evaluated in order
// and the first match wins; there is no scoring. More specific rules must
// therefore come before broader ones that could match the same text.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier over an ordered rule list.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Classify returns the category of the first matching rule, or General.
func (c *Classifier) Classify(text string) Category {
	if r, ok := c.Match(text); ok {
		return r.Category
	}
	return General
}

// Match returns the first rule matching text.
func (c *Classifier) Match(text string) (Rule, bool) {
	if c == nil {
		return Rule{}, false
	}
	normalized := normalizeText(text)
	if normalized == "" {
		return Rule{}, false
	}
	for _, r := range c.rules {
		if r.Pattern.MatchString(normalized) {
			return r, true
		}
	}
	return Rule{}, false
}

// Rules returns a copy of the ordered rule list.
func (c *Classifier) Rules() []Rule {
	if c == nil {
		return nil
	}
	return append([]Rule(nil), c.rules...)
}

var defaultClassifier = NewClassifier(defaultRules)

// Classify runs the built-in rule list.
func Classify(text string) Category {
	return defaultClassifier.Classify(text)
}

// Default returns the built-in classifier.
func Default() *Classifier {
	return defaultClassifier
}

// Underscores count as word characters for \b, so file names such as
// "silver_anklet.png" need them replaced before matching.
var separatorReplacer = strings.NewReplacer("_", " ", "+", " ", "%20", " ")

func normalizeText(text string) string {
	return strings.TrimSpace(separatorReplacer.Replace(text))
}

func rule(c Category, terms ...string) Rule {
	return Rule{
		Category: c,
		Pattern:  regexp.MustCompile(`(?i)\b(?:` + strings.Join(terms, "|") + `)\b`),
	}
}

// defaultRules is order sensitive. Compound names ("table runner", "pendant
// lamp", "jewelry box") sit above the single words they contain, and every
// catch-all sits below the specific types of its department.
var defaultRules = []Rule{
	rule(TableRunner, `table ?runners?`),
	rule(Teapot, `tea ?pots?`, `kettles?`, `tea ?sets?`),
	rule(Coasters, `coasters?`),
	rule(WoodenBox, `jewel(?:le)?ry box(?:es)?`, `trinket box(?:es)?`, `wooden box(?:es)?`, `keepsake box(?:es)?`, `storage box(?:es)?`),
	rule(WindChime, `wind ?chimes?`),
	rule(Candle, `candles?`, `candle holders?`, `tea ?lights?`),
	rule(Lamp, `pendant lamps?`, `pendant lights?`, `lamps?`, `lanterns?`, `lamp ?shades?`, `diyas?`),
	rule(Clock, `wall clocks?`, `clocks?`),
	rule(Watch, `wrist ?watch(?:es)?`, `smart ?watch(?:es)?`, `watch(?:es)?`),

	rule(NoseRing, `nose ?rings?`, `nose ?pins?`, `nath`),
	rule(Earrings, `earrings?`, `ear ?rings?`, `ear ?studs?`, `ear ?cuffs?`, `jhumk(?:a|as|i|is)`, `danglers?`),
	rule(Necklace, `necklaces?`, `neck ?pieces?`, `chokers?`, `mangalsutras?`, `lockets?`),
	rule(Pendant, `pendants?`),
	rule(Bangles, `bangles?`, `kadas?`, `kangans?`),
	rule(Bracelet, `bracelets?`, `cuffs?`),
	rule(Anklet, `anklets?`, `payals?`),
	rule(Ring, `rings?`, `signet`),
	rule(Brooch, `brooch(?:es)?`, `lapel pins?`),
	rule(Jewelry, `jewel(?:le)?ry`, `jewels?`, `ornaments?`, `kundan`, `polki`),

	rule(ToteBag, `totes?`, `tote bags?`, `jholas?`, `canvas bags?`, `shopping bags?`),
	rule(Clutch, `clutch(?:es)?`, `potlis?`, `evening bags?`),
	rule(Backpack, `backpacks?`, `rucksacks?`, `school bags?`),
	rule(Wallet, `wallets?`, `purses?`, `card holders?`, `coin pouch(?:es)?`),
	rule(Handbag, `hand ?bags?`, `sling bags?`, `shoulder bags?`, `satchels?`, `bags?`),
	rule(Belt, `belts?`),
	rule(Sunglasses, `sun ?glasses`, `shades`, `eyewear`, `spectacles`),

	rule(Hoodie, `hoodies?`, `hoody`, `sweatshirts?`, `pullovers?`),
	rule(TShirt, `t-shirts?`, `t shirts?`, `tshirts?`, `tees?`),
	rule(Sweater, `sweaters?`, `cardigans?`, `jumpers?`, `knitwear`),
	rule(Jacket, `jackets?`, `blazers?`, `coats?`, `bombers?`),
	rule(Kurta, `kurtas?`, `kurtis?`, `sherwanis?`, `salwar`, `kameez`),
	rule(Lehenga, `lehengas?`, `ghagras?`, `chaniya cholis?`, `cholis?`),
	rule(Saree, `sarees?`, `saris?`),
	rule(Dupatta, `dupattas?`, `chunris?`, `odhnis?`),
	rule(Shawl, `shawls?`, `pashminas?`, `wraps?`),
	rule(Scarf, `scarf`, `scarves`, `stoles?`, `bandanas?`, `mufflers?`),
	rule(Dress, `dress(?:es)?`, `gowns?`, `frocks?`, `anarkalis?`),
	rule(Skirt, `skirts?`),
	rule(Jeans, `jeans`, `denims?`),
	rule(Trousers, `trousers?`, `pants`, `palazzos?`, `joggers?`, `chinos?`, `shorts`),
	rule(Shirt, `shirts?`, `blouses?`, `polos?`, `tunics?`),
	rule(Cap, `caps?`, `hats?`, `beanies?`, `turbans?`, `topis?`),

	rule(Juttis, `juttis?`, `jootis?`, `mojaris?`, `kolhapuris?`),
	rule(Sneakers, `sneakers?`, `trainers?`, `running shoes?`, `sports shoes?`),
	rule(Sandals, `sandals?`, `slippers?`, `flip ?flops?`, `chappals?`, `slides`),
	rule(Boots, `boots?`, `booties`),
	rule(Sneakers, `shoes?`, `footwear`, `loafers?`),

	rule(Mug, `mugs?`, `cups?`, `tumblers?`, `kulhads?`),
	rule(Plate, `plates?`, `platters?`, `thalis?`, `dinner ?sets?`),
	rule(Bowl, `bowls?`),
	rule(Tray, `trays?`),
	rule(Cutlery, `cutlery`, `spoons?`, `forks?`, `ladles?`, `flatware`),

	rule(Vase, `vases?`, `urns?`),
	rule(Planter, `planters?`, `plant ?pots?`, `flower ?pots?`),
	rule(Painting, `paintings?`, `canvas`, `madhubani`, `warli`, `pattachitra`, `gond art`, `artworks?`),
	rule(Tapestry, `tapestr(?:y|ies)`),
	rule(WallArt, `wall art`, `wall hangings?`, `wall decor`, `posters?`, `prints?`, `frames?`),
	rule(Mirror, `mirrors?`),
	rule(Cushion, `cushions?`, `cushion covers?`, `pillows?`, `pillow covers?`),
	rule(Rug, `rugs?`, `carpets?`, `dhurr?ies`, `durr?ies`, `dhurr?ie`, `mats?`, `door ?mats?`),
	rule(Basket, `baskets?`, `hampers?`),
	rule(Figurine, `figurines?`, `idols?`, `statuettes?`, `showpieces?`),
	rule(Sculpture, `sculptures?`, `statues?`, `busts?`),
	rule(BrassDecor, `brass`, `bronze`, `copper`, `dhokra`, `bidri`, `metal ?craft`),
	rule(Pottery, `pottery`, `ceramics?`, `terracotta`, `earthenware`, `stoneware`, `clay`, `pots?`),

	rule(Quilt, `quilts?`, `razais?`, `comforters?`, `blankets?`, `throws?`),
	rule(Embroidery, `embroider(?:y|ed)`, `phulkari`, `chikankari`, `kantha`, `hoop art`),
	rule(Bedsheet, `bed ?sheets?`, `bed ?spreads?`, `bed ?covers?`, `linens?`),

	rule(Doll, `dolls?`, `puppets?`, `kathputlis?`),
	rule(Toy, `toys?`, `channapatna`, `rattles?`, `spinning tops?`),

	rule(Soap, `soaps?`, `body wash`),
	rule(Perfume, `perfumes?`, `attars?`, `ittars?`, `fragrances?`, `colognes?`),
	rule(EssentialOil, `essential oils?`, `aroma(?:therapy)? oils?`, `diffuser oils?`),
	rule(Skincare, `skin ?care`, `serums?`, `moisturi[sz]ers?`, `lotions?`, `ubtans?`, `lip balms?`, `face (?:packs?|masks?|creams?)`, `creams?`),
	rule(Incense, `incense`, `agarbattis?`, `dhoop`, `sambrani`),

	rule(GreetingCard, `greeting cards?`, `cards?`, `invitations?`),
	rule(Notebook, `notebooks?`, `journals?`, `diar(?:y|ies)`, `planners?`, `sketch ?books?`),

	rule(Chair, `chairs?`, `arm ?chairs?`, `benches`, `bench`),
	rule(Stool, `stools?`, `ottomans?`, `poufs?`),
	rule(Table, `tables?`, `desks?`),

	rule(Tea, `teas?`, `chai`),
	rule(Spices, `spices?`, `masalas?`, `saffron`, `pickles?`, `achaar`, `turmeric`),
	rule(Sweets, `sweets?`, `mithai`, `laddoos?`, `chocolates?`, `cand(?:y|ies)`, `cookies`, `snacks?`),
}
