package photoshoot

import (
	c "github.com/Ashis-Mishra07/genAi-sub000/internal/catalog"
)

// table is read-only after package initialisation.
var table = map[c.Category]conceptSet{
	c.General: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "friendly everyday customer in natural clothing",
			Setting:        "bright lived-in home interior with soft daylight",
			Poses:          "holding or using the product naturally, relaxed candid moments",
			BasePrompt:     "lifestyle product photograph of a handcrafted artisan product in everyday use",
			Scenario:       "set in a warm, tidy home with natural props that hint at daily use",
			StyleModifiers: "authentic, warm tones, soft shadows, inviting atmosphere",
			TechnicalSpec:  "50mm lens, f/2.8, natural window light, shallow depth of field",
		},
		c.Studio: {
			ModelType:      "no model, product as hero or hand model for scale",
			Setting:        "seamless studio backdrop in a neutral tone",
			Poses:          "front, three-quarter and detail angles of the product",
			BasePrompt:     "clean studio product photograph of a handcrafted artisan product",
			Scenario:       "isolated on a seamless studio sweep with a subtle reflection",
			StyleModifiers: "minimal, crisp edges, true-to-life colours, catalogue ready",
			TechnicalSpec:  "100mm macro lens, f/8, softbox key light with fill, pure background",
		},
		c.Editorial: {
			ModelType:      "fashion-forward model with confident expression",
			Setting:        "architectural location with strong lines and textures",
			Poses:          "dynamic editorial poses interacting with the product",
			BasePrompt:     "editorial magazine photograph featuring a handcrafted artisan product",
			Scenario:       "styled as a magazine spread with bold composition and negative space",
			StyleModifiers: "high fashion, directional lighting, rich contrast",
			TechnicalSpec:  "85mm lens, f/2, hard key light with controlled shadows",
		},
		c.Commercial: {
			ModelType:      "approachable brand ambassador",
			Setting:        "bright commercial set with brand-friendly colours",
			Poses:          "presenting the product toward camera, smiling",
			BasePrompt:     "commercial advertising photograph of a handcrafted artisan product",
			Scenario:       "advertising layout with clear focus on the product benefits",
			StyleModifiers: "polished, vibrant, high key, conversion focused",
			TechnicalSpec:  "35mm lens, f/5.6, even high-key lighting, sharp throughout",
		},
		c.Artistic: {
			ModelType:      "artist or maker, hands in frame",
			Setting:        "creative workshop with raw materials and tools",
			Poses:          "crafting, shaping or finishing the product",
			BasePrompt:     "artistic fine-art photograph of a handcrafted artisan product",
			Scenario:       "surrounded by the materials and tools used to make it",
			StyleModifiers: "painterly light, textured surfaces, expressive colour",
			TechnicalSpec:  "35mm lens, f/2.8, single directional light, low key",
		},
		c.Elegant: {
			ModelType:      "graceful model with refined styling",
			Setting:        "luxurious interior with marble and velvet textures",
			Poses:          "poised, slow, refined gestures",
			BasePrompt:     "elegant luxury photograph of a handcrafted artisan product",
			Scenario:       "displayed in an upscale boutique setting",
			StyleModifiers: "sophisticated, muted palette, soft glow, premium feel",
			TechnicalSpec:  "85mm lens, f/2.2, diffused key light with rim light",
		},
		c.Vintage: {
			ModelType:      "model in retro-inspired styling",
			Setting:        "heritage room with antique furniture",
			Poses:          "nostalgic candid poses",
			BasePrompt:     "vintage style photograph of a handcrafted artisan product",
			Scenario:       "placed among antique props and aged textures",
			StyleModifiers: "film grain, faded warm tones, nostalgic mood",
			TechnicalSpec:  "50mm lens, f/2, tungsten light, subtle vignette",
		},
		c.Modern: {
			ModelType:      "contemporary urban model",
			Setting:        "minimal modern apartment with clean geometry",
			Poses:          "casual confident poses with the product",
			BasePrompt:     "modern minimalist photograph of a handcrafted artisan product",
			Scenario:       "arranged on clean surfaces with plenty of negative space",
			StyleModifiers: "minimal, monochrome accents, crisp and airy",
			TechnicalSpec:  "35mm lens, f/4, large soft light source, clean highlights",
		},
		c.Cultural: {
			ModelType:      "model in traditional regional attire",
			Setting:        "heritage courtyard or artisan village",
			Poses:          "celebratory poses rooted in local tradition",
			BasePrompt:     "cultural heritage photograph of a handcrafted artisan product",
			Scenario:       "framed by traditional architecture and festive details",
			StyleModifiers: "rich traditional colours, warm golden light, storytelling",
			TechnicalSpec:  "50mm lens, f/2.8, golden hour sunlight, gentle fill",
		},
	}},

	c.Necklace: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "jewelry model with an elegant neckline",
			Setting:        "sunlit cafe terrace",
			Poses:          "three-quarter portrait, hand lightly touching the necklace",
			BasePrompt:     "lifestyle photograph of a handcrafted necklace worn by a model",
			Scenario:       "candid afternoon moment with soft background bokeh",
			StyleModifiers: "natural skin tones, delicate highlights on the metal and stones",
			TechnicalSpec:  "85mm lens, f/1.8, natural backlight with reflector fill",
		},
		c.Studio: {
			ModelType:      "professional jewelry model, neck and collarbone framed",
			Setting:        "dark velvet studio backdrop",
			Poses:          "close-up bust shot, chin slightly raised to reveal the necklace",
			BasePrompt:     "high-end studio photograph of a handcrafted necklace",
			Scenario:       "studio setup with controlled lighting that makes every stone sparkle",
			StyleModifiers: "luxurious, sharp detail, specular highlights, rich contrast",
			TechnicalSpec:  "100mm macro lens, f/8, strip softboxes, black flags for contrast",
		},
		c.Editorial: {
			ModelType:      "editorial jewelry model with bold makeup",
			Setting:        "sculptural set with draped fabric",
			Poses:          "angular editorial poses framing the necklace",
			BasePrompt:     "editorial fashion photograph of a statement necklace",
			Scenario:       "magazine cover composition with the necklace as focal point",
			StyleModifiers: "high fashion, dramatic shadows, saturated accents",
			TechnicalSpec:  "70-200mm lens at 135mm, f/4, beauty dish key light",
		},
		c.Elegant: {
			ModelType:      "graceful jewelry model in evening wear",
			Setting:        "palatial hall with chandeliers",
			Poses:          "poised profile pose, hair swept to one side",
			BasePrompt:     "elegant luxury photograph of a handcrafted necklace",
			Scenario:       "evening gala atmosphere with warm ambient glow",
			StyleModifiers: "opulent, soft glow, champagne and gold palette",
			TechnicalSpec:  "85mm lens, f/2, warm key light with hair light",
		},
		c.Cultural: {
			ModelType:      "jewelry model in bridal traditional attire",
			Setting:        "heritage haveli courtyard with marigold decor",
			Poses:          "bridal portrait, hands in mehndi resting near the necklace",
			BasePrompt:     "traditional bridal photograph of a handcrafted necklace",
			Scenario:       "festive wedding celebration with cultural ornaments",
			StyleModifiers: "rich reds and golds, ornate detail, celebratory mood",
			TechnicalSpec:  "85mm lens, f/2.2, golden hour light, warm reflector",
		},
	}},

	c.Earrings: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "jewelry model with hair tucked behind the ear",
			Setting:        "garden in soft morning light",
			Poses:          "side profile and over-the-shoulder glance",
			BasePrompt:     "lifestyle photograph of handcrafted earrings worn by a model",
			Scenario:       "relaxed outdoor moment with greenery in the background",
			StyleModifiers: "fresh, airy, natural glow on the earrings",
			TechnicalSpec:  "100mm lens, f/2.8, open shade, gentle reflector",
		},
		c.Studio: {
			ModelType:      "no model, earrings on a display stand",
			Setting:        "white acrylic studio surface",
			Poses:          "pair arranged symmetrically, front and side views",
			BasePrompt:     "studio product photograph of handcrafted earrings",
			Scenario:       "studio macro setup highlighting craftsmanship",
			StyleModifiers: "clean, precise, true metal colour",
			TechnicalSpec:  "100mm macro lens, f/11, focus stacked, tent lighting",
		},
		c.Elegant: {
			ModelType:      "elegant jewelry model with an updo",
			Setting:        "candlelit dining room",
			Poses:          "three-quarter portrait, head tilted to show the drop",
			BasePrompt:     "elegant photograph of handcrafted statement earrings",
			Scenario:       "intimate evening setting",
			StyleModifiers: "warm glow, refined, luxurious",
			TechnicalSpec:  "85mm lens, f/2, warm practical lights with soft key",
		},
	}},

	c.Bangles: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "jewelry hand model with stacked bangles",
			Setting:        "sunny balcony with potted plants",
			Poses:          "wrist raised, bangles catching the light",
			BasePrompt:     "lifestyle photograph of handcrafted bangles on the wrist",
			Scenario:       "everyday moment pouring tea or arranging flowers",
			StyleModifiers: "vibrant colours, natural light, joyful",
			TechnicalSpec:  "60mm macro lens, f/4, daylight with bounce",
		},
		c.Cultural: {
			ModelType:      "jewelry model in festive attire with mehndi",
			Setting:        "festival courtyard with diyas",
			Poses:          "hands folded in greeting, bangles in focus",
			BasePrompt:     "festive cultural photograph of handcrafted bangles",
			Scenario:       "wedding or festival celebration",
			StyleModifiers: "rich jewel tones, warm glow, ornate",
			TechnicalSpec:  "85mm lens, f/2.8, warm practical light with fill",
		},
	}},

	c.Ring: {fallback: c.Studio, styles: map[c.Style]Concept{
		c.Studio: {
			ModelType:      "no model, ring on a reflective plinth",
			Setting:        "black glass studio surface",
			Poses:          "ring upright at a slight angle, band and setting visible",
			BasePrompt:     "studio macro photograph of a handcrafted ring",
			Scenario:       "studio setup with precise reflections on the band",
			StyleModifiers: "luxurious, crisp sparkle, deep blacks",
			TechnicalSpec:  "100mm macro lens, f/16, focus stacked, strip lights",
		},
		c.Lifestyle: {
			ModelType:      "jewelry hand model with natural manicure",
			Setting:        "cosy living room",
			Poses:          "hand resting on a book or coffee cup",
			BasePrompt:     "lifestyle photograph of a handcrafted ring worn on the hand",
			Scenario:       "quiet everyday moment",
			StyleModifiers: "soft, warm, intimate",
			TechnicalSpec:  "60mm macro lens, f/2.8, window light",
		},
	}},

	c.Jewelry: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "jewelry model with layered pieces",
			Setting:        "boutique dressing room",
			Poses:          "getting ready, adjusting jewelry in a mirror",
			BasePrompt:     "lifestyle photograph of handcrafted jewelry",
			Scenario:       "getting ready for an evening out",
			StyleModifiers: "warm, glamorous, soft sparkle",
			TechnicalSpec:  "85mm lens, f/2, vanity lights with soft fill",
		},
		c.Studio: {
			ModelType:      "no model, jewelry flat lay",
			Setting:        "linen textured studio surface",
			Poses:          "pieces arranged in an overhead flat lay",
			BasePrompt:     "studio flat lay photograph of handcrafted jewelry",
			Scenario:       "styled overhead studio composition",
			StyleModifiers: "clean, balanced, detailed",
			TechnicalSpec:  "50mm macro lens overhead, f/8, large diffused light",
		},
	}},

	c.Hoodie: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "young adult streetwear model",
			Setting:        "urban street with murals",
			Poses:          "walking mid-stride, hood down, hands in pocket",
			BasePrompt:     "lifestyle streetwear photograph of a hoodie worn by a model",
			Scenario:       "city afternoon with street art in the background",
			StyleModifiers: "casual, youthful, natural colour grading",
			TechnicalSpec:  "35mm lens, f/2.8, overcast daylight",
		},
		c.Studio: {
			ModelType:      "apparel model, full torso framed",
			Setting:        "light grey studio backdrop",
			Poses:          "front, back and side views, arms relaxed",
			BasePrompt:     "studio apparel photograph of a hoodie",
			Scenario:       "e-commerce studio setup showing fit and fabric",
			StyleModifiers: "clean, accurate colour, visible fabric texture",
			TechnicalSpec:  "50mm lens, f/8, two softboxes and background light",
		},
		c.Editorial: {
			ModelType:      "edgy streetwear model",
			Setting:        "concrete parking structure at dusk",
			Poses:          "crouched and leaning poses, hood up",
			BasePrompt:     "editorial streetwear photograph of a hoodie",
			Scenario:       "moody urban editorial",
			StyleModifiers: "gritty, cinematic teal and orange grade",
			TechnicalSpec:  "35mm lens, f/2, mixed practical and flash lighting",
		},
		c.Commercial: {
			ModelType:      "group of friends in matching hoodies",
			Setting:        "campus lawn",
			Poses:          "laughing together, arms around shoulders",
			BasePrompt:     "commercial advertising photograph of a hoodie",
			Scenario:       "campaign image celebrating comfort and community",
			StyleModifiers: "bright, energetic, brand friendly",
			TechnicalSpec:  "24-70mm lens at 35mm, f/5.6, sunlight with fill flash",
		},
	}},

	c.TShirt: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "casual apparel model",
			Setting:        "beach boardwalk or park",
			Poses:          "relaxed standing pose, print clearly visible",
			BasePrompt:     "lifestyle photograph of a printed t-shirt worn by a model",
			Scenario:       "sunny weekend outing",
			StyleModifiers: "bright, casual, natural",
			TechnicalSpec:  "50mm lens, f/4, daylight",
		},
		c.Studio: {
			ModelType:      "no model, ghost mannequin",
			Setting:        "white studio background",
			Poses:          "front and back views",
			BasePrompt:     "studio photograph of a t-shirt on a ghost mannequin",
			Scenario:       "catalogue studio setup",
			StyleModifiers: "clean, flat even light, accurate print colours",
			TechnicalSpec:  "50mm lens, f/8, evenly lit white sweep",
		},
	}},

	c.Saree: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "Indian woman model draping the saree gracefully",
			Setting:        "sunlit verandah of a heritage home",
			Poses:          "walking with the pallu flowing, candid smile",
			BasePrompt:     "lifestyle photograph of a handwoven saree worn by a model",
			Scenario:       "festive morning at home",
			StyleModifiers: "warm, graceful, fabric drape and weave visible",
			TechnicalSpec:  "85mm lens, f/2.2, natural light with reflector",
		},
		c.Studio: {
			ModelType:      "saree model, full length framed",
			Setting:        "warm beige studio backdrop",
			Poses:          "full length front pose and pallu detail",
			BasePrompt:     "studio fashion photograph of a handwoven saree",
			Scenario:       "studio catalogue setup showing border and pallu",
			StyleModifiers: "rich true colours, crisp weave detail",
			TechnicalSpec:  "70mm lens, f/8, large octabox key with fill",
		},
		c.Editorial: {
			ModelType:      "editorial model with contemporary styling",
			Setting:        "brutalist architecture",
			Poses:          "dramatic drape movements and strong silhouettes",
			BasePrompt:     "editorial fashion photograph of a handwoven saree",
			Scenario:       "modern reinterpretation of traditional wear",
			StyleModifiers: "bold contrast, fashion forward",
			TechnicalSpec:  "50mm lens, f/4, hard sunlight",
		},
		c.Cultural: {
			ModelType:      "bride or festive guest in full traditional styling",
			Setting:        "temple courtyard decorated with flowers",
			Poses:          "offering prayers, graceful traditional poses",
			BasePrompt:     "traditional cultural photograph of a handwoven silk saree",
			Scenario:       "festival or wedding ritual",
			StyleModifiers: "rich silk sheen, gold zari highlights, devotional mood",
			TechnicalSpec:  "85mm lens, f/2.8, golden hour light",
		},
	}},

	c.Kurta: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "apparel model in a relaxed kurta",
			Setting:        "rooftop with city view",
			Poses:          "relaxed standing and seated poses",
			BasePrompt:     "lifestyle photograph of a handcrafted kurta worn by a model",
			Scenario:       "evening get-together with friends",
			StyleModifiers: "warm, comfortable, natural",
			TechnicalSpec:  "50mm lens, f/2.8, sunset light",
		},
		c.Cultural: {
			ModelType:      "model in festive kurta set",
			Setting:        "festival street with lights",
			Poses:          "celebratory poses with family",
			BasePrompt:     "festive photograph of an embroidered kurta",
			Scenario:       "Diwali or Eid celebration",
			StyleModifiers: "vibrant, festive, warm lights",
			TechnicalSpec:  "35mm lens, f/2, practical lights and fill",
		},
	}},

	c.Dress: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "fashion model in a flowing dress",
			Setting:        "flower field at golden hour",
			Poses:          "twirling, skirt in motion",
			BasePrompt:     "lifestyle fashion photograph of a handmade dress",
			Scenario:       "dreamy summer evening",
			StyleModifiers: "soft, romantic, warm backlight",
			TechnicalSpec:  "85mm lens, f/1.8, backlit golden hour",
		},
		c.Editorial: {
			ModelType:      "editorial fashion model",
			Setting:        "gallery space with white walls",
			Poses:          "strong angular poses",
			BasePrompt:     "editorial fashion photograph of a designer dress",
			Scenario:       "magazine feature spread",
			StyleModifiers: "bold, graphic, high fashion",
			TechnicalSpec:  "50mm lens, f/5.6, hard key light",
		},
	}},

	c.Shawl: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "model wrapped in a shawl",
			Setting:        "misty hill station morning",
			Poses:          "shawl draped over shoulders, holding a warm drink",
			BasePrompt:     "lifestyle photograph of a handwoven shawl",
			Scenario:       "cosy winter morning in the mountains",
			StyleModifiers: "soft, cosy, muted tones",
			TechnicalSpec:  "85mm lens, f/2, diffused morning light",
		},
		c.Cultural: {
			ModelType:      "artisan weaver or model in regional attire",
			Setting:        "Kashmiri or Himalayan village",
			Poses:          "shawl held open to show the weave pattern",
			BasePrompt:     "heritage photograph of a handwoven pashmina shawl",
			Scenario:       "weaving tradition with looms in the background",
			StyleModifiers: "rich texture, earthy colours, storytelling",
			TechnicalSpec:  "50mm lens, f/4, window light",
		},
	}},

	c.Handbag: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "stylish accessory model",
			Setting:        "city sidewalk outside a cafe",
			Poses:          "bag on the shoulder mid-stride",
			BasePrompt:     "lifestyle photograph of a handcrafted handbag carried by a model",
			Scenario:       "chic city errand",
			StyleModifiers: "fashionable, natural, warm",
			TechnicalSpec:  "50mm lens, f/2.8, afternoon light",
		},
		c.Studio: {
			ModelType:      "no model, bag on a plinth",
			Setting:        "pastel studio set",
			Poses:          "front, side and interior views",
			BasePrompt:     "studio product photograph of a handcrafted handbag",
			Scenario:       "studio e-commerce setup",
			StyleModifiers: "clean, precise, leather grain visible",
			TechnicalSpec:  "70mm lens, f/8, softbox key and rim light",
		},
	}},

	c.ToteBag: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "casual shopper model",
			Setting:        "farmers market",
			Poses:          "tote on the shoulder filled with produce",
			BasePrompt:     "lifestyle photograph of a handmade tote bag",
			Scenario:       "weekend market stroll",
			StyleModifiers: "eco-friendly, bright, natural",
			TechnicalSpec:  "35mm lens, f/4, daylight",
		},
	}},

	c.Sneakers: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "active footwear model, legs framed",
			Setting:        "urban crosswalk",
			Poses:          "mid-step, sneakers in focus",
			BasePrompt:     "lifestyle photograph of handcrafted sneakers in motion",
			Scenario:       "city commute",
			StyleModifiers: "energetic, dynamic, urban",
			TechnicalSpec:  "35mm lens, f/4, fast shutter, daylight",
		},
		c.Studio: {
			ModelType:      "no model, floating sneaker",
			Setting:        "colour gradient studio background",
			Poses:          "side profile and sole views",
			BasePrompt:     "studio product photograph of handcrafted sneakers",
			Scenario:       "studio hero shot",
			StyleModifiers: "clean, vivid, sharp detail",
			TechnicalSpec:  "90mm lens, f/11, strobe with coloured gels",
		},
	}},

	c.Juttis: {fallback: c.Cultural, styles: map[c.Style]Concept{
		c.Cultural: {
			ModelType:      "footwear model in traditional attire",
			Setting:        "courtyard with rangoli",
			Poses:          "feet framed beside a rangoli, embroidery in focus",
			BasePrompt:     "cultural photograph of embroidered juttis",
			Scenario:       "wedding festivities",
			StyleModifiers: "vibrant, ornate, festive",
			TechnicalSpec:  "60mm macro lens, f/4, warm daylight",
		},
	}},

	c.Vase: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "no model, interior styling",
			Setting:        "sunlit living room console",
			Poses:          "vase with fresh flowers beside books",
			BasePrompt:     "interior lifestyle photograph of a handcrafted vase",
			Scenario:       "styled home corner with fresh stems",
			StyleModifiers: "airy, warm, natural textures",
			TechnicalSpec:  "35mm lens, f/4, window light",
		},
		c.Studio: {
			ModelType:      "no model, vase as hero",
			Setting:        "seamless studio backdrop",
			Poses:          "front and three-quarter views",
			BasePrompt:     "studio product photograph of a handcrafted vase",
			Scenario:       "studio still life with soft shadow",
			StyleModifiers: "clean, sculptural, glaze detail",
			TechnicalSpec:  "90mm lens, f/11, softbox with gradient background",
		},
		c.Artistic: {
			ModelType:      "potter's hands",
			Setting:        "pottery studio",
			Poses:          "hands finishing the vase on the wheel",
			BasePrompt:     "artistic photograph of a handcrafted vase",
			Scenario:       "making-of moment in the studio",
			StyleModifiers: "textured, earthy, chiaroscuro",
			TechnicalSpec:  "50mm lens, f/2.8, single window light",
		},
		c.Modern: {
			ModelType:      "no model",
			Setting:        "minimalist shelf with concrete wall",
			Poses:          "single vase with one dried stem",
			BasePrompt:     "modern minimalist photograph of a handcrafted vase",
			Scenario:       "Scandinavian inspired interior",
			StyleModifiers: "minimal, neutral palette, geometric shadows",
			TechnicalSpec:  "50mm lens, f/5.6, hard sunlight through window",
		},
	}},

	c.Pottery: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "host serving guests",
			Setting:        "rustic dining table",
			Poses:          "pottery in use at a shared meal",
			BasePrompt:     "lifestyle photograph of handmade pottery in use",
			Scenario:       "slow weekend brunch",
			StyleModifiers: "earthy, warm, inviting",
			TechnicalSpec:  "50mm lens, f/2.8, natural light",
		},
		c.Studio: {
			ModelType:      "no model",
			Setting:        "textured plaster studio backdrop",
			Poses:          "group arrangement of pieces at varied heights",
			BasePrompt:     "studio product photograph of handmade pottery",
			Scenario:       "studio still life",
			StyleModifiers: "clean, glaze and texture detail",
			TechnicalSpec:  "90mm lens, f/11, softbox side light",
		},
		c.Artistic: {
			ModelType:      "potter at the wheel",
			Setting:        "village pottery workshop",
			Poses:          "hands shaping wet clay",
			BasePrompt:     "artistic photograph of handmade pottery being crafted",
			Scenario:       "artisan workshop story",
			StyleModifiers: "raw, tactile, documentary",
			TechnicalSpec:  "35mm lens, f/2, available light",
		},
		c.Vintage: {
			ModelType:      "no model",
			Setting:        "antique kitchen shelf",
			Poses:          "pieces among old utensils",
			BasePrompt:     "vintage style photograph of handmade pottery",
			Scenario:       "grandmother's kitchen nostalgia",
			StyleModifiers: "film grain, faded warm palette",
			TechnicalSpec:  "50mm lens, f/2.8, tungsten light",
		},
	}},

	c.Candle: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "no model, cosy interior",
			Setting:        "bedside table at dusk",
			Poses:          "lit candle beside a book and blanket",
			BasePrompt:     "lifestyle photograph of a handmade candle glowing",
			Scenario:       "relaxing evening ritual",
			StyleModifiers: "warm glow, hygge, soft",
			TechnicalSpec:  "50mm lens, f/1.8, candlelight with low ambient fill",
		},
		c.Studio: {
			ModelType:      "no model",
			Setting:        "neutral studio surface",
			Poses:          "unlit candle front view with label",
			BasePrompt:     "studio product photograph of a handmade candle",
			Scenario:       "clean catalogue shot",
			StyleModifiers: "clean, true colours, wax texture",
			TechnicalSpec:  "90mm lens, f/8, softbox",
		},
	}},

	c.Lamp: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "no model, interior scene",
			Setting:        "reading nook in the evening",
			Poses:          "lamp switched on casting patterns",
			BasePrompt:     "interior photograph of a handcrafted lamp illuminating a room",
			Scenario:       "cosy evening interior",
			StyleModifiers: "warm, atmospheric, patterned light",
			TechnicalSpec:  "24mm lens, f/4, long exposure, practical light",
		},
	}},

	c.Painting: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "no model, interior scene",
			Setting:        "living room wall above a sofa",
			Poses:          "painting framed and hung at eye level",
			BasePrompt:     "interior photograph of a handmade painting displayed on a wall",
			Scenario:       "styled living room",
			StyleModifiers: "balanced, warm, gallery-like",
			TechnicalSpec:  "35mm lens, f/8, even ambient light",
		},
		c.Artistic: {
			ModelType:      "painter with brush in hand",
			Setting:        "artist studio with easels",
			Poses:          "adding final brush strokes",
			BasePrompt:     "artistic photograph of a folk painting being created",
			Scenario:       "artisan at work",
			StyleModifiers: "painterly, rich colour, documentary",
			TechnicalSpec:  "35mm lens, f/2.8, north window light",
		},
	}},

	c.Mug: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "hands holding a mug",
			Setting:        "kitchen counter on a rainy morning",
			Poses:          "steam rising, hands wrapped around the mug",
			BasePrompt:     "lifestyle photograph of a handmade mug with hot coffee",
			Scenario:       "slow morning ritual",
			StyleModifiers: "cosy, warm, moody",
			TechnicalSpec:  "50mm lens, f/2, window light, backlit steam",
		},
		c.Studio: {
			ModelType:      "no model",
			Setting:        "seamless studio backdrop",
			Poses:          "handle at three-quarter angle",
			BasePrompt:     "studio product photograph of a handmade mug",
			Scenario:       "clean catalogue shot",
			StyleModifiers: "crisp, glaze detail",
			TechnicalSpec:  "90mm lens, f/11, softbox",
		},
	}},

	c.Cushion: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "no model, styled sofa",
			Setting:        "bright living room",
			Poses:          "cushions arranged on a sofa with a throw",
			BasePrompt:     "interior photograph of handcrafted cushions on a sofa",
			Scenario:       "fresh home makeover",
			StyleModifiers: "soft, layered textures, inviting",
			TechnicalSpec:  "35mm lens, f/5.6, daylight",
		},
	}},

	c.Rug: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "no model, room scene",
			Setting:        "living room floor",
			Poses:          "rug laid out with furniture around it",
			BasePrompt:     "interior photograph of a handwoven rug",
			Scenario:       "styled living space shot from above",
			StyleModifiers: "warm, textured, pattern clearly visible",
			TechnicalSpec:  "24mm lens, f/8, high angle, daylight",
		},
	}},

	c.Soap: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "no model, spa scene",
			Setting:        "bathroom shelf with plants",
			Poses:          "soap bars stacked beside a towel",
			BasePrompt:     "lifestyle photograph of handmade soap bars",
			Scenario:       "self-care bathroom ritual",
			StyleModifiers: "fresh, clean, botanical",
			TechnicalSpec:  "50mm lens, f/4, soft window light",
		},
		c.Studio: {
			ModelType:      "no model",
			Setting:        "marble studio surface",
			Poses:          "bar cut to show texture with ingredients around",
			BasePrompt:     "studio product photograph of handmade soap",
			Scenario:       "ingredient-led still life",
			StyleModifiers: "clean, natural, texture detail",
			TechnicalSpec:  "90mm macro lens, f/8, softbox",
		},
	}},

	c.Perfume: {fallback: c.Elegant, styles: map[c.Style]Concept{
		c.Elegant: {
			ModelType:      "no model, luxury still life",
			Setting:        "vanity with silk and flowers",
			Poses:          "bottle centred with reflections",
			BasePrompt:     "elegant luxury photograph of a handcrafted perfume bottle",
			Scenario:       "boudoir still life",
			StyleModifiers: "glamorous, glowing, refined",
			TechnicalSpec:  "100mm lens, f/8, backlit glass with strip lights",
		},
		c.Studio: {
			ModelType:      "no model",
			Setting:        "gradient studio backdrop",
			Poses:          "bottle front view",
			BasePrompt:     "studio product photograph of a perfume bottle",
			Scenario:       "clean catalogue shot",
			StyleModifiers: "crisp, clean, glass clarity",
			TechnicalSpec:  "100mm lens, f/11, strip softboxes",
		},
	}},

	c.Tea: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "hands pouring tea",
			Setting:        "veranda overlooking tea gardens",
			Poses:          "pouring tea into a kulhad",
			BasePrompt:     "lifestyle photograph of artisanal tea being served",
			Scenario:       "misty morning tea ritual",
			StyleModifiers: "warm, earthy, inviting",
			TechnicalSpec:  "50mm lens, f/2.8, morning light",
		},
	}},

	c.WoodenBox: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "hands opening the box",
			Setting:        "dressing table",
			Poses:          "lid half open revealing contents",
			BasePrompt:     "lifestyle photograph of a hand-carved wooden box",
			Scenario:       "keepsake moment",
			StyleModifiers: "warm, nostalgic, wood grain detail",
			TechnicalSpec:  "60mm macro lens, f/4, window light",
		},
		c.Vintage: {
			ModelType:      "no model",
			Setting:        "antique desk with old letters",
			Poses:          "box among vintage props",
			BasePrompt:     "vintage photograph of a hand-carved wooden box",
			Scenario:       "heirloom story",
			StyleModifiers: "sepia warmth, film grain",
			TechnicalSpec:  "50mm lens, f/2.8, tungsten light",
		},
	}},

	c.BrassDecor: {fallback: c.Cultural, styles: map[c.Style]Concept{
		c.Cultural: {
			ModelType:      "no model, festive altar",
			Setting:        "home temple decorated with marigolds",
			Poses:          "brass piece centred with diyas around",
			BasePrompt:     "cultural photograph of handcrafted brass decor",
			Scenario:       "festival puja preparations",
			StyleModifiers: "golden glow, ornate, devotional",
			TechnicalSpec:  "50mm lens, f/2.8, warm practical light",
		},
		c.Lifestyle: {
			ModelType:      "no model, interior scene",
			Setting:        "modern living room shelf",
			Poses:          "brass piece among books and plants",
			BasePrompt:     "interior photograph of handcrafted brass decor",
			Scenario:       "contemporary home with heritage accents",
			StyleModifiers: "warm metallic highlights, balanced",
			TechnicalSpec:  "50mm lens, f/4, daylight",
		},
	}},

	c.Embroidery: {fallback: c.Artistic, styles: map[c.Style]Concept{
		c.Artistic: {
			ModelType:      "artisan's hands with needle and thread",
			Setting:        "workshop table with thread spools",
			Poses:          "mid-stitch close-up",
			BasePrompt:     "artistic close-up photograph of hand embroidery",
			Scenario:       "craft process story",
			StyleModifiers: "textured, colourful, intimate",
			TechnicalSpec:  "100mm macro lens, f/4, window light",
		},
		c.Lifestyle: {
			ModelType:      "no model, home scene",
			Setting:        "bedroom with embroidered textiles",
			Poses:          "textile draped over furniture",
			BasePrompt:     "lifestyle photograph of hand embroidered textiles",
			Scenario:       "cosy bedroom styling",
			StyleModifiers: "soft, warm, detail rich",
			TechnicalSpec:  "35mm lens, f/4, daylight",
		},
	}},

	c.Toy: {fallback: c.Lifestyle, styles: map[c.Style]Concept{
		c.Lifestyle: {
			ModelType:      "child playing on the floor",
			Setting:        "playroom with soft rug",
			Poses:          "child engaged with the toy, laughing",
			BasePrompt:     "lifestyle photograph of a handmade wooden toy",
			Scenario:       "joyful playtime",
			StyleModifiers: "bright, playful, safe",
			TechnicalSpec:  "35mm lens, f/2.8, soft daylight",
		},
	}},
}
