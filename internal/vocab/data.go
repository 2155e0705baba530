package vocab

// Default seed pools for the festive rental dataset. The values are data,
// not configuration: generators only ever read them through a Vocabulary.

var cityPostal = map[string]string{
	"snowflake village":   "25DEC",
	"jinglebell junction": "12JOY",
	"candy cane creek":    "31WIS",
	"frosty falls":        "24CHE",
	"tinseltown":          "01MER",
	"gingerbread grove":   "25NOG",
	"mistletoe meadows":   "12SLE",
	"reindeer ridge":      "24PRE",
	"sugarplum springs":   "25HOL",
	"winterberry woods":   "12SNO",
}

var cityCountry = map[string]string{
	"snowflake village":   "north pole territories",
	"jinglebell junction": "winter wonderland",
	"candy cane creek":    "gingerbread republic",
	"frosty falls":        "snow globe federation",
	"tinseltown":          "peppermint plains",
	"gingerbread grove":   "cookie confederation",
	"mistletoe meadows":   "evergreen empire",
	"reindeer ridge":      "aurora borealis",
	"sugarplum springs":   "frosting kingdom",
	"winterberry woods":   "icicle isles",
}

var cityStreets = map[string][]string{
	"snowflake village":   {"santa's sleigh way", "elf workshop lane", "rudolph boulevard", "hot cocoa drive", "snowball circle"},
	"jinglebell junction": {"carol singers avenue", "ornament avenue", "wreath row", "holly berry street", "festive lights lane"},
	"candy cane creek":    {"peppermint twist", "gumdrop lane", "frosting boulevard", "sprinkles street", "marshmallow way"},
	"frosty falls":        {"snowman plaza", "icicle avenue", "frozen pond drive", "mittens lane", "scarf circle"},
	"tinseltown":          {"glitter boulevard", "sparkle street", "shimmer avenue", "twinkle way", "ribbon road"},
	"gingerbread grove":   {"cookie cutter lane", "frosting avenue", "cinnamon street", "nutmeg way", "molasses road"},
	"mistletoe meadows":   {"kissing corner", "pine tree path", "yuletide boulevard", "evergreen street", "garland grove"},
	"reindeer ridge":      {"dasher drive", "prancer plaza", "blitzen boulevard", "comet circle", "vixen valley"},
	"sugarplum springs":   {"nutcracker avenue", "ballet boulevard", "fairy lights lane", "dream street", "magic way"},
	"winterberry woods":   {"sledding hill", "ice skating circle", "snow fort lane", "toboggan trail", "igloo avenue"},
}

// city -> [building term, unit term]; a city without an entry gets no
// second address line.
var cityAddressTerms = map[string][2]string{
	"snowflake village":   {"cottage", "chimney"},
	"jinglebell junction": {"chalet", "hearth"},
	"candy cane creek":    {"bakery", "door"},
	"frosty falls":        {"cabin", "entrance"},
	"tinseltown":          {"workshop", "gate"},
	"gingerbread grove":   {"house", "window"},
	"mistletoe meadows":   {"lodge", "porch"},
	"reindeer ridge":      {"stable", "loft"},
	"sugarplum springs":   {"palace", "chamber"},
	"winterberry woods":   {"treehouse", "burrow"},
}

var firstNameSylls = []string{
	"holly", "joy", "noel", "star", "snow", "angel", "frost", "candy",
	"merry", "belle", "nick", "ivy", "winter", "sparkle", "cookie", "ginger",
	"tinsel", "jolly", "frosty", "mistletoe", "rudolf", "blitzen", "carol",
	"crystal", "pine", "cinnamon", "pepper", "mint", "sugar", "claus",
}

var lastNameSylls = []string{
	"snow", "bell", "bright", "berry", "flake", "frost", "cheer", "light",
	"wish", "gift", "star", "wreath", "tree", "shine", "merry", "jingle",
	"sparkle", "twinkle", "cookie", "pudding", "mc", "the", "von", "claus",
}

var emailDomains = []string{
	"northpolemail.com", "santasletter.net", "reindeerpost.org",
	"sleighmail.co", "wishlist.biz", "snowglobe.club", "elfmail.online",
	"gingerpost.lol", "festivebox.xyz",
}

// TitleWords holds the five ordered categories an accommodation title is
// assembled from.
type TitleWords struct {
	AdjectivesGeneral  []string
	AccommodationNouns []string
	LocationConnectors []string
	AdjectivesLocation []string
	PlaceNames         []string
}

var titleWords = TitleWords{
	AdjectivesGeneral: []string{
		"cozy", "magical", "enchanted", "frosty", "jolly", "twinkling",
		"merry", "whimsical", "snowy", "festive", "cheerful", "sparkly",
		"toasty", "delightful", "wonderous",
	},
	AccommodationNouns: []string{
		"cottage", "cabin", "chalet", "igloo", "lodge", "workshop",
		"gingerbread house", "snow palace", "treehouse", "sleigh station",
		"elf quarters", "winter retreat", "sugarplum suite", "cookie castle",
		"frost fortress",
	},
	LocationConnectors: []string{
		"nestled in", "overlooking", "tucked away in", "perched above",
		"hidden within", "beside", "surrounded by", "at the edge of",
		"deep in", "right next to",
	},
	AdjectivesLocation: []string{
		"snowy", "magical", "enchanted", "frosted", "glittering", "peaceful",
		"twinkling", "candlelit", "pristine", "sparkling", "silent",
		"starlit", "cozy", "mystical", "illuminated",
	},
	PlaceNames: []string{
		"candy cane forest", "snowflake valley", "reindeer meadow",
		"gingerbread lane", "mistletoe mountain", "north pole",
		"sugarplum grove", "winter wonderland", "icicle creek", "holly hill",
		"tinsel woods", "ornament orchard", "peppermint peak",
		"jingle bell bay", "evergreen heights",
	},
}

var imageMimes = []string{"image/jpeg", "image/png", "image/webp"}

var cardBrands = []string{
	"Snowflake Express", "Frostcard", "Candy Cane Credit",
	"Winter Wondercard", "Jingle Bell Pay", "North Pole Club",
	"Reindeer Union", "Mistletoe Money",
}

// ReviewTemplates holds the ordered building blocks of a review text.
// Sentimented slots carry separate positive and negative pools; the
// intensifier, connector and random-detail slots are sentiment-neutral.
type ReviewTemplates struct {
	Openings       Sentimented
	Features       Sentimented
	Experiences    Sentimented
	HostDetails    Sentimented
	ComfortRatings Sentimented
	FinalThoughts  Sentimented
	Intensifiers   []string
	Connectors     []string
	RandomDetails  []string
}

type Sentimented struct {
	Positive []string
	Negative []string
}

var reviewTemplates = ReviewTemplates{
	Openings: Sentimented{
		Positive: []string{
			"Holy jingle bells", "Sweet candy cane Jesus", "By Santa's glorious belly",
			"Absolute Christmas madness", "Peak holiday insanity", "Maximum festive chaos",
			"Chef's kiss from Mrs. Claus", "Rudolph's red nose couldn't guide me away",
			"My inner Grinch died here", "Christmas threw up here and I LOVED IT",
			"Elf-level enthusiasm achieved", "Mariah Carey would be proud",
			"More festive than Santa's browser history", "North Pole energy",
		},
		Negative: []string{
			"Well, that was something", "Yikes on several bikes", "Big oof energy",
			"Not quite the vibe", "Slight Christmas crime scene", "Questionable life choices were made",
		},
	},
	Features: Sentimented{
		Positive: []string{
			"The Christmas tree had more lights than a Vegas casino",
			"Decorations so aggressive my retinas filed a complaint",
			"Enough tinsel to strangle a small village",
			"The gingerbread smell was either wallpaper or a cry for help",
			"A fireplace that made me question if Santa was actually coming",
			"So many ornaments I thought I was in a Hobby Lobby explosion",
			"Hot cocoa station that would make Starbucks weep",
			"Fairy lights installed by someone on a sugar high",
			"A wreath so big it had its own gravitational pull",
			"The mistletoe was placed with aggressive intentions",
			"Stockings hung with concerning precision",
			"Candy canes in places candy canes should NOT be",
			"The nutcracker collection watched me with dead eyes",
			"Elf on the shelf positioned for maximum psychological damage",
		},
		Negative: []string{
			"The Christmas tree looked like it had given up on life",
			"Decorations that screamed 'discount bin 2003'",
			"One (1) sad ornament doing its best",
			"Lights that flickered like a horror movie warning",
			"Fake snow that's definitely still in my suitcase",
			"A gingerbread house that violated health codes",
			"The tinsel was molting like a diseased peacock",
			"Decorations held up by spite and duct tape",
		},
	},
	Experiences: Sentimented{
		Positive: []string{
			"I made hot chocolate at 3am like a festive cryptid",
			"Watched so many Christmas movies I can now speak fluent Hallmark",
			"Had a one-person ugly sweater dance party",
			"Sang carols until the neighbors called the cops (worth it)",
			"Built a blanket fort that would make elves jealous",
			"Took enough photos to crash my phone twice",
			"Drank cocoa until I achieved enlightenment",
			"Wrote Santa a strongly worded letter of appreciation",
			"Did a full Mariah Carey concert for the shower drain",
			"Baked cookies while crying happy tears",
			"Had a snowball fight with myself (I won)",
			"Reached maximum cozy levels previously thought impossible",
		},
		Negative: []string{
			"Got attacked by aggressive tinsel at 2am",
			"The Christmas music loop broke something in my brain",
			"Tripped over decorations more times than I'd like to admit",
			"Woke up with glitter in places glitter shouldn't go",
			"The animatronic Santa haunts my nightmares now",
			"Ate decorative candy and regretted my entire existence",
			"The constant jingling gave me stress-induced tinnitus",
		},
	},
	HostDetails: Sentimented{
		Positive: []string{
			"Host left cookies and a note that said 'You're on the Nice List now'",
			"Host went full Santa cosplay for check-in (committed to the bit)",
			"Host provided emergency cookie dough (bless them)",
			"Host's Christmas spirit should be studied by scientists",
			"Host left reindeer slippers that changed my life",
			"Host included a laminated Christmas movie bingo card",
			"Host wrote personalized carol lyrics about my stay",
			"Host's tinsel budget must be astronomical",
			"Host decorated like their life depended on it",
			"Host left a care package that made me emotional",
		},
		Negative: []string{
			"Host's elf surveillance system was concerning",
			"Host's idea of 'subtle festive touches' was a lie",
			"Host forgot to mention the motion-activated singing Santa",
			"Host left glitter bombs disguised as gifts",
			"Host's Christmas playlist was basically psychological warfare",
		},
	},
	ComfortRatings: Sentimented{
		Positive: []string{
			"The bed was softer than Santa's beard",
			"Slept like a hibernating reindeer",
			"Blankets so cozy I entered a festive coma",
			"Pillows that dreams are made of (literally)",
			"Temperature control more perfect than the North Pole",
			"The couch consumed me in the best way",
			"Shower pressure strong enough to wash away my sins",
		},
		Negative: []string{
			"The bed creaked Jingle Bells with every movement",
			"Heating was controlled by a possessed thermostat",
			"Couch looked better than it felt",
			"Too many decorative pillows - needed a degree to sit down",
			"The mattress was basically a decorative plank",
		},
	},
	FinalThoughts: Sentimented{
		Positive: []string{
			"Would sell my soul to come back",
			"Already planning next year's visit",
			"Ten out of ten jingle bells",
			"Highly recommend if you're clinically insane about Christmas",
			"Five stars and my eternal gratitude",
			"Worth every glitter-covered second",
			"Will haunt this place next Christmas like a festive ghost",
			"Book it before I do",
			"My therapist says I need to stop talking about it",
			"Chef's kiss from the North Pole",
			"Santa himself would approve this chaos",
		},
		Negative: []string{
			"Four stars only because I'm still finding glitter",
			"Would return but with lower expectations",
			"Three stars - good but my therapist has concerns",
			"Recommend with heavy reservations",
			"Fun but I need a week to decompress",
			"Solid experience once the tinsel nightmares stop",
		},
	},
	Intensifiers: []string{
		"honestly", "legitimately", "no joke", "I kid you not", "surprisingly",
		"plot twist", "somehow", "inexplicably", "for some reason", "weirdly enough",
		"fun fact", "true story", "not gonna lie", "real talk", "hear me out",
	},
	Connectors: []string{
		"Also", "Plus", "Additionally", "Oh and", "Did I mention", "Fun fact:",
		"Side note:", "Important:", "Worth noting:", "Bonus:", "PS:", "Update:",
		"Quick note:", "Fair warning:", "Pro tip:", "Just saying:",
	},
	RandomDetails: []string{
		"The bathroom had candy cane toilet paper (why though)",
		"Found tinsel in my breakfast somehow",
		"The WiFi password was HOHOHO123",
		"Every surface was sticky with holiday spirit (literally)",
		"The fridge was full of eggnog and questionable fruitcake",
		"Discovered a hidden stash of candy canes behind the couch",
		"The smoke detector was dressed as Rudolph",
		"Someone had bedazzled the thermostat",
		"Found a life-sized cardboard cutout of Mariah Carey in the closet",
		"The doorbell played 12 different versions of Jingle Bells",
		"Every switch had a tiny Santa hat on it",
		"The TV only played Christmas content (no joke)",
		"Someone put googly eyes on all the ornaments",
		"There was a framed photo of the host dressed as an elf",
	},
}

var gibberishWords = []string{
	"Ho ho", "Hey braw", "Morn gabba", "Jingle wang", "Festiv dok",
	"Holla bing", "Yule grook", "Merry blip", "Jolly wok", "Snowy hej",
	"Wida didlelidy", "Bingle bangle", "Tingle dangle", "Woop da loop",
	"Zingle zangle", "Frosty woosty", "Sparkle dorkle", "Jingle jangle",
	"Dingle dangle", "Wringle wrangle", "Tinkle tankle", "Boop da boop",
	"na grek lok", "da fingle", "ba wringle", "go shnook", "ta bingle",
	"va crinkle", "ma wrinkle", "pa sprinkle", "ka dinkle", "la tingle",
	"sa mingle", "fa jingle", "wa dangle", "ra tangle", "ha mangle",
	"the gloof", "ma snork", "da treeb", "ya flook", "the gringle",
	"ba wook", "na sprook", "ka flingle", "la crook", "the dook",
	"ma blook", "ya shnook", "da plook", "the grook", "ba floop",
	"verry zimmy", "much glonk", "so fribble", "mega crunk", "super dunk",
	"ultra plonk", "extra zonk", "really blunk", "quite shrimpy", "very cronky",
	"super flonky", "mega bonky", "ultra wonky", "pretty donky", "really stonky",
	"ya grok?", "na flek?", "da schmook?", "ba plek?", "ka glook?",
	"ma shprook?", "la frok?", "sa brok?", "ta gloop?", "wa plook?",
	"with da jingleflorp", "on the snorgleblop", "by ma cringleplop",
	"near ya flingleglop", "under ba dingleplop", "through ka wringleflop",
	"around la tingleblop", "behind ma springleplop", "inside ya cringleflop",
	"und", "aber", "also", "dann", "mit", "von", "zu", "bei", "nach",
	"vor", "uber", "durch", "ohne", "fur",
	"toda schploop", "morra fleem", "later bloop", "soon ka doop",
	"now ma gleep", "tonight ya schleep", "tomorrow ba kreep",
	"mega", "ultra", "super", "very", "much", "so", "extra", "really",
	"quite", "pretty", "totally", "fully", "completely",
	"ya know", "fo sho", "na mean", "ya feel", "ja ja", "nein nein",
	"okie dok", "roger dat", "got it", "kapish", "ya dig", "alrighty",
	"Santalorp", "Elfy bork", "Reindy plork", "Snowy flurp", "Frosty murp",
	"Jolly durp", "Merry blurp", "Candy plonk", "Cocoa schlonk", "Cookie dronk",
	"Tinsel flink", "Wreath blink", "Tree plink", "Bell dink", "Star wink",
	"bam", "pow", "whoosh", "zing", "boing", "pop", "click", "clack",
	"ding", "dong", "ring", "clang", "boom", "zap", "ping",
}

var roomTags = []string{
	"reindeer-approved bedroom",
	"silent-night master suite",
	"gingerbread-scented guest room",
	"candy cane living room",
	"mistletoe lounge zone",
	"elf-sized kids room",
	"North Pole office corner",
	"hot cocoa kitchenette",
	"Santa's snack-ready kitchen",
	"present-wrapping workstation",
	"sleigh-parking garage",
	"fireplace-worthy cozy lounge",
	"jingle bell dining area",
	"mulled-wine balcony",
	"snowflake-view rooftop terrace",
	"warm-socks reading nook",
	"chimney-friendly attic room",
	"cookie-baking laboratory (kitchen)",
}

var amenityNames = []string{
	"hot cocoa machine", "heated reindeer stable", "sleigh parking",
	"gingerbread oven", "mistletoe canopy", "snowball catapult",
	"elf concierge", "candy cane dispenser", "eggnog fountain",
	"carol sound system", "fireplace with stockings", "ice skating rink",
	"present-wrapping station", "tinsel cannon", "fir tree garden",
	"snow machine", "nutcracker guard", "advent calendar wall",
	"polar express stop", "aurora viewing deck", "igloo sauna",
	"frosted window painting kit", "sledding slope access", "yule log supply",
}

var amenityCategories = []string{
	"comfort", "entertainment", "kitchen", "outdoors", "services",
}

var paymentMethodTypes = []string{"card", "paypal"}

var paymentStatuses = []string{"pending", "succeeded", "failed", "refunded"}

var bookingStatuses = []string{"pending", "confirmed", "cancelled", "completed"}

var payoutStatuses = []string{"pending", "paid", "failed"}

var payoutAccountTypes = []string{"bank", "paypal"}

var currencies = []string{"XMS", "SNW", "GLD"}
