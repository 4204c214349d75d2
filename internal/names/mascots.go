package names

import (
	"regexp"
	"strings"
)

// Curated mascot alternations, longest/most-specific first so compounds like
// "Golden Bears" win over "Bears". Stripping a trailing mascot is stage four
// of the resolution cascade; see Resolve.

var statsMascots = []string{
	"Bulldogs", "Volunteers", "Golden Bears", "Golden Grizzlies", "Wolfpack", "Billikens",
	"Antelopes", "Big Red", "Redbirds", "Crimson Tide", "Golden Flashes", "Sooners", "Bearcats",
	"Gaels", "Mastodons", "Fighting Illini", "Cyclones", "Cavaliers", "Titans", "Badgers", "Quakers",
	"Patriots", "Lakers", "Gauchos", "Horned Frogs", "Tribe", "Blazers", "Braves", "Jayhawks",
	"Beavers", "Mean Green", "Privateers", "Cowboys", "Ragin' Cajuns", "Broncs", "Ramblers",
	"Fighting Irish", "Hoyas", "Racers", "Cornhuskers", "Rainbow Warriors", "49ers", "Dolphins",
	"Bulls", "Thundering Herd", "Seminoles", "Falcons", "Penguins", "Colonials", "Red Raiders",
	"Norse", "Terrapins", "Nittany Lions", "Hoosiers", "Screaming", "Tigers", "Eagles", "Panthers",
	"Wildcats", "Cardinals", "Hawks", "Bears", "Cougars", "Huskies", "Pirates", "Warriors",
	"Spartans", "Broncos", "Owls", "Lions", "Flames", "Bobcats", "Blue Devils", "Rams", "Aggies",
	"Miners", "Knights", "Seawolves", "Blue Hose", "Red Foxes", "Golden Griffins", "Retrievers",
	"Jaspers", "Kangaroos", "Colonels", "Commodores", "Buffaloes", "Crimson", "Paladins", "Bruins",
	"Monarchs", "Waves", "Pilots", "Thunderbirds", "Lumberjacks", "Boilermakers", "Leathernecks",
	"Toreros", "Wolverines", "Roadrunners", "Vikings", "Aztecs", "Tritons", "Keydets", "Phoenix",
	"Shockers", "Ducks", "Cardinal", "Bison", "Mustangs", "Mavericks", "Hawkeyes", "Utes", "Jaguars",
	"Buckeyes", "Coyotes", "Royals", "Rebels", "Pioneers", "Wolf Pack", "Lancers", "Redhawks",
	"Skyhawks", "Leopards", "Vandals", "Blue Demons", "Bluejays", "Chippewas", "Minutemen",
	"Sun Devils", "Highlanders", "Warhawks", "Tar Heels", "Golden Hurricane", "Delta Devils",
	"Governors", "Chanticleers", "Red Wolves", "Dukes", "Anteaters", "Razorbacks", "Seahawks",
	"Mountaineers", "Islanders", "Salukis", "Trojans", "Golden Gophers", "Raiders", "Gamecocks",
	"Buccaneers", "Demon Deacons", "Matadors", "Golden Eagles", "Purple Eagles", "Red Flash",
	"Great Danes", "Purple Aces", "River Hawks", "Terriers", "Tommies", "Mountain Hawks",
	"Scarlet Knights", "Golden Panthers", "Hurricanes", "Orange", "Hokies", "Midshipmen", "Stags",
	"Greyhounds", "Sharks", "Black Bears", "Bonnies", "Bearkats", "Yellow Jackets", "Blue Raiders",
	"Mocs", "Big Green", "Catamounts", "Dragons", "Ospreys", "Gators", "Musketeers", "Grizzlies",
	"Dons", "Spiders",
}

var rankingMascots = []string{
	"Bulldogs", "Blue Devils", "Tar Heels", "Wildcats", "Crimson Tide", "Tigers", "Volunteers",
	"Gators", "Zips", "Golden Lions", "Saints", "Explorers", "Peacocks", "Trailblazers",
	"Jackrabbits", "Rockets", "Flyers", "Revolutionaries", "Red Storm", "Hornets", "Demons",
	"Rattlers", "Vaqueros", "Green Wave", "Texans", "Longhorns", "Fighting Hawks", "Bengals",
	"Hatters", "Hilltoppers", "Bisons", "Pride", "Wolves", "Blue Hens", "Fighting Camels",
	"Crusaders", "Golden Bears", "Friars", "Lobos", "Screaming Eagles", "Sycamores", "Beacons",
	"Golden Grizzlies", "Wolfpack", "Billikens", "Antelopes", "Big Red", "Redbirds", "Golden Flashes",
	"Sooners", "Bearcats", "Gaels", "Mastodons", "Fighting Illini", "Cyclones", "Cavaliers", "Titans",
	"Badgers", "Quakers", "Patriots", "Lakers", "Gauchos", "Horned Frogs", "Tribe", "Blazers",
	"Braves", "Jayhawks", "Beavers", "Mean Green", "Privateers", "Cowboys", "Ragin' Cajuns", "Broncs",
	"Ramblers", "Fighting Irish", "Hoyas", "Racers", "Cornhuskers", "Rainbow Warriors", "49ers",
	"Dolphins", "Bulls", "Thundering Herd", "Seminoles", "Falcons", "Penguins", "Colonials",
	"Red Raiders", "Norse", "Terrapins", "Nittany Lions", "Hoosiers", "Screaming", "Eagles",
	"Panthers", "Cardinals", "Hawks", "Bears", "Cougars", "Huskies", "Pirates", "Warriors",
	"Spartans", "Broncos", "Owls", "Lions", "Flames", "Bobcats", "Rams", "Aggies", "Miners",
	"Knights", "Seawolves", "Blue Hose", "Red Foxes", "Golden Griffins", "Retrievers", "Jaspers",
	"Kangaroos", "Colonels", "Commodores", "Buffaloes", "Crimson", "Paladins", "Bruins", "Monarchs",
	"Waves", "Pilots", "Thunderbirds", "Lumberjacks", "Boilermakers", "Leathernecks", "Toreros",
	"Wolverines", "Roadrunners", "Vikings", "Aztecs", "Tritons", "Keydets", "Phoenix", "Shockers",
	"Ducks", "Cardinal", "Bison", "Mustangs", "Mavericks", "Hawkeyes", "Utes", "Jaguars", "Buckeyes",
	"Coyotes", "Royals", "Rebels", "Pioneers", "Wolf Pack", "Lancers", "Redhawks", "Skyhawks",
	"Leopards", "Vandals", "Blue Demons", "Bluejays", "Chippewas", "Minutemen", "Sun Devils",
	"Highlanders", "Warhawks", "Golden Hurricane", "Delta Devils", "Governors", "Chanticleers",
	"Red Wolves", "Dukes", "Anteaters", "Razorbacks", "Seahawks", "Mountaineers", "Islanders",
	"Salukis", "Trojans", "Golden Gophers", "Raiders", "Gamecocks", "Buccaneers", "Demon Deacons",
	"Matadors", "Golden Eagles", "Purple Eagles", "Red Flash", "Great Danes", "Purple Aces",
	"River Hawks", "Terriers", "Tommies", "Mountain Hawks", "Scarlet Knights", "Golden Panthers",
	"Hurricanes", "Orange", "Hokies", "Midshipmen", "Stags", "Greyhounds", "Sharks", "Black Bears",
	"Bonnies", "Bearkats", "Yellow Jackets", "Blue Raiders", "Mocs", "Big Green", "Catamounts",
	"Dragons", "Ospreys", "Musketeers", "Grizzlies", "Dons", "Spiders",
}

func mascotPattern(list []string) *regexp.Regexp {
	quoted := make([]string, len(list))
	for i, m := range list {
		quoted[i] = regexp.QuoteMeta(m)
	}
	return regexp.MustCompile(`(?i)\s(` + strings.Join(quoted, "|") + `)$`)
}

var (
	statsMascotRe   = mascotPattern(statsMascots)
	rankingMascotRe = mascotPattern(rankingMascots)

	advantageMascotRe = regexp.MustCompile(`\s+(GOLDEN )?(EAGLES|WARRIORS|TIGERS|KNIGHTS|RAIDERS|BEARS|COUGARS|TITANS|GRIZZLIES|PIRATES|LIONS|GAELS)$`)
)
