package names

import (
	"regexp"
	"strings"
)

// StatsSlugs maps odds-feed display names onto stats-site URL slugs. The
// entries capture every spelling observed in the odds feed, including
// redundant variants of the same school; redundancy here is intentional.
var StatsSlugs = newTable(&Table{
	name: "stats-slugs",
	overrides: map[string]string{
		// "St." is part of the school's real name; the generic
		// St -> State rewrite below would corrupt it before lookup.
		"Mount St. Mary's": "mount-st-marys",
		"Mt. St. Mary's":   "mount-st-marys",
		// "Cal" is the school's name, not shorthand for California.
		"Cal Poly": "cal-poly",
	},
	pre: []rewrite{
		{re: regexp.MustCompile(`\sU\b`), repl: " University"},
		{re: regexp.MustCompile(`\sSt\b`), repl: " State"},
		{re: regexp.MustCompile(`\bFla\b`), repl: "Florida"},
		{re: regexp.MustCompile(`\bCal\b`), repl: "California"},
		{re: regexp.MustCompile(`\bMt\.\s`), repl: "Mount "},
		{re: regexp.MustCompile(`Int'l`), repl: "International"},
		{re: regexp.MustCompile(`\bN\.\s`), repl: "North "},
		{re: regexp.MustCompile(`\bS\.\s`), repl: "South "},
	},
	post: []rewrite{
		{re: regexp.MustCompile(`\sUniversity`), repl: ""},
	},
	mascots: statsMascotRe,
	entries: map[string]string{
		"SMU":                       "southern-methodist",
		"UCF":                       "central-florida",
		"VMI":                       "virginia-military-institute",
		"UNLV":                      "nevada-las-vegas",
		"UMKC":                      "missouri-kansas-city",
		"UConn":                     "connecticut",
		"UMBC":                      "maryland-baltimore-county",
		"UMass Lowell":              "umass-lowell",
		"UMass":                     "massachusetts",
		"IUPUI":                     "iupui",
		"LIU":                       "long-island-university",
		"USC":                       "southern-california",
		"LSU":                       "louisiana-state",
		"VCU":                       "virginia-commonwealth",
		"TCU":                       "texas-christian",
		"Fort Wayne":                "ipfw",
		"Miami (OH)":                "miami-oh",
		"William & Mary":            "william-mary",
		"UC Santa Barbara":          "california-santa-barbara",
		"UAB":                       "alabama-birmingham",
		"Charleston":                "college-of-charleston",
		"Houston Christian":         "houston-baptist",
		"McNeese":                   "mcneese-state",
		"Louisiana":                 "louisiana-lafayette",
		"Grambling St":              "grambling",
		"Saint Mary's":              "saint-marys-ca",
		"Loyola (Chi)":              "loyola-il",
		"NC State":                  "north-carolina-state",
		"Indiana":                   "indiana",
		"Florida":                   "florida",
		"Maryland":                  "maryland",
		"Virginia Tech":             "virginia-tech",
		"Georgia Tech":              "georgia-tech",
		"Texas Tech":                "texas-tech",
		"Penn State":                "penn-state",
		"Arizona":                   "arizona",
		"Arizona State":             "arizona-state",
		"Mississippi State":         "mississippi-state",
		"San Diego State":           "san-diego-state",
		"Michigan State":            "michigan-state",
		"Florida State":             "florida-state",
		"Kansas State":              "kansas-state",
		"Washington State":          "washington-state",
		"Jacksonville State":        "jacksonville-state",
		"Sam Houston State":         "sam-houston-state",
		"Youngstown State":          "youngstown-state",
		"Wright State":              "wright-state",
		"Fresno State":              "fresno-state",
		"Colorado State":            "colorado-state",
		"Kennesaw State":            "kennesaw-state",
		"San José State":            "san-jose-state",
		"San Jose State":            "san-jose-state",
		"Georgia State":             "georgia-state",
		"Chicago State":             "chicago-state",
		"Morehead State":            "morehead-state",
		"Tennessee State":           "tennessee-state",
		"Arkansas State":            "arkansas-state",
		"South Carolina State":      "south-carolina-state",
		"Central Connecticut State": "central-connecticut-state",
		"Coppin State":              "coppin-state",
		"Boise State":               "boise-state",
		"Weber State":               "weber-state",
		"Southeast Missouri State":  "southeast-missouri-state",
		"UC Davis":                  "california-davis",
		"UC Irvine":                 "california-irvine",
		"UC San Diego":              "california-san-diego",
		"UC Riverside":              "california-riverside",
		"UCLA":                      "ucla",
		"CSU Northridge":            "cal-state-northridge",
		"CSU Bakersfield":           "cal-state-bakersfield",
		"CSU Fullerton":             "cal-state-fullerton",
		"Cal Baptist":               "california-baptist",
		"Cal Poly":                  "cal-poly",
		"UNC Wilmington":            "north-carolina-wilmington",
		"UNC Asheville":             "north-carolina-asheville",
		"UNC Greensboro":            "north-carolina-greensboro",
		"UNC":                       "north-carolina",
		"North Carolina A&T":        "north-carolina-at",
		"Northern Kentucky":         "northern-kentucky",
		"North Florida":             "north-florida",
		"South Florida":             "south-florida",
		"Northern Colorado":         "northern-colorado",
		"Western Illinois":          "western-illinois",
		"Southern Indiana":          "southern-indiana",
		"Southern Illinois":         "southern-illinois",
		"Eastern Illinois":          "eastern-illinois",
		"South Alabama":             "south-alabama",
		"Northern Arizona":          "northern-arizona",
		"Northern Iowa":             "northern-iowa",
		"Southern Utah":             "southern-utah",
		"East Tennessee State":      "east-tennessee-state",
		"Southern Mississippi":      "southern-mississippi",
		"St. Thomas (MN)":           "st-thomas-mn",
		"Mount St. Mary's":          "mount-st-marys",
		"Saint Francis (PA)":        "saint-francis-pa",
		"St. Francis (PA)":          "saint-francis-pa",
		"Saint Bonaventure":         "st-bonaventure",
		"Queens University":         "queens-nc",
		"Queens":                    "queens-nc",
		"Omaha":                     "nebraska-omaha",
		"SIU Edwardsville":          "southern-illinois-edwardsville",
		"Tennessee-Martin":          "tennessee-martin",
		"Tenn-Martin":               "tennessee-martin",
		"UT Arlington":              "texas-arlington",
		"UL Monroe":                 "louisiana-monroe",
		"Loyola (MD)":               "loyola-md",
		"Marquette":                 "marquette",
		"Florida International":     "florida-international",
		"FIU":                       "florida-international",
		"Mississippi Valley State":  "mississippi-valley-state",
		"Ole Miss":                  "mississippi",
		"Boston University":         "boston-university",
		"Vermont":                   "vermont",
		"Dartmouth":                 "dartmouth",
		"Drexel":                    "drexel",
		"Xavier":                    "xavier",
		"Syracuse":                  "syracuse",
		"Navy":                      "navy",
		"Fairfield":                 "fairfield",
		"Lehigh":                    "lehigh",
		"Niagara":                   "niagara",
		"Robert Morris":             "robert-morris",
		"Albany":                    "albany-ny",
		"Evansville":                "evansville",
		"Bradley":                   "bradley-university",
		"Miami (FL)":                "miami-fl",
		"Miami FL":                  "miami-fl",
		"Austin Peay":               "austin-peay",
		"Jacksonville":              "jacksonville",
		"San Francisco":             "san-francisco",
		"Montana":                   "montana",
		"Richmond":                  "richmond",
		"Chattanooga":               "chattanooga",
		"Bowling Green":             "bowling-green-state",
		"Stanford":                  "stanford",
		"Princeton":                 "princeton",
		"Portland":                  "portland",
		"Butler":                    "butler",
		"Clemson":                   "clemson",
		"Drake":                     "drake",
		"Denver":                    "denver",
		"Harvard":                   "harvard",
		"Gonzaga":                   "gonzaga",
		"Lafayette":                 "lafayette",
		"Manhattan":                 "manhattan",
		"Mercer":                    "mercer",
		"Pacific":                   "pacific",
		"Maine":                     "maine",
		"California":                "california",
		"Rutgers":                   "rutgers",
		"Texas A&M":                 "texas-am",
		"Texas A&M-CC":              "texas-am-corpus-christi",
		"Texas A&M-Commerce":        "texas-am-commerce",
		"Alabama A&M":               "alabama-am",
		"Florida A&M":               "florida-am",
		"Long Island":               "long-island-university",
		"SE Missouri State":         "southeast-missouri-state",
		"Umass Lowell":              "massachusetts-lowell",
		"Miss Valley State":         "mississippi-valley-state",
		"Miami":                     "miami-fl",
		"n colorado":                "northern-colorado",
		"Boston Univ.":              "boston-university",
		"Southern Miss":             "southern-mississippi",
		"N Colorado":                "northern-colorado",
	},
})

// RankingNames maps display names (with or without mascots) onto the
// rankings site's canonical team names. The rankings site keeps "St."
// abbreviations and regional suffixes, so the values are not slugs.
var RankingNames = newTable(&Table{
	name: "ranking-names",
	pre: []rewrite{
		{re: regexp.MustCompile(`^\d+\s+`), repl: "", all: true},
		{re: regexp.MustCompile(`\s+`), repl: " ", all: true},
	},
	post: []rewrite{
		{re: regexp.MustCompile(`\sU\.?$`), repl: ""},
		{re: regexp.MustCompile(`\sUniversity$`), repl: ""},
	},
	mascots:     rankingMascotRe,
	mascotFirst: true,
	entries: map[string]string{
		"GW Revolutionaries":                 "George Washington",
		"Boston Univ. Terriers":              "Boston University",
		"Coppin St Eagles":                   "Coppin St.",
		"East Tennessee St Buccaneers":       "East Tennessee St.",
		"Fort Wayne Mastodons":               "Purdue Fort Wayne",
		"Oklahoma St Cowboys":                "Oklahoma St.",
		"Prairie View Panthers":              "Prairie View A&M",
		"Texas State Bobcats":                "Texas St.",
		"Tenn-Martin Skyhawks":               "Tennessee Martin",
		"Colorado St Rams":                   "Colorado St.",
		"Fresno St Bulldogs":                 "Fresno St.",
		"Utah State Aggies":                  "Utah St.",
		"Weber State Wildcats":               "Weber St.",
		"Oregon St Beavers":                  "Oregon St.",
		"South Dakota St Jackrabbits":        "South Dakota St.",
		"Long Beach St 49ers":                "Long Beach St.",
		"Montana St Bobcats":                 "Montana St.",
		"Portland St Vikings":                "Portland St.",
		"Hawai'i Rainbow Warriors":           "Hawaii",
		"Miss Valley St Delta Devils":        "Mississippi Valley St.",
		"Michigan St Spartans":               "Michigan St.",
		"San José St Spartans":               "San Jose St.",
		"Florida Int'l Golden Panthers":      "Florida International",
		"Kansas St Wildcats":                 "Kansas St.",
		"NC State Wolfpack":                  "N.C. State",
		"Nicholls St Colonels":               "Nicholls",
		"Arkansas-Little Rock Trojans":       "Little Rock",
		"Penn State Nittany Lions":           "Penn St.",
		"UMKC Kangaroos":                     "Kansas City",
		"Delaware St Hornets":                "Delaware St.",
		"Kent State Golden Flashes":          "Kent St.",
		"Cleveland St Vikings":               "Cleveland St.",
		"Miami (OH) RedHawks":                "Miami OH",
		"Chicago St Cougars":                 "Chicago St.",
		"Loyola (MD) Greyhounds":             "Loyola MD",
		"Arkansas-Pine Bluff Golden Lions":   "Arkansas Pine Bluff",
		"SE Louisiana Lions":                 "Southeastern Louisiana",
		"Mississippi St Bulldogs":            "Mississippi St.",
		"SE Missouri St Redhawks":            "Southeast Missouri",
		"St. Thomas (MN) Tommies":            "St. Thomas",
		"Wright St Raiders":                  "Wright St.",
		"Boise State Broncos":                "Boise St.",
		"Morgan St Bears":                    "Morgan St.",
		"Youngstown St Penguins":             "Youngstown St.",
		"CSU Fullerton Titans":               "Cal St. Fullerton",
		"Murray St Racers":                   "Murray St.",
		"UT-Arlington Mavericks":             "UT Arlington",
		"Missouri St Bears":                  "Missouri St.",
		"UConn Huskies":                      "Connecticut",
		"Jackson St Tigers":                  "Jackson St.",
		"South Carolina Upstate Spartans":    "USC Upstate",
		"Ball State Cardinals":               "Ball St.",
		"Bethune-Cookman Wildcats":           "Bethune Cookman",
		"Gardner-Webb Bulldogs":              "Gardner Webb",
		"N Colorado Bears":                   "Northern Colorado",
		"New Mexico St Aggies":               "New Mexico St.",
		"Sam Houston St Bearkats":            "Sam Houston St.",
		"Idaho State Bengals":                "Idaho St.",
		"Omaha Mavericks":                    "Nebraska Omaha",
		"UIC Flames":                         "Illinois Chicago",
		"Pennsylvania Quakers":               "Penn",
		"Alabama St Hornets":                 "Alabama St.",
		"Arizona St Sun Devils":              "Arizona St.",
		"Georgia St Panthers":                "Georgia St.",
		"Iowa State Cyclones":                "Iowa St.",
		"North Dakota St Bison":              "North Dakota St.",
		"SIU-Edwardsville Cougars":           "SIUE",
		"CSU Bakersfield Roadrunners":        "Cal St. Bakersfield",
		"UL Monroe Warhawks":                 "Louisiana Monroe",
		"IUPUI Jaguars":                      "IU Indy",
		"Florida St Seminoles":               "Florida St.",
		"St. Francis (PA) Red Flash":         "Saint Francis PA",
		"Maryland-Eastern Shore Hawks":       "Maryland Eastern Shore",
		"Alcorn St Braves":                   "Alcorn St.",
		"Ole Miss Rebels":                    "Mississippi",
		"Wichita St Shockers":                "Wichita St.",
		"Grambling St Tigers":                "Grambling St.",
		"Northwestern St Demons":             "Northwestern St.",
		"San Diego St Aztecs":                "San Diego St.",
		"Sacramento St Hornets":              "Sacramento St.",
		"South Carolina St Bulldogs":         "South Carolina St.",
		"Indiana St Sycamores":               "Indiana St.",
		"Jacksonville St Gamecocks":          "Jacksonville St.",
		"Mt. St. Mary's Mountaineers":        "Mount St. Mary's",
		"Arkansas St Red Wolves":             "Arkansas St.",
		"Washington St Cougars":              "Washington St.",
		"Miami Hurricanes":                   "Miami FL",
		"Tennessee St Tigers":                "Tennessee St.",
		"Ohio State Buckeyes":                "Ohio St.",
		"Tarleton State Texans":              "Tarleton St.",
		"Appalachian St Mountaineers":        "Appalachian St.",
		"Central Connecticut St Blue Devils": "Central Connecticut",
		"Morehead St Eagles":                 "Morehead St.",
		"Norfolk St Spartans":                "Norfolk St.",
		"Loyola (Chi) Ramblers":              "Loyola Chicago",
		"Penn State":                         "Penn St.",
		"Coppin St":                          "Coppin St.",
		"East Tennessee St":                  "East Tennessee St.",
		"Oklahoma St":                        "Oklahoma St.",
		"Colorado St":                        "Colorado St.",
		"Fresno St":                          "Fresno St.",
		"Kansas St":                          "Kansas St.",
		"Michigan St":                        "Michigan St.",
		"South Dakota St":                    "South Dakota St.",
		"Long Beach St":                      "Long Beach St.",
		"Montana St":                         "Montana St.",
		"Portland St":                        "Portland St.",
		"Miss Valley St":                     "Mississippi Valley St.",
		"San José St":                        "San Jose St.",
		"San Jose St":                        "San Jose St.",
		"Tenn-Martin":                        "UT Martin",
		"NC State":                           "N.C. State",
		"Oregon St":                          "Oregon St.",
		"Utah State":                         "Utah St.",
		"Weber State":                        "Weber St.",
		"Nicholls St":                        "Nicholls",
		"Iowa St.":                           "Iowa St.",
		"Iowa St":                            "Iowa St.",
		"Delaware St":                        "Delaware St.",
		"Kent State":                         "Kent St.",
		"Cleveland St":                       "Cleveland St.",
		"Chicago St":                         "Chicago St.",
		"Mississippi St":                     "Mississippi St.",
		"Wright St":                          "Wright St.",
		"Boise State":                        "Boise St.",
		"Morgan St":                          "Morgan St.",
		"Youngstown St":                      "Youngstown St.",
		"Murray St":                          "Murray St.",
		"Missouri St":                        "Missouri St.",
		"Jackson St":                         "Jackson St.",
		"Ball State":                         "Ball St.",
		"New Mexico St":                      "New Mexico St.",
		"Sam Houston St":                     "Sam Houston St.",
		"Idaho State":                        "Idaho St.",
		"Alabama St":                         "Alabama St.",
		"Arizona St":                         "Arizona St.",
		"Georgia St":                         "Georgia St.",
		"Iowa State":                         "Iowa St.",
		"North Dakota St":                    "North Dakota St.",
		"Pennsylvania":                       "Penn",
		"Florida St":                         "Florida St.",
		"Alcorn St":                          "Alcorn St.",
		"Wichita St":                         "Wichita St.",
		"Grambling St":                       "Grambling St.",
		"Northwestern St":                    "Northwestern St.",
		"San Diego St":                       "San Diego St.",
		"Sacramento St":                      "Sacramento St.",
		"South Carolina St":                  "South Carolina St.",
		"Indiana St":                         "Indiana St.",
		"Jacksonville St":                    "Jacksonville St.",
		"Mt. St. Mary's":                     "Mount St. Mary's",
		"Arkansas St":                        "Arkansas St.",
		"Washington St":                      "Washington St.",
		"Tennessee St":                       "Tennessee St.",
		"Ohio State":                         "Ohio St.",
		"Tarleton State":                     "Tarleton St.",
		"Appalachian St":                     "Appalachian St.",
		"Central Connecticut St":             "Central Connecticut",
		"Morehead St":                        "Morehead St.",
		"Norfolk St":                         "Norfolk St.",
		"Loyola (Chi)":                       "Loyola Chicago",
		"Maryland-Eastern Shore":             "Maryland Eastern Shore",
		"Col. of Charleston":                 "Charleston",
		"GW":                                 "George Washington",
		"South Fla.":                         "South Florida",
		"Southern Ill.":                      "Southern Illinois",
		"Southern Ind.":                      "Southern Indiana",
		"Boston Univ.":                       "Boston University",
		"N.C. A&T":                           "North Carolina A&T",
		"N.C. Central":                       "North Carolina Central",
		"Southern Miss.":                     "Southern Miss",
		"Southern Miss":                      "Southern Miss",
		"Fla. Atlantic":                      "Florida Atlantic",
		"Ga. Southern":                       "Georgia Southern",
		"Eastern Ky.":                        "Eastern Kentucky",
		"North Ala.":                         "North Alabama",
		"Eastern Wash.":                      "Eastern Washington",
		"Western Ill.":                       "Western Illinois",
		"West Ga.":                           "West Georgia",
		"Northern Ariz.":                     "Northern Arizona",
		"Western Caro.":                      "Western Carolina",
		"Central Ark.":                       "Central Arkansas",
		"Southeastern La.":                   "Southeastern Louisiana",
		"Middle Tenn.":                       "Middle Tennessee",
		"Western Mich.":                      "Western Michigan",
		"Northern Colo.":                     "Northern Colorado",
		"ETSU":                               "East Tennessee St.",
		"FDU":                                "Fairleigh Dickinson",
		"UIC":                                "Illinois Chicago",
		"UNI":                                "Northern Iowa",
		"UIW":                                "Incarnate Word",
		"UAlbany":                            "Albany",
		"UMKC":                               "Kansas City",
		"UNCW":                               "UNC Wilmington",
		"UMES":                               "Maryland Eastern Shore",
		"NIU":                                "Northern Illinois",
		"UTRGV":                              "UT Rio Grande Valley",
		"UT Martin":                          "Tennessee Martin",
		"SFA":                                "Stephen F. Austin",
		"UL Monroe":                          "Louisiana Monroe",
		"ULM":                                "Louisiana Monroe",
		"FGCU":                               "Florida Gulf Coast",
		"IUPUI":                              "IU Indy",
		"Sam Houston":                        "Sam Houston St.",
		"SIU-Edwardsville":                   "SIUE",
		"SIUE":                               "SIUE",
		"Charleston So.":                     "Charleston Southern",
		"Northern Ky.":                       "Northern Kentucky",
		"Western Ky.":                        "Western Kentucky",
		"Southeast Mo. St.":                  "Southeast Missouri",
		"Southeast Missouri St.":             "Southeast Missouri",
		"SE Missouri St":                     "Southeast Missouri",
		"SE Louisiana":                       "Southeastern Louisiana",
		"Gardner-Webb":                       "Gardner Webb",
		"Alcorn":                             "Alcorn St.",
		"Central Mich.":                      "Central Michigan",
		"Central Conn. St.":                  "Central Connecticut",
		"Eastern Ill.":                       "Eastern Illinois",
		"Eastern Mich.":                      "Eastern Michigan",
		"App State":                          "Appalachian St.",
		"Omaha":                              "Nebraska Omaha",
		"Loyola Maryland":                    "Loyola MD",
		"Loyola Chicago":                     "Loyola Chicago",
		"CSU Bakersfield":                    "Cal St. Bakersfield",
		"CSU Fullerton":                      "Cal St. Fullerton",
		"Grambling":                          "Grambling St.",
		"A&M-Corpus Christi":                 "Texas A&M Corpus Chris",
		"Ole Miss":                           "Mississippi",
		"Army West Point":                    "Army",
		"California Baptist":                 "Cal Baptist",
		"Bethune-Cookman":                    "Bethune Cookman",
		"N Colorado":                         "Northern Colorado",
		"Ark.-Pine Bluff":                    "Arkansas Pine Bluff",
		"Mississippi Val.":                   "Mississippi Valley St.",
		"Tarleton":                           "Tarleton St.",
		"LMU (CA)":                           "Loyola Marymount",
		"Miami":                              "Miami FL",
		"Miami FL":                           "Miami FL",
		"Miami (FL)":                         "Miami FL",
		"Miami OH":                           "Miami OH",
		"Miami (OH)":                         "Miami OH",
		"Saint Mary's":                       "Saint Mary's",
		"St. Mary's":                         "Saint Mary's",
		"Saint Mary's (CA)":                  "Saint Mary's",
		"Saint Mary's CA":                    "Saint Mary's",
		"St. John's (NY)":                    "St. John's",
		"St. Thomas (MN)":                    "St. Thomas",
		"St. Francis (PA)":                   "Saint Francis PA",
		"Loyola (MD)":                        "Loyola MD",
		"Queens (NC)":                        "Queens",
		"UConn":                              "Connecticut",
		"USC":                                "Southern California",
		"LSU":                                "Louisiana St.",
		"SMU":                                "Southern Methodist",
		"TCU":                                "TCU",
		"VCU":                                "VCU",
		"UCF":                                "Central Florida",
		"UNLV":                               "UNLV",
		"LIU":                                "Long Island",
		"UAB":                                "UAB",
		"Hawai'i":                            "Hawaii",
		"Florida Int'l":                      "Florida International",
		"Arkansas-Little Rock":               "Little Rock",
		"Arkansas-Pine Bluff":                "Arkansas Pine Bluff",
		"Fort Wayne":                         "Purdue Fort Wayne",
		"Prairie View":                       "Prairie View A&M",
		"Texas State":                        "Texas St.",
		"South Carolina Upstate":             "USC Upstate",
	},
})

// AdvantageNames maps display names onto the home-court advantage chart's
// uppercase keys.
var AdvantageNames = newTable(&Table{
	name: "advantage-names",
	fold: strings.ToUpper,
	pre: []rewrite{
		{re: regexp.MustCompile("['\u2018\u2019]"), repl: "", all: true},
		{re: regexp.MustCompile(`[.\-]`), repl: " ", all: true},
		{re: regexp.MustCompile(`\s+`), repl: " ", all: true},
	},
	special: miamiOhio,
	post: []rewrite{
		{re: regexp.MustCompile(`^(SAINT|ST\.?)\s+`), repl: "ST ", all: true},
		{re: regexp.MustCompile(`\s+(STATE|ST\.?)$`), repl: " ST", all: true},
		{re: regexp.MustCompile(`^(CS|CSU|UC|UT)\s+`), repl: "", all: true},
	},
	mascots: advantageMascotRe,
	entries: map[string]string{
		"CORNELL BIG RED":          "CORNELL",
		"ARMY KNIGHTS":             "ARMY",
		"TOWSON TIGERS":            "TOWSON ST",
		"COLGATE RAIDERS":          "COLGATE",
		"MISSOURI TIGERS":          "MISSOURI",
		"MIAMI (OH) REDHAWKS":      "MIAMI OHIO",
		"STONEHILL SKYHAWKS":       "STONEHILL",
		"MISSOURI ST BEARS":        "MISSOURI ST",
		"CHARLESTON COUGARS":       "COLL OF CHARLESTON",
		"CSU FULLERTON TITANS":     "CS-FULLERTON",
		"OAKLAND GOLDEN GRIZZLIES": "OAKLAND",
		"SETON HALL PIRATES":       "SETON HALL",
		"LOYOLA MARYMOUNT LIONS":   "LOYOLA-MARYMOUNT",
		"HAWAII RAINBOW WARRIORS":  "HAWAII",
		"MIAMI OH REDHAWKS":        "MIAMI OHIO",
		"MIAMI OHIO":               "MIAMI OHIO",
		"SAINT MARYS":              "ST MARYS-CA",
		"SAINT MARYS CA":           "ST MARYS-CA",
		"MIAMI (OH)":               "MIAMI OHIO",
		"SAINT MARYS GAELS":        "ST MARYS-CA",
		"ST MARYS GAELS":           "ST MARYS-CA",
		"ST MARYS":                 "ST MARYS-CA",
		"ST MARYS CA":              "ST MARYS-CA",
		"LOYOLA (CHI) RAMBLERS":    "LOYOLA-IL",
		"NORTH DAKOTA ST BISON":    "N DAKOTA ST",
		"CORNELL":                  "CORNELL",
		"ARMY":                     "ARMY",
		"TOWSON ST":                "TOWSON ST",
		"MIAMI OH":                 "MIAMI OHIO",
		"MISSOURI ST":              "MISSOURI ST",
		"CS-FULLERTON":             "CS-FULLERTON",
		"HAWAII":                   "HAWAII",
		"ST MARYS-CA":              "ST MARYS-CA",
		"SAINT MARY'S GAELS":       "ST MARYS-CA",
		"HAWAI'I RAINBOW WARRIORS": "HAWAII",
		"HAWAI'I":                  "HAWAII",
		"ST MARY'S GAELS":          "ST MARYS-CA",
	},
})

// miamiOhio collapses every Miami-of-Ohio spelling before table lookup; the
// chart distinguishes it from Miami (FL) only by this marker.
func miamiOhio(s string) string {
	if strings.Contains(s, "MIAMI") && strings.Contains(s, "OH") {
		return "MIAMI OH"
	}
	return s
}
