package knowledge

import "github.com/ppiankov/chronomap/internal/model"

func ent(name, canonical string, t model.EntityType, start, end int, alts ...string) model.KnowledgeEntity {
	return model.KnowledgeEntity{
		Name:           name,
		CanonicalName:  canonical,
		Type:           t,
		ValidInterval:  model.YearInterval{Start: start, End: end},
		AlternateNames: alts,
	}
}

// defaultEntities is the built-in reference table: major 20th-century
// political entities plus cities that changed names. End year 2100
// means "still exists" within the supported range.
func defaultEntities() []model.KnowledgeEntity {
	return []model.KnowledgeEntity{
		// Soviet Union and related
		ent("USSR", "Soviet Union", model.EntityCountry, 1922, 1991,
			"Soviet Union", "U.S.S.R.", "Union of Soviet Socialist Republics", "CCCP"),
		ent("Russian Empire", "Russian Empire", model.EntityCountry, 1721, 1917,
			"Imperial Russia", "Tsarist Russia"),
		ent("Russian Federation", "Russia", model.EntityCountry, 1991, 2100,
			"Russia", "Russian Federation"),

		// Germany
		ent("Weimar Republic", "Weimar Republic", model.EntityCountry, 1919, 1933,
			"German Republic"),
		ent("Nazi Germany", "Nazi Germany", model.EntityCountry, 1933, 1945,
			"Third Reich", "Greater German Reich", "Deutsches Reich"),
		ent("East Germany", "East Germany", model.EntityCountry, 1949, 1990,
			"German Democratic Republic", "GDR", "DDR"),
		ent("West Germany", "West Germany", model.EntityCountry, 1949, 1990,
			"Federal Republic of Germany", "FRG", "BRD"),
		ent("Germany", "Germany", model.EntityCountry, 1990, 2100,
			"Federal Republic of Germany", "Deutschland"),

		// Central and Eastern Europe
		ent("Yugoslavia", "Yugoslavia", model.EntityCountry, 1918, 1992,
			"Kingdom of Yugoslavia", "Socialist Federal Republic of Yugoslavia", "SFRY"),
		ent("Czechoslovakia", "Czechoslovakia", model.EntityCountry, 1918, 1993,
			"Czecho-Slovakia", "CSSR"),
		ent("Czech Republic", "Czech Republic", model.EntityCountry, 1993, 2100,
			"Czechia"),
		ent("Slovakia", "Slovakia", model.EntityCountry, 1993, 2100,
			"Slovak Republic"),

		// Middle East
		ent("Palestine", "British Mandate of Palestine", model.EntityTerritory, 1920, 1948,
			"Palestine", "Mandatory Palestine"),
		ent("Israel", "Israel", model.EntityCountry, 1948, 2100,
			"State of Israel"),
		ent("Ottoman Empire", "Ottoman Empire", model.EntityEmpire, 1299, 1922,
			"Turkish Empire"),

		// Asia
		ent("Siam", "Siam", model.EntityCountry, 1350, 1939,
			"Kingdom of Siam"),
		ent("Thailand", "Thailand", model.EntityCountry, 1939, 2100,
			"Kingdom of Thailand"),
		ent("Burma", "Burma", model.EntityCountry, 1948, 1989,
			"Union of Burma"),
		ent("Myanmar", "Myanmar", model.EntityCountry, 1989, 2100,
			"Union of Myanmar"),
		ent("Ceylon", "Ceylon", model.EntityCountry, 1505, 1972,
			"British Ceylon", "Dominion of Ceylon"),
		ent("Sri Lanka", "Sri Lanka", model.EntityCountry, 1972, 2100,
			"Democratic Socialist Republic of Sri Lanka"),

		// Africa
		ent("Rhodesia", "Rhodesia", model.EntityCountry, 1965, 1979,
			"Southern Rhodesia"),
		ent("Zimbabwe", "Zimbabwe", model.EntityCountry, 1980, 2100,
			"Republic of Zimbabwe"),
		ent("Zaire", "Zaire", model.EntityCountry, 1971, 1997,
			"Republic of Zaire"),
		ent("Democratic Republic of Congo", "Democratic Republic of Congo", model.EntityCountry, 1997, 2100,
			"DRC", "DR Congo", "Congo-Kinshasa"),

		// Cities with name changes
		ent("Constantinople", "Constantinople", model.EntityCity, 330, 1930,
			"Byzantium"),
		ent("Istanbul", "Istanbul", model.EntityCity, 1930, 2100),
		ent("Leningrad", "Leningrad", model.EntityCity, 1924, 1991),
		ent("St. Petersburg", "St. Petersburg", model.EntityCity, 1703, 1914,
			"Saint Petersburg", "Sankt-Peterburg"),
		ent("Petrograd", "Petrograd", model.EntityCity, 1914, 1924),
		ent("St. Petersburg", "St. Petersburg", model.EntityCity, 1991, 2100,
			"Saint Petersburg"),
		ent("Bombay", "Bombay", model.EntityCity, 1534, 1995),
		ent("Mumbai", "Mumbai", model.EntityCity, 1995, 2100),
		ent("Peking", "Peking", model.EntityCity, 1403, 1949,
			"Peiping"),
		ent("Beijing", "Beijing", model.EntityCity, 1949, 2100),
		ent("Saigon", "Saigon", model.EntityCity, 1698, 1976),
		ent("Ho Chi Minh City", "Ho Chi Minh City", model.EntityCity, 1976, 2100),
	}
}
