package genre

// FallbackMap is a manual artist-to-genres table used when the
// catalog API returns no genre data for an artist.
var FallbackMap = map[string][]string{
	"NF":                   {"hip hop", "christian hip hop", "rap"},
	"Billie Eilish":        {"pop", "alternative", "indie pop"},
	"Eminem":               {"hip hop", "rap"},
	"Tom Odell":            {"indie pop", "alternative", "singer-songwriter"},
	"Ed Sheeran":           {"pop", "singer-songwriter"},
	"Kendrick Lamar":       {"hip hop", "rap", "conscious hip hop"},
	"Anne-Marie":           {"pop", "dance pop"},
	"Wizkid":               {"afrobeats", "afropop"},
	"Lana Del Rey":         {"indie pop", "dream pop", "alternative"},
	"Burna Boy":            {"afrobeats", "afrofusion"},
	"Harry Styles":         {"pop", "rock", "indie pop"},
	"SZA":                  {"r&b", "pop", "alternative r&b"},
	"Michael Jackson":      {"pop", "r&b", "soul", "funk"},
	"J. Cole":              {"hip hop", "rap", "conscious hip hop"},
	"Cigarettes After Sex": {"dream pop", "ambient pop", "indie pop"},
	"Coldplay":             {"pop", "alternative rock", "indie rock"},
	"Tyla":                 {"afrobeats", "afropop", "r&b"},
	"Lewis Capaldi":        {"pop", "singer-songwriter", "soul"},
	"Niall Horan":          {"pop", "singer-songwriter"},
	"One Direction":        {"pop"},
	"Drake":                {"hip hop", "rap", "r&b"},
	"Justin Bieber":        {"pop", "r&b", "dance pop"},
	"P-Square":             {"afrobeats", "afropop", "r&b"},
	"Hillsong Worship":     {"christian", "worship", "contemporary christian"},
	"The Weeknd":           {"r&b", "pop", "alternative r&b"},
	"Sia":                  {"pop", "dance pop", "electropop"},
	"Post Malone":          {"pop", "hip hop", "trap"},
	"Bruno Mars":           {"pop", "r&b", "funk", "soul"},
	"Rema":                 {"afrobeats", "afropop"},
	"Dave":                 {"hip hop", "rap", "uk rap"},
	"Asake":                {"afrobeats", "street pop"},
	"Adele":                {"pop", "soul", "singer-songwriter"},
	"Rihanna":              {"r&b", "pop", "dance pop"},
	"d4vd":                 {"indie pop", "alternative r&b", "bedroom pop"},
	"Metro Boomin":         {"hip hop", "trap", "rap"},
	"Omah Lay":             {"afrobeats", "afropop"},
	"Labrinth":             {"r&b", "pop", "alternative"},
	"Hans Zimmer":          {"soundtrack", "orchestral", "classical"},
	"RAYE":                 {"pop", "r&b", "soul"},
	"Sabrina Carpenter":    {"pop", "singer-songwriter"},
	"Childish Gambino":     {"hip hop", "r&b", "indie", "funk"},
	"Kanye West":           {"hip hop", "rap", "alternative hip hop"},
	"Tems":                 {"afrobeats", "afrosoul", "r&b"},
	"2Baba":                {"afrobeats", "afropop"},
	"Chris Brown":          {"r&b", "pop", "dance pop"},
	"Tame Impala":          {"psychedelic rock", "indie rock", "alternative"},
	"Conan Gray":           {"indie pop", "singer-songwriter", "alternative"},
	"Russ":                 {"hip hop", "r&b", "rap"},
	"Davido":               {"afrobeats", "afropop"},
	"Fireboy DML":          {"afrobeats", "afropop"},
	"Ayra Starr":           {"afrobeats", "afropop"},
	"Kizz Daniel":          {"afrobeats", "afropop"},
	"Flavour":              {"afrobeats", "highlife"},
	"Tekno":                {"afrobeats", "afropop"},
	"Yemi Alade":           {"afrobeats", "afropop"},
	"Mr Eazi":              {"afrobeats", "banku music"},
	"Joeboy":               {"afrobeats", "afropop"},
	"Johnny Drille":        {"afrobeats", "alternative"},
	"Adekunle Gold":        {"afrobeats", "afropop", "alternative"},
	"Simi":                 {"afrobeats", "afropop", "r&b"},
	"Falz":                 {"afrobeats", "hip hop"},
	"Olamide":              {"afrobeats", "street pop", "hip hop"},
	"Phyno":                {"afrobeats", "hip hop"},
	"Zlatan":               {"afrobeats", "street pop"},
	"Fela Kuti":            {"afrobeats", "highlife", "afrojuju"},
	"Oxlade":               {"afrobeats", "afrosoul", "r&b"},
	"Ladipoe":              {"afrobeats", "hip hop"},
	"Blaqbonez":            {"afrobeats", "hip hop"},
	"Shallipopi":           {"afrobeats", "street pop"},
	"Seyi Vibez":           {"afrobeats", "street pop"},
	"Ruger":                {"afrobeats", "afropop"},
	"BNXN":                 {"afrobeats", "afropop", "r&b"},
	"Amaarae":              {"afrobeats", "alternative", "r&b"},
	"Tiwa Savage":          {"afrobeats", "afropop"},
	"Wande Coal":           {"afrobeats", "afropop", "r&b"},
	"Patoranking":          {"afrobeats", "reggae dancehall"},
	"Timaya":               {"afrobeats", "afropop"},
	"D'banj":               {"afrobeats", "afropop"},
	"Lojay":                {"afrobeats", "afropop"},
	"Fave":                 {"afrobeats", "afropop"},
	"Naira Marley":         {"afrobeats", "street pop"},
	"Cruel Santino":        {"afrobeats", "alternative", "r&b"},
	"King Sunny Ade":       {"highlife", "juju"},
	"Seun Kuti":            {"afrobeats", "afrojuju"},
	"Femi Kuti":            {"afrobeats", "afrojuju"},
	"Sarkodie":             {"hiplife", "hip hop"},
	"Stonebwoy":            {"afrobeats", "reggae dancehall"},
	"Black Sherif":         {"afrobeats", "hip hop"},
	"KiDi":                 {"afrobeats", "afropop"},
	"Diamond Platnumz":     {"bongo flava", "afrobeats"},
	"Sauti Sol":            {"afropop", "r&b"},
	"Nasty C":              {"hip hop", "rap"},
	"Master KG":            {"afrobeats", "amapiano"},
	"Kabza De Small":       {"amapiano"},
	"DJ Maphorisa":         {"amapiano"},
	"Bad Bunny":            {"latin", "reggaeton"},
	"21 Savage":            {"hip hop", "rap", "trap"},
	"Future":               {"hip hop", "trap"},
	"Doja Cat":             {"pop", "r&b", "hip hop"},
	"Ariana Grande":        {"pop", "r&b"},
	"Dua Lipa":             {"pop", "dance"},
	"Taylor Swift":         {"pop", "country"},
	"Beyoncé":              {"r&b", "pop"},
	"Travis Scott":         {"hip hop", "rap", "trap"},
}

// NigerianArtists supports nationality filtering of rankings.
var NigerianArtists = map[string]bool{
	"Fela Kuti":      true,
	"King Sunny Ade": true,
	"Seun Kuti":      true,
	"Femi Kuti":      true,
	"2Baba":          true,
	"P-Square":       true,
	"D'banj":         true,
	"Davido":         true,
	"Wizkid":         true,
	"Burna Boy":      true,
	"Olamide":        true,
	"Phyno":          true,
	"Flavour":        true,
	"Tekno":          true,
	"Yemi Alade":     true,
	"Tiwa Savage":    true,
	"Wande Coal":     true,
	"Patoranking":    true,
	"Timaya":         true,
	"Kizz Daniel":    true,
	"Asake":          true,
	"Rema":           true,
	"Fireboy DML":    true,
	"Omah Lay":       true,
	"Tems":           true,
	"Ayra Starr":     true,
	"Joeboy":         true,
	"Johnny Drille":  true,
	"Adekunle Gold":  true,
	"Simi":           true,
	"Falz":           true,
	"Ladipoe":        true,
	"Blaqbonez":      true,
	"Cruel Santino":  true,
	"Oxlade":         true,
	"Lojay":          true,
	"Ruger":          true,
	"BNXN":           true,
	"Shallipopi":     true,
	"Seyi Vibez":     true,
	"Zlatan":         true,
	"Naira Marley":   true,
	"Fave":           true,
	"Tyla":           true,
	"Amaarae":        true,
	"Mr Eazi":        true,
}
