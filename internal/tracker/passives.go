package tracker

// passiveZones holds the area ids whose completion quest grants a
// passive skill point, two per act. Entering one of these areas for
// the first time counts the point; the reward is one-time only.
var passiveZones = map[string]struct{}{
	// Act 1: Upper Prison (Brutus), Cavern of Wrath (Merveil)
	"1_1_7_2": {}, "1_1_11_1": {},
	// Act 2: Weaver's Chambers, Ancient Pyramid
	"1_2_10_3": {}, "1_2_14_1": {},
	// Act 3: Lunaris Temple Level 2 (Piety), Upper Sceptre of God
	"1_3_13_2": {}, "1_3_15_2": {},
	// Act 4: Crystal Veins, Harvest (Malachai)
	"1_4_3_2": {}, "1_4_4_2": {},
	// Act 5: Control Blocks, Chamber of Innocence
	"1_5_3": {}, "1_5_4": {},
	// Act 6: Shavronne's Tower, Brine King's Reef
	"1_6_10_2": {}, "1_6_30_4": {},
	// Act 7: Maligaro's Sanctum, Kishara's Landing
	"1_7_7_2": {}, "1_7_10_3": {},
	// Act 8: High Gardens (Yugul), Harbour Bridge (Solaris & Lunaris)
	"1_8_10_1": {}, "1_8_12_3": {},
	// Act 9: Black Core, Rotting Core
	"1_9_10_2": {}, "1_9_13": {},
	// Act 10: Basilica (Avarius), Kitava's Throne
	"1_10_9": {}, "1_10_11": {},
}

// IsPassiveZone reports whether entering the area grants a passive point.
func IsPassiveZone(zoneID string) bool {
	_, ok := passiveZones[zoneID]
	return ok
}
