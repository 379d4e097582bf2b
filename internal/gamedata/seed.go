package gamedata

// seedActs is the built-in area dataset covering the ten campaign acts.
// Naming follows the game's own data, inconsistencies included: some
// areas carry a "The " prefix and some do not, several names repeat
// across acts (the second half of the campaign revisits earlier
// regions), and a few areas expose an alternate map name.
var seedActs = [][]ZoneRecord{
	// Act 1
	{
		{ID: "1_1_1", Name: "Twilight Strand"},
		{ID: "1_1_town", Name: "Lioneye's Watch"},
		{ID: "1_1_2", Name: "Coast"},
		{ID: "1_1_2_2", Name: "Tidal Island"},
		{ID: "1_1_3", Name: "Mud Flats"},
		{ID: "1_1_3_1", Name: "Fetid Pool"},
		{ID: "1_1_4_0", Name: "Flooded Depths"},
		{ID: "1_1_4_1", Name: "Submerged Passage", MapName: "The Submerged Passage"},
		{ID: "1_1_5", Name: "The Ledge"},
		{ID: "1_1_6", Name: "The Climb"},
		{ID: "1_1_7_1", Name: "Lower Prison"},
		{ID: "1_1_7_2", Name: "Upper Prison"},
		{ID: "1_1_8", Name: "Prisoner's Gate"},
		{ID: "1_1_9", Name: "Ship Graveyard"},
		{ID: "1_1_9_1", Name: "Ship Graveyard Cave"},
		{ID: "1_1_11_1", Name: "Cavern of Wrath"},
		{ID: "1_1_11_2", Name: "Cavern of Anger"},
	},
	// Act 2
	{
		{ID: "1_2_1", Name: "Southern Forest"},
		{ID: "1_2_town", Name: "Forest Encampment"},
		{ID: "1_2_2", Name: "Old Fields"},
		{ID: "1_2_3", Name: "Den", MapName: "The Den"},
		{ID: "1_2_4", Name: "Crossroads"},
		{ID: "1_2_5_1", Name: "Chamber of Sins Level 1"},
		{ID: "1_2_5_2", Name: "Chamber of Sins Level 2"},
		{ID: "1_2_6", Name: "Broken Bridge"},
		{ID: "1_2_7", Name: "Riverways", MapName: "The Riverways"},
		{ID: "1_2_8", Name: "Western Forest"},
		{ID: "1_2_10_3", Name: "Weaver's Chambers"},
		{ID: "1_2_11", Name: "Wetlands"},
		{ID: "1_2_12", Name: "Vaal Ruins"},
		{ID: "1_2_13", Name: "Northern Forest"},
		{ID: "1_2_14", Name: "Caverns"},
		{ID: "1_2_14_1", Name: "Ancient Pyramid"},
	},
	// Act 3
	{
		{ID: "1_3_1", Name: "City of Sarn"},
		{ID: "1_3_town", Name: "Sarn Encampment"},
		{ID: "1_3_2", Name: "Slums"},
		{ID: "1_3_3_1", Name: "Crematorium"},
		{ID: "1_3_5", Name: "Sewers"},
		{ID: "1_3_6", Name: "Marketplace"},
		{ID: "1_3_6_1", Name: "Catacombs"},
		{ID: "1_3_7", Name: "Battlefront"},
		{ID: "1_3_8", Name: "Docks"},
		{ID: "1_3_10_1", Name: "Solaris Temple"},
		{ID: "1_3_10_2", Name: "Solaris Temple Level 2"},
		{ID: "1_3_12", Name: "Ebony Barracks"},
		{ID: "1_3_13_1", Name: "Lunaris Temple"},
		{ID: "1_3_13_2", Name: "Lunaris Temple Level 2"},
		{ID: "1_3_14", Name: "Imperial Gardens"},
		{ID: "1_3_15_1", Name: "Sceptre of God"},
		{ID: "1_3_15_2", Name: "Upper Sceptre of God"},
	},
	// Act 4
	{
		{ID: "1_4_1", Name: "Aqueduct", MapName: "The Aqueduct"},
		{ID: "1_4_town", Name: "Highgate"},
		{ID: "1_4_2", Name: "Dried Lake"},
		{ID: "1_4_3_1", Name: "Mines Level 1"},
		{ID: "1_4_3_2", Name: "Crystal Veins"},
		{ID: "1_4_4_1", Name: "Kaom's Dream"},
		{ID: "1_4_4_2", Name: "Harvest", MapName: "The Harvest"},
		{ID: "1_4_5_1", Name: "Belly of the Beast Level 1"},
		{ID: "1_4_5_2", Name: "Belly of the Beast Level 2"},
		{ID: "1_4_6", Name: "Ascent"},
	},
	// Act 5
	{
		{ID: "1_5_1", Name: "Slave Pens"},
		{ID: "1_5_town", Name: "Overseer's Tower"},
		{ID: "1_5_2", Name: "Oriath Square"},
		{ID: "1_5_3", Name: "Control Blocks"},
		{ID: "1_5_3_1", Name: "Templar Courts"},
		{ID: "1_5_4", Name: "Chamber of Innocence"},
		{ID: "1_5_5", Name: "Torched Courts"},
		{ID: "1_5_6", Name: "Ruined Square"},
		{ID: "1_5_7", Name: "Reliquary"},
		{ID: "1_5_8", Name: "Cathedral Rooftop"},
	},
	// Act 6
	{
		{ID: "1_6_1", Name: "Twilight Strand"},
		{ID: "1_6_town", Name: "Lioneye's Watch"},
		{ID: "1_6_2", Name: "Coast"},
		{ID: "1_6_3", Name: "Mud Flats"},
		{ID: "1_6_4", Name: "Karui Fortress"},
		{ID: "1_6_5", Name: "Ridge", MapName: "The Ridge"},
		{ID: "1_6_6_1", Name: "Lower Prison"},
		{ID: "1_6_7", Name: "Prisoner's Gate"},
		{ID: "1_6_8", Name: "Western Forest"},
		{ID: "1_6_9", Name: "Riverways"},
		{ID: "1_6_10_2", Name: "Shavronne's Tower"},
		{ID: "1_6_11", Name: "Wetlands"},
		{ID: "1_6_12", Name: "Southern Forest"},
		{ID: "1_6_13", Name: "Cavern of Anger"},
		{ID: "1_6_14", Name: "Beacon", MapName: "The Beacon"},
		{ID: "1_6_30_4", Name: "Brine King's Reef"},
	},
	// Act 7
	{
		{ID: "1_7_1", Name: "Broken Bridge"},
		{ID: "1_7_town", Name: "Bridge Encampment"},
		{ID: "1_7_2", Name: "Crossroads"},
		{ID: "1_7_3", Name: "Fellshrine Ruins"},
		{ID: "1_7_4", Name: "Crypt"},
		{ID: "1_7_5_1", Name: "Chamber of Sins Level 1"},
		{ID: "1_7_5_2", Name: "Chamber of Sins Level 2"},
		{ID: "1_7_6", Name: "Den"},
		{ID: "1_7_7_2", Name: "Maligaro's Sanctum"},
		{ID: "1_7_8", Name: "Ashen Fields"},
		{ID: "1_7_9", Name: "Northern Forest"},
		{ID: "1_7_10", Name: "Dread Thicket"},
		{ID: "1_7_10_3", Name: "Kishara's Landing"},
		{ID: "1_7_11", Name: "Causeway"},
		{ID: "1_7_12", Name: "Vaal City"},
		{ID: "1_7_13", Name: "Temple of Decay"},
	},
	// Act 8
	{
		{ID: "1_8_1", Name: "Sarn Ramparts"},
		{ID: "1_8_town", Name: "Sarn Encampment"},
		{ID: "1_8_2", Name: "Toxic Conduits"},
		{ID: "1_8_3", Name: "Doedre's Cesspool"},
		{ID: "1_8_5", Name: "Quay"},
		{ID: "1_8_6", Name: "Grain Gate"},
		{ID: "1_8_7", Name: "Imperial Fields"},
		{ID: "1_8_8", Name: "Grand Promenade"},
		{ID: "1_8_9_1", Name: "Solaris Temple"},
		{ID: "1_8_10_1", Name: "High Gardens"},
		{ID: "1_8_11", Name: "Bath House"},
		{ID: "1_8_12_1", Name: "Lunaris Temple"},
		{ID: "1_8_12_3", Name: "Harbour Bridge"},
	},
	// Act 9
	{
		{ID: "1_9_1", Name: "Blood Aqueduct"},
		{ID: "1_9_town", Name: "Highgate"},
		{ID: "1_9_2", Name: "Descent"},
		{ID: "1_9_3", Name: "Vastiri Desert"},
		{ID: "1_9_4", Name: "Oasis"},
		{ID: "1_9_5", Name: "Foothills"},
		{ID: "1_9_6", Name: "Boiling Lake"},
		{ID: "1_9_7", Name: "Tunnel"},
		{ID: "1_9_8", Name: "Quarry"},
		{ID: "1_9_9", Name: "Refinery"},
		{ID: "1_9_10_1", Name: "Belly of the Beast"},
		{ID: "1_9_10_2", Name: "Black Core"},
		{ID: "1_9_13", Name: "Rotting Core", MapName: "The Rotting Core"},
	},
	// Act 10
	{
		{ID: "1_10_1", Name: "Cathedral Rooftop"},
		{ID: "1_10_town", Name: "Oriath Docks"},
		{ID: "1_10_2", Name: "Ravaged Square"},
		{ID: "1_10_3", Name: "Torched Courts"},
		{ID: "1_10_4", Name: "Desecrated Chambers"},
		{ID: "1_10_5", Name: "Canals"},
		{ID: "1_10_6", Name: "Feeding Trough"},
		{ID: "1_10_8", Name: "Ossuary"},
		{ID: "1_10_9", Name: "Basilica"},
		{ID: "1_10_11", Name: "Kitava's Throne"},
	},
}
