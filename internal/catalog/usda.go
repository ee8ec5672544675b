package catalog

// USDA returns the catalog for FoodData Central records, keyed by the
// numeric nutrient IDs of the foodNutrients payload (formatted through
// USDAKey). Vitamins A and D keep the IU units the Branded dataset uses.
func USDA() *Catalog {
	ids := map[int]Entry{
		1008: {Name: "Calories", Unit: "kcal", DailyValue: 2000},
		1003: {Name: "Protein", Unit: "g", DailyValue: 50},
		1004: {Name: "Total Fat", Unit: "g", DailyValue: 65},
		1005: {Name: "Carbohydrates", Unit: "g", DailyValue: 300},
		1009: {Name: "Sugar", Unit: "g", DailyValue: 50},
		1079: {Name: "Fiber", Unit: "g", DailyValue: 25},
		1093: {Name: "Sodium", Unit: "mg", DailyValue: 2300},

		1104: {Name: "Vitamin A", Unit: "IU", DailyValue: 5000},
		1162: {Name: "Vitamin C", Unit: "mg", DailyValue: 90},
		1110: {Name: "Vitamin D", Unit: "IU", DailyValue: 400},
		1109: {Name: "Vitamin E", Unit: "mg", DailyValue: 15},
		1183: {Name: "Vitamin K", Unit: "µg", DailyValue: 120},
		1165: {Name: "Thiamine (B1)", Unit: "mg", DailyValue: 1.2},
		1166: {Name: "Riboflavin (B2)", Unit: "mg", DailyValue: 1.3},
		1167: {Name: "Niacin (B3)", Unit: "mg", DailyValue: 16},
		1175: {Name: "Vitamin B6", Unit: "mg", DailyValue: 1.7},
		1177: {Name: "Folate (B9)", Unit: "µg", DailyValue: 400},
		1178: {Name: "Vitamin B12", Unit: "µg", DailyValue: 2.4},

		1087: {Name: "Calcium", Unit: "mg", DailyValue: 1000},
		1089: {Name: "Iron", Unit: "mg", DailyValue: 18},
		1090: {Name: "Magnesium", Unit: "mg", DailyValue: 400},
		1092: {Name: "Potassium", Unit: "mg", DailyValue: 3500},
		1095: {Name: "Zinc", Unit: "mg", DailyValue: 11},
		1099: {Name: "Copper", Unit: "mg", DailyValue: 0.9},
		1101: {Name: "Manganese", Unit: "mg", DailyValue: 2.3},
	}

	entries := make(map[string]Entry, len(ids))
	for id, e := range ids {
		entries[USDAKey(id)] = e
	}
	return New(entries)
}
