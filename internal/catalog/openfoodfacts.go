package catalog

// OpenFoodFacts returns the catalog for Open Food Facts nutriment keys
// (the `*_100g` fields of the v2 product API and of the bulk columnar
// dump). Alias keys (thiamin_100g vs vitamin-b1_100g, …) map to the same
// canonical entry so products tagged either way land on one nutrient row.
func OpenFoodFacts() *Catalog {
	return New(map[string]Entry{
		"energy-kcal_100g": {Name: "Calories", Unit: "kcal", DailyValue: 2000},
		"proteins_100g":    {Name: "Protein", Unit: "g", DailyValue: 50},
		"carbohydrates_100g": {Name: "Carbohydrates", Unit: "g", DailyValue: 300},
		"sugars_100g":        {Name: "Sugar", Unit: "g", DailyValue: 50},
		"fat_100g":           {Name: "Total Fat", Unit: "g", DailyValue: 65},
		"saturated-fat_100g": {Name: "Saturated Fat", Unit: "g", DailyValue: 20},
		"fiber_100g":         {Name: "Fiber", Unit: "g", DailyValue: 25},
		"sodium_100g":        {Name: "Sodium", Unit: "mg", DailyValue: 2300},

		"vitamin-a_100g":   {Name: "Vitamin A", Unit: "µg", DailyValue: 900},
		"vitamin-c_100g":   {Name: "Vitamin C", Unit: "mg", DailyValue: 90},
		"vitamin-d_100g":   {Name: "Vitamin D", Unit: "µg", DailyValue: 20},
		"vitamin-e_100g":   {Name: "Vitamin E", Unit: "mg", DailyValue: 15},
		"vitamin-k_100g":   {Name: "Vitamin K", Unit: "µg", DailyValue: 120},
		"vitamin-b1_100g":  {Name: "Thiamine (B1)", Unit: "mg", DailyValue: 1.2},
		"thiamin_100g":     {Name: "Thiamine (B1)", Unit: "mg", DailyValue: 1.2},
		"vitamin-b2_100g":  {Name: "Riboflavin (B2)", Unit: "mg", DailyValue: 1.3},
		"riboflavin_100g":  {Name: "Riboflavin (B2)", Unit: "mg", DailyValue: 1.3},
		"vitamin-b3_100g":  {Name: "Niacin (B3)", Unit: "mg", DailyValue: 16},
		"niacin_100g":      {Name: "Niacin (B3)", Unit: "mg", DailyValue: 16},
		"vitamin-b6_100g":  {Name: "Vitamin B6", Unit: "mg", DailyValue: 1.7},
		"vitamin-b9_100g":  {Name: "Folate (B9)", Unit: "µg", DailyValue: 400},
		"folates_100g":     {Name: "Folate (B9)", Unit: "µg", DailyValue: 400},
		"vitamin-b12_100g": {Name: "Vitamin B12", Unit: "µg", DailyValue: 2.4},
		"biotin_100g":      {Name: "Biotin", Unit: "µg", DailyValue: 30},
		"pantothenic-acid_100g": {Name: "Pantothenic Acid", Unit: "mg", DailyValue: 5},
		"vitamin-b5_100g":       {Name: "Pantothenic Acid", Unit: "mg", DailyValue: 5},

		"calcium_100g":    {Name: "Calcium", Unit: "mg", DailyValue: 1300},
		"iron_100g":       {Name: "Iron", Unit: "mg", DailyValue: 18},
		"magnesium_100g":  {Name: "Magnesium", Unit: "mg", DailyValue: 420},
		"zinc_100g":       {Name: "Zinc", Unit: "mg", DailyValue: 11},
		"iodine_100g":     {Name: "Iodine", Unit: "µg", DailyValue: 150},
		"selenium_100g":   {Name: "Selenium", Unit: "µg", DailyValue: 55},
		"copper_100g":     {Name: "Copper", Unit: "mg", DailyValue: 0.9},
		"manganese_100g":  {Name: "Manganese", Unit: "mg", DailyValue: 2.3},
		"phosphorus_100g": {Name: "Phosphorus", Unit: "mg", DailyValue: 1250},
		"potassium_100g":  {Name: "Potassium", Unit: "mg", DailyValue: 3400},
		"chromium_100g":   {Name: "Chromium", Unit: "µg", DailyValue: 35},

		"omega-3-fatty-acids_100g": {Name: "Omega-3", Unit: "mg", DailyValue: 1600},
		"omega-6-fatty-acids_100g": {Name: "Omega-6", Unit: "mg"},
		"cholesterol_100g":         {Name: "Cholesterol", Unit: "mg", DailyValue: 300},
		"caffeine_100g":            {Name: "Caffeine", Unit: "mg"},
		"collagen_100g":            {Name: "Collagen", Unit: "g"},
	})
}
