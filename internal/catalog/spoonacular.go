package catalog

// Spoonacular returns the catalog for Spoonacular product nutrition, keyed
// by the plain-English nutrient names of its `nutrition.nutrients` list.
func Spoonacular() *Catalog {
	return New(map[string]Entry{
		"Calories":      {Name: "Calories", Unit: "kcal", DailyValue: 2000},
		"Protein":       {Name: "Protein", Unit: "g", DailyValue: 50},
		"Total Fat":     {Name: "Total Fat", Unit: "g", DailyValue: 65},
		"Fat":           {Name: "Total Fat", Unit: "g", DailyValue: 65},
		"Carbohydrates": {Name: "Carbohydrates", Unit: "g", DailyValue: 300},
		"Sugar":         {Name: "Sugar", Unit: "g", DailyValue: 50},
		"Sodium":        {Name: "Sodium", Unit: "mg", DailyValue: 2300},
		"Fiber":         {Name: "Fiber", Unit: "g", DailyValue: 25},

		"Vitamin A":        {Name: "Vitamin A", Unit: "IU", DailyValue: 5000},
		"Vitamin C":        {Name: "Vitamin C", Unit: "mg", DailyValue: 90},
		"Vitamin D":        {Name: "Vitamin D", Unit: "IU", DailyValue: 400},
		"Vitamin E":        {Name: "Vitamin E", Unit: "mg", DailyValue: 15},
		"Vitamin K":        {Name: "Vitamin K", Unit: "µg", DailyValue: 120},
		"Thiamin":          {Name: "Thiamine (B1)", Unit: "mg", DailyValue: 1.2},
		"Riboflavin":       {Name: "Riboflavin (B2)", Unit: "mg", DailyValue: 1.3},
		"Niacin":           {Name: "Niacin (B3)", Unit: "mg", DailyValue: 16},
		"Vitamin B6":       {Name: "Vitamin B6", Unit: "mg", DailyValue: 1.7},
		"Folate":           {Name: "Folate (B9)", Unit: "µg", DailyValue: 400},
		"Vitamin B12":      {Name: "Vitamin B12", Unit: "µg", DailyValue: 2.4},
		"Biotin":           {Name: "Biotin", Unit: "µg", DailyValue: 30},
		"Pantothenic Acid": {Name: "Pantothenic Acid", Unit: "mg", DailyValue: 5},

		"Calcium":   {Name: "Calcium", Unit: "mg", DailyValue: 1000},
		"Iron":      {Name: "Iron", Unit: "mg", DailyValue: 18},
		"Magnesium": {Name: "Magnesium", Unit: "mg", DailyValue: 400},
		"Zinc":      {Name: "Zinc", Unit: "mg", DailyValue: 11},
		"Selenium":  {Name: "Selenium", Unit: "µg", DailyValue: 55},
		"Copper":    {Name: "Copper", Unit: "mg", DailyValue: 0.9},
		"Manganese": {Name: "Manganese", Unit: "mg", DailyValue: 2.3},
		"Potassium": {Name: "Potassium", Unit: "mg", DailyValue: 3500},
	})
}
