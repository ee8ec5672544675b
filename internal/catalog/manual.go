package catalog

// Manual returns the catalog used by the built-in seed adapter and by
// hand-entered records. Keys are the canonical names themselves; entries
// whose nutrient has no established reference intake (EPA, DHA, probiotic
// blends, herbal extracts) carry a zero daily value so the percent-of-DV
// stays nil.
func Manual() *Catalog {
	return New(map[string]Entry{
		"Vitamin A":        {Name: "Vitamin A", Unit: "µg", DailyValue: 900},
		"Vitamin C":        {Name: "Vitamin C", Unit: "mg", DailyValue: 90},
		"Vitamin D":        {Name: "Vitamin D", Unit: "µg", DailyValue: 20},
		"Vitamin D3":       {Name: "Vitamin D3", Unit: "µg", DailyValue: 20},
		"Vitamin E":        {Name: "Vitamin E", Unit: "mg", DailyValue: 15},
		"Vitamin K":        {Name: "Vitamin K", Unit: "µg", DailyValue: 120},
		"Thiamine (B1)":    {Name: "Thiamine (B1)", Unit: "mg", DailyValue: 1.2},
		"Thiamine":         {Name: "Thiamine", Unit: "mg", DailyValue: 1.2},
		"Riboflavin (B2)":  {Name: "Riboflavin (B2)", Unit: "mg", DailyValue: 1.3},
		"Riboflavin":       {Name: "Riboflavin", Unit: "mg", DailyValue: 1.3},
		"Niacin (B3)":      {Name: "Niacin (B3)", Unit: "mg", DailyValue: 16},
		"Niacin":           {Name: "Niacin", Unit: "mg", DailyValue: 16},
		"Vitamin B6":       {Name: "Vitamin B6", Unit: "mg", DailyValue: 1.7},
		"Folate":           {Name: "Folate", Unit: "µg", DailyValue: 400},
		"Vitamin B12":      {Name: "Vitamin B12", Unit: "µg", DailyValue: 2.4},
		"Biotin":           {Name: "Biotin", Unit: "µg", DailyValue: 30},
		"Pantothenic Acid": {Name: "Pantothenic Acid", Unit: "mg", DailyValue: 5},

		"Calcium":   {Name: "Calcium", Unit: "mg", DailyValue: 1300},
		"Iron":      {Name: "Iron", Unit: "mg", DailyValue: 18},
		"Magnesium": {Name: "Magnesium", Unit: "mg", DailyValue: 420},
		"Zinc":      {Name: "Zinc", Unit: "mg", DailyValue: 11},
		"Potassium": {Name: "Potassium", Unit: "mg", DailyValue: 3400},
		"Selenium":  {Name: "Selenium", Unit: "µg", DailyValue: 55},

		"EPA":             {Name: "EPA", Unit: "mg"},
		"DHA":             {Name: "DHA", Unit: "mg"},
		"Total Omega-3":   {Name: "Total Omega-3", Unit: "mg"},
		"Probiotic Blend": {Name: "Probiotic Blend", Unit: "billion CFU"},
		"CoQ10":           {Name: "CoQ10", Unit: "mg"},
		"Melatonin":       {Name: "Melatonin", Unit: "mg"},
		"Collagen":        {Name: "Collagen", Unit: "g"},
		"Curcumin":        {Name: "Curcumin", Unit: "mg"},
		"Ashwagandha":     {Name: "Ashwagandha", Unit: "mg"},
	})
}
