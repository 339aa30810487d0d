package keyword

import "github.com/SemTiOne/personal-finance-tracker/internal/model"

// DefaultIndex returns the built-in keyword configuration. Entry order is
// the tie-break priority order for categorization.
func DefaultIndex() *Index {
	return NewIndex([]Entry{
		{
			Category: "Food & Dining",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{
				"restaurant", "cafe", "coffee", "food", "grocery", "supermarket",
				"bakery", "starbucks", "mcdonald", "pizza", "burger", "sushi",
				"delivery", "uber eats", "doordash", "grubhub", "dining", "deli",
			},
		},
		{
			Category: "Transportation",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{
				"gas", "fuel", "uber", "lyft", "taxi", "parking", "car wash",
				"toll", "metro", "bus", "train", "subway", "vehicle",
				"oil change", "auto repair",
			},
		},
		{
			Category: "Shopping",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{
				"amazon", "walmart", "target", "costco", "mall", "store",
				"clothing", "shoes", "electronics", "online shopping", "ebay",
				"etsy", "fashion", "retail", "ikea",
			},
		},
		{
			Category: "Bills & Utilities",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{
				"electric", "water bill", "gas bill", "internet", "phone",
				"cable", "insurance", "rent", "mortgage", "utility",
				"subscription", "netflix", "spotify", "hulu", "trash",
			},
		},
		{
			Category: "Entertainment",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{
				"movie", "cinema", "theater", "concert", "game", "streaming",
				"hobby", "sports", "gym", "fitness", "recreation", "amusement",
				"ticket", "arcade",
			},
		},
		{
			Category: "Healthcare",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{
				"pharmacy", "doctor", "hospital", "clinic", "medical",
				"dentist", "prescription", "health", "medicine", "therapy",
				"wellness", "optometrist",
			},
		},
		{
			Category: "Travel",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{
				"hotel", "airline", "flight", "airbnb", "booking.com",
				"resort", "cruise", "rental car", "travel",
			},
		},
		{
			Category: "Education",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{
				"tuition", "textbook", "course", "udemy", "coursera",
				"school", "university", "workshop",
			},
		},
		{
			Category: "Personal Care",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{
				"salon", "barber", "spa", "haircut", "cosmetics",
				"skincare", "laundry", "dry cleaning",
			},
		},
		{
			Category: "Salary",
			Type:     model.CategoryTypeIncome,
			Keywords: []string{
				"salary", "payroll", "wages", "paycheck", "employer",
				"direct deposit",
			},
		},
		{
			Category: "Freelance",
			Type:     model.CategoryTypeIncome,
			Keywords: []string{
				"freelance", "consulting", "contract", "gig", "side job",
				"project payment", "invoice",
			},
		},
		{
			Category: "Investments",
			Type:     model.CategoryTypeIncome,
			Keywords: []string{
				"dividend", "interest payment", "capital gain", "brokerage",
				"bond",
			},
		},
	})
}
