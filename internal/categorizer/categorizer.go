// Package categorizer maps free-text item names to store categories with a
// keyword table. It is a cheap heuristic: the lowercased name is tested for
// substring containment against each category's keywords in fixed table
// order, and the first category with any hit wins.
package categorizer

import "strings"

type category struct {
	Slug     string
	Keywords []string
}

// categories is iterated in order; earlier entries win ties. Keep the order
// stable so classification stays reproducible.
var categories = []category{
	{Slug: "produce", Keywords: []string{
		"apple", "banana", "orange", "grape", "lemon", "lime", "berr",
		"avocado", "lettuce", "spinach", "kale", "tomato", "onion", "garlic",
		"carrot", "potato", "pepper", "broccoli", "cucumber", "celery",
		"mushroom", "zucchini", "cabbage", "fruit", "vegetable", "salad",
	}},
	{Slug: "dairy", Keywords: []string{
		"milk", "cheese", "yogurt", "butter", "cream", "egg", "margarine",
	}},
	{Slug: "meat", Keywords: []string{
		"chicken", "beef", "pork", "turkey", "ham", "bacon", "sausage",
		"steak", "fish", "salmon", "tuna", "shrimp", "lamb",
	}},
	{Slug: "bakery", Keywords: []string{
		"bread", "bagel", "muffin", "croissant", "tortilla", "bun", "roll",
		"baguette", "cake", "pastry",
	}},
	{Slug: "pantry", Keywords: []string{
		"rice", "pasta", "noodle", "flour", "sugar", "salt", "oil",
		"vinegar", "sauce", "bean", "lentil", "cereal", "oats", "spice",
		"honey", "canned", "broth", "stock",
	}},
	{Slug: "beverages", Keywords: []string{
		"water", "juice", "soda", "coffee", "tea", "wine", "beer", "drink",
	}},
	{Slug: "frozen", Keywords: []string{
		"frozen", "pizza", "fries",
	}},
	{Slug: "snacks", Keywords: []string{
		"chips", "cracker", "cookie", "candy", "chocolate", "popcorn",
		"pretzel", "nuts", "granola",
	}},
	{Slug: "household", Keywords: []string{
		"paper towel", "toilet paper", "detergent", "soap", "shampoo",
		"cleaner", "sponge", "trash bag", "foil", "napkin", "tissue",
	}},
}

// Classify returns the category slug for an item name, or false when no
// keyword matches. Callers leave the item uncategorized on a miss rather
// than guessing.
func Classify(itemName string) (string, bool) {
	name := strings.ToLower(itemName)
	if name == "" {
		return "", false
	}
	for _, c := range categories {
		for _, keyword := range c.Keywords {
			if strings.Contains(name, keyword) {
				return c.Slug, true
			}
		}
	}
	return "", false
}

// Slugs returns the known category slugs in classification order.
func Slugs() []string {
	slugs := make([]string, len(categories))
	for i, c := range categories {
		slugs[i] = c.Slug
	}
	return slugs
}
