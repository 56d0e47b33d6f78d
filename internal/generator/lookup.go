package generator

// Static lookup data used to synthesize plausible catalog entries.
// The category, brand and name vocabularies are fixed; the store does
// not enforce them.

var categories = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Sports & Outdoors",
	"Books",
	"Toys & Games",
	"Food & Beverages",
	"Health & Beauty",
	"Automotive",
	"Office Supplies",
}

var brands = []string{
	"TechPro", "SmartHome", "EcoLife", "ActiveGear", "ComfortZone",
	"PureNature", "UrbanStyle", "PowerMax", "VitalHealth", "CreativeMinds",
	"GreenChoice", "ProFit", "EliteQuality", "SwiftTech", "BrightFuture",
}

var productNames = map[string][]string{
	"Electronics":       {"Wireless Mouse", "Bluetooth Speaker", "Smart Watch", "USB Cable", "Power Bank", "Earbuds", "Keyboard", "Monitor", "Laptop Stand", "Webcam"},
	"Clothing":          {"T-Shirt", "Jeans", "Sneakers", "Jacket", "Dress", "Hoodie", "Socks", "Cap", "Scarf", "Gloves"},
	"Home & Garden":     {"Plant Pot", "Lamp", "Cushion", "Rug", "Curtains", "Wall Art", "Vase", "Candle", "Storage Box", "Clock"},
	"Sports & Outdoors": {"Yoga Mat", "Dumbbell", "Water Bottle", "Tent", "Backpack", "Sleeping Bag", "Hiking Boots", "Bike Helmet", "Running Shoes", "Fitness Band"},
	"Books":             {"Mystery Novel", "Cookbook", "Self-Help Guide", "Biography", "Science Fiction", "History Book", "Travel Guide", "Poetry Collection", "Art Book", "Technical Manual"},
	"Toys & Games":      {"Board Game", "Puzzle", "Action Figure", "Building Blocks", "Doll", "RC Car", "Card Game", "Educational Toy", "Sports Ball", "Craft Kit"},
	"Food & Beverages":  {"Organic Coffee", "Green Tea", "Protein Bar", "Dried Fruits", "Nuts Mix", "Chocolate", "Honey", "Olive Oil", "Spice Set", "Energy Drink"},
	"Health & Beauty":   {"Moisturizer", "Shampoo", "Sunscreen", "Face Mask", "Lip Balm", "Hand Cream", "Body Lotion", "Essential Oil", "Vitamin Supplement", "Face Serum"},
	"Automotive":        {"Car Charger", "Air Freshener", "Phone Mount", "Seat Cover", "Floor Mat", "Cleaning Kit", "Tool Set", "Emergency Kit", "Dash Cam", "Tire Gauge"},
	"Office Supplies":   {"Notebook", "Pen Set", "Desk Organizer", "Stapler", "Paper Clips", "Folder", "Planner", "Sticky Notes", "Calculator", "Tape Dispenser"},
}

var adjectives = []string{
	"Premium", "Deluxe", "Professional", "Ultimate", "Essential",
	"Compact", "Portable", "Advanced", "Classic", "Modern",
}

var descriptionTemplates = []string{
	"High-quality %[2]s from %[3]s. Perfect for everyday use.",
	"Experience excellence with this %[2]s by %[3]s. Built to last.",
	"%[3]s's %[2]s offers superior performance and reliability.",
	"Discover the perfect %[2]s for your needs. Made by %[3]s.",
	"Premium %[2]s designed with care by %[3]s. Exceptional value.",
	"Get the best %[2]s on the market from %[3]s. Customer favorite.",
	"%[3]s brings you an outstanding %[2]s. Quality guaranteed.",
	"Transform your %[1]s experience with this %[2]s from %[3]s.",
	"Innovative %[2]s by %[3]s. The smart choice for quality.",
	"Trusted %[2]s from %[3]s. Loved by thousands of customers.",
}

// Categories returns a copy of the category vocabulary.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Brands returns a copy of the brand vocabulary.
func Brands() []string {
	out := make([]string, len(brands))
	copy(out, brands)
	return out
}
