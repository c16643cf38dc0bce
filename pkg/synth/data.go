package synth

// =============================================================================
// Word tables: People
// =============================================================================

var firstNames = []string{
	"John", "Jane", "Alex", "Maria", "Sam", "Taylor", "Jordan", "Morgan",
	"Priya", "Kenji", "Amara", "Lucas", "Noor", "Elena", "Diego", "Ingrid",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Okafor", "Tanaka", "Novak", "Silva", "Haddad", "Larsen", "Kowalski", "Reyes",
}

var jobLevels = []string{"Senior", "Junior", "Lead", "Principal", "Staff"}

var jobFields = []string{
	"Software", "Data", "Product", "Marketing", "Sales",
	"Operations", "Security", "Infrastructure", "Quality", "Research",
}

var jobRoles = []string{
	"Engineer", "Analyst", "Manager", "Designer", "Architect",
	"Consultant", "Developer", "Specialist", "Coordinator", "Strategist",
}

// =============================================================================
// Word tables: Places
// =============================================================================

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"San Francisco", "Seattle", "Austin", "Denver", "Boston",
}

var countries = []string{"US", "GB", "CA", "DE", "FR", "JP", "AU", "BR", "IN", "NL"}

var streets = []string{"Main St", "Oak Ave", "Park Blvd", "Cedar Ln", "Elm St", "Lakeview Dr"}

// =============================================================================
// Word tables: Commerce
// =============================================================================

var companyNames = []string{"Acme", "Globex", "Initech", "Umbrella", "Stark", "Wayne", "Pied Piper", "Hooli"}

var companySuffixes = []string{"Corp", "Inc", "LLC", "Ltd", "Group"}

var productAdjectives = []string{
	"Rustic", "Elegant", "Handcrafted", "Refined", "Sleek",
	"Practical", "Modern", "Vintage", "Premium", "Compact",
}

var productNouns = []string{
	"Chair", "Table", "Lamp", "Keyboard", "Mouse",
	"Backpack", "Watch", "Wallet", "Headphones", "Speaker",
}

var colors = []string{
	"Crimson", "Azure", "Emerald", "Ivory", "Coral",
	"Indigo", "Amber", "Jade", "Scarlet", "Teal",
}

var currencyCodes = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF"}

// =============================================================================
// Word tables: Internet and text
// =============================================================================

var emailDomains = []string{"example.com", "test.io", "demo.org", "mail.example.net"}

var hosts = []string{"example.com", "api.example.com", "docs.example.org", "cdn.test.io"}

var slugWords = []string{"quick", "brown", "fox", "lazy", "dog", "red", "blue", "green", "docs", "guide"}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et",
	"dolore", "magna", "aliqua", "enim", "minim", "veniam", "quis", "nostrud",
}
