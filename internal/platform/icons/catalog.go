package icons

// Definition describes one icon entry.
type Definition struct {
	Name        string
	Description string
	// Paths is the inner SVG markup.
	Paths string
}

var catalog = []Definition{
	{
		Name:        "user",
		Description: "Welcome step.",
		Paths:       `<path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/>`,
	},
	{
		Name:        "mail",
		Description: "Personal details step.",
		Paths:       `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	},
	{
		Name:        "target",
		Description: "Financial goals step.",
		Paths:       `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
	},
	{
		Name:        "book-open",
		Description: "Experience level step.",
		Paths:       `<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"/><path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"/>`,
	},
	{
		Name:        "check-circle",
		Description: "Confirmation step.",
		Paths:       `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><path d="m9 11 3 3L22 4"/>`,
	},
	{
		Name:        "user-plus",
		Description: "Account creation step.",
		Paths:       `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><line x1="19" x2="19" y1="8" y2="14"/><line x1="22" x2="16" y1="11" y2="11"/>`,
	},
	{
		Name:        "piggy-bank",
		Description: "Budgeting course.",
		Paths:       `<path d="M19 5c-1.5 0-2.8 1.4-3 2-3.5-1.5-11-.3-11 5 0 1.8 0 3 2 4.5V20h4v-2h3v2h4v-4c1-.5 1.7-1 2-2h2v-4h-2c0-1-.5-1.5-1-2V5z"/><path d="M2 9v1c0 1.1.9 2 2 2h1"/><path d="M16 11h.01"/>`,
	},
	{
		Name:        "trending-up",
		Description: "Investing course.",
		Paths:       `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	},
	{
		Name:        "dollar-sign",
		Description: "Spending course.",
		Paths:       `<line x1="12" x2="12" y1="2" y2="22"/><path d="M17 5H9.5a3.5 3.5 0 0 0 0 7h5a3.5 3.5 0 0 1 0 7H6"/>`,
	},
	{
		Name:        "chevron-left",
		Description: "Back navigation.",
		Paths:       `<path d="m15 18-6-6 6-6"/>`,
	},
	{
		Name:        "chevron-right",
		Description: "Forward navigation.",
		Paths:       `<path d="m9 18 6-6-6-6"/>`,
	},
}

var byName = func() map[string]Definition {
	out := make(map[string]Definition, len(catalog))
	for _, def := range catalog {
		out[def.Name] = def
	}
	return out
}()

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the definition for a Lucide icon name.
func Lookup(name string) (Definition, bool) {
	def, ok := byName[name]
	return def, ok
}
