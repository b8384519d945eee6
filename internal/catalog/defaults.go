package catalog

// defaultPerfumes is the seed dataset: ten records per category. It is used
// for first-run seeding, the admin reset and as the storefront fallback.
var defaultPerfumes = []Perfume{
	{
		ID: 1, Category: Her, Name: "ROSE ÉLÉGANCE", Subtitle: "Parfum",
		Tagline:     "WHERE ELEGANCE BLOOMS",
		Description: "For the woman who embraces grace, Rose Élégance is a statement of timeless beauty and sophistication. A perfect blend of Bulgarian rose, vanilla, and white musk captures the essence, like a garden in eternal bloom.",
		TopNotes:    "Bulgarian Rose, Pink Pepper", HeartNotes: "Madagascar Vanilla, Jasmine", BaseNotes: "White Musk, Sandalwood",
		Image: "https://images.unsplash.com/photo-1760113559708-84e7a148ec68?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxsdXh1cnklMjBwZXJmdW1lJTIwYm90dGxlJTIwZWxlZ2FudHxlbnwxfHx8fDE3NjU4NzE1NDR8MA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 2, Category: Her, Name: "VELVET BLOSSOM", Subtitle: "Parfum",
		Tagline:     "WHERE LUXURY UNFOLDS",
		Description: "An enchanting masterpiece that harmonizes the exotic richness of Indian jasmine with the sweet luminosity of Tunisian orange blossom. A luxurious scent that lingers beautifully, like velvet against the skin.",
		TopNotes:    "Orange Blossom, Bergamot", HeartNotes: "Indian Jasmine, Tuberose", BaseNotes: "Sandalwood, Amber",
		Image: "https://images.unsplash.com/photo-1759794108525-94ff060da692?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxwcmVtaXVtJTIwZnJhZ3JhbmNlJTIwYm90dGxlJTIwZGFya3xlbnwxfHx8fDE3NjU4NzY3NjJ8MA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 3, Category: Her, Name: "MOONLIGHT DREAM", Subtitle: "Parfum",
		Tagline:     "WHERE DREAMS AWAKEN",
		Description: "Inspired by the magic of moonlit nights, this fragrance combines gentle evening jasmine with warm woody notes and sweet vanilla, creating an ethereal experience that evokes dreams under starlight.",
		TopNotes:    "Night Jasmine, Lemon", HeartNotes: "Tahitian Vanilla, Iris", BaseNotes: "Cedar Wood, Tonka Bean",
		Image: "https://images.unsplash.com/photo-1761778304143-4c89e7dd2457?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxkZXNpZ25lciUyMHBlcmZ1bWUlMjBib3R0bGUlMjBzb3BoaXN0aWNhdGVkfGVufDF8fHx8MTc2NTg3Njc2Mnww&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 4, Category: Her, Name: "CHERRY BLOSSOM", Subtitle: "Parfum",
		Tagline:     "WHERE SPRING AWAKENS",
		Description: "A delicate fusion of Japanese cherry blossom and peony, enhanced with soft almond and warm amber. This enchanting fragrance captures the fleeting beauty of spring gardens in full bloom.",
		TopNotes:    "Cherry Blossom, Peach", HeartNotes: "Peony, Almond", BaseNotes: "Amber, White Musk",
		Image: "https://images.unsplash.com/photo-1630573133526-8d090e0269af?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxsdXh1cnklMjBwZXJmdW1lJTIwYm90dGxlJTIwcGlua3xlbnwxfHx8fDE3NjYwNjE0ODV8MA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 5, Category: Her, Name: "GOLDEN IRIS", Subtitle: "Parfum",
		Tagline:     "WHERE RADIANCE SHINES",
		Description: "A sophisticated blend of powdery iris and golden honey, layered with creamy sandalwood and soft cashmere. This luminous fragrance embodies timeless elegance and refined femininity.",
		TopNotes:    "Iris, Honey", HeartNotes: "Cashmere Wood, Violet", BaseNotes: "Sandalwood, Vanilla",
		Image: "https://images.unsplash.com/photo-1758225502621-9102d2856dc8?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxkZXNpZ25lciUyMGZyYWdyYW5jZSUyMGJvdHRsZSUyMGdvbGR8ZW58MXx8fHwxNzY2MDgyODUzfDA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 6, Category: Her, Name: "CRYSTAL GARDENIA", Subtitle: "Parfum",
		Tagline:     "WHERE PURITY BLOOMS",
		Description: "An exquisite composition of creamy gardenia and delicate tuberose, illuminated by crystalline citrus and soft musk. This pure fragrance evokes the elegance of white flowers in a moonlit garden.",
		TopNotes:    "Gardenia, Citrus", HeartNotes: "Tuberose, Lily", BaseNotes: "White Musk, Cedarwood",
		Image: "https://images.unsplash.com/photo-1757313192889-6d25a0e30f6a?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxwcmVtaXVtJTIwcGVyZnVtZSUyMGJvdHRsZSUyMGVsZWdhbnR8ZW58MXx8fHwxNzY2MDgyODUzfDA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 7, Category: Her, Name: "PURPLE ORCHID", Subtitle: "Parfum",
		Tagline:     "WHERE MYSTERY BLOOMS",
		Description: "A mysterious blend of exotic purple orchid and black currant, deepened with patchouli and dark chocolate. This seductive fragrance is for the woman who embraces her enigmatic allure.",
		TopNotes:    "Purple Orchid, Black Currant", HeartNotes: "Dark Chocolate, Rose", BaseNotes: "Patchouli, Musk",
		Image: "https://images.unsplash.com/photo-1763789703625-6a08598d0a13?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxsdXh1cnklMjBmcmFncmFuY2UlMjBib3R0bGUlMjBwdXJwbGV8ZW58MXx8fHwxNzY2MDgyODU0fDA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 8, Category: Her, Name: "DIAMOND DUST", Subtitle: "Parfum",
		Tagline:     "WHERE BRILLIANCE SPARKLES",
		Description: "A sparkling composition of champagne accord and crystal peony, enhanced with icy mint and shimmering musk. This effervescent fragrance captures the brilliance of diamonds under candlelight.",
		TopNotes:    "Champagne, Mint", HeartNotes: "Crystal Peony, Freesia", BaseNotes: "Shimmering Musk, Amber",
		Image: "https://images.unsplash.com/photo-1650112511613-ff877a435291?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxkZXNpZ25lciUyMHBlcmZ1bWUlMjBib3R0bGUlMjBjcnlzdGFsfGVufDF8fHx8MTc2NjA4Mjg1NHww&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 9, Category: Her, Name: "AMBER SUNSET", Subtitle: "Parfum",
		Tagline:     "WHERE WARMTH EMBRACES",
		Description: "A warm and sensual blend of golden amber and sweet honeysuckle, layered with rich benzoin and creamy tonka. This comforting fragrance evokes the golden glow of sunset by the Mediterranean.",
		TopNotes:    "Honeysuckle, Mandarin", HeartNotes: "Golden Amber, Magnolia", BaseNotes: "Benzoin, Tonka Bean",
		Image: "https://images.unsplash.com/photo-1759848547378-d59542dcb935?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxsdXh1cnklMjBwZXJmdW1lJTIwYm90dGxlJTIwYW1iZXJ8ZW58MXx8fHwxNzY2MDgyODU1fDA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 10, Category: Her, Name: "SILK MAGNOLIA", Subtitle: "Parfum",
		Tagline:     "WHERE SOFTNESS BLOOMS",
		Description: "An elegant composition of creamy magnolia and white tea, softened with silky sandalwood and gentle vanilla. This refined fragrance embodies the grace and softness of pure silk.",
		TopNotes:    "White Tea, Magnolia", HeartNotes: "Silk Accord, Jasmine", BaseNotes: "Sandalwood, Vanilla",
		Image: "https://images.unsplash.com/photo-1760860992203-85ca32536788?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxkZXNpZ25lciUyMGZyYWdyYW5jZSUyMGJvdHRsZSUyMG1pbmltYWxpc3R8ZW58MXx8fHwxNzY2MDgyODU1fDA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 1, Category: Him, Name: "NOCTURNE", Subtitle: "Parfum",
		Tagline:     "WHERE SHADOWS WHISPER",
		Description: "For the man who embraces the night, Nocturne is a statement of power and intrigue. A rare blend of oud, saffron, and leather ignites the senses, like autumn's lingering twilight.",
		TopNotes:    "Blackcurrant, Cardamom", HeartNotes: "Smoked Leather, Saffron", BaseNotes: "Oud, Dark Patchouli",
		Image: "https://images.unsplash.com/photo-1759793500110-e3cb1f0fe6ae?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxibGFjayUyMGx1eHVyeSUyMG1lbnMlMjBjb2xvZ25lfGVufDF8fHx8MTc2NjA4NTA4NHww&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 2, Category: Him, Name: "OCEAN BREEZE", Subtitle: "Parfum",
		Tagline:     "WHERE FREEDOM CALLS",
		Description: "Fresh oceanic notes harmonized with Italian bergamot and robust cedar wood. This invigorating fragrance evokes the freedom of open waters and the strength of the sea.",
		TopNotes:    "Italian Bergamot, Sea Salt", HeartNotes: "Marine Notes, Lavender", BaseNotes: "Cedar Wood, Oakmoss",
		Image: "https://images.unsplash.com/photo-1643139010926-1dbb28e335c9?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxibHVlJTIwb2NlYW4lMjBwZXJmdW1lJTIwYm90dGxlfGVufDF8fHx8MTc2NTk4NjU5OXww&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 3, Category: Him, Name: "MIDNIGHT NOIR", Subtitle: "Parfum",
		Tagline:     "WHERE MYSTERY UNFOLDS",
		Description: "A luxurious blend of aromatic lavender, creamy sandalwood, and black vanilla. Seductive and mysterious for the modern gentleman who embraces the night.",
		TopNotes:    "Lavender, Star Anise", HeartNotes: "Sandalwood, Sage", BaseNotes: "Black Vanilla, Tonka Bean",
		Image: "https://images.unsplash.com/photo-1630512873749-85ccf5bb1678?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxkYXJrJTIwbm9pciUyMGZyYWdyYW5jZSUyMGJvdHRlZXxlbnwxfHx8fDE3NjYwODUwODV8MA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 4, Category: Him, Name: "IRON WOOD", Subtitle: "Parfum",
		Tagline:     "WHERE STRENGTH ENDURES",
		Description: "A powerful blend of aged wood and iron accord, deepened with tobacco leaf and dark amber. This bold fragrance embodies resilience and unwavering confidence.",
		TopNotes:    "Iron Accord, Tobacco Leaf", HeartNotes: "Aged Wood, Vetiver", BaseNotes: "Dark Amber, Musk",
		Image: "https://images.unsplash.com/photo-1762868700041-2b9c3a0c39f7?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHx3b29kZW4lMjBjb2xvZ25lJTIwYm90dGxlfGVufDF8fHx8MTc2NjA4NTA4NXww&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 5, Category: Him, Name: "OBSIDIAN BLACK", Subtitle: "Parfum",
		Tagline:     "WHERE DARKNESS REIGNS",
		Description: "An intense composition of black pepper and oud, layered with volcanic minerals and charred wood. This commanding fragrance is for the man who owns the night.",
		TopNotes:    "Black Pepper, Volcanic Mineral", HeartNotes: "Oud, Charred Wood", BaseNotes: "Black Leather, Incense",
		Image: "https://images.unsplash.com/photo-1600612156191-12fedf6117f9?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxvYnNpZGlhbiUyMGJsYWNrJTIwcGVyZnVtZXxlbnwxfHx8fDE3NjYwODUwODV8MA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 6, Category: Him, Name: "ROYAL OUD", Subtitle: "Parfum",
		Tagline:     "WHERE ROYALTY COMMANDS",
		Description: "A regal blend of precious oud and golden saffron, enhanced with royal incense and amber resin. This majestic fragrance embodies power, wealth, and timeless nobility.",
		TopNotes:    "Golden Saffron, Rose", HeartNotes: "Precious Oud, Incense", BaseNotes: "Amber Resin, Agarwood",
		Image: "https://images.unsplash.com/photo-1636730520710-a8e432ab3617?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxnb2xkJTIwb3VkJTIwcGVyZnVtZXxlbnwxfHx8fDE3NjYwODUwODZ8MA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 7, Category: Him, Name: "SILVER SAGE", Subtitle: "Parfum",
		Tagline:     "WHERE WISDOM SPEAKS",
		Description: "A refined blend of silver sage and cool cypress, layered with crisp bergamot and white cedarwood. This sophisticated fragrance embodies clarity, wisdom, and modern elegance.",
		TopNotes:    "Silver Sage, Bergamot", HeartNotes: "Cypress, White Cedar", BaseNotes: "Cedarwood, Grey Musk",
		Image: "https://images.unsplash.com/photo-1758871992965-836e1fb0f9bc?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxtaW5pbWFsaXN0JTIwbWVucyUyMGNvbG9nbmUlMjBib3R0bGV8ZW58MXx8fHwxNzY2MDg1MDkxfDA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 8, Category: Him, Name: "AZURE STORM", Subtitle: "Parfum",
		Tagline:     "WHERE ADVENTURE AWAITS",
		Description: "An electrifying fusion of stormy ozone and blue lavender, charged with lightning accord and sea minerals. This dynamic fragrance captures the thrill of tempestuous skies.",
		TopNotes:    "Stormy Ozone, Lightning Accord", HeartNotes: "Blue Lavender, Sea Minerals", BaseNotes: "Driftwood, Ambergris",
		Image: "https://images.unsplash.com/photo-1732828912093-a776288edfed?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxibHVlJTIwc3Rvcm0lMjBmcmFncmFuY2V8ZW58MXx8fHwxNjYwODUwODZ8MA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 9, Category: Him, Name: "EMERALD FOREST", Subtitle: "Parfum",
		Tagline:     "WHERE NATURE CALLS",
		Description: "A deep green composition of pine needle and forest moss, grounded with earthy vetiver and green oakmoss. This natural fragrance evokes the primeval strength of ancient woodlands.",
		TopNotes:    "Pine Needle, Green Leaves", HeartNotes: "Forest Moss, Vetiver", BaseNotes: "Green Oakmoss, Patchouli",
		Image: "https://images.unsplash.com/photo-1709644156704-38224e02c505?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxncmVlbiUyMGZvcmVzdCUyMGNvbG9nbmV8ZW58MXx8fHwxNzY2MDg1MDg3fDA&ixlib=rb-4.1.0&q=80&w=1080",
	},
	{
		ID: 10, Category: Him, Name: "LEATHER LEGACY", Subtitle: "Parfum",
		Tagline:     "WHERE TRADITION LIVES",
		Description: "A timeless blend of vintage leather and fine bourbon, enriched with dark tobacco and aged oak. This classic fragrance honors heritage, craftsmanship, and masculine elegance.",
		TopNotes:    "Vintage Leather, Bourbon", HeartNotes: "Dark Tobacco, Cinnamon", BaseNotes: "Aged Oak, Suede",
		Image: "https://images.unsplash.com/photo-1671161238404-e5b4845260b9?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxicm93biUyMGxlYXRoZXIlMjBwZXJmdW1lfGVufDF8fHx8MTc2NjA4NTA4N3ww&ixlib=rb-4.1.0&q=80&w=1080",
	},
}

// DefaultPerfumes returns a fresh copy of the full seed dataset, her first.
func DefaultPerfumes() []Perfume {
	out := make([]Perfume, len(defaultPerfumes))
	copy(out, defaultPerfumes)
	return out
}
