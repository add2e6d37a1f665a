package catalog

var entries = []Entry{
	{
		ID:          "vit-d3",
		Name:        "Vitamin D3",
		Aliases:     []string{"vitamin d", "vit d", "d3"},
		Description: `Often called the "sunshine vitamin", Vitamin D3 is actually a hormone precursor that plays a critical role in calcium absorption and bone mineralization. Beyond bones, it regulates immune function, mood, and testosterone levels. Deficiency is widespread, especially in those with limited sun exposure.`,
		Benefits:    []string{"Bone Health", "Immune Support", "Mood Regulation", "Testosterone Support"},
		Dosage:      "2,000 - 5,000 IU",
		BestTime:    "Morning",
		FoodReq:     "with-food",
		Frequency:   "Daily",
		Warning:     "Fat-soluble; take with a meal containing fat for absorption.",
		Category:    "General Health",
	},
	{
		ID:          "omega-3",
		Name:        "Omega 3",
		Aliases:     []string{"fish oil", "epa", "dha", "krill oil"},
		Description: "Omega-3 fatty acids, specifically EPA and DHA, are essential fats that the body cannot produce on its own. They are fundamental components of cell membranes and have profound anti-inflammatory effects. They support cardiovascular health, cognitive function, and joint mobility.",
		Benefits:    []string{"Heart Health", "Brain Function", "Joint Support", "Inflammation Reduction"},
		Dosage:      "1,000 - 2,000 mg (EPA/DHA)",
		BestTime:    "Any",
		FoodReq:     "with-food",
		Frequency:   "Daily",
		Warning:     `Take with food to avoid "fish burps".`,
		Category:    "General Health",
	},
	{
		ID:          "nmn",
		Name:        "NMN",
		Aliases:     []string{"nicotinamide mononucleotide"},
		Description: "Nicotinamide Mononucleotide (NMN) is a direct precursor to NAD+, a coenzyme essential for cellular energy production and DNA repair. NAD+ levels decline with age, and NMN supplementation aims to restore these levels, potentially slowing aging processes and improving metabolic markers.",
		Benefits:    []string{"Anti-Aging", "Energy Levels", "Cellular Repair", "Metabolic Health"},
		Dosage:      "250 - 500 mg",
		BestTime:    "Morning",
		FoodReq:     "empty-stomach",
		Frequency:   "Daily",
		Warning:     "Best taken in the morning on an empty stomach for optimal absorption.",
		Category:    "Longevity",
	},
	{
		ID:          "coq10",
		Name:        "CoQ10",
		Aliases:     []string{"q10", "ubiquinone", "ubiquinol"},
		Description: "Coenzyme Q10 is a powerful antioxidant found in every cell of the body, concentrated in the mitochondria. It is crucial for generating energy (ATP) and protecting cells from oxidative damage. Levels decrease with age and statin use, making supplementation vital for heart health and energy.",
		Benefits:    []string{"Heart Health", "Energy Production", "Antioxidant", "Migraine Relief"},
		Dosage:      "100 - 200 mg",
		BestTime:    "Morning",
		FoodReq:     "with-food",
		Frequency:   "Daily",
		Warning:     "Fat-soluble; absorption is significantly better with food.",
		Category:    "Longevity",
	},
	{
		ID:          "magnesium",
		Name:        "Magnesium",
		Aliases:     []string{"magnesium glycinate", "magnesium citrate", "magnesium threonate"},
		Description: "Magnesium is an essential mineral involved in over 300 enzymatic reactions, including energy production, muscle function, and nervous system regulation. It is notoriously difficult to get enough from diet alone. Glycinate forms are particularly effective for promoting relaxation and sleep.",
		Benefits:    []string{"Sleep Quality", "Muscle Relaxation", "Nervous System", "Bone Health"},
		Dosage:      "200 - 400 mg",
		BestTime:    "Night",
		FoodReq:     "any",
		Frequency:   "Daily",
		Warning:     "Some forms (citrate) can have a laxative effect. Glycinate is best for sleep.",
		Category:    "General Health",
	},
	{
		ID:          "potassium",
		Name:        "Potassium",
		Aliases:     []string{"k"},
		Description: "Potassium is a vital mineral and electrolyte that helps maintain fluid balance, nerve signals, and muscle contractions. It works in opposition to sodium to regulate blood pressure. adequate intake is crucial for cardiovascular health and preventing muscle cramps.",
		Benefits:    []string{"Blood Pressure", "Muscle Contraction", "Nerve Signals", "Water Balance"},
		Dosage:      "3,500 - 4,700 mg (Total Intake)",
		BestTime:    "Any",
		FoodReq:     "with-food",
		Frequency:   "Daily",
		Warning:     "Take with food and water to avoid stomach upset.",
		Category:    "General Health",
	},
	{
		ID:          "zinc",
		Name:        "Zinc",
		Aliases:     []string{"zinc picolinate", "zinc gluconate"},
		Description: "Zinc is a trace mineral essential for the immune system, DNA synthesis, and cell division. It plays a key role in wound healing and testosterone production. Since the body doesn't store zinc, consistent daily intake is necessary.",
		Benefits:    []string{"Immune System", "Testosterone", "Skin Health", "Wound Healing"},
		Dosage:      "15 - 30 mg",
		BestTime:    "Any",
		FoodReq:     "with-food",
		Frequency:   "Daily",
		Warning:     "Do NOT take on an empty stomach; causes nausea.",
		Category:    "General Health",
	},
	{
		ID:          "vit-c",
		Name:        "Vitamin C",
		Aliases:     []string{"ascorbic acid"},
		Description: "Vitamin C is a potent water-soluble antioxidant that protects cells from free radical damage. It is strictly required for the biosynthesis of collagen, L-carnitine, and certain neurotransmitters. It also enhances non-heme iron absorption.",
		Benefits:    []string{"Immune Support", "Collagen Production", "Antioxidant", "Iron Absorption"},
		Dosage:      "500 - 1,000 mg",
		BestTime:    "Morning",
		FoodReq:     "any",
		Frequency:   "Daily",
		Warning:     "High doses can cause digestive issues.",
		Category:    "Immunity",
	},
	{
		ID:          "lions-mane",
		Name:        "Lion's Mane",
		Aliases:     []string{"lions main", "mushroom"},
		Description: "Lion's Mane is a medicinal mushroom with a long history of use in traditional medicine. Modern research highlights its potential to stimulate the production of Nerve Growth Factor (NGF), which may improve brain function, memory, and nerve regeneration.",
		Benefits:    []string{"Focus & Memory", "Nerve Growth", "Mood Support", "Cognitive Health"},
		Dosage:      "500 - 1,000 mg",
		BestTime:    "Morning",
		FoodReq:     "any",
		Frequency:   "Daily",
		Warning:     "Consistent daily use is required for benefits.",
		Category:    "Nootropic",
	},
	{
		ID:          "ashwagandha",
		Name:        "Ashwagandha",
		Aliases:     []string{"ksm-66", "sensoril"},
		Description: "Ashwagandha is one of the most important herbs in Ayurveda, classified as an adaptogen. It helps the body cope with physical and mental stress by lowering cortisol levels. It is also used to improve sleep quality and support reproductive health.",
		Benefits:    []string{"Stress Reduction", "Sleep Quality", "Testosterone", "Cortisol Control"},
		Dosage:      "300 - 600 mg",
		BestTime:    "Night",
		FoodReq:     "any",
		Frequency:   "Daily",
		Warning:     "Can be sedating; often best taken in the evening.",
		Category:    "Stress & Sleep",
	},
	{
		ID:          "quercetin",
		Name:        "Quercetin",
		Aliases:     []string{},
		Description: "Quercetin is a flavonoid pigment found in many fruits and vegetables. It acts as a zinc ionophore (helping zinc enter cells) and has significant anti-inflammatory and antihistamine properties, making it useful for allergy relief and immune support.",
		Benefits:    []string{"Immune Support", "Anti-Inflammatory", "Allergy Relief", "Exercise Performance"},
		Dosage:      "500 mg",
		BestTime:    "Morning",
		FoodReq:     "with-food",
		Frequency:   "Daily",
		Warning:     "Best absorbed when taken with bromelain or Vitamin C.",
		Category:    "Immunity",
	},
	{
		ID:          "creatine",
		Name:        "Creatine Monohydrate",
		Aliases:     []string{"creatine"},
		Description: "Creatine is the most extensively studied supplement for sports performance. It increases the body's stores of phosphocreatine, which is used to produce new ATP during high-intensity exercise. It improves strength, power output, and muscle mass.",
		Benefits:    []string{"Muscle Strength", "Power Output", "Brain Function", "Recovery"},
		Dosage:      "5 g",
		BestTime:    "Post-Workout",
		FoodReq:     "any",
		Frequency:   "Daily",
		Warning:     "Ensure adequate water intake.",
		Category:    "Performance",
	},
	{
		ID:          "whey",
		Name:        "Whey Protein",
		Aliases:     []string{"protein powder"},
		Description: "Whey protein is a complete protein source derived from milk, containing all nine essential amino acids. It is particularly high in leucine, which stimulates muscle protein synthesis. It is rapidly digested, making it ideal for post-workout recovery.",
		Benefits:    []string{"Muscle Recovery", "Protein Synthesis", "Satiety"},
		Dosage:      "20 - 25 g",
		BestTime:    "Post-Workout",
		FoodReq:     "any",
		Frequency:   "Workout Days",
		Warning:     "Contains dairy (unless isolate/hydrolysate).",
		Category:    "Performance",
	},
	{
		ID:          "resveratrol",
		Name:        "Resveratrol",
		Aliases:     []string{},
		Description: "Resveratrol is a plant compound acting like an antioxidant. It is found in red wine, grapes, and berries. It is researched for its potential to mimic the longevity benefits of calorie restriction by activating specific genes called sirtuins.",
		Benefits:    []string{"Longevity", "Heart Health", "Anti-Inflammatory"},
		Dosage:      "500 - 1,000 mg",
		BestTime:    "Morning",
		FoodReq:     "with-food",
		Frequency:   "Daily",
		Warning:     "Combine with fat (yogurt/oil) for absorption.",
		Category:    "Longevity",
	},
}
