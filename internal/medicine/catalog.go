package medicine

// Medication is one catalog entry.
type Medication struct {
	Name              string   `json:"name"`
	Dosage            string   `json:"dosage"`
	Type              string   `json:"type"`
	Description       string   `json:"description"`
	SideEffects       []string `json:"side_effects,omitempty"`
	Contraindications []string `json:"contraindications,omitempty"`
	Category          string   `json:"category"`
}

// Recommendation bundles everything returned for one condition.
type Recommendation struct {
	Medications []Medication `json:"medications"`
	Lifestyle   []string     `json:"lifestyle,omitempty"`
	Monitoring  []string     `json:"monitoring,omitempty"`
}

// catalog maps condition tags to recommendations. Not every detectable
// condition has an entry (stomach_issues is detected but has no catalog
// entry); lookups for those return nothing.
var catalog = map[string]Recommendation{
	"diabetes": {
		Medications: []Medication{
			{Name: "Metformin", Dosage: "500mg twice daily", Type: "Oral",
				Description: "First-line treatment for type 2 diabetes",
				SideEffects: []string{"Nausea", "Diarrhea", "Stomach upset"},
				Contraindications: []string{"Kidney disease", "Liver disease"},
				Category:          "Biguanide"},
			{Name: "Insulin", Dosage: "As prescribed by doctor", Type: "Injection",
				Description: "For type 1 and advanced type 2 diabetes",
				SideEffects: []string{"Hypoglycemia", "Weight gain"},
				Contraindications: []string{"Hypoglycemia"},
				Category:          "Hormone"},
			{Name: "Glipizide", Dosage: "5-10mg daily", Type: "Oral",
				Description: "Stimulates insulin production",
				SideEffects: []string{"Hypoglycemia", "Weight gain"},
				Contraindications: []string{"Type 1 diabetes"},
				Category:          "Sulfonylurea"},
			{Name: "Sitagliptin", Dosage: "100mg daily", Type: "Oral",
				Description: "DPP-4 inhibitor",
				SideEffects: []string{"Upper respiratory infection", "Headache"},
				Contraindications: []string{"Pancreatitis"},
				Category:          "DPP-4 inhibitor"},
		},
		Lifestyle: []string{
			"Regular exercise (30 minutes daily)", "Low-carb diet",
			"Blood sugar monitoring", "Regular check-ups",
			"Weight management", "Stress management",
		},
		Monitoring: []string{
			"HbA1c every 3 months", "Blood pressure monitoring",
			"Foot examination", "Eye examination annually",
		},
	},
	"heart_disease": {
		Medications: []Medication{
			{Name: "Aspirin", Dosage: "75-100mg daily", Type: "Oral",
				Description: "Prevents blood clots",
				SideEffects: []string{"Stomach irritation", "Bleeding risk"},
				Contraindications: []string{"Active bleeding", "Peptic ulcer"},
				Category:          "Antiplatelet"},
			{Name: "Atorvastatin", Dosage: "20-80mg daily", Type: "Oral",
				Description: "Lowers cholesterol",
				SideEffects: []string{"Muscle pain", "Liver enzyme elevation"},
				Contraindications: []string{"Active liver disease"},
				Category:          "Statin"},
			{Name: "Lisinopril", Dosage: "5-40mg daily", Type: "Oral",
				Description: "ACE inhibitor for blood pressure",
				SideEffects: []string{"Dry cough", "Dizziness"},
				Contraindications: []string{"Pregnancy", "Bilateral renal artery stenosis"},
				Category:          "ACE inhibitor"},
			{Name: "Metoprolol", Dosage: "25-200mg daily", Type: "Oral",
				Description: "Beta-blocker for heart protection",
				SideEffects: []string{"Fatigue", "Cold hands/feet"},
				Contraindications: []string{"Severe asthma", "Heart block"},
				Category:          "Beta-blocker"},
		},
		Lifestyle: []string{
			"Heart-healthy diet (Mediterranean diet)", "Regular exercise",
			"Quit smoking", "Stress management", "Limit alcohol",
			"Maintain healthy weight",
		},
		Monitoring: []string{
			"Regular blood pressure checks", "Cholesterol levels",
			"ECG monitoring", "Echocardiogram as needed",
		},
	},
	"hypertension": {
		Medications: []Medication{
			{Name: "Amlodipine", Dosage: "5-10mg daily", Type: "Oral",
				Description: "Calcium channel blocker",
				SideEffects: []string{"Swelling of ankles", "Dizziness"},
				Contraindications: []string{"Severe hypotension"},
				Category:          "Calcium channel blocker"},
			{Name: "Losartan", Dosage: "25-100mg daily", Type: "Oral",
				Description: "ARB for blood pressure control",
				SideEffects: []string{"Dizziness", "High potassium"},
				Contraindications: []string{"Pregnancy", "Bilateral renal artery stenosis"},
				Category:          "ARB"},
			{Name: "Hydrochlorothiazide", Dosage: "12.5-25mg daily", Type: "Oral",
				Description: "Diuretic",
				SideEffects: []string{"Increased urination", "Low potassium"},
				Contraindications: []string{"Severe kidney disease"},
				Category:          "Diuretic"},
			{Name: "Carvedilol", Dosage: "6.25-25mg twice daily", Type: "Oral",
				Description: "Alpha and beta blocker",
				SideEffects: []string{"Dizziness", "Fatigue"},
				Contraindications: []string{"Severe asthma", "Heart block"},
				Category:          "Alpha-beta blocker"},
		},
		Lifestyle: []string{
			"Low-sodium diet (<2g daily)", "Regular exercise",
			"Weight management", "Limit alcohol", "Stress reduction",
			"Adequate sleep",
		},
		Monitoring: []string{
			"Daily blood pressure monitoring", "Regular doctor visits",
			"Kidney function tests", "Electrolyte monitoring",
		},
	},
	"alzheimer": {
		Medications: []Medication{
			{Name: "Donepezil", Dosage: "5-10mg daily", Type: "Oral",
				Description: "Cholinesterase inhibitor",
				SideEffects: []string{"Nausea", "Diarrhea", "Insomnia"},
				Contraindications: []string{"Severe liver disease"},
				Category:          "Cholinesterase inhibitor"},
			{Name: "Memantine", Dosage: "5-20mg daily", Type: "Oral",
				Description: "NMDA receptor antagonist",
				SideEffects: []string{"Dizziness", "Headache", "Confusion"},
				Contraindications: []string{"Severe kidney disease"},
				Category:          "NMDA antagonist"},
			{Name: "Rivastigmine", Dosage: "1.5-6mg twice daily", Type: "Oral",
				Description: "Cholinesterase inhibitor",
				SideEffects: []string{"Nausea", "Vomiting", "Weight loss"},
				Contraindications: []string{"Severe liver disease"},
				Category:          "Cholinesterase inhibitor"},
			{Name: "Galantamine", Dosage: "4-12mg twice daily", Type: "Oral",
				Description: "Cholinesterase inhibitor",
				SideEffects: []string{"Nausea", "Diarrhea", "Weight loss"},
				Contraindications: []string{"Severe liver disease"},
				Category:          "Cholinesterase inhibitor"},
		},
		Lifestyle: []string{
			"Mental stimulation (puzzles, reading)", "Physical exercise",
			"Social engagement", "Healthy diet (Mediterranean)",
			"Adequate sleep", "Stress management",
		},
		Monitoring: []string{
			"Regular cognitive assessments", "Medication adherence monitoring",
			"Safety assessments", "Caregiver support",
		},
	},
	"depression": {
		Medications: []Medication{
			{Name: "Sertraline", Dosage: "50-200mg daily", Type: "Oral",
				Description: "SSRI antidepressant",
				SideEffects: []string{"Nausea", "Insomnia", "Sexual dysfunction"},
				Contraindications: []string{"MAOI use", "Pimozide"},
				Category:          "SSRI"},
			{Name: "Fluoxetine", Dosage: "20-80mg daily", Type: "Oral",
				Description: "SSRI antidepressant",
				SideEffects: []string{"Nausea", "Headache", "Insomnia"},
				Contraindications: []string{"MAOI use", "Thioridazine"},
				Category:          "SSRI"},
			{Name: "Bupropion", Dosage: "150-300mg daily", Type: "Oral",
				Description: "NDRI antidepressant",
				SideEffects: []string{"Dry mouth", "Insomnia", "Headache"},
				Contraindications: []string{"Seizure disorder", "Eating disorders"},
				Category:          "NDRI"},
			{Name: "Venlafaxine", Dosage: "75-225mg daily", Type: "Oral",
				Description: "SNRI antidepressant",
				SideEffects: []string{"Nausea", "Headache", "Sweating"},
				Contraindications: []string{"MAOI use", "Severe hypertension"},
				Category:          "SNRI"},
		},
		Lifestyle: []string{
			"Regular therapy sessions", "Exercise (30 minutes daily)",
			"Sleep hygiene", "Social support", "Stress management",
			"Healthy diet",
		},
		Monitoring: []string{
			"Regular mood assessments", "Suicide risk screening",
			"Medication adherence", "Side effect monitoring",
		},
	},
	"asthma": {
		Medications: []Medication{
			{Name: "Albuterol", Dosage: "2-4 puffs as needed", Type: "Inhaler",
				Description: "Short-acting beta-agonist for acute relief",
				SideEffects: []string{"Tremor", "Rapid heartbeat", "Nervousness"},
				Contraindications: []string{"Severe heart disease"},
				Category:          "SABA"},
			{Name: "Fluticasone", Dosage: "1-2 puffs twice daily", Type: "Inhaler",
				Description: "Inhaled corticosteroid",
				SideEffects: []string{"Thrush", "Hoarseness"},
				Contraindications: []string{"Active infection"},
				Category:          "ICS"},
			{Name: "Montelukast", Dosage: "10mg daily", Type: "Oral",
				Description: "Leukotriene receptor antagonist",
				SideEffects: []string{"Headache", "Stomach pain"},
				Contraindications: []string{"Phenylketonuria"},
				Category:          "LTRA"},
		},
		Lifestyle: []string{
			"Avoid triggers (allergens, smoke)", "Regular exercise",
			"Proper inhaler technique", "Action plan for attacks",
			"Regular monitoring",
		},
		Monitoring: []string{
			"Peak flow monitoring", "Symptom tracking",
			"Regular doctor visits", "Medication review",
		},
	},
	"fever": {
		Medications: []Medication{
			{Name: "Paracetamol (Acetaminophen)", Dosage: "500-1000mg every 4-6 hours", Type: "Oral",
				Description: "Antipyretic and analgesic for fever and pain relief",
				SideEffects: []string{"Rare liver damage with overdose", "Skin rash"},
				Contraindications: []string{"Liver disease", "Alcoholism"},
				Category:          "Antipyretic"},
			{Name: "Ibuprofen", Dosage: "200-400mg every 6-8 hours", Type: "Oral",
				Description: "NSAID for fever, pain, and inflammation",
				SideEffects: []string{"Stomach upset", "Dizziness", "Headache"},
				Contraindications: []string{"Stomach ulcers", "Kidney disease", "Heart disease"},
				Category:          "NSAID"},
		},
		Lifestyle: []string{
			"Rest and stay hydrated", "Cool compresses", "Light clothing",
			"Monitor temperature", "Seek medical help if fever persists",
		},
	},
	"cough_cold": {
		Medications: []Medication{
			{Name: "Dextromethorphan", Dosage: "15-30mg every 4-6 hours", Type: "Oral",
				Description: "Cough suppressant for dry cough",
				SideEffects: []string{"Drowsiness", "Dizziness", "Nausea"},
				Contraindications: []string{"MAOI use", "Pregnancy"},
				Category:          "Antitussive"},
			{Name: "Guaifenesin", Dosage: "200-400mg every 4 hours", Type: "Oral",
				Description: "Expectorant to loosen mucus",
				SideEffects: []string{"Nausea", "Vomiting", "Dizziness"},
				Contraindications: []string{"Severe kidney disease"},
				Category:          "Expectorant"},
		},
		Lifestyle: []string{
			"Increase fluid intake", "Rest adequately", "Use humidifier",
			"Avoid smoking", "Wash hands frequently",
		},
	},
	"headache": {
		Medications: []Medication{
			{Name: "Ibuprofen", Dosage: "200-400mg every 4-6 hours", Type: "Oral",
				Description: "NSAID for headache and inflammation",
				SideEffects: []string{"Stomach upset", "Dizziness"},
				Contraindications: []string{"Stomach ulcers", "Kidney disease"},
				Category:          "NSAID"},
			{Name: "Acetaminophen", Dosage: "500-1000mg every 4-6 hours", Type: "Oral",
				Description: "Pain reliever for mild to moderate headache",
				SideEffects: []string{"Rare liver damage with overdose"},
				Contraindications: []string{"Liver disease"},
				Category:          "Analgesic"},
		},
		Lifestyle: []string{
			"Rest in dark, quiet room", "Apply cold compress", "Stay hydrated",
			"Avoid triggers", "Regular sleep schedule",
		},
	},
}
