package catalog

// Lawyer is a build-time marketplace listing. Like templates, the set is
// static and immutable.
type Lawyer struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Experience string  `json:"experience"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	HourlyRate string  `json:"hourly_rate"`
	// HourlyRateAmount is the numeric value behind the display string,
	// used for booking arithmetic.
	HourlyRateAmount int      `json:"hourly_rate_amount"`
	Location         string   `json:"location"`
	Languages        []string `json:"languages"`
	Availability     string   `json:"availability"`
	Verified         bool     `json:"verified"`
	TopRated         bool     `json:"top_rated"`
	Description      string   `json:"description"`
}

// LawyerSpecialties is the fixed filter set, "All" first.
var LawyerSpecialties = []string{"All", "Corporate Law", "Criminal Law", "Family Law", "Property Law", "Employment Law", "Tax Law"}

var lawyers = []Lawyer{
	{
		ID:               1,
		Name:             "Adv. Priya Sharma",
		Specialty:        "Corporate Law",
		Experience:       "12 years",
		Rating:           4.9,
		Reviews:          156,
		HourlyRate:       "₹200",
		HourlyRateAmount: 200,
		Location:         "Mumbai, Maharashtra",
		Languages:        []string{"Hindi", "English", "Marathi"},
		Availability:     "Available Today",
		Verified:         true,
		TopRated:         true,
		Description:      "Specializes in corporate compliance, mergers & acquisitions, and commercial contracts.",
	},
	{
		ID:               2,
		Name:             "Adv. Rajesh Kumar",
		Specialty:        "Criminal Law",
		Experience:       "8 years",
		Rating:           4.7,
		Reviews:          89,
		HourlyRate:       "₹150",
		HourlyRateAmount: 150,
		Location:         "Delhi, NCR",
		Languages:        []string{"Hindi", "English", "Punjabi"},
		Availability:     "Available Tomorrow",
		Verified:         true,
		TopRated:         false,
		Description:      "Expert in criminal defense, white-collar crimes, and bail applications.",
	},
	{
		ID:               3,
		Name:             "Adv. Meera Patel",
		Specialty:        "Family Law",
		Experience:       "15 years",
		Rating:           4.8,
		Reviews:          203,
		HourlyRate:       "₹180",
		HourlyRateAmount: 180,
		Location:         "Ahmedabad, Gujarat",
		Languages:        []string{"Gujarati", "Hindi", "English"},
		Availability:     "Available Today",
		Verified:         true,
		TopRated:         true,
		Description:      "Specializes in divorce, child custody, matrimonial disputes, and domestic violence cases.",
	},
	{
		ID:               4,
		Name:             "Adv. Amit Singh",
		Specialty:        "Property Law",
		Experience:       "10 years",
		Rating:           4.6,
		Reviews:          124,
		HourlyRate:       "₹160",
		HourlyRateAmount: 160,
		Location:         "Bangalore, Karnataka",
		Languages:        []string{"Hindi", "English", "Kannada"},
		Availability:     "Available Today",
		Verified:         true,
		TopRated:         false,
		Description:      "Expert in property disputes, real estate transactions, and land acquisition matters.",
	},
	{
		ID:               5,
		Name:             "Adv. Kavya Reddy",
		Specialty:        "Employment Law",
		Experience:       "6 years",
		Rating:           4.5,
		Reviews:          67,
		HourlyRate:       "₹140",
		HourlyRateAmount: 140,
		Location:         "Hyderabad, Telangana",
		Languages:        []string{"Telugu", "Hindi", "English"},
		Availability:     "Available Tomorrow",
		Verified:         true,
		TopRated:         false,
		Description:      "Focuses on employment disputes, labor law compliance, and workplace harassment cases.",
	},
	{
		ID:               6,
		Name:             "Adv. Suresh Menon",
		Specialty:        "Tax Law",
		Experience:       "20 years",
		Rating:           4.9,
		Reviews:          312,
		HourlyRate:       "₹250",
		HourlyRateAmount: 250,
		Location:         "Chennai, Tamil Nadu",
		Languages:        []string{"Tamil", "English", "Hindi"},
		Availability:     "Available Today",
		Verified:         true,
		TopRated:         true,
		Description:      "Senior tax consultant specializing in GST, income tax, and international taxation.",
	},
}

// Lawyers returns the full marketplace listing.
func Lawyers() []Lawyer {
	return lawyers
}

// LawyerByID returns the lawyer with the given id, or false.
func LawyerByID(id int) (Lawyer, bool) {
	for _, l := range lawyers {
		if l.ID == id {
			return l, true
		}
	}
	return Lawyer{}, false
}
