package catalog

// Template is a build-time contract template listing. The set is static and
// immutable; there is no backing persistence.
type Template struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Rating      float64 `json:"rating"`
	Downloads   int    `json:"downloads"`
	Premium     bool   `json:"premium"`
	Content     string `json:"-"`
}

// TemplateCategories is the fixed filter set shown to clients, "All" first.
var TemplateCategories = []string{"All", "Employment", "Business", "Real Estate", "Technology", "Sales", "Confidentiality"}

var templates = []Template{
	{
		ID:          1,
		Name:        "Employment Contract",
		Category:    "Employment",
		Description: "Comprehensive employment agreement template with standard terms and conditions.",
		Rating:      4.8,
		Downloads:   1250,
		Premium:     false,
		Content: `EMPLOYMENT AGREEMENT

This Employment Agreement is entered into between [Company Name] and [Employee Name].

1. POSITION AND DUTIES
Employee will serve as [Job Title] and will perform duties including:
- [Duty 1]
- [Duty 2]
- [Duty 3]

2. COMPENSATION
Base salary: ₹[Amount] per annum
Benefits: Health insurance, PF, gratuity

3. WORKING HOURS
Standard working hours: 9 AM to 6 PM, Monday to Friday

4. TERMINATION
Either party may terminate with 30 days written notice.

[Additional clauses continue...]`,
	},
	{
		ID:          2,
		Name:        "Non-Disclosure Agreement (NDA)",
		Category:    "Confidentiality",
		Description: "Standard NDA template for protecting confidential information in business relationships.",
		Rating:      4.9,
		Downloads:   2100,
		Premium:     false,
		Content: `NON-DISCLOSURE AGREEMENT

This Agreement is between [Disclosing Party] and [Receiving Party].

1. CONFIDENTIAL INFORMATION
Confidential Information includes all technical data, trade secrets, know-how, research, product plans, products, services, customers, customer lists, markets, software, developments, inventions, processes, formulas, technology, designs, drawings, engineering, hardware configuration information, marketing, finances or other business information.

2. OBLIGATIONS
The Receiving Party agrees to:
- Hold all Confidential Information in strict confidence
- Not disclose any Confidential Information to third parties
- Use Confidential Information solely for evaluation purposes

3. TERM
This Agreement shall remain in effect for a period of [X] years.

[Additional clauses continue...]`,
	},
	{
		ID:          3,
		Name:        "Service Agreement",
		Category:    "Business",
		Description: "Professional services agreement template for contractors and service providers.",
		Rating:      4.7,
		Downloads:   890,
		Premium:     false,
		Content: `SERVICE AGREEMENT

This Service Agreement is between [Service Provider] and [Client].

1. SERVICES
The Service Provider agrees to provide the following services:
- [Service 1]
- [Service 2]
- [Service 3]

2. PAYMENT TERMS
Total fee: ₹[Amount]
Payment schedule: [Monthly/Milestone-based]
Payment method: Bank transfer/Cheque

3. TIMELINE
Project start date: [Date]
Expected completion: [Date]

4. INTELLECTUAL PROPERTY
All work products shall belong to the Client upon full payment.

[Additional clauses continue...]`,
	},
	{
		ID:          4,
		Name:        "Lease Agreement",
		Category:    "Real Estate",
		Description: "Residential and commercial lease agreement templates with customizable terms.",
		Rating:      4.6,
		Downloads:   1560,
		Premium:     true,
		Content: `LEASE AGREEMENT

This Lease Agreement is between [Landlord] and [Tenant].

1. PROPERTY
Address: [Property Address]
Type: [Residential/Commercial]
Area: [Square feet/meters]

2. LEASE TERM
Start Date: [Date]
End Date: [Date]
Monthly Rent: ₹[Amount]

3. SECURITY DEPOSIT
Amount: ₹[Amount] (equivalent to [X] months rent)

4. UTILITIES
Tenant responsible for: Electricity, Water, Internet
Landlord responsible for: Maintenance, Property Tax

5. RESTRICTIONS
- No pets allowed
- No subletting without written consent
- No smoking inside premises

[Additional clauses continue...]`,
	},
	{
		ID:          5,
		Name:        "Partnership Agreement",
		Category:    "Business",
		Description: "Business partnership agreement template with profit sharing and responsibility clauses.",
		Rating:      4.8,
		Downloads:   670,
		Premium:     true,
		Content: `PARTNERSHIP AGREEMENT

This Partnership Agreement is between [Partner 1] and [Partner 2].

1. BUSINESS PURPOSE
The partners agree to carry on business as [Business Type] under the name [Business Name].

2. CAPITAL CONTRIBUTION
Partner 1: ₹[Amount] ([Percentage]%)
Partner 2: ₹[Amount] ([Percentage]%)

3. PROFIT AND LOSS SHARING
Profits and losses shall be shared equally between partners.

4. MANAGEMENT
Both partners shall have equal management rights and responsibilities.

5. DECISION MAKING
Major decisions require unanimous consent of all partners.

[Additional clauses continue...]`,
	},
	{
		ID:          6,
		Name:        "Purchase Agreement",
		Category:    "Sales",
		Description: "Standard purchase agreement for goods and services with warranty provisions.",
		Rating:      4.5,
		Downloads:   1200,
		Premium:     false,
		Content: `PURCHASE AGREEMENT

This Agreement is between [Buyer] and [Seller].

1. GOODS/SERVICES
Description: [Detailed description]
Quantity: [Number]
Unit Price: ₹[Amount]
Total Amount: ₹[Total]

2. DELIVERY
Delivery Date: [Date]
Delivery Location: [Address]
Shipping Terms: [FOB/CIF/etc.]

3. PAYMENT TERMS
Payment Method: [Cash/Cheque/Bank Transfer]
Payment Due: [Net 30/Upon delivery/etc.]

4. WARRANTY
Seller warrants goods are free from defects for [X] months.

[Additional clauses continue...]`,
	},
	{
		ID:          7,
		Name:        "Freelance Contract",
		Category:    "Employment",
		Description: "Independent contractor agreement template with project scope and payment terms.",
		Rating:      4.7,
		Downloads:   950,
		Premium:     false,
		Content: `FREELANCE CONTRACT

This Contract is between [Client] and [Freelancer].

1. PROJECT SCOPE
The Freelancer agrees to provide:
- [Deliverable 1]
- [Deliverable 2]
- [Deliverable 3]

2. TIMELINE
Project Start: [Date]
Milestones: [List key dates]
Final Delivery: [Date]

3. COMPENSATION
Total Fee: ₹[Amount]
Payment Schedule:
- [%]% upon signing
- [%]% at milestone
- [%]% upon completion

4. INTELLECTUAL PROPERTY
Work product belongs to Client upon full payment.

[Additional clauses continue...]`,
	},
	{
		ID:          8,
		Name:        "Software License Agreement",
		Category:    "Technology",
		Description: "Software licensing agreement template with usage rights and restrictions.",
		Rating:      4.9,
		Downloads:   780,
		Premium:     true,
		Content: `SOFTWARE LICENSE AGREEMENT

This Agreement is between [Licensor] and [Licensee].

1. GRANT OF LICENSE
Licensor grants Licensee a non-exclusive, non-transferable license to use [Software Name].

2. PERMITTED USES
- Install on [X] computers
- Use for internal business purposes
- Make backup copies

3. RESTRICTIONS
- No reverse engineering
- No redistribution
- No modification of source code

4. SUPPORT AND MAINTENANCE
Licensor will provide support for [X] years including:
- Bug fixes
- Minor updates
- Technical support

[Additional clauses continue...]`,
	},
}

// Templates returns the full template catalog.
func Templates() []Template {
	return templates
}

// TemplateByID returns the template with the given id, or false.
func TemplateByID(id int) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
