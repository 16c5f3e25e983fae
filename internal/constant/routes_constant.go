package constant

// Route describes one page the web client can render.
type Route struct {
	Path      string
	Name      string
	Protected bool
}

// PageRoutes is the full client route table. Anything not listed here falls
// through to the not-found page.
var PageRoutes = []Route{
	{Path: "/", Name: "Home", Protected: false},
	{Path: "/auth", Name: "Sign In", Protected: false},
	{Path: "/user-type-selection", Name: "Choose Account Type", Protected: true},
	{Path: "/profile", Name: "Profile", Protected: true},
	{Path: "/profile/lawyer", Name: "Lawyer Profile Setup", Protected: true},
	{Path: "/profile/client", Name: "Client Profile Setup", Protected: true},
	{Path: "/legal-dashboard", Name: "Legal Dashboard", Protected: true},
	{Path: "/contract-templates", Name: "Contract Templates", Protected: false},
	{Path: "/ai-assistance", Name: "AI Legal Assistance", Protected: true},
	{Path: "/lawyer-marketplace", Name: "Lawyer Marketplace", Protected: false},
	{Path: "/payment", Name: "Payment", Protected: true},
}

const NotFoundRoute = "*"
