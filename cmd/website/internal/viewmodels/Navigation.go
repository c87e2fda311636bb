package viewmodels

/*
NavLink is one entry in the navigation bar. A link with Children is
rendered as a dropdown, and a child with Divider set renders a separator
instead of a link.
*/
type NavLink struct {
	Label    string
	Href     string
	Active   bool
	Divider  bool
	Children []NavLink
}

func (l NavLink) IsDropdown() bool {
	return len(l.Children) > 0
}

func DefaultNavigation() []NavLink {
	return []NavLink{
		{Label: "Start", Href: "/", Active: true},
		{Label: "O nas", Href: "#"},
		{Label: "Usługi", Href: "#"},
		{Label: "Kontakt", Href: "#"},
		{
			Label: "Więcej",
			Href:  "#",
			Children: []NavLink{
				{Label: "Blog", Href: "#"},
				{Label: "Galeria", Href: "#"},
				{Divider: true},
				{Label: "Cennik", Href: "#"},
			},
		},
	}
}
