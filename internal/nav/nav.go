// Package nav describes the top-level sections and which one is showing.
package nav

type Section string

const (
	Home       Section = "home"
	Experience Section = "experience"
	Education  Section = "education"
	Stories    Section = "stories"
	Gallery    Section = "gallery"
	Contact    Section = "contact"
)

type Item struct {
	ID    Section
	Label string
}

// Items lists the sections in menu order.
var Items = []Item{
	{ID: Home, Label: "Home"},
	{ID: Experience, Label: "Experience"},
	{ID: Education, Label: "Education"},
	{ID: Stories, Label: "Stories"},
	{ID: Gallery, Label: "Gallery"},
	{ID: Contact, Label: "Contact"},
}

func Lookup(id string) (Item, bool) {
	for _, item := range Items {
		if string(item.ID) == id {
			return item, true
		}
	}
	return Item{}, false
}

// State is the navigation bar of one rendered page.
type State struct {
	Active         Section
	MobileMenuOpen bool
}

func New() *State {
	return &State{Active: Home}
}

// Select makes id the active section and closes the mobile menu. Unknown
// ids are ignored.
func (s *State) Select(id string) bool {
	item, ok := Lookup(id)
	if !ok {
		return false
	}
	s.Active = item.ID
	s.MobileMenuOpen = false
	return true
}

func (s *State) ToggleMobileMenu() {
	s.MobileMenuOpen = !s.MobileMenuOpen
}

func (s *State) IsActive(id Section) bool {
	return s.Active == id
}

func (s *State) Items() []Item {
	return Items
}
