package screens

import "github.com/five82/tabnav/internal/nav"

// Destination ids.
const (
	HomeID    = "home"
	SearchID  = "search"
	FriendsID = "friends"
	ProfileID = "profile"
)

// Profile is the typed argument record of the profile destination.
type Profile struct {
	Name   string `arg:"name"`
	Mutual int    `arg:"mutual"`
}

// Args converts the record to navigation arguments.
func (p Profile) Args() nav.Args {
	return nav.Args{"name": p.Name, "mutual": p.Mutual}
}

// FriendsOf is the typed argument record of the friends destination. An
// empty Of lists the user's own friends.
type FriendsOf struct {
	Of string `arg:"of"`
}

// NewGraph returns the application's navigation graph.
func NewGraph() (*nav.Graph, error) {
	return nav.NewGraph(HomeID,
		nav.Destination{ID: HomeID, Label: "Home", Icon: "⌂", TopLevel: true},
		nav.Destination{ID: SearchID, Label: "Search", Icon: "⌕", TopLevel: true, Children: []string{ProfileID}},
		nav.Destination{
			ID:       FriendsID,
			Label:    "Friends",
			Icon:     "☺",
			TopLevel: true,
			Args:     nav.ArgSchema{{Name: "of", Kind: nav.KindString}},
			Children: []string{ProfileID},
		},
		nav.Destination{
			ID:    ProfileID,
			Label: "Profile",
			Icon:  "◉",
			Args: nav.ArgSchema{
				{Name: "name", Kind: nav.KindString, Required: true},
				{Name: "mutual", Kind: nav.KindInt, Default: 0},
			},
			Children: []string{FriendsID},
		},
	)
}

// NewRegistry returns the screen for every destination in NewGraph.
func NewRegistry(dir *Directory) Registry {
	return Registry{
		HomeID:    NewHome(),
		SearchID:  NewSearch(dir),
		FriendsID: NewFriends(dir),
		ProfileID: NewProfile(dir),
	}
}
