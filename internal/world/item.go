package world

// Item is a thing that can lie in a location or be carried by a living.
// Items answer to "it" pronouns.
type Item struct {
	object

	description string
}

// NewItem creates an item. The title may be empty, in which case the name is
// used for display as well.
func NewItem(name, title, description string, aliases ...string) *Item {
	return &Item{
		object:      object{name: name, title: title, aliases: aliases},
		description: description,
	}
}

func (it *Item) Description() string {
	return it.description
}

func (it *Item) Subjective() string { return "it" }
func (it *Item) Possessive() string { return "its" }
func (it *Item) Objective() string  { return "it" }
