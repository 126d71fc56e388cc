package feed

// Categories is the fixed set a trending filter may select from.
var Categories = []string{"sports", "music", "movies", "tech", "food", "advice"}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ToggleCategory returns the next filter state after the user selects a
// category chip: selecting the active category again turns the filter off.
func ToggleCategory(current, selected string) string {
	if current == selected {
		return ""
	}
	return selected
}
