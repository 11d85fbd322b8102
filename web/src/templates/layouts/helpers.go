package layouts

// SiteName is appended to every page title.
const SiteName = "GridGarden"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" && title != SiteName {
		return title + " - " + SiteName
	}
	return SiteName
}
