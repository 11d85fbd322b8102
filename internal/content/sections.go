package content

import (
	"fmt"
	"strings"

	"github.com/gridgarden/landing/internal/domain"
)

// SectionNames lists the catalog sections that can be summarized, in page order.
var SectionNames = []string{"nav", "stats", "products", "assembly", "configurator", "testimonials", "story", "partners"}

// Summary returns one line per entry of the named section.
func (s *Site) Summary(section string) ([]string, error) {
	var lines []string
	switch strings.ToLower(section) {
	case "nav":
		for _, l := range s.Nav {
			lines = append(lines, fmt.Sprintf("%s -> %s", l.Label, l.Href))
		}
	case "stats":
		for _, st := range s.Stats.Items {
			lines = append(lines, fmt.Sprintf("%d%s %s", st.Number, st.Suffix, st.Label))
		}
	case "products":
		for _, p := range s.Products {
			lines = append(lines, fmt.Sprintf("%s: %s (%s, %s)", p.ID, p.Name, p.Price, p.Lifespan))
		}
	case "assembly":
		for i, st := range s.Assembly.Steps {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, st.Title))
		}
	case "configurator":
		for _, f := range s.Configurator.Features {
			lines = append(lines, f.Title)
		}
	case "testimonials":
		for _, t := range s.Testimonials {
			lines = append(lines, fmt.Sprintf("%s, %s (%d/5)", t.Name, t.Location, t.Rating))
		}
	case "story":
		for _, v := range s.Story.Values {
			lines = append(lines, v.Title)
		}
	case "partners":
		for _, pt := range s.Partners.Types {
			lines = append(lines, fmt.Sprintf("%s: %s", pt.ID, pt.Title))
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSection, section)
	}
	return lines, nil
}
