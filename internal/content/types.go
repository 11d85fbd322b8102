package content

import "time"

// Site is the complete static catalog rendered on the landing page.
type Site struct {
	Brand           string        `yaml:"brand" validate:"required"`
	Tagline         string        `yaml:"tagline"`
	CounterDuration time.Duration `yaml:"counter_duration" validate:"gte=0"`

	Nav          []NavLink     `yaml:"nav" validate:"required,min=1,dive"`
	Hero         Hero          `yaml:"hero"`
	Stats        StatsSection  `yaml:"stats"`
	Products     []Product     `yaml:"products" validate:"required,min=1,dive"`
	Assembly     Assembly      `yaml:"assembly"`
	Configurator Configurator  `yaml:"configurator"`
	Testimonials []Testimonial `yaml:"testimonials" validate:"required,min=1,dive"`
	Story        Story         `yaml:"story"`
	Partners     Partners      `yaml:"partners"`
	FinalCTA     FinalCTA      `yaml:"final_cta"`
	Footer       Footer        `yaml:"footer"`
}

// NavLink is a header navigation entry.
type NavLink struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

// Highlight is a short figure shown in the hero and story sections.
type Highlight struct {
	Value string `yaml:"value" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// Hero is the full-screen banner at the top of the page.
type Hero struct {
	Image      string      `yaml:"image"`
	ImageAlt   string      `yaml:"image_alt"`
	Badges     []string    `yaml:"badges"`
	Lines      string      `yaml:"lines"`
	Headline   string      `yaml:"headline" validate:"required"`
	Highlight  string      `yaml:"highlight"`
	Text       string      `yaml:"text"`
	Highlights []Highlight `yaml:"highlights" validate:"dive"`
}

// Stat is an animated figure in the "why choose us" section.
type Stat struct {
	Number      int    `yaml:"number" validate:"gte=0"`
	Suffix      string `yaml:"suffix"`
	Label       string `yaml:"label" validate:"required"`
	Description string `yaml:"description"`
}

// StatsSection groups the animated figures with their heading.
type StatsSection struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Items []Stat `yaml:"items" validate:"required,min=1,dive"`
}

// Product is a catalog card.
type Product struct {
	ID          string   `yaml:"id" validate:"required"`
	Name        string   `yaml:"name" validate:"required"`
	Badge       string   `yaml:"badge"`
	BadgeStyle  string   `yaml:"badge_style"`
	Price       string   `yaml:"price" validate:"required"`
	Material    string   `yaml:"material"`
	Lifespan    string   `yaml:"lifespan"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Image       string   `yaml:"image"`
	Link        string   `yaml:"link" validate:"required"`
	Featured    bool     `yaml:"featured"`
}

// Item is a titled entry with an icon name, used for steps, features and values.
type Item struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Assembly describes the assembly instructions section.
type Assembly struct {
	Badge     string    `yaml:"badge"`
	Title     string    `yaml:"title"`
	Lead      string    `yaml:"lead"`
	Text      string    `yaml:"text"`
	Steps     []Item    `yaml:"steps" validate:"dive"`
	TimeBadge Highlight `yaml:"time_badge"`
}

// Configurator is the call-to-action for the 3D configurator.
type Configurator struct {
	Badge    string `yaml:"badge"`
	Title    string `yaml:"title"`
	Text     string `yaml:"text"`
	Features []Item `yaml:"features" validate:"dive"`
	Button   string `yaml:"button"`
	Href     string `yaml:"href"`
	Note     string `yaml:"note"`
}

// Testimonial is a customer quote shown in the carousel.
type Testimonial struct {
	Name     string `yaml:"name" validate:"required"`
	Location string `yaml:"location"`
	Rating   int    `yaml:"rating" validate:"min=1,max=5"`
	Text     string `yaml:"text" validate:"required"`
}

// Initial returns the first letter of the customer's name.
func (t Testimonial) Initial() string {
	for _, r := range t.Name {
		return string(r)
	}
	return ""
}

// Story is the company story section.
type Story struct {
	Badge      string      `yaml:"badge"`
	Title      string      `yaml:"title"`
	Highlight  string      `yaml:"highlight"`
	Text       string      `yaml:"text"`
	Image      string      `yaml:"image"`
	ImageAlt   string      `yaml:"image_alt"`
	Highlights []Highlight `yaml:"highlights" validate:"dive"`
	Values     []Item      `yaml:"values" validate:"dive"`
}

// PartnerType is one audience of the affiliate program.
type PartnerType struct {
	ID          string `yaml:"id" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	CTA         string `yaml:"cta"`
}

// Partners is the affiliate program pitch.
type Partners struct {
	Badge       string        `yaml:"badge"`
	Title       string        `yaml:"title"`
	Text        string        `yaml:"text"`
	Benefits    []Item        `yaml:"benefits" validate:"dive"`
	Types       []PartnerType `yaml:"types" validate:"required,min=1,dive"`
	BannerTitle string        `yaml:"banner_title"`
	BannerText  string        `yaml:"banner_text"`
	BannerCTA   string        `yaml:"banner_cta"`
	FormSuccess string        `yaml:"form_success"`
}

// PartnerType looks up a partner type by id.
func (p Partners) PartnerType(id string) (PartnerType, bool) {
	for _, pt := range p.Types {
		if pt.ID == id {
			return pt, true
		}
	}
	return PartnerType{}, false
}

// FinalCTA is the closing call-to-action.
type FinalCTA struct {
	Title     string   `yaml:"title"`
	Text      string   `yaml:"text"`
	Primary   string   `yaml:"primary"`
	Secondary string   `yaml:"secondary"`
	Badges    []string `yaml:"badges"`
}

// LinkGroup is a titled column of footer links.
type LinkGroup struct {
	Title string    `yaml:"title"`
	Links []NavLink `yaml:"links" validate:"dive"`
}

// Footer holds the page footer.
type Footer struct {
	About     string      `yaml:"about"`
	Groups    []LinkGroup `yaml:"groups" validate:"dive"`
	Email     string      `yaml:"email" validate:"omitempty,email"`
	Phone     string      `yaml:"phone"`
	Address   string      `yaml:"address"`
	Copyright string      `yaml:"copyright"`
	Badges    []string    `yaml:"badges"`
}
