package sections

import (
	"github.com/gridgarden/landing/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// InquiryPath is the endpoint the partner inquiry form posts to.
const InquiryPath = "/partners/inquiries"

// PartnersSection renders the affiliate program pitch and the inquiry form,
// with selected preselected as partner type.
func PartnersSection(site *content.Site, selected string) g.Node {
	p := site.Partners
	return sectionRoot("partners",
		ID("partners"),
		Class("partners"),
		badge(p.Badge),
		heading(p.Title, p.Text),
		itemCards("partner-benefits", p.Benefits),
		Div(Class("partner-types"),
			g.Map(p.Types, func(pt content.PartnerType) g.Node {
				return Div(Class("partner-type"), Data("partner-type", pt.ID),
					H3(g.Text(pt.Title)),
					P(g.Text(pt.Description)),
					A(Href("?partner_type="+pt.ID+"#partner-inquiry"), Class("btn btn-outline"), g.Text(pt.CTA)),
				)
			}),
		),
		Div(Class("partner-banner"),
			H3(g.Text(p.BannerTitle)),
			P(g.Text(p.BannerText)),
			InquiryForm(p, selected),
		),
	)
}

// InquiryForm renders the partner contact form with selected preselected.
func InquiryForm(p content.Partners, selected string) g.Node {
	return Form(
		ID("partner-inquiry"),
		Class("inquiry-form"),
		Action(InquiryPath),
		Method("post"),
		hx.Post(InquiryPath),
		hx.Target("#"+InquiryResultID),
		hx.Swap("innerHTML"),
		field("name", "Name", Input(Type("text"), ID("inquiry-name"), Name("name"), Required(), AutoComplete("name"))),
		field("email", "Email", Input(Type("email"), ID("inquiry-email"), Name("email"), Required(), AutoComplete("email"))),
		field("company", "Company", Input(Type("text"), ID("inquiry-company"), Name("company"), AutoComplete("organization"))),
		field("partner_type", "Partner type", Select(ID("inquiry-partner_type"), Name("partner_type"), Required(),
			g.Map(p.Types, func(pt content.PartnerType) g.Node {
				return Option(Value(pt.ID), g.If(pt.ID == selected, Selected()), g.Text(pt.Title))
			}),
		)),
		field("message", "Message", Textarea(ID("inquiry-message"), Name("message"), Rows("4"), Required())),
		Button(Type("submit"), Class("btn btn-primary"), g.Text(p.BannerCTA)),
		Div(ID(InquiryResultID), Aria("live", "polite")),
	)
}

func field(name, label string, control g.Node) g.Node {
	return Div(Class("field"),
		Label(For("inquiry-"+name), g.Text(label)),
		control,
	)
}

// InquiryResult is the fragment swapped into the form after submission.
// A non-empty errs list renders the validation problems instead of success.
func InquiryResult(success string, errs []string) g.Node {
	if len(errs) > 0 {
		return Div(Class("alert alert-error"), Role("alert"),
			Ul(g.Map(errs, func(e string) g.Node { return Li(g.Text(e)) })),
		)
	}
	return Div(Class("alert alert-success"), Role("status"), icon("circle-check", ""), g.Text(success))
}
