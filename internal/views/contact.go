package views

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"nessco.org/home-web/internal/contact"
	"nessco.org/home-web/internal/middleware"
	"nessco.org/home-web/internal/overlay"
)

// FormState is the enquiry form as last submitted.
type FormState struct {
	Values contact.Submission
	// Errors maps a field name to the i18n key of its message.
	Errors map[string]string
	// Status is empty before submission, otherwise one of the contact outcomes.
	Status string
}

// EnquiryPath is where the enquiry form posts for the given site.
func EnquiryPath(country, locale string) string {
	return "/" + url.PathEscape(country) + "/" + url.PathEscape(locale) + "/enquiry"
}

// ContactOverlay renders the hover-triggered enquiry panel with an empty form.
func ContactOverlay(s Shell) g.Node {
	return Div(
		Class("overlay overlay--contact"),
		g.Attr(overlay.AttrPanel, overlay.ContactPanel),
		Button(
			Type("button"),
			Class("overlay__trigger"),
			g.Attr(overlay.AttrTrigger, overlay.ContactPanel),
			Aria("controls", "contact-panel"),
			Aria("expanded", "false"),
			g.Text(s.t("contact.open")),
		),
		Div(
			ID("contact-panel"),
			Class("overlay__body"),
			Role("dialog"),
			Aria("labelledby", "contact-heading"),
			Button(
				Type("button"),
				Class("overlay__close"),
				g.Attr(overlay.AttrClose, overlay.ContactPanel),
				Aria("label", s.t("contact.close")),
				g.Text("×"),
			),
			H2(ID("contact-heading"), g.Text(s.t("contact.heading"))),
			EnquiryForm(s, FormState{}),
		),
	)
}

// EnquiryForm renders the form, or the thank-you message once accepted. It is also
// returned on its own to scripted submissions.
func EnquiryForm(s Shell, st FormState) g.Node {
	if st.Status == contact.OutcomeAccepted {
		return Div(ID("enquiry"), Class("enquiry enquiry--accepted"), Role("status"),
			P(g.Text(s.t("contact.success"))),
		)
	}
	return Div(
		ID("enquiry"),
		Class("enquiry"),
		statusMessage(s, st.Status),
		g.El("form",
			Method("post"),
			Action(EnquiryPath(s.Site.Country, s.Site.Locale)),
			g.Attr("novalidate"),
			Input(Type("hidden"), Name(middleware.CSRFFormField), Value(s.CSRFToken)),
			Input(Type("hidden"), Name("formId"), Value(contact.FormID)),
			field(s, st, "name", "text", st.Values.Name, true),
			field(s, st, "email", "email", st.Values.Email, true),
			field(s, st, "phone", "tel", st.Values.Phone, false),
			field(s, st, "company", "text", st.Values.Company, false),
			messageField(s, st),
			Button(Type("submit"), Class("enquiry__submit"), g.Text(s.t("contact.submit"))),
		),
	)
}

// EnquiryPage is the full-page response for submissions made without scripts.
func EnquiryPage(s Shell, st FormState) g.Node {
	return Layout(s, Main(ID("home"),
		Section(Class("enquiry-page"),
			H1(g.Text(s.t("contact.heading"))),
			EnquiryForm(s, st),
		),
	))
}

func statusMessage(s Shell, status string) g.Node {
	switch status {
	case contact.OutcomeInvalid:
		return P(Class("enquiry__status enquiry__status--invalid"), Role("alert"), g.Text(s.t("contact.invalid")))
	case contact.OutcomeFailed:
		return P(Class("enquiry__status enquiry__status--failed"), Role("alert"), g.Text(s.t("contact.unavailable")))
	}
	return nil
}

func field(s Shell, st FormState, name, typ, value string, required bool) g.Node {
	id := "enquiry-" + name
	errKey := st.Errors[name]
	return Div(
		Class(fieldClass(errKey)),
		g.El("label", For(id), g.Text(s.t("contact."+name))),
		Input(
			ID(id),
			Type(typ),
			Name(name),
			Value(value),
			MaxLength("120"),
			g.If(required, Required()),
			g.If(errKey != "", Aria("invalid", "true")),
		),
		fieldError(s, errKey),
	)
}

func messageField(s Shell, st FormState) g.Node {
	errKey := st.Errors["message"]
	return Div(
		Class(fieldClass(errKey)),
		g.El("label", For("enquiry-message"), g.Text(s.t("contact.message"))),
		Textarea(
			ID("enquiry-message"),
			Name("message"),
			Rows("4"),
			MaxLength("4000"),
			Required(),
			g.If(errKey != "", Aria("invalid", "true")),
			g.Text(st.Values.Message),
		),
		fieldError(s, errKey),
	)
}

func fieldClass(errKey string) string {
	if errKey != "" {
		return "enquiry__field enquiry__field--error"
	}
	return "enquiry__field"
}

func fieldError(s Shell, key string) g.Node {
	if key == "" {
		return nil
	}
	return P(Class("enquiry__error"), g.Text(s.t(key)))
}
