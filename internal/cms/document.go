package cms

// ContentDocument is the locale-specific home page document served as hero.json.
// Every field is optional; consumers supply their own defaults.
type ContentDocument struct {
	Home []HomeEntry `json:"home"`
}

// Entry returns the first home entry, or nil when the document carries none.
func (d *ContentDocument) Entry() *HomeEntry {
	if d == nil || len(d.Home) == 0 {
		return nil
	}
	return &d.Home[0]
}

// HomeEntry groups the SEO block and the content of every home page section.
type HomeEntry struct {
	SEO          *SEOData             `json:"homeSeoData,omitempty"`
	Hero         *HeroSection         `json:"heroSection,omitempty"`
	Announcement *AnnouncementSection `json:"announcementSection,omitempty"`
	Machines     *MachineSection      `json:"homeMachineSection,omitempty"`
	About        *AboutSection        `json:"aboutSection,omitempty"`
	Clientele    *ClienteleSection    `json:"clienteleSection,omitempty"`
	KnowMore     *KnowMoreSection     `json:"knowMoreSection,omitempty"`
	News         *NewsSection         `json:"newsSection,omitempty"`
	Testimonials *TestimonialSection  `json:"testimonialSection,omitempty"`
}

// SEOData mirrors homeSeoData. Nil pointers mean the upstream omitted the field.
type SEOData struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Keywords    *string         `json:"keywords,omitempty"`
	Robots      *string         `json:"robots,omitempty"`
	OpenGraph   *OpenGraphData  `json:"openGraph,omitempty"`
	Alternates  *AlternatesData `json:"alternates,omitempty"`
	Twitter     *TwitterData    `json:"twitter,omitempty"`
}

// OpenGraphData holds the Open Graph block.
type OpenGraphData struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Images      []ImageData `json:"images,omitempty"`
}

// ImageData is an image reference with alternative text.
type ImageData struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// AlternatesData holds the canonical alternate declared by the document.
type AlternatesData struct {
	Canonical *string `json:"canonical,omitempty"`
}

// TwitterData holds the Twitter card block.
type TwitterData struct {
	Card        *string `json:"card,omitempty"`
	Site        *string `json:"site,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// Link is a labelled hyperlink.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type HeroSection struct {
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	CTA         *Link   `json:"cta,omitempty"`
	Slides      []Slide `json:"slides,omitempty"`
}

type Slide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Href        string `json:"href"`
}

type AnnouncementSection struct {
	Title string         `json:"title"`
	Items []Announcement `json:"items"`
}

type Announcement struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
	Href  string `json:"href"`
	Image string `json:"image"`
}

type MachineSection struct {
	Title      string    `json:"title"`
	Subheading string    `json:"subheading"`
	Machines   []Machine `json:"machines"`
}

type Machine struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Href        string `json:"href"`
	Category    string `json:"category"`
}

// AboutSection's Description is markdown.
type AboutSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Stats       []Stat `json:"stats"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ClienteleSection struct {
	Title      string       `json:"title"`
	Subheading string       `json:"subheading"`
	Clients    []ClientLogo `json:"clients"`
}

type ClientLogo struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
	Href string `json:"href"`
}

// KnowMoreSection's Body is markdown.
type KnowMoreSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Cards []Card `json:"cards"`
}

type Card struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Href        string `json:"href"`
}

type NewsSection struct {
	Title string     `json:"title"`
	Items []NewsItem `json:"items"`
}

type NewsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
	Image   string `json:"image"`
	Href    string `json:"href"`
}

type TestimonialSection struct {
	Title      string        `json:"title"`
	Subheading string        `json:"subheading"`
	Items      []Testimonial `json:"items"`
}

type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Quote   string `json:"quote"`
	Image   string `json:"image"`
}

// CountryNameMap maps locale codes to a country's display name.
type CountryNameMap map[string]string
