package domain

import "time"

// Admin-edited site content. Each page record follows the one-row
// pattern: fetch the first row, fall back to the built-in default when
// the table is empty.

type SiteBrand struct {
	LeftText   string    `json:"left_text"`
	RightText  string    `json:"right_text"`
	LeftColor  string    `json:"left_color"`
	RightColor string    `json:"right_color"`
	Shadow     bool      `json:"shadow"`
	CreatedAt  time.Time `json:"created_at"`
}

type NavItem struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Order      int    `json:"order"`
	IsExternal bool   `json:"is_external"`
}

type HomePage struct {
	HeroHeading      string `json:"hero_heading"`
	HeroHighlight    string `json:"hero_highlight,omitempty"`
	HeroParagraph    string `json:"hero_paragraph"`
	HeroButtonText   string `json:"hero_button_text"`
	HeroButtonURL    string `json:"hero_button_url"`
	CarouselInterval int    `json:"carousel_interval"`
}

type HomeFeature struct {
	Title      string `json:"title"`
	Paragraph  string `json:"paragraph"`
	ButtonText string `json:"button_text"`
	ButtonURL  string `json:"button_url"`
	Order      int    `json:"order"`
	IsActive   bool   `json:"is_active"`
}

type SupportItem struct {
	Title     string `json:"title"`
	Text      string `json:"text,omitempty"`
	Order     int    `json:"order"`
	Direction string `json:"direction"`
	IsActive  bool   `json:"is_active"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type AboutPage struct {
	Title             string  `json:"title"`
	IntroHeading      string  `json:"intro_heading"`
	IntroParagraph    string  `json:"intro_paragraph"`
	HighlightText     string  `json:"highlight_text"`
	MissionTitle      string  `json:"mission_title"`
	MissionText       string  `json:"mission_text"`
	MissionOpacity    float64 `json:"mission_overlay_opacity"`
	ApproachHeading   string  `json:"approach_heading"`
	ApproachParagraph string  `json:"approach_paragraph"`
}

// Banner is the editable sell-page hero.
type Banner struct {
	TitleLine1  string `json:"title_line_1,omitempty"`
	TitleLine2  string `json:"title_line_2,omitempty"`
	TitleLine3  string `json:"title_line_3,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	AccentColor string `json:"accent_color"`
}

func DefaultSiteBrand() *SiteBrand {
	return &SiteBrand{
		LeftText:   "Drive",
		RightText:  "RP",
		LeftColor:  "#2b8ecb",
		RightColor: "#ff6b6b",
		Shadow:     true,
	}
}

func DefaultHomePage() *HomePage {
	return &HomePage{
		HeroHeading:      "Buy or Sell Bikes the Smarter Way",
		HeroParagraph:    "Skip the hassle. Discover verified secondhand bikes at great prices or list your own in minutes.",
		HeroButtonText:   "Buy Now",
		HeroButtonURL:    "#",
		CarouselInterval: 3500,
	}
}

func DefaultAboutPage() *AboutPage {
	return &AboutPage{
		Title:             "About Us",
		IntroHeading:      "About Us",
		IntroParagraph:    "We're passionate about making riding accessible and sustainable for everyone.",
		HighlightText:     "Drive RP",
		MissionTitle:      "Our Mission",
		MissionText:       "Our mission is to make riding more accessible, affordable, and sustainable.",
		MissionOpacity:    0.95,
		ApproachHeading:   "Our Approach",
		ApproachParagraph: "We believe buying or selling a secondhand bike should be simple, safe, and stress-free.",
	}
}

func DefaultBanner() *Banner {
	return &Banner{AccentColor: "#0b5fa5"}
}
