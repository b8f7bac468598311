package models

// ContactInfo holds the club's public contact details
type ContactInfo struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// SocialLinks holds the club's social media profile URLs
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// FooterSettings is the singleton, admin-editable site footer content
type FooterSettings struct {
	Contact ContactInfo `json:"contact"`
	Social  SocialLinks `json:"social"`
}
