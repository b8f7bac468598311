package dto

import "github.com/dccc/clubportal/internal/app/models"

// FooterSettingsRequest represents an admin footer settings update
type FooterSettingsRequest struct {
	Contact struct {
		Address string `json:"address" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
	} `json:"contact" binding:"required"`
	Social struct {
		Facebook  string `json:"facebook"`
		Twitter   string `json:"twitter"`
		Instagram string `json:"instagram"`
	} `json:"social"`
}

// FooterSettingsResponse represents the site footer returned by the API
type FooterSettingsResponse struct {
	Contact ContactInfoResponse `json:"contact"`
	Social  SocialLinksResponse `json:"social"`
}

// ContactInfoResponse is the footer contact block
type ContactInfoResponse struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// SocialLinksResponse is the footer social links block
type SocialLinksResponse struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// NewFooterSettingsResponse maps the settings model to its API
// representation.
func NewFooterSettingsResponse(s models.FooterSettings) FooterSettingsResponse {
	return FooterSettingsResponse{
		Contact: ContactInfoResponse{
			Address: s.Contact.Address,
			Email:   s.Contact.Email,
			Phone:   s.Contact.Phone,
		},
		Social: SocialLinksResponse{
			Facebook:  s.Social.Facebook,
			Twitter:   s.Social.Twitter,
			Instagram: s.Social.Instagram,
		},
	}
}

// ToModel converts the request into the settings model
func (r FooterSettingsRequest) ToModel() models.FooterSettings {
	return models.FooterSettings{
		Contact: models.ContactInfo{
			Address: r.Contact.Address,
			Email:   r.Contact.Email,
			Phone:   r.Contact.Phone,
		},
		Social: models.SocialLinks{
			Facebook:  r.Social.Facebook,
			Twitter:   r.Social.Twitter,
			Instagram: r.Social.Instagram,
		},
	}
}
