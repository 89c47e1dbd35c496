package site

import (
	"github.com/algotixai/site/nav"
	"github.com/algotixai/site/routes"
)

// DefaultFooter returns the footer columns. Unlike the primary menu these
// are hand-picked, so Setup checks every id against the registry.
func DefaultFooter() []nav.Column {
	return []nav.Column{
		{Heading: "Company", IDs: []routes.ID{routes.AboutUs, routes.Agency, routes.Careers, routes.Blogs}},
		{Heading: "Services", IDs: []routes.ID{routes.Services, routes.CaseStudy, routes.Resource}},
		{Heading: "Support", IDs: []routes.ID{routes.Contact, routes.HaveAQuestion, routes.RequestAConsultation, routes.PrivacyPolicy}},
	}
}
