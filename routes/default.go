package routes

import "sync"

// Page identifiers of the AlgotixAI site.
const (
	Home                 ID = "HOME"
	Services             ID = "SERVICES"
	Agency               ID = "AGENCY"
	CaseStudy            ID = "CASE_STUDY"
	Resource             ID = "RESOURCE"
	Contact              ID = "CONTACT"
	AboutUs              ID = "ABOUT_US"
	Blogs                ID = "BLOGS"
	HaveAQuestion        ID = "HAVE_A_QUESTION"
	RequestAConsultation ID = "REQUEST_A_CONSULTATION"
	Careers              ID = "CAREERS"
	PrivacyPolicy        ID = "PRIVACY_POLICY"
)

// DefaultEntries returns the site's page table in menu and sitemap order.
func DefaultEntries() []Entry {
	return []Entry{
		{
			ID:          Home,
			Title:       "AlgotixAI",
			Path:        "/",
			MetaTitle:   "AlgotixAI: Cutting-Edge Software Development & AI Solutions",
			Description: "AlgotixAI offers innovative software development services and AI solutions to drive digital transformation for businesses.",
		},
		{
			ID:          Services,
			Title:       "Services",
			Path:        "/services",
			MetaTitle:   "AlgotixAI Services: Software Development, AI & Digital Transformation",
			Description: "Explore AlgotixAI’s services, including custom software development, AI solutions, automation, and digital transformation consulting.",
			ShowInNav:   true,
		},
		{
			ID:          Agency,
			Title:       "Agency",
			Path:        "/agency",
			MetaTitle:   "AlgotixAI Agency: Expert Software Developers & AI Consultants",
			Description: "Learn about AlgotixAI, a team of expert developers, data scientists, and AI consultants creating scalable and innovative solutions for your business.",
			ShowInNav:   true,
		},
		{
			ID:          CaseStudy,
			Title:       "Case Studies",
			Path:        "/case-studies",
			MetaTitle:   "AlgotixAI Case Studies: Success Stories in Software & AI Development",
			Description: "Read AlgotixAI’s case studies to see how our software and AI solutions have transformed businesses across industries.",
			ShowInNav:   true,
		},
		{
			ID:          Resource,
			Title:       "Resources",
			Path:        "/resources",
			MetaTitle:   "AlgotixAI Resources: Tools, Guides, and Insights for Tech Innovation",
			Description: "Access a wide range of resources including whitepapers, blog posts, and technical guides on software development and AI solutions.",
		},
		{
			ID:          Contact,
			Title:       "Contact",
			Path:        "/contact",
			MetaTitle:   "Contact AlgotixAI: Get in Touch with Our Software & AI Experts",
			Description: "Get in touch with AlgotixAI to discuss your next project or to inquire about our software and AI services. We are here to help.",
			ShowInNav:   true,
		},
		{
			ID:          AboutUs,
			Title:       "About Us",
			Path:        "/about-us",
			MetaTitle:   "About AlgotixAI: Leading the Future of Software & AI Solutions",
			Description: "Learn about AlgotixAI’s mission, vision, and values. Discover how we are driving innovation in software development and artificial intelligence.",
			ShowInNav:   true,
		},
		{
			ID:          Blogs,
			Title:       "Blogs",
			Path:        "/blogs",
			MetaTitle:   "AlgotixAI Blogs: Insights and Trends in Software Development & AI",
			Description: "Stay up-to-date with the latest trends, insights, and innovations in software development, artificial intelligence, and digital transformation.",
			ShowInNav:   true,
		},
		{
			ID:          HaveAQuestion,
			Title:       "Have a Question?",
			Path:        "/have-a-question",
			MetaTitle:   "AlgotixAI - Got a Question? Let Us Help!",
			Description: "Have a question about our services or solutions? Contact us directly, and our team of experts will assist you in finding the best solutions.",
			ShowInNav:   true,
		},
		{
			ID:           RequestAConsultation,
			Title:        "Request a Consultation",
			Path:         "/request-a-consultation",
			MetaTitle:    "Request a Consultation with AlgotixAI: AI & Software Experts",
			Description:  "Request a free consultation with our experts to discuss your project needs and explore how AlgotixAI can help transform your business.",
			ShowInNav:    true,
			CallToAction: true,
		},
		{
			ID:          Careers,
			Title:       "Careers",
			Path:        "/careers",
			MetaTitle:   "Join Our Team | Algotix Careers in Software Solutions",
			Description: "Become part of the Algotix family and make a difference in Software Development and your growth. Be part of a dynamic team.",
		},
		{
			ID:          PrivacyPolicy,
			Title:       "Privacy Policy",
			Path:        "/privacy-policy",
			MetaTitle:   "Algotix AI Privacy Policy | How we protect and use your data",
			Description: "Read more about how Algotix AI handles privacy and ensures user data is stored securely.",
		},
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry built from DefaultEntries.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustNew(DefaultEntries()...)
	})
	return defaultRegistry
}
