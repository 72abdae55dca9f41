package data

import "github.com/hikegear/storefront/models"

// DefaultBankNumber is the account shown on the bank-transfer instructions.
const DefaultBankNumber = "1234567890"

// DefaultHeroImages returns the landing-page hero carousel.
func DefaultHeroImages() []string {
	return []string{
		"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?auto=format&fit=crop&w=2000&q=80",
		"https://images.unsplash.com/photo-1486870591958-9b9d0d1dda99?auto=format&fit=crop&w=2000&q=80",
		"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=2000&q=80",
	}
}

func DefaultAboutContent() models.AboutContent {
	return models.AboutContent{
		Title:    "About HikeGear",
		Subtitle: "Your trusted partner for outdoor adventures",
		Sections: []models.AboutSection{
			{
				Heading: "Our Story",
				Paragraphs: []string{
					"Founded by passionate hikers and outdoor enthusiasts, HikeGear has been serving the adventure community for over a decade. We understand the challenges of the trail because we've been there ourselves.",
					"From weekend warriors to seasoned mountaineers, we provide the gear that helps you push your limits and explore the great outdoors with confidence.",
				},
			},
			{
				Heading: "Our Mission",
				Paragraphs: []string{
					"To equip outdoor enthusiasts with premium, reliable gear that enhances their adventures while respecting and preserving the natural environment.",
					"We carefully curate every product in our collection, ensuring it meets our high standards for quality, durability, and performance.",
				},
			},
		},
		Highlights: []models.AboutHighlight{
			{Icon: "🏔️", Title: "Expert Knowledge", Text: "Our team consists of experienced hikers who test every product personally."},
			{Icon: "⭐", Title: "Premium Quality", Text: "We partner with trusted brands known for their exceptional craftsmanship."},
			{Icon: "🌱", Title: "Sustainable Practices", Text: "We prioritize eco-friendly products and sustainable business practices."},
		},
	}
}

func DefaultContactContent() models.ContactContent {
	return models.ContactContent{
		Title:    "Contact Us",
		Subtitle: "We'd love to hear from you",
		CustomerService: models.CustomerService{
			Title: "Customer Service",
			Hours: "Available Monday - Friday, 9 AM - 6 PM PST",
			Phone: "1-800-HIKEGEAR",
		},
		Email: "support@hikegear.com",
		Address: models.ContactAddress{
			Street:  "123 Mountain View Drive",
			City:    "Boulder",
			State:   "CO",
			Zip:     "80301",
			Country: "United States",
		},
		StoreHours: map[string]string{
			"Monday - Friday": "9:00 AM - 8:00 PM",
			"Saturday":        "9:00 AM - 6:00 PM",
			"Sunday":          "11:00 AM - 5:00 PM",
		},
	}
}
