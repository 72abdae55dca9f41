package models

// AboutSection is one block of about-page copy.
type AboutSection struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
}

// AboutHighlight is one of the "why choose us" cards.
type AboutHighlight struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type AboutContent struct {
	Title      string           `json:"title"`
	Subtitle   string           `json:"subtitle"`
	Sections   []AboutSection   `json:"sections"`
	Highlights []AboutHighlight `json:"highlights"`
}

type ContactAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type CustomerService struct {
	Title string `json:"title"`
	Hours string `json:"hours"`
	Phone string `json:"phone"`
}

type ContactContent struct {
	Title           string            `json:"title"`
	Subtitle        string            `json:"subtitle"`
	CustomerService CustomerService   `json:"customer_service"`
	Email           string            `json:"email"`
	Address         ContactAddress    `json:"address"`
	StoreHours      map[string]string `json:"store_hours"`
}
