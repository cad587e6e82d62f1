package models

// Review is a product review as returned by the third-party reviews API.
type Review struct {
	ID        string   `json:"id"`
	Handle    string   `json:"handle"`
	Author    string   `json:"author"`
	Rating    int      `json:"rating"`
	Title     string   `json:"title,omitempty"`
	Body      string   `json:"body"`
	PhotoURLs []string `json:"photo_urls,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// ReviewSubmission is the payload forwarded to the reviews API.
type ReviewSubmission struct {
	Handle    string   `json:"handle" binding:"required"`
	Author    string   `json:"author" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Rating    int      `json:"rating" binding:"required,min=1,max=5"`
	Title     string   `json:"title"`
	Body      string   `json:"body" binding:"required"`
	PhotoURLs []string `json:"photo_urls"`
}
