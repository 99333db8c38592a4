package model

// Settings is the single well-known site configuration document.
type Settings struct {
	SiteName        string `firestore:"siteName" json:"siteName"`
	ContactPhone    string `firestore:"contactPhone" json:"contactPhone"`
	ContactEmail    string `firestore:"contactEmail" json:"contactEmail"`
	ContactAddress  string `firestore:"contactAddress" json:"contactAddress"`
	SEOTitle        string `firestore:"seoTitle" json:"seoTitle"`
	SEODescription  string `firestore:"seoDescription" json:"seoDescription"`
	SEOKeywords     string `firestore:"seoKeywords" json:"seoKeywords"`
	GalleryEnabled  bool   `firestore:"galleryEnabled" json:"galleryEnabled"`
	RequestsEnabled bool   `firestore:"requestsEnabled" json:"requestsEnabled"`
	AnalyticsID     string `firestore:"analyticsId" json:"analyticsId"`
}
