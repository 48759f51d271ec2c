package dto

type CreateAcademyVideoRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description"`
	VideoLink   string `json:"video_link"  validate:"required,url"`
}

type CreateWebinarRequest struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Description string `json:"description"`
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	Time        string `json:"time"        validate:"required,datetime=15:04"`
	Location    string `json:"location"    validate:"omitempty,max=255"`
}
