package dto

type SignUpInput struct {
	Login      string  `json:"login"`
	Password   string  `json:"password"`
	ClientType string  `json:"clientType"`
	FullName   string  `json:"fullName"`
	Email      *string `json:"email"`
	Locale     string  `json:"locale"`
}
