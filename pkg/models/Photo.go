package models

/*
Photo is a single item from the photo listing API. Only the fields the
gallery needs are mapped.
*/
type Photo struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	AltDescription string    `json:"alt_description"`
	URLs           PhotoURLs `json:"urls"`
	User           PhotoUser `json:"user"`
}

type PhotoURLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

type PhotoUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}
