package viewmodels

type HomePage struct {
	BaseViewModel
	Navigation []NavLink
	Header     Header
	Gallery    Gallery
}

type Header struct {
	Title    string
	Lead     string
	VideoURL string
}

func DefaultHeader() Header {
	return Header{
		Title:    "Witaj na Słabej Stronie",
		Lead:     "Obejrzyj nasz film, który ładuje się bardzo wolno.",
		VideoURL: "https://www.youtube.com/embed/dQw4w9WgXcQ",
	}
}
