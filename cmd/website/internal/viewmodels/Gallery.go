package viewmodels

import (
	"github.com/adampresley/adamgokit/slices"
	"github.com/adampresley/slowgallery/pkg/models"
	"github.com/adampresley/slowgallery/pkg/services"
)

const (
	galleryTitle   = "Galeria Danych (ładowanie celowo spowolnione)"
	galleryLoadURL = "/gallery"
)

/*
Gallery drives the gallery section. The loading indicator is shown while
Loading is true, otherwise one card is rendered per entry in Cards.
*/
type Gallery struct {
	Title   string
	Loading bool
	LoadURL string
	Cards   []GalleryCard
}

type GalleryCard struct {
	ID           string
	ImageURL     string
	AltText      string
	AuthorName   string
	AuthorHandle string
}

func NewLoadingGallery() Gallery {
	return Gallery{
		Title:   galleryTitle,
		Loading: true,
		LoadURL: galleryLoadURL,
		Cards:   []GalleryCard{},
	}
}

func NewGallery(result services.LoadResult) Gallery {
	gallery := Gallery{
		Title:   galleryTitle,
		Loading: result.Loading,
		LoadURL: galleryLoadURL,
		Cards:   []GalleryCard{},
	}

	if result.Loading || len(result.Photos) == 0 {
		return gallery
	}

	gallery.Cards = slices.Map(result.Photos, func(input models.Photo, index int) GalleryCard {
		return NewGalleryCard(input)
	})

	return gallery
}

func NewGalleryCard(photo models.Photo) GalleryCard {
	alt := photo.AltDescription

	if alt == "" {
		alt = photo.Description
	}

	return GalleryCard{
		ID:           photo.ID,
		ImageURL:     photo.URLs.Small,
		AltText:      alt,
		AuthorName:   photo.User.Name,
		AuthorHandle: photo.User.Username,
	}
}
