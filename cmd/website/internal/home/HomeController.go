package home

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/slowgallery/cmd/website/internal/viewmodels"
	"github.com/adampresley/slowgallery/pkg/services"
)

const (
	homePageName    = "pages/home"
	galleryPageName = "pages/gallery"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
	Gallery(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	GalleryLoader services.GalleryLoader
	Renderer      rendering.TemplateRenderer
}

type HomeController struct {
	galleryLoader services.GalleryLoader
	renderer      rendering.TemplateRenderer
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		galleryLoader: config.GalleryLoader,
		renderer:      config.Renderer,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	viewData := buildHomePage(httphelpers.IsHtmx(r), viewmodels.NewLoadingGallery())
	c.renderer.Render(homePageName, viewData, w)
}

/*
GET /gallery
*/
func (c HomeController) Gallery(w http.ResponseWriter, r *http.Request) {
	isHtmx := httphelpers.IsHtmx(r)

	result := c.galleryLoader.Load(r.Context())
	viewData := buildHomePage(isHtmx, viewmodels.NewGallery(result))

	if result.Outcome != services.OutcomeOK {
		slog.Warn("gallery rendered without photos", "outcome", result.Outcome, "requestID", viewmodels.GetRequestIDFromContext(r))
	}

	if isHtmx {
		c.renderer.Render(galleryPageName, viewData, w)
		return
	}

	c.renderer.Render(homePageName, viewData, w)
}

func buildHomePage(isHtmx bool, gallery viewmodels.Gallery) viewmodels.HomePage {
	return viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			Message: "",
			IsHtmx:  isHtmx,
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/home.js"},
			},
		},
		Navigation: viewmodels.DefaultNavigation(),
		Header:     viewmodels.DefaultHeader(),
		Gallery:    gallery,
	}
}
