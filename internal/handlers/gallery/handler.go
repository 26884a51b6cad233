package gallery

import (
	"net/http"
	"strconv"

	"rental/infras/otel"
	"rental/internal/domains/gallery/model/dto"
	"rental/internal/domains/gallery/service"
	"rental/shared/constant"
	"rental/shared/failure"
	"rental/shared/validator"
	"rental/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formImage        = "image"
	formAltText      = "alt_text"
	formDisplayOrder = "display_order"
	formIsCover      = "is_cover"
	formWidth        = "width"
	formHeight       = "height"
)

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the image routes on a router already scoped to /apartments.
func (handler *Handler) Router(router chi.Router, admin chi.Middlewares) {
	router.Get("/{id}/images", handler.GetImages)

	router.With(admin...).Post("/{id}/images", handler.UploadImage)
	router.With(admin...).Patch("/{id}/images/{imageID}", handler.UpdateImage)
	router.With(admin...).Delete("/{id}/images/{imageID}", handler.DeleteImage)
}

// GetImages lists the gallery of an apartment, cover first.
// @Summary Get apartment images
// @Tags Gallery
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} response.Data[dto.GalleryResponse] "Apartment gallery"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments/{id}/images [get]
func (handler *Handler) GetImages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImages")
	defer scope.End()

	apartmentID, ok := pathID(writer, request, constant.RequestParamID)
	if !ok {
		return
	}

	gallery, err := handler.service.List(ctx, apartmentID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("apartmentID", apartmentID).Msg("failed to get apartment images")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, gallery)
}

// UploadImage adds an image to the gallery of an apartment.
// @Summary Upload an apartment image
// @Description Store the image in object storage and append it to the gallery. The first image becomes the cover.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Apartment ID"
// @Param image formData file true "Image file"
// @Param alt_text formData string false "Alternative text"
// @Param display_order formData integer false "Position in the gallery"
// @Param is_cover formData boolean false "Make this image the cover"
// @Param width formData integer false "Width in pixels"
// @Param height formData integer false "Height in pixels"
// @Success 201 {object} response.Data[dto.ImageResponse] "Uploaded image"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "Apartment not found"
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	apartmentID, ok := pathID(writer, request, constant.RequestParamID)
	if !ok {
		return
	}

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.UploadImageRequest{
		AltText: request.FormValue(formAltText),
		Width:   formInt(request, formWidth),
		Height:  formInt(request, formHeight),
	}

	if order, err := strconv.Atoi(request.FormValue(formDisplayOrder)); err == nil {
		req.DisplayOrder = &order
	}

	if cover, err := strconv.ParseBool(request.FormValue(formIsCover)); err == nil {
		req.IsCover = cover
	}

	file, fileHeader, err := request.FormFile(formImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	image, err := handler.service.Upload(ctx, apartmentID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("apartmentID", apartmentID).Msg("failed to upload apartment image")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded by user " + user)

	response.WithJSON(writer, http.StatusCreated, image)
}

// UpdateImage changes the caption or position of an image, or makes it the cover.
// @Summary Update an apartment image
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Apartment ID"
// @Param imageID path string true "Image ID"
// @Param request body dto.UpdateImageRequest true "Fields to change"
// @Success 200 {object} response.Message "Image updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments/{id}/images/{imageID} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateImage")
	defer scope.End()

	apartmentID, ok := pathID(writer, request, constant.RequestParamID)
	if !ok {
		return
	}

	imageID, ok := pathID(writer, request, constant.RequestParamImageID)
	if !ok {
		return
	}

	req := dto.UpdateImageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, apartmentID, imageID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("imageID", imageID).Msg("failed to update apartment image")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Image updated successfully")
}

// DeleteImage removes an image from the gallery and from object storage.
// @Summary Delete an apartment image
// @Tags Gallery
// @Produce json
// @Param id path string true "Apartment ID"
// @Param imageID path string true "Image ID"
// @Success 200 {object} response.Message "Image deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments/{id}/images/{imageID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	apartmentID, ok := pathID(writer, request, constant.RequestParamID)
	if !ok {
		return
	}

	imageID, ok := pathID(writer, request, constant.RequestParamImageID)
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, apartmentID, imageID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("imageID", imageID).Msg("failed to delete apartment image")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image deleted by user " + user)

	response.WithMessage(writer, http.StatusOK, "Image deleted successfully")
}

// pathID reads a UUID path parameter, answering 400 when it is malformed.
func pathID(writer http.ResponseWriter, request *http.Request, name string) (string, bool) {
	id := chi.URLParam(request, name)
	if err := validator.ValidateVar(name, id, "uuid"); err != nil {
		response.WithError(writer, err)

		return constant.Empty, false
	}

	return id, true
}

func formInt(request *http.Request, key string) int {
	value, err := strconv.Atoi(request.FormValue(key))
	if err != nil {
		return 0
	}

	return value
}
