package http

import (
	"net/http"

	"github.com/JMURv/zedasignal/internal/access"
	"github.com/JMURv/zedasignal/internal/dto"
	"github.com/JMURv/zedasignal/internal/hdl/http/utils"
	"github.com/JMURv/zedasignal/internal/repo/s3"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterEducationRoutes(r chi.Router) {
	h.can(r, access.ReadEducation).Get("/academy-video", h.listAcademyVideos)
	h.can(r, access.ReadEducation).Get("/academy-video/{uuid}", h.getAcademyVideo)
	h.can(r, access.ManageEducation).Post("/academy-video", h.createAcademyVideo)
	h.can(r, access.ReadEducation).Get("/webinar", h.listWebinars)
	h.can(r, access.ReadEducation).Get("/webinar/{uuid}", h.getWebinar)
	h.can(r, access.ManageEducation).Post("/webinar", h.createWebinar)
}

func (h *Handler) listAcademyVideos(w http.ResponseWriter, r *http.Request) {
	const op = "education.listAcademyVideos.hdl"
	res, err := h.ctrl.ListAcademyVideos(r.Context())
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) getAcademyVideo(w http.ResponseWriter, r *http.Request) {
	const op = "education.getAcademyVideo.hdl"
	uid, ok := pathUUID(w, r, "uuid")
	if !ok {
		return
	}

	res, err := h.ctrl.GetAcademyVideo(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) createAcademyVideo(w http.ResponseWriter, r *http.Request) {
	const op = "education.createAcademyVideo.hdl"
	req := &dto.CreateAcademyVideoRequest{}
	if ok := utils.ParseMultipartData(w, r, req); !ok {
		return
	}

	file := &s3.UploadFileRequest{}
	if err := utils.ParseFileField(r, "thumbnail", file); err != nil {
		fail(w, op, err)
		return
	}

	res, err := h.ctrl.CreateAcademyVideo(r.Context(), req, file)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "", res)
}

func (h *Handler) listWebinars(w http.ResponseWriter, r *http.Request) {
	const op = "education.listWebinars.hdl"
	res, err := h.ctrl.ListWebinars(r.Context())
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) getWebinar(w http.ResponseWriter, r *http.Request) {
	const op = "education.getWebinar.hdl"
	uid, ok := pathUUID(w, r, "uuid")
	if !ok {
		return
	}

	res, err := h.ctrl.GetWebinar(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) createWebinar(w http.ResponseWriter, r *http.Request) {
	const op = "education.createWebinar.hdl"
	req := &dto.CreateWebinarRequest{}
	if ok := utils.ParseMultipartData(w, r, req); !ok {
		return
	}

	file := &s3.UploadFileRequest{}
	if err := utils.ParseFileField(r, "image", file); err != nil {
		fail(w, op, err)
		return
	}

	res, err := h.ctrl.CreateWebinar(r.Context(), req, file)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "", res)
}
