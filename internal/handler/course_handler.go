package handler

import (
	"net/http"

	"teenxcel/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CourseHandler struct {
	courses *service.CourseService
	log     *zap.Logger
}

func NewCourseHandler(courses *service.CourseService, log *zap.Logger) *CourseHandler {
	return &CourseHandler{courses: courses, log: log}
}

type courseRequest struct {
	CourseCode        string  `json:"courseCode"`
	Title             *string `json:"title"`
	Price             *int64  `json:"price"`
	Duration          *string `json:"duration"`
	Level             *string `json:"level"`
	Description       *string `json:"description"`
	Objectives        *string `json:"objectives"`
	Img               *string `json:"img"`
	MentorName        *string `json:"mentorName"`
	MentorImg         *string `json:"mentorImg"`
	MentorDesignation *string `json:"mentorDesignation"`
	MentorDesc        *string `json:"mentorDesc"`
	CourseType        *string `json:"courseType"`
	Category          *string `json:"category"`
}

func (r courseRequest) input() service.CourseInput {
	return service.CourseInput{
		CourseCode:        r.CourseCode,
		Title:             r.Title,
		Price:             r.Price,
		Duration:          r.Duration,
		Level:             r.Level,
		Description:       r.Description,
		Objectives:        r.Objectives,
		Img:               r.Img,
		MentorName:        r.MentorName,
		MentorImg:         r.MentorImg,
		MentorDesignation: r.MentorDesignation,
		MentorDesc:        r.MentorDesc,
		CourseType:        r.CourseType,
		Category:          r.Category,
	}
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, "course created", course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	course, err := h.courses.Update(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "course updated", course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "course deleted", nil)
}

func (h *CourseHandler) List(c *gin.Context) {
	list, err := h.courses.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "courses fetched", list)
}

func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courses.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "course fetched", course)
}
