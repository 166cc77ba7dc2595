package service

import (
	"context"
	"strings"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
)

type CourseService struct {
	Repo *repository.CourseRepository
}

func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{Repo: repo}
}

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IsPublished bool   `json:"isPublished"`
}

type CreateChapterRequest struct {
	Title    string `json:"title" binding:"required"`
	Position int    `json:"position"`
}

func (s *CourseService) CreateCourse(ctx context.Context, instructorID uint, req CreateCourseRequest) (*model.Course, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, util.InvalidInput("course title is required")
	}

	course := &model.Course{
		Title:        title,
		Description:  req.Description,
		InstructorID: instructorID,
		IsPublished:  req.IsPublished,
	}
	if err := s.Repo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourse 返回课程及按顺序排列的章节
func (s *CourseService) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	course, err := s.Repo.FindCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	chapters, err := s.Repo.ListChapters(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Chapters = chapters
	return course, nil
}

func (s *CourseService) CreateChapter(ctx context.Context, courseID string, req CreateChapterRequest) (*model.Chapter, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, util.InvalidInput("chapter title is required")
	}
	if _, err := s.Repo.FindCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	chapter := &model.Chapter{
		CourseID: courseID,
		Title:    title,
		Position: req.Position,
	}
	if err := s.Repo.CreateChapter(ctx, chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}
