package repository

import (
	"context"
	"errors"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) FindTemplateByCourse(ctx context.Context, courseID string) (*model.CertificateTemplate, error) {
	var tpl model.CertificateTemplate
	if err := r.DB.WithContext(ctx).First(&tpl, "course_id = ?", courseID).Error; err != nil {
		return nil, notFound(err, "certificate template for course", courseID)
	}
	return &tpl, nil
}

// UpsertTemplate 每个课程一个模板，重复保存时覆盖标题和占位符
func (r *CertificateRepository) UpsertTemplate(ctx context.Context, tpl *model.CertificateTemplate) error {
	db := r.DB.WithContext(ctx)

	var existing model.CertificateTemplate
	err := db.Where("course_id = ?", tpl.CourseID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(tpl).Error
	}
	if err != nil {
		return err
	}

	existing.Title = tpl.Title
	existing.Placeholders = tpl.Placeholders
	if err := db.Save(&existing).Error; err != nil {
		return err
	}
	*tpl = existing
	return nil
}

// FindByUserAndCourse 没有证书时返回 nil, nil
func (r *CertificateRepository) FindByUserAndCourse(ctx context.Context, userID uint, courseID string) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepository) Create(ctx context.Context, cert *model.Certificate) error {
	return r.DB.WithContext(ctx).Create(cert).Error
}

func (r *CertificateRepository) ListByUser(ctx context.Context, userID uint) ([]model.Certificate, error) {
	var certs []model.Certificate
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("issued_at desc").Find(&certs).Error
	return certs, err
}
