package domain

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Project represents a portfolio case study shown on the public site
type Project struct {
	BaseModel
	Slug        string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_projects_slug" json:"slug"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Summary     string         `gorm:"type:varchar(500)" json:"summary"`
	Description string         `gorm:"type:text" json:"description"`
	CoverKey    string         `gorm:"type:text" json:"cover_key"`
	Gallery     datatypes.JSON `gorm:"type:jsonb" json:"gallery"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Featured    bool           `gorm:"default:false;index:idx_projects_featured" json:"featured"`
	Published   bool           `gorm:"default:false;index:idx_projects_published" json:"published"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// DecodeGallery deserializes the stored gallery key list
func (p *Project) DecodeGallery() ([]string, error) {
	return decodeJSONList[string](p.Gallery)
}

// DecodeTags deserializes the stored tag list
func (p *Project) DecodeTags() ([]string, error) {
	return decodeJSONList[string](p.Tags)
}

// SetGallery serializes gallery file keys into the stored column form
func (p *Project) SetGallery(keys []string) error {
	data, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	p.Gallery = datatypes.JSON(data)
	return nil
}

// SetTags serializes tags into the stored column form
func (p *Project) SetTags(tags []string) error {
	data, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	p.Tags = datatypes.JSON(data)
	return nil
}
